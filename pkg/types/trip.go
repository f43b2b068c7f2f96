package types

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a maximal chain of segments built from one initial segment leaving
// the home location. A trip is created once, from a finalized segment list,
// and never mutated afterwards. Destination and earliest date are derived,
// not stored.
type Trip struct {
	TripID   string    `json:"trip_id"` // UUID v7, generated on creation
	Home     string    `json:"home"`
	Segments []Segment `json:"segments"`
}

// NewTrip wraps a finished chain of segments into a Trip. The segment list
// must be non-empty; it is copied so later changes to the caller's slice
// cannot reach the trip.
func NewTrip(home string, segments []Segment) (Trip, error) {
	if len(segments) == 0 {
		return Trip{}, ErrEmptyTrip
	}
	id, err := uuid.NewV7()
	if err != nil {
		return Trip{}, err
	}
	segs := make([]Segment, len(segments))
	copy(segs, segments)
	return Trip{TripID: id.String(), Home: home, Segments: segs}, nil
}

// Destination returns the last location visited that is not the home
// location: arrival locations are collected in chain order, deduplicated
// keeping the first occurrence, and scanned from the end. Returns "" when
// every arrival is the home location.
func (t Trip) Destination() string {
	seen := make(map[string]bool, len(t.Segments))
	var visited []string
	for _, s := range t.Segments {
		loc := s.ArrivalLocation()
		if !seen[loc] {
			seen[loc] = true
			visited = append(visited, loc)
		}
	}
	for i := len(visited) - 1; i >= 0; i-- {
		if visited[i] != t.Home {
			return visited[i]
		}
	}
	return ""
}

// EarliestDate returns the minimum start instant across the trip's segments.
func (t Trip) EarliestDate() time.Time {
	earliest := t.Segments[0].Start()
	for _, s := range t.Segments[1:] {
		if s.Start().Before(earliest) {
			earliest = s.Start()
		}
	}
	return earliest
}
