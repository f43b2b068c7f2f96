package itinerary

import (
	"fmt"
	"slices"
	"time"

	"github.com/dukaforge/waypoints/pkg/types"
)

// linkWindow bounds how long after a chain's end instant the next segment
// may begin. Inclusive on both ends: a segment starting exactly 24h later
// still links.
const linkWindow = 24 * time.Hour

// Group links segments into trips rooted at home. Every segment whose origin
// is home seeds a chain, chains grow greedily within the link window, and
// each segment belongs to at most one trip. Fails with ErrNoInitialSegment
// when nothing departs from home. Trips are returned ascending by earliest
// date.
func Group(segments []types.Segment, home string) ([]types.Trip, error) {
	pool := SortByDate(segments)

	// byOrigin and byArrival keep pool indices in sorted order, so the first
	// in-window candidate is always the earliest-starting one and ties fall
	// back to discovery order.
	byOrigin := make(map[string][]int)
	byArrival := make(map[string][]int)
	var initial []int
	for i, s := range pool {
		byOrigin[s.Origin()] = append(byOrigin[s.Origin()], i)
		byArrival[s.ArrivalLocation()] = append(byArrival[s.ArrivalLocation()], i)
		if s.Origin() == home {
			initial = append(initial, i)
		}
	}
	if len(initial) == 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrNoInitialSegment, home)
	}

	claimed := make([]bool, len(pool))
	var trips []types.Trip
	for _, seed := range initial {
		if claimed[seed] {
			continue
		}
		chain := buildChain(pool, byOrigin, byArrival, claimed, seed, home)
		trip, err := types.NewTrip(home, chain)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	slices.SortStableFunc(trips, func(a, b types.Trip) int {
		return a.EarliestDate().Compare(b.EarliestDate())
	})
	return trips, nil
}

// buildChain extends one chain greedily from the seed segment until it
// returns home or no candidate begins within the link window. There is no
// backtracking; a dead end ends the chain.
func buildChain(pool []types.Segment, byOrigin, byArrival map[string][]int, claimed []bool, seed int, home string) []types.Segment {
	claimed[seed] = true
	chain := []types.Segment{pool[seed]}
	location := pool[seed].ArrivalLocation()
	at := pool[seed].End()

	for location != home {
		// Transports departing the current location beat stays located there.
		next := nextTransport(pool, byOrigin[location], claimed, at)
		if next < 0 {
			next = nextStay(pool, byArrival[location], claimed, at)
		}
		if next < 0 {
			break
		}
		claimed[next] = true
		chain = append(chain, pool[next])
		location = pool[next].ArrivalLocation()
		at = pool[next].End()
	}
	return chain
}

// nextTransport returns the pool index of the earliest unclaimed transport
// among candidates whose departure falls within the link window after at,
// or -1 when none qualifies.
func nextTransport(pool []types.Segment, candidates []int, claimed []bool, at time.Time) int {
	for _, i := range candidates {
		if claimed[i] || !pool[i].IsTransport() {
			continue
		}
		if inWindow(pool[i].Start(), at) {
			return i
		}
	}
	return -1
}

// nextStay returns the pool index of the earliest unclaimed stay among
// candidates whose check-in falls within the link window, or -1 when none
// qualifies. Hotels are booked by date, not by hour, so the window for a
// stay opens at midnight of the chain-end's calendar day: a check-in on
// that day or the following day links, even when the incoming transport
// arrives late in the evening.
func nextStay(pool []types.Segment, candidates []int, claimed []bool, at time.Time) int {
	dayStart := startOfDay(at)
	for _, i := range candidates {
		if claimed[i] || pool[i].IsTransport() {
			continue
		}
		if inWindow(pool[i].Start(), dayStart) {
			return i
		}
	}
	return -1
}

// startOfDay floors t to midnight of its calendar day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// inWindow reports whether start falls in the inclusive interval
// [at, at+linkWindow].
func inWindow(start, at time.Time) bool {
	return !start.Before(at) && !start.After(at.Add(linkWindow))
}
