package types

import (
	"regexp"
	"time"
)

// Segment kinds. Flight and Train are transports; Hotel is a stay.
const (
	KindFlight = "Flight"
	KindTrain  = "Train"
	KindHotel  = "Hotel"
)

// locationPattern matches IATA-style location codes: exactly three
// uppercase ASCII letters.
var locationPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidLocation reports whether code is a well-formed location code.
func ValidLocation(code string) bool {
	return locationPattern.MatchString(code)
}

// Transport is the payload of a Flight or Train segment. ArrivalTime is the
// corrected instant: it never precedes DepartureTime even when the rendered
// arrival time of day does.
type Transport struct {
	Departure     string    `json:"departure"`
	Arrival       string    `json:"arrival"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

// Stay is the payload of a Hotel segment. Check-in and check-out are bare
// calendar dates; their time of day is always midnight.
type Stay struct {
	Location string    `json:"location"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// Segment is one reservation leg. Exactly one payload pointer is non-nil,
// selected by Kind. Segments are validated by their constructors and treated
// as immutable afterwards; a constructed segment is always internally
// consistent.
type Segment struct {
	Kind      string     `json:"kind"`
	Transport *Transport `json:"transport,omitempty"`
	Stay      *Stay      `json:"stay,omitempty"`
}

// NewTransport builds a validated Flight or Train segment. The arrival
// instant must not precede the departure instant; overnight correction is
// the caller's concern.
func NewTransport(kind, departure, arrival string, departureTime, arrivalTime time.Time) (Segment, error) {
	if kind != KindFlight && kind != KindTrain {
		return Segment{}, &ParseError{Kind: ErrInvalidSegmentType, Field: "kind", Value: kind}
	}
	if !ValidLocation(departure) {
		return Segment{}, &ParseError{Kind: ErrInvalidIataCode, Field: "departure", Value: departure}
	}
	if !ValidLocation(arrival) {
		return Segment{}, &ParseError{Kind: ErrInvalidIataCode, Field: "arrival", Value: arrival}
	}
	if departureTime.IsZero() || arrivalTime.IsZero() {
		return Segment{}, &ParseError{Kind: ErrInvalidSegment, Detail: "transport segment requires departure and arrival times"}
	}
	if arrivalTime.Before(departureTime) {
		return Segment{}, &ParseError{Kind: ErrInvalidSegment, Detail: "transport arrival precedes departure"}
	}
	return Segment{
		Kind: kind,
		Transport: &Transport{
			Departure:     departure,
			Arrival:       arrival,
			DepartureTime: departureTime,
			ArrivalTime:   arrivalTime,
		},
	}, nil
}

// NewStay builds a validated Hotel segment. Check-in must be strictly
// before check-out.
func NewStay(location string, checkIn, checkOut time.Time) (Segment, error) {
	if !ValidLocation(location) {
		return Segment{}, &ParseError{Kind: ErrInvalidIataCode, Field: "location", Value: location}
	}
	if checkIn.IsZero() || checkOut.IsZero() {
		return Segment{}, &ParseError{Kind: ErrInvalidSegment, Detail: "stay segment requires check-in and check-out dates"}
	}
	if !checkIn.Before(checkOut) {
		return Segment{}, &ParseError{Kind: ErrInvalidSegment, Detail: "stay check-in must precede check-out"}
	}
	return Segment{
		Kind: KindHotel,
		Stay: &Stay{
			Location: location,
			CheckIn:  checkIn,
			CheckOut: checkOut,
		},
	}, nil
}

// IsTransport reports whether the segment is a Flight or Train.
func (s Segment) IsTransport() bool {
	return s.Kind == KindFlight || s.Kind == KindTrain
}

// Origin returns the location where the segment begins: the departure
// location for a transport, the hotel location for a stay.
func (s Segment) Origin() string {
	switch s.Kind {
	case KindFlight, KindTrain:
		return s.Transport.Departure
	case KindHotel:
		return s.Stay.Location
	}
	return ""
}

// ArrivalLocation returns the location where the segment ends. A stay ends
// where it begins.
func (s Segment) ArrivalLocation() string {
	switch s.Kind {
	case KindFlight, KindTrain:
		return s.Transport.Arrival
	case KindHotel:
		return s.Stay.Location
	}
	return ""
}

// Start returns the segment's start instant: departure time for a transport,
// check-in date at midnight for a stay.
func (s Segment) Start() time.Time {
	switch s.Kind {
	case KindFlight, KindTrain:
		return s.Transport.DepartureTime
	case KindHotel:
		return s.Stay.CheckIn
	}
	return time.Time{}
}

// End returns the segment's end instant: arrival time for a transport,
// check-out date at midnight for a stay.
func (s Segment) End() time.Time {
	switch s.Kind {
	case KindFlight, KindTrain:
		return s.Transport.ArrivalTime
	case KindHotel:
		return s.Stay.CheckOut
	}
	return time.Time{}
}
