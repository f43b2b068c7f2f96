// Package itinerary parses travel-reservation records and links them into
// trips rooted at a home location.
package itinerary

import (
	"slices"
	"strings"
	"time"

	"github.com/dukaforge/waypoints/pkg/types"
)

// RecordMarker prefixes every reservation record line. Lines without it are
// not segment records.
const RecordMarker = "SEGMENT:"

// Wall-clock layouts. All comparisons are naive local time; no timezone
// arithmetic is performed.
const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	dateTimeLayout = "2006-01-02 15:04"
)

// arrow separates the departure half of a record from the arrival half.
const arrow = "->"

// ParseSegment parses one reservation record line into a validated Segment.
// The grammar, after the record marker:
//
//	Flight|Train <DEP> <YYYY-MM-DD> <HH:MM> -> <ARR> <HH:MM>
//	Hotel <LOC> <YYYY-MM-DD> -> <YYYY-MM-DD>
//
// Checks run in a fixed order so error messages stay faithful: record format,
// then segment kind, then date/time parseability, then location codes, then
// field presence and range.
func ParseSegment(line string) (types.Segment, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), RecordMarker)
	if !ok {
		return types.Segment{}, &types.ParseError{
			Kind:   types.ErrInvalidFormat,
			Detail: "record must begin with " + RecordMarker,
			Field:  "line",
			Value:  line,
		}
	}

	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		return types.Segment{}, &types.ParseError{
			Kind:   types.ErrInvalidFormat,
			Detail: "record has no segment type",
			Field:  "line",
			Value:  line,
		}
	}

	switch tokens[0] {
	case types.KindFlight, types.KindTrain:
		return parseTransport(tokens[0], tokens[1:])
	case types.KindHotel:
		return parseStay(tokens[1:])
	default:
		return types.Segment{}, &types.ParseError{
			Kind:  types.ErrInvalidSegmentType,
			Field: "kind",
			Value: tokens[0],
		}
	}
}

// parseTransport handles the tokens after a Flight or Train kind:
// <DEP> <YYYY-MM-DD> <HH:MM> -> <ARR> <HH:MM>. The arrival reuses the
// departure date; an arrival instant earlier than departure is pushed
// forward exactly one day (overnight correction), never more.
func parseTransport(kind string, tokens []string) (types.Segment, error) {
	departure := token(tokens, 0)
	date := token(tokens, 1)
	departureTime := token(tokens, 2)
	arrival := token(tokens, 4)
	arrivalTime := token(tokens, 5)

	if token(tokens, 3) != arrow {
		return types.Segment{}, &types.ParseError{
			Kind:   types.ErrInvalidFormat,
			Detail: "expected " + arrow + " between departure and arrival",
			Field:  "record",
			Value:  strings.Join(tokens, " "),
		}
	}

	dep, err := parseDateTime("departure", date, departureTime)
	if err != nil {
		return types.Segment{}, err
	}
	arr, err := parseDateTime("arrival", date, arrivalTime)
	if err != nil {
		return types.Segment{}, err
	}
	if arr.Before(dep) {
		arr = arr.AddDate(0, 0, 1)
	}

	return types.NewTransport(kind, departure, arrival, dep, arr)
}

// parseStay handles the tokens after a Hotel kind:
// <LOC> <YYYY-MM-DD> -> <YYYY-MM-DD>. The two dates are parsed
// independently; there is no overnight logic.
func parseStay(tokens []string) (types.Segment, error) {
	location := token(tokens, 0)
	checkInTok := token(tokens, 1)
	checkOutTok := token(tokens, 3)

	if token(tokens, 2) != arrow {
		return types.Segment{}, &types.ParseError{
			Kind:   types.ErrInvalidFormat,
			Detail: "expected " + arrow + " between check-in and check-out",
			Field:  "record",
			Value:  strings.Join(tokens, " "),
		}
	}

	checkIn, err := parseDate("check-in", checkInTok)
	if err != nil {
		return types.Segment{}, err
	}
	checkOut, err := parseDate("check-out", checkOutTok)
	if err != nil {
		return types.Segment{}, err
	}

	return types.NewStay(location, checkIn, checkOut)
}

// token returns tokens[i] or "" when the record is too short. Absent tokens
// surface as missing-field errors in the stage that needs them.
func token(tokens []string, i int) string {
	if i < len(tokens) {
		return tokens[i]
	}
	return ""
}

// parseDateTime combines a calendar date and a wall-clock time into one
// instant. An absent token and a malformed one fail with distinct messages.
func parseDateTime(field, date, clock string) (time.Time, error) {
	if date == "" {
		return time.Time{}, &types.ParseError{
			Kind:   types.ErrDateTimeParse,
			Detail: "missing date token",
			Field:  field,
			Value:  date,
		}
	}
	if clock == "" {
		return time.Time{}, &types.ParseError{
			Kind:   types.ErrDateTimeParse,
			Detail: "missing time token",
			Field:  field,
			Value:  clock,
		}
	}
	t, err := time.Parse(dateTimeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, &types.ParseError{
			Kind:   types.ErrDateTimeParse,
			Detail: "malformed date or time",
			Field:  field,
			Value:  date + " " + clock,
		}
	}
	return t, nil
}

// parseDate parses a bare calendar date. The resulting instant is midnight.
func parseDate(field, date string) (time.Time, error) {
	if date == "" {
		return time.Time{}, &types.ParseError{
			Kind:   types.ErrDateTimeParse,
			Detail: "missing date token",
			Field:  field,
			Value:  date,
		}
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, &types.ParseError{
			Kind:   types.ErrDateTimeParse,
			Detail: "malformed date",
			Field:  field,
			Value:  date,
		}
	}
	return t, nil
}

// SortByDate returns a copy of segments ordered by start instant. The sort
// is stable: segments with equal start instants keep their input order.
func SortByDate(segments []types.Segment) []types.Segment {
	sorted := make([]types.Segment, len(segments))
	copy(sorted, segments)
	slices.SortStableFunc(sorted, func(a, b types.Segment) int {
		return a.Start().Compare(b.Start())
	})
	return sorted
}
