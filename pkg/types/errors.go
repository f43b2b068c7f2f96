package types

import (
	"errors"
	"fmt"
)

// Parsing and validation errors. Every error raised while turning a record
// line into a Segment wraps one of these sentinels.
var (
	ErrInvalidFormat      = errors.New("invalid record format")
	ErrInvalidSegmentType = errors.New("invalid segment type")
	ErrInvalidIataCode    = errors.New("invalid IATA code")
	ErrInvalidSegment     = errors.New("invalid segment")
	ErrDateTimeParse      = errors.New("invalid date or time")
)

// Linking errors.
var (
	ErrNoInitialSegment = errors.New("no segment departs from the home location")
	ErrEmptyTrip        = errors.New("trip requires at least one segment")
)

// ParseError describes why a record line or one of its fields was rejected.
// It wraps one of the sentinel errors above so callers can classify the
// failure with errors.Is, while the message still names the offending field
// and value.
type ParseError struct {
	Kind   error  // one of the sentinel errors
	Field  string // offending field, when one is known
	Value  string // offending value, when one is known
	Detail string // fixed message for the failed condition
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": %s %q", e.Field, e.Value)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Kind }
