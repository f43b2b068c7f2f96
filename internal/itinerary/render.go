package itinerary

import (
	"fmt"
	"strings"

	"github.com/dukaforge/waypoints/pkg/types"
)

// RenderSegment returns the canonical single-line form of a segment:
//
//	Flight from SVQ to BCN at 2023-01-05 20:40 to 22:10
//	Hotel at BCN on 2023-01-05 to 2023-01-10
//
// The arrival is rendered as a bare time of day on the departure date, even
// when the overnight correction moved the arrival instant to the next day.
func RenderSegment(s types.Segment) string {
	switch s.Kind {
	case types.KindFlight, types.KindTrain:
		t := s.Transport
		return fmt.Sprintf("%s from %s to %s at %s to %s",
			s.Kind, t.Departure, t.Arrival,
			t.DepartureTime.Format(dateTimeLayout),
			t.ArrivalTime.Format(timeLayout))
	case types.KindHotel:
		st := s.Stay
		return fmt.Sprintf("Hotel at %s on %s to %s",
			st.Location,
			st.CheckIn.Format(dateLayout),
			st.CheckOut.Format(dateLayout))
	}
	return ""
}

// RenderTrip returns the printable form of a trip: a "TRIP to" header line
// followed by one canonical line per segment, joined by newlines. A trip
// with no segments renders to the empty string, with no header.
func RenderTrip(t types.Trip) string {
	if len(t.Segments) == 0 {
		return ""
	}
	lines := make([]string, 0, len(t.Segments)+1)
	lines = append(lines, "TRIP to "+t.Destination())
	for _, s := range t.Segments {
		lines = append(lines, RenderSegment(s))
	}
	return strings.Join(lines, "\n")
}

// RenderTrips joins the rendered trips with the given separator. The CLI
// uses a blank line ("\n\n").
func RenderTrips(trips []types.Trip, sep string) string {
	rendered := make([]string, 0, len(trips))
	for _, t := range trips {
		if r := RenderTrip(t); r != "" {
			rendered = append(rendered, r)
		}
	}
	return strings.Join(rendered, sep)
}
