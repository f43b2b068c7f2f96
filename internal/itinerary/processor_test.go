package itinerary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/waypoints/pkg/types"
)

const sampleInput = `RESERVATION
SEGMENT: Flight SVQ 2023-03-02 06:40 -> BCN 09:10

RESERVATION
SEGMENT: Hotel BCN 2023-03-02 -> 2023-03-06

RESERVATION
SEGMENT: Flight BCN 2023-03-06 10:30 -> SVQ 11:50

RESERVATION
SEGMENT: Train SVQ 2023-02-15 09:30 -> MAD 11:00
SEGMENT: Hotel MAD 2023-02-15 -> 2023-02-17
SEGMENT: Train MAD 2023-02-17 17:00 -> SVQ 19:30
`

func TestProcessorProcess(t *testing.T) {
	proc := Processor{Home: "SVQ"}
	trips, err := proc.Process(strings.NewReader(sampleInput))
	require.NoError(t, err)
	require.Len(t, trips, 2)

	// Trips come out ordered by earliest date, not input order.
	assert.Equal(t, "MAD", trips[0].Destination())
	assert.Equal(t, "BCN", trips[1].Destination())
	assert.Len(t, trips[0].Segments, 3)
	assert.Len(t, trips[1].Segments, 3)
}

func TestProcessorSkipsNonRecordLines(t *testing.T) {
	input := `# comment
RESERVATION

SEGMENT: Flight SVQ 2023-01-05 20:40 -> BCN 22:10
trailing noise
`
	segments, err := ReadSegments(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, types.KindFlight, segments[0].Kind)
}

func TestProcessorFailFast(t *testing.T) {
	// The second record is malformed; nothing is returned.
	input := `SEGMENT: Flight SVQ 2023-01-05 20:40 -> BCN 22:10
SEGMENT: Flight bcn 2023-01-10 10:30 -> SVQ 11:50
SEGMENT: Hotel BCN 2023-01-05 -> 2023-01-10
`
	proc := Processor{Home: "SVQ"}
	trips, err := proc.Process(strings.NewReader(input))

	assert.Nil(t, trips)
	assert.ErrorIs(t, err, types.ErrInvalidIataCode)
	assert.ErrorContains(t, err, "line 2")
}

func TestProcessorNoInitialSegment(t *testing.T) {
	input := "SEGMENT: Flight BCN 2023-01-10 10:30 -> MAD 11:50\n"

	proc := Processor{Home: "SVQ"}
	_, err := proc.Process(strings.NewReader(input))

	assert.ErrorIs(t, err, types.ErrNoInitialSegment)
	assert.ErrorContains(t, err, "SVQ")
}

func TestProcessorEmptyInput(t *testing.T) {
	proc := Processor{Home: "SVQ"}
	_, err := proc.Process(strings.NewReader(""))

	assert.ErrorIs(t, err, types.ErrNoInitialSegment)
}

func TestProcessorEndToEndRendering(t *testing.T) {
	proc := Processor{Home: "SVQ"}
	trips, err := proc.Process(strings.NewReader(sampleInput))
	require.NoError(t, err)

	want := "TRIP to MAD\n" +
		"Train from SVQ to MAD at 2023-02-15 09:30 to 11:00\n" +
		"Hotel at MAD on 2023-02-15 to 2023-02-17\n" +
		"Train from MAD to SVQ at 2023-02-17 17:00 to 19:30" +
		"\n\n" +
		"TRIP to BCN\n" +
		"Flight from SVQ to BCN at 2023-03-02 06:40 to 09:10\n" +
		"Hotel at BCN on 2023-03-02 to 2023-03-06\n" +
		"Flight from BCN to SVQ at 2023-03-06 10:30 to 11:50"
	assert.Equal(t, want, RenderTrips(trips, "\n\n"))
}
