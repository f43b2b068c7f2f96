package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/waypoints/pkg/types"
)

func TestRenderSegment(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "flight",
			line: "SEGMENT: Flight SVQ 2023-01-05 20:40 -> BCN 22:10",
			want: "Flight from SVQ to BCN at 2023-01-05 20:40 to 22:10",
		},
		{
			name: "train",
			line: "SEGMENT: Train SVQ 2023-02-15 09:30 -> MAD 11:00",
			want: "Train from SVQ to MAD at 2023-02-15 09:30 to 11:00",
		},
		{
			name: "hotel",
			line: "SEGMENT: Hotel BCN 2023-01-05 -> 2023-01-10",
			want: "Hotel at BCN on 2023-01-05 to 2023-01-10",
		},
		{
			// The corrected arrival instant is on the next day, but the
			// rendering keeps the bare time of day on the departure line.
			name: "overnight flight keeps the literal arrival time",
			line: "SEGMENT: Flight NYC 2023-03-06 22:00 -> BCN 06:30",
			want: "Flight from NYC to BCN at 2023-03-06 22:00 to 06:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderSegment(mustParse(t, tt.line)))
		})
	}
}

func TestRenderTrip(t *testing.T) {
	segments := parseAll(t,
		"SEGMENT: Flight SVQ 2023-01-05 20:40 -> BCN 22:10",
		"SEGMENT: Hotel BCN 2023-01-05 -> 2023-01-10",
		"SEGMENT: Flight BCN 2023-01-10 10:30 -> SVQ 11:50",
	)
	trip, err := types.NewTrip("SVQ", segments)
	require.NoError(t, err)

	want := "TRIP to BCN\n" +
		"Flight from SVQ to BCN at 2023-01-05 20:40 to 22:10\n" +
		"Hotel at BCN on 2023-01-05 to 2023-01-10\n" +
		"Flight from BCN to SVQ at 2023-01-10 10:30 to 11:50"
	assert.Equal(t, want, RenderTrip(trip))
}

func TestRenderTripEmpty(t *testing.T) {
	assert.Equal(t, "", RenderTrip(types.Trip{Home: "SVQ"}),
		"a trip with no segments must not emit a header")
}

func TestRenderTrips(t *testing.T) {
	first, err := types.NewTrip("SVQ", parseAll(t,
		"SEGMENT: Flight SVQ 2023-01-05 20:40 -> BCN 22:10",
	))
	require.NoError(t, err)
	second, err := types.NewTrip("SVQ", parseAll(t,
		"SEGMENT: Train SVQ 2023-02-15 09:30 -> MAD 11:00",
	))
	require.NoError(t, err)

	want := "TRIP to BCN\n" +
		"Flight from SVQ to BCN at 2023-01-05 20:40 to 22:10" +
		"\n\n" +
		"TRIP to MAD\n" +
		"Train from SVQ to MAD at 2023-02-15 09:30 to 11:00"
	assert.Equal(t, want, RenderTrips([]types.Trip{first, second}, "\n\n"))

	t.Run("empty trips are skipped", func(t *testing.T) {
		got := RenderTrips([]types.Trip{first, {Home: "SVQ"}, second}, "\n\n")
		assert.Equal(t, want, got)
	})
}
