// Segments command parses reservation records and prints them in
// chronological order, without linking.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/waypoints/internal/itinerary"
)

var segmentsInput string

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Parse and print reservation records in date order",
	Long: `Segments parses every record in the reservations file and prints each one
in its canonical form, ordered by start date.

Example:
  waypoints segments
  waypoints segments --input reservations.txt --json`,
	RunE: runSegments,
}

func init() {
	segmentsCmd.Flags().StringVar(&segmentsInput, "input", "", "reservations file ('-' for stdin)")
}

func runSegments(cmd *cobra.Command, args []string) error {
	in, closeIn, err := openInput(segmentsInput)
	if err != nil {
		return err
	}
	defer closeIn()

	segments, err := itinerary.ReadSegments(in)
	if err != nil {
		return err
	}
	sorted := itinerary.SortByDate(segments)

	if flagJSON {
		out, err := json.MarshalIndent(sorted, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal segments: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	for _, s := range sorted {
		fmt.Fprintln(cmd.OutOrStdout(), itinerary.RenderSegment(s))
	}
	return nil
}
