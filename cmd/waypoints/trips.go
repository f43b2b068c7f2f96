// Trips command links reservation records into trips and prints them.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/waypoints/internal/itinerary"
	"github.com/dukaforge/waypoints/internal/paths"
	"github.com/dukaforge/waypoints/pkg/types"
)

var (
	tripsInput string
	tripsBased string
)

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "Build and print trips from a reservations file",
	Long: `Trips reads reservation records, links them into trips rooted at the home
location, and prints one block per trip separated by blank lines.

Any malformed record aborts the run; no partial trip list is printed.

Example:
  waypoints trips
  waypoints trips --input reservations.txt --based SVQ
  waypoints trips --input - --based MAD --json`,
	RunE: runTrips,
}

func init() {
	tripsCmd.Flags().StringVar(&tripsInput, "input", "", "reservations file ('-' for stdin)")
	tripsCmd.Flags().StringVar(&tripsBased, "based", "", "home location code")
}

func runTrips(cmd *cobra.Command, args []string) error {
	based := resolveBased(tripsBased)
	cfg := types.Config{Based: based}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("home location: %w", err)
	}

	in, closeIn, err := openInput(tripsInput)
	if err != nil {
		return err
	}
	defer closeIn()

	proc := itinerary.Processor{Home: based}
	trips, err := proc.Process(in)
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.MarshalIndent(trips, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal trips: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), itinerary.RenderTrips(trips, "\n\n"))
	return nil
}

// openInput resolves and opens the reservations source. The returned close
// function is a no-op for stdin.
func openInput(flag string) (io.Reader, func(), error) {
	path, err := paths.ResolveInput(flag, configInput)
	if err != nil {
		return nil, nil, err
	}
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}
