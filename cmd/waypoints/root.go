// Root command for the waypoints CLI.
package main

import (
	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagConfigDir string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configBased string
	configInput string
)

var rootCmd = &cobra.Command{
	Use:   "waypoints",
	Short: "Waypoints builds trips from travel reservation records",
	Long: `Waypoints reads a flat file of travel reservations (flights, trains,
hotel stays) and links them into discrete trips that start and end at your
home location.`,
	Version: version,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Version needs no configuration.
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configBased = cfg.GetString(cfgKeyBased)
		configInput = cfg.GetString(cfgKeyInput)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(tripsCmd)
	rootCmd.AddCommand(segmentsCmd)
}
