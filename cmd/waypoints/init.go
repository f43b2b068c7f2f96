// Init command creates the configuration directory and a default config.yaml.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dukaforge/waypoints/pkg/types"
)

var (
	initBased string
	initInput string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize waypoints configuration",
	Long: `Init creates the configuration directory and writes config.yaml with the
given home location and reservations file.

Example:
  waypoints init --based SVQ
  waypoints init --based MAD --input ~/travel/reservations.txt`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initBased, "based", "", "home location code (required)")
	initCmd.Flags().StringVar(&initInput, "input", "", "default reservations file")
	_ = initCmd.MarkFlagRequired("based")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := types.Config{Based: initBased, Input: initInput}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	path := filepath.Join(configDir, configFileName+"."+configFileType)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
