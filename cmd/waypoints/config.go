// Config loading for the waypoints CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/dukaforge/waypoints/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys recognized in config.yaml.
	cfgKeyBased = "based"
	cfgKeyInput = "input"

	// envBased overrides the home location when neither the --based flag
	// nor config.yaml provides one.
	envBased = "WAYPOINTS_BASED"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper. A missing config.yaml is not an error; every setting has a flag or
// environment fallback.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > WAYPOINTS_CONFIG_DIR env > platform
// default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveBased returns the home location following the precedence chain:
// flag > config.yaml based > WAYPOINTS_BASED env.
func resolveBased(flag string) string {
	if flag != "" {
		return flag
	}
	if configBased != "" {
		return configBased
	}
	return os.Getenv(envBased)
}
