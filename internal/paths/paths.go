// Package paths resolves configuration-directory and input-file locations
// for the waypoints CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultInputName is the CWD-relative reservations file used when no
// override is active.
const DefaultInputName = "reservations.txt"

// Environment variable names for overrides.
const (
	EnvConfigDir = "WAYPOINTS_CONFIG_DIR"
	EnvInput     = "WAYPOINTS_INPUT"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/waypoints (fallback ~/.config/waypoints)
// macOS:   ~/Library/Application Support/waypoints
// Windows: %APPDATA%/waypoints
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "waypoints"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "waypoints"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "waypoints"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > WAYPOINTS_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveInput returns the reservations file path following the precedence
// chain: flag > config.yaml value > WAYPOINTS_INPUT env > CWD default.
//
// "-" means stdin and is passed through untouched.
func ResolveInput(flag, configYAMLValue string) (string, error) {
	if flag == "-" {
		return flag, nil
	}
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvInput); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultInputName), nil
}
