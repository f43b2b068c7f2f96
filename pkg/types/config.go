package types

import "errors"

// Config holds the settings the CLI resolves (flags, config.yaml,
// environment) before processing an itinerary file.
type Config struct {
	Based string `json:"based" yaml:"based"` // home location code
	Input string `json:"input" yaml:"input"` // reservations file path
}

// Config validation errors.
var (
	ErrBasedEmpty   = errors.New("home location must not be empty")
	ErrBasedInvalid = errors.New("home location must be a three-letter uppercase code")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Based == "" {
		return ErrBasedEmpty
	}
	if !ValidLocation(c.Based) {
		return ErrBasedInvalid
	}
	return nil
}
