package engine

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/gamemath/engine/core"
)

const (
	DefaultIterations = 100_000
	DefaultWarmUp     = 1
	DefaultRounds     = 5
)

// ApplicationConfig controls a benchmark run. It is read from a TOML file:
//
//	name = "nightly"
//	iterations = 200000
//	warm_up = 1
//	rounds = 10
//	filter = "^Matrix"
//	log_level = "debug"
type ApplicationConfig struct {
	// Name shows up in the report header.
	Name string `toml:"name"`
	// Iterations is the number of calls timed per round.
	Iterations int `toml:"iterations"`
	// WarmUp is the number of untimed calls made before the first round.
	WarmUp int `toml:"warm_up"`
	// Rounds is the number of timed rounds per case.
	Rounds int `toml:"rounds"`
	// Filter is a regular expression; only matching case names run.
	Filter   string `toml:"filter"`
	LogLevel string `toml:"log_level"`

	filter *regexp.Regexp
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:       "gamemath",
		Iterations: DefaultIterations,
		WarmUp:     DefaultWarmUp,
		Rounds:     DefaultRounds,
		LogLevel:   "info",
	}
}

// LoadApplicationConfig reads and validates the file at path.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config, err := ParseApplicationConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// ParseApplicationConfig decodes TOML on top of the defaults. Unknown
// keys are rejected.
func ParseApplicationConfig(data []byte) (*ApplicationConfig, error) {
	config := DefaultApplicationConfig()

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the numeric fields, compiles the filter and checks
// that the log level parses. The level itself is applied by
// Engine.Initialize.
func (c *ApplicationConfig) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", core.ErrInvalidConfig, c.Iterations)
	}
	if c.WarmUp < 0 {
		return fmt.Errorf("%w: warm_up must not be negative, got %d", core.ErrInvalidConfig, c.WarmUp)
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("%w: rounds must be positive, got %d", core.ErrInvalidConfig, c.Rounds)
	}

	c.filter = nil
	if c.Filter != "" {
		re, err := regexp.Compile(c.Filter)
		if err != nil {
			return fmt.Errorf("%w: filter: %v", core.ErrInvalidConfig, err)
		}
		c.filter = re
	}

	if c.LogLevel != "" {
		if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: log_level: %v", core.ErrInvalidConfig, err)
		}
	}
	return nil
}

// Matches reports whether the case called name passes the filter.
func (c *ApplicationConfig) Matches(name string) bool {
	if c.filter == nil {
		return true
	}
	return c.filter.MatchString(name)
}

// Level returns the configured log level, defaulting to info.
func (c *ApplicationConfig) Level() core.LogLevel {
	level, err := core.ParseLogLevel(c.LogLevel)
	if err != nil {
		return core.InfoLevel
	}
	return level
}
