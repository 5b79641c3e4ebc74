package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// PatternRandom seeds the grid with Randomize instead of a named pattern
const PatternRandom = "random"

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	FrameRate           time.Duration `json:"frame_rate"`
	Survive             string        `json:"survive"`
	Birth               string        `json:"birth"`
	Rule                string        `json:"rule"`
	RandomDensity       float64       `json:"random_density"`
	Seed                uint64        `json:"seed"`
	Pattern             string        `json:"pattern"`
	MaxGenerations      int           `json:"max_generations"`
	StopOnStagnation    bool          `json:"stop_on_stagnation"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	ClearScreen         bool          `json:"clear_screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                25,
		Cols:                25,
		FrameRate:           500 * time.Millisecond,
		Survive:             "2,3",
		Birth:               "3",
		RandomDensity:       0.5,
		Pattern:             PatternRandom,
		MaxGenerations:      1000,
		StopOnStagnation:    true,
		StagnationThreshold: 5,
		ClearScreen:         true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// RuleSet resolves the configured rule; Rule notation wins over Survive/Birth
func (c Config) RuleSet() (rules.RuleSet, error) {
	if c.Rule != "" {
		return rules.ParseNotation(c.Rule)
	}
	return rules.Parse(c.Survive, c.Birth)
}

// Validate checks every field the engine would otherwise reject at runtime
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.FrameRate <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must be positive, got %v", c.FrameRate)
	}
	if !(c.RandomDensity >= 0 && c.RandomDensity <= 1) {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density must be within [0,1], got %v", c.RandomDensity)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if _, err := c.RuleSet(); err != nil {
		return errors.Wrap(err, "[Validate] bad rule")
	}
	return nil
}
