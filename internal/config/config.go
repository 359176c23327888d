// Package config loads the YAML run configuration of the lazybeaver CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lazybeaver/atm"
	"github.com/katalvlaran/lazybeaver/internal/logging"
	"github.com/katalvlaran/lazybeaver/search"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Config is the full run configuration.
type Config struct {
	Search  Search  `yaml:"search"`
	Log     Log     `yaml:"log"`
	Output  Output  `yaml:"output"`
	Metrics Metrics `yaml:"metrics"`
}

// Search controls which machine sizes are searched and how budgets escalate.
type Search struct {
	FromStates    int           `yaml:"from_states"`
	ToStates      int           `yaml:"to_states"`
	InitialBudget uint64        `yaml:"initial_budget"`
	MaxBudget     uint64        `yaml:"max_budget"`
	NeverHalts    bool          `yaml:"never_halts"`
	Timeout       time.Duration `yaml:"timeout"`
	ProgressEvery uint64        `yaml:"progress_every"`
}

// Log selects the slog level.
type Log struct {
	Level string `yaml:"level"`
}

// Output selects how results are printed.
type Output struct {
	Format string `yaml:"format"`
	Color  bool   `yaml:"color"`
}

// Metrics configures the Prometheus textfile export; empty File disables it.
type Metrics struct {
	File string `yaml:"file"`
}

// Default returns the classic escalation run:
// n from 1 to 5, starting at a budget of 100, never-halts check on.
func Default() Config {
	return Config{
		Search: Search{
			FromStates:    1,
			ToStates:      5,
			InitialBudget: 100,
			NeverHalts:    true,
			ProgressEvery: 10_000_000,
		},
		Log:    Log{Level: logging.LevelWarn},
		Output: Output{Format: FormatText, Color: true},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(data) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	s := c.Search
	switch {
	case s.FromStates < 1 || s.FromStates > atm.MaxStates:
		return fmt.Errorf("%w: from_states %d not in 1..%d", ErrInvalid, s.FromStates, atm.MaxStates)
	case s.ToStates < s.FromStates || s.ToStates > atm.MaxStates:
		return fmt.Errorf("%w: to_states %d not in %d..%d", ErrInvalid, s.ToStates, s.FromStates, atm.MaxStates)
	case s.InitialBudget == 0 || s.InitialBudget > search.BudgetLimit:
		return fmt.Errorf("%w: initial_budget %d not in 1..%d", ErrInvalid, s.InitialBudget, uint64(search.BudgetLimit))
	case s.MaxBudget > search.BudgetLimit:
		return fmt.Errorf("%w: max_budget %d above %d", ErrInvalid, s.MaxBudget, uint64(search.BudgetLimit))
	case s.MaxBudget != 0 && s.MaxBudget < s.InitialBudget:
		return fmt.Errorf("%w: max_budget %d below initial_budget %d", ErrInvalid, s.MaxBudget, s.InitialBudget)
	case s.Timeout < 0:
		return fmt.Errorf("%w: negative timeout %s", ErrInvalid, s.Timeout)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	switch c.Output.Format {
	case FormatText, FormatTable, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: output format %q", ErrInvalid, c.Output.Format)
	}

	return nil
}
