// Package config provides configuration management.
package config

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"home-load/core/types"
	"home-load/internal/errors"
	"home-load/internal/logging"
)

// Minimum and default unit cost per kWh accepted at the input boundary.
const (
	MinUnitCost     = 1.0
	DefaultUnitCost = 7.0
)

// DefaultHoursPerDay is the daily usage assumption for cost projection.
const DefaultHoursPerDay = 4.0

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Estimate contains calculation defaults
	Estimate EstimateConfig `json:"estimate" yaml:"estimate"`

	// Currency is the billing currency used when rendering costs
	Currency types.Currency `json:"currency" yaml:"currency"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// EstimateConfig contains calculation defaults offered to the user
type EstimateConfig struct {
	// UnitCost is the default price per kWh
	UnitCost float64 `json:"unit_cost" yaml:"unit_cost"`

	// HoursPerDay is the assumed daily usage of the full load
	HoursPerDay float64 `json:"hours_per_day" yaml:"hours_per_day"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" yaml:"default_format"`

	// Color enables ANSI styling in the cli format
	Color bool `json:"color" yaml:"color"`

	// RenderMarkdown renders the markdown format for the terminal
	RenderMarkdown bool `json:"render_markdown" yaml:"render_markdown"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Estimate: EstimateConfig{
			UnitCost:    DefaultUnitCost,
			HoursPerDay: DefaultHoursPerDay,
		},
		Currency: types.CurrencyPKR,
		Output: OutputConfig{
			DefaultFormat:  "cli",
			Color:          true,
			RenderMarkdown: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load loads configuration from a JSON or YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("failed to read config", err)
	}

	cfg := Default()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.Config("failed to decode "+filepath.Base(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configured defaults against the input boundary rules.
func (c *Config) Validate() error {
	if err := CheckUnitCost(c.Estimate.UnitCost); err != nil {
		return errors.Config("invalid estimate.unit_cost", err)
	}
	if err := CheckHoursPerDay(c.Estimate.HoursPerDay); err != nil {
		return errors.Config("invalid estimate.hours_per_day", err)
	}
	if c.Currency == "" {
		return errors.Config("invalid currency", errors.InvalidInput("currency", "must not be empty"))
	}
	return nil
}

// CheckUnitCost rejects a unit cost below MinUnitCost or one that is not finite.
func CheckUnitCost(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.InvalidInput("unit_cost", "must be a finite number, got %g", v)
	}
	if v < MinUnitCost {
		return errors.InvalidInput("unit_cost", "must be at least %.2f, got %.2f", MinUnitCost, v)
	}
	return nil
}

// CheckHoursPerDay rejects usage hours outside (0, 24], NaN included.
func CheckHoursPerDay(v float64) error {
	if !(v > 0 && v <= 24) {
		return errors.InvalidInput("hours_per_day", "must be in (0, 24], got %g", v)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
