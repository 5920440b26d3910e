// Package cliconfig loads the mbexport CLI configuration from flags,
// environment variables and a TOML file, in that order of precedence.
package cliconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/veltmail/mbexport/internal/domain"
)

// DefaultBatchSize is the number of rows per batch file unless overridden.
const DefaultBatchSize = 25

// DefaultSite is the directory site queries are scoped to unless the run
// is forest-wide or another site is configured.
const DefaultSite = "default"

// Config holds CLI configuration for mbexport.
type Config struct {
	Category string
	Location string

	BatchSize    int
	EntireForest bool
	BatchFolder  bool

	OutputDir string

	DatabaseURL string
	Site        string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		BatchSize: DefaultBatchSize,
		OutputDir: ".",
		Site:      DefaultSite,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Category == "" {
		return fmt.Errorf("%w: category is required", domain.ErrInvalidConfig)
	}
	if _, err := c.Categories(); err != nil {
		return err
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive, got %d", domain.ErrInvalidConfig, c.BatchSize)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory is required", domain.ErrInvalidConfig)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("%w: database URL is required", domain.ErrInvalidConfig)
	}
	return nil
}

// Categories resolves the configured category selector into the list of
// categories to process. The value "all" expands to every category in the
// fixed export order.
func (c *Config) Categories() ([]domain.Category, error) {
	if strings.EqualFold(strings.TrimSpace(c.Category), "all") {
		return domain.AllCategories, nil
	}
	cat, err := domain.ParseCategory(c.Category)
	if err != nil {
		return nil, err
	}
	return []domain.Category{cat}, nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
