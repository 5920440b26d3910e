package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with pointer booleans so an absent key can be
// told apart from an explicit false.
type FileConfig struct {
	Category     string `toml:"category"`
	Location     string `toml:"location"`
	BatchSize    int    `toml:"batch_size"`
	EntireForest *bool  `toml:"entire_forest"`
	BatchFolder  *bool  `toml:"batch_folder"`
	OutputDir    string `toml:"output_dir"`
	DatabaseURL  string `toml:"database_url"`
	Site         string `toml:"site"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.mbexport/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".mbexport", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("category", fc.Category, &cfg.Category)
	s.setString("location", fc.Location, &cfg.Location)
	s.setString("out", fc.OutputDir, &cfg.OutputDir)
	s.setString("db-url", fc.DatabaseURL, &cfg.DatabaseURL)
	s.setString("site", fc.Site, &cfg.Site)

	s.setInt("batch-size", fc.BatchSize, &cfg.BatchSize)

	s.setBool("entire-forest", fc.EntireForest, &cfg.EntireForest)
	s.setBool("batch-folder", fc.BatchFolder, &cfg.BatchFolder)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
