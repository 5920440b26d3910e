package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (MBEXPORT_*).
// It respects flags that have been explicitly set (changed map).
// Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("category", os.Getenv("MBEXPORT_CATEGORY"), &cfg.Category)
	s.setString("location", os.Getenv("MBEXPORT_LOCATION"), &cfg.Location)
	s.setString("out", os.Getenv("MBEXPORT_OUTPUT_DIR"), &cfg.OutputDir)
	s.setString("db-url", os.Getenv("MBEXPORT_DATABASE_URL"), &cfg.DatabaseURL)
	s.setString("site", os.Getenv("MBEXPORT_SITE"), &cfg.Site)

	if err := s.setIntFromString("batch-size", os.Getenv("MBEXPORT_BATCH_SIZE"), &cfg.BatchSize); err != nil {
		return err
	}

	s.setBoolFromString("entire-forest", os.Getenv("MBEXPORT_ENTIRE_FOREST"), &cfg.EntireForest)
	s.setBoolFromString("batch-folder", os.Getenv("MBEXPORT_BATCH_FOLDER"), &cfg.BatchFolder)

	return nil
}
