// Package mbexport exports mail-directory mailbox addresses to CSV and
// splits them into fixed-size migration batch files.
//
// Example usage:
//
//	cfg := mbexport.DefaultConfig()
//	cfg.Category = "user"
//	cfg.DatabaseURL = "postgres://directory"
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	logger := log.NewZerologAdapter()
//	if err := mbexport.Run(context.Background(), cfg, logger); err != nil {
//	    log.Fatal(err)
//	}
package mbexport

import (
	"context"

	"github.com/veltmail/mbexport/internal/adapters/pgdir"
	"github.com/veltmail/mbexport/internal/app"
	"github.com/veltmail/mbexport/internal/cliconfig"
	"github.com/veltmail/mbexport/pkg/log"
)

// Config holds the configuration for an export run.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// DefaultConfig returns a Config with sensible default values.
// At minimum, you must set Category and DatabaseURL before calling Run.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// Run executes one export run with the given configuration: for each
// requested category it writes the master CSV and splits it into batch
// files. It connects to the directory store named by cfg.DatabaseURL and
// logs through logger (pass log.NewNoopLogger() to silence output).
func Run(ctx context.Context, cfg Config, logger log.Logger) error {
	categories, err := cfg.Categories()
	if err != nil {
		return err
	}

	dir, err := pgdir.New(ctx, cfg.DatabaseURL, cfg.Site)
	if err != nil {
		return err
	}
	defer dir.Close()

	return app.NewRunner(dir, logger).Run(ctx, app.Config{
		Categories:   categories,
		Location:     cfg.Location,
		BatchSize:    cfg.BatchSize,
		EntireForest: cfg.EntireForest,
		BatchFolder:  cfg.BatchFolder,
		OutputDir:    cfg.OutputDir,
	})
}
