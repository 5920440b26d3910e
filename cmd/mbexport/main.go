package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	mbexport "github.com/veltmail/mbexport"
	"github.com/veltmail/mbexport/internal/cliconfig"
	"github.com/veltmail/mbexport/pkg/log"
)

const helpDescription = `
Export mailbox primary addresses from the directory to CSV and split them
into numbered batch files sized for migration-batch input.

Highlights:
  - One master CSV per recipient category (user, shared, room, equipment,
    publicfolder, arbitration, archive), or all of them in a fixed order.
  - Optional storage-location filter restricts the export to one mailbox
    database; the location is validated before anything is written.
  - Batch files are zero-padded, contiguous, and idempotent on re-runs.
`

var exampleUsage = strings.TrimSpace(`
  mbexport --category user --db-url postgres://directory
  mbexport --category arbitration --location DB01 --batch-size 50
  mbexport --category all --batch-folder --out ./export
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := log.NewZerologAdapter()

	root := &cobra.Command{
		Use:     "mbexport",
		Short:   "Export mailbox addresses to CSV migration batches",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.mbexport/config.toml),
			// then apply env and flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables (MBEXPORT_*)
			// These override file config but are overridden by flags.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			// Log configuration (masking database credentials)
			logCfg := cfg
			if logCfg.DatabaseURL != "" {
				logCfg.DatabaseURL = "*****"
			}
			logger.Info("configuration", log.Any("config", logCfg))

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return mbexport.Run(ctx, cfg, logger)
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.mbexport/config.toml)")
	root.Flags().StringVar(&cfg.Category, "category", cfg.Category, "recipient category to export (user, shared, room, equipment, publicfolder, arbitration, archive, all)")
	root.Flags().StringVar(&cfg.Location, "location", cfg.Location, "restrict the export to one mailbox database (validated before export)")

	root.Flags().IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "maximum rows per batch file")
	root.Flags().BoolVar(&cfg.EntireForest, "entire-forest", cfg.EntireForest, "widen directory queries to every site")
	root.Flags().BoolVar(&cfg.BatchFolder, "batch-folder", cfg.BatchFolder, "write batch files into a Batches subfolder")

	root.Flags().StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory for master and batch files")
	root.Flags().StringVar(&cfg.DatabaseURL, "db-url", cfg.DatabaseURL, "directory store connection URL")
	root.Flags().StringVar(&cfg.Site, "site", cfg.Site, "local directory site for non-forest-wide queries")

	if err := root.Execute(); err != nil {
		logger.Error("mbexport", log.Err(err))
		os.Exit(1)
	}
}
