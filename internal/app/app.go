// Package app orchestrates an export run: for each requested recipient
// category it selects and exports the master CSV, then splits it into
// numbered batch files. Categories are processed strictly one at a time.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/veltmail/mbexport/internal/batch"
	"github.com/veltmail/mbexport/internal/domain"
	"github.com/veltmail/mbexport/internal/ports"
	"github.com/veltmail/mbexport/internal/selector"
	"github.com/veltmail/mbexport/pkg/log"
)

// BatchFolderName is the subfolder batch files are routed into when the
// run is configured to keep them out of the output directory.
const BatchFolderName = "Batches"

// Config contains the settings for one export run.
type Config struct {
	// Categories to export, in order. Use domain.AllCategories for an
	// "all" run.
	Categories []domain.Category

	// Location optionally restricts queries to one mailbox database.
	Location string

	// BatchSize is the maximum number of rows per batch file.
	BatchSize int

	// EntireForest widens directory queries to every site.
	EntireForest bool

	// BatchFolder routes batch files into the Batches subfolder instead of
	// writing them next to the master files.
	BatchFolder bool

	// OutputDir is where master files (and, without BatchFolder, batch
	// files) are written.
	OutputDir string
}

// Runner executes export runs against a directory backend.
type Runner struct {
	dir    ports.Directory
	logger log.Logger
}

// NewRunner creates a Runner using the given directory and logger.
func NewRunner(dir ports.Directory, logger log.Logger) *Runner {
	return &Runner{dir: dir, logger: logger}
}

// Run processes cfg.Categories sequentially: each category's master file is
// fully exported and split before the next category starts. The first
// category that fails aborts the run; files written for earlier categories
// remain on disk.
func (r *Runner) Run(ctx context.Context, cfg Config) error {
	scope := ports.Scope{EntireForest: cfg.EntireForest}
	exporter := selector.NewExporter(r.dir, scope, cfg.OutputDir, r.logger)
	splitter := batch.NewSplitter(r.logger)

	batchDir := cfg.OutputDir
	if cfg.BatchFolder {
		batchDir = filepath.Join(cfg.OutputDir, BatchFolderName)
	}

	for _, category := range cfg.Categories {
		master, err := exporter.SelectAndExport(ctx, category, cfg.Location)
		if err != nil {
			return fmt.Errorf("export %s: %w", category, err)
		}

		prefix := selector.FilePrefix(category, cfg.Location) + "-"
		paths, err := splitter.Split(master, batchDir, prefix, cfg.BatchSize)
		if err != nil {
			return fmt.Errorf("split %s: %w", category, err)
		}

		r.logger.Info("category done",
			log.String("category", category.String()),
			log.Int("batch_files", len(paths)))
	}
	return nil
}
