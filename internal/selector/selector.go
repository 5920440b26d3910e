// Package selector enumerates mailboxes of a recipient category from the
// directory and exports their primary addresses to a master CSV file.
//
// Each category is served by a fetch strategy (see strategy.go); the
// Exporter wraps strategy selection, location validation and the master
// file write into a single operation.
package selector

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/veltmail/mbexport/internal/csvfile"
	"github.com/veltmail/mbexport/internal/domain"
	"github.com/veltmail/mbexport/internal/ports"
	"github.com/veltmail/mbexport/pkg/log"
)

// Exporter selects mailbox populations and writes master CSV files.
type Exporter struct {
	dir    ports.Directory
	scope  ports.Scope
	outDir string
	logger log.Logger
}

// NewExporter creates an Exporter writing master files into outDir.
// The scope is fixed per Exporter because one run queries at one width.
func NewExporter(dir ports.Directory, scope ports.Scope, outDir string, logger log.Logger) *Exporter {
	return &Exporter{dir: dir, scope: scope, outDir: outDir, logger: logger}
}

// SelectAndExport fetches the mailbox population for category, optionally
// restricted to the named storage location, and writes the primary
// addresses to a master CSV file. It returns the master file path.
//
// A non-empty location is validated first; a location that does not exist
// in the directory fails fast with domain.ErrLocationNotFound and no file
// is written. An empty population still produces a header-only master file
// so the batch splitter sees a consistent artifact.
func (e *Exporter) SelectAndExport(ctx context.Context, category domain.Category, location string) (string, error) {
	if location != "" {
		ok, err := e.dir.LocationExists(ctx, location)
		if err != nil {
			return "", fmt.Errorf("check location %q: %w", location, err)
		}
		if !ok {
			return "", fmt.Errorf("%w: %q", domain.ErrLocationNotFound, location)
		}
	}

	strategy := strategyFor(category, e.dir, e.scope, e.logger)
	records, err := strategy.fetch(ctx, location)
	if err != nil {
		return "", fmt.Errorf("fetch %s mailboxes: %w", category, err)
	}

	if len(records) == 0 {
		e.logger.Info("no mailboxes found",
			log.String("category", category.String()),
			log.String("location", location))
	}

	path := filepath.Join(e.outDir, MasterFileName(category, location))
	if err := csvfile.WriteAddresses(path, records, e.logger); err != nil {
		return "", fmt.Errorf("write master file: %w", err)
	}

	e.logger.Info("exported master file",
		log.String("category", category.String()),
		log.String("path", path),
		log.Int("rows", len(records)))
	return path, nil
}

// MasterFileName returns the master file name for a category and optional
// location, e.g. "UserMailboxes.csv" or "UserMailboxes-DB01.csv".
func MasterFileName(category domain.Category, location string) string {
	return FilePrefix(category, location) + ".csv"
}

// FilePrefix returns the base name shared by a category's master file and
// its batch files. Batch files append "-<index>.csv" to this prefix.
func FilePrefix(category domain.Category, location string) string {
	base := category.DisplayName() + "Mailboxes"
	if location != "" {
		base += "-" + location
	}
	return base
}
