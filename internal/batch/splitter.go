// Package batch partitions a master address CSV into fixed-size,
// sequentially numbered batch files for migration-batch input.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/veltmail/mbexport/internal/csvfile"
	"github.com/veltmail/mbexport/pkg/log"
)

// Splitter splits master CSV files into numbered batch files.
type Splitter struct {
	logger log.Logger
}

// NewSplitter creates a splitter that logs through the given logger.
func NewSplitter(logger log.Logger) *Splitter {
	return &Splitter{logger: logger}
}

// Split reads the master file at masterPath and writes its rows into
// batch files of at most size rows each, named <prefix><index>.csv under
// outDir. Indices are 1-based and zero-padded to the width of the total
// batch count. The header row is re-emitted in every batch file.
//
// A missing master file is a no-op: categories that produced no master
// file are skipped with an informational log entry, not an error.
// Pre-existing batch files at the target paths are deleted before writing,
// so re-running over unchanged input yields byte-identical output.
//
// Returns the ordered list of batch file paths written.
func (s *Splitter) Split(masterPath, outDir, prefix string, size int) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", size)
	}

	if _, err := os.Stat(masterPath); os.IsNotExist(err) {
		s.logger.Info("master file not found, nothing to split",
			log.String("path", masterPath))
		return nil, nil
	}

	records, err := csvfile.ReadAddresses(masterPath)
	if err != nil {
		return nil, fmt.Errorf("read master file: %w", err)
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	count := batchCount(len(records), size)
	width := len(strconv.Itoa(count))

	paths := make([]string, 0, count)
	for k := 1; k <= count; k++ {
		lo := (k - 1) * size
		hi := min(k*size, len(records))

		name := fmt.Sprintf("%s%0*d.csv", prefix, width, k)
		path := filepath.Join(outDir, name)

		if err := csvfile.WriteAddresses(path, records[lo:hi], s.logger); err != nil {
			return nil, fmt.Errorf("write batch %d: %w", k, err)
		}
		paths = append(paths, path)
	}

	s.logger.Info("split master file",
		log.String("master", masterPath),
		log.Int("rows", len(records)),
		log.Int("batches", count))
	return paths, nil
}

// batchCount returns the number of batch files for n rows at the given
// batch size. Fewer rows than one full batch (including zero rows) always
// yield a single batch rather than none.
func batchCount(n, size int) int {
	if n < size {
		return 1
	}
	return (n + size - 1) / size
}
