// Package csvfile reads and writes the CSV artifacts exchanged between the
// selector and the batch splitter: a header row followed by one primary
// email address per data row, UTF-8, comma-delimited.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/veltmail/mbexport/internal/domain"
	"github.com/veltmail/mbexport/pkg/log"
)

// Header is the single column name carried by every master and batch file.
const Header = "EmailAddress"

// WriteAddresses writes records to path as a CSV with the standard header.
// Any pre-existing file at path is deleted first so a re-run always produces
// a clean overwrite, never an append. The removal is logged at warn level
// because it discards a previous run's output.
func WriteAddresses(path string, records []domain.AddressRecord, logger log.Logger) error {
	if _, err := os.Stat(path); err == nil {
		logger.Warn("overwriting existing file", log.String("path", path))
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{Header}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := w.Write([]string{r.EmailAddress}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

// ReadAddresses reads a CSV written by WriteAddresses back into an ordered
// slice of records. The header row is validated and skipped. Row order is
// preserved exactly.
func ReadAddresses(path string) ([]domain.AddressRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read %s: missing header row", path)
	}
	if rows[0][0] != Header {
		return nil, fmt.Errorf("read %s: unexpected header %q", path, rows[0][0])
	}

	records := make([]domain.AddressRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, domain.AddressRecord{EmailAddress: row[0]})
	}
	return records, nil
}
