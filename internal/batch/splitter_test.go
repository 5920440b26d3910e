package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veltmail/mbexport/internal/csvfile"
	"github.com/veltmail/mbexport/internal/domain"
	"github.com/veltmail/mbexport/pkg/log"
)

func writeMaster(t *testing.T, dir string, n int) (string, []domain.AddressRecord) {
	t.Helper()
	records := make([]domain.AddressRecord, n)
	for i := range records {
		records[i] = domain.AddressRecord{EmailAddress: fmt.Sprintf("user%04d@example.com", i)}
	}
	path := filepath.Join(dir, "master.csv")
	require.NoError(t, csvfile.WriteAddresses(path, records, log.NewNoopLogger()))
	return path, records
}

func TestSplit_SixtyRowsBatchSize25(t *testing.T) {
	dir := t.TempDir()
	master, records := writeMaster(t, dir, 60)

	s := NewSplitter(log.NewNoopLogger())
	paths, err := s.Split(master, dir, "Addrs-", 25)
	require.NoError(t, err)

	require.Equal(t, []string{
		filepath.Join(dir, "Addrs-1.csv"),
		filepath.Join(dir, "Addrs-2.csv"),
		filepath.Join(dir, "Addrs-3.csv"),
	}, paths)

	var sizes []int
	var combined []domain.AddressRecord
	for _, p := range paths {
		rows, err := csvfile.ReadAddresses(p)
		require.NoError(t, err)
		sizes = append(sizes, len(rows))
		combined = append(combined, rows...)
	}
	require.Equal(t, []int{25, 25, 10}, sizes)
	require.Equal(t, records, combined, "concatenated batches must reproduce the master rows in order")
}

func TestSplit_FewerRowsThanBatchSize(t *testing.T) {
	dir := t.TempDir()
	master, records := writeMaster(t, dir, 5)

	paths, err := NewSplitter(log.NewNoopLogger()).Split(master, dir, "Addrs-", 25)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "Addrs-1.csv")}, paths)

	rows, err := csvfile.ReadAddresses(paths[0])
	require.NoError(t, err)
	require.Equal(t, records, rows)
}

func TestSplit_EmptyMasterWritesSingleHeaderOnlyBatch(t *testing.T) {
	dir := t.TempDir()
	master, _ := writeMaster(t, dir, 0)

	paths, err := NewSplitter(log.NewNoopLogger()).Split(master, dir, "Addrs-", 25)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	rows, err := csvfile.ReadAddresses(paths[0])
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestSplit_ZeroPaddingWidthTracksBatchCount(t *testing.T) {
	tests := []struct {
		rows      int
		size      int
		batches   int
		firstName string
		lastName  string
	}{
		{rows: 7, size: 1, batches: 7, firstName: "p1.csv", lastName: "p7.csv"},
		{rows: 10, size: 1, batches: 10, firstName: "p01.csv", lastName: "p10.csv"},
		{rows: 100, size: 1, batches: 100, firstName: "p001.csv", lastName: "p100.csv"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_batches", tt.batches), func(t *testing.T) {
			dir := t.TempDir()
			master, _ := writeMaster(t, dir, tt.rows)

			paths, err := NewSplitter(log.NewNoopLogger()).Split(master, dir, "p", tt.size)
			require.NoError(t, err)
			require.Len(t, paths, tt.batches)
			require.Equal(t, filepath.Join(dir, tt.firstName), paths[0])
			require.Equal(t, filepath.Join(dir, tt.lastName), paths[len(paths)-1])
		})
	}
}

func TestSplit_MissingMasterIsNoOp(t *testing.T) {
	dir := t.TempDir()

	paths, err := NewSplitter(log.NewNoopLogger()).Split(filepath.Join(dir, "absent.csv"), dir, "p", 25)
	require.NoError(t, err)
	require.Nil(t, paths)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "no-op split must not write anything")
}

func TestSplit_RerunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	master, _ := writeMaster(t, dir, 60)

	s := NewSplitter(log.NewNoopLogger())
	first, err := s.Split(master, dir, "Addrs-", 25)
	require.NoError(t, err)

	before := make(map[string][]byte, len(first))
	for _, p := range first {
		b, err := os.ReadFile(p)
		require.NoError(t, err)
		before[p] = b
	}

	second, err := s.Split(master, dir, "Addrs-", 25)
	require.NoError(t, err)
	require.Equal(t, first, second)

	for _, p := range second {
		b, err := os.ReadFile(p)
		require.NoError(t, err)
		require.Equal(t, before[p], b, "re-run must produce byte-identical batch files")
	}
}

func TestSplit_CreatesOutputDir(t *testing.T) {
	dir := t.TempDir()
	master, _ := writeMaster(t, dir, 3)

	out := filepath.Join(dir, "Batches")
	paths, err := NewSplitter(log.NewNoopLogger()).Split(master, out, "p", 25)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.FileExists(t, filepath.Join(out, "p1.csv"))
}

func TestSplit_RejectsNonPositiveBatchSize(t *testing.T) {
	dir := t.TempDir()
	master, _ := writeMaster(t, dir, 3)

	_, err := NewSplitter(log.NewNoopLogger()).Split(master, dir, "p", 0)
	require.Error(t, err)
}

func TestBatchCount(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 25, 1},
		{5, 25, 1},
		{25, 25, 1},
		{26, 25, 2},
		{60, 25, 3},
		{250, 25, 10},
	}
	for _, tt := range tests {
		require.Equalf(t, tt.want, batchCount(tt.n, tt.size), "batchCount(%d, %d)", tt.n, tt.size)
	}
}
