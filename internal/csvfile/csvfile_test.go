package csvfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veltmail/mbexport/internal/domain"
	"github.com/veltmail/mbexport/pkg/log"
)

func TestWriteReadRoundTripPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.csv")
	records := []domain.AddressRecord{
		{EmailAddress: "zeta@example.com"},
		{EmailAddress: "alpha@example.com"},
		{EmailAddress: "mid@example.com"},
	}

	require.NoError(t, WriteAddresses(path, records, log.NewNoopLogger()))

	got, err := ReadAddresses(path)
	require.NoError(t, err)
	require.Equal(t, records, got, "row order must survive the round trip")
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.csv")

	old := []domain.AddressRecord{{EmailAddress: "old@example.com"}}
	require.NoError(t, WriteAddresses(path, old, log.NewNoopLogger()))

	replacement := []domain.AddressRecord{{EmailAddress: "new@example.com"}}
	require.NoError(t, WriteAddresses(path, replacement, log.NewNoopLogger()))

	got, err := ReadAddresses(path)
	require.NoError(t, err)
	require.Equal(t, replacement, got, "a re-run must overwrite, never append")
}

func TestWriteEmptyRecordsProducesHeaderOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.csv")
	require.NoError(t, WriteAddresses(path, nil, log.NewNoopLogger()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, Header+"\n", string(b))

	got, err := ReadAddresses(path)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReadRejectsUnexpectedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("DisplayName\nfoo\n"), 0o644))

	_, err := ReadAddresses(path)
	require.Error(t, err)
}

func TestReadMissingFileReturnsError(t *testing.T) {
	_, err := ReadAddresses(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}
