package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/ingest"
	"ads-reconciler/internal/core/port"
)

func newTestImportService(t *testing.T, emails ...string) (*ImportService, *engineFixture) {
	t.Helper()
	f := newEngineFixture(t, emails...)
	svc := NewImportService(f.engine, f.ledger, discardLogger())
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC) }
	return svc, f
}

func TestImportFileMovesProcessedFiles(t *testing.T) {
	svc, _ := newTestImportService(t, "a@x.com")
	dir := t.TempDir()
	path := filepath.Join(dir, "june.csv")
	require.NoError(t, os.WriteFile(path, []byte(genericHeader+
		"a@x.com,Search,google,2024-01-01,1,1,1,1,,\n"+
		"ghost@x.com,Search,google,2024-01-01,1,1,1,1,,\n"), 0o644))

	opts, err := ingest.ProfileOptions(ingest.ProfileScheduled)
	require.NoError(t, err)
	res, err := svc.ImportFile(context.Background(), path, opts, domain.SourceScheduler)
	require.NoError(t, err)
	assert.True(t, res.Success, "partial failure still counts as processed")
	assert.Equal(t, 1, res.RowsFailed)

	assert.NoFileExists(t, path)
	assert.FileExists(t, filepath.Join(dir, "processed", "20240601_123045_june.csv"))

	seen, err := svc.Seen(context.Background(), "june.csv")
	require.NoError(t, err)
	assert.True(t, seen)

	batch, err := svc.GetBatch(context.Background(), res.BatchID)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceScheduler, batch.Source)
	assert.Equal(t, path, batch.FilePath)
}

func TestImportFileMovesFailedFilesToErrors(t *testing.T) {
	svc, _ := newTestImportService(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.csv")
	require.NoError(t, os.WriteFile(path, []byte("campaign_name,date\nSearch,2024-01-01\n"), 0o644))

	opts, err := ingest.ProfileOptions(ingest.ProfileScheduled)
	require.NoError(t, err)
	res, err := svc.ImportFile(context.Background(), path, opts, domain.SourceScheduler)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.FileExists(t, filepath.Join(dir, "errors", "20240601_123045_broken.csv"))

	list, err := svc.ListBatches(context.Background(), port.BatchFilter{Status: domain.BatchFailed})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "broken.csv", list[0].Filename)
}

func TestImportFileMissingFile(t *testing.T) {
	svc, _ := newTestImportService(t)
	opts, err := ingest.ProfileOptions(ingest.ProfileScheduled)
	require.NoError(t, err)

	_, err = svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), opts, domain.SourceCLI)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
