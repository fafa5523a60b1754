package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MarcoT95/static/configs"
	"github.com/MarcoT95/static/entity"
	"github.com/MarcoT95/static/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncDirIndexesLogFiles(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "2026-08-29-app.log"), []byte("line\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2026-08-29-error.log"), []byte("boom\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2026-08-01-app.log.gz"), []byte{0x1f, 0x8b}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))

	svc := NewLogFileService(repository.NewLogFileRepository(db))
	require.NoError(t, svc.SyncDir(dir))

	files, err := svc.Repo.List()
	require.NoError(t, err)
	require.Len(t, files, 3)

	byName := map[string]entity.LogFile{}
	for _, f := range files {
		byName[f.FileName] = f
	}
	assert.Equal(t, entity.LogLevelApp, byName["2026-08-29-app.log"].Level)
	assert.Equal(t, entity.LogLevelError, byName["2026-08-29-error.log"].Level)
	assert.EqualValues(t, 5, byName["2026-08-29-app.log"].SizeBytes)
	assert.NotContains(t, byName, "notes.txt")
}

func TestSyncDirUpsertsByPath(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "2026-08-29-app.log")

	require.NoError(t, os.WriteFile(path, []byte("v1\n"), 0o644))
	svc := NewLogFileService(repository.NewLogFileRepository(db))
	require.NoError(t, svc.SyncDir(dir))

	require.NoError(t, os.WriteFile(path, []byte("v1\nv2 longer\n"), 0o644))
	require.NoError(t, svc.SyncDir(dir))

	files, err := svc.Repo.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.EqualValues(t, 13, files[0].SizeBytes)
}

func TestSyncDirMissingDirIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogFileService(repository.NewLogFileRepository(db))
	require.NoError(t, svc.SyncDir(filepath.Join(t.TempDir(), "nope")))

	files, err := svc.Repo.List()
	require.NoError(t, err)
	assert.Empty(t, files)
}

// Boot runs sweep, prune, then resync against the configured (often
// relative) log dir; sweep and index must agree on the path key or a
// swept file leaves a stale row behind.
func TestSweepThenPruneWithRelativeDir(t *testing.T) {
	db := newTestDB(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.MkdirAll("logs", 0o755))
	path := filepath.Join("logs", "2026-01-01-app.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))
	stale := time.Now().AddDate(0, 0, -30)
	require.NoError(t, os.Chtimes(path, stale, stale))

	cfg := &configs.Config{LogsDir: "logs", LogRetentionDays: 14}
	svc := NewLogFileService(repository.NewLogFileRepository(db))
	require.NoError(t, svc.SyncDir(cfg.LogsDir))

	removed, err := configs.SweepOldLogs(cfg)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	require.NoError(t, svc.Prune(removed))
	require.NoError(t, svc.SyncDir(cfg.LogsDir))

	files, err := svc.Repo.List()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestPruneDropsIndexRows(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "2026-01-01-app.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	svc := NewLogFileService(repository.NewLogFileRepository(db))
	require.NoError(t, svc.SyncDir(dir))

	require.NoError(t, svc.Prune([]string{path}))

	files, err := svc.Repo.List()
	require.NoError(t, err)
	assert.Empty(t, files)
}
