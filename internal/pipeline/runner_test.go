package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filedrift/renamekit/internal/config"
)

type fakeRecorder struct {
	startedDir string
	records    [][2]string
	finished   bool
	renamed    int
	skipped    int
	failed     int
}

func (f *fakeRecorder) StartRun(_ context.Context, dir string) (string, error) {
	f.startedDir = dir
	return "run-1", nil
}

func (f *fakeRecorder) RecordRename(_ context.Context, _, oldPath, newPath string) error {
	f.records = append(f.records, [2]string{oldPath, newPath})
	return nil
}

func (f *fakeRecorder) FinishRun(_ context.Context, _ string, renamed, skipped, failed int) error {
	f.finished = true
	f.renamed, f.skipped, f.failed = renamed, skipped, failed
	return nil
}

func runConfig(dir string) config.Config {
	cfg := config.DefaultConfig()
	cfg.Directory = dir
	cfg.ColorMode = config.ColorNever
	return cfg
}

func TestRun_DryRunNeverMutates(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "My Photo #1.jpg")
	touch(t, dir, "b.txt")
	before := listNames(t, dir)

	cfg := runConfig(dir)
	cfg.Transforms.Sanitize = true
	cfg.Transforms.Sequential = true
	cfg.Transforms.Digits = 3

	stats, err := Run(context.Background(), &cfg, testLogger(t), nil)
	require.NoError(t, err)

	assert.Equal(t, before, listNames(t, dir), "dry run must not touch the filesystem")
	assert.Equal(t, 2, stats.Renamed, "dry run still reports the would-rename count")
	assert.Zero(t, stats.Failed)
}

func TestRun_ExecuteSequential(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt")
	touch(t, dir, "b.txt")
	touch(t, dir, "c.txt")

	cfg := runConfig(dir)
	cfg.Execute = true
	cfg.Transforms.Sequential = true
	cfg.Transforms.Digits = 2

	rec := &fakeRecorder{}
	stats, err := Run(context.Background(), &cfg, testLogger(t), rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"a_01.txt", "b_02.txt", "c_03.txt"}, listNames(t, dir))
	assert.Equal(t, 3, stats.Renamed)
	assert.Zero(t, stats.Skipped)
	assert.Zero(t, stats.Failed)

	assert.Equal(t, dir, rec.startedDir)
	assert.Len(t, rec.records, 3)
	assert.True(t, rec.finished)
	assert.Equal(t, 3, rec.renamed)
}

func TestRun_ExecuteSkipsExistingTarget(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "photo.png")
	touch(t, dir, "IMG_photo.png")

	cfg := runConfig(dir)
	cfg.Execute = true
	cfg.Transforms.Prefix = "IMG_"

	stats, err := Run(context.Background(), &cfg, testLogger(t), nil)
	require.NoError(t, err)

	// IMG_photo.png itself gets the prefix; photo.png is skipped.
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Renamed)
	assert.Contains(t, listNames(t, dir), "photo.png", "skipped source must remain")
	assert.Contains(t, listNames(t, dir), "IMG_IMG_photo.png")
}

func TestRun_DryRunSkipsExistingTarget(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "photo.png")
	touch(t, dir, "IMG_photo.png")

	cfg := runConfig(dir)
	cfg.Transforms.Prefix = "IMG_"

	stats, err := Run(context.Background(), &cfg, testLogger(t), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Skipped, "collision skip applies in dry-run mode too")
	assert.Equal(t, 1, stats.Renamed)
}

func TestRun_EmptyDirectory(t *testing.T) {
	cfg := runConfig(t.TempDir())
	cfg.Transforms.Sanitize = true

	stats, err := Run(context.Background(), &cfg, testLogger(t), nil)
	require.NoError(t, err, "empty directory is not an error")
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Renamed)
}

func TestRun_MissingDirectory(t *testing.T) {
	cfg := runConfig(filepath.Join(t.TempDir(), "nope"))
	cfg.Transforms.Sanitize = true

	_, err := Run(context.Background(), &cfg, testLogger(t), nil)
	require.ErrorIs(t, err, ErrDirNotFound)
}

func TestRun_PrefixAppliedBlindlyAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "photo.png")

	cfg := runConfig(dir)
	cfg.Execute = true
	cfg.Transforms.Prefix = "IMG_"

	_, err := Run(context.Background(), &cfg, testLogger(t), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"IMG_photo.png"}, listNames(t, dir))

	_, err = Run(context.Background(), &cfg, testLogger(t), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"IMG_IMG_photo.png"}, listNames(t, dir))
}

func TestRun_ContinuesAfterRenameFailure(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission-based failure injection does not work as root")
	}

	dir := t.TempDir()
	sub := filepath.Join(dir, "locked")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	touch(t, sub, "a one.txt")
	other := filepath.Join(dir, "open")
	require.NoError(t, os.MkdirAll(other, 0o755))
	touch(t, other, "b one.txt")

	// Remove write permission so the rename inside fails.
	require.NoError(t, os.Chmod(sub, 0o555))
	t.Cleanup(func() { os.Chmod(sub, 0o755) })

	cfg := runConfig(dir)
	cfg.Recursive = true
	cfg.Execute = true
	cfg.Transforms.Sanitize = true

	stats, err := Run(context.Background(), &cfg, testLogger(t), nil)
	require.NoError(t, err, "per-entry failures must not abort the run")
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, stats.Renamed)
	assert.Equal(t, []string{"b_one.txt"}, listNames(t, other))
}
