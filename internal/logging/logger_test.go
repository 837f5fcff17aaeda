package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filedrift/renamekit/internal/config"
)

func newBufferLogger() (*Logger, *bytes.Buffer, *bytes.Buffer) {
	color.NoColor = true
	var out, errOut bytes.Buffer
	return &Logger{stdout: &out, stderr: &errOut}, &out, &errOut
}

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "renamekit.log")

	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	l.Info("to file")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO]")
	assert.Contains(t, string(b), "to file")
}

func TestLogger_Levels(t *testing.T) {
	l, out, errOut := newBufferLogger()

	l.Info("info %d", 1)
	l.Success("done")
	l.Warn("careful")

	s := out.String()
	assert.Contains(t, s, "[INFO] info 1")
	assert.Contains(t, s, "[SUCCESS] done")
	assert.Contains(t, s, "[WARN] careful")
	assert.Empty(t, errOut.String())
}

func TestLogger_ErrorGoesToStderr(t *testing.T) {
	l, out, errOut := newBufferLogger()

	l.Error("boom")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "[ERROR] boom")
}

func TestLogger_DebugGatedByVerbose(t *testing.T) {
	l, out, _ := newBufferLogger()

	l.Debug(false, "hidden")
	assert.Empty(t, out.String())

	l.Debug(true, "shown")
	assert.Contains(t, out.String(), "[DEBUG] shown")
}
