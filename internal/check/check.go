// Package check provides the doctor-style diagnostics behind the check
// command: journal database health, presets file status, and target
// directory write access.
package check

import (
	"context"
	"os"
	"path/filepath"

	"github.com/filedrift/renamekit/internal/config"
	"github.com/filedrift/renamekit/internal/journal"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the diagnostics flow: journal database, presets file, and
// (when a directory is configured) write access to it. Returns false when
// something is broken enough that a rename run would misbehave.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkJournal(ctx, cfg, log)
	checkPresets(cfg, log)
	if cfg.Directory != "" {
		ok = checkDirectory(cfg.Directory, log) && ok
	}
	return ok
}

// checkJournal opens the journal database and reports the recorded run count.
func checkJournal(ctx context.Context, cfg *config.Config, log Logger) bool {
	j, err := journal.Open(cfg.JournalPath)
	if err != nil {
		log.Error("Journal: cannot open %s: %v", cfg.JournalPath, err)
		return false
	}
	defer j.Close()

	runs, err := j.Runs(ctx, 0)
	if err != nil {
		log.Error("Journal: unreadable: %v", err)
		return false
	}
	log.Success("Journal: %s (%d run(s) recorded)", cfg.JournalPath, len(runs))
	return true
}

// checkPresets reports whether the presets file exists and parses.
func checkPresets(cfg *config.Config, log Logger) {
	if _, err := os.Stat(cfg.PresetsFile); os.IsNotExist(err) {
		log.Info("Presets: none (%s not found)", cfg.PresetsFile)
		return
	}
	presets, err := config.LoadPresets(cfg.PresetsFile)
	if err != nil {
		log.Warn("Presets: %v", err)
		return
	}
	log.Success("Presets: %d defined in %s", len(presets), cfg.PresetsFile)
}

// checkDirectory verifies the target directory exists and is writable by
// creating and removing a probe file.
func checkDirectory(dir string, log Logger) bool {
	fi, err := os.Stat(dir)
	if err != nil {
		log.Error("Directory: %s not found", dir)
		return false
	}
	if !fi.IsDir() {
		log.Error("Directory: %s is not a directory", dir)
		return false
	}

	probe := filepath.Join(dir, ".renamekit-write-check")
	f, err := os.Create(probe)
	if err != nil {
		log.Error("Directory: %s is not writable: %v", dir, err)
		return false
	}
	f.Close()
	os.Remove(probe)
	log.Success("Directory: %s is writable", dir)
	return true
}
