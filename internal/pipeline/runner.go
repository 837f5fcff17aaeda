package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/filedrift/renamekit/internal/config"
	"github.com/filedrift/renamekit/internal/logging"
)

// Recorder journals executed renames. It is defined here (rather than
// importing the journal package) so the pipeline stays dependency-light and
// testable with a fake. All methods may fail without affecting the run;
// failures are reported as warnings.
type Recorder interface {
	StartRun(ctx context.Context, dir string) (string, error)
	RecordRename(ctx context.Context, runID, oldPath, newPath string) error
	FinishRun(ctx context.Context, runID string, renamed, skipped, failed int) error
}

// Run is the top-level entry point for a rename run. It discovers files,
// builds the plan, and either previews it (dry run, the default) or executes
// it, journaling through rec when non-nil. The returned error is non-nil
// only for the fatal case (target directory missing or unreadable); every
// per-entry problem is reported and counted instead.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, rec Recorder) (RunStats, error) {
	var stats RunStats

	files, err := Discover(cfg.Directory, cfg.Recursive)
	if err != nil {
		return stats, err
	}
	stats.Total = len(files)

	if len(files) == 0 {
		log.Warn("No files found in %s", cfg.Directory)
		return stats, nil
	}

	if cfg.Execute {
		log.Info("Renaming files in %s", cfg.Directory)
	} else {
		log.Warn("DRY RUN - no files will be renamed")
		log.Info("Directory: %s", cfg.Directory)
	}
	log.Info("Files found: %d", len(files))

	plan := BuildPlan(files, cfg.Transforms, time.Now())
	stats.Planned = len(plan.Entries)
	stats.Skipped = len(plan.Skips)

	for _, s := range plan.Skips {
		log.Warn("Skip %s (%s): %s", filepath.Base(s.OldPath), s.Reason, filepath.Base(s.NewPath))
	}

	if !cfg.Execute {
		previewPlan(log, plan, &stats)
		return stats, nil
	}

	executePlan(ctx, cfg, log, rec, plan, &stats)
	return stats, nil
}

// previewPlan prints the plan without touching the filesystem.
func previewPlan(log *logging.Logger, plan Plan, stats *RunStats) {
	for i, e := range plan.Entries {
		log.Info("[%d/%d] %s → %s", i+1, len(plan.Entries), filepath.Base(e.OldPath), filepath.Base(e.NewPath))
		stats.Renamed++
	}
	log.Info("Would rename %d file(s)", stats.Renamed)
	log.Info("Run with --execute to apply")
}

// executePlan performs the renames. An individual failure (permissions, a
// race with another process) is reported and the remaining entries are still
// attempted.
func executePlan(ctx context.Context, cfg *config.Config, log *logging.Logger, rec Recorder, plan Plan, stats *RunStats) {
	runID := ""
	if rec != nil {
		id, err := rec.StartRun(ctx, cfg.Directory)
		if err != nil {
			log.Warn("Journal unavailable, run will not be recorded: %v", err)
			rec = nil
		} else {
			runID = id
		}
	}

	for i, e := range plan.Entries {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		log.Info("[%d/%d] %s → %s", i+1, len(plan.Entries), filepath.Base(e.OldPath), filepath.Base(e.NewPath))
		if err := os.Rename(e.OldPath, e.NewPath); err != nil {
			log.Error("Rename failed: %v", err)
			stats.Failed++
			continue
		}
		stats.Renamed++

		if rec != nil {
			if err := rec.RecordRename(ctx, runID, e.OldPath, e.NewPath); err != nil {
				log.Warn("Journal write failed: %v", err)
			}
		}
	}

	if rec != nil {
		if err := rec.FinishRun(ctx, runID, stats.Renamed, stats.Skipped, stats.Failed); err != nil {
			log.Warn("Journal write failed: %v", err)
		}
	}

	if stats.Failed > 0 {
		log.Warn("Renamed %d file(s), %d skipped, %d failed", stats.Renamed, stats.Skipped, stats.Failed)
	} else {
		log.Success("Renamed %d file(s), %d skipped", stats.Renamed, stats.Skipped)
	}
}
