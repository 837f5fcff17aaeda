package pipeline

import (
	"os"
	"path/filepath"
	"time"

	"github.com/filedrift/renamekit/internal/config"
	"github.com/filedrift/renamekit/internal/transform"
)

// Entry is one planned rename: an original path and the proposed new path in
// the same directory. Seq is the entry's 1-based position in the path-sorted
// listing (the number the sequential transform used).
type Entry struct {
	OldPath string
	NewPath string
	Seq     int
}

// SkipReason classifies why a file was excluded from the plan with a report.
// No-op entries (transformed name equals the original) are dropped silently
// and have no reason.
type SkipReason string

const (
	// SkipTargetExists: the proposed path already exists on disk.
	SkipTargetExists SkipReason = "target exists"
	// SkipTargetClaimed: an earlier entry in this run already claimed the
	// proposed path. The legacy script only checked the filesystem and would
	// let two sources race for one target; claimed targets are skipped here.
	SkipTargetClaimed SkipReason = "target claimed earlier in this run"
)

// Skip records a file excluded from the plan because of a collision.
type Skip struct {
	OldPath string
	NewPath string
	Reason  SkipReason
}

// Plan is the computed rename mapping for one run. It is built fresh per run
// and never persisted.
type Plan struct {
	Entries []Entry
	Skips   []Skip
	Total   int // Files discovered, including no-ops and skips.
}

// BuildPlan applies the transform set to each file's base name and produces
// the rename plan. files must already be sorted: the 1-based slice position
// is the sequence index. now supplies the date-stamp clock so a run uses one
// consistent timestamp.
//
// An entry is omitted when the transformed name equals the original, and
// skipped with a report when the proposed target exists on disk or was
// already claimed by an earlier entry in the same run.
func BuildPlan(files []string, set config.TransformSet, now time.Time) Plan {
	plan := Plan{Total: len(files)}
	claimed := make(map[string]struct{}, len(files))

	for i, path := range files {
		base := filepath.Base(path)
		newName := transform.Apply(base, set, i+1, now)
		if newName == base {
			continue
		}

		newPath := filepath.Join(filepath.Dir(path), newName)

		if _, err := os.Stat(newPath); err == nil {
			plan.Skips = append(plan.Skips, Skip{OldPath: path, NewPath: newPath, Reason: SkipTargetExists})
			continue
		}
		if _, taken := claimed[newPath]; taken {
			plan.Skips = append(plan.Skips, Skip{OldPath: path, NewPath: newPath, Reason: SkipTargetClaimed})
			continue
		}

		claimed[newPath] = struct{}{}
		plan.Entries = append(plan.Entries, Entry{OldPath: path, NewPath: newPath, Seq: i + 1})
	}
	return plan
}
