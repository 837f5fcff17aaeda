package journal

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// UndoResult aggregates the outcome of reverting one run.
type UndoResult struct {
	Reverted int
	Failed   int
}

// ErrAlreadyReverted is returned when undoing a run that was undone before.
var ErrAlreadyReverted = errors.New("run already reverted")

// Undo reverts a recorded run by renaming each entry back (new → old) in
// reverse execution order. Per-entry failures (the renamed file has moved
// on, or the original path is occupied again) are reported through report
// and do not abort the rest. The run is marked reverted only when every
// entry went back.
func (j *Journal) Undo(ctx context.Context, runID string, report func(oldPath, newPath string, err error)) (UndoResult, error) {
	var res UndoResult

	run, err := j.GetRun(ctx, runID)
	if err != nil {
		return res, err
	}
	if run.Reverted {
		return res, fmt.Errorf("%w: %s", ErrAlreadyReverted, runID)
	}

	entries, err := j.Entries(ctx, runID)
	if err != nil {
		return res, err
	}

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]

		var undoErr error
		if _, err := os.Stat(e.OldPath); err == nil {
			undoErr = fmt.Errorf("original path occupied: %s", e.OldPath)
		} else {
			undoErr = os.Rename(e.NewPath, e.OldPath)
		}

		if undoErr != nil {
			res.Failed++
		} else {
			res.Reverted++
		}
		if report != nil {
			report(e.OldPath, e.NewPath, undoErr)
		}
	}

	if res.Failed == 0 {
		if err := j.markReverted(ctx, runID); err != nil {
			return res, err
		}
	}
	return res, nil
}
