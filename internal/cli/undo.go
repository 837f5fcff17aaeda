package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/filedrift/renamekit/internal/config"
	"github.com/filedrift/renamekit/internal/journal"
	"github.com/filedrift/renamekit/internal/logging"
)

// UndoCmd returns the undo command: revert a journaled rename run.
func UndoCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	var colorMode string

	cmd := &cobra.Command{
		Use:   "undo <run-id>",
		Short: "Revert a journaled rename run",
		Long: `Rename every file from a recorded run back to its original name, in
reverse execution order. Files that have moved on since the run, or whose
original name is occupied again, are reported and left alone.

Find run IDs with: renamekit history`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := config.ParseColorMode(colorMode)
			if err != nil {
				return err
			}
			cfg.ColorMode = mode

			log, err := logging.NewLogger(&cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			j, err := journal.Open(cfg.JournalPath)
			if err != nil {
				return err
			}
			defer j.Close()

			runID := args[0]
			log.Info("Reverting run %s", runID)

			res, err := j.Undo(cmd.Context(), runID, func(oldPath, newPath string, err error) {
				if err != nil {
					log.Error("Cannot revert %s: %v", filepath.Base(newPath), err)
					return
				}
				log.Info("%s → %s", filepath.Base(newPath), filepath.Base(oldPath))
			})
			if err != nil {
				return err
			}

			if res.Failed > 0 {
				log.Warn("Reverted %d file(s), %d failed", res.Reverted, res.Failed)
				return fmt.Errorf("%d file(s) could not be reverted", res.Failed)
			}
			log.Success("Reverted %d file(s)", res.Reverted)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "journal database path")
	f.StringVar(&colorMode, "color", string(config.ColorAuto), "color output: auto, always or never")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug output")

	return cmd
}
