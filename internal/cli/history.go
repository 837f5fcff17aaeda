package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/filedrift/renamekit/internal/config"
	"github.com/filedrift/renamekit/internal/display"
	"github.com/filedrift/renamekit/internal/journal"
)

// HistoryCmd returns the history command: list journaled rename runs.
func HistoryCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	var limit int
	var showEntries bool

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List journaled rename runs",
		Long: `List executed rename runs recorded in the journal, newest first.
With a run ID, show that run's details instead.

Examples:
  renamekit history
  renamekit history --limit 5
  renamekit history 6a1f... --entries`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := journal.Open(cfg.JournalPath)
			if err != nil {
				return err
			}
			defer j.Close()

			if len(args) == 1 {
				return printRun(cmd, j, args[0], showEntries)
			}

			runs, err := j.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tWHEN\tDIRECTORY\tRENAMED\tSKIPPED\tFAILED\tSTATUS")
			for _, r := range runs {
				status := ""
				if r.Reverted {
					status = "reverted"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
					r.ID, r.StartedAt.Local().Format("2006-01-02 15:04"),
					display.TruncateName(r.Directory, 40),
					r.Renamed, r.Skipped, r.Failed, status)
			}
			return w.Flush()
		},
	}

	f := cmd.Flags()
	f.IntVarP(&limit, "limit", "n", 10, "maximum runs to list (0 for all)")
	f.BoolVar(&showEntries, "entries", false, "with a run ID, list its individual renames")
	f.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "journal database path")

	return cmd
}

// printRun shows one run, optionally with its renames.
func printRun(cmd *cobra.Command, j *journal.Journal, runID string, showEntries bool) error {
	run, err := j.GetRun(cmd.Context(), runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s\n", run.ID)
	fmt.Printf("  When:      %s\n", run.StartedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("  Directory: %s\n", run.Directory)
	fmt.Printf("  Result:    %s renamed, %d skipped, %d failed\n",
		display.FormatCount(run.Renamed, "file"), run.Skipped, run.Failed)
	if run.Reverted {
		fmt.Println("  Status:    reverted")
	}

	if !showEntries {
		return nil
	}
	entries, err := j.Entries(cmd.Context(), runID)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("  [%d] %s → %s\n", e.Seq, e.OldPath, e.NewPath)
	}
	return nil
}
