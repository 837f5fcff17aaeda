// Command renamekit is the entrypoint for the renamekit CLI: a batch file
// renaming pipeline with a journal for undo, plus small API fetch utilities.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/filedrift/renamekit/internal/cli"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Ctrl-C cancels the context; the pipeline and fetch commands stop at
	// the next safe point instead of dying mid-rename.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:     "renamekit",
		Short:   "Batch file renaming with composable transforms",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Long: `renamekit renames batches of files by composing transforms (sanitize,
replace, prefix, suffix, sequential numbering, date stamps), previews by
default, and journals executed runs so they can be reverted.

It also bundles small API fetch utilities with JSON/CSV export.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cli.RenameCmd())
	rootCmd.AddCommand(cli.FetchCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.UndoCmd())
	rootCmd.AddCommand(cli.CheckCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "renamekit: %v\n", err)
		return 1
	}
	return 0
}
