// Package cli defines the cobra command constructors wired together by the
// renamekit main package.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/filedrift/renamekit/internal/config"
	"github.com/filedrift/renamekit/internal/display"
	"github.com/filedrift/renamekit/internal/journal"
	"github.com/filedrift/renamekit/internal/logging"
	"github.com/filedrift/renamekit/internal/pipeline"
)

// RenameCmd returns the rename command: the batch rename pipeline.
func RenameCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	var colorMode string

	cmd := &cobra.Command{
		Use:   "rename <directory>",
		Short: "Batch rename files with composable transforms",
		Long: `Rename every file in a directory by applying the enabled transforms in a
fixed order: sanitize, replace, prefix, suffix, sequential number, date stamp.

By default nothing is touched; the planned renames are printed as a preview.
Pass --execute to apply them. Executed runs are journaled so they can be
listed (history) and reverted (undo).

Examples:
  renamekit rename ~/Pictures --sanitize
  renamekit rename ./scans --prefix "inv_" --sequential --digits 4
  renamekit rename ./scans --preset photos --execute`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := config.ParseColorMode(colorMode)
			if err != nil {
				return err
			}
			cfg.ColorMode = mode
			cfg.Directory = config.NormalizeDirArg(args[0])

			if cfg.Preset != "" {
				if err := applyPreset(cmd, &cfg); err != nil {
					return err
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logging.NewLogger(&cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			display.PrintBanner()

			var rec pipeline.Recorder
			if cfg.Execute && !cfg.NoJournal {
				j, err := journal.Open(cfg.JournalPath)
				if err != nil {
					log.Warn("Journal unavailable, run will not be recorded: %v", err)
				} else {
					defer j.Close()
					rec = j
				}
			}

			_, err = pipeline.Run(cmd.Context(), &cfg, log, rec)
			return err
		},
	}

	f := cmd.Flags()
	f.BoolVar(&cfg.Transforms.Sanitize, "sanitize", false, "strip unsafe characters, collapse whitespace to underscores")
	f.StringVar(&cfg.Transforms.Replace, "replace", "", "substring to replace in filenames")
	f.StringVar(&cfg.Transforms.With, "with", "", "replacement text for --replace (empty deletes)")
	f.StringVar(&cfg.Transforms.Prefix, "prefix", "", "text prepended to each filename")
	f.StringVar(&cfg.Transforms.Suffix, "suffix", "", "text appended before the extension")
	f.BoolVar(&cfg.Transforms.Sequential, "sequential", false, "append a zero-padded running number")
	f.IntVar(&cfg.Transforms.Digits, "digits", config.DefaultDigits, "zero-pad width for --sequential")
	f.BoolVar(&cfg.Transforms.Date, "date", false, "append the current date before the extension")
	f.StringVar(&cfg.Transforms.DateLayout, "date-format", config.DefaultDateLayout, "Go time layout for --date")

	f.BoolVarP(&cfg.Recursive, "recursive", "r", false, "descend into subdirectories")
	f.BoolVar(&cfg.Execute, "execute", false, "apply the renames instead of previewing them")

	f.StringVar(&cfg.Preset, "preset", "", "load a named transform preset")
	f.StringVar(&cfg.PresetsFile, "presets-file", cfg.PresetsFile, "TOML file holding presets")

	f.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "journal database path")
	f.BoolVar(&cfg.NoJournal, "no-journal", false, "do not record this run in the journal")

	f.StringVar(&colorMode, "color", string(config.ColorAuto), "color output: auto, always or never")
	f.StringVar(&cfg.LogFile, "log", "", "also append log output to this file")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug output")

	return cmd
}

// applyPreset loads the named preset and layers explicitly-set transform
// flags on top of it, so the command line always wins.
func applyPreset(cmd *cobra.Command, cfg *config.Config) error {
	set, err := config.LoadPreset(cfg.PresetsFile, cfg.Preset)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("sanitize") {
		set.Sanitize = cfg.Transforms.Sanitize
	}
	if flags.Changed("replace") {
		set.Replace = cfg.Transforms.Replace
	}
	if flags.Changed("with") {
		set.With = cfg.Transforms.With
	}
	if flags.Changed("prefix") {
		set.Prefix = cfg.Transforms.Prefix
	}
	if flags.Changed("suffix") {
		set.Suffix = cfg.Transforms.Suffix
	}
	if flags.Changed("sequential") {
		set.Sequential = cfg.Transforms.Sequential
	}
	if flags.Changed("digits") {
		set.Digits = cfg.Transforms.Digits
	}
	if flags.Changed("date") {
		set.Date = cfg.Transforms.Date
	}
	if flags.Changed("date-format") {
		set.DateLayout = cfg.Transforms.DateLayout
	}

	cfg.Transforms = set
	return nil
}
