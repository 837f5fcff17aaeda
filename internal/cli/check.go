package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/filedrift/renamekit/internal/check"
	"github.com/filedrift/renamekit/internal/config"
	"github.com/filedrift/renamekit/internal/logging"
)

// CheckCmd returns the check command: doctor-style environment diagnostics.
func CheckCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	var colorMode string

	cmd := &cobra.Command{
		Use:   "check [directory]",
		Short: "Check the journal, presets and target directory",
		Long: `Verify that the journal database opens, the presets file parses, and
(when a directory is given) that the directory exists and is writable.

Exits non-zero when something is broken enough that a rename run would
misbehave.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := config.ParseColorMode(colorMode)
			if err != nil {
				return err
			}
			cfg.ColorMode = mode
			if len(args) == 1 {
				cfg.Directory = config.NormalizeDirArg(args[0])
			}

			log, err := logging.NewLogger(&cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			if !check.RunCheck(cmd.Context(), &cfg, log) {
				return errors.New("system check failed")
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "journal database path")
	f.StringVar(&cfg.PresetsFile, "presets-file", cfg.PresetsFile, "TOML file holding presets")
	f.StringVar(&colorMode, "color", string(config.ColorAuto), "color output: auto, always or never")

	return cmd
}
