package commands

import (
	"errors"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/glossary/pkg/browse"
	"tableflip.dev/glossary/pkg/config"
	"tableflip.dev/glossary/pkg/logging"
	teaui "tableflip.dev/glossary/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive recipe browser",
		Example: `
glossary ui
glossary ui --discard-stale --page-size 20
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("ui needs a terminal; try `glossary recipes` instead")
			}

			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			// The alt screen owns stdout, so logs go to a file.
			if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
				return err
			}
			f, err := tea.LogToFile(cfg.LogFile, "glossary")
			if err != nil {
				return err
			}
			defer f.Close()

			log := logging.Std(cfg.Debug)
			client, err := newClient(cfg, log)
			if err != nil {
				return err
			}
			log.Debugf("ui: browsing %s", cfg.BaseURL)

			policy := browse.LastArrived
			if cfg.DiscardStale {
				policy = browse.LatestIssued
			}
			ctrl := browse.New(client, browse.Options{
				PageSize:       cfg.PageSize,
				AuthorPageSize: cfg.AuthorPageSize,
				Policy:         policy,
				Logger:         log,
				Context:        cmd.Context(),
			})
			return teaui.Run(cmd.Context(), ctrl)
		},
	}

	topLevel.AddCommand(cmd)
}
