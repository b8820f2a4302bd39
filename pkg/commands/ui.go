package commands

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tableflip.dev/downloads/pkg/dataset"
	"tableflip.dev/downloads/pkg/logging"
	teaui "tableflip.dev/downloads/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	var watch bool
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
downloads ui
downloads ui --dataset ~/files.yaml
downloads ui --dataset ~/files.yaml --watch
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, ds, err := do.Load()
			if err != nil {
				return err
			}
			logger, closeLog, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			var reloads <-chan dataset.Reload
			if watch {
				if do.Path() == "" {
					return errors.New("--watch needs a dataset file")
				}
				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()
				if reloads, err = dataset.Watch(ctx, do.Path()); err != nil {
					return err
				}
			}

			var programOpts []tea.ProgramOption
			if cfg.UI.AltScreen {
				programOpts = append(programOpts, tea.WithAltScreen())
			}
			if cfg.UI.Mouse {
				programOpts = append(programOpts, tea.WithMouseCellMotion())
			}
			return teaui.Run(ds, teaui.Options{
				TableLabel: cfg.Aria.Table,
				Width:      cfg.UI.Width,
				Height:     cfg.UI.Height,
				Logger:     logger,
				Reloads:    reloads,
			}, programOpts...)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the dataset file when it changes.")

	topLevel.AddCommand(cmd)
}
