package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/downloads/pkg/dataset"
	"tableflip.dev/downloads/pkg/tui/components/grid"
	"tableflip.dev/downloads/pkg/tui/theme"
)

func newGridCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Render the selectable grid on its own",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := pickDataset(*opts)
			if err != nil {
				return err
			}
			g := grid.New("testbed/grid", grid.WithStyles(theme.Default().Grid))
			if err := g.SetData(ds.Rows, ds.Columns, ds.Criteria); err != nil {
				return err
			}
			m := newComponentModel(*opts, g)
			m.footer = func() string {
				c := g.Cursor()
				return fmt.Sprintf("cursor row=%d col=%d focused=%t", c.Row, c.Col, g.CellFocused())
			}
			return runComponent(m)
		},
	}
	return cmd
}

func pickDataset(opts options) (*dataset.Dataset, error) {
	if opts.dataset != "" {
		return loadDataset(opts)
	}
	switch opts.sample {
	case "unconfigured":
		return unconfiguredSample(), nil
	case "numeric":
		return sampleNumericCriteria(), nil
	case "", "files":
		return dataset.Sample(), nil
	}
	return nil, fmt.Errorf("unknown sample %q", opts.sample)
}
