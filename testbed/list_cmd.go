package main

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/downloads/pkg/tui/components/downloadlist"
)

func newListCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Render the download list with select-all and download controls",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := pickDataset(*opts)
			if err != nil {
				return err
			}
			notices := &downloadlist.Recorder{}
			l := downloadlist.New("testbed/list", downloadlist.WithNotifier(notices))
			if err := l.SetData(ds.Rows, ds.Columns, ds.Criteria); err != nil {
				return err
			}
			m := newComponentModel(*opts, l)
			m.footer = func() string {
				last := notices.Last()
				if last == "" {
					return "no notices"
				}
				return "last notice: " + strings.SplitN(last, "\n", 2)[0]
			}
			return runComponent(m)
		},
	}
	return cmd
}
