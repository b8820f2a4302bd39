package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/downloads/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	var showIndex bool
	cmd := &cobra.Command{
		Use:       "list",
		ValidArgs: []string{},
		Short:     "Print the dataset and which rows can be selected.",
		Example: `
downloads list
downloads list --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, ds, err := do.Load()
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				Title:     cfg.Aria.Table,
				ShowIndex: showIndex,
				Dataset:   ds,
				Out:       cmd.OutOrStdout(),
			}
			if oo.JSON {
				l.Output = "json"
			}
			err = l.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	base.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&showIndex, "index", false, "Show row indexes.")

	topLevel.AddCommand(cmd)
}
