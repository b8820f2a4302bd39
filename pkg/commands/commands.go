package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/downloads/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
	do = &options.DatasetOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "downloads",
		Short: base.Wrap80("Pick files for download from a selectable list."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddDatasetArgs(cmd, do)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addList(topLevel)
	addVersion(topLevel)
}
