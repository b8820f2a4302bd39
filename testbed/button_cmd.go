package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/downloads/pkg/tui/components/iconbutton"
)

func newButtonCmd(opts *options) *cobra.Command {
	var (
		icon     string
		label    string
		disabled bool
	)
	cmd := &cobra.Command{
		Use:   "button",
		Short: "Render an icon button",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := iconbutton.New("testbed/button", icon, label)
			b.SetDisabled(disabled)
			m := newComponentModel(*opts, b)
			m.footer = func() string {
				return fmt.Sprintf("aria-label=%q aria-disabled=%s", b.AriaLabel(), b.AriaDisabled())
			}
			return runComponent(m)
		},
	}
	cmd.Flags().StringVar(&icon, "icon", "download", "icon name")
	cmd.Flags().StringVar(&label, "label", "Download Selected", "button label")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "start disabled")
	return cmd
}
