package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/downloads/pkg/tui/components/checkbox"
)

func newCheckboxCmd(opts *options) *cobra.Command {
	var (
		indeterminate bool
		disabled      bool
		label         string
	)
	cmd := &cobra.Command{
		Use:   "checkbox",
		Short: "Render a single checkbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			cb := checkbox.New("testbed/checkbox", label)
			cb.SetIndeterminate(indeterminate)
			cb.SetDisabled(disabled)
			m := newComponentModel(*opts, cb)
			m.footer = func() string {
				return fmt.Sprintf("aria-checked=%s disabled=%t", cb.AriaChecked(), cb.Disabled())
			}
			return runComponent(m)
		},
	}
	cmd.Flags().BoolVar(&indeterminate, "indeterminate", false, "start in the mixed state")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "start disabled")
	cmd.Flags().StringVar(&label, "label", "Select all", "checkbox label")
	return cmd
}
