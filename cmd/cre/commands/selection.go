package commands

import (
	"github.com/Pa04rth/OpenCRE/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [doctypes...]",
		Short: "Choose which doctypes are included in the tree",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clearSelection, _ := cmd.Flags().GetBool("clear")
			return c.app.Select(cmd.Context(), args, app.SelectOptions{Clear: clearSelection})
		},
	}
	cmd.Flags().Bool("clear", false, "Remove the resource filter and include every doctype")
	return cmd
}

func (c *CLI) newResourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List the selectable doctypes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Resources(cmd.Context())
		},
	}
}
