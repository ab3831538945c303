package commands

import (
	"github.com/Pa04rth/OpenCRE/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print a single CRE with its links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			allLinks, _ := cmd.Flags().GetBool("all-links")
			return c.app.Show(cmd.Context(), args[0], app.ShowOptions{AllLinks: allLinks})
		},
	}
	cmd.Flags().BoolP("all-links", "a", false, "Show links to every doctype, ignoring the resource selection")
	return cmd
}
