package commands

import (
	"github.com/Pa04rth/OpenCRE/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Print the CRE tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Browse(cmd.Context(), browseOptions(cmd))
		},
	}
	addBrowseFlags(cmd)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the CRE tree again whenever the resource selection changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), browseOptions(cmd))
		},
	}
	addBrowseFlags(cmd)
	return cmd
}

func addBrowseFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("root", "r", "", "Only print the tree of the root with this key")
	cmd.Flags().IntP("depth", "d", 0, "Limit the printed depth (0 prints everything)")
}

func browseOptions(cmd *cobra.Command) app.BrowseOptions {
	root, _ := cmd.Flags().GetString("root")
	depth, _ := cmd.Flags().GetInt("depth")
	return app.BrowseOptions{Root: root, Depth: depth}
}
