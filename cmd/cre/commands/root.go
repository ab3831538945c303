// Package commands implements the CLI commands for cre.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/Pa04rth/OpenCRE/internal/app"
	"github.com/Pa04rth/OpenCRE/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for cre.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Browse(ctx context.Context, opts app.BrowseOptions) error
	Show(ctx context.Context, id string, opts app.ShowOptions) error
	Select(ctx context.Context, doctypes []string, opts app.SelectOptions) error
	Resources(ctx context.Context) error
	Clean(ctx context.Context) error
	Watch(ctx context.Context, opts app.BrowseOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cre",
		Short:         "Browse the Common Requirement Enumeration from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBrowseCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newSelectCmd())
	rootCmd.AddCommand(c.newResourcesCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
