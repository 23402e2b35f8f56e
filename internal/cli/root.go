package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/recordkeeper/internal/config"
)

// Execute runs the command tree against the process streams.
func Execute(ctx context.Context) error {
	root := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewRootCommand builds the command tree. The App is constructed from
// configuration before any command runs.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var app *App
	getApp := func() *App { return app }

	root := &cobra.Command{
		Use:   "recordkeeper",
		Short: "Keep one credential and one message in owner-only local files",
		Long: `recordkeeper stores a single user credential and a single message in
plain text files readable and writable by their owner only.

Run without a subcommand it demonstrates the round trip: it reads what is
stored, writes a sample credential and message, reads them back and prints the
file permissions.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			app, err = NewApp(cfg, in, out, errOut)
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.RunDemo(cmd.Context())
			return nil
		},
	}

	config.BindFlags(root.PersistentFlags())
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(
		showCmd(getApp),
		permsCmd(getApp),
		userCmd(getApp),
		messageCmd(getApp),
	)
	return root
}

func showCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored credential and message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app().Show(cmd.Context())
			return nil
		},
	}
}

func permsCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "perms",
		Short: "Print the permission bits of both record files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app().ShowPermissions()
			return nil
		},
	}
}
