// Package commands implements the CLI commands for the fanout build orchestrator.
package commands

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"go.fanout.dev/fanout/internal/app"
	"go.fanout.dev/fanout/internal/build"
)

// CLI represents the command line interface for fanout.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "fanout",
		Short: "Expand and run the full build matrix",
		Long: "fanout sequences the gated build phases of the project and fans the\n" +
			"library build out across every flavor, language target, and mode.",
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

	rootCmd.RunE = c.runBuild
	rootCmd.Flags().StringSlice("locales", nil, "Locales to compile in (defaults to the project locale list)")
	rootCmd.Flags().Bool("fix", false, "Let the style checker fix violations in place")
	rootCmd.Flags().BoolP("force", "f", false, "Rebuild everything regardless of cached state")
	rootCmd.Flags().Bool("debug", false, "Build the debug mode only (combine with --release for both)")
	rootCmd.Flags().Bool("release", false, "Build the release mode only (combine with --debug for both)")
	rootCmd.Flags().Bool("only-es5", false, "Build only the baseline ECMAScript 5 target")
	rootCmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "Maximum number of concurrent build tasks")

	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runBuild(cmd *cobra.Command, _ []string) error {
	locales, _ := cmd.Flags().GetStringSlice("locales")
	fix, _ := cmd.Flags().GetBool("fix")
	force, _ := cmd.Flags().GetBool("force")
	debug, _ := cmd.Flags().GetBool("debug")
	release, _ := cmd.Flags().GetBool("release")
	onlyES5, _ := cmd.Flags().GetBool("only-es5")
	jobs, _ := cmd.Flags().GetInt("jobs")

	return c.app.Run(cmd.Context(), app.RunOptions{
		Locales: locales,
		Fix:     fix,
		Force:   force,
		Debug:   debug,
		Release: release,
		OnlyES5: onlyES5,
		Jobs:    jobs,
	})
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
