// Package commands implements the devbuild command line.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/devbuild/internal/app"
	"go.trai.ch/devbuild/internal/build"
	"go.trai.ch/devbuild/internal/core/domain"
)

// CLI represents the command line interface for devbuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, flags domain.BuildFlags, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "devbuild [targets...]",
		Short: "Watch and rebuild packages for development",
		Long: "devbuild resolves a bundle configuration for every target and rebuilds it\n" +
			"whenever its sources change. Without targets, the default target is built.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runE,
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

	rootCmd.Flags().StringP("format", "f", domain.DefaultFormat, "Bundle format (global, cjs, esm-bundler, esm-browser, ...-runtime)")
	rootCmd.Flags().BoolP("prod", "p", false, "Use production constants and the .prod file name segment")
	rootCmd.Flags().BoolP("inline", "i", false, "Bundle dependencies instead of externalizing them")
	rootCmd.Flags().Bool("timings", false, "Log the duration of every build")
	rootCmd.Flags().Bool("json", false, "Emit log lines as JSON (overrides --output)")
	rootCmd.Flags().StringP("output", "o", "auto", "Log output mode (auto, pretty, plain, ci, json)")

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) runE(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	prod, _ := cmd.Flags().GetBool("prod")
	inline, _ := cmd.Flags().GetBool("inline")
	timings, _ := cmd.Flags().GetBool("timings")
	jsonOut, _ := cmd.Flags().GetBool("json")
	outputMode, _ := cmd.Flags().GetString("output")

	flags := domain.BuildFlags{
		Format:     domain.ParseFormat(format),
		Production: prod,
		Inline:     inline,
		Targets:    args,
		Timings:    timings,
	}

	return c.app.Run(cmd.Context(), flags, app.RunOptions{JSON: jsonOut, OutputMode: outputMode})
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
