// Package commands implements the CLI commands for cradle.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cradle/internal/adapters/detector"
	"go.trai.ch/cradle/internal/build"
	"go.trai.ch/cradle/internal/core/domain"
	"go.trai.ch/cradle/internal/core/ports"
)

// CLI represents the command line interface for cradle.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Locate(ctx context.Context, file string) *domain.Configuration
	Flags(ctx context.Context, file string) (*domain.CompileFlags, error)
	LoadAll(ctx context.Context, files []string) error
	Watch(ctx context.Context, file string, onReload func(*domain.Artifact, error)) error
	CompilerVersion(ctx context.Context, file string) (string, error)
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cradle",
		Short:         "Resolve build configurations and cache compiled artifacts for Haskell files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			format, _ := cmd.Flags().GetString("log-format")
			mode := detector.ResolveFormat(detector.DetectEnvironment(), format)
			log.SetJSON(mode == detector.FormatJSON)
		},
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

	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty, or json")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newFlagsCmd())
	rootCmd.AddCommand(c.newRootCmd())
	rootCmd.AddCommand(c.newCheckCmd())
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
