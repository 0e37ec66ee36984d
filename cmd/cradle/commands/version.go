package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/cradle/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "cradle version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)

			compiler, _ := cmd.Flags().GetBool("compiler")
			if !compiler {
				return nil
			}

			version, err := c.app.CompilerVersion(cmd.Context(), ".")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "ghc version %s\n", version)
			return nil
		},
	}

	cmd.Flags().BoolP("compiler", "c", false, "Also print the ghc version of the current project")
	return cmd
}
