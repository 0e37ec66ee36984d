package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root FILE",
		Short: "Print the project root and build-tool kind governing a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.app.Locate(cmd.Context(), args[0])

			kind := cfg.Kind()
			if kind == "" {
				kind = "None"
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "root: %s\n", cfg.Root())
			_, _ = fmt.Fprintf(out, "kind: %s\n", kind)
			return nil
		},
	}
}
