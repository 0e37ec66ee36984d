package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newFlagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flags FILE",
		Short: "Print the compile flags for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := c.app.Flags(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "dir: %s\n", flags.Dir)
			for _, arg := range flags.Args {
				_, _ = fmt.Fprintln(out, arg)
			}
			return nil
		},
	}
}
