package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/cradle/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Compile files and cache the resulting artifacts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			if watch && len(args) != 1 {
				return fmt.Errorf("--watch takes exactly one file, got %d", len(args))
			}

			if err := c.app.LoadAll(cmd.Context(), args); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "checked %d file(s)\n", len(args))

			if !watch {
				return nil
			}

			return c.app.Watch(cmd.Context(), args[0], func(_ *domain.Artifact, err error) {
				if err != nil {
					_, _ = fmt.Fprintf(out, "recheck failed: %v\n", err)
					return
				}
				_, _ = fmt.Fprintf(out, "rechecked %s\n", args[0])
			})
		},
	}

	cmd.Flags().BoolP("watch", "w", false, "Keep running and recheck when project files change")
	return cmd
}
