package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/taskgraph/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [targets...]",
		Short: "Run specified tasks, or the file's default targets if none are given",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			continueOnFailure, _ := cmd.Flags().GetBool("continue-on-failure")
			sequential, _ := cmd.Flags().GetBool("sequential")
			workers, _ := cmd.Flags().GetInt("workers")
			return c.app.Run(cmd.Context(), args, app.RunOptions{
				ContinueOnFailure: continueOnFailure,
				Sequential:        sequential,
				Workers:           workers,
			})
		},
	}
	cmd.Flags().BoolP("continue-on-failure", "k", false, "Keep running independent tasks after one fails")
	cmd.Flags().Bool("sequential", false, "Run tasks one at a time instead of against a worker pool")
	cmd.Flags().IntP("workers", "w", 0, "Worker pool size (default: number of CPUs)")
	return cmd
}
