// File: cmd/queue.go
//
// Description:
// Implements the `queue` command group for batch queue jobs: show a job's
// queue entries, stop (delete) them, and resubmit them with their original
// qualifiers.

package cmd

import (
	"github.com/spf13/cobra"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Inspect and control batch queue jobs",
}

var queueShowCmd = &cobra.Command{
	Use:   "show <jobname>",
	Short: "Show the queue entries of a batch job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		job, err := client.LookupJob(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return renderOutput(job)
	},
}

var queueStopCmd = &cobra.Command{
	Use:   "stop <jobname>",
	Short: "Delete every queue entry of a batch job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		job, err := client.LookupJob(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return job.Stop(cmd.Context())
	},
}

var queueResubmitCmd = &cobra.Command{
	Use:   "resubmit <jobname> [entry]",
	Short: "Resubmit a stopped batch job with its original qualifiers",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		entryID := ""
		if len(args) > 1 {
			entryID = args[1]
		}
		client, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		job, err := client.LookupJob(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return job.Resubmit(cmd.Context(), entryID)
	},
}

func init() {
	queueCmd.AddCommand(queueShowCmd)
	queueCmd.AddCommand(queueStopCmd)
	queueCmd.AddCommand(queueResubmitCmd)
	rootCmd.AddCommand(queueCmd)
}
