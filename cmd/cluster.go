// File: cmd/cluster.go
//
// Description:
// Implements the `cluster` command group: list VMScluster members and run
// commands clusterwide through SYSMAN.

package cmd

import (
	"github.com/spf13/cobra"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Inspect and drive the host's VMScluster",
}

// clusterNodesCmd lists the cluster member node names.
var clusterNodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List cluster member nodes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		nodes, err := client.ClusterNodes(cmd.Context())
		if err != nil {
			return err
		}
		return renderOutput(nodes)
	},
}

// clusterRunCmd runs one or more commands on every cluster node via SYSMAN.
var clusterRunCmd = &cobra.Command{
	Use:   "run <command> [command...]",
	Short: "Run commands clusterwide with SYSMAN",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		res, err := client.RunClusterwide(cmd.Context(), args)
		echoResult(client.Host(), res)
		return err
	},
}

func init() {
	clusterCmd.AddCommand(clusterNodesCmd)
	clusterCmd.AddCommand(clusterRunCmd)
	rootCmd.AddCommand(clusterCmd)
}
