// File: cmd/run.go
//
// Description:
// Implements the `run` command: execute a DCL (or PML) command on one host,
// or fan out to every inventory host with --all-hosts. With --safe a failed
// command prompts whether to continue instead of exiting non-zero.

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fernandezcuesta/govms/vms"
)

var (
	safeFlag     bool
	allHostsFlag bool
)

// runCmd executes a remote command and echoes its output.
var runCmd = &cobra.Command{
	Use:   "run <command>",
	Short: "Run a command on a remote OpenVMS host",
	Long: `Run a command on the remote command interpreter (DCL by default,
PML when the host is configured with interpreter: pml) and print its
output. The process exit status follows the remote $SEVERITY.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		command := strings.Join(args, " ")
		if allHostsFlag {
			return runOnAllHosts(cmd, command)
		}
		return runOnHost(cmd, command)
	},
}

func runOnHost(cmd *cobra.Command, command string) error {
	client, err := dial(cmd.Context())
	if err != nil {
		return err
	}
	defer client.Close()

	res, err := client.Run(cmd.Context(), command)
	echoResult(client.Host(), res)
	if errors.Is(err, vms.ErrCommandFailed) && safeFlag {
		if confirm("Command failed. Continue anyway?") {
			return nil
		}
		return fmt.Errorf("aborting at user request")
	}
	return err
}

func runOnAllHosts(cmd *cobra.Command, command string) error {
	inv, err := loadInventory()
	if err != nil {
		return err
	}
	configs := inv.All()
	if len(configs) == 0 {
		return fmt.Errorf("no hosts in inventory")
	}

	results, err := vms.RunOnHosts(cmd.Context(), configs, command)
	hosts := make([]string, 0, len(results))
	for host := range results {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	for _, host := range hosts {
		echoResult(host, results[host])
	}
	return err
}

// confirm asks a yes/no question on stdin, defaulting to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// init registers the run command and its flags.
func init() {
	runCmd.Flags().BoolVar(&safeFlag, "safe", false, "prompt to continue when the command fails")
	runCmd.Flags().BoolVar(&allHostsFlag, "all-hosts", false, "run on every inventory host")
	rootCmd.AddCommand(runCmd)
}
