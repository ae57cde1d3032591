// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// File: root.go
// Package: cmd
//
// Description:
// This file contains the entry point and base configuration for the
// `vmstoolbox` CLI. It defines the root command (`rootCmd`) that acts as the
// main command for the application and manages subcommands like `run`,
// `cluster`, `get`, `put`, `lsof`, `queue` and `sysinfo`. The root command
// also handles application-wide configuration and flags.
//
// Features:
// - Serves as the primary entry point for the `vmstoolbox` CLI application.
// - Defines global flags: host inventory, target host, output format.
// - Organizes and executes subcommands against remote OpenVMS hosts.
//
// Usage:
// - Run the `vmstoolbox` command without any arguments to see the help message:
//   `./vmstoolbox`
// - Select a host from the inventory and run a command:
//   `./vmstoolbox --config hosts.yaml --host vms1 run "SHOW SYSTEM"`

package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vmstoolbox",
	Short: "A toolbox for managing OpenVMS hosts over SSH",
	Long: `The vmstoolbox CLI runs commands on remote OpenVMS hosts through
SSH.COM's SSH2 server, transfers files over SFTP, and inspects cluster,
device and batch queue state. Exit status is recovered from the DCL
symbol $SEVERITY since the SSH2 server reports none.

Examples:
  - Run a DCL command on a host from the inventory:
    ./vmstoolbox --config hosts.yaml --host vms1 run "SHOW SYSTEM /NOPROCESS"

  - Gather a system snapshot in JSON:
    ./vmstoolbox --host vms1.example.com sysinfo --format json`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(formatFlag); err != nil {
			return err
		}
		logrus.SetOutput(os.Stderr)
		if verboseFlag {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This function is called by main.main() to start the
// application.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command by defining global flags shared by all
// subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "host inventory file (YAML)")
	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", "target host alias or address")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "yaml", "Output format: yaml or json")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}
