// File: cmd/devices.go
//
// Description:
// Implements the device inspection commands: `lsof` lists the files open on
// a device and `shadowset` lists the members of a shadowset.

package cmd

import (
	"github.com/spf13/cobra"
)

// lsofCmd lists open files on a device, NLA0: standing in for fields the
// account lacks privileges to see.
var lsofCmd = &cobra.Command{
	Use:   "lsof <device>",
	Short: "List files open on a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		files, err := client.OpenFiles(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return renderOutput(files)
	},
}

var shadowsetCmd = &cobra.Command{
	Use:   "shadowset [device]",
	Short: "List the members of a shadowset (default DSA0:)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shadowset := "DSA0:"
		if len(args) > 0 {
			shadowset = args[0]
		}
		client, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		members, err := client.ShadowsetMembers(cmd.Context(), shadowset)
		if err != nil {
			return err
		}
		return renderOutput(members)
	},
}

func init() {
	rootCmd.AddCommand(lsofCmd)
	rootCmd.AddCommand(shadowsetCmd)
}
