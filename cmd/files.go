// File: cmd/files.go
//
// Description:
// Implements the file transfer commands: `put` uploads a local file, `get`
// downloads a remote file, `type` prints a remote file's content, and
// `script` uploads and executes a DCL script. Remote paths are OpenVMS file
// specifications (DISK:[DIR]NAME.EXT); the translation to the SFTP server's
// POSIX view happens in the vms package.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var putCmd = &cobra.Command{
	Use:   "put <local> [remote]",
	Short: "Upload a file to a remote OpenVMS host",
	Long: `Upload a local file over SFTP. The remote path is a VMS file
specification; when omitted, the file lands in the host's temp_dir
(TCPIP$SSH_HOME by default).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		remote := ""
		if len(args) > 1 {
			remote = args[1]
		}
		client, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()
		return client.Put(args[0], remote)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <remote> [local]",
	Short: "Download a file from a remote OpenVMS host",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		local := ""
		if len(args) > 1 {
			local = args[1]
		}
		client, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()
		return client.Get(args[0], local)
	},
}

// typeCmd mirrors the DCL TYPE verb but fetches the file over SFTP, so wide
// records are not clipped at the remote terminal width.
var typeCmd = &cobra.Command{
	Use:   "type <remote>",
	Short: "Print the content of a remote file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		content, err := client.PrintFile(args[0])
		if err != nil {
			return err
		}
		fmt.Print(content)
		return nil
	},
}

var scriptPrefix string

// scriptCmd uploads a DCL script, runs it and removes the remote copy.
var scriptCmd = &cobra.Command{
	Use:   "script <local>",
	Short: "Upload and run a DCL script remotely",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		res, err := client.RunScript(cmd.Context(), args[0], scriptPrefix)
		echoResult(client.Host(), res)
		return err
	},
}

func init() {
	scriptCmd.Flags().StringVar(&scriptPrefix, "prefix", "", "DCL prefix before the @ invocation (e.g. \"MCR SYSMAN\")")
	rootCmd.AddCommand(putCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(scriptCmd)
}
