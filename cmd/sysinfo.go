// Description:
// This file implements the `sysinfo` command to gather and display detailed
// system information from a remote OpenVMS host.
//
// Features:
// - Flexible output formats: YAML and JSON.
// - Node information from F$GETSYI lexicals: node name, OpenVMS version,
//   hardware model, active CPU count, physical memory size.
// - Uptime parsed from the SHOW SYSTEM /NOPROCESS banner.
//
// Usage:
// - Run the `sysinfo` command to gather a host snapshot.
// - Example: `vmstoolbox --host vms1 sysinfo --format=json`
//
// Note:
// - Requires an account allowed to run SHOW SYSTEM; the F$GETSYI items used
//   here need no privileges.
// - Handles errors gracefully and provides a summary of issues if any occur.

package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fernandezcuesta/govms/vms"
)

// SysInfo contains the system information collected from a remote OpenVMS
// host by the sysinfo command.
type SysInfo struct {
	// Node is the SCS node name.
	Node string `json:"node" yaml:"node"`

	// Version is the OpenVMS version string (e.g. "V8.4-2L1").
	Version string `json:"version" yaml:"version"`

	// Hardware is the hardware model name.
	Hardware string `json:"hardware" yaml:"hardware"`

	// CPUs is the number of active CPUs.
	CPUs int `json:"cpus" yaml:"cpus"`

	// Memory is the physical memory size in human-readable form.
	Memory string `json:"memory" yaml:"memory"`

	// Uptime is the elapsed time since boot, as reported by SHOW SYSTEM
	// ("days hh:mm:ss"). Omitted when the banner could not be parsed.
	Uptime string `json:"uptime,omitempty" yaml:"uptime,omitempty"`
}

// commandRunner is the slice of *vms.Client used by the collectors, kept as
// an interface so tests can feed canned output.
type commandRunner interface {
	Run(ctx context.Context, command string) (vms.Result, error)
}

// sysinfoCmd represents the sysinfo command that gathers and displays system
// information from the selected host in YAML (default) or JSON format.
var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Display system information for a remote OpenVMS host",
	Long:  `Gather and display system information from a remote OpenVMS host.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()
		return runSysInfo(cmd.Context(), client)
	},
}

// getsyi fetches one F$GETSYI item from the remote host.
func getsyi(ctx context.Context, runner commandRunner, item string) (string, error) {
	res, err := runner.Run(ctx, fmt.Sprintf(`WRITE SYS$OUTPUT F$GETSYI("%s")`, item))
	if err != nil {
		return "", fmt.Errorf("%s: %w", item, err)
	}
	return strings.TrimSpace(res.Stdout), nil
}

// getUptime extracts the uptime from the SHOW SYSTEM /NOPROCESS banner.
func getUptime(ctx context.Context, runner commandRunner) (string, error) {
	res, err := runner.Run(ctx, "SHOW SYSTEM /NOPROCESS")
	if err != nil {
		return "", fmt.Errorf("uptime: %w", err)
	}
	uptime := parseUptime(res.Stdout)
	if uptime == "" {
		return "", fmt.Errorf("uptime: not found in SHOW SYSTEM banner")
	}
	return uptime, nil
}

// parseUptime pulls the "days hh:mm:ss" pair following "Uptime" out of the
// SHOW SYSTEM banner line.
func parseUptime(banner string) string {
	for _, line := range strings.Split(banner, "\n") {
		fields := strings.Fields(line)
		for i, field := range fields {
			if strings.EqualFold(field, "Uptime") && i+1 < len(fields) {
				end := min(i+3, len(fields))
				return strings.Join(fields[i+1:end], " ")
			}
		}
	}
	return ""
}

// humanizePages converts a MEMSIZE page count (512-byte pages) into a
// human-readable size string.
// Output format is:
// - For sizes >= 1 GiB: X.X GiB
// - For sizes >= 1 MiB: X.X MiB
// - Below that: X KiB
// Returns the input string unchanged if it cannot be parsed as an integer.
func humanizePages(pages string) string {
	n, err := strconv.Atoi(pages)
	if err != nil {
		return pages
	}
	kb := n / 2 // 512-byte pages
	switch {
	case kb >= 1024*1024:
		return fmt.Sprintf("%.1f GiB", float64(kb)/(1024*1024))
	case kb >= 1024:
		return fmt.Sprintf("%.1f MiB", float64(kb)/1024)
	default:
		return fmt.Sprintf("%d KiB", kb)
	}
}

// gatherSysInfo collects the snapshot from an established connection.
// Collection is sequential: every item shares the one SSH connection.
// Returns the partial snapshot together with any collection errors.
func gatherSysInfo(ctx context.Context, runner commandRunner) (SysInfo, []error) {
	var info SysInfo
	var errs []error

	if node, err := getsyi(ctx, runner, "NODENAME"); err == nil {
		info.Node = node
	} else {
		errs = append(errs, err)
	}
	if version, err := getsyi(ctx, runner, "VERSION"); err == nil {
		info.Version = version
	} else {
		errs = append(errs, err)
	}
	if hardware, err := getsyi(ctx, runner, "HW_NAME"); err == nil {
		info.Hardware = hardware
	} else {
		errs = append(errs, err)
	}
	if cpus, err := getsyi(ctx, runner, "ACTIVECPU_CNT"); err == nil {
		if n, convErr := strconv.Atoi(cpus); convErr == nil {
			info.CPUs = n
		} else {
			errs = append(errs, fmt.Errorf("ACTIVECPU_CNT: unexpected value %q", cpus))
		}
	} else {
		errs = append(errs, err)
	}
	if pages, err := getsyi(ctx, runner, "MEMSIZE"); err == nil {
		info.Memory = humanizePages(pages)
	} else {
		errs = append(errs, err)
	}
	if uptime, err := getUptime(ctx, runner); err == nil {
		info.Uptime = uptime
	} else {
		errs = append(errs, err)
	}

	return info, errs
}

// runSysInfo gathers and displays the host snapshot. Any errors encountered
// during collection are displayed in a summary before the output; the
// command fails only when nothing could be collected.
func runSysInfo(ctx context.Context, runner commandRunner) error {
	info, errs := gatherSysInfo(ctx, runner)

	if len(errs) > 0 {
		fmt.Println("\nSummary of errors:")
		for _, err := range errs {
			fmt.Println("-", err)
		}
		if info == (SysInfo{}) {
			return fmt.Errorf("errors occurred during system info collection")
		}
	}

	return renderOutput(info)
}

// init initializes the sysinfo command.
func init() {
	rootCmd.AddCommand(sysinfoCmd)
}
