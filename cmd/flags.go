// File: cmd/flags.go
package cmd

import (
	"context"
	"fmt"

	"github.com/fernandezcuesta/govms/vms"
)

// Shared command flags
var (
	formatFlag  string // Common flag for output format (yaml/json)
	cfgFile     string // Path to the YAML host inventory
	hostFlag    string // Target host alias or address
	verboseFlag bool   // Debug logging toggle
)

// validateFormat checks if the provided format is either "json" or "yaml"
func validateFormat(format string) error {
	if format != "json" && format != "yaml" {
		return fmt.Errorf("invalid format: %s. Valid options are 'json' or 'yaml'", format)
	}
	return nil
}

// loadInventory reads the host inventory selected by --config (package
// defaults plus GOVMS_* environment overrides when no file is given).
func loadInventory() (vms.Inventory, error) {
	return vms.Load(cfgFile)
}

// hostConfig resolves the configuration of the host selected by --host.
func hostConfig() (vms.Config, error) {
	inv, err := loadInventory()
	if err != nil {
		return vms.Config{}, err
	}
	return inv.HostConfig(hostFlag)
}

// dial connects to the host selected by --host.
func dial(ctx context.Context) (*vms.Client, error) {
	cfg, err := hostConfig()
	if err != nil {
		return nil, err
	}
	return vms.Dial(ctx, cfg)
}
