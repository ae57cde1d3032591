// File: cmd/output.go
package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/fernandezcuesta/govms/vms"
)

// renderOutput marshals v according to the global format flag and prints it.
func renderOutput(v interface{}) error {
	var output []byte
	var err error
	if formatFlag == "json" {
		output, err = json.MarshalIndent(v, "", "  ")
	} else {
		output, err = yaml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("output: failed to generate: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// echoResult prints a command result with per-line host prefixes, the way
// interactive automation output is usually read:
//
//	[vms1] run: SHOW SYSTEM
//	[vms1] out: OpenVMS V8.4-2L1 ...
func echoResult(host string, res vms.Result) {
	fmt.Printf("[%s] run: %s\n", host, res.Command)
	for _, line := range splitNonEmpty(res.Stdout) {
		fmt.Printf("[%s] out: %s\n", host, line)
	}
	for _, line := range splitNonEmpty(res.Stderr) {
		fmt.Printf("[%s] err: %s\n", host, line)
	}
}

func splitNonEmpty(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
