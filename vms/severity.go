// File: vms/severity.go
package vms

import (
	"fmt"
	"strconv"
	"strings"
)

// Severity is the low three bits of an OpenVMS condition value, reported by
// the DCL symbol $SEVERITY after each command. Odd values signal success,
// even values signal failure.
type Severity int

const (
	SeverityWarning Severity = 0 // execution continues, unpredictable results
	SeveritySuccess Severity = 1 // execution continues, expected results
	SeverityError   Severity = 2 // execution continues, erroneous results
	SeverityInfo    Severity = 3 // execution continues, informational message
	SeveritySevere  Severity = 4 // execution terminates, no output
)

// Failed reports whether the severity denotes a failure condition.
func (s Severity) Failed() bool {
	return s%2 == 0
}

// String returns the STS$K_* symbol name for known severities.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeveritySuccess:
		return "SUCCESS"
	case SeverityError:
		return "ERROR"
	case SeverityInfo:
		return "INFO"
	case SeveritySevere:
		return "SEVERE"
	}
	return fmt.Sprintf("SEVERITY(%d)", int(s))
}

// splitSeverity separates command output from the severity trailer appended
// by the PIPE wrapper. The trailer is the last non-blank line and must be a
// plain integer; everything above it is the command's own output.
func splitSeverity(stdout string) (string, Severity, error) {
	lines := strings.Split(strings.TrimRight(stdout, "\r\n"), "\n")
	last := len(lines) - 1
	for last >= 0 && strings.TrimSpace(lines[last]) == "" {
		last--
	}
	if last < 0 {
		return "", SeveritySevere, fmt.Errorf("%w: empty output", ErrSeverity)
	}
	value, err := strconv.Atoi(strings.TrimSpace(strings.TrimRight(lines[last], "\r")))
	if err != nil {
		return "", SeveritySevere, fmt.Errorf("%w: %q", ErrSeverity, lines[last])
	}
	body := make([]string, 0, last)
	for _, line := range lines[:last] {
		body = append(body, strings.TrimRight(line, "\r"))
	}
	return strings.Join(body, "\n"), Severity(value), nil
}
