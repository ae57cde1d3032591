// File: vms/run.go
package vms

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Result holds the outcome of a remote command.
type Result struct {
	Command  string
	Stdout   string
	Stderr   string
	Severity Severity
	// Status is the collapsed exit status: 0 for odd (success) severities,
	// 1 for even (failure) ones.
	Status int
}

// Failed reports whether the command completed with a failure severity.
func (r Result) Failed() bool {
	return r.Status != 0
}

// wrap builds the full DCL command line: the command and its prefixes (SET
// DEFAULT first) inside a PIPE with the $SEVERITY trailer that stands in for
// the missing exit status. DCL only separates commands with ";" inside a
// PIPE, so the prefixes must live inside it too.
func (c *Client) wrap(command string) string {
	full := "PIPE "
	if c.cfg.TerminalWidth > 0 {
		full += fmt.Sprintf("SET TERMINAL /WIDTH=%d & ", c.cfg.TerminalWidth)
	}

	prefixes := make([]string, 0, len(c.prefixes)+1)
	if c.cwd != "" {
		prefixes = append(prefixes, "SET DEFAULT "+c.cwd)
	}
	prefixes = append(prefixes, c.prefixes...)
	if len(prefixes) > 0 {
		full += strings.Join(prefixes, " ; ") + " ; "
	}
	return full + command + " ; WRITE SYS$OUTPUT $SEVERITY"
}

// Run executes a command on the remote interpreter and returns its output
// and status. For DCL targets the status is derived from $SEVERITY; commands
// routed to PML are forwarded verbatim. A failure severity is returned both
// on the Result and as an ErrCommandFailed error.
func (c *Client) Run(ctx context.Context, command string) (Result, error) {
	if c.cfg.Interpreter == InterpreterPML {
		return c.RunPML(ctx, command)
	}

	stdout, stderr, err := c.run.exec(ctx, c.wrap(command))
	if err != nil {
		return Result{Command: command, Stdout: stdout, Stderr: stderr, Status: 1},
			fmt.Errorf("%w: %q: %v", ErrSession, command, err)
	}

	body, severity, err := splitSeverity(stdout)
	if err != nil {
		return Result{Command: command, Stdout: stdout, Stderr: stderr, Status: 1},
			fmt.Errorf("%q: %w", command, err)
	}

	res := Result{
		Command:  command,
		Stdout:   body,
		Stderr:   stderr,
		Severity: severity,
	}
	if severity.Failed() {
		res.Status = 1
		c.log.WithField("command", command).
			WithField("severity", severity.String()).Debug("command failed")
		return res, fmt.Errorf("%w: %q: severity %s", ErrCommandFailed, command, severity)
	}
	c.log.WithField("command", command).Debug("command succeeded")
	return res, nil
}

// SafeRun is Run with failure severities tolerated: the Result reports the
// failure but no error is returned, leaving the continue/abort decision to
// the caller.
func (c *Client) SafeRun(ctx context.Context, command string) (Result, error) {
	res, err := c.Run(ctx, command)
	if errors.Is(err, ErrCommandFailed) {
		c.log.WithField("command", command).Warn("command failed, continuing")
		return res, nil
	}
	return res, err
}

// RunPML hands the command to the PML interpreter on the v5 platform. PML
// knows nothing about $SEVERITY, so the output is returned verbatim and the
// status reflects only whether the session itself completed.
func (c *Client) RunPML(ctx context.Context, command string) (Result, error) {
	// DCL escapes a quote inside a quoted string by doubling it.
	full := c.cfg.PMLCommand + ` "` + strings.ReplaceAll(command, `"`, `""`) + `"`
	stdout, stderr, err := c.run.exec(ctx, full)
	if err != nil {
		return Result{Command: command, Stdout: stdout, Stderr: stderr, Status: 1},
			fmt.Errorf("%w: %q: %v", ErrSession, command, err)
	}
	return Result{
		Command:  command,
		Stdout:   strings.TrimRight(stdout, "\r\n"),
		Stderr:   stderr,
		Severity: SeveritySuccess,
	}, nil
}
