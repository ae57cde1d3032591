// File: vms/script.go
package vms

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// tempName builds a unique temporary file specification under TempDir.
func (c *Client) tempName(ext string) string {
	tag := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("%s:GOVMS_%s.%s", c.cfg.TempDir, tag, ext)
}

// RunScript uploads a local DCL script, executes it with @, and removes the
// remote copy afterwards. prefix, when non-empty, is glued before the @
// invocation (e.g. "MCR SYSMAN").
func (c *Client) RunScript(ctx context.Context, local, prefix string) (Result, error) {
	remote := c.tempName("TMP")
	if err := c.Put(local, remote); err != nil {
		return Result{}, err
	}
	return c.execScript(ctx, remote, prefix)
}

// RunScriptContent behaves like RunScript for an in-memory script.
func (c *Client) RunScriptContent(ctx context.Context, content []byte, prefix string) (Result, error) {
	remote := c.tempName("TMP")
	if err := c.PutContent(content, remote); err != nil {
		return Result{}, err
	}
	return c.execScript(ctx, remote, prefix)
}

func (c *Client) execScript(ctx context.Context, remote, prefix string) (Result, error) {
	invoke := "@" + remote
	if prefix != "" {
		invoke = prefix + " " + invoke
	}
	res, err := c.Run(ctx, invoke)

	// All versions of the temporary script go; cleanup failure is not worth
	// masking the script's own result.
	if _, cleanupErr := c.SafeRun(ctx, "DELETE /NOLOG "+remote+";*"); cleanupErr != nil {
		c.log.WithField("remote", remote).Warn("could not remove temporary script")
	}
	return res, err
}
