// File: vms/device.go
package vms

import (
	"context"
	"fmt"
	"strings"
)

// OpenFile is one row of a SHOW DEVICE /FILES listing.
type OpenFile struct {
	Process string `json:"process" yaml:"process"`
	PID     string `json:"pid" yaml:"pid"`
	Path    string `json:"path" yaml:"path"`
}

// OpenFiles lists the files open on a device, excluding system files. The
// listing is captured to a temporary file and fetched over SFTP because the
// interactive output is clipped at the terminal width.
func (c *Client) OpenFiles(ctx context.Context, device string) ([]OpenFile, error) {
	capture := c.tempName("DAT")
	if _, err := c.Run(ctx, fmt.Sprintf(
		"SHOW DEVICE %s /FILES /NOSYSTEM /BRIEF /OUTPUT=%s", device, capture)); err != nil {
		return nil, err
	}

	listing, err := c.PrintFile(capture)
	if err != nil {
		return nil, err
	}
	if _, err := c.SafeRun(ctx, "DELETE /NOLOG "+capture+";*"); err != nil {
		c.log.WithField("remote", capture).Warn("could not remove capture file")
	}
	return parseOpenFiles(listing), nil
}

// parseOpenFiles turns the SHOW DEVICE /FILES /BRIEF listing into rows. The
// first line names the device, the second holds the column ruler. Process
// names may contain spaces, and rows short on fields (typically the file
// name, hidden without privileges) are padded with NLA0:.
func parseOpenFiles(listing string) []OpenFile {
	var lines []string
	for _, line := range strings.Split(listing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) <= 2 {
		return nil
	}

	const columns = 3
	var files []OpenFile
	for _, line := range lines[2:] {
		fields := strings.Fields(line)
		if extra := len(fields) - columns; extra > 0 {
			fields = append([]string{strings.Join(fields[:extra+1], " ")}, fields[extra+1:]...)
		} else if extra < 0 {
			for ; extra < 0; extra++ {
				fields = append(fields, "NLA0:")
			}
		}
		files = append(files, OpenFile{Process: fields[0], PID: fields[1], Path: fields[2]})
	}
	return files
}

// ShadowsetMembers returns the member devices of a shadowset (e.g. "DSA0:").
func (c *Client) ShadowsetMembers(ctx context.Context, shadowset string) ([]string, error) {
	res, err := c.Run(ctx, fmt.Sprintf(
		"SHOW DEVICE %s /BRIEF | SEA SYS$PIPE ShadowSetMember", shadowset))
	if err != nil {
		return nil, err
	}
	return parseShadowsetMembers(res.Stdout), nil
}

func parseShadowsetMembers(listing string) []string {
	var members []string
	for _, line := range strings.Split(listing, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			members = append(members, fields[0])
		}
	}
	return members
}
