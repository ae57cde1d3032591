// File: vms/path.go
package vms

import (
	"path"
	"strings"
)

// SplitPath translates an OpenVMS file specification into the POSIX view
// exposed by the SFTP server, returning the directory and file name parts.
//
// The SFTP server runs as a detached process, so login-bound logical names
// (SYS$LOGIN, SYS$SCRATCH) are generally undefined and absolute VMS paths
// must be spelled out. Examples:
//
//	DISK$USER:[HOME.DIR]FILE.TXT -> "/DISK$USER/HOME/DIR", "FILE.TXT"
//	[HOME]FILE.TXT               -> "HOME", "FILE.TXT"
//	FILE.TXT                     -> "", "FILE.TXT"
func SplitPath(spec string) (dir, name string) {
	rest := spec
	if i := strings.Index(rest, ":"); i >= 0 {
		dir = "/" + rest[:i]
		rest = rest[i+1:]
	}
	if i := strings.Index(rest, "]"); i >= 0 {
		segments := strings.Split(strings.TrimPrefix(rest[:i], "["), ".")
		if sub := strings.Join(segments, "/"); sub != "" {
			if dir != "" {
				dir += "/" + sub
			} else {
				dir = sub
			}
		}
		rest = rest[i+1:]
	}
	return dir, rest
}

// sftpPath joins the translated directory and name into the path handed to
// the SFTP server.
func sftpPath(spec string) string {
	dir, name := SplitPath(spec)
	if dir == "" {
		return name
	}
	return path.Join(dir, name)
}
