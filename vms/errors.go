// File: vms/errors.go
package vms

import "errors"

// Sentinel errors returned by this package. Everything coming out of the SSH
// or SFTP layers is wrapped with one of these so callers can classify
// failures with errors.Is without string matching.
var (
	// ErrDial indicates the TCP/SSH connection could not be established.
	ErrDial = errors.New("vms: connection failed")

	// ErrAuth indicates the SSH2 server rejected the credentials.
	ErrAuth = errors.New("vms: authentication failed")

	// ErrSession indicates a remote exec session could not be run to completion.
	ErrSession = errors.New("vms: session failed")

	// ErrCommandFailed indicates the remote command completed with an even
	// (failure) $SEVERITY condition value.
	ErrCommandFailed = errors.New("vms: command failed")

	// ErrSeverity indicates the severity trailer was missing or malformed in
	// the command output.
	ErrSeverity = errors.New("vms: severity status missing from output")

	// ErrTransfer indicates an SFTP upload or download failed.
	ErrTransfer = errors.New("vms: file transfer failed")

	// ErrUnknownHost indicates the requested host is not in the inventory.
	ErrUnknownHost = errors.New("vms: host not found in inventory")
)
