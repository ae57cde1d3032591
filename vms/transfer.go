// File: vms/transfer.go
package vms

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Put uploads a local file to the remote host. remote may be a full VMS file
// specification; when empty or a bare name, it resolves against TempDir.
func (c *Client) Put(local, remote string) error {
	src, err := c.fs.Open(local)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTransfer, local, err)
	}
	defer src.Close()
	if remote == "" {
		remote = filepath.Base(local)
	}
	return c.put(src, remote, local)
}

// PutContent uploads in-memory content to the remote host.
func (c *Client) PutContent(content []byte, remote string) error {
	return c.put(bytes.NewReader(content), remote, "(content)")
}

func (c *Client) put(src io.Reader, remote, describe string) error {
	if remote == "" {
		return fmt.Errorf("%w: no remote path for %s", ErrTransfer, describe)
	}
	session, err := c.newFileSession()
	if err != nil {
		return err
	}
	defer session.Close()

	target := c.resolveRemote(remote)
	dst, err := session.Create(target)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrTransfer, target, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("%w: write %s: %v", ErrTransfer, target, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrTransfer, target, err)
	}
	c.log.WithField("remote", target).Debug("uploaded")
	return nil
}

// Get downloads a remote file. local names the destination on the local
// filesystem; when empty, the remote file name is reused in the working
// directory.
func (c *Client) Get(remote, local string) error {
	if local == "" {
		_, local = SplitPath(remote)
	}
	// Fetch before touching the local side, so a failed download does not
	// leave an empty file behind.
	content, err := c.fetch(remote)
	if err != nil {
		return err
	}

	dst, err := c.fs.Create(local)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTransfer, local, err)
	}
	defer dst.Close()
	if _, err := dst.Write(content); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTransfer, local, err)
	}
	return nil
}

// Exists reports whether a remote file specification resolves to a file the
// SFTP server can stat.
func (c *Client) Exists(remote string) (bool, error) {
	session, err := c.newFileSession()
	if err != nil {
		return false, err
	}
	defer session.Close()

	_, err = session.Stat(c.resolveRemote(remote))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("%w: stat %s: %v", ErrTransfer, remote, err)
}

// PrintFile returns the content of a remote file, fetched over SFTP rather
// than TYPE so the terminal width cannot truncate long records.
func (c *Client) PrintFile(remote string) (string, error) {
	content, err := c.fetch(remote)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// fetch reads a remote file into memory.
func (c *Client) fetch(remote string) ([]byte, error) {
	session, err := c.newFileSession()
	if err != nil {
		return nil, err
	}
	defer session.Close()

	target := c.resolveRemote(remote)
	src, err := session.Open(target)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrTransfer, target, err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrTransfer, target, err)
	}
	return content, nil
}

// resolveRemote translates a VMS file specification to the SFTP view,
// anchoring bare names in TempDir.
func (c *Client) resolveRemote(remote string) string {
	dir, name := SplitPath(remote)
	if dir == "" && c.cfg.TempDir != "" {
		return sftpPath(c.cfg.TempDir + ":" + name)
	}
	if dir == "" {
		return name
	}
	return sftpPath(remote)
}
