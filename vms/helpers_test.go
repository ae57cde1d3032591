// File: vms/helpers_test.go
package vms

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// fakeRunner records every command it receives and answers from respond.
// Without a respond func, every command succeeds with empty output.
type fakeRunner struct {
	commands []string
	respond  func(command string) (stdout, stderr string, err error)
}

func (f *fakeRunner) exec(ctx context.Context, command string) (string, string, error) {
	f.commands = append(f.commands, command)
	if f.respond == nil {
		return "1\n", "", nil
	}
	return f.respond(command)
}

// fakeFiles is an in-memory stand-in for the SFTP subsystem.
type fakeFiles struct {
	files map[string][]byte
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{files: make(map[string][]byte)}
}

func (f *fakeFiles) Open(path string) (io.ReadCloser, error) {
	content, ok := f.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (f *fakeFiles) Create(path string) (io.WriteCloser, error) {
	return &fakeFile{path: path, owner: f}, nil
}

func (f *fakeFiles) Stat(path string) (os.FileInfo, error) {
	if _, ok := f.files[path]; !ok {
		return nil, os.ErrNotExist
	}
	return nil, nil
}

func (f *fakeFiles) Close() error { return nil }

type fakeFile struct {
	bytes.Buffer
	path  string
	owner *fakeFiles
}

func (f *fakeFile) Close() error {
	f.owner.files[f.path] = f.Bytes()
	return nil
}

// newTestClient wires a Client to the fakes, the way Dial wires the real
// transports.
func newTestClient(run runner, files *fakeFiles) *Client {
	cfg := Default()
	cfg.Host = "testvms"
	c := &Client{
		cfg: cfg,
		run: run,
		fs:  afero.NewMemMapFs(),
		log: logrus.WithField("host", cfg.Host),
	}
	c.newFileSession = func() (fileSession, error) { return files, nil }
	return c
}
