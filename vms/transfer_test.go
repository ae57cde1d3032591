// File: vms/transfer_test.go
package vms

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutTranslatesRemotePath(t *testing.T) {
	files := newFakeFiles()
	client := newTestClient(&fakeRunner{}, files)
	require.NoError(t, afero.WriteFile(client.fs, "upload.com", []byte("$ SHOW TIME\n"), 0644))

	require.NoError(t, client.Put("upload.com", "DISK$USER:[HOME]UPLOAD.COM"))
	assert.Equal(t, []byte("$ SHOW TIME\n"), files.files["/DISK$USER/HOME/UPLOAD.COM"])
}

func TestPutDefaultsToTempDir(t *testing.T) {
	files := newFakeFiles()
	client := newTestClient(&fakeRunner{}, files)
	require.NoError(t, afero.WriteFile(client.fs, "data.txt", []byte("content"), 0644))

	require.NoError(t, client.Put("data.txt", "DATA.TXT"))
	assert.Contains(t, files.files, "/TCPIP$SSH_HOME/DATA.TXT")
}

func TestPutMissingLocalFile(t *testing.T) {
	client := newTestClient(&fakeRunner{}, newFakeFiles())
	err := client.Put("nope.txt", "NOPE.TXT")
	require.ErrorIs(t, err, ErrTransfer)
}

func TestGet(t *testing.T) {
	files := newFakeFiles()
	files.files["/DSA0/SYSMGR/NIGHTLY.LOG"] = []byte("job started\njob done\n")
	client := newTestClient(&fakeRunner{}, files)

	require.NoError(t, client.Get("DSA0:[SYSMGR]NIGHTLY.LOG", "nightly.log"))
	content, err := afero.ReadFile(client.fs, "nightly.log")
	require.NoError(t, err)
	assert.Equal(t, []byte("job started\njob done\n"), content)
}

func TestGetDefaultsLocalName(t *testing.T) {
	files := newFakeFiles()
	files.files["/DSA0/SYSMGR/NIGHTLY.LOG"] = []byte("x")
	client := newTestClient(&fakeRunner{}, files)

	require.NoError(t, client.Get("DSA0:[SYSMGR]NIGHTLY.LOG", ""))
	_, err := afero.ReadFile(client.fs, "NIGHTLY.LOG")
	require.NoError(t, err)
}

func TestGetFailedFetchLeavesNoLocalFile(t *testing.T) {
	client := newTestClient(&fakeRunner{}, newFakeFiles())

	err := client.Get("DSA0:[SYSMGR]MISSING.LOG", "missing.log")
	require.ErrorIs(t, err, ErrTransfer)

	_, err = client.fs.Stat("missing.log")
	assert.True(t, os.IsNotExist(err))
}

func TestExists(t *testing.T) {
	files := newFakeFiles()
	files.files["/TCPIP$SSH_HOME/PRESENT.DAT"] = []byte("here")
	client := newTestClient(&fakeRunner{}, files)

	present, err := client.Exists("PRESENT.DAT")
	require.NoError(t, err)
	assert.True(t, present)

	absent, err := client.Exists("ABSENT.DAT")
	require.NoError(t, err)
	assert.False(t, absent)
}

func TestPrintFile(t *testing.T) {
	files := newFakeFiles()
	files.files["/SYS$COMMON/SYSMGR/SYLOGIN.COM"] = []byte("$ ! site login\n")
	client := newTestClient(&fakeRunner{}, files)

	content, err := client.PrintFile("SYS$COMMON:[SYSMGR]SYLOGIN.COM")
	require.NoError(t, err)
	assert.Equal(t, "$ ! site login\n", content)
}
