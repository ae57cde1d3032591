// File: vms/cluster_test.go
package vms

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const showClusterListing = `View of Cluster from system ID 4321  node: VMS1
+---------------------------------+
|          SYSTEMS  |  MEMBERS    |
+-------------------+-------------+
| NODE   | SOFTWARE |   STATUS    |
+--------+----------+-------------+
| VMS1   | VMS V8.4 |   MEMBER    |
| VMS2   | VMS V8.4 |   MEMBER    |
| QUORUM | VMS V8.4 |             |
+--------+----------+-------------+`

func TestParseClusterNodes(t *testing.T) {
	nodes := parseClusterNodes(showClusterListing)
	assert.Equal(t, []string{"VMS1", "VMS2"}, nodes)
}

func TestParseClusterNodesEmpty(t *testing.T) {
	assert.Nil(t, parseClusterNodes("not a cluster listing"))
}

func TestRunClusterwide(t *testing.T) {
	files := newFakeFiles()
	runner := &fakeRunner{respond: func(command string) (string, string, error) {
		if strings.Contains(command, "SHOW CLUSTER") {
			return showClusterListing + "\n1\n", "", nil
		}
		return "1\n", "", nil
	}}
	client := newTestClient(runner, files)

	_, err := client.RunClusterwide(context.Background(), []string{"SHOW TIME", "SHOW USERS"})
	require.NoError(t, err)

	// One uploaded SYSMAN script with a per-node environment block.
	require.Len(t, files.files, 1)
	var script string
	for _, content := range files.files {
		script = string(content)
	}
	assert.Equal(t, strings.Join([]string{
		"SET ENVIRONMENT /NODE=(VMS1)",
		"DO SHOW TIME",
		"DO SHOW USERS",
		"SET ENVIRONMENT /NODE=(VMS2)",
		"DO SHOW TIME",
		"DO SHOW USERS",
		"EXIT",
		"",
	}, "\n"), script)

	// SHOW CLUSTER, MCR SYSMAN @script, DELETE of the temporary script.
	require.Len(t, runner.commands, 3)
	assert.Contains(t, runner.commands[1], "MCR SYSMAN @TCPIP$SSH_HOME:GOVMS_")
	assert.Contains(t, runner.commands[2], "DELETE /NOLOG TCPIP$SSH_HOME:GOVMS_")
	assert.Contains(t, runner.commands[2], ";*")
}

func TestRunClusterwideNoMembers(t *testing.T) {
	runner := &fakeRunner{respond: func(command string) (string, string, error) {
		return "no members here\n1\n", "", nil
	}}
	client := newTestClient(runner, newFakeFiles())

	_, err := client.RunClusterwide(context.Background(), []string{"SHOW TIME"})
	require.Error(t, err)
}
