// File: vms/queue_test.go
package vms

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const showEntryDetail = `  Entry  Jobname         Username     Blocks  Status
  -----  -------         --------     ------  ------
    642  NIGHTLY         SYSTEM               Holding until 31-AUG-2026 01:00
         On idle batch queue SYS$BATCH
         Submitted 30-AUG-2026 01:00 /KEEP /LOG=SYS$MANAGER: /PRIORITY=100
         File: _DSA0:[SYSMGR]NIGHTLY.COM;3`

func TestParseEntryDetail(t *testing.T) {
	file, qualifiers := parseEntryDetail(showEntryDetail)
	assert.Equal(t, "DSA0:[SYSMGR]NIGHTLY.COM;3", file)
	assert.Equal(t, []string{"KEEP", "LOG=SYS$MANAGER:", "PRIORITY=100"}, qualifiers)
}

func TestParseEntryDetailNoQualifiers(t *testing.T) {
	detail := `    643  CLEANUP         SYSTEM               Executing
         Submitted 30-AUG-2026 02:00
         File: _DSA0:[SYSMGR]CLEANUP.COM;1`
	file, qualifiers := parseEntryDetail(detail)
	assert.Equal(t, "DSA0:[SYSMGR]CLEANUP.COM;1", file)
	assert.Empty(t, qualifiers)
}

func TestParseEntryDetailEmpty(t *testing.T) {
	file, qualifiers := parseEntryDetail("")
	assert.Empty(t, file)
	assert.Nil(t, qualifiers)
}

func queueRunner() *fakeRunner {
	return &fakeRunner{respond: func(command string) (string, string, error) {
		switch {
		case strings.Contains(command, "SHOW QUEUE"):
			return "   642  NIGHTLY  SYSTEM  Holding\n1\n", "", nil
		case strings.Contains(command, "SHOW ENTRY"):
			return showEntryDetail + "\n1\n", "", nil
		default:
			return "1\n", "", nil
		}
	}}
}

func TestLookupJob(t *testing.T) {
	runner := queueRunner()
	client := newTestClient(runner, newFakeFiles())

	job, err := client.LookupJob(context.Background(), "nightly")
	require.NoError(t, err)
	assert.Equal(t, "NIGHTLY", job.Name)
	require.Len(t, job.Entries, 1)
	assert.Equal(t, "642", job.Entries[0].ID)
	assert.Equal(t, "DSA0:[SYSMGR]NIGHTLY.COM;3", job.Entries[0].File)

	// Lookup pipes the queue listing through SEARCH on the job name.
	assert.Contains(t, runner.commands[0], "SHOW QUEUE /BATCH /ALL | SEA SYS$PIPE NIGHTLY")
	assert.Contains(t, runner.commands[1], "SHOW ENTRY 642 /FULL")
}

func TestQueueJobStop(t *testing.T) {
	runner := queueRunner()
	client := newTestClient(runner, newFakeFiles())

	job, err := client.LookupJob(context.Background(), "NIGHTLY")
	require.NoError(t, err)
	require.NoError(t, job.Stop(context.Background()))

	last := runner.commands[len(runner.commands)-1]
	assert.Contains(t, last, "DELETE /ENTRY=642")
}

func TestQueueJobResubmit(t *testing.T) {
	runner := queueRunner()
	client := newTestClient(runner, newFakeFiles())

	job, err := client.LookupJob(context.Background(), "NIGHTLY")
	require.NoError(t, err)
	require.NoError(t, job.Resubmit(context.Background(), ""))

	last := runner.commands[len(runner.commands)-1]
	assert.Contains(t, last,
		"SUBMIT DSA0:[SYSMGR]NIGHTLY.COM;3 /KEEP /LOG=SYS$MANAGER: /PRIORITY=100")
}

func TestQueueJobResubmitUnknownEntry(t *testing.T) {
	runner := queueRunner()
	client := newTestClient(runner, newFakeFiles())

	job, err := client.LookupJob(context.Background(), "NIGHTLY")
	require.NoError(t, err)
	before := len(runner.commands)
	require.NoError(t, job.Resubmit(context.Background(), "999"))
	assert.Len(t, runner.commands, before)
}
