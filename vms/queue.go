// File: vms/queue.go
package vms

import (
	"context"
	"fmt"
	"strings"
)

// QueueEntry is one batch queue entry belonging to a job.
type QueueEntry struct {
	ID string `json:"id" yaml:"id"`
	// File is the submitted command file, as reported by SHOW ENTRY.
	File string `json:"file" yaml:"file"`
	// Qualifiers are the /QUALIFIER strings the job was submitted with,
	// preserved so the entry can be resubmitted identically.
	Qualifiers []string `json:"qualifiers" yaml:"qualifiers"`
}

// QueueJob is a named batch job and its current queue entries.
type QueueJob struct {
	Name    string       `json:"name" yaml:"name"`
	Entries []QueueEntry `json:"entries" yaml:"entries"`

	client *Client
}

// LookupJob finds the batch queue entries of a job by name (matched
// case-insensitively, VMS style) and fetches per-entry detail.
func (c *Client) LookupJob(ctx context.Context, name string) (*QueueJob, error) {
	name = strings.ToUpper(name)
	res, err := c.Run(ctx, "SHOW QUEUE /BATCH /ALL | SEA SYS$PIPE "+name)
	if err != nil {
		return nil, err
	}

	job := &QueueJob{Name: name, client: c}
	for _, line := range strings.Split(res.Stdout, "\n") {
		if !strings.Contains(strings.ToUpper(line), name) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		detail, err := c.Run(ctx, fmt.Sprintf("SHOW ENTRY %s /FULL", fields[0]))
		if err != nil {
			return nil, err
		}
		file, qualifiers := parseEntryDetail(detail.Stdout)
		job.Entries = append(job.Entries, QueueEntry{
			ID:         fields[0],
			File:       file,
			Qualifiers: qualifiers,
		})
	}
	return job, nil
}

// parseEntryDetail extracts the command file and submit qualifiers from SHOW
// ENTRY /FULL output. The file is on the last line ("File: _DSA0:[DIR]X.COM;1",
// the underscore prefix is dropped); qualifiers are gathered from the
// "Submitted" line onwards, split on "/" with the timestamp discarded.
func parseEntryDetail(detail string) (string, []string) {
	var lines []string
	for _, line := range strings.Split(detail, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return "", nil
	}

	var file string
	if fields := strings.Fields(lines[len(lines)-1]); len(fields) >= 2 {
		file = strings.TrimPrefix(fields[1], "_")
	}

	start := -1
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), "submitted") {
			start = i
			break
		}
	}
	if start < 0 {
		return file, nil
	}

	var joined string
	for _, line := range lines[start : len(lines)-1] {
		joined += strings.TrimSpace(line)
	}
	parts := strings.Split(joined, "/")
	if len(parts) <= 1 {
		return file, nil
	}
	qualifiers := make([]string, 0, len(parts)-1)
	for _, part := range parts[1:] {
		if q := strings.TrimSpace(part); q != "" {
			qualifiers = append(qualifiers, q)
		}
	}
	return file, qualifiers
}

// Stop deletes every queue entry of the job.
func (j *QueueJob) Stop(ctx context.Context) error {
	for _, entry := range j.Entries {
		if _, err := j.client.Run(ctx, "DELETE /ENTRY="+entry.ID); err != nil {
			return err
		}
	}
	return nil
}

// Resubmit submits an entry's command file again with its original
// qualifiers. An empty entryID resubmits every known entry.
func (j *QueueJob) Resubmit(ctx context.Context, entryID string) error {
	for _, entry := range j.Entries {
		if entryID != "" && entry.ID != entryID {
			continue
		}
		command := "SUBMIT " + entry.File
		if len(entry.Qualifiers) > 0 {
			command += " /" + strings.Join(entry.Qualifiers, " /")
		}
		if _, err := j.client.Run(ctx, command); err != nil {
			return err
		}
	}
	return nil
}
