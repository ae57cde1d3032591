// File: vms/path_test.go
package vms

import "testing"

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name string
		spec string
		dir  string
		file string
	}{
		{
			name: "device directory and name",
			spec: "DISK$USER:[HOME.DIR]FILE.TXT",
			dir:  "/DISK$USER/HOME/DIR",
			file: "FILE.TXT",
		},
		{
			name: "device and name",
			spec: "TCPIP$SSH_HOME:UPLOAD.COM",
			dir:  "/TCPIP$SSH_HOME",
			file: "UPLOAD.COM",
		},
		{
			name: "directory only",
			spec: "[SYSMGR]NIGHTLY.COM",
			dir:  "SYSMGR",
			file: "NIGHTLY.COM",
		},
		{
			name: "nested directory without device",
			spec: "[A.B.C]X.DAT",
			dir:  "A/B/C",
			file: "X.DAT",
		},
		{
			name: "bare name",
			spec: "FILE.TXT",
			dir:  "",
			file: "FILE.TXT",
		},
		{
			name: "name with version",
			spec: "DSA0:[SYSMGR]NIGHTLY.COM;3",
			dir:  "/DSA0/SYSMGR",
			file: "NIGHTLY.COM;3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, file := SplitPath(tt.spec)
			if dir != tt.dir || file != tt.file {
				t.Errorf("SplitPath(%q) = (%q, %q), want (%q, %q)",
					tt.spec, dir, file, tt.dir, tt.file)
			}
		})
	}
}

func TestSFTPPath(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"DISK$USER:[HOME]F.TXT", "/DISK$USER/HOME/F.TXT"},
		{"[HOME]F.TXT", "HOME/F.TXT"},
		{"F.TXT", "F.TXT"},
	}

	for _, tt := range tests {
		if got := sftpPath(tt.spec); got != tt.want {
			t.Errorf("sftpPath(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}
