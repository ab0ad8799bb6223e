package main

import "testing"

func TestPathCommand(t *testing.T) {
	tests := []struct {
		name    string
		ext     string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "dirname",
			args: []string{"dirname", "/etc/ssh/sshd_config", "relative.txt"},
			want: "/etc/ssh\n.\n",
		},
		{
			name: "basename",
			args: []string{"basename", "/tmp/notes.txt", "/"},
			want: "notes.txt\n\n",
		},
		{
			name: "basename with ext",
			ext:  ".txt",
			args: []string{"basename", "/tmp/notes.txt"},
			want: "notes\n",
		},
		{
			name:    "unknown mode",
			args:    []string{"realpath", "/tmp"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			pathExt = tt.ext
			output, err := captureOutput(t, func() error {
				return runPath(tt.args)
			})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got output %q", output)
				}
				return
			}
			if err != nil {
				t.Fatalf("runPath: %v", err)
			}
			if output != tt.want {
				t.Fatalf("got %q want %q", output, tt.want)
			}
		})
	}
}
