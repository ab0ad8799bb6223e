package main

import (
	"os"
	"testing"
)

func TestReplaceCommand(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		from, to string
		want     string
		wantErr  bool
	}{
		{
			name:    "byte remap",
			content: "a.b.c",
			from:    ".",
			to:      "-",
			want:    "a-b-c",
		},
		{
			name:    "sequence grow",
			content: "XYabcXYabc",
			from:    "XY",
			to:      "GIG",
			want:    "GIGabcGIGabc",
		},
		{
			name:    "sequence shrink",
			content: "a--b--c",
			from:    "--",
			to:      "",
			want:    "abc",
		},
		{
			name:    "empty from rejected",
			content: "abc",
			from:    "",
			to:      "x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			path := writeTestFile(t, tt.content)
			output, err := captureOutput(t, func() error {
				return runReplace([]string{path, tt.from, tt.to})
			})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got output %q", output)
				}
				return
			}
			if err != nil {
				t.Fatalf("runReplace: %v", err)
			}
			if output != tt.want {
				t.Fatalf("got %q want %q", output, tt.want)
			}
		})
	}
}

func TestReplaceCommandInPlace(t *testing.T) {
	resetFlags()
	replaceInPlace = true

	path := writeTestFile(t, "one fish two fish")
	output, err := captureOutput(t, func() error {
		return runReplace([]string{path, "fish", "cat"})
	})
	if err != nil {
		t.Fatalf("runReplace: %v", err)
	}
	if output != "" {
		t.Fatalf("in-place run printed %q", output)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "one cat two cat" {
		t.Fatalf("file holds %q", data)
	}
}

func TestReplaceCommandInPlaceStdin(t *testing.T) {
	resetFlags()
	replaceInPlace = true
	if err := runReplace([]string{"-", "a", "b"}); err == nil {
		t.Fatal("expected error for --in-place with stdin")
	}
}
