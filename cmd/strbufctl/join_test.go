package main

import (
	"strings"
	"testing"
)

func TestJoinCommand(t *testing.T) {
	resetFlags()
	output, err := captureOutput(t, func() error {
		return runJoin([]string{"/", "usr", "local", "bin"})
	})
	if err != nil {
		t.Fatalf("runJoin: %v", err)
	}
	if output != "usr/local/bin\n" {
		t.Fatalf("got %q", output)
	}
}

func TestJoinCommandJSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	output, err := captureOutput(t, func() error {
		return runJoin([]string{", ", "apples", "pears"})
	})
	if err != nil {
		t.Fatalf("runJoin: %v", err)
	}
	assertJSON(t, output)
	if !strings.Contains(output, "apples, pears") {
		t.Fatalf("missing joined result in %q", output)
	}
}
