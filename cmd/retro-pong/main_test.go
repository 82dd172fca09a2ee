package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRealMainRejectsInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"-bogus"}, "flag provided but not defined"},
		{"bad value", []string{"-target-score", "11"}, "Invalid flags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if code := realMain(tt.args, &stderr); code != 2 {
				t.Errorf("Expected exit code 2, got %d", code)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("Expected stderr to contain %q, got %q", tt.want, stderr.String())
			}
		})
	}
}

func TestCrashedRestoresTerminalFirst(t *testing.T) {
	var out bytes.Buffer
	finalized := false
	fini := func() {
		if out.Len() != 0 {
			t.Error("Expected terminal restored before any output")
		}
		finalized = true
	}

	err := crashed("boom", fini, &out)

	if !finalized {
		t.Error("Expected terminal to be finalized")
	}
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Expected crash error mentioning boom, got %v", err)
	}
	if !strings.Contains(out.String(), "RETRO-PONG CRASHED: boom") || !strings.Contains(out.String(), "Stack Trace:") {
		t.Errorf("Expected crash banner and stack trace, got %q", out.String())
	}
}
