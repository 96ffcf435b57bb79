package main

import (
	"bytes"
	"strings"
	"testing"
)

func captureHelpOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	helpCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		helpCmd.SetErr(nil)
	})
	return &stdout, &stderr
}

func TestRunHelp_UnknownTopic(t *testing.T) {
	stdout, stderr := captureHelpOutput(t)

	if err := runHelp(helpCmd, []string{"nope"}); err != nil {
		t.Fatalf("help: %v", err)
	}
	if got := stderr.String(); got != "Unknown help topic \"nope\"\n" {
		t.Fatalf("unexpected stderr %q", got)
	}
	if !strings.Contains(stdout.String(), "Usage:") {
		t.Fatalf("expected root usage, got %q", stdout.String())
	}
}

func TestRunHelp_KnownCommand(t *testing.T) {
	stdout, stderr := captureHelpOutput(t)

	if err := runHelp(helpCmd, []string{"stop"}); err != nil {
		t.Fatalf("help: %v", err)
	}
	if stderr.Len() != 0 {
		t.Fatalf("expected no stderr, got %q", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Stop the current session") {
		t.Fatalf("expected stop help, got %q", stdout.String())
	}
}
