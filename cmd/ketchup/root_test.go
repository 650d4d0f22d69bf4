package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	if cmd.Use != "ketchup" {
		t.Errorf("expected use 'ketchup', got %q", cmd.Use)
	}

	for _, flag := range []string{"token", "config", "dump-responses", "json", "markdown", "output", "timeout"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag %q to be registered", flag)
		}
	}
	if cmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("expected persistent flag 'verbose'")
	}
}

func TestRootCmdConflictingFormats(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--token", "xoxp-test", "--json", "--markdown"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "conflicting report formats") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRootCmdMissingToken(t *testing.T) {
	t.Setenv("KETCHUP_TOKEN", "")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "no Slack token") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRootCmdConfigNotFound(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--token", "xoxp-test", "--config", filepath.Join(t.TempDir(), "nope.yaml")})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "configuration file not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRootCmdInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.yaml")
	broken := "- name: urgent\n  enable: true\n" // most required keys missing
	if err := os.WriteFile(path, []byte(broken), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--token", "xoxp-test", "--config", path})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid config file") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), `missing required key "channels"`) {
		t.Errorf("expected missing-key violation, got %v", err)
	}
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "ketchup version") {
		t.Errorf("unexpected output %q", out.String())
	}
}
