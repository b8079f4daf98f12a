package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iksnae/hive-session/testutil"
)

func TestExportCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "export with invalid format",
			args:    []string{"export", "session1", "--format", "invalid", "--agent", "demo"},
			wantErr: true, // Invalid format should error
		},
		{
			name:    "export without sessions or --all",
			args:    []string{"export", "--format", "jsonl", "--agent", "demo"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("exportCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExportCommand_SingleSession(t *testing.T) {
	server := testutil.NewMockAPI(t)
	t.Setenv("HOME", t.TempDir())
	outDir := t.TempDir()

	rootCmd.SetArgs([]string{"export", "session1", "--server", server.URL, "--agent", "demo", "--format", "json", "--out", outDir})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export command failed: %v", err)
	}

	outPath := filepath.Join(outDir, "session_session1.json")
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("expected export file at %s: %v", outPath, err)
	}
	if !strings.Contains(string(data), "session1") {
		t.Error("exported file should mention the session ID")
	}
	if !strings.Contains(string(data), "Hello there") {
		t.Error("exported file should contain the message content")
	}
}

func TestExportCommand_All(t *testing.T) {
	server := testutil.NewMockAPI(t)
	t.Setenv("HOME", t.TempDir())
	outDir := t.TempDir()

	rootCmd.SetArgs([]string{"export", "--all", "--server", server.URL, "--agent", "demo", "--format", "md", "--out", outDir})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	defer func() { exportAll = false }()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export --all failed: %v", err)
	}

	for _, sessionID := range []string{"session1", "session2"} {
		outPath := filepath.Join(outDir, "session_"+sessionID+".md")
		if _, err := os.Stat(outPath); err != nil {
			t.Errorf("expected export file for %s: %v", sessionID, err)
		}
	}
}
