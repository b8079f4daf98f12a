package cmd

import (
	"bytes"
	"testing"

	"github.com/iksnae/hive-session/testutil"
)

func TestWatchCommand(t *testing.T) {
	server := testutil.NewMockAPI(t)

	// The mock stream sends a few events and closes, so watch should
	// drain it and exit cleanly
	rootCmd.SetArgs([]string{"watch", "--server", server.URL, "--agent", "demo"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("watch command failed: %v", err)
	}
}

func TestWatchCommand_JSON(t *testing.T) {
	server := testutil.NewMockAPI(t)

	rootCmd.SetArgs([]string{"watch", "--json", "--server", server.URL, "--agent", "demo"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	defer func() { watchJSON = false }()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("watch --json failed: %v", err)
	}
}

func TestWatchCommand_ExecutionFilter(t *testing.T) {
	server := testutil.NewMockAPI(t)

	rootCmd.SetArgs([]string{"watch", "--execution", "exec-other", "--server", server.URL, "--agent", "demo"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	defer func() { watchExecution = "" }()

	// All events belong to a different execution, so nothing is shown,
	// but the command still exits cleanly
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("watch --execution failed: %v", err)
	}
}

func TestWatchCommand_NoAgent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	original := agentFlag
	defer func() { agentFlag = original }()

	rootCmd.SetArgs([]string{"watch", "--agent", "", "--server", "http://127.0.0.1:1"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Error("watch without an agent should fail")
	}
}
