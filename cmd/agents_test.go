package cmd

import (
	"bytes"
	"testing"

	"github.com/iksnae/hive-session/testutil"
)

func TestAgentsCommand(t *testing.T) {
	server := testutil.NewMockAPI(t)

	rootCmd.SetArgs([]string{"agents", "--server", server.URL})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("agents command failed: %v", err)
	}
}

func TestAgentsCommand_ServerDown(t *testing.T) {
	rootCmd.SetArgs([]string{"agents", "--server", "http://127.0.0.1:1"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Error("agents should fail when the server is unreachable")
	}
}
