package cmd

import (
	"bytes"
	"testing"

	"github.com/iksnae/hive-session/testutil"
)

func TestCheckpointsCommand(t *testing.T) {
	server := testutil.NewMockAPI(t)

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "checkpoints without session ID",
			args:    []string{"checkpoints"},
			wantErr: true,
		},
		{
			name:    "checkpoints for known session",
			args:    []string{"checkpoints", "session1", "--server", server.URL, "--agent", "demo"},
			wantErr: false,
		},
		{
			name:    "checkpoints for missing session",
			args:    []string{"checkpoints", "missing", "--server", server.URL, "--agent", "demo"},
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
				t.Errorf("checkpointsCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckpointsRestoreCommand(t *testing.T) {
	server := testutil.NewMockAPI(t)

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "restore with missing checkpoint arg",
			args:    []string{"checkpoints", "restore", "session1"},
			wantErr: true,
		},
		{
			name:    "restore known checkpoint",
			args:    []string{"checkpoints", "restore", "session1", "cp1", "--server", server.URL, "--agent", "demo"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("checkpoints restore error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
