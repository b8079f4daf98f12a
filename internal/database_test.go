package internal

import (
	"path/filepath"
	"testing"

	"github.com/iksnae/hive-session/testutil"
)

func TestOpenDatabase(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr bool
	}{
		{
			name: "valid database",
			setup: func(t *testing.T) string {
				tmpDir := testutil.CreateTempDir(t)
				dbPath := filepath.Join(tmpDir, "test.db")
				testutil.CreateArchiveFixture(t, dbPath)
				return dbPath
			},
			wantErr: false,
		},
		{
			name: "non-existent database",
			setup: func(t *testing.T) string {
				tmpDir := testutil.CreateTempDir(t)
				// Read-only mode fails on a missing file, usually at Ping
				return filepath.Join(tmpDir, "nonexistent.db")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbPath := tt.setup(t)

			db, err := OpenDatabase(dbPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("OpenDatabase() error = %v, wantErr %v", err, tt.wantErr)
			}
			if db != nil {
				defer db.Close()
			}
		})
	}
}

func TestOpenDatabase_ReadOnly(t *testing.T) {
	tmpDir := testutil.CreateTempDir(t)
	dbPath := filepath.Join(tmpDir, "test.db")
	testutil.CreateArchiveFixture(t, dbPath)

	db, err := OpenDatabase(dbPath)
	if err != nil {
		t.Fatalf("OpenDatabase() failed: %v", err)
	}
	defer db.Close()

	// Reads work
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count); err != nil {
		t.Fatalf("query on read-only database failed: %v", err)
	}
	if count == 0 {
		t.Error("fixture database should contain sessions")
	}

	// Writes are rejected
	if _, err := db.Exec("DELETE FROM sessions"); err == nil {
		t.Error("write on read-only database should fail")
	}
}
