package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// CreateArchiveFixture creates an archive database fixture with sample data
func CreateArchiveFixture(t *testing.T, dbPath string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		agent_id TEXT,
		title TEXT,
		status TEXT,
		created_at TEXT,
		updated_at TEXT,
		message_count INTEGER,
		execution_id TEXT,
		archived_at TEXT
	);
	CREATE TABLE IF NOT EXISTS messages (
		session_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		message_id TEXT,
		agent TEXT,
		content TEXT,
		msg_type TEXT,
		role TEXT,
		PRIMARY KEY (session_id, position)
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	insertSession := `INSERT INTO sessions (id, agent_id, title, status, created_at, updated_at, message_count, execution_id, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := db.Exec(insertSession, "session1", "demo", "Archived Session", "completed", now, now, 2, "exec-1", now); err != nil {
		t.Fatalf("Failed to insert session: %v", err)
	}

	insertMessage := `INSERT INTO messages (session_id, position, message_id, agent, content, msg_type, role)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := db.Exec(insertMessage, "session1", 0, "backend-1", "You", "Hello there", "user", ""); err != nil {
		t.Fatalf("Failed to insert message: %v", err)
	}
	if _, err := db.Exec(insertMessage, "session1", 1, "backend-2", "writer", "Hi, how can I help?", "", "worker"); err != nil {
		t.Fatalf("Failed to insert message: %v", err)
	}
}

// CreateCacheFixture creates a cache file fixture
func CreateCacheFixture(t *testing.T, cachePath string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		t.Fatalf("Failed to create cache directory: %v", err)
	}
	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		t.Fatalf("Failed to write cache file: %v", err)
	}
}

// CreateConfigFixture writes a config file into dir and returns its path
func CreateConfigFixture(t *testing.T, dir, serverURL, agentID string) string {
	t.Helper()
	content := "server: " + serverURL + "\nagent: " + agentID + "\n"
	path := filepath.Join(dir, ".hive-session.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config fixture: %v", err)
	}
	return path
}
