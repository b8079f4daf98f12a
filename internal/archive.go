package internal

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const archiveSchema = `
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

// Archive stores session transcripts in a local SQLite database so
// they stay readable after the backend deletes the session
type Archive struct {
	db   *sql.DB
	path string
}

// OpenArchive opens the archive database at path, creating it and its
// schema if needed
func OpenArchive(path string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &ArchiveError{Op: "open", Path: path, Err: err}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &ArchiveError{Op: "open", Path: path, Err: err}
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &ArchiveError{Op: "open", Path: path, Err: err}
	}

	if _, err := db.Exec(archiveSchema); err != nil {
		db.Close()
		return nil, &ArchiveError{Op: "migrate", Path: path, Err: err}
	}

	return &Archive{db: db, path: path}, nil
}

// Close closes the archive database
func (a *Archive) Close() error {
	return a.db.Close()
}

// Path returns the archive database path
func (a *Archive) Path() string {
	return a.path
}

// SaveTranscript stores a transcript, replacing any previous copy of
// the same session
func (a *Archive) SaveTranscript(transcript *Transcript) error {
	tx, err := a.db.Begin()
	if err != nil {
		return &ArchiveError{Op: "save", Path: a.path, Err: err}
	}
	defer tx.Rollback()

	session := transcript.Session
	upsertSQL := `INSERT INTO sessions (id, agent_id, title, status, created_at, updated_at, message_count, execution_id, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			agent_id = excluded.agent_id,
			title = excluded.title,
			status = excluded.status,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			message_count = excluded.message_count,
			execution_id = excluded.execution_id,
			archived_at = excluded.archived_at`
	archivedAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec(upsertSQL, session.ID, session.AgentID, session.Title, session.Status,
		session.CreatedAt, session.UpdatedAt, len(transcript.Messages), session.ExecutionID, archivedAt); err != nil {
		return &ArchiveError{Op: "save", Path: a.path, Err: err}
	}

	if _, err := tx.Exec("DELETE FROM messages WHERE session_id = ?", session.ID); err != nil {
		return &ArchiveError{Op: "save", Path: a.path, Err: err}
	}

	insertSQL := `INSERT INTO messages (session_id, position, message_id, agent, content, msg_type, role)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return &ArchiveError{Op: "save", Path: a.path, Err: err}
	}
	defer stmt.Close()

	for i, msg := range transcript.Messages {
		if _, err := stmt.Exec(session.ID, i, msg.ID, msg.Agent, msg.Content, msg.Type, msg.Role); err != nil {
			return &ArchiveError{Op: "save", Path: a.path, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &ArchiveError{Op: "save", Path: a.path, Err: err}
	}

	return nil
}

// ListSessions returns summaries of archived sessions, most recently
// archived first
func (a *Archive) ListSessions() ([]SessionSummary, error) {
	query := `SELECT id, agent_id, title, status, created_at, updated_at, message_count
		FROM sessions ORDER BY archived_at DESC, id`
	rows, err := a.db.Query(query)
	if err != nil {
		return nil, &ArchiveError{Op: "list", Path: a.path, Err: err}
	}
	defer rows.Close()

	var summaries []SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(&s.ID, &s.AgentID, &s.Title, &s.Status, &s.CreatedAt, &s.UpdatedAt, &s.MessageCount); err != nil {
			return nil, &ArchiveError{Op: "list", Path: a.path, Err: err}
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, &ArchiveError{Op: "list", Path: a.path, Err: err}
	}

	return summaries, nil
}

// LoadTranscript reads an archived transcript by session ID
func (a *Archive) LoadTranscript(sessionID string) (*Transcript, error) {
	sessionQuery := `SELECT id, agent_id, title, status, created_at, updated_at, message_count, execution_id
		FROM sessions WHERE id = ?`
	row := a.db.QueryRow(sessionQuery, sessionID)

	var detail SessionDetail
	err := row.Scan(&detail.ID, &detail.AgentID, &detail.Title, &detail.Status,
		&detail.CreatedAt, &detail.UpdatedAt, &detail.MessageCount, &detail.ExecutionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ArchiveError{Op: "load", Path: a.path, Err: fmt.Errorf("session %q not archived", sessionID)}
		}
		return nil, &ArchiveError{Op: "load", Path: a.path, Err: err}
	}

	messageQuery := `SELECT message_id, agent, content, msg_type, role
		FROM messages WHERE session_id = ? ORDER BY position`
	rows, err := a.db.Query(messageQuery, sessionID)
	if err != nil {
		return nil, &ArchiveError{Op: "load", Path: a.path, Err: err}
	}
	defer rows.Close()

	transcript := &Transcript{Session: detail}
	for rows.Next() {
		var msg ChatMessage
		if err := rows.Scan(&msg.ID, &msg.Agent, &msg.Content, &msg.Type, &msg.Role); err != nil {
			return nil, &ArchiveError{Op: "load", Path: a.path, Err: err}
		}
		msg.ThreadID = sessionID
		transcript.Messages = append(transcript.Messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, &ArchiveError{Op: "load", Path: a.path, Err: err}
	}

	return transcript, nil
}

// DeleteSession removes an archived session and its messages. It
// returns false if the session was not archived.
func (a *Archive) DeleteSession(sessionID string) (bool, error) {
	tx, err := a.db.Begin()
	if err != nil {
		return false, &ArchiveError{Op: "delete", Path: a.path, Err: err}
	}
	defer tx.Rollback()

	result, err := tx.Exec("DELETE FROM sessions WHERE id = ?", sessionID)
	if err != nil {
		return false, &ArchiveError{Op: "delete", Path: a.path, Err: err}
	}

	if _, err := tx.Exec("DELETE FROM messages WHERE session_id = ?", sessionID); err != nil {
		return false, &ArchiveError{Op: "delete", Path: a.path, Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, &ArchiveError{Op: "delete", Path: a.path, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return false, &ArchiveError{Op: "delete", Path: a.path, Err: err}
	}

	return affected > 0, nil
}
