package internal

import (
	"time"
)

// SessionSummary represents a session as returned by the list endpoint
type SessionSummary struct {
	ID           string `json:"id" yaml:"id"`
	AgentID      string `json:"agent_id,omitempty" yaml:"agent_id,omitempty"`
	Title        string `json:"title,omitempty" yaml:"title,omitempty"`
	Status       string `json:"status,omitempty" yaml:"status,omitempty"` // "active", "completed", "failed"
	CreatedAt    string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	MessageCount int    `json:"message_count" yaml:"message_count"`
}

// SessionDetail represents a single session as returned by the get endpoint
type SessionDetail struct {
	SessionSummary `yaml:",inline"`
	ExecutionID    string   `json:"execution_id,omitempty" yaml:"execution_id,omitempty"`
	NodeIDs        []string `json:"node_ids,omitempty" yaml:"node_ids,omitempty"`
}

// Checkpoint represents a restorable point in a session's history
type Checkpoint struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id,omitempty"`
	Label     string `json:"label,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Message represents a backend message record
type Message struct {
	Seq     int64  `json:"seq"`
	Role    string `json:"role"` // "user" or a backend-defined role
	Content string `json:"content"`
	NodeID  string `json:"_node_id,omitempty"`
}

// AgentEvent represents a streaming event from the agent event source
type AgentEvent struct {
	Type        string    `json:"type"` // "client_output_delta", "client_input_requested", "llm_text_delta", "execution_failed", ...
	NodeID      string    `json:"node_id,omitempty"`
	ExecutionID string    `json:"execution_id,omitempty"`
	Data        EventData `json:"data,omitempty"`
}

// EventData holds the event-specific payload fields consumed here.
// Unknown payload fields are ignored on decode.
type EventData struct {
	Snapshot string `json:"snapshot,omitempty"`
	Content  string `json:"content,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ChatMessage is the unified display record consumed by chat front-ends.
// Identity is the string ID only; values are never mutated after construction.
type ChatMessage struct {
	ID         string `json:"id" yaml:"id"`
	Agent      string `json:"agent" yaml:"agent"`
	AgentColor string `json:"agentColor" yaml:"agentColor"`
	Content    string `json:"content" yaml:"content"`
	Timestamp  string `json:"timestamp" yaml:"timestamp"`
	Type       string `json:"type,omitempty" yaml:"type,omitempty"` // "user", "system"
	Role       string `json:"role,omitempty" yaml:"role,omitempty"` // "worker"
	ThreadID   string `json:"threadId" yaml:"threadId"`
}

// Agent represents an agent known to the server
type Agent struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Path   string `json:"path,omitempty"`
	Status string `json:"status,omitempty"`
}

// Credential represents credential metadata; secret values are never
// returned by the server
type Credential struct {
	CredentialID   string   `json:"credential_id"`
	CredentialType string   `json:"credential_type,omitempty"`
	KeyNames       []string `json:"key_names,omitempty"`
	CreatedAt      string   `json:"created_at,omitempty"`
	UpdatedAt      string   `json:"updated_at,omitempty"`
}

// CredentialRequirement represents one credential an agent needs
type CredentialRequirement struct {
	CredentialName string `json:"credential_name"`
	CredentialID   string `json:"credential_id"`
	EnvVar         string `json:"env_var,omitempty"`
	Description    string `json:"description,omitempty"`
	HelpURL        string `json:"help_url,omitempty"`
	Available      bool   `json:"available"`
}

// IsUser reports whether the message was sent by the end user
func (m Message) IsUser() bool {
	return m.Role == "user"
}

// CreatedTime parses the summary's created_at timestamp.
// Returns the zero time if the field is missing or malformed.
func (s SessionSummary) CreatedTime() time.Time {
	return parseRFC3339(s.CreatedAt)
}

// UpdatedTime parses the summary's updated_at timestamp, falling back
// to created_at when updated_at is absent.
func (s SessionSummary) UpdatedTime() time.Time {
	if t := parseRFC3339(s.UpdatedAt); !t.IsZero() {
		return t
	}
	return s.CreatedTime()
}

// CreatedTime parses the checkpoint's created_at timestamp
func (c Checkpoint) CreatedTime() time.Time {
	return parseRFC3339(c.CreatedAt)
}

func parseRFC3339(ts string) time.Time {
	if ts == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}
	}
	return t
}
