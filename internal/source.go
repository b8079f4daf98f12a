package internal

import (
	"context"
)

// SessionSource abstracts where session data comes from so commands
// can read either the live backend or the local archive
type SessionSource interface {
	ListSessions(ctx context.Context, agentID string) ([]SessionSummary, error)
	LoadTranscript(ctx context.Context, agentID, sessionID string) (*Transcript, error)
}

// apiSource reads sessions from the live backend
type apiSource struct {
	sessions    *SessionsAPI
	builder     *TranscriptBuilder
	displayName string
}

// NewAPISource creates a source backed by the live backend. When
// displayName is empty the agent column is derived from the agent ID.
func NewAPISource(client *Client, displayName string) SessionSource {
	return &apiSource{
		sessions:    NewSessionsAPI(client),
		builder:     NewTranscriptBuilder(),
		displayName: displayName,
	}
}

func (s *apiSource) ListSessions(ctx context.Context, agentID string) ([]SessionSummary, error) {
	return s.sessions.List(ctx, agentID)
}

func (s *apiSource) LoadTranscript(ctx context.Context, agentID, sessionID string) (*Transcript, error) {
	detail, err := s.sessions.Get(ctx, agentID, sessionID)
	if err != nil {
		return nil, err
	}

	messages, err := s.sessions.Messages(ctx, agentID, sessionID, "")
	if err != nil {
		return nil, err
	}

	displayName := s.displayName
	if displayName == "" {
		displayName = FormatAgentDisplayName(agentID)
	}

	return s.builder.BuildTranscript(detail, messages, displayName)
}

// archiveSource reads sessions from the local archive database
type archiveSource struct {
	archive *Archive
}

// NewArchiveSource creates a source backed by the local archive
func NewArchiveSource(archive *Archive) SessionSource {
	return &archiveSource{archive: archive}
}

func (s *archiveSource) ListSessions(ctx context.Context, agentID string) ([]SessionSummary, error) {
	summaries, err := s.archive.ListSessions()
	if err != nil {
		return nil, err
	}

	if agentID == "" {
		return summaries, nil
	}

	var filtered []SessionSummary
	for _, summary := range summaries {
		if summary.AgentID == agentID {
			filtered = append(filtered, summary)
		}
	}
	return filtered, nil
}

func (s *archiveSource) LoadTranscript(ctx context.Context, agentID, sessionID string) (*Transcript, error) {
	return s.archive.LoadTranscript(sessionID)
}
