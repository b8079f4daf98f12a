package internal

import (
	"context"
	"fmt"
	"net/url"
)

// SessionsAPI maps logical session operations onto the server's REST
// endpoints, one request per call. It adds no retry, validation, or
// error translation; client errors pass through unchanged.
type SessionsAPI struct {
	client *Client
}

// NewSessionsAPI creates a sessions facade over the shared client
func NewSessionsAPI(client *Client) *SessionsAPI {
	return &SessionsAPI{client: client}
}

// List returns all sessions for an agent
func (s *SessionsAPI) List(ctx context.Context, agentID string) ([]SessionSummary, error) {
	var resp struct {
		Sessions []SessionSummary `json:"sessions"`
	}
	path := fmt.Sprintf("/agents/%s/sessions", url.PathEscape(agentID))
	if err := s.client.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Sessions, nil
}

// Get returns a single session
func (s *SessionsAPI) Get(ctx context.Context, agentID, sessionID string) (*SessionDetail, error) {
	var detail SessionDetail
	path := fmt.Sprintf("/agents/%s/sessions/%s", url.PathEscape(agentID), url.PathEscape(sessionID))
	if err := s.client.get(ctx, path, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Delete removes a session and returns the deleted session id
func (s *SessionsAPI) Delete(ctx context.Context, agentID, sessionID string) (string, error) {
	var resp struct {
		Deleted string `json:"deleted"`
	}
	path := fmt.Sprintf("/agents/%s/sessions/%s", url.PathEscape(agentID), url.PathEscape(sessionID))
	if err := s.client.del(ctx, path, &resp); err != nil {
		return "", err
	}
	return resp.Deleted, nil
}

// Checkpoints returns the restorable checkpoints of a session
func (s *SessionsAPI) Checkpoints(ctx context.Context, agentID, sessionID string) ([]Checkpoint, error) {
	var resp struct {
		Checkpoints []Checkpoint `json:"checkpoints"`
	}
	path := fmt.Sprintf("/agents/%s/sessions/%s/checkpoints", url.PathEscape(agentID), url.PathEscape(sessionID))
	if err := s.client.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Checkpoints, nil
}

// Restore restores a session to a checkpoint and returns the new
// execution id
func (s *SessionsAPI) Restore(ctx context.Context, agentID, sessionID, checkpointID string) (string, error) {
	var resp struct {
		ExecutionID string `json:"execution_id"`
	}
	path := fmt.Sprintf("/agents/%s/sessions/%s/checkpoints/%s/restore",
		url.PathEscape(agentID), url.PathEscape(sessionID), url.PathEscape(checkpointID))
	if err := s.client.post(ctx, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.ExecutionID, nil
}

// Messages returns a session's client-visible messages. nodeID filters
// to a single node and is included in the query only when provided.
func (s *SessionsAPI) Messages(ctx context.Context, agentID, sessionID, nodeID string) ([]Message, error) {
	var resp struct {
		Messages []Message `json:"messages"`
	}

	query := url.Values{}
	query.Set("client_only", "true")
	if nodeID != "" {
		query.Set("node_id", nodeID)
	}

	path := fmt.Sprintf("/agents/%s/sessions/%s/messages", url.PathEscape(agentID), url.PathEscape(sessionID))
	if err := s.client.get(ctx, path, query, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// Agents returns the agents known to the server
func (s *SessionsAPI) Agents(ctx context.Context) ([]Agent, error) {
	var resp struct {
		Agents []Agent `json:"agents"`
	}
	if err := s.client.get(ctx, "/agents", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Agents, nil
}
