package internal

import (
	"context"
	"fmt"
	"net/url"
)

// CredentialsAPI maps credential operations onto the server's REST
// endpoints. Secret values are write-only: the server never returns
// them, so neither does this facade.
type CredentialsAPI struct {
	client *Client
}

// NewCredentialsAPI creates a credentials facade over the shared client
func NewCredentialsAPI(client *Client) *CredentialsAPI {
	return &CredentialsAPI{client: client}
}

// List returns metadata for all stored credentials
func (c *CredentialsAPI) List(ctx context.Context) ([]Credential, error) {
	var resp struct {
		Credentials []Credential `json:"credentials"`
	}
	if err := c.client.get(ctx, "/credentials", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Credentials, nil
}

// Get returns metadata for a single credential
func (c *CredentialsAPI) Get(ctx context.Context, credentialID string) (*Credential, error) {
	var cred Credential
	path := fmt.Sprintf("/credentials/%s", url.PathEscape(credentialID))
	if err := c.client.get(ctx, path, nil, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

// Save stores a credential's keys and returns the saved credential id
func (c *CredentialsAPI) Save(ctx context.Context, credentialID string, keys map[string]string) (string, error) {
	body := struct {
		CredentialID string            `json:"credential_id"`
		Keys         map[string]string `json:"keys"`
	}{CredentialID: credentialID, Keys: keys}

	var resp struct {
		Saved string `json:"saved"`
	}
	if err := c.client.post(ctx, "/credentials", body, &resp); err != nil {
		return "", err
	}
	return resp.Saved, nil
}

// Delete removes a credential
func (c *CredentialsAPI) Delete(ctx context.Context, credentialID string) (bool, error) {
	var resp struct {
		Deleted bool `json:"deleted"`
	}
	path := fmt.Sprintf("/credentials/%s", url.PathEscape(credentialID))
	if err := c.client.del(ctx, path, &resp); err != nil {
		return false, err
	}
	return resp.Deleted, nil
}

// CheckAgent returns the credentials an agent requires
func (c *CredentialsAPI) CheckAgent(ctx context.Context, agentPath string) ([]CredentialRequirement, error) {
	body := struct {
		AgentPath string `json:"agent_path"`
	}{AgentPath: agentPath}

	var resp struct {
		Required []CredentialRequirement `json:"required"`
	}
	if err := c.client.post(ctx, "/credentials/check-agent", body, &resp); err != nil {
		return nil, err
	}
	return resp.Required, nil
}
