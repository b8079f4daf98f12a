package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Canned responses served by the mock backend. The agent ID is always
// "demo" so tests can use simple paths.
const (
	MockSessionsJSON = `{"sessions":[{"id":"session1","agent_id":"demo","title":"First Session","status":"active","created_at":"2025-01-02T10:00:00Z","updated_at":"2025-01-02T10:05:00Z","message_count":2},{"id":"session2","agent_id":"demo","title":"Second Session","status":"completed","created_at":"2025-01-03T09:00:00Z","updated_at":"2025-01-03T09:30:00Z","message_count":4}]}`

	MockSessionDetailJSON = `{"id":"session1","agent_id":"demo","title":"First Session","status":"active","created_at":"2025-01-02T10:00:00Z","updated_at":"2025-01-02T10:05:00Z","message_count":2,"execution_id":"exec-1","node_ids":["planner","writer"]}`

	MockMessagesJSON = `{"messages":[{"seq":1,"role":"user","content":"Hello there"},{"seq":2,"role":"assistant","content":"Hi, how can I help?","_node_id":"writer"}]}`

	MockCheckpointsJSON = `{"checkpoints":[{"id":"cp1","session_id":"session1","label":"before refactor","created_at":"2025-01-02T10:01:00Z"}]}`

	MockAgentsJSON = `{"agents":[{"id":"demo","name":"Demo Agent","path":"agents/demo-graph","status":"ready"}]}`

	MockCredentialsJSON = `{"credentials":[{"credential_id":"openai","credential_type":"api_key","key_names":["OPENAI_API_KEY"],"created_at":"2025-01-01T00:00:00Z"}]}`

	MockCredentialJSON = `{"credential_id":"openai","credential_type":"api_key","key_names":["OPENAI_API_KEY"],"created_at":"2025-01-01T00:00:00Z"}`

	MockRequirementsJSON = `{"required":[{"credential_name":"OpenAI","credential_id":"openai","env_var":"OPENAI_API_KEY","description":"OpenAI API key","available":true}]}`
)

// NewMockAPI starts a test server that mimics the backend API for the
// agent "demo". The server is closed when the test finishes. Requests
// for session or credential ID "missing" get a 404.
func NewMockAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/agents", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MockAgentsJSON)
	})

	mux.HandleFunc("/agents/demo/sessions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MockSessionsJSON)
	})

	mux.HandleFunc("/agents/demo/sessions/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/agents/demo/sessions/")
		parts := strings.Split(rest, "/")
		sessionID := parts[0]

		if sessionID == "missing" {
			writeJSON(w, http.StatusNotFound, `{"error":"session not found"}`)
			return
		}

		switch {
		case len(parts) == 1 && r.Method == http.MethodGet:
			writeJSON(w, http.StatusOK, MockSessionDetailJSON)
		case len(parts) == 1 && r.Method == http.MethodDelete:
			writeJSON(w, http.StatusOK, `{"deleted":"`+sessionID+`"}`)
		case len(parts) == 2 && parts[1] == "messages":
			writeJSON(w, http.StatusOK, MockMessagesJSON)
		case len(parts) == 2 && parts[1] == "checkpoints":
			writeJSON(w, http.StatusOK, MockCheckpointsJSON)
		case len(parts) == 4 && parts[1] == "checkpoints" && parts[3] == "restore" && r.Method == http.MethodPost:
			writeJSON(w, http.StatusOK, `{"execution_id":"exec-restored"}`)
		default:
			http.NotFound(w, r)
		}
	})

	mux.HandleFunc("/agents/demo/events", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)

		frames := []string{
			"event: client_output_delta\n" +
				`data: {"type":"client_output_delta","node_id":"writer","execution_id":"exec-1","data":{"content":"Working on it"}}` + "\n\n",
			"event: execution_failed\n" +
				`data: {"type":"execution_failed","execution_id":"exec-1","data":{"error":"budget exceeded"}}` + "\n\n",
		}
		flusher, _ := w.(http.Flusher)
		for _, frame := range frames {
			w.Write([]byte(frame))
			if flusher != nil {
				flusher.Flush()
			}
		}
	})

	mux.HandleFunc("/credentials", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			writeJSON(w, http.StatusCreated, `{"saved":"openai"}`)
			return
		}
		writeJSON(w, http.StatusOK, MockCredentialsJSON)
	})

	mux.HandleFunc("/credentials/check-agent", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MockRequirementsJSON)
	})

	mux.HandleFunc("/credentials/", func(w http.ResponseWriter, r *http.Request) {
		credentialID := strings.TrimPrefix(r.URL.Path, "/credentials/")
		if credentialID == "missing" {
			writeJSON(w, http.StatusNotFound, `{"error":"credential not found"}`)
			return
		}
		if r.Method == http.MethodDelete {
			writeJSON(w, http.StatusOK, `{"deleted":true}`)
			return
		}
		writeJSON(w, http.StatusOK, MockCredentialJSON)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
