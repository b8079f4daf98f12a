package internal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8000/api/")

	if client.BaseURL != "http://localhost:8000/api" {
		t.Errorf("BaseURL = %q, want trailing slash removed", client.BaseURL)
	}
	if client.HTTPClient.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", client.HTTPClient.Timeout, DefaultTimeout)
	}
}

func TestClientSetTimeout(t *testing.T) {
	client := NewClient("http://localhost:8000/api")
	client.SetTimeout(5 * time.Second)

	if client.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", client.HTTPClient.Timeout)
	}
}

func TestClientSetsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		if got := r.Header.Get("User-Agent"); got != "hive-session" {
			t.Errorf("User-Agent = %q, want hive-session", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"agents": []}`))
	}))
	defer server.Close()

	api := NewSessionsAPI(NewClient(server.URL))
	if _, err := api.Agents(context.Background()); err != nil {
		t.Fatalf("Agents() error = %v", err)
	}
}

func TestClientPlainTextError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	api := NewSessionsAPI(NewClient(server.URL))
	_, err := api.List(context.Background(), "job-hunter")
	if err == nil {
		t.Fatal("List() expected error for 500")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Status != 500 {
		t.Errorf("Status = %d, want 500", apiErr.Status)
	}
	if apiErr.Message != "upstream exploded" {
		t.Errorf("Message = %q, want raw body text", apiErr.Message)
	}
}

func TestClientContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	api := NewSessionsAPI(NewClient(server.URL))
	_, err := api.List(ctx, "job-hunter")
	if err == nil {
		t.Fatal("List() expected error after cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled in chain", err)
	}
}
