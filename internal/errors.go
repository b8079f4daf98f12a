package internal

import "fmt"

// APIError represents a non-2xx response from the server
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: server returned status %d", e.Status)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// IsNotFound reports whether the error is a 404 response
func (e *APIError) IsNotFound() bool {
	return e.Status == 404
}

// StreamError represents errors reading the agent event stream
type StreamError struct {
	Op  string // "connect", "read", "decode"
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("stream error: %s: %v", e.Op, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// ArchiveError represents errors accessing the local archive database
type ArchiveError struct {
	Op   string // "open", "write", "read"
	Path string
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archive error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
