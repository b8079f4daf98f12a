package internal

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

// StreamEvent represents a single parsed SSE frame, delimited by a blank
// line in the stream
type StreamEvent struct {
	// Type is the SSE event type from the "event:" field. An empty
	// string means the default "message" type.
	Type string

	// Data is the concatenated contents of all "data:" lines of the
	// frame, joined with "\n".
	Data string

	// ID is the last event id from the "id:" field, if present.
	ID string
}

// StreamReader parses a text/event-stream body into StreamEvents
type StreamReader struct {
	scanner *bufio.Scanner
	src     io.Reader
}

// NewStreamReader creates a reader over an SSE byte stream
func NewStreamReader(r io.Reader) *StreamReader {
	scanner := bufio.NewScanner(r)
	// Snapshot frames can be large; allow lines up to 1 MiB.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &StreamReader{
		scanner: scanner,
		src:     r,
	}
}

// Next returns the next event from the stream. It blocks until a full
// frame arrives, returns io.EOF at end of stream, and skips comment
// lines and empty frames.
func (sr *StreamReader) Next() (*StreamEvent, error) {
	var ev StreamEvent
	var data []string
	sawField := false

	for sr.scanner.Scan() {
		line := sr.scanner.Text()

		// A blank line dispatches the accumulated frame.
		if line == "" {
			if sawField {
				ev.Data = strings.Join(data, "\n")
				return &ev, nil
			}
			continue
		}

		// Lines starting with ":" are comments (used as keep-alives).
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value := splitField(line)
		switch field {
		case "event":
			ev.Type = value
			sawField = true
		case "data":
			data = append(data, value)
			sawField = true
		case "id":
			ev.ID = value
			sawField = true
		}
	}

	if err := sr.scanner.Err(); err != nil {
		return nil, &StreamError{Op: "read", Err: err}
	}

	// Dispatch a trailing frame that was not followed by a blank line.
	if sawField {
		ev.Data = strings.Join(data, "\n")
		return &ev, nil
	}

	return nil, io.EOF
}

// Close closes the underlying stream if it is closable
func (sr *StreamReader) Close() error {
	if c, ok := sr.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// DecodeAgentEvent decodes a frame's data payload into an AgentEvent.
// The payload's own type field wins; the SSE event name fills it in
// only when the payload leaves it empty.
func DecodeAgentEvent(ev *StreamEvent) (*AgentEvent, error) {
	var agentEvent AgentEvent
	if err := json.Unmarshal([]byte(ev.Data), &agentEvent); err != nil {
		return nil, &StreamError{Op: "decode", Err: err}
	}

	if agentEvent.Type == "" {
		agentEvent.Type = ev.Type
	}

	return &agentEvent, nil
}

// splitField splits an SSE line into field name and value, trimming the
// single optional space after the colon
func splitField(line string) (string, string) {
	field, value, found := strings.Cut(line, ":")
	if !found {
		return line, ""
	}
	return field, strings.TrimPrefix(value, " ")
}
