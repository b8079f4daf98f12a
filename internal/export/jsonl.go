package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/hive-session/internal"
)

// JSONLExporter exports transcripts in JSONL format (one message per line)
type JSONLExporter struct{}

// Export exports a transcript to JSONL format
func (e *JSONLExporter) Export(transcript *internal.Transcript, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, msg := range transcript.Messages {
		// Create message object
		obj := map[string]interface{}{
			"id":      msg.ID,
			"agent":   msg.Agent,
			"content": msg.Content,
		}

		// Add kind markers if present
		if msg.Type != "" {
			obj["type"] = msg.Type
		}
		if msg.Role != "" {
			obj["role"] = msg.Role
		}

		// Encode to single line
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
