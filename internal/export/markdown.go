package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/hive-session/internal"
)

// MarkdownExporter exports transcripts in Markdown format
type MarkdownExporter struct{}

// Export exports a transcript to Markdown format
func (e *MarkdownExporter) Export(transcript *internal.Transcript, w io.Writer) error {
	session := transcript.Session

	// Header
	title := session.Title
	if title == "" {
		title = session.ID
	}
	_, _ = fmt.Fprintf(w, "# %s\n\n", title)

	_, _ = fmt.Fprintf(w, "**Session:** %s  \n", session.ID)
	if session.AgentID != "" {
		_, _ = fmt.Fprintf(w, "**Agent:** %s  \n", session.AgentID)
	}
	if session.Status != "" {
		_, _ = fmt.Fprintf(w, "**Status:** %s  \n", session.Status)
	}
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(transcript.Messages))

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, _ = fmt.Fprintf(w, "## Messages\n\n")

	// Messages
	for i, msg := range transcript.Messages {
		label := msg.Agent
		if msg.Role != "" {
			label = fmt.Sprintf("%s (%s)", msg.Agent, msg.Role)
		}

		// Escape markdown in content if needed
		content := escapeMarkdown(msg.Content)

		_, _ = fmt.Fprintf(w, "**%s:**\n\n%s\n\n", label, content)

		// Add horizontal rule after each message (except the last one)
		if i < len(transcript.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// escapeMarkdown escapes markdown special characters
func escapeMarkdown(text string) string {
	// Basic escaping - preserve code blocks
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			// Escape markdown syntax outside code blocks
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
