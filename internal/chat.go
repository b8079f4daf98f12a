package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalizer converts backend message records and streaming agent events
// into ChatMessage display records
type Normalizer struct{}

// NewNormalizer creates a new Normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// MessageToChat converts a backend Message to a ChatMessage.
// displayName overrides the sender label for non-user messages; pass ""
// to fall back to the message's node id.
func (n *Normalizer) MessageToChat(msg Message, threadID, displayName string) ChatMessage {
	cm := ChatMessage{
		ID:       fmt.Sprintf("backend-%d", msg.Seq),
		Content:  msg.Content,
		ThreadID: threadID,
	}

	if msg.IsUser() {
		cm.Agent = "You"
		cm.Type = "user"
		return cm
	}

	cm.Agent = resolveSender(displayName, msg.NodeID)
	cm.Role = "worker"
	return cm
}

// EventToChat converts a streaming AgentEvent to a ChatMessage.
// Returns nil when the event has no visible effect (empty deltas, empty
// prompts, unknown event types); callers must treat nil as a normal
// outcome, not a failure.
//
// turnID disambiguates messages across response turns: events sharing a
// turn produce the same id so the UI replaces one bubble in place, and a
// new turn starts a new bubble. When turnID is nil the event's execution
// id is used, then "0".
func (n *Normalizer) EventToChat(ev AgentEvent, threadID, displayName string, turnID *int) *ChatMessage {
	key := eventKey(turnID, ev.ExecutionID)

	switch ev.Type {
	case "client_output_delta", "llm_text_delta":
		text := eventText(ev.Data)
		if text == "" {
			return nil
		}
		// llm_text_delta keeps the raw node id as sender; the display
		// name override applies to client_output_delta only.
		sender := ev.NodeID
		if ev.Type == "client_output_delta" {
			sender = resolveSender(displayName, ev.NodeID)
		}
		return &ChatMessage{
			ID:       fmt.Sprintf("stream-%s-%s", key, ev.NodeID),
			Agent:    sender,
			Content:  text,
			Role:     "worker",
			ThreadID: threadID,
		}

	case "client_input_requested":
		if ev.Data.Prompt == "" {
			return nil
		}
		return &ChatMessage{
			ID:       fmt.Sprintf("input-req-%s-%s", key, ev.NodeID),
			Agent:    resolveSender(displayName, ev.NodeID),
			Content:  ev.Data.Prompt,
			Role:     "worker",
			ThreadID: threadID,
		}

	case "execution_failed":
		reason := ev.Data.Error
		if reason == "" {
			reason = "Execution failed"
		}
		return &ChatMessage{
			ID:       "error-" + ev.ExecutionID,
			Agent:    "System",
			Content:  "Error: " + reason,
			Type:     "system",
			ThreadID: threadID,
		}

	default:
		return nil
	}
}

// FormatAgentDisplayName turns a raw agent identifier into a readable
// display name: the last path segment, minus a trailing "-graph" or
// "_graph" suffix, with separators spaced and words capitalized.
func FormatAgentDisplayName(raw string) string {
	name := raw
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}

	switch {
	case strings.HasSuffix(name, "-graph"):
		name = strings.TrimSuffix(name, "-graph")
	case strings.HasSuffix(name, "_graph"):
		name = strings.TrimSuffix(name, "_graph")
	}

	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")

	words := strings.Split(name, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.TrimSpace(strings.Join(words, " "))
}

// eventKey computes the disambiguation key for stream message ids
func eventKey(turnID *int, executionID string) string {
	if turnID != nil {
		return strconv.Itoa(*turnID)
	}
	if executionID != "" {
		return executionID
	}
	return "0"
}

// eventText extracts the display text from a delta payload, preferring
// the full snapshot over the content field
func eventText(data EventData) string {
	if data.Snapshot != "" {
		return data.Snapshot
	}
	return data.Content
}

// resolveSender picks the sender label: override name, then node id,
// then the "Agent" default
func resolveSender(displayName, nodeID string) string {
	if displayName != "" {
		return displayName
	}
	if nodeID != "" {
		return nodeID
	}
	return "Agent"
}
