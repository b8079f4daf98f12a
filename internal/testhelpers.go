package internal

import (
	"fmt"
	"time"
)

// CreateTestSummary creates a test session summary with sample data
func CreateTestSummary(id string) SessionSummary {
	now := time.Now().UTC().Format(time.RFC3339)
	return SessionSummary{
		ID:           id,
		AgentID:      "demo/research-agent",
		Title:        "Test Session",
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
		MessageCount: 2,
	}
}

// CreateTestDetail creates a test session detail with sample data
func CreateTestDetail(id string) *SessionDetail {
	return &SessionDetail{
		SessionSummary: CreateTestSummary(id),
		ExecutionID:    "exec-" + id,
		NodeIDs:        []string{"planner", "writer"},
	}
}

// CreateTestMessages creates count backend messages alternating between
// the user and a worker node
func CreateTestMessages(count int) []Message {
	messages := make([]Message, 0, count)
	for i := 0; i < count; i++ {
		msg := Message{
			Seq:     int64(i + 1),
			Role:    "user",
			Content: fmt.Sprintf("message %d", i+1),
		}
		if i%2 == 1 {
			msg.Role = "assistant"
			msg.NodeID = "writer"
		}
		messages = append(messages, msg)
	}
	return messages
}

// CreateTestEvent creates a test agent event
func CreateTestEvent(evType, nodeID, content string) AgentEvent {
	return AgentEvent{
		Type:        evType,
		NodeID:      nodeID,
		ExecutionID: "exec-1",
		Data: EventData{
			Content: content,
		},
	}
}

// CreateTestTranscript creates a test transcript with sample chat messages
func CreateTestTranscript(id string) *Transcript {
	detail := CreateTestDetail(id)
	return &Transcript{
		Session: *detail,
		Messages: []ChatMessage{
			{
				ID:       "backend-1",
				Agent:    "You",
				Content:  "Summarize the latest report",
				Type:     "user",
				ThreadID: id,
			},
			{
				ID:       "backend-2",
				Agent:    "writer",
				Content:  "Here is the summary you asked for.",
				Role:     "worker",
				ThreadID: id,
			},
		},
	}
}
