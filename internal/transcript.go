package internal

import (
	"fmt"
	"sort"
)

// Transcript bundles a session with its normalized chat messages
type Transcript struct {
	Session  SessionDetail `json:"session" yaml:"session"`
	Messages []ChatMessage `json:"messages" yaml:"messages"`
}

// TranscriptBuilder assembles display transcripts from backend records
// and streaming events
type TranscriptBuilder struct {
	normalizer *Normalizer
}

// NewTranscriptBuilder creates a new TranscriptBuilder
func NewTranscriptBuilder() *TranscriptBuilder {
	return &TranscriptBuilder{normalizer: NewNormalizer()}
}

// BuildTranscript normalizes a session's backend messages into a
// transcript in sequence order. Records sharing a seq collapse onto one
// chat message, the later record winning.
func (tb *TranscriptBuilder) BuildTranscript(detail *SessionDetail, messages []Message, displayName string) (*Transcript, error) {
	if detail == nil {
		return nil, fmt.Errorf("session is nil")
	}

	ordered := make([]Message, len(messages))
	copy(ordered, messages)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Seq < ordered[j].Seq
	})

	thread := NewChatThread(detail.ID)
	for _, msg := range ordered {
		thread.Upsert(tb.normalizer.MessageToChat(msg, detail.ID, displayName))
	}

	return &Transcript{
		Session:  *detail,
		Messages: thread.Messages(),
	}, nil
}

// ApplyEvent normalizes a streaming event into the thread. Suppressed
// events leave the thread untouched and report false; visible events
// upsert their bubble and report true.
func (tb *TranscriptBuilder) ApplyEvent(thread *ChatThread, ev AgentEvent, displayName string, turnID *int) bool {
	cm := tb.normalizer.EventToChat(ev, thread.ThreadID(), displayName, turnID)
	if cm == nil {
		return false
	}
	thread.Upsert(*cm)
	return true
}
