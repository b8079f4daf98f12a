package internal

import (
	"sync"
)

// ChatThread holds the chat messages of one thread in display order.
// Upserting an existing id replaces that message in place, so repeated
// stream snapshots for a turn re-render a single bubble instead of
// appending duplicates. Safe for concurrent use.
type ChatThread struct {
	mu       sync.RWMutex
	threadID string
	order    []string
	messages map[string]ChatMessage
}

// NewChatThread creates an empty thread
func NewChatThread(threadID string) *ChatThread {
	return &ChatThread{
		threadID: threadID,
		messages: make(map[string]ChatMessage),
	}
}

// ThreadID returns the thread identifier
func (ct *ChatThread) ThreadID() string {
	return ct.threadID
}

// Upsert inserts or replaces a message by id. Returns true when the
// message was newly added, false when an existing one was replaced.
func (ct *ChatThread) Upsert(msg ChatMessage) bool {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	_, exists := ct.messages[msg.ID]
	if !exists {
		ct.order = append(ct.order, msg.ID)
	}
	ct.messages[msg.ID] = msg
	return !exists
}

// Get retrieves a message by id
func (ct *ChatThread) Get(id string) (ChatMessage, bool) {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	msg, ok := ct.messages[id]
	return msg, ok
}

// Len returns the number of messages in the thread
func (ct *ChatThread) Len() int {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return len(ct.messages)
}

// Messages returns the messages in display order
func (ct *ChatThread) Messages() []ChatMessage {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	out := make([]ChatMessage, 0, len(ct.order))
	for _, id := range ct.order {
		out = append(out, ct.messages[id])
	}
	return out
}
