package tutor

import "sync"

// Conversation is the ordered conversation log shared by all requests. The
// first message is the tutor persona; it survives window trimming and is only
// removed by an explicit Replace. All mutations are serialized by the mutex,
// so appends land in call order even when the provider calls that produced
// them completed out of order.
type Conversation struct {
	mu       sync.Mutex
	messages []Message
	// window bounds the number of non-persona messages retained after a
	// mutation. Zero disables trimming.
	window int
}

// NewConversation seeds the log with the persona instruction. window <= 0
// keeps the log unbounded.
func NewConversation(persona string, window int) *Conversation {
	if window < 0 {
		window = 0
	}
	return &Conversation{
		messages: []Message{{Role: RoleSystem, Content: persona}},
		window:   window,
	}
}

// Append adds one message to the tail.
func (c *Conversation) Append(m Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, m)
	c.trimLocked()
}

// Extend adds messages to the tail in the given order. A one-element slice
// and a single Append produce identical state.
func (c *Conversation) Extend(msgs []Message) {
	if len(msgs) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msgs...)
	c.trimLocked()
}

// Replace swaps the entire log for an externally supplied context. This is
// the only operation allowed to remove the persona message.
func (c *Conversation) Replace(msgs []Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append([]Message(nil), msgs...)
}

// Snapshot returns a copy of the current log. The copy is not affected by
// later mutations of the live conversation.
func (c *Conversation) Snapshot() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len reports the current number of messages.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// trimLocked applies the sliding window: the head system message plus the
// most recent window messages. Callers must hold c.mu.
func (c *Conversation) trimLocked() {
	if c.window == 0 {
		return
	}
	if len(c.messages) == 0 || c.messages[0].Role != RoleSystem {
		if len(c.messages) > c.window {
			c.messages = append([]Message(nil), c.messages[len(c.messages)-c.window:]...)
		}
		return
	}
	body := c.messages[1:]
	if len(body) <= c.window {
		return
	}
	trimmed := make([]Message, 0, c.window+1)
	trimmed = append(trimmed, c.messages[0])
	trimmed = append(trimmed, body[len(body)-c.window:]...)
	c.messages = trimmed
}
