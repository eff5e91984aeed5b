package tutor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// keywordTimeout bounds the secondary extraction call so a slow provider
// cannot stall the turn past its own reply.
const keywordTimeout = 10 * time.Second

// Session orchestrates one conversation: it is the sole mutator of the
// Conversation during turn processing and the only caller of the completer.
type Session struct {
	conv      *Conversation
	completer Completer
}

// NewSession constructs a Session over an injected conversation log.
func NewSession(conv *Conversation, completer Completer) *Session {
	return &Session{conv: conv, completer: completer}
}

// Conversation exposes the underlying log for out-of-band context updates.
func (s *Session) Conversation() *Conversation {
	return s.conv
}

// ProcessTurn runs one full turn: append the user utterance, replay the
// entire log to the completer, append the reply, annotate it with keywords.
// If the completion call fails the appended user message stays in the log;
// a later retry sees the conversation with an unanswered user turn.
func (s *Session) ProcessTurn(ctx context.Context, utterance string) (TurnResult, error) {
	if strings.TrimSpace(utterance) == "" {
		return TurnResult{}, fmt.Errorf("%w: missing transcript", ErrValidation)
	}

	s.conv.Append(Message{Role: RoleUser, Content: utterance})

	reply, err := s.completer.Complete(ctx, s.conv.Snapshot())
	if err != nil {
		return TurnResult{}, fmt.Errorf("%w: %v", ErrCompletion, err)
	}

	s.conv.Append(Message{Role: RoleAssistant, Content: reply})

	keywords := s.extractKeywords(ctx, reply)

	return TurnResult{Reply: reply, Keywords: keywords, Context: s.conv.Snapshot()}, nil
}

// extractKeywords runs the extraction call in its own goroutine with its own
// deadline. The slot defaults to an empty list; a provider error or timeout
// never fails the turn.
func (s *Session) extractKeywords(ctx context.Context, reply string) []string {
	kctx, cancel := context.WithTimeout(ctx, keywordTimeout)
	defer cancel()

	slot := make(chan []string, 1)
	go func() {
		slot <- ExtractKeywords(kctx, s.completer, reply)
	}()

	select {
	case keywords := <-slot:
		return keywords
	case <-kctx.Done():
		log.Printf("keyword extraction abandoned: %v", kctx.Err())
		return []string{}
	}
}
