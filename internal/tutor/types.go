package tutor

import (
	"context"
	"errors"
)

// Roles used in the conversation log. They mirror the chat-completions wire
// format so a snapshot can be sent to the completer as-is.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in the conversation log. Immutable once appended.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TurnResult is the outcome of one orchestrated turn.
type TurnResult struct {
	Reply    string
	Keywords []string
	Context  []Message
}

var (
	// ErrValidation marks a request rejected before any provider was called.
	ErrValidation = errors.New("tutor: validation failed")
	// ErrCompletion marks a failed call to the completion provider.
	ErrCompletion = errors.New("tutor: completion failed")
)

// Recognizer decodes one finished audio submission into text.
// An empty transcript is a valid result, not an error.
type Recognizer interface {
	Transcribe(ctx context.Context, wav []byte) (string, error)
}

// Completer generates a single assistant reply for a message sequence.
// It is stateless; callers replay the full conversation every turn.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Synthesizer renders text as a single-shot waveform.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Translation is the result of one translation request.
type Translation struct {
	Input                  string
	TranslatedText         string
	DetectedSourceLanguage string
}

// Translator translates text into the deployment's target language.
type Translator interface {
	Translate(ctx context.Context, text string) (Translation, error)
}

// Normalizer converts an uploaded audio container into the mono 16-bit PCM
// waveform the recognizer expects.
type Normalizer interface {
	Normalize(ctx context.Context, raw []byte, formatHint string) ([]byte, error)
}
