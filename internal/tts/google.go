// Package tts wraps Google Cloud Text-to-Speech behind the tutor.Synthesizer
// contract, with an append-only audit log of accepted requests.
package tts

import (
	"context"
	"errors"
	"fmt"
	"log"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

// ErrSynthesize marks a failed call to the synthesis provider.
var ErrSynthesize = errors.New("tts: synthesis failed")

// GoogleSynthesizer issues single-shot synthesis requests with the
// deployment's fixed voice and encoding. The audit entry is written after the
// provider accepts the request and before the bytes are returned, so an audit
// line implies the provider produced audio for that text.
type GoogleSynthesizer struct {
	client       *texttospeech.Client
	languageCode string
	voiceName    string
	audit        *AuditLog
}

// New creates a synthesizer. The client authenticates through Application
// Default Credentials.
func New(ctx context.Context, languageCode, voiceName string, audit *AuditLog) (*GoogleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}
	return &GoogleSynthesizer{
		client:       client,
		languageCode: languageCode,
		voiceName:    voiceName,
		audit:        audit,
	}, nil
}

// Close releases the underlying client connection.
func (g *GoogleSynthesizer) Close() error {
	return g.client.Close()
}

// Synthesize renders text as 16-bit PCM in a WAV container. On provider
// failure the caller gets an error, never partial audio.
func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := g.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: g.languageCode,
			Name:         g.voiceName,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_LINEAR16,
			SpeakingRate:  1.0,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesize, err)
	}
	if g.audit != nil {
		if err := g.audit.Append(text); err != nil {
			log.Printf("tts audit write failed: %v", err)
		}
	}
	return resp.GetAudioContent(), nil
}
