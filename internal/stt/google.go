// Package stt wraps Google Cloud Speech behind the tutor.Recognizer contract.
package stt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
)

// ErrRecognize marks a failed call to the recognition provider.
var ErrRecognize = errors.New("stt: recognition failed")

// GoogleRecognizer issues one-shot recognition requests with the tutoring
// deployment's fixed policy: automatic punctuation, one declared channel, a
// fixed language. These are tutor policy, not per-request options.
type GoogleRecognizer struct {
	client       *speech.Client
	languageCode string
}

// New creates a recognizer. The client authenticates through Application
// Default Credentials.
func New(ctx context.Context, languageCode string) (*GoogleRecognizer, error) {
	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	return &GoogleRecognizer{client: client, languageCode: languageCode}, nil
}

// Close releases the underlying client connection.
func (g *GoogleRecognizer) Close() error {
	return g.client.Close()
}

// Transcribe decodes one mono 16-bit PCM submission. Zero result segments is
// a valid empty transcript, not an error.
func (g *GoogleRecognizer) Transcribe(ctx context.Context, wav []byte) (string, error) {
	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   speechpb.RecognitionConfig_LINEAR16,
			EnableAutomaticPunctuation: true,
			AudioChannelCount:          1,
			LanguageCode:               g.languageCode,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: wav},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognize, err)
	}
	return JoinResults(resp), nil
}

// JoinResults concatenates each result's top alternative with single spaces.
func JoinResults(resp *speechpb.RecognizeResponse) string {
	var parts []string
	for _, result := range resp.GetResults() {
		if alts := result.GetAlternatives(); len(alts) > 0 {
			parts = append(parts, alts[0].GetTranscript())
		}
	}
	return strings.Join(parts, " ")
}
