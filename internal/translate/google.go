// Package translate wraps Google Cloud Translation behind the
// tutor.Translator contract. It is a stateless pass-through; nothing here
// touches the conversation log.
package translate

import (
	"context"
	"errors"
	"fmt"

	gtranslate "cloud.google.com/go/translate"
	"golang.org/x/text/language"

	"github.com/dev4narayou/LanguagePartnerAI/internal/tutor"
)

// ErrTranslate marks a failed call to the translation provider.
var ErrTranslate = errors.New("translate: translation failed")

// GoogleTranslator translates into a fixed target language (English for this
// deployment).
type GoogleTranslator struct {
	client *gtranslate.Client
	target language.Tag
}

// New creates a translator. The client authenticates through Application
// Default Credentials.
func New(ctx context.Context) (*GoogleTranslator, error) {
	client, err := gtranslate.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}
	return &GoogleTranslator{client: client, target: language.English}, nil
}

// Close releases the underlying client connection.
func (g *GoogleTranslator) Close() error {
	return g.client.Close()
}

// Translate returns the input, its translation, and the detected source
// language.
func (g *GoogleTranslator) Translate(ctx context.Context, text string) (tutor.Translation, error) {
	translations, err := g.client.Translate(ctx, []string{text}, g.target, nil)
	if err != nil {
		return tutor.Translation{}, fmt.Errorf("%w: %v", ErrTranslate, err)
	}
	if len(translations) == 0 {
		return tutor.Translation{}, fmt.Errorf("%w: empty response", ErrTranslate)
	}
	return tutor.Translation{
		Input:                  text,
		TranslatedText:         translations[0].Text,
		DetectedSourceLanguage: translations[0].Source.String(),
	}, nil
}
