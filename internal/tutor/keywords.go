package tutor

import (
	"context"
	"log"
	"strings"
)

// extractionInstruction asks the completer for a single comma-separated line.
const extractionInstruction = "You are a linguistic expert. Extract keywords such as nouns, verbs, and adverbs from the following text. Return a plaintext sentence separating each word with a comma."

// ExtractKeywords reduces a tutor reply to the salient lexical items. The
// provider line is split on commas verbatim; tokens are not trimmed,
// deduplicated, or validated. Any provider failure yields an empty list —
// extraction is best-effort annotation and never propagates an error.
func ExtractKeywords(ctx context.Context, completer Completer, text string) []string {
	line, err := completer.Complete(ctx, []Message{
		{Role: RoleSystem, Content: extractionInstruction},
		{Role: RoleUser, Content: text},
	})
	if err != nil {
		log.Printf("keyword extraction failed: %v", err)
		return []string{}
	}
	return strings.Split(line, ",")
}
