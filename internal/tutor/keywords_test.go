package tutor

import (
	"context"
	"errors"
	"testing"
)

func TestExtractKeywords_SplitsOnCommas(t *testing.T) {
	fc := &fakeCompleter{replies: []string{"猫,走る,速く"}}
	got := ExtractKeywords(context.Background(), fc, "猫が速く走る")
	want := []string{"猫", "走る", "速く"}
	if len(got) != len(want) {
		t.Fatalf("expected %d keywords, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keyword %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestExtractKeywords_PassesTokensVerbatim(t *testing.T) {
	// No trimming or deduplication of what the provider returns.
	fc := &fakeCompleter{replies: []string{"cat, cat , run"}}
	got := ExtractKeywords(context.Background(), fc, "the cat runs")
	want := []string{"cat", " cat ", " run"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keyword %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestExtractKeywords_ProviderErrorYieldsEmpty(t *testing.T) {
	fc := &fakeCompleter{errs: []error{errors.New("down")}}
	got := ExtractKeywords(context.Background(), fc, "text")
	if len(got) != 0 {
		t.Fatalf("expected empty list on provider error, got %v", got)
	}
}

func TestExtractKeywords_SendsInstructionAndText(t *testing.T) {
	fc := &fakeCompleter{replies: []string{"a,b"}}
	ExtractKeywords(context.Background(), fc, "some reply")
	if len(fc.calls) != 1 {
		t.Fatalf("expected one completer call, got %d", len(fc.calls))
	}
	msgs := fc.calls[0]
	if len(msgs) != 2 || msgs[0].Role != RoleSystem || msgs[1].Content != "some reply" {
		t.Fatalf("unexpected extraction request: %+v", msgs)
	}
}
