package tts

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestAuditLog_AppendFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tts.txt")
	a := NewAuditLog(path)
	if err := a.Append("こんにちは"); err != nil {
		t.Fatalf("append: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read audit log: %v", err)
	}
	line := string(b)
	if !strings.HasPrefix(line, "TTS at ") {
		t.Fatalf("unexpected audit line %q", line)
	}
	if !strings.Contains(line, ": こんにちは") || !strings.HasSuffix(line, "\n") {
		t.Fatalf("audit line missing text or newline: %q", line)
	}
}

func TestAuditLog_AppendOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tts.txt")
	a := NewAuditLog(path)
	for _, text := range []string{"one", "two", "three"} {
		if err := a.Append(text); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	b, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 audit lines, got %d", len(lines))
	}
	for i, want := range []string{"one", "two", "three"} {
		if !strings.HasSuffix(lines[i], ": "+want) {
			t.Fatalf("line %d should end with %q: %q", i, want, lines[i])
		}
	}
}

func TestAuditLog_ConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tts.txt")
	a := NewAuditLog(path)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := a.Append("text"); err != nil {
				t.Errorf("append: %v", err)
			}
		}()
	}
	wg.Wait()
	b, _ := os.ReadFile(path)
	if got := strings.Count(string(b), "\n"); got != 20 {
		t.Fatalf("expected 20 intact lines, got %d", got)
	}
}
