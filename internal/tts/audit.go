package tts

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// AuditLog is an append-only record of accepted synthesis requests. It is
// written before the audio is handed back to the caller and is never read
// back by the service.
type AuditLog struct {
	mu   sync.Mutex
	path string
}

// NewAuditLog records to the given file, creating it on first append.
func NewAuditLog(path string) *AuditLog {
	return &AuditLog{path: path}
}

// Append writes one timestamped line for a synthesis request.
func (a *AuditLog) Append(text string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "TTS at %s: %s\n", time.Now().Format("2006-01-02 15:04:05.000000"), text)
	return err
}
