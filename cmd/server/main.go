package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dev4narayou/LanguagePartnerAI/internal/audio"
	"github.com/dev4narayou/LanguagePartnerAI/internal/config"
	"github.com/dev4narayou/LanguagePartnerAI/internal/httpserver"
	"github.com/dev4narayou/LanguagePartnerAI/internal/llm"
	"github.com/dev4narayou/LanguagePartnerAI/internal/stt"
	"github.com/dev4narayou/LanguagePartnerAI/internal/translate"
	"github.com/dev4narayou/LanguagePartnerAI/internal/tts"
	"github.com/dev4narayou/LanguagePartnerAI/internal/tutor"
)

func main() {
	// Include sub-second precision in all log timestamps
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	cfg := config.Load()
	ctx := context.Background()

	recognizer, err := stt.New(ctx, cfg.LanguageCode)
	if err != nil {
		log.Fatalf("speech client: %v", err)
	}
	defer recognizer.Close()

	synthesizer, err := tts.New(ctx, cfg.LanguageCode, cfg.VoiceName, tts.NewAuditLog(cfg.AuditLogPath))
	if err != nil {
		log.Fatalf("text-to-speech client: %v", err)
	}
	defer synthesizer.Close()

	translator, err := translate.New(ctx)
	if err != nil {
		log.Fatalf("translate client: %v", err)
	}
	defer translator.Close()

	completer := llm.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
	conversation := tutor.NewConversation(cfg.Persona, cfg.ContextWindow)
	session := tutor.NewSession(conversation, completer)

	e := httpserver.New()
	httpserver.NewHandlers(
		audio.NewConverter(cfg.FFmpegPath),
		recognizer,
		session,
		synthesizer,
		translator,
	).Register(e)

	// Start server in background
	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", cfg.HTTPAddress)
		serverErrors <- e.Start(cfg.HTTPAddress)
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-sigChan:
		log.Printf("shutdown signal received: %v", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		_ = e.Close()
	}
}
