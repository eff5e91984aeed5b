package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dev4narayou/LanguagePartnerAI/internal/audio"
	"github.com/dev4narayou/LanguagePartnerAI/internal/tutor"
)

// Per-operation deadlines for the external providers. A timeout is reported
// to the caller like any other provider failure.
const (
	transcribeTimeout = 60 * time.Second
	turnTimeout       = 60 * time.Second
	synthesizeTimeout = 30 * time.Second
	translateTimeout  = 15 * time.Second
)

type Handlers struct {
	Normalizer  tutor.Normalizer
	Recognizer  tutor.Recognizer
	Session     *tutor.Session
	Synthesizer tutor.Synthesizer
	Translator  tutor.Translator
}

func NewHandlers(normalizer tutor.Normalizer, recognizer tutor.Recognizer, session *tutor.Session, synthesizer tutor.Synthesizer, translator tutor.Translator) Handlers {
	return Handlers{
		Normalizer:  normalizer,
		Recognizer:  recognizer,
		Session:     session,
		Synthesizer: synthesizer,
		Translator:  translator,
	}
}

func (h Handlers) Register(e *echo.Echo) {
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.POST("/transcribe", h.transcribe)
	e.POST("/generate-response", h.generateResponse)
	e.POST("/translate", h.translate)
	e.POST("/set-context", h.setContext)
	e.POST("/text-to-speech", h.textToSpeech)
}

// errorJSON reports a failure with the provider message preserved.
func errorJSON(c echo.Context, err error) error {
	status := http.StatusBadGateway
	if errors.Is(err, tutor.ErrValidation) || errors.Is(err, audio.ErrDecode) {
		status = http.StatusBadRequest
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

// transcribe accepts a multipart audio upload, normalizes it to mono 16-bit
// PCM, and returns the recognized text. Empty transcripts are a valid result.
func (h Handlers) transcribe(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fmt.Errorf("%w: missing file upload", tutor.ErrValidation))
	}
	f, err := fh.Open()
	if err != nil {
		return errorJSON(c, fmt.Errorf("%w: %v", tutor.ErrValidation, err))
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		return errorJSON(c, fmt.Errorf("%w: %v", tutor.ErrValidation, err))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), transcribeTimeout)
	defer cancel()

	wav, err := h.Normalizer.Normalize(ctx, raw, formatHint(fh.Filename))
	if err != nil {
		c.Echo().Logger.Errorf("audio normalize failed: %v", err)
		return errorJSON(c, err)
	}

	transcript, err := h.Recognizer.Transcribe(ctx, wav)
	if err != nil {
		c.Echo().Logger.Errorf("transcription failed: %v", err)
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"transcript": transcript})
}

// formatHint derives the container hint from the uploaded filename. Browser
// recordings arrive as webm; that stays the default.
func formatHint(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return "webm"
	}
	return ext
}

func (h Handlers) generateResponse(c echo.Context) error {
	var req struct {
		Transcript string `json:"transcript"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, fmt.Errorf("%w: invalid request body", tutor.ErrValidation))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), turnTimeout)
	defer cancel()

	res, err := h.Session.ProcessTurn(ctx, req.Transcript)
	if err != nil {
		c.Echo().Logger.Errorf("turn failed: %v", err)
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"response": res.Reply,
		"keywords": res.Keywords,
		"context":  res.Context,
	})
}

func (h Handlers) translate(c echo.Context) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, fmt.Errorf("%w: invalid request body", tutor.ErrValidation))
	}
	if req.Text == "" {
		return errorJSON(c, fmt.Errorf("%w: missing 'text'", tutor.ErrValidation))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), translateTimeout)
	defer cancel()

	res, err := h.Translator.Translate(ctx, req.Text)
	if err != nil {
		c.Echo().Logger.Errorf("translation failed: %v", err)
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"input":                  res.Input,
		"translatedText":         res.TranslatedText,
		"detectedSourceLanguage": res.DetectedSourceLanguage,
	})
}

// setContext bulk-extends the conversation out of band. The payload's
// "context" field may be a single message object or an ordered list; both
// shapes are accepted. With "replace": true the supplied context swaps out
// the whole log, persona included.
func (h Handlers) setContext(c echo.Context) error {
	var req struct {
		Context json.RawMessage `json:"context"`
		Replace bool            `json:"replace"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, fmt.Errorf("%w: invalid request body", tutor.ErrValidation))
	}

	msgs, err := decodeContext(req.Context)
	if err != nil {
		return errorJSON(c, fmt.Errorf("%w: %v", tutor.ErrValidation, err))
	}
	if req.Replace {
		h.Session.Conversation().Replace(msgs)
	} else {
		h.Session.Conversation().Extend(msgs)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Context set successfully"})
}

// decodeContext accepts either one message or an ordered sequence.
func decodeContext(raw json.RawMessage) ([]tutor.Message, error) {
	if len(raw) == 0 {
		return nil, errors.New("missing 'context'")
	}
	var list []tutor.Message
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var single tutor.Message
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, errors.New("'context' must be a message or a list of messages")
	}
	return []tutor.Message{single}, nil
}

func (h Handlers) textToSpeech(c echo.Context) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, fmt.Errorf("%w: invalid request body", tutor.ErrValidation))
	}
	if req.Text == "" {
		return errorJSON(c, fmt.Errorf("%w: missing 'text'", tutor.ErrValidation))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), synthesizeTimeout)
	defer cancel()

	wav, err := h.Synthesizer.Synthesize(ctx, req.Text)
	if err != nil {
		c.Echo().Logger.Errorf("synthesis failed: %v", err)
		return errorJSON(c, err)
	}
	return c.Blob(http.StatusOK, "audio/wav", wav)
}
