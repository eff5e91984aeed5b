package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultPersona is the system instruction seeding every conversation.
const DefaultPersona = "You are a language tutor, having a conversation in Japanese with a student. Ask questions, and be friendly."

// Config holds application configuration. Language, voice, and persona are
// deployment policy; they are never negotiated per request.
type Config struct {
	HTTPAddress   string
	OpenAIKey     string
	OpenAIModel   string
	LanguageCode  string
	VoiceName     string
	Persona       string
	ContextWindow int
	FFmpegPath    string
	AuditLogPath  string
}

// Load reads environment variables and returns Config with sane defaults.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	addr := os.Getenv("HTTP_ADDRESS")
	if addr == "" {
		addr = ":8000"
	}

	openAIKey := os.Getenv("OPENAI_API_KEY")
	if openAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set - conversation and keyword extraction will not work")
	}

	openAIModel := os.Getenv("OPENAI_MODEL")
	if openAIModel == "" {
		openAIModel = "gpt-3.5-turbo"
	}

	if os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") == "" {
		log.Println("Warning: GOOGLE_APPLICATION_CREDENTIALS not set - transcription, synthesis and translation will not work")
	}

	languageCode := os.Getenv("TUTOR_LANGUAGE_CODE")
	if languageCode == "" {
		languageCode = "ja-JP"
	}

	voiceName := os.Getenv("TUTOR_VOICE_NAME")
	if voiceName == "" {
		voiceName = "ja-JP-Standard-A"
	}

	persona := os.Getenv("TUTOR_PERSONA")
	if persona == "" {
		persona = DefaultPersona
	}

	window := 40
	if v := os.Getenv("CONTEXT_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Printf("Warning: invalid CONTEXT_WINDOW %q - using default %d", v, window)
		} else {
			window = n
		}
	}

	ffmpegPath := os.Getenv("FFMPEG_PATH")
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}

	auditPath := os.Getenv("TTS_AUDIT_LOG")
	if auditPath == "" {
		auditPath = "tts.txt"
	}

	log.Printf("config: HTTP_ADDRESS=%s", addr)
	return Config{
		HTTPAddress:   addr,
		OpenAIKey:     openAIKey,
		OpenAIModel:   openAIModel,
		LanguageCode:  languageCode,
		VoiceName:     voiceName,
		Persona:       persona,
		ContextWindow: window,
		FFmpegPath:    ffmpegPath,
		AuditLogPath:  auditPath,
	}
}
