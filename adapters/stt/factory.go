package stt

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/voicebridge/server/domain/repositories"
)

// NewFromEnv creates the speech-to-text provider selected by STT_PROVIDER:
// "openai" (default), "google", or "mock" for local development.
func NewFromEnv(logger *zap.Logger) (repositories.SpeechToText, error) {
	provider := strings.ToLower(os.Getenv("STT_PROVIDER"))
	if provider == "" {
		provider = "openai"
		logger.Info("STT_PROVIDER not set, defaulting to openai")
	}

	switch provider {
	case "openai":
		return NewOpenAISpeechToText(logger)
	case "google":
		return NewGoogleSpeechToText(logger), nil
	case "mock":
		return NewMockSpeechToText(logger), nil
	default:
		return nil, fmt.Errorf("unsupported STT provider: %s (supported: openai, google, mock)", provider)
	}
}
