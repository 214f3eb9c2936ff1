package tts

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/voicebridge/server/domain/repositories"
)

// NewFromEnv creates the synthesizer selected by TTS_PROVIDER: "openai"
// (default), "elevenlabs", or "mock" for local development.
func NewFromEnv(logger *zap.Logger) (repositories.TextToSpeech, error) {
	provider := strings.ToLower(os.Getenv("TTS_PROVIDER"))
	if provider == "" {
		provider = "openai"
		logger.Info("TTS_PROVIDER not set, defaulting to openai")
	}

	switch provider {
	case "openai":
		return NewOpenAITextToSpeech(logger)
	case "elevenlabs":
		return NewElevenLabsTTS(NewElevenLabsConfigFromEnv(), logger)
	case "mock":
		return NewMockTextToSpeech(logger), nil
	default:
		return nil, fmt.Errorf("unsupported TTS provider: %s (supported: openai, elevenlabs, mock)", provider)
	}
}
