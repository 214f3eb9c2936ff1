package translator

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/voicebridge/server/domain/repositories"
)

// NewFromEnv creates the translator selected by TRANSLATOR_PROVIDER:
// "openai" (default), "gemini", or "mock" for local development.
func NewFromEnv(logger *zap.Logger) (repositories.Translator, error) {
	provider := strings.ToLower(os.Getenv("TRANSLATOR_PROVIDER"))
	if provider == "" {
		provider = "openai"
		logger.Info("TRANSLATOR_PROVIDER not set, defaulting to openai")
	}

	switch provider {
	case "openai":
		return NewOpenAITranslator(logger)
	case "gemini":
		return NewGeminiTranslator(logger)
	case "mock":
		return NewMockTranslator(logger), nil
	default:
		return nil, fmt.Errorf("unsupported translator provider: %s (supported: openai, gemini, mock)", provider)
	}
}
