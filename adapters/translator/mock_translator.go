package translator

import (
	"context"

	"go.uber.org/zap"

	"github.com/voicebridge/server/domain/repositories"
)

// MockTranslator is a placeholder translator for local development without
// provider credentials. It echoes a canned phrase sized to pass the
// quality gate.
type MockTranslator struct {
	logger *zap.Logger
}

// NewMockTranslator creates a new mock translator
func NewMockTranslator(logger *zap.Logger) repositories.Translator {
	return &MockTranslator{logger: logger}
}

// Translate implements repositories.Translator
func (m *MockTranslator) Translate(ctx context.Context, text, sourceName, targetName string) (string, error) {
	m.logger.Info("Processing mock translation",
		zap.String("source", sourceName),
		zap.String("target", targetName),
		zap.Int("chars", len(text)))

	if targetName == "Italian" {
		return "Ciao, mi chiamo Mira. Vorrei ordinare una pizza con formaggio extra.", nil
	}
	return "Hello, my name is Mira. I would like to order a pizza with extra cheese.", nil
}
