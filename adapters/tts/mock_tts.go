package tts

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/voicebridge/server/domain/repositories"
)

// MockTextToSpeech is a placeholder synthesizer for local development
// without provider credentials.
type MockTextToSpeech struct {
	logger *zap.Logger
}

// NewMockTextToSpeech creates a new mock text-to-speech service
func NewMockTextToSpeech(logger *zap.Logger) repositories.TextToSpeech {
	return &MockTextToSpeech{logger: logger}
}

// Synthesize implements repositories.TextToSpeech
func (t *MockTextToSpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	t.logger.Info("Processing mock text-to-speech", zap.String("text", text))

	// Fake audio sized to the text
	audio := make([]byte, len(text)*100)
	for i := range audio {
		audio[i] = byte(i % 256)
	}
	return audio, nil
}
