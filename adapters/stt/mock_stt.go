package stt

import (
	"context"

	"go.uber.org/zap"

	"github.com/voicebridge/server/domain/entities"
	"github.com/voicebridge/server/domain/repositories"
)

// MockSpeechToText is a placeholder transcriber for local development
// without provider credentials.
type MockSpeechToText struct {
	logger *zap.Logger
}

// NewMockSpeechToText creates a new mock speech-to-text service
func NewMockSpeechToText(logger *zap.Logger) repositories.SpeechToText {
	return &MockSpeechToText{logger: logger}
}

// Transcribe implements repositories.SpeechToText
func (s *MockSpeechToText) Transcribe(ctx context.Context, in *entities.AudioInput) (*repositories.Transcription, error) {
	s.logger.Info("Processing mock speech-to-text",
		zap.String("filename", in.Filename),
		zap.Int("audioSize", len(in.Data)))

	// Canned transcripts keyed on audio size
	switch {
	case len(in.Data) > 10000:
		return &repositories.Transcription{
			Text:     "Hello, my name is Mira. I would like to order a pizza with extra cheese.",
			Language: "english",
		}, nil
	case len(in.Data) > 1000:
		return &repositories.Transcription{
			Text:     "Buongiorno, come posso aiutarti oggi?",
			Language: "italian",
		}, nil
	default:
		return &repositories.Transcription{Text: "Hi", Language: "english"}, nil
	}
}
