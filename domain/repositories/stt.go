package repositories

import (
	"context"

	"github.com/voicebridge/server/domain/entities"
)

// SpeechToText abstracts speech recognition services
type SpeechToText interface {
	// Transcribe converts a buffered audio upload to text along with the
	// provider's raw detected-language label.
	Transcribe(ctx context.Context, in *entities.AudioInput) (*Transcription, error)
}

// Transcription is the provider-level result of a speech recognition call.
// Language is the raw label as reported by the provider ("english", "it",
// "en-US", ...); normalization happens in the pipeline.
type Transcription struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}
