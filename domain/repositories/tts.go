package repositories

import "context"

// TextToSpeech abstracts speech synthesis providers.
type TextToSpeech interface {
	// Synthesize renders text as spoken audio and returns the full encoded
	// payload.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
