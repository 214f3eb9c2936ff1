package repositories

import "context"

// Translator abstracts text translation providers. Source and target are
// display names ("English", "Italian"); the request contract instructs the
// model to return the translation only, preserving tone.
type Translator interface {
	Translate(ctx context.Context, text, sourceName, targetName string) (string, error)
}
