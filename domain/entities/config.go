package entities

import "time"

// PipelineConfig holds every tunable of one pipeline invocation. Treat a
// value as immutable once built; DefaultPipelineConfig constructs all
// collection-valued fields eagerly so no two invocations share mutable state.
type PipelineConfig struct {
	// File validation
	MaxFileSizeMB       int
	AllowedContentTypes map[string]struct{}
	AllowedExtensions   map[string]struct{}

	// Transcript bounds
	MinTextLength      int
	MaxTextLength      int
	MinConfidenceScore float64

	// Hallucination detection
	MaxLengthRatio       float64
	MinLengthRatio       float64
	HallucinationPhrases []string

	// Retry behavior for remote calls
	MaxAttempts    int
	BackoffFloor   time.Duration
	BackoffCeiling time.Duration
}

// DefaultPipelineConfig returns the standard tuning.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		MaxFileSizeMB: 25,
		AllowedContentTypes: map[string]struct{}{
			"audio/mpeg": {},
			"audio/mp3":  {},
			"audio/wav":  {},
			"audio/m4a":  {},
			"audio/webm": {},
			"audio/ogg":  {},
		},
		AllowedExtensions: map[string]struct{}{
			".mp3":  {},
			".wav":  {},
			".m4a":  {},
			".webm": {},
			".ogg":  {},
			".flac": {},
		},
		MinTextLength:      3,
		MaxTextLength:      4096,
		MinConfidenceScore: 0.7,
		MaxLengthRatio:     3.0,
		MinLengthRatio:     0.3,
		HallucinationPhrases: []string{
			"[inaudible]",
			"[music]",
			"[noise]",
			"subscribe",
			"like and subscribe",
			"thank you for watching",
			"please subscribe",
		},
		MaxAttempts:    3,
		BackoffFloor:   2 * time.Second,
		BackoffCeiling: 10 * time.Second,
	}
}
