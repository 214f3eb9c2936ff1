package entities

import "time"

// TranslationOutcome is the single result of a pipeline invocation,
// immutable once produced. A failed outcome never carries audio bytes, but
// keeps whatever partial fields were known when the pipeline stopped so the
// caller can diagnose the failure or explain it to the end user.
type TranslationOutcome struct {
	Success    bool   `json:"success"`
	AudioBytes []byte `json:"-"`

	OriginalText     string `json:"original_text,omitempty"`
	TranslatedText   string `json:"translated_text,omitempty"`
	DetectedLanguage string `json:"detected_language,omitempty"`
	TargetLanguage   string `json:"target_language,omitempty"`

	ErrorMessage string `json:"error_message,omitempty"`
	// RequiresRetry tells the caller to prompt the user to resubmit,
	// as opposed to treating the failure as terminal.
	RequiresRetry         bool `json:"requires_retry"`
	HallucinationDetected bool `json:"hallucination_detected"`
}

// OutcomeRecord is the persisted trace of one pipeline invocation. The
// content hash is a dedup key for a future caching layer; the pipeline
// itself never consults stored records.
type OutcomeRecord struct {
	ID          string `json:"id,omitempty"`
	RequestID   string `json:"request_id"`
	ContentHash string `json:"content_hash"`

	Success               bool   `json:"success"`
	OriginalText          string `json:"original_text,omitempty"`
	TranslatedText        string `json:"translated_text,omitempty"`
	DetectedLanguage      string `json:"detected_language,omitempty"`
	TargetLanguage        string `json:"target_language,omitempty"`
	ErrorMessage          string `json:"error_message,omitempty"`
	RequiresRetry         bool   `json:"requires_retry"`
	HallucinationDetected bool   `json:"hallucination_detected"`

	CreatedAt time.Time `json:"created_at"`
}
