package api

// HomeResponse is returned by the root endpoint.
type HomeResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Environment string `json:"environment"`
}

// ErrorResponse carries a failed outcome to the caller. Partial diagnostic
// fields are included when the pipeline preserved them.
type ErrorResponse struct {
	Error                 string `json:"error"`
	RequiresRetry         bool   `json:"requires_retry"`
	HallucinationDetected bool   `json:"hallucination_detected"`
	DetectedLanguage      string `json:"detected_language,omitempty"`
	OriginalText          string `json:"original_text,omitempty"`
	TranslatedText        string `json:"translated_text,omitempty"`
}
