package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/voicebridge/server/domain/entities"
)

// identicalTextMinLength is the minimum original length before an identical
// translation counts as a no-op that bypassed the provider. Short phrases
// legitimately survive translation unchanged.
const identicalTextMinLength = 20

// repetitionWindow is the trigram window size for the repetition check.
const repetitionWindow = 3

// minDistinctWindowRatio is the floor for distinct trigram windows over
// total windows; anything below it is degenerate repetition.
const minDistinctWindowRatio = 0.7

// ValidateTextLength checks that the trimmed text falls inside the
// configured transcript bounds.
func ValidateTextLength(text string, cfg entities.PipelineConfig) error {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < cfg.MinTextLength {
		return fmt.Errorf("text too short or empty")
	}
	if utf8.RuneCountInString(text) > cfg.MaxTextLength {
		return fmt.Errorf("text exceeds maximum length of %d characters", cfg.MaxTextLength)
	}
	return nil
}

// ValidateLanguage checks that the normalized code belongs to the supported
// set and that the optional confidence clears the configured floor.
func ValidateLanguage(code string, confidence *float64, cfg entities.PipelineConfig) error {
	if !entities.IsSupportedCode(code) {
		return fmt.Errorf("unsupported language detected: %s", code)
	}
	if confidence != nil && *confidence < cfg.MinConfidenceScore {
		return fmt.Errorf("low confidence: %.2f", *confidence)
	}
	return nil
}

// CheckHallucination is the heuristic quality gate run on every
// (original, translated) pair. Checks run in order and the first match
// wins: length ratio, blocklisted phrase, identical text, trigram
// repetition. It is pure and total; identical inputs always yield the same
// verdict. This is a tunable heuristic, not a classifier — false positives
// and negatives are accepted operating cost.
func CheckHallucination(originalText, translatedText, detectedLanguage string, cfg entities.PipelineConfig) (bool, string) {
	_ = detectedLanguage // reserved for language-aware checks

	// Lengths are in characters, not bytes; accented text must not skew
	// the ratio.
	originalLen := utf8.RuneCountInString(strings.TrimSpace(originalText))
	translatedLen := utf8.RuneCountInString(strings.TrimSpace(translatedText))

	// Check 1: length ratio, only meaningful for a non-empty original.
	if originalLen > 0 {
		ratio := float64(translatedLen) / float64(originalLen)
		if ratio > cfg.MaxLengthRatio {
			return true, fmt.Sprintf("translation suspiciously long (ratio: %.2f)", ratio)
		}
		if ratio < cfg.MinLengthRatio {
			return true, fmt.Sprintf("translation suspiciously short (ratio: %.2f)", ratio)
		}
	}

	// Check 2: captioning artifacts and subscribe-style boilerplate.
	translatedLower := strings.ToLower(translatedText)
	for _, phrase := range cfg.HallucinationPhrases {
		if strings.Contains(translatedLower, strings.ToLower(phrase)) {
			return true, fmt.Sprintf("hallucination keyword detected: %q", phrase)
		}
	}

	// Check 3: a long translation identical to its original is a no-op that
	// silently bypassed the provider.
	if originalLen > identicalTextMinLength &&
		strings.EqualFold(strings.TrimSpace(originalText), strings.TrimSpace(translatedText)) {
		return true, "translation identical to original"
	}

	// Check 4: degenerate repetition via overlapping trigram windows.
	words := strings.Fields(translatedText)
	if len(words) > 5 {
		total := len(words) - repetitionWindow + 1
		distinct := make(map[string]struct{}, total)
		for i := 0; i+repetitionWindow <= len(words); i++ {
			distinct[strings.Join(words[i:i+repetitionWindow], " ")] = struct{}{}
		}
		if float64(len(distinct)) < float64(total)*minDistinctWindowRatio {
			return true, "excessive repetition detected"
		}
	}

	return false, ""
}
