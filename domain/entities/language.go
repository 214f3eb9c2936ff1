package entities

import "strings"

// Language is a supported language, identified both by its two-letter
// ISO 639-1 code and by its English display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var (
	English = Language{Code: "en", Name: "English"}
	Italian = Language{Code: "it", Name: "Italian"}
	Spanish = Language{Code: "es", Name: "Spanish"}
	French  = Language{Code: "fr", Name: "French"}
	German  = Language{Code: "de", Name: "German"}
)

// supportedLanguages is the fixed set the pipeline can work with.
var supportedLanguages = []Language{English, Italian, Spanish, French, German}

// DefaultTargetLanguage is the translation partner for any source language
// without a configured pair. This is business policy, not an error path:
// callers proceed with it rather than failing the request.
var DefaultTargetLanguage = English

// languagePairs maps a source ISO code to its bidirectional translation
// partner. Only English and Italian are paired today.
var languagePairs = map[string]Language{
	English.Code: Italian,
	Italian.Code: English,
}

// ParseLanguage matches label against the ISO codes and display names of the
// supported set, case-insensitively. It is total over strings: anything
// outside the set yields ok=false, never an error.
func ParseLanguage(label string) (Language, bool) {
	for _, lang := range supportedLanguages {
		if strings.EqualFold(label, lang.Code) || strings.EqualFold(label, lang.Name) {
			return lang, true
		}
	}
	return Language{}, false
}

// IsSupportedCode reports whether code is the ISO code of a supported language.
func IsSupportedCode(code string) bool {
	for _, lang := range supportedLanguages {
		if lang.Code == code {
			return true
		}
	}
	return false
}

// SupportedCodes returns the ISO codes of the supported set.
func SupportedCodes() []string {
	codes := make([]string, 0, len(supportedLanguages))
	for _, lang := range supportedLanguages {
		codes = append(codes, lang.Code)
	}
	return codes
}

// TargetFor returns the translation partner configured for the given source
// code. When no pair is configured, including unrecognized codes, it returns
// DefaultTargetLanguage with paired=false so the caller can log the fallback.
func TargetFor(code string) (target Language, paired bool) {
	if partner, ok := languagePairs[code]; ok {
		return partner, true
	}
	return DefaultTargetLanguage, false
}
