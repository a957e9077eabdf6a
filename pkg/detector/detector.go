// Package detector identifies the script of downloaded poem text.
package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

var languages = []lingua.Language{
	lingua.Persian,
	lingua.Arabic,
	lingua.English,
}

var langDetector = lingua.NewLanguageDetectorBuilder().
	FromLanguages(languages...).
	Build()

// Detect returns the most likely language of text and the detector's
// confidence in Persian specifically.
func Detect(text string) (string, float64) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", 0
	}

	confidence := langDetector.ComputeLanguageConfidence(trimmed, lingua.Persian)
	lang, ok := langDetector.DetectLanguageOf(trimmed)
	if !ok {
		return "", confidence
	}
	return lang.String(), confidence
}

// IsPersian reports whether text is most likely Persian.
func IsPersian(text string) bool {
	lang, _ := Detect(text)
	return lang == lingua.Persian.String()
}
