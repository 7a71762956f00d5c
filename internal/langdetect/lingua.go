// Package langdetect answers one question: is this post English? The
// detector is expensive to build, so it is constructed once, lazily, from a
// small language set that covers what the ceremony corpus actually contains.
package langdetect

import (
	"strings"
	"sync"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// IsEnglish reports whether text reads as English. Very short samples are
// waved through; there is not enough signal to reject them and the
// downstream heuristics cope with noise better than with dropped posts.
func IsEnglish(text string) bool {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return false
	}

	letterCount := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letterCount++
		}
	}
	if letterCount < 6 {
		return true
	}

	language, exists := getDetector().DetectLanguageOf(sample)
	if !exists {
		return true
	}
	return language == lingua.English
}

func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Spanish,
				lingua.Portuguese,
				lingua.French,
				lingua.German,
				lingua.Indonesian,
			).
			WithPreloadedLanguageModels().
			Build()
	})
	return detector
}
