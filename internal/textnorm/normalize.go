// Package textnorm cleans raw post text into views the extraction stages can
// match against: a cased ASCII string for name-casing decisions and a
// lowercase token stream for keyword and award matching.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	urlRE      = regexp.MustCompile(`(?i)https?://\S+|www\.\S+`)
	rtPrefixRE = regexp.MustCompile(`^RT\s+@\w+:?\s*`)
	tagRE      = regexp.MustCompile(`[@#](\w+)`)
	wsRE       = regexp.MustCompile(`\s+`)
	tokenRE    = regexp.MustCompile(`[a-z0-9][a-z0-9'-]*`)
)

// Normalized is the derived view of one post's text. Regenerable from the
// raw input; never mutated after construction.
type Normalized struct {
	// Clean keeps the original casing with encoding fixed, URLs removed and
	// handle/hashtag tokens expanded into words.
	Clean string
	// Lower is the lowercase ASCII matching view of Clean.
	Lower string
	// Tokens are the lowercase word tokens of Lower.
	Tokens []string
}

// Normalize is a pure function of its input. Empty or whitespace-only input
// yields a zero Normalized, never an error.
func Normalize(raw string) Normalized {
	clean := Clean(raw)
	lower := strings.ToLower(clean)
	return Normalized{
		Clean:  clean,
		Lower:  lower,
		Tokens: tokenRE.FindAllString(lower, -1),
	}
}

// Clean repairs encoding damage, transliterates to ASCII, removes URLs and
// the retweet prefix, expands @handles and #hashtags into readable words,
// and collapses whitespace. Idempotent: Clean(Clean(s)) == Clean(s).
func Clean(raw string) string {
	s := repairMojibake(raw)
	s = foldASCII(s)
	s = rtPrefixRE.ReplaceAllString(s, "")
	s = urlRE.ReplaceAllString(s, " ")
	s = expandTags(s)
	s = wsRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// expandTags rewrites @handle and #HashTag tokens as word sequences, splitting
// on underscores and camel-case boundaries and dropping the sigil.
func expandTags(s string) string {
	return tagRE.ReplaceAllStringFunc(s, func(tag string) string {
		body := tag[1:]
		parts := splitTagBody(body)
		if len(parts) == 0 {
			return " "
		}
		return " " + strings.Join(parts, " ") + " "
	})
}

func splitTagBody(body string) []string {
	var parts []string
	for _, chunk := range strings.Split(body, "_") {
		parts = append(parts, splitCamel(chunk)...)
	}
	return parts
}

// splitCamel breaks RedCarpet into [Red Carpet] and ABCNews into [ABC News].
// Runs of digits and runs of uppercase letters stay together.
func splitCamel(s string) []string {
	if s == "" {
		return nil
	}
	runes := []rune(s)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
			boundary = true
		case unicode.IsLetter(prev) != unicode.IsLetter(cur):
			boundary = true
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// tail of an acronym: the last capital belongs to the next word
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	return words
}
