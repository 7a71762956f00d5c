package awards

import (
	"sort"
	"strings"
)

var phraseBoundary = buildPhraseBoundary()

func buildPhraseBoundary() map[string]struct{} {
	b := make(map[string]struct{})
	for _, verb := range WinnerVerbs {
		for _, part := range strings.Fields(verb) {
			b[strings.Trim(part, "-")] = struct{}{}
		}
	}
	return b
}

// BestPhrases mines candidate award names out of normalized lowercase text:
// token runs starting at "best", stopped by winner verbs, hashtag remnants,
// a second "best", or the word cap. Phrases shorter than three tokens are
// discarded. "x or y" pairs are reordered alphabetically so "musical or
// comedy" and "comedy or musical" count as one phrase.
func BestPhrases(normLower string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = 12
	}
	tokens := strings.Fields(normLower)
	var phrases []string

	i := 0
	for i < len(tokens) {
		if tokens[i] != "best" {
			i++
			continue
		}
		taken := []string{"best"}
		j := i + 1
		for j < len(tokens) && len(taken) < maxWords {
			t := tokens[j]
			if t == "best" {
				break
			}
			if _, boundary := phraseBoundary[t]; boundary {
				break
			}
			if strings.HasPrefix(t, "#") {
				break
			}
			taken = append(taken, t)
			j++
		}
		if len(taken) >= 3 {
			phrases = append(phrases, strings.Join(orderAlternatives(taken), " "))
		}
		i = j
	}
	return phrases
}

// orderAlternatives rewrites "w1 or w2" with the pair sorted, a cheap
// canonicalization for the comedy-or-musical style categories.
func orderAlternatives(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		if i+2 < len(tokens) && tokens[i+1] == "or" && isAlpha(tokens[i]) && isAlpha(tokens[i+2]) {
			pair := []string{tokens[i], tokens[i+2]}
			sort.Strings(pair)
			out = append(out, pair[0], "or", pair[1])
			i += 3
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return s != ""
}
