package clusterer

import (
	"strings"
	"unicode"
)

// noiseTokens are ceremony chatter that must not count toward name identity:
// "Christoph Waltz WINS" and "Christoph Waltz" are the same person.
var noiseTokens = map[string]struct{}{
	"rt": {}, "golden": {}, "globe": {}, "globes": {}, "goldenglobes": {},
	"best": {}, "award": {}, "awards": {}, "wins": {}, "win": {}, "winner": {},
	"won": {}, "congrats": {}, "congratulations": {}, "the": {}, "a": {},
	"an": {}, "for": {}, "and": {}, "at": {}, "of": {}, "in": {}, "to": {},
	"is": {}, "omg": {}, "wow": {}, "yay": {}, "finally": {}, "deserved": {},
}

// normalizeKey is the alias-index key: lowercased, punctuation-stripped,
// noise-free token join. An empty key means the surface was pure noise.
func normalizeKey(surface string) string {
	return strings.Join(keptTokens(strings.ToLower(surface)), " ")
}

// stripNoise keeps the surface's casing but drops noise tokens, for display
// and canonical-name election.
func stripNoise(surface string) string {
	return strings.Join(keptTokens(surface), " ")
}

func keptTokens(s string) []string {
	var kept []string
	for _, tok := range strings.Fields(s) {
		trimmed := strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if trimmed == "" {
			continue
		}
		if _, noise := noiseTokens[strings.ToLower(trimmed)]; noise {
			continue
		}
		kept = append(kept, trimmed)
	}
	return kept
}

// similarity blends character-level and token-level agreement over normalized
// forms. Both inputs are expected to already be normalizeKey output.
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	return 0.6*sequenceRatio(a, b) + 0.4*tokenJaccard(a, b)
}

// sequenceRatio is the Ratcliff-Obershelp similarity: twice the total length
// of recursively-matched common substrings over the combined length.
func sequenceRatio(a, b string) float64 {
	if len(a)+len(b) == 0 {
		return 0
	}
	return 2 * float64(matchTotal([]byte(a), []byte(b))) / float64(len(a)+len(b))
}

func matchTotal(a, b []byte) int {
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchTotal(a[:ai], b[:bi])
	total += matchTotal(a[ai+size:], b[bi+size:])
	return total
}

func longestCommonSubstring(a, b []byte) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// prev[j] is the match run ending at a[i-1], b[j-1].
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > size {
					size = cur[j]
					ai = i - size
					bi = j - size
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
		for j := range cur {
			cur[j] = 0
		}
	}
	return ai, bi, size
}

func tokenJaccard(a, b string) float64 {
	as := strings.Fields(a)
	bs := strings.Fields(b)
	if len(as) == 0 || len(bs) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(as))
	for _, t := range as {
		set[t] = struct{}{}
	}
	union := len(set)
	inter := 0
	for _, t := range bs {
		if _, ok := set[t]; ok {
			inter++
			delete(set, t)
			continue
		}
		union++
	}
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// personLike reports whether a surface reads as a person's name: at least two
// tokens, most of them capitalized.
func personLike(surface string) bool {
	tokens := strings.Fields(surface)
	if len(tokens) < 2 {
		return false
	}
	capped := 0
	for _, t := range tokens {
		r := []rune(t)[0]
		if unicode.IsUpper(r) {
			capped++
		}
	}
	return capped*2 > len(tokens)
}
