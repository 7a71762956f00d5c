package awards

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// FuzzyOptions tune the edit-distance resolver. The source corpus mangles
// award names badly enough that these are calibration points, not constants.
type FuzzyOptions struct {
	// MaxDistance is the largest acceptable edit distance overall.
	MaxDistance int
	// ShortNameMaxDistance applies to canonical names of at most three
	// words, which over-match at the looser cap.
	ShortNameMaxDistance int
	// MinPhraseWords / MaxPhraseWords bound the candidate prefix lengths.
	MinPhraseWords int
	MaxPhraseWords int
	// MinMatchLen rejects degenerate matches shorter than this many chars.
	MinMatchLen int
}

func (o FuzzyOptions) withDefaults() FuzzyOptions {
	if o.MaxDistance <= 0 {
		o.MaxDistance = 10
	}
	if o.ShortNameMaxDistance <= 0 {
		o.ShortNameMaxDistance = 5
	}
	if o.MinPhraseWords <= 0 {
		o.MinPhraseWords = 3
	}
	if o.MaxPhraseWords <= 0 {
		o.MaxPhraseWords = 12
	}
	if o.MinMatchLen <= 0 {
		o.MinMatchLen = 8
	}
	return o
}

type canonicalTokens struct {
	name      string
	wordCount int
	tokens    map[string]struct{}
}

var canonicalIndex = buildCanonicalIndex()

func buildCanonicalIndex() []canonicalTokens {
	idx := make([]canonicalTokens, 0, len(Canonical))
	for _, name := range Canonical {
		toks := make(map[string]struct{})
		words := strings.FieldsFunc(name, func(r rune) bool {
			return r == ' ' || r == '-' || r == ','
		})
		count := 0
		for _, w := range words {
			if w == "" {
				continue
			}
			count++
			if len(w) > 2 {
				toks[w] = struct{}{}
			}
		}
		idx = append(idx, canonicalTokens{name: name, wordCount: count, tokens: toks})
	}
	return idx
}

// ResolveFuzzy maps a raw "best ..." fragment onto the canonical award it is
// closest to by edit distance, considering prefixes of 3..MaxPhraseWords
// words and keeping the globally closest pair. Returns "" when nothing is
// close enough.
//
// A candidate is only compared against awards sharing at least two keyword
// tokens; the prefilter skips obviously-irrelevant pairs and never changes
// which award wins, because fewer than two shared tokens cannot beat the
// distance caps on names this long.
func (m *Matcher) ResolveFuzzy(fragment string) string {
	opts := m.fuzzy
	words := strings.Fields(strings.ToLower(strings.TrimSpace(fragment)))
	if len(words) < opts.MinPhraseWords {
		return ""
	}

	best := ""
	bestDistance := opts.MaxDistance + 1

	maxK := opts.MaxPhraseWords
	if maxK > len(words) {
		maxK = len(words)
	}
	for k := opts.MinPhraseWords; k <= maxK; k++ {
		candidate := strings.Join(words[:k], " ")
		if len(candidate) < opts.MinMatchLen {
			continue
		}
		for _, canon := range canonicalIndex {
			if sharedTokens(candidate, canon.tokens) < 2 {
				continue
			}
			limit := opts.MaxDistance
			if canon.wordCount <= 3 {
				limit = opts.ShortNameMaxDistance
			}
			d := levenshtein.ComputeDistance(candidate, canon.name)
			if d > limit {
				continue
			}
			if d < bestDistance {
				bestDistance = d
				best = canon.name
			}
		}
	}
	return best
}

func sharedTokens(candidate string, canonTokens map[string]struct{}) int {
	shared := 0
	for _, w := range strings.Fields(candidate) {
		if len(w) <= 2 {
			continue
		}
		if _, ok := canonTokens[w]; ok {
			shared++
		}
	}
	return shared
}
