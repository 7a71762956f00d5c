package awards

import (
	"regexp"
	"strings"
)

// Matcher holds the compiled award patterns. Build one per pipeline run and
// share it read-only; there is no hidden global state.
type Matcher struct {
	patterns []awardPattern
	fuzzy    FuzzyOptions
}

type awardPattern struct {
	canonical string
	re        *regexp.Regexp
}

// NewMatcher compiles the exact and alias patterns in the fixed declared
// order, so the earliest-declared award wins on overlapping matches.
func NewMatcher(fuzzy FuzzyOptions) *Matcher {
	fuzzy = fuzzy.withDefaults()
	m := &Matcher{fuzzy: fuzzy}
	for _, canon := range Canonical {
		m.patterns = append(m.patterns, awardPattern{canonical: canon, re: flexPattern(canon)})
		for _, alias := range Aliases[canon] {
			m.patterns = append(m.patterns, awardPattern{canonical: canon, re: flexPattern(alias)})
		}
	}
	return m
}

// flexPattern matches the phrase's words with arbitrary whitespace, hyphens,
// or colons between them. Bare hyphen "words" in the phrase are dropped; the
// separator class already absorbs them, so "best screenplay motion picture"
// matches the hyphenated canonical form.
func flexPattern(phrase string) *regexp.Regexp {
	var quoted []string
	for _, w := range strings.Fields(phrase) {
		if w == "-" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	return regexp.MustCompile(`(?i)` + strings.Join(quoted, `\s*[-:]*\s*`))
}

// Match returns the canonical award whose exact or alias pattern fires first
// in the declared order, or "" when none does.
func (m *Matcher) Match(text string) string {
	for _, p := range m.patterns {
		if p.re.MatchString(text) {
			return p.canonical
		}
	}
	return ""
}

// Resolve tries exact/alias matching, then the coarse keyword rules.
// An empty result means "no award determined", not an error.
func (m *Matcher) Resolve(text string) string {
	if award := m.Match(text); award != "" {
		return award
	}
	return CoarseMatch(text)
}

// CoarseMatch applies the ordered keyword-combination rules when no phrase
// pattern fires. Rule order is load-bearing: the first satisfied rule wins.
func CoarseMatch(text string) string {
	t := strings.ToLower(text)

	film := strings.Contains(t, "motion picture") || strings.Contains(t, "film")
	tv := strings.Contains(t, "tv") || strings.Contains(t, "television") || strings.Contains(t, "series")
	comedy := strings.Contains(t, "comedy") || strings.Contains(t, "musical")
	drama := strings.Contains(t, "drama")
	actor := strings.Contains(t, "actor")
	actress := strings.Contains(t, "actress")
	supporting := strings.Contains(t, "support")
	mini := strings.Contains(t, "mini") || strings.Contains(t, "limited")

	switch {
	case actor && film && drama && !supporting:
		if comedy {
			return "best performance by an actor in a motion picture - comedy or musical"
		}
		return "best performance by an actor in a motion picture - drama"
	case actress && film && drama && !supporting:
		if comedy {
			return "best performance by an actress in a motion picture - comedy or musical"
		}
		return "best performance by an actress in a motion picture - drama"
	case supporting && actor && film:
		return "best performance by an actor in a supporting role in a motion picture"
	case supporting && actress && film:
		return "best performance by an actress in a supporting role in a motion picture"
	case supporting && actor && tv:
		return "best performance by an actor in a supporting role in a series, mini-series or motion picture made for television"
	case supporting && actress && tv:
		return "best performance by an actress in a supporting role in a series, mini-series or motion picture made for television"
	case mini && actor:
		return "best performance by an actor in a mini-series or motion picture made for television"
	case mini && actress:
		return "best performance by an actress in a mini-series or motion picture made for television"
	case actor && tv && comedy:
		return "best performance by an actor in a television series - comedy or musical"
	case actor && tv && drama:
		return "best performance by an actor in a television series - drama"
	case actress && tv && comedy:
		return "best performance by an actress in a television series - comedy or musical"
	case actress && tv && drama:
		return "best performance by an actress in a television series - drama"
	case tv && comedy:
		return "best television series - comedy or musical"
	case tv && drama:
		return "best television series - drama"
	}
	return ""
}
