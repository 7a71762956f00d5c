// Package roles decides what a named candidate is doing in a post: winning,
// being nominated, presenting, or hosting. Decisions are window-local; each
// occurrence of the name in the post is judged on the text around it.
package roles

import (
	"regexp"
	"strings"

	"horse.fit/gala/internal/awards"
)

type Role string

const (
	Winner    Role = "winner"
	Nominee   Role = "nominee"
	Presenter Role = "presenter"
	Host      Role = "host"
	None      Role = ""
)

// Hypothesis is one (role, award) guess for a single name occurrence, with
// the relative confidence used to pick among competing cues.
type Hypothesis struct {
	Role       Role
	Award      string // empty for host
	Confidence int
}

// hostRE fires on hosting vocabulary; co-host wins the occurrence outright,
// no award context needed.
var hostRE = regexp.MustCompile(`\b(?:co-?)?host(?:s|ing|ed)?\b|\bemcees?\b|\bmonologue\b`)

var presenterCues = []string{
	"presented by", "presenting", "presents", "present the", "presenter",
	"introducing", "introduces", "hand out", "handing out",
}

var nomineeCues = []string{
	"nominee", "nominated", "nomination", "nominations", "should win",
	"should have won", "shouldve won", "deserves to win", "hope", "robbed",
	"snubbed", "rooting for",
}

// Classifier resolves award references through the shared Matcher and scans
// fixed-radius windows around each name occurrence.
type Classifier struct {
	matcher *awards.Matcher
	radius  int
}

// NewClassifier builds a Classifier with the given window radius in
// characters on each side of an occurrence. Radius must be positive.
func NewClassifier(m *awards.Matcher, radius int) *Classifier {
	if radius <= 0 {
		radius = 90
	}
	return &Classifier{matcher: m, radius: radius}
}

// Classify judges every word-bounded, case-insensitive occurrence of name in
// postText and returns the best hypothesis per occurrence, deduplicated by
// (role, award). An empty result means the post says nothing usable about
// this name.
func (c *Classifier) Classify(name, postText string) []Hypothesis {
	name = strings.TrimSpace(name)
	if name == "" || postText == "" {
		return nil
	}
	nameRE, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
	if err != nil {
		return nil
	}

	var out []Hypothesis
	seen := make(map[string]struct{})
	for _, loc := range nameRE.FindAllStringIndex(postText, -1) {
		h, ok := c.judgeOccurrence(postText, loc[0], loc[1])
		if !ok {
			continue
		}
		key := string(h.Role) + "\x00" + h.Award
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, h)
	}
	return out
}

func (c *Classifier) judgeOccurrence(text string, start, end int) (Hypothesis, bool) {
	lo := start - c.radius
	if lo < 0 {
		lo = 0
	}
	hi := end + c.radius
	if hi > len(text) {
		hi = len(text)
	}
	window := strings.ToLower(text[lo:hi])
	nameAt := start - lo

	if hostRE.MatchString(window) {
		return Hypothesis{Role: Host, Confidence: 4}, true
	}

	award, awardAt := c.resolveAward(window)
	if award == "" {
		return Hypothesis{}, false
	}

	if conf, ok := presenterEvidence(window, nameAt, awardAt); ok {
		return Hypothesis{Role: Presenter, Award: award, Confidence: conf}, true
	}
	if winnerCueRE.MatchString(window) {
		return Hypothesis{Role: Winner, Award: award, Confidence: 2}, true
	}
	if nomineeCueRE.MatchString(window) {
		return Hypothesis{Role: Nominee, Award: award, Confidence: 1}, true
	}
	// An award right next to a name with no verb at all is still usually a
	// winner announcement.
	return Hypothesis{Role: Winner, Award: award, Confidence: 1}, true
}

// resolveAward finds the award a window talks about: phrase patterns first,
// then keyword rules, then edit-distance rescue of the "best ..." fragment.
// The second return is the byte offset of the award phrase in the window, or
// -1 when only the keyword rules fired.
func (c *Classifier) resolveAward(window string) (string, int) {
	at := strings.Index(window, "best ")
	if at < 0 {
		at = strings.Index(window, "cecil")
	}
	if award := c.matcher.Match(window); award != "" {
		return award, at
	}
	if award := awards.CoarseMatch(window); award != "" {
		return award, at
	}
	if at >= 0 {
		if award := c.matcher.ResolveFuzzy(window[at:]); award != "" {
			return award, at
		}
	}
	return "", -1
}

// presenterEvidence requires direction: either name, then a presenting verb,
// then the award phrase, or the inverted "award presented by name" order.
// Confidence grows as the name-to-award span shrinks.
func presenterEvidence(window string, nameAt, awardAt int) (int, bool) {
	if awardAt < 0 {
		return 0, false
	}
	for _, cue := range presenterCues {
		verbAt := strings.Index(window, cue)
		if verbAt < 0 {
			continue
		}
		forward := nameAt < verbAt && verbAt < awardAt
		inverted := awardAt < verbAt && verbAt < nameAt
		if !forward && !inverted {
			continue
		}
		span := nameAt - awardAt
		if span < 0 {
			span = -span
		}
		conf := 3
		if span <= 60 {
			conf = 4
		}
		return conf, true
	}
	return 0, false
}

var (
	winnerCueRE  = cueRegexp(awards.WinnerVerbs)
	nomineeCueRE = cueRegexp(nomineeCues)
)

// cueRegexp word-bounds every cue so "won" cannot fire inside "wonderful".
func cueRegexp(cues []string) *regexp.Regexp {
	quoted := make([]string, len(cues))
	for i, c := range cues {
		quoted[i] = regexp.QuoteMeta(c)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
