// Package labeler pulls candidate entity spans (people, works, orgs) out of
// cleaned post text. The primary tagger is the prose statistical model; a
// capitalization heuristic stands in when prose errors out or finds nothing,
// which happens constantly on shouty all-caps posts.
package labeler

import "strings"

// Span is one candidate entity with the label the tagger assigned it.
type Span struct {
	Text  string
	Label string // PERSON, GPE, WORK_OF_ART, ...
}

// Labeler extracts entity spans from already-cleaned text.
type Labeler interface {
	Label(text string) ([]Span, error)
}

// Outcome records which tagger produced the spans; fallback spans carry less
// weight downstream.
type Outcome struct {
	Spans    []Span
	Fallback bool
}

// Chain runs the primary labeler and falls back to the backup when the
// primary errors or returns nothing.
type Chain struct {
	Primary Labeler
	Backup  Labeler
}

// Extract never fails: worst case it returns an empty fallback outcome.
func (c *Chain) Extract(text string) Outcome {
	if c.Primary != nil {
		spans, err := c.Primary.Label(text)
		if err == nil && len(spans) > 0 {
			return Outcome{Spans: dedupe(spans)}
		}
	}
	if c.Backup == nil {
		return Outcome{Fallback: true}
	}
	spans, err := c.Backup.Label(text)
	if err != nil {
		return Outcome{Fallback: true}
	}
	return Outcome{Spans: dedupe(spans), Fallback: true}
}

func dedupe(spans []Span) []Span {
	seen := make(map[string]struct{}, len(spans))
	out := spans[:0]
	for _, s := range spans {
		key := strings.ToLower(s.Text) + "\x00" + s.Label
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
