// Package ticket turns a post's candidate names into an evidence ticket: the
// (name, role, award) triples the post supports, plus an accumulated
// confidence score. Low-signal posts yield no ticket at all.
package ticket

import (
	"errors"
	"strings"

	"horse.fit/gala/internal/awards"
	"horse.fit/gala/internal/roles"
)

// Candidate is a labeled name span handed in by the extraction stage.
type Candidate struct {
	Name  string
	Label string // PERSON, WORK_OF_ART, ... empty means unknown
}

// Entry is one classified mention inside a ticket.
type Entry struct {
	Name  string
	Role  roles.Role
	Award string
}

// Ticket is the per-post evidence bundle. Immutable once built.
type Ticket struct {
	PostID     string
	Entries    []Entry
	Confidence int
}

// Weights price each detected signal. The ordering constraint matters more
// than the absolute values: presenters and winners are rarer, cleaner signals
// than nominees.
type Weights struct {
	Presenter int
	Winner    int
	Host      int
	Nominee   int
	// Award is added on top whenever an entry carries a resolved award.
	Award int
}

func DefaultWeights() Weights {
	return Weights{Presenter: 3, Winner: 3, Host: 2, Nominee: 1, Award: 1}
}

func (w Weights) Validate() error {
	if w.Presenter < w.Winner || w.Winner < w.Host || w.Host < w.Nominee || w.Nominee < 0 {
		return errors.New("ticket: weights must satisfy presenter >= winner >= host >= nominee >= 0")
	}
	if w.Award <= 0 {
		return errors.New("ticket: award weight must be positive")
	}
	return nil
}

func (w Weights) roleWeight(r roles.Role) int {
	switch r {
	case roles.Presenter:
		return w.Presenter
	case roles.Winner:
		return w.Winner
	case roles.Host:
		return w.Host
	case roles.Nominee:
		return w.Nominee
	}
	return 0
}

// Builder accumulates tickets across a whole run. It deduplicates identical
// (name, role, award) signatures globally so a viral post retweeted ten
// thousand times counts once. Not safe for concurrent use.
type Builder struct {
	classifier    *roles.Classifier
	weights       Weights
	minConfidence int
	maxNames      int
	seen          map[string]struct{}
}

func NewBuilder(c *roles.Classifier, w Weights, minConfidence, maxNames int) (*Builder, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if maxNames <= 0 {
		maxNames = 10
	}
	return &Builder{
		classifier:    c,
		weights:       w,
		minConfidence: minConfidence,
		maxNames:      maxNames,
		seen:          make(map[string]struct{}),
	}, nil
}

// Build classifies every candidate against the post text and returns the
// resulting ticket. The second return is false when the post is skipped:
// no candidates, too many candidates (listicle spam), or total confidence
// below the minimum. Hypotheses whose award expects a person are discarded
// for candidates the tagger labeled as something else.
func (b *Builder) Build(postID, text string, cands []Candidate) (Ticket, bool) {
	if len(cands) == 0 || len(cands) > b.maxNames {
		return Ticket{}, false
	}

	t := Ticket{PostID: postID}
	for _, cand := range cands {
		for _, h := range b.classifier.Classify(cand.Name, text) {
			if h.Award != "" && awards.ExpectsPerson(h.Award) && cand.Label != "" && cand.Label != "PERSON" {
				continue
			}
			sig := strings.ToLower(cand.Name) + "\x00" + string(h.Role) + "\x00" + h.Award
			if _, dup := b.seen[sig]; dup {
				continue
			}
			b.seen[sig] = struct{}{}
			t.Entries = append(t.Entries, Entry{Name: cand.Name, Role: h.Role, Award: h.Award})
			t.Confidence += b.weights.roleWeight(h.Role)
			if h.Award != "" {
				t.Confidence += b.weights.Award
			}
		}
	}
	if len(t.Entries) == 0 || t.Confidence < b.minConfidence {
		return Ticket{}, false
	}
	return t, true
}
