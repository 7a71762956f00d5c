package labeler

import "testing"

func spanTexts(spans []Span, label string) []string {
	var out []string
	for _, s := range spans {
		if s.Label == label {
			out = append(out, s.Text)
		}
	}
	return out
}

func TestHeuristicCapitalizedRuns(t *testing.T) {
	t.Parallel()
	h := NewHeuristic()

	spans, err := h.Label("so glad Christoph Waltz won tonight, Jodie Foster was great too")
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	people := spanTexts(spans, "PERSON")
	if len(people) != 2 || people[0] != "Christoph Waltz" || people[1] != "Jodie Foster" {
		t.Fatalf("people = %v, want [Christoph Waltz, Jodie Foster]", people)
	}
}

func TestHeuristicBreaksOnCeremonyVocabulary(t *testing.T) {
	t.Parallel()
	h := NewHeuristic()

	// "Golden Globes Amy Poehler" must not fuse into one four-word name.
	spans, err := h.Label("Golden Globes Amy Poehler killing it")
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	people := spanTexts(spans, "PERSON")
	if len(people) != 1 || people[0] != "Amy Poehler" {
		t.Fatalf("people = %v, want [Amy Poehler]", people)
	}
}

func TestHeuristicSkipsSingletonsAndShouting(t *testing.T) {
	t.Parallel()
	h := NewHeuristic()

	spans, err := h.Label("Argo was AMAZING tonight")
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	if len(spans) != 0 {
		t.Fatalf("spans = %v, want none", spans)
	}
}

func TestHeuristicQuotedWork(t *testing.T) {
	t.Parallel()
	h := NewHeuristic()

	spans, err := h.Label(`"Homeland" takes best tv drama`)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	works := spanTexts(spans, "WORK_OF_ART")
	if len(works) != 1 || works[0] != "Homeland" {
		t.Fatalf("works = %v, want [Homeland]", works)
	}
}

func TestChainFallsBack(t *testing.T) {
	t.Parallel()

	c := &Chain{Primary: failing{}, Backup: NewHeuristic()}
	out := c.Extract("congrats to Daniel Day-Lewis on the win")
	if !out.Fallback {
		t.Fatal("expected fallback outcome")
	}
	people := spanTexts(out.Spans, "PERSON")
	if len(people) != 1 || people[0] != "Daniel Day-Lewis" {
		t.Fatalf("people = %v, want [Daniel Day-Lewis]", people)
	}
}

type failing struct{}

func (failing) Label(string) ([]Span, error) {
	return nil, errBoom
}

var errBoom = errTagger("tagger unavailable")

type errTagger string

func (e errTagger) Error() string { return string(e) }
