package ticket

import (
	"testing"

	"horse.fit/gala/internal/awards"
	"horse.fit/gala/internal/roles"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	c := roles.NewClassifier(awards.NewMatcher(awards.FuzzyOptions{}), 90)
	b, err := NewBuilder(c, DefaultWeights(), 1, 10)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	return b
}

func person(name string) []Candidate {
	return []Candidate{{Name: name, Label: "PERSON"}}
}

func TestLabelMismatchDropsCandidate(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t)

	cands := []Candidate{{Name: "Argo", Label: "WORK_OF_ART"}}
	if _, ok := b.Build("1", "Argo wins best director!", cands); ok {
		t.Fatal("a work must not fill a person award")
	}
}

func TestBuildWinnerTicket(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t)

	tk, ok := b.Build("1", "Christoph Waltz wins best supporting actor!", person("Christoph Waltz"))
	if !ok {
		t.Fatal("expected a ticket")
	}
	if len(tk.Entries) != 1 {
		t.Fatalf("entries = %v", tk.Entries)
	}
	e := tk.Entries[0]
	if e.Role != roles.Winner || e.Award == "" {
		t.Fatalf("entry = %+v, want winner with award", e)
	}
	// winner weight plus the award bonus
	if tk.Confidence != DefaultWeights().Winner+DefaultWeights().Award {
		t.Fatalf("confidence = %d", tk.Confidence)
	}
}

func TestNoSignalYieldsNoTicket(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t)

	if _, ok := b.Build("1", "just saw Jessica Chastain at the bar", person("Jessica Chastain")); ok {
		t.Fatal("post with no role and no award must produce zero tickets")
	}
}

func TestSkipsEmptyAndOverstuffedPosts(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t)

	if _, ok := b.Build("1", "Christoph Waltz wins best supporting actor", nil); ok {
		t.Fatal("no names must mean no ticket")
	}
	names := make([]Candidate, 11)
	for i := range names {
		names[i] = Candidate{Name: "Christoph Waltz", Label: "PERSON"}
	}
	if _, ok := b.Build("2", "Christoph Waltz wins best supporting actor", names); ok {
		t.Fatal("more than ten names must mean no ticket")
	}
}

func TestGlobalSignatureDedupe(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t)

	text := "Christoph Waltz wins best supporting actor"
	if _, ok := b.Build("1", text, person("Christoph Waltz")); !ok {
		t.Fatal("first post should ticket")
	}
	// The identical viral post adds nothing new; its ticket dies on the
	// confidence floor.
	if _, ok := b.Build("2", text, person("Christoph Waltz")); ok {
		t.Fatal("duplicate (name, role, award) must not re-ticket")
	}
}

func TestWeightsValidate(t *testing.T) {
	t.Parallel()

	if err := (Weights{Presenter: 1, Winner: 2, Host: 1, Nominee: 0, Award: 1}).Validate(); err == nil {
		t.Error("winner above presenter must be rejected")
	}
	if err := (Weights{Presenter: 3, Winner: 3, Host: 2, Nominee: 1, Award: 0}).Validate(); err == nil {
		t.Error("zero award weight must be rejected")
	}
	if err := DefaultWeights().Validate(); err != nil {
		t.Errorf("default weights invalid: %v", err)
	}
}
