package textnorm

import (
	"reflect"
	"testing"
)

func TestCleanExpandsTags(t *testing.T) {
	t.Parallel()

	if got := Clean("#RedCarpet looks amazing"); got != "Red Carpet looks amazing" {
		t.Fatalf("unexpected hashtag expansion: %q", got)
	}
	if got := Clean("@kerry_washington presenting"); got != "kerry washington presenting" {
		t.Fatalf("unexpected handle expansion: %q", got)
	}
	if got := Clean("#ABCNews report"); got != "ABC News report" {
		t.Fatalf("unexpected acronym split: %q", got)
	}
}

func TestCleanStripsURLsAndRetweetPrefix(t *testing.T) {
	t.Parallel()

	got := Clean("RT @fan: Christoph Waltz wins! http://t.co/abc123")
	if got != "Christoph Waltz wins!" {
		t.Fatalf("unexpected clean text: %q", got)
	}
}

func TestCleanTransliterates(t *testing.T) {
	t.Parallel()

	if got := Clean("Sofía Vergara présente"); got != "Sofia Vergara presente" {
		t.Fatalf("unexpected transliteration: %q", got)
	}
}

func TestCleanEmptyInput(t *testing.T) {
	t.Parallel()

	if got := Clean(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := Clean("   \t\n "); got != "" {
		t.Fatalf("expected empty output for whitespace, got %q", got)
	}
}

func TestCleanIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"RT @fan: #GoldenGlobes Tina Fey & Amy Poehler http://t.co/x",
		"Christoph   Waltz — best supporting actor…",
		"plain already-clean text",
	}
	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Fatalf("Clean not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeTokens(t *testing.T) {
	t.Parallel()

	n := Normalize("Anne Hathaway WINS Best Supporting Actress!")
	want := []string{"anne", "hathaway", "wins", "best", "supporting", "actress"}
	if !reflect.DeepEqual(n.Tokens, want) {
		t.Fatalf("unexpected tokens: %v", n.Tokens)
	}
	if n.Clean != "Anne Hathaway WINS Best Supporting Actress!" {
		t.Fatalf("unexpected clean view: %q", n.Clean)
	}
}
