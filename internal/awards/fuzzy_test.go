package awards

import "testing"

func TestResolveFuzzyMangledName(t *testing.T) {
	t.Parallel()
	m := NewMatcher(FuzzyOptions{})

	got := m.ResolveFuzzy("best performnce by an actr in a motion pictre drama")
	want := "best performance by an actor in a motion picture - drama"
	if got != want {
		t.Fatalf("ResolveFuzzy = %q, want %q", got, want)
	}
}

func TestResolveFuzzyPrefixWithTrailingChatter(t *testing.T) {
	t.Parallel()
	m := NewMatcher(FuzzyOptions{})

	got := m.ResolveFuzzy("best foreign language film wins big tonight wow")
	if got != "best foreign language film" {
		t.Fatalf("ResolveFuzzy = %q, want prefix match on foreign film", got)
	}
}

func TestResolveFuzzyRejections(t *testing.T) {
	t.Parallel()
	m := NewMatcher(FuzzyOptions{})

	cases := []string{
		"",
		"best picture",                   // under the word minimum
		"best dressed on the red carpet", // shares only "best" with any category
		"worst movie of the whole year",
	}
	for _, text := range cases {
		if got := m.ResolveFuzzy(text); got != "" {
			t.Errorf("ResolveFuzzy(%q) = %q, want no match", text, got)
		}
	}
}

func TestResolveFuzzyPicksClosestCategory(t *testing.T) {
	t.Parallel()
	m := NewMatcher(FuzzyOptions{})

	// Close to both actor variants; the drama form is strictly closer than
	// the comedy-or-musical one and must win regardless of scan order.
	got := m.ResolveFuzzy("best performance by an actor in a motion picture dramaa")
	want := "best performance by an actor in a motion picture - drama"
	if got != want {
		t.Fatalf("ResolveFuzzy = %q, want %q", got, want)
	}
}
