package awards

import (
	"reflect"
	"testing"
)

func TestBestPhrases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want []string
	}{
		{
			"best original song goes to skyfall",
			[]string{"best original song"},
		},
		{
			// A winner verb ends the first phrase, a second "best" starts another.
			"best director wins and best foreign language film takes it",
			[]string{"best foreign language film"},
		},
		{
			// Too short once the boundary cuts it off.
			"best film takes home everything",
			nil,
		},
		{
			"no categories mentioned at all",
			nil,
		},
	}
	for _, tc := range cases {
		if got := BestPhrases(tc.text, 12); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("BestPhrases(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestBestPhrasesNormalizesAlternatives(t *testing.T) {
	t.Parallel()

	a := BestPhrases("best picture musical or comedy", 12)
	b := BestPhrases("best picture comedy or musical", 12)
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("phrase counts = %d, %d, want 1 each", len(a), len(b))
	}
	if a[0] != b[0] {
		t.Errorf("alternative order not canonicalized: %q vs %q", a[0], b[0])
	}
}

func TestBestPhrasesWordCap(t *testing.T) {
	t.Parallel()

	got := BestPhrases("best one two three four five six seven eight nine ten eleven twelve", 5)
	if len(got) != 1 {
		t.Fatalf("phrases = %v, want exactly one", got)
	}
	if got[0] != "best one two three four" {
		t.Errorf("capped phrase = %q", got[0])
	}
}
