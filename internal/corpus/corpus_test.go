package corpus

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadArrayCorpus(t *testing.T) {
	t.Parallel()
	l := &Loader{Log: zerolog.Nop()}

	in := `[
		{"id": 1, "text": "Christoph Waltz wins best supporting actor", "user": {"screen_name": "fan"}},
		{"id": "2", "text": "   "},
		{"nope": true},
		{"id": 3, "text": "Tina Fey and Amy Poehler hosting", "timestamp_ms": "1358129400000"}
	]`
	posts, stats, err := l.Load(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.Total != 4 || stats.Kept != 2 || stats.Malformed != 2 {
		t.Fatalf("stats = %+v", stats)
	}
	if posts[0].ID != "1" || posts[0].Author != "fan" {
		t.Fatalf("post[0] = %+v", posts[0])
	}
	if posts[1].TimestampMS != 1358129400000 {
		t.Fatalf("post[1].TimestampMS = %d", posts[1].TimestampMS)
	}
}

func TestLoadLineDelimitedCorpus(t *testing.T) {
	t.Parallel()
	l := &Loader{Log: zerolog.Nop()}

	in := `{"id": 1, "text": "best director goes to Ben Affleck"}
{"id": 2, "text": "Argo wins best picture drama"}
`
	posts, stats, err := l.Load(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.Kept != 2 || len(posts) != 2 {
		t.Fatalf("stats = %+v, posts = %d", stats, len(posts))
	}
	if posts[1].Norm.Clean == "" {
		t.Fatal("posts must carry normalized text")
	}
}

func TestLoadEmptyCorpusFails(t *testing.T) {
	t.Parallel()
	l := &Loader{Log: zerolog.Nop()}

	if _, _, err := l.Load(strings.NewReader("[]")); err == nil {
		t.Fatal("empty corpus must fail")
	}
	if _, _, err := l.Load(strings.NewReader(`[{"broken": true}]`)); err == nil {
		t.Fatal("all-malformed corpus must fail")
	}
	if _, _, err := l.Load(strings.NewReader("")); err == nil {
		t.Fatal("zero bytes must fail")
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	t.Parallel()
	l := &Loader{Log: zerolog.Nop()}

	if _, _, err := l.LoadFile("/does/not/exist.json"); err == nil {
		t.Fatal("missing corpus file must fail")
	}
}
