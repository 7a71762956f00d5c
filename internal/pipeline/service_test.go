package pipeline

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"horse.fit/gala/internal/config"
	"horse.fit/gala/internal/corpus"
	"horse.fit/gala/internal/labeler"
	"horse.fit/gala/internal/textnorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:         "local",
		LogLevel:            "info",
		DBMinConns:          1,
		DBMaxConns:          4,
		CeremonyName:        "Golden Globes",
		CeremonyYear:        2013,
		WindowRadius:        90,
		MinTicketConfidence: 1,
		MaxNamesPerPost:     10,
		SimilarityThreshold: 0.88,
		PersonOverrideScore: 0.90,
		FuzzyMaxDistance:    10,
		FuzzyMaxPhraseWords: 12,
		NomineesPerAward:    5,
		PresentersPerAward:  2,
		MaxHosts:            2,
	}
}

// newTestService uses the heuristic tagger alone: fast, deterministic, no
// statistical model in the loop.
func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := NewWithLabeler(testConfig(), zerolog.Nop(), &labeler.Chain{Backup: labeler.NewHeuristic()})
	if err != nil {
		t.Fatalf("NewWithLabeler: %v", err)
	}
	return s
}

func makePosts(texts ...string) []corpus.Post {
	posts := make([]corpus.Post, len(texts))
	for i, txt := range texts {
		posts[i] = corpus.Post{ID: string(rune('a' + i)), Raw: txt, Norm: textnorm.Normalize(txt)}
	}
	return posts
}

const supportingActor = "best performance by an actor in a supporting role in a motion picture"

func TestRunEndToEnd(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	posts := makePosts(
		"Christoph Waltz wins best supporting actor",
		"so deserved, Tommy Lee Jones nominated for best supporting actor",
		"Bradley Cooper presenting best supporting actor",
		"Amy Poehler and Tina Fey hosting tonight",
		"yay best supporting actor announcement coming",
	)
	doc, err := s.Run(context.Background(), posts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(doc.Hosts) != 2 || doc.Hosts[0] != "Amy Poehler" || doc.Hosts[1] != "Tina Fey" {
		t.Fatalf("hosts = %v", doc.Hosts)
	}

	res, ok := doc.AwardNamed(supportingActor)
	if !ok {
		t.Fatal("supporting actor award missing")
	}
	if res.Winner != "Christoph Waltz" {
		t.Fatalf("winner = %q, want Christoph Waltz", res.Winner)
	}
	found := false
	for _, n := range res.Nominees {
		if n == "Tommy Lee Jones" {
			found = true
		}
	}
	if !found {
		t.Fatalf("nominees = %v, want Tommy Lee Jones present", res.Nominees)
	}
	if len(res.Presenters) != 1 || res.Presenters[0] != "Bradley Cooper" {
		t.Fatalf("presenters = %v", res.Presenters)
	}

	if doc.Stats.Tickets == 0 || doc.Stats.PostsRead != len(posts) {
		t.Fatalf("stats = %+v", doc.Stats)
	}
}

func TestRunMinesDiscoveredAwardNames(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	posts := makePosts(
		"Christoph Waltz wins best supporting actor",
		"Tommy Lee Jones nominated for best supporting actor",
		"Bradley Cooper presenting best supporting actor",
	)
	doc, err := s.Run(context.Background(), posts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(doc.DiscoveredAwards) != 1 || doc.DiscoveredAwards[0] != "best supporting actor" {
		t.Fatalf("discovered = %v", doc.DiscoveredAwards)
	}
}

func TestRunEmptyPostsFails(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	if _, err := s.Run(context.Background(), nil); err == nil {
		t.Fatal("empty input must fail")
	}
}

func TestRunHonorsContextCancellation(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Run(ctx, makePosts("Christoph Waltz wins best supporting actor")); err == nil {
		t.Fatal("cancelled context must abort the run")
	}
}
