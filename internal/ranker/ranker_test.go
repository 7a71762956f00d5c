package ranker

import (
	"testing"

	"horse.fit/gala/internal/clusterer"
	"horse.fit/gala/internal/roles"

	"horse.fit/gala/internal/awards"
)

const supportingActor = "best performance by an actor in a supporting role in a motion picture"

func cluster(role roles.Role, name, award string, mentions, conf int) *clusterer.Cluster {
	c := &clusterer.Cluster{Role: role, Canonical: name}
	for i := 0; i < mentions; i++ {
		c.Evidence = append(c.Evidence, clusterer.Evidence{PostID: "p", Surface: name, Award: award, Confidence: conf})
	}
	return c
}

func newTestRanker(t *testing.T) *Ranker {
	t.Helper()
	r, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func findAward(t *testing.T, c Ceremony, award string) AwardResult {
	t.Helper()
	for _, a := range c.Awards {
		if a.Award == award {
			return a
		}
	}
	t.Fatalf("award %q missing from output", award)
	return AwardResult{}
}

func TestRankWinnerBeatsNominee(t *testing.T) {
	t.Parallel()
	r := newTestRanker(t)

	winners := []*clusterer.Cluster{cluster(roles.Winner, "Christoph Waltz", supportingActor, 3, 4)}
	nominees := []*clusterer.Cluster{
		cluster(roles.Nominee, "Tommy Lee Jones", supportingActor, 4, 2),
		cluster(roles.Nominee, "Alan Arkin", supportingActor, 1, 2),
	}
	c := r.Rank(winners, nominees, nil, nil, nil)
	res := findAward(t, c, supportingActor)

	if res.Winner != "Christoph Waltz" {
		t.Fatalf("winner = %q, want Christoph Waltz", res.Winner)
	}
	if len(res.Nominees) != 3 || res.Nominees[0] != "Christoph Waltz" {
		t.Fatalf("nominees = %v", res.Nominees)
	}
}

func TestRankTruncationAndTieBreak(t *testing.T) {
	t.Parallel()
	r := newTestRanker(t)

	var nominees []*clusterer.Cluster
	for _, n := range []string{"Fay", "Bea", "Cal", "Ada", "Eve", "Dot", "Gil"} {
		nominees = append(nominees, cluster(roles.Nominee, n, supportingActor, 2, 2))
	}
	res := findAward(t, r.Rank(nil, nominees, nil, nil, nil), supportingActor)

	if len(res.Nominees) != 5 {
		t.Fatalf("nominees = %v, want 5", res.Nominees)
	}
	// Identical evidence everywhere, so the order is purely lexicographic.
	want := []string{"Ada", "Bea", "Cal", "Dot", "Eve"}
	for i, n := range want {
		if res.Nominees[i] != n {
			t.Fatalf("nominees = %v, want %v", res.Nominees, want)
		}
	}
}

func TestWinnerExcludedFromPresenters(t *testing.T) {
	t.Parallel()
	r := newTestRanker(t)

	winners := []*clusterer.Cluster{cluster(roles.Winner, "Christoph Waltz", supportingActor, 3, 4)}
	presenters := []*clusterer.Cluster{
		cluster(roles.Presenter, "Christoph Waltz", supportingActor, 5, 4),
		cluster(roles.Presenter, "Bradley Cooper", supportingActor, 2, 4),
	}
	res := findAward(t, r.Rank(winners, nil, presenters, nil, nil), supportingActor)

	if res.Winner != "Christoph Waltz" {
		t.Fatalf("winner = %q", res.Winner)
	}
	if len(res.Presenters) != 1 || res.Presenters[0] != "Bradley Cooper" {
		t.Fatalf("presenters = %v, want [Bradley Cooper]", res.Presenters)
	}
}

func TestCommunityBonusBreaksApartEqualCandidates(t *testing.T) {
	t.Parallel()
	r := newTestRanker(t)

	nominees := []*clusterer.Cluster{
		cluster(roles.Nominee, "Zed Solo", supportingActor, 2, 2),
		cluster(roles.Nominee, "Amy Adams", supportingActor, 2, 2),
	}
	community := map[string]struct{}{"Zed Solo": {}}
	res := findAward(t, r.Rank(nil, nominees, nil, nil, community), supportingActor)

	// Without the bonus Amy Adams wins the lexicographic tie; with it the
	// community member ranks first.
	if res.Nominees[0] != "Zed Solo" {
		t.Fatalf("nominees = %v, want Zed Solo first", res.Nominees)
	}
}

func TestEveryCanonicalAwardAppears(t *testing.T) {
	t.Parallel()
	r := newTestRanker(t)

	c := r.Rank(nil, nil, nil, nil, nil)
	if len(c.Awards) != len(awards.Canonical) {
		t.Fatalf("awards = %d, want %d", len(c.Awards), len(awards.Canonical))
	}
	for i, res := range c.Awards {
		if res.Award != awards.Canonical[i] {
			t.Fatalf("award[%d] = %q, want %q", i, res.Award, awards.Canonical[i])
		}
		if res.Nominees == nil || res.Presenters == nil {
			t.Fatalf("award %q has nil lists", res.Award)
		}
	}
}

func TestRankHosts(t *testing.T) {
	t.Parallel()
	r := newTestRanker(t)

	hosts := []*clusterer.Cluster{
		cluster(roles.Host, "Amy Poehler", "", 6, 2),
		cluster(roles.Host, "Tina Fey", "", 5, 2),
		cluster(roles.Host, "Random Heckler", "", 1, 2),
	}
	c := r.Rank(nil, nil, nil, hosts, nil)
	if len(c.Hosts) != 2 || c.Hosts[0] != "Amy Poehler" || c.Hosts[1] != "Tina Fey" {
		t.Fatalf("hosts = %v, want [Amy Poehler Tina Fey]", c.Hosts)
	}
}

func TestWeightsValidate(t *testing.T) {
	t.Parallel()

	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights: %v", err)
	}
	bad := Weights{Frequency: 0.5, Distinctiveness: 0.2, Confidence: 0.2, Community: 0.2, Category: 0.1}
	if err := bad.Validate(); err == nil {
		t.Fatal("weights summing past 1 must be rejected")
	}
}
