// Package pipeline wires the extraction stages end to end: label candidate
// names, classify roles, build tickets, cluster per role, detect co-mention
// communities, and rank the final standings.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"horse.fit/gala/internal/awards"
	"horse.fit/gala/internal/clusterer"
	"horse.fit/gala/internal/config"
	"horse.fit/gala/internal/corpus"
	"horse.fit/gala/internal/globaltime"
	"horse.fit/gala/internal/graph"
	"horse.fit/gala/internal/labeler"
	"horse.fit/gala/internal/ranker"
	"horse.fit/gala/internal/results"
	"horse.fit/gala/internal/roles"
	"horse.fit/gala/internal/ticket"
)

const (
	// discoveredAwardMin is how many posts must repeat a mined "best ..."
	// phrase before it is reported as a discovered award name.
	discoveredAwardMin = 3
	maxDiscovered      = 10
	lpaIterations      = 20
)

type Service struct {
	cfg     *config.Config
	log     zerolog.Logger
	labeler *labeler.Chain
	matcher *awards.Matcher
}

// New builds a Service with the statistical tagger in front of the
// capitalization fallback.
func New(cfg *config.Config, log zerolog.Logger) (*Service, error) {
	return NewWithLabeler(cfg, log, &labeler.Chain{Primary: labeler.NewProse(), Backup: labeler.NewHeuristic()})
}

// NewWithLabeler lets callers substitute the labeling chain; tests use the
// heuristic alone to stay fast and deterministic.
func NewWithLabeler(cfg *config.Config, log zerolog.Logger, chain *labeler.Chain) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("pipeline: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := awards.NewMatcher(awards.FuzzyOptions{
		MaxDistance:    cfg.FuzzyMaxDistance,
		MaxPhraseWords: cfg.FuzzyMaxPhraseWords,
	})
	return &Service{cfg: cfg, log: log, labeler: chain, matcher: m}, nil
}

// Run extracts a full results document from the posts. Per-post failures are
// tolerated and logged; an empty post slice is a caller error.
func (s *Service) Run(ctx context.Context, posts []corpus.Post) (*results.Document, error) {
	if len(posts) == 0 {
		return nil, fmt.Errorf("pipeline: no posts to process")
	}
	started := globaltime.Now()

	classifier := roles.NewClassifier(s.matcher, s.cfg.WindowRadius)
	builder, err := ticket.NewBuilder(classifier, ticket.DefaultWeights(), s.cfg.MinTicketConfidence, s.cfg.MaxNamesPerPost)
	if err != nil {
		return nil, err
	}

	var tickets []ticket.Ticket
	phraseCounts := make(map[string]int)
	for _, post := range posts {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for _, phrase := range awards.BestPhrases(post.Norm.Lower, s.cfg.FuzzyMaxPhraseWords) {
			phraseCounts[phrase]++
		}

		outcome := s.labeler.Extract(post.Norm.Clean)
		cands := make([]ticket.Candidate, 0, len(outcome.Spans))
		for _, span := range outcome.Spans {
			if len(span.Text) >= 2 {
				cands = append(cands, ticket.Candidate{Name: span.Text, Label: span.Label})
			}
		}
		if t, ok := builder.Build(post.ID, post.Norm.Clean, cands); ok {
			tickets = append(tickets, t)
		}
	}
	s.log.Info().Int("posts", len(posts)).Int("tickets", len(tickets)).Msg("ticket generation finished")

	opts := clusterer.Options{
		SimilarityThreshold: s.cfg.SimilarityThreshold,
		PersonOverrideScore: s.cfg.PersonOverrideScore,
	}
	winnerClusters := clusterer.ClusterRole(tickets, roles.Winner, opts)
	nomineeClusters := clusterer.ClusterRole(tickets, roles.Nominee, opts)
	presenterClusters := clusterer.ClusterRole(tickets, roles.Presenter, opts)
	hostClusters := clusterer.ClusterRole(tickets, roles.Host, opts)

	community := s.detectCommunities(tickets, winnerClusters, nomineeClusters, presenterClusters, hostClusters)

	rk, err := ranker.New(ranker.Options{
		NomineesPerAward:   s.cfg.NomineesPerAward,
		PresentersPerAward: s.cfg.PresentersPerAward,
		MaxHosts:           s.cfg.MaxHosts,
	})
	if err != nil {
		return nil, err
	}
	ceremony := rk.Rank(winnerClusters, nomineeClusters, presenterClusters, hostClusters, community)

	doc := results.New(s.cfg.CeremonyName, s.cfg.CeremonyYear)
	doc.Hosts = ceremony.Hosts
	doc.Awards = ceremony.Awards
	doc.DiscoveredAwards = topPhrases(phraseCounts, discoveredAwardMin, maxDiscovered)
	doc.Stats.PostsRead = len(posts)
	doc.Stats.PostsKept = len(posts)
	doc.Stats.Tickets = len(tickets)
	doc.Stats.ElapsedMilli = int(globaltime.Now().Sub(started).Milliseconds())
	return doc, nil
}

// detectCommunities maps every ticket's surfaces to canonical names and runs
// label propagation over the resulting co-mention graph.
func (s *Service) detectCommunities(tickets []ticket.Ticket, clusterSets ...[]*clusterer.Cluster) map[string]struct{} {
	canonicalOf := make(map[string]string)
	for _, set := range clusterSets {
		for _, c := range set {
			for _, alias := range c.Aliases {
				key := strings.ToLower(alias)
				if _, taken := canonicalOf[key]; !taken {
					canonicalOf[key] = c.Canonical
				}
			}
		}
	}

	g := graph.NewCoMention(2)
	for _, t := range tickets {
		names := make([]string, 0, len(t.Entries))
		for _, e := range t.Entries {
			if canon, ok := canonicalOf[strings.ToLower(e.Name)]; ok {
				names = append(names, canon)
			}
		}
		g.Observe(names)
	}
	return g.Members(lpaIterations)
}

// topPhrases keeps mined phrases seen at least min times, most frequent
// first, names tie-broken alphabetically.
func topPhrases(counts map[string]int, min, limit int) []string {
	type pc struct {
		phrase string
		count  int
	}
	list := make([]pc, 0, len(counts))
	for p, c := range counts {
		if c >= min {
			list = append(list, pc{p, c})
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].count != list[j].count {
			return list[i].count > list[j].count
		}
		return list[i].phrase < list[j].phrase
	})
	if len(list) > limit {
		list = list[:limit]
	}
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.phrase
	}
	return out
}
