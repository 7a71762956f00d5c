// Package ranker turns role clusters into the final per-award nominee,
// winner, and presenter lists, plus the ceremony hosts. Candidates are
// scored by a fixed convex blend of weak signals; no single signal decides.
package ranker

import (
	"errors"
	"math"
	"sort"

	"horse.fit/gala/internal/awards"
	"horse.fit/gala/internal/clusterer"
)

// Weights blend the candidate signals. They must be non-negative and sum
// to 1.
type Weights struct {
	Frequency       float64
	Distinctiveness float64
	Confidence      float64
	Community       float64
	Category        float64
}

func DefaultWeights() Weights {
	return Weights{Frequency: 0.35, Distinctiveness: 0.25, Confidence: 0.20, Community: 0.10, Category: 0.10}
}

func (w Weights) Validate() error {
	if w.Frequency < 0 || w.Distinctiveness < 0 || w.Confidence < 0 || w.Community < 0 || w.Category < 0 {
		return errors.New("ranker: weights must be non-negative")
	}
	sum := w.Frequency + w.Distinctiveness + w.Confidence + w.Community + w.Category
	if math.Abs(sum-1) > 1e-9 {
		return errors.New("ranker: weights must sum to 1")
	}
	return nil
}

// AwardResult is one category's final standings.
type AwardResult struct {
	Award      string   `json:"award"`
	Winner     string   `json:"winner,omitempty"`
	Nominees   []string `json:"nominees"`
	Presenters []string `json:"presenters"`
}

// Ceremony is the full ranked output, awards in the fixed taxonomy order.
type Ceremony struct {
	Hosts  []string      `json:"hosts"`
	Awards []AwardResult `json:"awards"`
}

type Options struct {
	Weights            Weights
	NomineesPerAward   int
	PresentersPerAward int
	MaxHosts           int
}

func (o Options) withDefaults() Options {
	if o.Weights == (Weights{}) {
		o.Weights = DefaultWeights()
	}
	if o.NomineesPerAward <= 0 {
		o.NomineesPerAward = 5
	}
	if o.PresentersPerAward <= 0 {
		o.PresentersPerAward = 2
	}
	if o.MaxHosts <= 0 {
		o.MaxHosts = 2
	}
	return o
}

type Ranker struct {
	opts Options
}

func New(opts Options) (*Ranker, error) {
	opts = opts.withDefaults()
	if err := opts.Weights.Validate(); err != nil {
		return nil, err
	}
	return &Ranker{opts: opts}, nil
}

// candidate aggregates one canonical name's evidence within one award,
// across the winner and nominee namespaces.
type candidate struct {
	name            string
	winnerMentions  int
	nomineeMentions int
	confidenceSum   int
}

func (c *candidate) total() int { return c.winnerMentions + c.nomineeMentions }

// Rank produces the ceremony standings. Every canonical award appears in
// the output, empty-handed categories included, in the fixed declared order.
// community is the co-mention membership set keyed by canonical name.
func (r *Ranker) Rank(winners, nominees, presenters, hosts []*clusterer.Cluster, community map[string]struct{}) Ceremony {
	byAward := make(map[string]map[string]*candidate)
	collect := func(clusters []*clusterer.Cluster, asWinner bool) {
		for _, c := range clusters {
			for _, ev := range c.Evidence {
				if ev.Award == "" || !awards.IsCanonical(ev.Award) {
					continue
				}
				cands := byAward[ev.Award]
				if cands == nil {
					cands = make(map[string]*candidate)
					byAward[ev.Award] = cands
				}
				cand := cands[c.Canonical]
				if cand == nil {
					cand = &candidate{name: c.Canonical}
					cands[c.Canonical] = cand
				}
				if asWinner {
					cand.winnerMentions++
				} else {
					cand.nomineeMentions++
				}
				cand.confidenceSum += ev.Confidence
			}
		}
	}
	collect(winners, true)
	collect(nominees, false)

	presentersByAward := collectPresenters(presenters)

	ceremony := Ceremony{Hosts: r.rankHosts(hosts)}
	for _, award := range awards.Canonical {
		res := AwardResult{Award: award, Nominees: []string{}, Presenters: []string{}}

		ranked := r.scoreAndSort(byAward[award], community)
		if len(ranked) > r.opts.NomineesPerAward {
			ranked = ranked[:r.opts.NomineesPerAward]
		}
		for _, c := range ranked {
			res.Nominees = append(res.Nominees, c.name)
		}
		if len(ranked) > 0 {
			res.Winner = ranked[0].name
		}

		pres := presentersByAward[award]
		if len(pres) > r.opts.PresentersPerAward {
			pres = pres[:r.opts.PresentersPerAward]
		}
		// A recorded winner never also presents their own award.
		for _, p := range pres {
			if p == res.Winner {
				continue
			}
			res.Presenters = append(res.Presenters, p)
		}

		ceremony.Awards = append(ceremony.Awards, res)
	}
	return ceremony
}

func (r *Ranker) scoreAndSort(cands map[string]*candidate, community map[string]struct{}) []*candidate {
	if len(cands) == 0 {
		return nil
	}
	list := make([]*candidate, 0, len(cands))
	maxTotal, maxAvgConf := 0, 0.0
	for _, c := range cands {
		list = append(list, c)
		if c.total() > maxTotal {
			maxTotal = c.total()
		}
		if avg := float64(c.confidenceSum) / float64(c.total()); avg > maxAvgConf {
			maxAvgConf = avg
		}
	}

	w := r.opts.Weights
	score := func(c *candidate) float64 {
		total := float64(c.total())
		freq := total / float64(maxTotal)
		// Winner-tagged mentions are worth twice a nominee-tagged one here.
		distinct := (float64(c.winnerMentions) + 0.5*float64(c.nomineeMentions)) / total
		conf := 0.0
		if maxAvgConf > 0 {
			conf = (float64(c.confidenceSum) / total) / maxAvgConf
		}
		comm := 0.0
		if _, ok := community[c.name]; ok {
			comm = 1
		}
		cat := 0.0
		switch {
		case c.winnerMentions > 0:
			cat = 1
		case c.nomineeMentions > 0:
			cat = 0.5
		}
		return w.Frequency*freq + w.Distinctiveness*distinct + w.Confidence*conf + w.Community*comm + w.Category*cat
	}

	scores := make(map[string]float64, len(list))
	for _, c := range list {
		scores[c.name] = score(c)
	}
	sort.Slice(list, func(i, j int) bool {
		si, sj := scores[list[i].name], scores[list[j].name]
		if si != sj {
			return si > sj
		}
		return list[i].name < list[j].name
	})
	return list
}

// collectPresenters ranks each award's presenter clusters by mention count,
// then accumulated confidence, then name.
func collectPresenters(clusters []*clusterer.Cluster) map[string][]string {
	type pcand struct {
		name     string
		mentions int
		conf     int
	}
	byAward := make(map[string]map[string]*pcand)
	for _, c := range clusters {
		for _, ev := range c.Evidence {
			if ev.Award == "" || !awards.IsCanonical(ev.Award) {
				continue
			}
			cands := byAward[ev.Award]
			if cands == nil {
				cands = make(map[string]*pcand)
				byAward[ev.Award] = cands
			}
			p := cands[c.Canonical]
			if p == nil {
				p = &pcand{name: c.Canonical}
				cands[c.Canonical] = p
			}
			p.mentions++
			p.conf += ev.Confidence
		}
	}
	out := make(map[string][]string, len(byAward))
	for award, cands := range byAward {
		list := make([]*pcand, 0, len(cands))
		for _, p := range cands {
			list = append(list, p)
		}
		sort.Slice(list, func(i, j int) bool {
			if list[i].mentions != list[j].mentions {
				return list[i].mentions > list[j].mentions
			}
			if list[i].conf != list[j].conf {
				return list[i].conf > list[j].conf
			}
			return list[i].name < list[j].name
		})
		names := make([]string, len(list))
		for i, p := range list {
			names[i] = p.name
		}
		out[award] = names
	}
	return out
}

func (r *Ranker) rankHosts(clusters []*clusterer.Cluster) []string {
	type hcand struct {
		name     string
		mentions int
	}
	list := make([]*hcand, 0, len(clusters))
	for _, c := range clusters {
		if c.Canonical == "" {
			continue
		}
		list = append(list, &hcand{name: c.Canonical, mentions: len(c.Evidence)})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].mentions != list[j].mentions {
			return list[i].mentions > list[j].mentions
		}
		return list[i].name < list[j].name
	})
	if len(list) > r.opts.MaxHosts {
		list = list[:r.opts.MaxHosts]
	}
	hosts := make([]string, len(list))
	for i, h := range list {
		hosts[i] = h.name
	}
	return hosts
}
