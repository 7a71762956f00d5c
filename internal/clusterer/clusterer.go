// Package clusterer consolidates noisy name variants into canonical entities,
// one namespace per role. Matching is tiered: exact alias-index hits, then a
// blended similarity score, then a surname-plus-initial override for person
// names the score alone cannot bridge.
package clusterer

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"horse.fit/gala/internal/roles"
	"horse.fit/gala/internal/ticket"
)

// Evidence is one supporting mention for a cluster. Confidence is the score
// of the ticket that carried the mention.
type Evidence struct {
	PostID     string
	Surface    string
	Award      string
	Confidence int
}

// Cluster is one consolidated entity within a role namespace. Canonical is
// re-elected from the full alias set after every run, so it is stable for a
// given mention sequence.
type Cluster struct {
	Role      roles.Role
	Canonical string
	Aliases   []string
	Evidence  []Evidence
}

// Options tune the merge thresholds. Zero values take the calibrated
// defaults.
type Options struct {
	// SimilarityThreshold is the minimum blended score for a similarity
	// merge (default 0.88).
	SimilarityThreshold float64
	// PersonOverrideScore is the confidence recorded for surname-override
	// merges (default 0.90). It is reported, not compared.
	PersonOverrideScore float64
}

func (o Options) withDefaults() Options {
	if o.SimilarityThreshold <= 0 {
		o.SimilarityThreshold = 0.88
	}
	if o.PersonOverrideScore <= 0 {
		o.PersonOverrideScore = 0.90
	}
	return o
}

// ClusterRole groups every mention of the given role across the tickets.
// Ticket order is the only source of nondeterminism the caller controls:
// the same sequence always yields the same clusters with the same
// canonical names.
func ClusterRole(tickets []ticket.Ticket, role roles.Role, opts Options) []*Cluster {
	b := &builder{opts: opts.withDefaults(), role: role, index: make(map[string]int)}
	for _, t := range tickets {
		for _, e := range t.Entries {
			if e.Role != role {
				continue
			}
			b.add(e.Name, Evidence{PostID: t.PostID, Surface: e.Name, Award: e.Award, Confidence: t.Confidence})
		}
	}
	for _, c := range b.clusters {
		c.Aliases = dedupeAliases(c.Aliases)
		c.Canonical = electCanonical(c.Aliases)
	}
	return b.clusters
}

type builder struct {
	opts     Options
	role     roles.Role
	clusters []*Cluster
	index    map[string]int
}

func (b *builder) add(surface string, ev Evidence) {
	key := normalizeKey(surface)
	if key == "" {
		return
	}

	if idx, hit := b.index[key]; hit {
		b.join(idx, surface, key, ev)
		return
	}

	idx, score := b.closest(key)
	switch {
	case idx >= 0 && score >= b.opts.SimilarityThreshold:
		b.join(idx, surface, key, ev)
	case idx >= 0 && b.personOverride(idx, surface):
		b.join(idx, surface, key, ev)
	default:
		b.clusters = append(b.clusters, &Cluster{Role: b.role})
		b.join(len(b.clusters)-1, surface, key, ev)
	}
}

// closest scans clusters in creation order and keeps the strictly best
// score, so similarity ties resolve to the earliest-created cluster.
func (b *builder) closest(key string) (int, float64) {
	bestIdx, bestScore := -1, 0.0
	for i, c := range b.clusters {
		for _, alias := range c.Aliases {
			if s := similarity(key, normalizeKey(alias)); s > bestScore {
				bestIdx, bestScore = i, s
			}
		}
	}
	return bestIdx, bestScore
}

// personOverride bridges nickname-scale gaps the blended score cannot:
// both names person-like, identical last token, matching first initial.
func (b *builder) personOverride(idx int, surface string) bool {
	cand := stripNoise(surface)
	if !personLike(cand) {
		return false
	}
	for _, alias := range b.clusters[idx].Aliases {
		known := stripNoise(alias)
		if !personLike(known) {
			continue
		}
		ct, kt := strings.Fields(strings.ToLower(cand)), strings.Fields(strings.ToLower(known))
		if ct[len(ct)-1] != kt[len(kt)-1] {
			continue
		}
		if firstInitial(ct[0]) == firstInitial(kt[0]) {
			return true
		}
	}
	return false
}

func firstInitial(token string) rune {
	for _, r := range token {
		return r
	}
	return 0
}

func (b *builder) join(idx int, surface, key string, ev Evidence) {
	c := b.clusters[idx]
	c.Evidence = append(c.Evidence, ev)
	c.Aliases = append(c.Aliases, surface)
	b.index[key] = idx
	for _, derived := range derivedKeys(stripNoise(surface)) {
		if _, taken := b.index[derived]; !taken {
			b.index[derived] = idx
		}
	}
}

// derivedKeys produces the short forms people actually type for "First Last":
// the bare surname and the "f. last" initialism.
func derivedKeys(display string) []string {
	tokens := strings.Fields(strings.ToLower(display))
	if len(tokens) != 2 || !personLike(display) {
		return nil
	}
	first, last := tokens[0], tokens[1]
	return []string{last, string(firstInitial(first)) + " " + last}
}

func dedupeAliases(aliases []string) []string {
	seen := make(map[string]struct{}, len(aliases))
	out := aliases[:0]
	for _, a := range aliases {
		k := strings.ToLower(a)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, a)
	}
	return out
}

var titleCaser = cases.Title(language.English)

// electCanonical picks the cluster's display name from its noise-stripped
// alias forms: person-like beats not, then more tokens, then longer string,
// then lexicographic for a total order. All-lowercase winners get
// title-cased.
func electCanonical(aliases []string) string {
	forms := make([]string, 0, len(aliases))
	for _, a := range aliases {
		if f := stripNoise(a); f != "" {
			forms = append(forms, f)
		}
	}
	if len(forms) == 0 {
		return ""
	}
	sort.SliceStable(forms, func(i, j int) bool {
		pi, pj := personLike(forms[i]), personLike(forms[j])
		if pi != pj {
			return pi
		}
		ti, tj := len(strings.Fields(forms[i])), len(strings.Fields(forms[j]))
		if ti != tj {
			return ti > tj
		}
		if len(forms[i]) != len(forms[j]) {
			return len(forms[i]) > len(forms[j])
		}
		return forms[i] < forms[j]
	})
	winner := forms[0]
	if winner == strings.ToLower(winner) {
		winner = titleCaser.String(winner)
	}
	return winner
}
