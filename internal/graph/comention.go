// Package graph builds the weighted co-mention graph over canonical names
// and finds its communities by label propagation. Names that the corpus
// keeps mentioning together (same category, same scandal, same photo) form
// communities, which the ranker treats as a weak relevance signal.
package graph

import "sort"

// CoMention accumulates pairwise co-occurrence counts, one Observe call per
// ticket. An edge only materializes once a pair shares at least minShared
// tickets; below that it is coincidence.
type CoMention struct {
	minShared int
	pairs     map[[2]string]int
	nodes     map[string]struct{}
}

func NewCoMention(minShared int) *CoMention {
	if minShared <= 0 {
		minShared = 2
	}
	return &CoMention{
		minShared: minShared,
		pairs:     make(map[[2]string]int),
		nodes:     make(map[string]struct{}),
	}
}

// Observe records one ticket's canonical names. Duplicates within a call
// count once.
func (g *CoMention) Observe(names []string) {
	uniq := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		uniq = append(uniq, n)
		g.nodes[n] = struct{}{}
	}
	for i := 0; i < len(uniq); i++ {
		for j := i + 1; j < len(uniq); j++ {
			a, b := uniq[i], uniq[j]
			if b < a {
				a, b = b, a
			}
			g.pairs[[2]string{a, b}]++
		}
	}
}

// adjacency returns the thresholded weighted graph.
func (g *CoMention) adjacency() map[string]map[string]int {
	adj := make(map[string]map[string]int, len(g.nodes))
	for n := range g.nodes {
		adj[n] = make(map[string]int)
	}
	for pair, w := range g.pairs {
		if w < g.minShared {
			continue
		}
		adj[pair[0]][pair[1]] = w
		adj[pair[1]][pair[0]] = w
	}
	return adj
}

// Communities runs weighted label propagation and returns groups of two or
// more names, each group sorted, groups sorted by first member. Node order
// and tie-breaks are lexicographic, so results are reproducible.
func (g *CoMention) Communities(maxIterations int) [][]string {
	if maxIterations <= 0 {
		maxIterations = 20
	}
	if len(g.nodes) == 0 {
		return nil
	}
	adj := g.adjacency()

	names := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		names = append(names, n)
	}
	sort.Strings(names)

	labels := make(map[string]string, len(names))
	for _, n := range names {
		labels[n] = n
	}

	for iter := 0; iter < maxIterations; iter++ {
		changed := 0
		for _, u := range names {
			neighbors := adj[u]
			if len(neighbors) == 0 {
				continue
			}
			counts := make(map[string]int)
			maxCount := 0
			for v, weight := range neighbors {
				l := labels[v]
				counts[l] += weight
				if counts[l] > maxCount {
					maxCount = counts[l]
				}
			}
			var candidates []string
			for l, c := range counts {
				if c == maxCount {
					candidates = append(candidates, l)
				}
			}
			sort.Strings(candidates)
			best := candidates[len(candidates)-1]
			if labels[u] != best {
				labels[u] = best
				changed++
			}
		}
		if changed == 0 {
			break
		}
	}

	byLabel := make(map[string][]string)
	for _, n := range names {
		byLabel[labels[n]] = append(byLabel[labels[n]], n)
	}
	var out [][]string
	for _, members := range byLabel {
		if len(members) < 2 {
			continue
		}
		sort.Strings(members)
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// Members flattens Communities into a membership set for scoring lookups.
func (g *CoMention) Members(maxIterations int) map[string]struct{} {
	members := make(map[string]struct{})
	for _, community := range g.Communities(maxIterations) {
		for _, n := range community {
			members[n] = struct{}{}
		}
	}
	return members
}
