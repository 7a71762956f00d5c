package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoMentionThreshold(t *testing.T) {
	g := NewCoMention(2)

	// One shared ticket is coincidence, two is an edge.
	g.Observe([]string{"Anne Hathaway", "Hugh Jackman"})
	assert.Empty(t, g.Communities(20))

	g.Observe([]string{"Anne Hathaway", "Hugh Jackman"})
	communities := g.Communities(20)
	assert.Len(t, communities, 1)
	assert.Equal(t, []string{"Anne Hathaway", "Hugh Jackman"}, communities[0])
}

func TestCoMentionDisconnectedGroups(t *testing.T) {
	g := NewCoMention(2)

	for i := 0; i < 3; i++ {
		g.Observe([]string{"Anne Hathaway", "Hugh Jackman", "Russell Crowe"})
		g.Observe([]string{"Lena Dunham", "Adam Driver"})
	}

	communities := g.Communities(20)
	assert.Len(t, communities, 2)
	assert.Equal(t, []string{"Anne Hathaway", "Hugh Jackman", "Russell Crowe"}, communities[0])
	assert.Equal(t, []string{"Adam Driver", "Lena Dunham"}, communities[1])
}

func TestCoMentionMembers(t *testing.T) {
	g := NewCoMention(2)
	g.Observe([]string{"Anne Hathaway", "Hugh Jackman"})
	g.Observe([]string{"Anne Hathaway", "Hugh Jackman"})
	g.Observe([]string{"Loner"})

	members := g.Members(20)
	assert.Contains(t, members, "Anne Hathaway")
	assert.Contains(t, members, "Hugh Jackman")
	assert.NotContains(t, members, "Loner")
}

func TestCoMentionDeterministic(t *testing.T) {
	build := func() *CoMention {
		g := NewCoMention(2)
		for i := 0; i < 4; i++ {
			g.Observe([]string{"A B", "C D", "E F"})
			g.Observe([]string{"C D", "E F"})
			g.Observe([]string{"G H", "I J"})
		}
		return g
	}
	first := build().Communities(20)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, build().Communities(20))
	}
}

func TestCoMentionDuplicatesInOneTicketCountOnce(t *testing.T) {
	g := NewCoMention(2)
	g.Observe([]string{"Anne Hathaway", "Anne Hathaway", "Hugh Jackman"})
	assert.Empty(t, g.Communities(20), "one ticket must not satisfy the two-ticket threshold")
}
