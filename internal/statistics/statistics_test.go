package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRound(t *testing.T) {
	stats := New()
	stats.AddRound([]RoundOutcome{
		{Player: "alice", NetPoints: 12, Special: true},
		{Player: "bob", NetPoints: -2},
		{Player: "carol", NetPoints: -10, Fouled: true},
	})
	stats.AddRound([]RoundOutcome{
		{Player: "alice", NetPoints: -4},
		{Player: "bob", NetPoints: 6},
		{Player: "carol", NetPoints: -2, WentBust: true},
	})

	assert.Equal(t, 2, stats.Rounds)

	alice := stats.Player("alice")
	require.NotNil(t, alice)
	assert.Equal(t, 2, alice.Rounds)
	assert.Equal(t, 1, alice.Wins)
	assert.Equal(t, 1, alice.Specials)
	assert.InDelta(t, 4.0, alice.Mean(), 1e-9)

	carol := stats.Player("carol")
	require.NotNil(t, carol)
	assert.Equal(t, 1, carol.Fouls)
	assert.Equal(t, 1, carol.Busts)
	assert.Equal(t, 0, carol.Wins)

	assert.Nil(t, stats.Player("nobody"))
}

func TestVariance(t *testing.T) {
	stats := New()
	for _, net := range []int{4, -2, 10, -12} {
		stats.AddRound([]RoundOutcome{
			{Player: "alice", NetPoints: net},
			{Player: "bob", NetPoints: -net},
		})
	}

	alice := stats.Player("alice")
	require.NotNil(t, alice)
	// Sample variance of {4, -2, 10, -12} around mean 0.
	assert.InDelta(t, 0.0, alice.Mean(), 1e-9)
	assert.InDelta(t, 88.0, alice.Variance(), 1e-9)

	single := New()
	single.AddRound([]RoundOutcome{{Player: "solo", NetPoints: 5}})
	assert.Zero(t, single.Player("solo").Variance())
}

func TestMerge(t *testing.T) {
	a := New()
	a.AddRound([]RoundOutcome{
		{Player: "alice", NetPoints: 3},
		{Player: "bob", NetPoints: -3},
	})

	b := New()
	b.AddRound([]RoundOutcome{
		{Player: "alice", NetPoints: -1, Fouled: true},
		{Player: "bob", NetPoints: 1},
	})
	b.AddRound([]RoundOutcome{
		{Player: "alice", NetPoints: 2},
		{Player: "carol", NetPoints: -2},
	})

	a.Merge(b)

	assert.Equal(t, 3, a.Rounds)
	assert.Equal(t, []string{"alice", "bob", "carol"}, a.Names())

	alice := a.Player("alice")
	assert.Equal(t, 3, alice.Rounds)
	assert.Equal(t, 2, alice.Wins)
	assert.Equal(t, 1, alice.Fouls)
	assert.InDelta(t, 4.0, alice.Sum, 1e-9)
}

func TestValidate(t *testing.T) {
	stats := New()
	assert.Error(t, stats.Validate(), "no rounds recorded")

	stats.AddRound([]RoundOutcome{
		{Player: "alice", NetPoints: 7},
		{Player: "bob", NetPoints: -7},
	})
	assert.NoError(t, stats.Validate())

	stats.AddRound([]RoundOutcome{
		{Player: "alice", NetPoints: 5},
		{Player: "bob", NetPoints: -4},
	})
	assert.Error(t, stats.Validate(), "net points no longer cancel")
}
