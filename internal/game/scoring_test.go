package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/ninecard/internal/evaluator"
)

func testPlayer(t *testing.T, name string) *Player {
	t.Helper()
	return NewPlayer(name, 100)
}

func readyPlayer(t *testing.T, name, top, middle, bottom string) *Player {
	t.Helper()
	p := testPlayer(t, name)
	p.SetArrangement(arrangement(top, middle, bottom))
	require.False(t, p.Fouled(), "test arrangement for %s fouls", name)
	return p
}

func TestCompareArrangementsLayerPoints(t *testing.T) {
	// A: nine points on top, trio of fives, trio of aces.
	a := readyPlayer(t, "a", "2s3d4c", "5s5d5c", "AsAdAc")
	// B: trio of nines on top, trio of tens, trio of jacks.
	b := readyPlayer(t, "b", "9s9d9c", "TsTdTc", "JsJdJc")

	result := CompareArrangements(a, b)
	require.False(t, result.FoulA)
	require.False(t, result.FoulB)

	// Top: B's natural trio beats A's nine regardless of value, 5 points.
	assert.Equal(t, b.ID, result.Layers[0].Winner)
	assert.Equal(t, 5, result.Layers[0].Points)

	// Middle: tens beat fives, 5 points.
	assert.Equal(t, b.ID, result.Layers[1].Winner)
	assert.Equal(t, 5, result.Layers[1].Points)

	// Bottom: aces beat jacks, 5 points.
	assert.Equal(t, a.ID, result.Layers[2].Winner)
	assert.Equal(t, 5, result.Layers[2].Points)

	assert.Equal(t, 5, result.PointsA)
	assert.Equal(t, 10, result.PointsB)
}

func TestCompareArrangementsPointValues(t *testing.T) {
	// Suited nine beats plain zero and earns the 3-point flush bonus.
	a := readyPlayer(t, "a", "2h3h4h", "JsQdKc", "KsKdKc")
	b := readyPlayer(t, "b", "2s3d5c", "JhQcKd", "AsAdAc")

	result := CompareArrangements(a, b)

	assert.Equal(t, a.ID, result.Layers[0].Winner)
	assert.Equal(t, 3, result.Layers[0].Points)

	// Middle straights tie by rule.
	assert.Equal(t, uuid.Nil, result.Layers[1].Winner)
	assert.Equal(t, 0, result.Layers[1].Points)

	// Bottom: aces beat kings.
	assert.Equal(t, b.ID, result.Layers[2].Winner)
	assert.Equal(t, 5, result.Layers[2].Points)

	assert.Equal(t, 3, result.PointsA)
	assert.Equal(t, 5, result.PointsB)
}

func TestCompareArrangementsStraightWinsThree(t *testing.T) {
	a := readyPlayer(t, "a", "2s3d5c", "JsQdKc", "KsKdKc")
	b := readyPlayer(t, "b", "2c4c5d", "Th9h8h", "AsAdAc")

	result := CompareArrangements(a, b)

	// Middle: A's straight beats B's seven points, worth 3.
	require.Equal(t, evaluator.Straight, result.Layers[1].AEval.Category)
	assert.Equal(t, a.ID, result.Layers[1].Winner)
	assert.Equal(t, 3, result.Layers[1].Points)
}

func TestCompareArrangementsFouls(t *testing.T) {
	clean := readyPlayer(t, "clean", "2s3d5c", "2h3h4h", "KsKdKc")

	noArrangement := testPlayer(t, "missing")
	result := CompareArrangements(clean, noArrangement)
	assert.False(t, result.FoulA)
	assert.True(t, result.FoulB)
	assert.Equal(t, FlatAward, result.PointsA)
	assert.Equal(t, 0, result.PointsB)

	invalid := testPlayer(t, "invalid")
	invalid.SetArrangement(arrangement("KsKdKc", "2h3h4h", "2s3d5c"))
	result = CompareArrangements(invalid, clean)
	assert.True(t, result.FoulA)
	assert.Equal(t, FlatAward, result.PointsB)

	result = CompareArrangements(noArrangement, invalid)
	assert.True(t, result.FoulA)
	assert.True(t, result.FoulB)
	assert.Equal(t, 0, result.PointsA)
	assert.Equal(t, 0, result.PointsB)
}

func TestCompareArrangementsSpecialHands(t *testing.T) {
	// Valid arrangement carrying four sevens.
	special := readyPlayer(t, "special", "7s7h2c", "7d7c3s", "KsKdKc")

	normal := readyPlayer(t, "normal", "2s3d5c", "2h3h4h", "AsAdAc")
	result := CompareArrangements(special, normal)
	assert.True(t, result.SpecialA)
	assert.Equal(t, FlatAward, result.PointsA)
	assert.Equal(t, 0, result.PointsB)

	// A special hand beats a foul as well.
	fouled := testPlayer(t, "fouled")
	result = CompareArrangements(special, fouled)
	assert.True(t, result.SpecialA)
	assert.True(t, result.FoulB)
	assert.Equal(t, FlatAward, result.PointsA)

	// Two special hands draw.
	other := readyPlayer(t, "other", "9s9h2d", "9d9c3d", "QsQdQc")
	require.True(t, HasSpecial(*other.Arrangement))
	result = CompareArrangements(special, other)
	assert.Equal(t, 0, result.PointsA)
	assert.Equal(t, 0, result.PointsB)
}

func TestScoreRoundZeroSum(t *testing.T) {
	players := []*Player{
		readyPlayer(t, "a", "2s3d4c", "5s5d5c", "AsAdAc"),
		readyPlayer(t, "b", "9s9d9c", "TsTdTc", "JsJdJc"),
		readyPlayer(t, "c", "2h3h5h", "JhQcKd", "KsKdKc"),
		testPlayer(t, "fouler"),
	}

	scores := ScoreRound(players)
	require.Len(t, scores, 4)

	total := 0
	for _, s := range scores {
		total += s.Total
		assert.Equal(t, s.Total, s.CashDelta)
		assert.Len(t, s.Opponents, 3)
	}
	assert.Zero(t, total, "round scoring must be zero-sum")

	// Ledgers are symmetric: what i records against j, j records negated.
	for i, si := range scores {
		for j, sj := range scores {
			if i == j {
				continue
			}
			assert.Equal(t, si.Opponents[players[j].ID], -sj.Opponents[players[i].ID])
		}
	}
}
