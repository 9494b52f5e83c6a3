package game

import (
	"github.com/google/uuid"

	"github.com/lox/ninecard/internal/evaluator"
)

// FlatAward is the flat score for winning a matchup outright: a special
// hand against anything, or a clean hand against a foul.
const FlatAward = 10

// LayerResult records one layer of a matchup for display
type LayerResult struct {
	// Winner is uuid.Nil when the layer ties
	Winner uuid.UUID
	AEval  evaluator.Evaluation
	BEval  evaluator.Evaluation
	// Points the layer winner earned, keyed to the winning hand's category
	Points int
}

// MatchupResult is the outcome of comparing two players' arrangements
type MatchupResult struct {
	A, B               uuid.UUID
	FoulA, FoulB       bool
	SpecialA, SpecialB bool
	Layers             [3]LayerResult
	PointsA, PointsB   int
}

// layerPoints returns the points a layer win is worth, determined by the
// winning hand's own category: trios 5, made hands 3, point sums 1 (or 3
// when the winning sum is single-suited).
func layerPoints(win evaluator.Evaluation) int {
	switch win.Category {
	case evaluator.ThreeOfAKind, evaluator.WildThreeOfAKind:
		return 5
	case evaluator.StraightFlush, evaluator.Straight, evaluator.FaceCards:
		return 3
	default:
		if win.SameSuit {
			return 3
		}
		return 1
	}
}

// CompareArrangements scores the matchup between two players. Rules apply
// in order and the first one that fits decides the whole matchup:
//
//	both special        -> draw
//	one special         -> flat 10, even against a foul
//	both foul           -> draw
//	one foul            -> flat 10 to the clean side
//	otherwise           -> layer-by-layer comparison
//
// Neither player is mutated.
func CompareArrangements(a, b *Player) MatchupResult {
	result := MatchupResult{
		A:     a.ID,
		B:     b.ID,
		FoulA: a.Fouled(),
		FoulB: b.Fouled(),
	}
	result.SpecialA = !result.FoulA && HasSpecial(*a.Arrangement)
	result.SpecialB = !result.FoulB && HasSpecial(*b.Arrangement)

	switch {
	case result.SpecialA && result.SpecialB:
		return result
	case result.SpecialA:
		result.PointsA = FlatAward
		return result
	case result.SpecialB:
		result.PointsB = FlatAward
		return result
	case result.FoulA && result.FoulB:
		return result
	case result.FoulA:
		result.PointsB = FlatAward
		return result
	case result.FoulB:
		result.PointsA = FlatAward
		return result
	}

	layersA := a.Arrangement.Layers()
	layersB := b.Arrangement.Layers()
	for i := range layersA {
		evalA := layersA[i].Evaluate()
		evalB := layersB[i].Evaluate()
		layer := LayerResult{AEval: evalA, BEval: evalB}

		switch evaluator.Compare(evalA, evalB) {
		case 1:
			layer.Winner = a.ID
			layer.Points = layerPoints(evalA)
			result.PointsA += layer.Points
		case -1:
			layer.Winner = b.ID
			layer.Points = layerPoints(evalB)
			result.PointsB += layer.Points
		}
		result.Layers[i] = layer
	}
	return result
}

// RoundScore is one player's ledger for a round
type RoundScore struct {
	Player uuid.UUID
	// Opponents maps opponent id to the net points won or lost against them
	Opponents map[uuid.UUID]int
	Total     int
	// CashDelta converts points to currency one-to-one
	CashDelta int
}

// ScoreRound runs the matchup scorer over every unordered pair of the
// given players and aggregates net points per player. Callers pass the
// active (non-bankrupt) seats; totals across all scores always sum to
// zero.
func ScoreRound(players []*Player) []RoundScore {
	scores := make([]RoundScore, len(players))
	for i, p := range players {
		scores[i] = RoundScore{
			Player:    p.ID,
			Opponents: make(map[uuid.UUID]int, len(players)-1),
		}
	}

	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			result := CompareArrangements(players[i], players[j])
			net := result.PointsA - result.PointsB

			scores[i].Opponents[players[j].ID] = net
			scores[i].Total += net
			scores[j].Opponents[players[i].ID] = -net
			scores[j].Total -= net
		}
	}

	for i := range scores {
		scores[i].CashDelta = scores[i].Total
	}
	return scores
}
