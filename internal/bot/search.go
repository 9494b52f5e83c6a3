// Package bot finds arrangements for non-human players. The search is
// exhaustive: nine cards yield C(9,3)*C(6,3) = 1680 partitions, each tried
// in all six layer orders, which is cheap enough that pruning would only
// risk the always-optimal guarantee.
package bot

import (
	"sort"

	"github.com/lox/ninecard/internal/deck"
	"github.com/lox/ninecard/internal/game"
)

// specialScore dominates every ordinary arrangement score, so the search
// always prefers a whole-hand bonus.
const specialScore = 10000

// Score is the search heuristic for a complete arrangement: each layer
// contributes (7 - category) * 100 plus its tie-break value, so a category
// step always outweighs any tie-break difference. Special hands score a
// flat dominant constant.
func Score(a game.Arrangement) int {
	if game.HasSpecial(a) {
		return specialScore
	}
	score := 0
	for _, layer := range a.Layers() {
		eval := layer.Evaluate()
		score += (7-int(eval.Category))*100 + eval.Value
	}
	return score
}

// FindBest searches every partition and layer order of a nine-card hand
// and returns the valid arrangement with the highest heuristic score.
// Returns ok=false when the input is not exactly nine cards.
//
// A well-formed nine-card hand always admits a valid arrangement, but if
// the search somehow finds none it falls back to a deterministic simple
// arrangement.
func FindBest(cards []deck.Card) (game.Arrangement, bool) {
	if len(cards) != deck.HandSize {
		return game.Arrangement{}, false
	}

	var best game.Arrangement
	bestScore := -1

	forEachPartition(cards, func(g1, g2, g3 []deck.Card) {
		groups := [3][]deck.Card{g1, g2, g3}
		for _, p := range layerOrders {
			a := game.NewArrangement(groups[p[0]], groups[p[1]], groups[p[2]])
			if !a.Valid() {
				continue
			}
			if s := Score(a); s > bestScore {
				bestScore = s
				best = a
			}
		}
	})

	if bestScore < 0 {
		return SimpleArrangement(cards), true
	}
	return best, true
}

// ChooseDiscard picks which of ten cards to throw away: the one whose
// removal leaves the highest-scoring nine-card arrangement. Ties go to the
// first card found. Returns ok=false when the input is not ten cards.
func ChooseDiscard(cards []deck.Card) (deck.Card, bool) {
	if len(cards) != deck.StarterHandSize {
		return deck.Card{}, false
	}

	var discard deck.Card
	bestScore := -1

	rest := make([]deck.Card, 0, deck.HandSize)
	for i, candidate := range cards {
		rest = rest[:0]
		rest = append(rest, cards[:i]...)
		rest = append(rest, cards[i+1:]...)

		arrangement, ok := FindBest(rest)
		if !ok {
			continue
		}
		if s := Score(arrangement); s > bestScore {
			bestScore = s
			discard = candidate
		}
	}
	return discard, true
}

// SimpleArrangement builds a deterministic arrangement without searching:
// sort by comparison value, strongest three to the bottom, weakest three
// on top. If even that breaks the layer ordering the cards are split
// positionally, which is complete but may foul.
func SimpleArrangement(cards []deck.Card) game.Arrangement {
	if len(cards) != deck.HandSize {
		return game.Arrangement{}
	}

	sorted := append([]deck.Card(nil), cards...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value() > sorted[j].Value()
	})

	a := game.NewArrangement(sorted[6:9], sorted[3:6], sorted[0:3])
	if a.Valid() {
		return a
	}
	return game.NewArrangement(cards[0:3], cards[3:6], cards[6:9])
}

// layerOrders is every assignment of three groups to top/middle/bottom.
// The partition alone does not fix layer identity.
var layerOrders = [6][3]int{
	{0, 1, 2}, {0, 2, 1},
	{1, 0, 2}, {1, 2, 0},
	{2, 0, 1}, {2, 1, 0},
}

// forEachPartition enumerates every split of nine cards into three groups
// of three: C(9,3) choices for the first group, C(6,3) for the second, the
// remainder forming the third.
func forEachPartition(cards []deck.Card, fn func(g1, g2, g3 []deck.Card)) {
	n := len(cards)
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				g1 := []deck.Card{cards[i], cards[j], cards[k]}
				rest := make([]deck.Card, 0, 6)
				for m := 0; m < n; m++ {
					if m != i && m != j && m != k {
						rest = append(rest, cards[m])
					}
				}
				for x := 0; x < 4; x++ {
					for y := x + 1; y < 5; y++ {
						for z := y + 1; z < 6; z++ {
							g2 := []deck.Card{rest[x], rest[y], rest[z]}
							g3 := make([]deck.Card, 0, 3)
							for m := 0; m < 6; m++ {
								if m != x && m != y && m != z {
									g3 = append(g3, rest[m])
								}
							}
							fn(g1, g2, g3)
						}
					}
				}
			}
		}
	}
}
