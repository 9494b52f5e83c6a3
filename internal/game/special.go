package game

import (
	"github.com/lox/ninecard/internal/evaluator"
)

// AllNines reports whether every layer is a wildcard-free nine. A joker
// anywhere in the nine cards disqualifies the bonus even though normal
// evaluation would score its layer as a nine; the bonus rewards only the
// natural hand.
func AllNines(a Arrangement) bool {
	for _, layer := range a.Layers() {
		if !layer.Complete() {
			return false
		}
		for _, c := range layer {
			if c.Wild {
				return false
			}
		}
		eval := layer.Evaluate()
		if eval.Category != evaluator.Points || eval.Value < 9 {
			return false
		}
	}
	return true
}

// FourOfAKind reports whether some rank appears at least four times across
// the nine placed cards. Jokers never count towards the four.
func FourOfAKind(a Arrangement) bool {
	counts := make(map[int]int)
	for _, c := range a.Cards() {
		if c.Wild {
			continue
		}
		counts[int(c.Rank)]++
		if counts[int(c.Rank)] >= 4 {
			return true
		}
	}
	return false
}

// HasSpecial reports whether the arrangement carries a whole-hand bonus.
// The two bonuses are alternatives, never additive.
func HasSpecial(a Arrangement) bool {
	return FourOfAKind(a) || AllNines(a)
}
