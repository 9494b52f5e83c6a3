// Package game holds the rules core: arrangements, whole-hand bonuses and
// round scoring. Everything here is pure; state lives with the caller.
package game

import (
	"strings"

	"github.com/lox/ninecard/internal/deck"
	"github.com/lox/ninecard/internal/evaluator"
)

// LayerSize is the number of cards in each of the three layers
const LayerSize = 3

// Layer is one three-card slot of an arrangement. Fewer than three cards
// means placement is still in progress.
type Layer []deck.Card

// Complete returns true when all three slots are filled
func (l Layer) Complete() bool {
	return len(l) == LayerSize
}

// Evaluate classifies the layer
func (l Layer) Evaluate() evaluator.Evaluation {
	return evaluator.Evaluate(l)
}

// String returns the layer as compact card notation
func (l Layer) String() string {
	parts := make([]string, len(l))
	for i, c := range l {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Arrangement is a player's nine cards split into top, middle and bottom
// layers. Arrangements are value objects: build a new one instead of
// mutating layers in place.
type Arrangement struct {
	Top    Layer
	Middle Layer
	Bottom Layer
}

// NewArrangement builds an arrangement from three card groups, copying the
// slices so later changes to the inputs cannot alias into it.
func NewArrangement(top, middle, bottom []deck.Card) Arrangement {
	return Arrangement{
		Top:    append(Layer(nil), top...),
		Middle: append(Layer(nil), middle...),
		Bottom: append(Layer(nil), bottom...),
	}
}

// Layers returns the three layers in top-to-bottom order
func (a Arrangement) Layers() [3]Layer {
	return [3]Layer{a.Top, a.Middle, a.Bottom}
}

// Cards returns every placed card
func (a Arrangement) Cards() []deck.Card {
	cards := make([]deck.Card, 0, 3*LayerSize)
	cards = append(cards, a.Top...)
	cards = append(cards, a.Middle...)
	cards = append(cards, a.Bottom...)
	return cards
}

// Complete returns true when all nine slots are filled with distinct cards
func (a Arrangement) Complete() bool {
	cards := a.Cards()
	if len(cards) != 3*LayerSize {
		return false
	}
	seen := make(map[int]bool, len(cards))
	for _, c := range cards {
		if seen[c.ID] {
			return false
		}
		seen[c.ID] = true
	}
	return true
}

// Valid reports whether the arrangement is complete and the layers respect
// the strength ordering top ≤ middle ≤ bottom. Equal-strength neighbours
// are allowed.
func (a Arrangement) Valid() bool {
	if !a.Complete() {
		return false
	}
	top := a.Top.Evaluate()
	middle := a.Middle.Evaluate()
	bottom := a.Bottom.Evaluate()

	if evaluator.Compare(top, middle) > 0 {
		return false
	}
	if evaluator.Compare(middle, bottom) > 0 {
		return false
	}
	return true
}

// String renders the arrangement one layer per line, top first
func (a Arrangement) String() string {
	return a.Top.String() + " / " + a.Middle.String() + " / " + a.Bottom.String()
}
