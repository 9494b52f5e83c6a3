// Package evaluator classifies three-card groups into the six ranked hand
// categories used by the nine-card arrangement game and compares the results.
package evaluator

import (
	"fmt"

	"github.com/lox/ninecard/internal/deck"
)

// Category is a ranked three-card hand classification. Lower is stronger.
type Category int

const (
	// ThreeOfAKind is a natural trio: three non-wild cards of one rank.
	ThreeOfAKind Category = iota + 1
	// StraightFlush is J-Q-K with all non-wild cards in one suit.
	StraightFlush
	// Straight is J-Q-K in mixed suits.
	Straight
	// WildThreeOfAKind is a trio completed by one or more jokers.
	WildThreeOfAKind
	// FaceCards is three cards all from {J, Q, K} (jokers count).
	FaceCards
	// Points is the default: card values summed modulo ten.
	Points
)

// String returns a description of the category
func (c Category) String() string {
	switch c {
	case ThreeOfAKind:
		return "Three of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case Straight:
		return "Straight"
	case WildThreeOfAKind:
		return "Wild Three of a Kind"
	case FaceCards:
		return "Face Cards"
	case Points:
		return "Points"
	default:
		return "Unknown"
	}
}

// straightValue is the fixed tie-break value carried by both J-Q-K
// categories; two hands of the same J-Q-K category always tie.
const straightValue = 100

// Evaluation is the classification of one three-card group.
type Evaluation struct {
	Category Category
	// Value is the tie-break value within the category.
	Value int
	// SameSuit is set for Points hands whose non-wild cards share a suit.
	// It is what upgrades a winning Points layer from 1 point to 3.
	SameSuit bool
	Label    string
}

// Evaluate classifies an unordered three-card group. The first matching
// case wins:
//
//  1. natural trio
//  2. J-Q-K, one suit
//  3. J-Q-K, mixed suits
//  4. trio completed by jokers
//  5. three face cards
//  6. values summed modulo ten
//
// Anything other than exactly three cards yields the weakest possible
// sentinel evaluation rather than an error; callers sit on display paths
// where degrading beats failing.
func Evaluate(cards []deck.Card) Evaluation {
	if len(cards) != 3 {
		return Evaluation{Category: Points, Value: 0, Label: "Invalid"}
	}

	var standard []deck.Card
	wilds := 0
	for _, c := range cards {
		if c.Wild {
			wilds++
		} else {
			standard = append(standard, c)
		}
	}

	sameSuit := true
	for i := 1; i < len(standard); i++ {
		if standard[i].Suit != standard[0].Suit {
			sameSuit = false
			break
		}
	}

	if wilds == 0 && sameRank(standard) {
		r := standard[0].Rank
		return Evaluation{
			Category: ThreeOfAKind,
			Value:    standard[0].Value(),
			Label:    fmt.Sprintf("Three of a Kind, %ss", r),
		}
	}

	// Three jokers are a wild trio, not a J-Q-K straight.
	if len(standard) > 0 && isJQK(standard) {
		if sameSuit {
			return Evaluation{
				Category: StraightFlush,
				Value:    straightValue,
				Label:    "Straight Flush J-Q-K",
			}
		}
		return Evaluation{
			Category: Straight,
			Value:    straightValue,
			Label:    "Straight J-Q-K",
		}
	}

	if wilds > 0 && sameRank(standard) {
		value := 0
		label := "Three of a Kind, wild"
		if len(standard) > 0 {
			value = standard[0].Value()
			label = fmt.Sprintf("Three of a Kind, %ss (wild)", standard[0].Rank)
		}
		return Evaluation{
			Category: WildThreeOfAKind,
			Value:    value,
			Label:    label,
		}
	}

	if allFaces(standard) {
		value := 0
		for _, c := range standard {
			value += c.Value()
		}
		return Evaluation{
			Category: FaceCards,
			Value:    value,
			Label:    "Three Face Cards",
		}
	}

	value := 0
	for _, c := range standard {
		value += c.ScoreValue()
	}
	value %= 10
	// A joker can always complete the best possible sum.
	if wilds > 0 {
		value = 9
	}
	return Evaluation{
		Category: Points,
		Value:    value,
		SameSuit: sameSuit,
		Label:    fmt.Sprintf("%d Points", value),
	}
}

// Compare returns 1 if a is the stronger hand, -1 if b is, and 0 on a tie.
// A lower category always wins; within a category the tie-break value
// decides, except that the two J-Q-K categories tie unconditionally.
func Compare(a, b Evaluation) int {
	if a.Category != b.Category {
		if a.Category < b.Category {
			return 1
		}
		return -1
	}
	if a.Category == StraightFlush || a.Category == Straight {
		return 0
	}
	switch {
	case a.Value > b.Value:
		return 1
	case a.Value < b.Value:
		return -1
	default:
		return 0
	}
}

// sameRank reports whether every card shares one rank. Trivially true for
// zero or one card (jokers cover the rest of a trio).
func sameRank(cards []deck.Card) bool {
	for i := 1; i < len(cards); i++ {
		if cards[i].Rank != cards[0].Rank {
			return false
		}
	}
	return true
}

// isJQK reports whether the non-wild cards are distinct members of
// {J, Q, K}, so that jokers can complete exactly one of each.
func isJQK(standard []deck.Card) bool {
	var seen [3]bool
	for _, c := range standard {
		if !c.Rank.IsFace() {
			return false
		}
		idx := int(c.Rank - deck.Jack)
		if seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}

func allFaces(standard []deck.Card) bool {
	for _, c := range standard {
		if !c.Rank.IsFace() {
			return false
		}
	}
	return true
}
