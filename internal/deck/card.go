package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
	// WildSuit is the sentinel suit carried by the three jokers
	WildSuit
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case WildSuit:
		return "*"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Comparison order is Ace-high (2..14).
type Rank int

const (
	// WildRank is the sentinel rank carried by the three jokers
	WildRank Rank = 0

	Two Rank = iota + 1
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case WildRank:
		return "X"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// IsFace returns true for J, Q and K
func (r Rank) IsFace() bool {
	return r >= Jack && r <= King
}

// Card is an immutable playing card. A 55-card deck holds one of each
// (rank, suit) pair plus three jokers; ID is unique within the deck.
type Card struct {
	ID   int
	Suit Suit
	Rank Rank
	Wild bool
}

// NewCard creates a standard card. The ID is derived from the (suit, rank)
// pair so that equal cards from separately parsed hands share an identity.
func NewCard(suit Suit, rank Rank) Card {
	return Card{
		ID:   int(suit)*13 + int(rank-Two),
		Suit: suit,
		Rank: rank,
	}
}

// NewJoker creates the nth joker (0-2). Jokers carry the wild sentinels for
// suit and rank, never anything else.
func NewJoker(n int) Card {
	return Card{
		ID:   52 + n,
		Suit: WildSuit,
		Rank: WildRank,
		Wild: true,
	}
}

// String returns the string representation of a card (e.g. "A♠", "X*")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Value returns the comparison value of the card: 2-10 at face value,
// J=11, Q=12, K=13, A=14. Jokers sort above everything at 15.
func (c Card) Value() int {
	if c.Wild {
		return 15
	}
	return int(c.Rank)
}

// ScoreValue returns the point-sum value of the card: A=1, 2-10 at face
// value, J/Q/K=10. Jokers contribute nothing to a sum.
func (c Card) ScoreValue() int {
	switch {
	case c.Wild:
		return 0
	case c.Rank == Ace:
		return 1
	case c.Rank.IsFace():
		return 10
	default:
		return int(c.Rank)
	}
}

// ParseCard parses compact card notation: a rank character from
// "23456789TJQKA" followed by a suit character from "shdc", or a single "X"
// for a joker. Jokers parsed this way are always the first joker; use
// MustParseCards when a hand contains more than one.
func ParseCard(s string) (Card, error) {
	if s == "X" || s == "x" {
		return NewJoker(0), nil
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	rank, err := parseRank(s[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return Card{}, err
	}
	return NewCard(suit, rank), nil
}

// ParseCards parses a run of compact card notation like "AsKdXQh".
// Successive "X" characters become distinct jokers, at most three.
func ParseCards(s string) ([]Card, error) {
	var cards []Card
	jokers := 0

	runes := []rune(strings.TrimSpace(s))
	for i := 0; i < len(runes); {
		if runes[i] == 'X' || runes[i] == 'x' {
			if jokers >= 3 {
				return nil, fmt.Errorf("too many jokers in %q", s)
			}
			cards = append(cards, NewJoker(jokers))
			jokers++
			i++
			continue
		}
		if i+1 >= len(runes) {
			return nil, fmt.Errorf("dangling card character %q", runes[i])
		}
		card, err := ParseCard(string(runes[i : i+2]))
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
		i += 2
	}
	return cards, nil
}

// MustParseCards parses card notation and panics on error. Test helper.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c-'2') + Two, nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return 0, fmt.Errorf("invalid rank character %q", c)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("invalid suit character %q", c)
	}
}
