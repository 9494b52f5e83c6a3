package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// HandSize is the number of cards every player arranges.
// StarterHandSize is what the round starter is dealt in a full six-player
// game; the extra card is discarded before arranging.
const (
	HandSize        = 9
	StarterHandSize = 10
	FullDeckSize    = 55
	MaxPlayers      = 6
)

// Deck is a 55-card deck: one of each (rank, suit) pair plus three jokers.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a fresh unshuffled deck. The RNG is injected so deals are
// reproducible from a seed.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, FullDeckSize),
		rng:   rng,
	}
	d.fill()
	return d
}

func (d *Deck) fill() {
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	for n := 0; n < 3; n++ {
		d.cards = append(d.cards, NewJoker(n))
	}
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealN deals up to n cards from the top of the deck
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, ok := d.Deal()
		if !ok {
			break
		}
		cards = append(cards, card)
	}
	return cards
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Reset restores the deck to the full 55 cards and shuffles it
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	d.fill()
	d.Shuffle()
}

// DealHands shuffles and deals one hand per player. Everyone receives nine
// cards except the starter in a six-player game, who receives ten and must
// discard one before arranging.
func DealHands(rng *rand.Rand, players, starter int) ([][]Card, error) {
	if players < 2 || players > MaxPlayers {
		return nil, fmt.Errorf("player count %d out of range 2-%d", players, MaxPlayers)
	}
	if starter < 0 || starter >= players {
		return nil, fmt.Errorf("starter seat %d out of range", starter)
	}

	d := New(rng)
	d.Shuffle()

	hands := make([][]Card, players)
	for seat := range hands {
		size := HandSize
		if players == MaxPlayers && seat == starter {
			size = StarterHandSize
		}
		hands[seat] = d.DealN(size)
	}
	return hands, nil
}
