package bot

import (
	"fmt"

	"github.com/lox/ninecard/internal/deck"
	"github.com/lox/ninecard/internal/game"
)

// Strategy selects the arrangement heuristic a bot plays with. Tiers are
// distinct heuristics, not string-dispatched lookups.
type Strategy int

const (
	// Optimal runs the exhaustive search
	Optimal Strategy = iota
	// Simple plays the deterministic high-to-low split without searching
	Simple
)

// String returns the strategy name
func (s Strategy) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Simple:
		return "simple"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a strategy name as written in config files
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "optimal", "":
		return Optimal, nil
	case "simple":
		return Simple, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

// Bot arranges hands for a non-human seat
type Bot struct {
	strategy Strategy
}

// New creates a bot playing the given strategy
func New(strategy Strategy) *Bot {
	return &Bot{strategy: strategy}
}

// Strategy returns the bot's configured strategy
func (b *Bot) Strategy() Strategy {
	return b.strategy
}

// Arrange produces a complete arrangement for a nine-card hand
func (b *Bot) Arrange(cards []deck.Card) game.Arrangement {
	if b.strategy == Simple {
		return SimpleArrangement(cards)
	}
	arrangement, _ := FindBest(cards)
	return arrangement
}

// Discard picks the throwaway card from a ten-card starter hand
func (b *Bot) Discard(cards []deck.Card) deck.Card {
	if b.strategy == Simple && len(cards) == deck.StarterHandSize {
		// The simple tier sheds its weakest card.
		lowest := cards[0]
		for _, c := range cards[1:] {
			if c.Value() < lowest.Value() {
				lowest = c
			}
		}
		return lowest
	}
	discard, _ := ChooseDiscard(cards)
	return discard
}
