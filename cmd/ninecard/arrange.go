package main

import (
	"fmt"

	"github.com/lox/ninecard/cmd/ninecard/shared"
	"github.com/lox/ninecard/internal/bot"
	"github.com/lox/ninecard/internal/deck"
	"github.com/lox/ninecard/internal/game"
)

// ArrangeCmd finds the best arrangement for a hand given in compact
// notation, e.g. "AsKdKhKc2d3c9s9dX"
type ArrangeCmd struct {
	Cards string `arg:"" help:"Hand in compact notation (9 cards, or 10 to also pick a discard)"`
	Debug bool   `help:"Enable debug logging"`
}

func (c *ArrangeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cards, err := deck.ParseCards(c.Cards)
	if err != nil {
		return err
	}

	if len(cards) == deck.StarterHandSize {
		discard, ok := bot.ChooseDiscard(cards)
		if !ok {
			return fmt.Errorf("could not choose a discard from %d cards", len(cards))
		}
		fmt.Printf("%s %s\n", labelStyle.Render("discard:"), renderCard(discard))
		kept := make([]deck.Card, 0, deck.HandSize)
		for _, card := range cards {
			if card.ID != discard.ID {
				kept = append(kept, card)
			}
		}
		cards = kept
	}

	if len(cards) != deck.HandSize {
		return fmt.Errorf("expected %d or %d cards, got %d", deck.HandSize, deck.StarterHandSize, len(cards))
	}

	arrangement, ok := bot.FindBest(cards)
	if !ok {
		return fmt.Errorf("no arrangement found for %q", c.Cards)
	}
	logger.Debug("Search complete", "score", bot.Score(arrangement), "valid", arrangement.Valid())

	fmt.Println(renderArrangement(arrangement))
	if game.HasSpecial(arrangement) {
		fmt.Println(warnStyle.Render("special hand!"))
	}
	return nil
}
