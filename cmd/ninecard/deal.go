package main

import (
	"fmt"
	"time"

	"github.com/lox/ninecard/cmd/ninecard/shared"
	"github.com/lox/ninecard/internal/engine"
	"github.com/lox/ninecard/internal/game"
)

// DealCmd plays a single round with bots in every seat and prints each
// seat's arrangement and score
type DealCmd struct {
	Players int    `default:"4" help:"Number of seats (2-6)"`
	Cash    int    `default:"100" help:"Starting cash per seat"`
	Seed    *int64 `help:"Deterministic RNG seed (optional)"`
	Debug   bool   `help:"Enable debug logging"`
}

func (c *DealCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Debug("Dealing round", "seed", seed, "players", c.Players)

	players := make([]*game.Player, c.Players)
	for i := range players {
		players[i] = game.NewPlayer(fmt.Sprintf("seat%d", i+1), c.Cash)
	}

	eng, err := engine.New(players, nil, engine.Config{
		Seed:   seed,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	result, err := eng.PlayRound(nil)
	if err != nil {
		return err
	}

	for i, p := range players {
		fmt.Println(headerStyle.Render(fmt.Sprintf(" %s ", p.Name)))
		fmt.Println(renderArrangement(*p.Arrangement))
		if game.HasSpecial(*p.Arrangement) {
			fmt.Println(warnStyle.Render("special hand!"))
		}
		fmt.Printf("%s %+d\n\n", labelStyle.Render("net points:"), result.Scores[i].Total)
	}
	return nil
}
