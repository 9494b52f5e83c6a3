package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lox/ninecard/cmd/ninecard/shared"
	"github.com/lox/ninecard/internal/simulator"
)

// SimulateCmd runs bot-vs-bot sessions and reports per-player results
type SimulateCmd struct {
	Config   string `help:"HCL session config file" type:"existingfile" optional:""`
	Sessions int    `help:"Override number of sessions" optional:""`
	Rounds   int    `help:"Override rounds per session" optional:""`
	Seed     *int64 `help:"Deterministic RNG seed (optional)"`
	Debug    bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	fileConfig := simulator.DefaultFileConfig()
	if c.Config != "" {
		loaded, err := simulator.LoadFileConfig(c.Config)
		if err != nil {
			return err
		}
		fileConfig = loaded
	}

	config, err := fileConfig.ToConfig()
	if err != nil {
		return err
	}
	if c.Sessions > 0 {
		config.Sessions = c.Sessions
	}
	if c.Rounds > 0 {
		config.Rounds = c.Rounds
	}
	if c.Seed != nil {
		config.Seed = *c.Seed
	} else if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	config.Logger = logger

	logger.Info("Starting simulation",
		"sessions", config.Sessions,
		"rounds", config.Rounds,
		"players", len(config.Players),
		"seed", config.Seed)

	start := time.Now()
	stats, err := simulator.New(config).Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %d rounds in %s ", stats.Rounds, elapsed.Round(time.Millisecond))))
	for _, name := range stats.Names() {
		p := stats.Player(name)
		fmt.Printf("%-10s rounds=%-5d mean=%+7.3f stddev=%6.3f wins=%-4d specials=%-3d busts=%d\n",
			name, p.Rounds, p.Mean(), p.StdDev(), p.Wins, p.Specials, p.Busts)
	}
	return nil
}
