package simulator

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/ninecard/internal/bot"
)

// FileConfig is the on-disk simulation configuration
type FileConfig struct {
	Session SessionSettings `hcl:"session,block"`
	Players []PlayerBlock   `hcl:"player,block"`
}

// SessionSettings contains session-level configuration
type SessionSettings struct {
	Sessions     int   `hcl:"sessions,optional"`
	Rounds       int   `hcl:"rounds,optional"`
	Seed         int64 `hcl:"seed,optional"`
	StartingCash int   `hcl:"starting_cash,optional"`
	// DelayMS paces each bot arrangement. Cosmetic; leave zero for
	// full-speed simulation.
	DelayMS int `hcl:"delay_ms,optional"`
}

// PlayerBlock defines one configured seat
type PlayerBlock struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
	Cash     int    `hcl:"cash,optional"`
}

// DefaultFileConfig returns a four-seat session of optimal bots
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Session: SessionSettings{
			Sessions:     1,
			Rounds:       100,
			StartingCash: 100,
		},
		Players: []PlayerBlock{
			{Name: "north", Strategy: "optimal"},
			{Name: "east", Strategy: "optimal"},
			{Name: "south", Strategy: "optimal"},
			{Name: "west", Strategy: "simple"},
		},
	}
}

// LoadFileConfig parses an HCL configuration file
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config file: %s", diags.Error())
	}

	config := DefaultFileConfig()
	config.Players = nil
	if diags := gohcl.DecodeBody(file.Body, nil, config); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config file: %s", diags.Error())
	}
	if len(config.Players) == 0 {
		config.Players = DefaultFileConfig().Players
	}
	return config, nil
}

// ToConfig resolves the file configuration into simulation parameters
func (fc *FileConfig) ToConfig() (Config, error) {
	config := Config{
		Sessions: fc.Session.Sessions,
		Rounds:   fc.Session.Rounds,
		Seed:     fc.Session.Seed,
		BotDelay: time.Duration(fc.Session.DelayMS) * time.Millisecond,
	}
	if config.Sessions == 0 {
		config.Sessions = 1
	}
	if config.Rounds == 0 {
		config.Rounds = 100
	}

	cash := fc.Session.StartingCash
	if cash == 0 {
		cash = 100
	}
	for _, block := range fc.Players {
		strategy, err := bot.ParseStrategy(block.Strategy)
		if err != nil {
			return Config{}, fmt.Errorf("player %q: %w", block.Name, err)
		}
		playerCash := block.Cash
		if playerCash == 0 {
			playerCash = cash
		}
		config.Players = append(config.Players, PlayerSpec{
			Name:     block.Name,
			Strategy: strategy,
			Cash:     playerCash,
		})
	}
	return config, nil
}
