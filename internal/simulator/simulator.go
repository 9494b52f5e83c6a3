// Package simulator plays many rounds across independent table sessions
// and aggregates per-player statistics.
package simulator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/ninecard/internal/bot"
	"github.com/lox/ninecard/internal/engine"
	"github.com/lox/ninecard/internal/game"
	"github.com/lox/ninecard/internal/randutil"
	"github.com/lox/ninecard/internal/statistics"
)

// PlayerSpec describes one seat in a simulated session
type PlayerSpec struct {
	Name     string
	Strategy bot.Strategy
	Cash     int
}

// Config holds simulation parameters
type Config struct {
	Sessions int
	Rounds   int
	Players  []PlayerSpec
	Seed     int64
	// BotDelay paces each bot arrangement on the engine clock. Zero for
	// full-speed simulation.
	BotDelay time.Duration
	Logger   *log.Logger
}

// Simulator runs arrangement-game sessions
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run plays every session, each on its own derived seed, and returns the
// merged statistics. Sessions are independent so they fan out in parallel.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Sessions < 1 || s.config.Rounds < 1 {
		return nil, fmt.Errorf("need at least 1 session and 1 round, got %d/%d",
			s.config.Sessions, s.config.Rounds)
	}
	if len(s.config.Players) < 2 {
		return nil, fmt.Errorf("need at least 2 players, got %d", len(s.config.Players))
	}

	stats := statistics.New()
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for session := 0; session < s.config.Sessions; session++ {
		seed := randutil.Derive(s.config.Seed, session)
		g.Go(func() error {
			sessionStats, err := s.runSession(ctx, seed)
			if err != nil {
				return err
			}
			mu.Lock()
			stats.Merge(sessionStats)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// runSession plays rounds at one table until the round budget is spent or
// too few players remain solvent.
func (s *Simulator) runSession(ctx context.Context, seed int64) (*statistics.Statistics, error) {
	players := make([]*game.Player, len(s.config.Players))
	agents := make(map[uuid.UUID]engine.Arranger, len(s.config.Players))
	names := make(map[uuid.UUID]string, len(s.config.Players))
	for i, spec := range s.config.Players {
		players[i] = game.NewPlayer(spec.Name, spec.Cash)
		agents[players[i].ID] = bot.New(spec.Strategy)
		names[players[i].ID] = spec.Name
	}

	eng, err := engine.New(players, nil, engine.Config{
		Seed:     seed,
		BotDelay: s.config.BotDelay,
		Logger:   s.config.Logger,
	})
	if err != nil {
		return nil, err
	}

	stats := statistics.New()
	for round := 0; round < s.config.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(eng.ActivePlayers()) < 2 {
			break
		}

		result, err := eng.PlayRound(agents)
		if err != nil {
			return nil, fmt.Errorf("session seed %d round %d: %w", seed, round+1, err)
		}
		stats.AddRound(roundOutcomes(result, players, names))
	}
	return stats, nil
}

func roundOutcomes(result *engine.RoundResult, players []*game.Player, names map[uuid.UUID]string) []statistics.RoundOutcome {
	eliminated := make(map[uuid.UUID]bool, len(result.Eliminated))
	for _, id := range result.Eliminated {
		eliminated[id] = true
	}
	byID := make(map[uuid.UUID]*game.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	outcomes := make([]statistics.RoundOutcome, 0, len(result.Scores))
	for _, score := range result.Scores {
		p := byID[score.Player]
		outcome := statistics.RoundOutcome{
			Player:    names[score.Player],
			NetPoints: score.Total,
			WentBust:  eliminated[score.Player],
		}
		if p != nil {
			outcome.Fouled = p.Fouled()
			if p.Arrangement != nil {
				outcome.Special = game.HasSpecial(*p.Arrangement)
			}
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}
