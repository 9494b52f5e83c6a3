// Package engine orchestrates rounds: it deals, collects bot arrangements,
// scores and applies cash deltas. The rules core stays pure; all state
// transitions happen here.
package engine

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/ninecard/internal/bot"
	"github.com/lox/ninecard/internal/deck"
	"github.com/lox/ninecard/internal/game"
	"github.com/lox/ninecard/internal/randutil"
)

// Arranger decides how a seat plays its dealt cards. Bots implement it
// directly; a human front-end would adapt its confirmed placement to it.
type Arranger interface {
	Arrange(cards []deck.Card) game.Arrangement
	Discard(cards []deck.Card) deck.Card
}

// Config holds engine construction options
type Config struct {
	Seed int64
	// BotDelay paces bot arrangements so reveals do not feel instant.
	// Zero disables pacing; the value is cosmetic.
	BotDelay time.Duration
	Clock    quartz.Clock
	Logger   *log.Logger
}

// Engine runs rounds for a fixed set of players
type Engine struct {
	sessionID     uuid.UUID
	players       []*game.Player
	defaultAgent  Arranger
	rng           *rand.Rand
	clock         quartz.Clock
	logger        *log.Logger
	botDelay      time.Duration
	starter       int
	round         int
	startingTotal int
}

// RoundResult summarizes one completed round
type RoundResult struct {
	Round      int
	Starter    uuid.UUID
	Discarded  *deck.Card
	Scores     []game.RoundScore
	Eliminated []uuid.UUID
}

// New creates an engine. Seats needing different behaviour from the
// default arranger can be overridden per round.
func New(players []*game.Player, defaultAgent Arranger, cfg Config) (*Engine, error) {
	if len(players) < 2 || len(players) > deck.MaxPlayers {
		return nil, fmt.Errorf("player count %d out of range 2-%d", len(players), deck.MaxPlayers)
	}
	if defaultAgent == nil {
		defaultAgent = bot.New(bot.Optimal)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	startingTotal := 0
	for _, p := range players {
		startingTotal += p.Cash
	}

	return &Engine{
		sessionID:     uuid.New(),
		players:       players,
		defaultAgent:  defaultAgent,
		rng:           randutil.New(cfg.Seed),
		clock:         clock,
		logger:        logger,
		botDelay:      cfg.BotDelay,
		startingTotal: startingTotal,
	}, nil
}

// SessionID identifies this table session
func (e *Engine) SessionID() uuid.UUID {
	return e.sessionID
}

// Players returns the seats in table order
func (e *Engine) Players() []*game.Player {
	return e.players
}

// ActivePlayers returns the non-bankrupt seats in table order
func (e *Engine) ActivePlayers() []*game.Player {
	active := make([]*game.Player, 0, len(e.players))
	for _, p := range e.players {
		if p.Active() {
			active = append(active, p)
		}
	}
	return active
}

// PlayRound deals, arranges every active seat, scores all pairings and
// applies the cash deltas. Seats present in agents use that arranger
// instead of the default.
func (e *Engine) PlayRound(agents map[uuid.UUID]Arranger) (*RoundResult, error) {
	active := e.ActivePlayers()
	if len(active) < 2 {
		return nil, errors.New("not enough active players for a round")
	}

	e.round++
	starterSeat := e.starter % len(active)
	result := &RoundResult{
		Round:   e.round,
		Starter: active[starterSeat].ID,
	}
	e.logger.Debug("Starting round",
		"session", e.sessionID,
		"round", e.round,
		"players", len(active),
		"starter", active[starterSeat].Name)

	hands, err := deck.DealHands(e.rng, len(active), starterSeat)
	if err != nil {
		return nil, fmt.Errorf("dealing round %d: %w", e.round, err)
	}
	for i, p := range active {
		p.ClearRound()
		p.Hand = hands[i]
	}

	for _, p := range active {
		agent := e.defaultAgent
		if agents != nil && agents[p.ID] != nil {
			agent = agents[p.ID]
		}
		e.pace()

		hand := p.Hand
		if len(hand) == deck.StarterHandSize {
			discard := agent.Discard(hand)
			hand = removeCard(hand, discard)
			p.Hand = hand
			result.Discarded = &discard
			e.logger.Debug("Starter discarded", "player", p.Name, "card", discard)
		}

		arrangement := agent.Arrange(hand)
		p.SetArrangement(arrangement)
		if p.Fouled() {
			// The optimal search never fouls on a well-formed hand, so
			// this points at a misbehaving custom arranger.
			e.logger.Warn("Seat fouled its arrangement", "player", p.Name)
		}
		e.logger.Debug("Seat ready", "player", p.Name, "arrangement", arrangement)
	}

	result.Scores = game.ScoreRound(active)
	for i, score := range result.Scores {
		p := active[i]
		p.Cash += score.CashDelta
		if p.Cash <= 0 {
			p.Bankrupt = true
			result.Eliminated = append(result.Eliminated, p.ID)
			e.logger.Info("Player bankrupt", "player", p.Name, "round", e.round)
		}
	}

	if err := e.validateCashConservation(); err != nil {
		return nil, fmt.Errorf("cash conservation violation: %w", err)
	}

	// Rotate the starter seat for the next round.
	e.starter++
	return result, nil
}

// pace waits the configured bot delay on the injected clock
func (e *Engine) pace() {
	if e.botDelay <= 0 {
		return
	}
	fired := make(chan struct{})
	timer := e.clock.AfterFunc(e.botDelay, func() {
		close(fired)
	})
	defer timer.Stop()
	<-fired
}

// validateCashConservation checks that scoring stayed zero-sum
func (e *Engine) validateCashConservation() error {
	total := 0
	for _, p := range e.players {
		total += p.Cash
	}
	if total != e.startingTotal {
		return fmt.Errorf("table total %d, expected %d", total, e.startingTotal)
	}
	return nil
}

func removeCard(cards []deck.Card, target deck.Card) []deck.Card {
	kept := make([]deck.Card, 0, len(cards)-1)
	removed := false
	for _, c := range cards {
		if !removed && c.ID == target.ID {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
