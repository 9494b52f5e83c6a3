package game

import (
	"github.com/google/uuid"

	"github.com/lox/ninecard/internal/deck"
)

// Player is one seat at the table. The scoring core reads the hand,
// arrangement and cash; lifecycle (dealing, readiness, elimination)
// belongs to the engine.
type Player struct {
	ID          uuid.UUID
	Name        string
	Cash        int
	Hand        []deck.Card
	Arrangement *Arrangement
	Ready       bool
	Bankrupt    bool
}

// NewPlayer creates a player with a starting bankroll
func NewPlayer(name string, cash int) *Player {
	return &Player{
		ID:   uuid.New(),
		Name: name,
		Cash: cash,
	}
}

// Active returns true if the player is still in the game
func (p *Player) Active() bool {
	return !p.Bankrupt
}

// Fouled reports whether the player's arrangement is missing or breaks the
// layer ordering. A foul is a normal game outcome, not an error.
func (p *Player) Fouled() bool {
	return p.Arrangement == nil || !p.Arrangement.Valid()
}

// SetArrangement installs a finished arrangement and marks the player
// ready. The arrangement is treated as immutable from here on.
func (p *Player) SetArrangement(a Arrangement) {
	p.Arrangement = &a
	p.Ready = true
}

// ClearRound resets per-round state ahead of a new deal
func (p *Player) ClearRound() {
	p.Hand = nil
	p.Arrangement = nil
	p.Ready = false
}
