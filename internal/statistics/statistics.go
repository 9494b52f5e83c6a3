// Package statistics accumulates per-player results across simulated
// rounds and sanity-checks the accounting.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// PlayerStats tracks one player's net points per round
type PlayerStats struct {
	Name     string
	Rounds   int
	Sum      float64
	Sum2     float64 // Sum of squares for variance calculation
	Wins     int     // Rounds finished with positive net points
	Fouls    int
	Busts    int // Times the player went bankrupt
	Specials int // Rounds with a whole-hand bonus
}

// Mean returns the player's mean net points per round
func (p *PlayerStats) Mean() float64 {
	if p.Rounds == 0 {
		return 0
	}
	return p.Sum / float64(p.Rounds)
}

// Variance returns the sample variance of the player's round results
func (p *PlayerStats) Variance() float64 {
	if p.Rounds < 2 {
		return 0
	}
	mean := p.Mean()
	return (p.Sum2 - float64(p.Rounds)*mean*mean) / float64(p.Rounds-1)
}

// StdDev returns the sample standard deviation of the round results
func (p *PlayerStats) StdDev() float64 {
	return math.Sqrt(p.Variance())
}

// RoundOutcome is one player's slice of a completed round
type RoundOutcome struct {
	Player    string
	NetPoints int
	Fouled    bool
	Special   bool
	WentBust  bool
}

// Statistics aggregates simulation results per player
type Statistics struct {
	Rounds  int
	players map[string]*PlayerStats
}

// New creates an empty statistics collection
func New() *Statistics {
	return &Statistics{players: make(map[string]*PlayerStats)}
}

// AddRound incorporates one completed round. The outcomes must cover
// every seat that played the round.
func (s *Statistics) AddRound(outcomes []RoundOutcome) {
	s.Rounds++
	for _, o := range outcomes {
		p := s.player(o.Player)
		net := float64(o.NetPoints)
		p.Rounds++
		p.Sum += net
		p.Sum2 += net * net
		if o.NetPoints > 0 {
			p.Wins++
		}
		if o.Fouled {
			p.Fouls++
		}
		if o.Special {
			p.Specials++
		}
		if o.WentBust {
			p.Busts++
		}
	}
}

// Merge folds another collection into this one. Used by the simulator to
// combine per-session results.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	for name, op := range other.players {
		p := s.player(name)
		p.Rounds += op.Rounds
		p.Sum += op.Sum
		p.Sum2 += op.Sum2
		p.Wins += op.Wins
		p.Fouls += op.Fouls
		p.Specials += op.Specials
		p.Busts += op.Busts
	}
}

// Player returns the stats recorded for a player, or nil
func (s *Statistics) Player(name string) *PlayerStats {
	return s.players[name]
}

// Names returns all recorded player names, sorted
func (s *Statistics) Names() []string {
	names := make([]string, 0, len(s.players))
	for name := range s.players {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the accounting: the game is zero-sum, so net points
// across all players must cancel out exactly.
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid round count: %d", s.Rounds)
	}
	total := 0.0
	for _, p := range s.players {
		total += p.Sum
	}
	if math.Abs(total) > 1e-9 {
		return fmt.Errorf("ledger mismatch: net points sum to %.6f, expected 0", total)
	}
	return nil
}

func (s *Statistics) player(name string) *PlayerStats {
	p, ok := s.players[name]
	if !ok {
		p = &PlayerStats{Name: name}
		s.players[name] = p
	}
	return p
}
