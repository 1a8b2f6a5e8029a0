package game

import (
	"github.com/jcbhmphrs733/texasholdem2/internal/deck"
)

// Player is the engine-owned record for one seat. Agents never hold a
// reference to it; they see defensively-copied observations only.
type Player struct {
	Name      string
	Chips     int
	Bet       int // chips committed this street
	TotalBet  int // chips committed this hand, the basis for pot tiers
	Folded    bool
	AllIn     bool
	HoleCards []deck.Card
}

// IsActive returns true if the player can still act this street
func (p *Player) IsActive() bool {
	return !p.Folded && !p.AllIn
}

func (p *Player) resetForNewHand() {
	p.Bet = 0
	p.TotalBet = 0
	p.Folded = false
	p.AllIn = false
	p.HoleCards = nil
}
