package game

import (
	"github.com/jcbhmphrs733/texasholdem2/internal/deck"
)

// PlayerView is a read-only snapshot of one seat for reporting
type PlayerView struct {
	Name   string
	Chips  int
	Bet    int
	Dealer bool
	Folded bool
	AllIn  bool
}

// PotOutcome is the reportable settlement of one pot tier
type PotOutcome struct {
	Label          string
	Amount         int
	Winners        []string
	PrizePerWinner int
	HandName       string
}

// Observer receives progress reports from the engine. Reporting is
// always injected; the engine never renders anything itself. Panics
// raised by an observer are swallowed.
type Observer interface {
	HandStarted(handID string, players []PlayerView, dealerPos, smallBlind, bigBlind int)
	ActionApplied(result ActionResult, pot int)
	CommunityDealt(street Street, cards []deck.Card)
	PotAwarded(handID string, outcomes []PotOutcome)
	PlayerEliminated(name string)
}

// NopObserver implements Observer with no-ops. Embed it to implement
// only the notifications you care about.
type NopObserver struct{}

func (NopObserver) HandStarted(string, []PlayerView, int, int, int) {}

func (NopObserver) ActionApplied(ActionResult, int) {}

func (NopObserver) CommunityDealt(Street, []deck.Card) {}

func (NopObserver) PotAwarded(string, []PotOutcome) {}

func (NopObserver) PlayerEliminated(string) {}

// Snapshot is a read-only copy of the whole table for callers outside
// the engine. Mutating it has no effect on live state.
type Snapshot struct {
	Players    []PlayerView
	DealerPos  int
	Pot        int
	CurrentBet int
	SmallBlind int
	BigBlind   int
	Community  []deck.Card
}

// Snapshot copies the current table state
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Players:    g.Views(),
		DealerPos:  g.dealerPos,
		Pot:        g.pot,
		CurrentBet: g.currentBet,
		SmallBlind: g.smallBlind,
		BigBlind:   g.bigBlind,
		Community:  g.Community(),
	}
}

// Views returns snapshots of every seat in table order
func (g *Game) Views() []PlayerView {
	views := make([]PlayerView, len(g.players))
	for i, p := range g.players {
		views[i] = PlayerView{
			Name:   p.Name,
			Chips:  p.Chips,
			Bet:    p.Bet,
			Dealer: i == g.dealerPos,
			Folded: p.Folded,
			AllIn:  p.AllIn,
		}
	}
	return views
}
