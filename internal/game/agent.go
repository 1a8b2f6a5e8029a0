package game

import (
	"github.com/jcbhmphrs733/texasholdem2/internal/deck"
)

// Agent is the decision-making boundary for a seat. The engine blocks
// on DecideAction; the lifecycle and notification methods are invoked
// by the engine only. Notification hooks are best effort: a panic
// inside one is swallowed and never aborts the hand.
type Agent interface {
	// DecideAction returns the agent's move given a read-only view of
	// the table. For raises the amount is the new street total.
	DecideAction(obs Observation) (Action, int)

	// ReceiveCards delivers the agent's two hole cards at hand start
	ReceiveCards(cards []deck.Card)

	// ResetForNewHand clears any per-hand agent state
	ResetForNewHand()

	// OnPlayerAction fires after any player's action is applied
	OnPlayerAction(name string, action Action, amount int)

	// OnCommunityCards fires when board cards are dealt
	OnCommunityCards(cards []deck.Card, street Street)

	// OnHandComplete fires once per hand with the main-pot winner.
	// winningHand is empty when the hand ended without a showdown.
	OnHandComplete(winner string, pot int, winningHand string)
}

// OpponentInfo is the public view of another seat
type OpponentInfo struct {
	Name     string
	Chips    int
	Bet      int
	Position int
	Dealer   bool
	Folded   bool
	AllIn    bool
}

// ActionRecord is one entry in the per-hand action history
type ActionRecord struct {
	PlayerName string
	Action     Action
	Amount     int
	Street     Street
	Position   int
}

// Observation is the defensively-copied snapshot handed to an agent
// when it must act. Nothing in it aliases live engine state.
type Observation struct {
	Street         Street
	CurrentBet     int
	MinRaise       int // minimum legal raise increment
	MaxRaise       int // raise-to ceiling: the player's chips plus street bet
	Pot            int
	CommunityCards []deck.Card
	PlayerBet      int
	Chips          int
	HoleCards      []deck.Card

	SmallBlind int
	BigBlind   int
	DealerPos  int
	Position   int

	Opponents   []OpponentInfo
	HandActions []ActionRecord
}

// ToCall returns the chips needed to match the current bet
func (o Observation) ToCall() int {
	return o.CurrentBet - o.PlayerBet
}

// ObservationFor builds the snapshot for the given seat. The per-hand
// action history is supplied by the caller that tracks it.
func (g *Game) ObservationFor(seat int, street Street, history []ActionRecord) Observation {
	p := g.players[seat]
	obs := Observation{
		Street:         street,
		CurrentBet:     g.currentBet,
		MinRaise:       g.bigBlind,
		MaxRaise:       p.Chips + p.Bet,
		Pot:            g.pot,
		CommunityCards: g.Community(),
		PlayerBet:      p.Bet,
		Chips:          p.Chips,
		HoleCards:      append([]deck.Card(nil), p.HoleCards...),
		SmallBlind:     g.smallBlind,
		BigBlind:       g.bigBlind,
		DealerPos:      g.dealerPos,
		Position:       seat,
		HandActions:    append([]ActionRecord(nil), history...),
	}
	for i, other := range g.players {
		if i == seat {
			continue
		}
		obs.Opponents = append(obs.Opponents, OpponentInfo{
			Name:     other.Name,
			Chips:    other.Chips,
			Bet:      other.Bet,
			Position: i,
			Dealer:   i == g.dealerPos,
			Folded:   other.Folded,
			AllIn:    other.AllIn,
		})
	}
	return obs
}
