// Package game implements the betting-round state machine, pot
// settlement, and hand lifecycle for a no-limit hold'em tournament
// played by autonomous agents. The engine exclusively owns all mutable
// state; agents receive read-only observations and return decisions.
package game

import (
	"math/rand"

	"github.com/jcbhmphrs733/texasholdem2/internal/deck"
	"github.com/jcbhmphrs733/texasholdem2/internal/evaluator"
)

// Config holds table-level settings for a game
type Config struct {
	SmallBlind int
	BigBlind   int
}

// Game holds the state for one tournament table: ordered seating, the
// dealer button, blinds, the pot, and the board. It is created once
// per tournament and reused hand to hand.
type Game struct {
	players    []*Player
	dealerPos  int
	smallBlind int
	bigBlind   int
	pot        int
	currentBet int
	community  []deck.Card
	deck       *deck.Deck
	rng        *rand.Rand
	eval       *evaluator.Evaluator
}

// New creates a game with an injected RNG so deals can be replayed
func New(rng *rand.Rand, eval *evaluator.Evaluator, cfg Config) *Game {
	return &Game{
		rng:        rng,
		eval:       eval,
		smallBlind: cfg.SmallBlind,
		bigBlind:   cfg.BigBlind,
	}
}

// AddPlayer seats a player at the end of the table order
func (g *Game) AddPlayer(name string, chips int) *Player {
	p := &Player{Name: name, Chips: chips}
	g.players = append(g.players, p)
	return p
}

// Players returns the current seating in table order
func (g *Game) Players() []*Player {
	return g.players
}

// NonFoldedPlayers returns players still contesting the hand
func (g *Game) NonFoldedPlayers() []*Player {
	var out []*Player
	for _, p := range g.players {
		if !p.Folded {
			out = append(out, p)
		}
	}
	return out
}

// NonFoldedCount returns how many players are still in the hand
func (g *Game) NonFoldedCount() int {
	n := 0
	for _, p := range g.players {
		if !p.Folded {
			n++
		}
	}
	return n
}

// ActiveCount returns how many players can still act (not folded, not
// all-in)
func (g *Game) ActiveCount() int {
	n := 0
	for _, p := range g.players {
		if p.IsActive() {
			n++
		}
	}
	return n
}

// Pot returns the total chips committed this hand
func (g *Game) Pot() int { return g.pot }

// CurrentBet returns the highest street bet among players
func (g *Game) CurrentBet() int { return g.currentBet }

// DealerPos returns the dealer button seat index
func (g *Game) DealerPos() int { return g.dealerPos }

// SmallBlind returns the small blind amount
func (g *Game) SmallBlind() int { return g.smallBlind }

// BigBlind returns the big blind amount
func (g *Game) BigBlind() int { return g.bigBlind }

// Community returns a copy of the board
func (g *Game) Community() []deck.Card {
	return append([]deck.Card(nil), g.community...)
}

// TotalChips returns the sum of all stacks plus the pot. Constant for
// the life of a tournament; checked after every hand.
func (g *Game) TotalChips() int {
	total := g.pot
	for _, p := range g.players {
		total += p.Chips
	}
	return total
}

// UpdateBlinds raises the blind amounts for a new level
func (g *Game) UpdateBlinds(smallBlind, bigBlind int) {
	g.smallBlind = smallBlind
	g.bigBlind = bigBlind
}

// StartHand prepares a new hand: bankrupt players are removed, per-hand
// state is reset, blinds are posted (capped at a short stack, which is
// then all-in), and two hole cards are dealt to every player. Returns
// false when fewer than two funded players remain; the tournament is
// over and no state is touched beyond the roster cleanup.
func (g *Game) StartHand() bool {
	g.RemoveBankruptPlayers()
	if len(g.players) < 2 {
		return false
	}

	g.deck = deck.New(g.rng)
	g.community = g.community[:0]
	g.pot = 0
	g.currentBet = 0
	for _, p := range g.players {
		p.resetForNewHand()
	}

	g.postBlinds()
	for _, p := range g.players {
		p.HoleCards = g.deck.DealN(2)
	}
	return true
}

func (g *Game) postBlinds() {
	n := len(g.players)
	sbPos := (g.dealerPos + 1) % n
	bbPos := (g.dealerPos + 2) % n

	sbAmount := min(g.smallBlind, g.players[sbPos].Chips)
	g.postBlind(g.players[sbPos], sbAmount)

	bbAmount := min(g.bigBlind, g.players[bbPos].Chips)
	g.postBlind(g.players[bbPos], bbAmount)

	g.currentBet = max(sbAmount, bbAmount)
}

func (g *Game) postBlind(p *Player, amount int) {
	p.Chips -= amount
	p.Bet = amount
	p.TotalBet = amount
	if p.Chips == 0 {
		p.AllIn = true
	}
	g.pot += amount
}

// DealCommunityCards appends n cards to the board and returns them.
// Called between completed betting rounds only: 3 for the flop, 1 each
// for the turn and river.
func (g *Game) DealCommunityCards(n int) []deck.Card {
	cards := g.deck.DealN(n)
	g.community = append(g.community, cards...)
	return cards
}

// ResetBetsForNewRound clears street bets ahead of a new betting round
func (g *Game) ResetBetsForNewRound() {
	g.currentBet = 0
	for _, p := range g.players {
		p.Bet = 0
	}
}

// AdvanceDealerButton moves the button to the next seat
func (g *Game) AdvanceDealerButton() {
	if len(g.players) > 1 {
		g.dealerPos = (g.dealerPos + 1) % len(g.players)
	}
}

// RemoveBankruptPlayers drops every player with zero chips from the
// seating and returns their names in table order. The dealer index is
// adjusted by the number of removals that occurred before it.
func (g *Game) RemoveBankruptPlayers() []string {
	var eliminated []string
	removedBeforeDealer := 0
	kept := make([]*Player, 0, len(g.players))
	for i, p := range g.players {
		if p.Chips <= 0 {
			eliminated = append(eliminated, p.Name)
			if i < g.dealerPos {
				removedBeforeDealer++
			}
			continue
		}
		kept = append(kept, p)
	}
	g.players = kept
	if len(kept) > 0 {
		g.dealerPos = (g.dealerPos - removedBeforeDealer) % len(kept)
	} else {
		g.dealerPos = 0
	}
	return eliminated
}

// BettingOrder returns the seats that can act this street, in turn
// order: three past the dealer pre-flop, one past the dealer after.
func (g *Game) BettingOrder(street Street) []int {
	n := len(g.players)
	if n == 0 {
		return nil
	}
	start := (g.dealerPos + 1) % n
	if street == Preflop {
		start = (g.dealerPos + 3) % n
	}
	var order []int
	for i := 0; i < n; i++ {
		pos := (start + i) % n
		if g.players[pos].IsActive() {
			order = append(order, pos)
		}
	}
	return order
}
