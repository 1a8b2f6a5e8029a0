// Package bots provides built-in agents for running tables without any
// external decision makers. Each strategy is deliberately simple; the
// value is in exercising every legal action shape, not in playing well.
package bots

import (
	"fmt"
	"math/rand"

	"github.com/jcbhmphrs733/texasholdem2/internal/deck"
	"github.com/jcbhmphrs733/texasholdem2/internal/game"
)

// Base carries the hole cards and no-op notification hooks so that
// strategies only implement DecideAction.
type Base struct {
	holeCards []deck.Card
}

func (b *Base) ReceiveCards(cards []deck.Card) {
	b.holeCards = append(b.holeCards[:0], cards...)
}

func (b *Base) ResetForNewHand() {
	b.holeCards = b.holeCards[:0]
}

func (b *Base) OnPlayerAction(name string, action game.Action, amount int) {}

func (b *Base) OnCommunityCards(cards []deck.Card, street game.Street) {}

func (b *Base) OnHandComplete(winner string, pot int, winningHand string) {}

// HoleCards returns the cards dealt for the current hand
func (b *Base) HoleCards() []deck.Card { return b.holeCards }

// New builds a bot for the given strategy name. Supported strategies
// are folder, station, random, allin and raiser.
func New(strategy string, rng *rand.Rand) (game.Agent, error) {
	switch strategy {
	case "folder":
		return NewFolder(), nil
	case "station":
		return NewStation(), nil
	case "random":
		return NewRandom(rng), nil
	case "allin":
		return NewAllIn(), nil
	case "raiser":
		return NewRaiser(rng), nil
	default:
		return nil, fmt.Errorf("unknown bot strategy %q", strategy)
	}
}

// Strategies lists the supported strategy names
func Strategies() []string {
	return []string{"folder", "station", "random", "allin", "raiser"}
}

// Folder checks when it can and folds otherwise
type Folder struct {
	Base
}

func NewFolder() *Folder { return &Folder{} }

func (f *Folder) DecideAction(obs game.Observation) (game.Action, int) {
	if obs.ToCall() == 0 {
		return game.Check, 0
	}
	return game.Fold, 0
}

// Station calls any bet and checks otherwise, never raising
type Station struct {
	Base
}

func NewStation() *Station { return &Station{} }

func (s *Station) DecideAction(obs game.Observation) (game.Action, int) {
	if obs.ToCall() == 0 {
		return game.Check, 0
	}
	return game.Call, 0
}

// Random picks uniformly among the legal action shapes, with a random
// raise size between the minimum and its stack.
type Random struct {
	Base
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random { return &Random{rng: rng} }

func (r *Random) DecideAction(obs game.Observation) (game.Action, int) {
	var choices []game.Action
	if obs.ToCall() == 0 {
		choices = append(choices, game.Check)
	} else {
		choices = append(choices, game.Fold, game.Call)
	}
	minRaise := obs.CurrentBet + obs.MinRaise
	if obs.MaxRaise >= minRaise {
		choices = append(choices, game.Raise)
	}

	action := choices[r.rng.Intn(len(choices))]
	if action != game.Raise {
		return action, 0
	}
	amount := minRaise
	if obs.MaxRaise > minRaise {
		amount += r.rng.Intn(obs.MaxRaise - minRaise + 1)
	}
	return game.Raise, amount
}

// AllIn shoves its whole stack whenever it can raise, calling when the
// stack is too short for a legal raise.
type AllIn struct {
	Base
}

func NewAllIn() *AllIn { return &AllIn{} }

func (a *AllIn) DecideAction(obs game.Observation) (game.Action, int) {
	if obs.MaxRaise > obs.CurrentBet {
		return game.Raise, obs.MaxRaise
	}
	if obs.ToCall() > 0 {
		return game.Call, 0
	}
	return game.Check, 0
}

// Raiser makes a minimum raise most of the time and calls the rest,
// applying steady pressure without committing its stack.
type Raiser struct {
	Base
	rng *rand.Rand
}

func NewRaiser(rng *rand.Rand) *Raiser { return &Raiser{rng: rng} }

func (r *Raiser) DecideAction(obs game.Observation) (game.Action, int) {
	minRaise := obs.CurrentBet + obs.MinRaise
	if obs.MaxRaise >= minRaise && r.rng.Intn(3) > 0 {
		return game.Raise, minRaise
	}
	if obs.ToCall() > 0 {
		return game.Call, 0
	}
	return game.Check, 0
}
