package game

// Street represents a betting phase
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "raise"}[a]
}

// Round is the turn-order and completion state machine for one street.
// It walks seating in table order, skipping folded and all-in players,
// and tracks who has acted since the last full raise.
type Round struct {
	g          *Game
	street     Street
	pos        int // seat due to act, -1 when nobody can
	acted      []bool
	lastRaiser int
}

// NewRound starts a betting round for the given street. Pre-flop the
// action opens three seats past the dealer (the blinds already
// posted); every later street opens one seat past the dealer.
func (g *Game) NewRound(street Street) *Round {
	n := len(g.players)
	r := &Round{
		g:          g,
		street:     street,
		acted:      make([]bool, n),
		lastRaiser: -1,
	}
	start := (g.dealerPos + 1) % n
	if street == Preflop {
		start = (g.dealerPos + 3) % n
	}
	r.pos = r.nextEligible(start)
	return r
}

// Street returns the street this round is for
func (r *Round) Street() Street {
	return r.street
}

// Current returns the player due to act, or nil if nobody can act
func (r *Round) Current() *Player {
	if r.pos < 0 {
		return nil
	}
	return r.g.players[r.pos]
}

// CurrentSeat returns the seat index of the player due to act
func (r *Round) CurrentSeat() int {
	return r.pos
}

// Apply executes a validated action for the player due to act, updates
// the acted set, and advances the turn. A full raise clears the acted
// set for every other seat so they must respond again. An all-in raise
// below the minimum raise moves the current bet but does not clear the
// set: players who already matched the prior bet act again only to
// match the new amount.
func (r *Round) Apply(action Action, amount int) ActionResult {
	p := r.g.players[r.pos]
	res := r.g.ExecuteAction(p, action, amount)

	r.acted[r.pos] = true
	if res.RaisedTo > 0 && res.FullRaise {
		for i := range r.acted {
			r.acted[i] = false
		}
		r.acted[r.pos] = true
		r.lastRaiser = r.pos
	}

	r.pos = r.nextEligible(r.pos + 1)
	return res
}

// Complete reports whether the betting round is over: at most one
// player remains in the hand, or every player who can still act has
// matched the current bet and acted since the last raise.
func (r *Round) Complete() bool {
	g := r.g

	nonFolded := 0
	for _, p := range g.players {
		if !p.Folded {
			nonFolded++
		}
	}
	if nonFolded <= 1 {
		return true
	}

	for i, p := range g.players {
		if p.Folded || p.AllIn {
			continue
		}
		if p.Bet != g.currentBet || !r.acted[i] {
			return false
		}
	}
	return true
}

func (r *Round) nextEligible(from int) int {
	n := len(r.g.players)
	for i := 0; i < n; i++ {
		pos := (from + i) % n
		if r.g.players[pos].IsActive() {
			return pos
		}
	}
	return -1
}
