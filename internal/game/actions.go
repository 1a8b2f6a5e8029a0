package game

import "fmt"

// ActionResult records what an executed action actually did, including
// the all-in adjustments applied to the requested amount.
type ActionResult struct {
	PlayerName string
	Action     Action
	Amount     int    // chips semantics per action: call = chips moved, raise = new street total
	Display    string // fold, check, call, call_all_in, raise, raise_all_in
	AllIn      bool
	RaisedTo   int  // new street bet when the action increased it, else 0
	FullRaise  bool // true when the increase met the minimum raise
}

// ValidateAction reports whether the proposed action is legal for the
// player right now. It is a pure function: no state is mutated, so the
// caller can re-prompt an agent without side effects. Illegal actions
// are a (false, reason) pair, never an error.
func (g *Game) ValidateAction(p *Player, action Action, amount int) (bool, string) {
	switch action {
	case Fold:
		return true, ""

	case Check:
		if p.Bet < g.currentBet {
			return false, fmt.Sprintf("cannot check, must call %d or fold", g.currentBet-p.Bet)
		}
		return true, ""

	case Call:
		if g.currentBet-p.Bet <= 0 {
			return false, "no bet to call, check instead"
		}
		// Calling short is legal; the player goes all-in.
		return true, ""

	case Raise:
		if amount <= p.Bet {
			return false, "raise must exceed your current bet"
		}
		needed := amount - p.Bet
		if needed > p.Chips {
			return false, "not enough chips for this raise"
		}
		minRaise := g.currentBet + g.bigBlind
		if amount < minRaise && needed < p.Chips {
			return false, fmt.Sprintf("minimum raise is %d", minRaise)
		}
		return true, ""

	default:
		return false, fmt.Sprintf("unknown action %d", action)
	}
}

// ExecuteAction applies a validated action and returns a record of what
// happened. Raise amounts are the player's new street total, not an
// increment; a raise or call that consumes the whole stack marks the
// player all-in and the effective amount is reduced accordingly.
func (g *Game) ExecuteAction(p *Player, action Action, amount int) ActionResult {
	res := ActionResult{
		PlayerName: p.Name,
		Action:     action,
		Amount:     amount,
		Display:    action.String(),
	}

	switch action {
	case Fold:
		p.Folded = true
		res.Amount = 0

	case Check:
		res.Amount = 0

	case Call:
		callAmount := g.currentBet - p.Bet
		if callAmount >= p.Chips {
			callAmount = p.Chips
			p.AllIn = true
			res.AllIn = true
			res.Display = "call_all_in"
		}
		p.Chips -= callAmount
		p.Bet += callAmount
		p.TotalBet += callAmount
		g.pot += callAmount
		res.Amount = callAmount

	case Raise:
		needed := amount - p.Bet
		if needed >= p.Chips {
			needed = p.Chips
			amount = p.Bet + needed
			p.AllIn = true
			res.AllIn = true
			res.Display = "raise_all_in"
		}
		p.Chips -= needed
		p.Bet = amount
		p.TotalBet += needed
		g.pot += needed

		if amount > g.currentBet {
			res.RaisedTo = amount
			res.FullRaise = amount >= g.currentBet+g.bigBlind
			g.currentBet = amount
		}
		res.Amount = amount
	}

	return res
}
