package game

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jcbhmphrs733/texasholdem2/internal/deck"
)

// HandResult summarizes one completed hand
type HandResult struct {
	ID       string
	Pot      int
	Winner   string // main pot winner (first listed on a tie)
	EndedBy  string // "fold" or "showdown"
	HandName string // winning hand category, empty on a fold win
	Pots     []PotOutcome
	Actions  []ActionRecord
}

// Engine drives the hand lifecycle: deal, betting streets, settlement.
// It owns the agents and the per-hand action history; the Game owns all
// chip state. Agents never receive pointers into live state.
type Engine struct {
	game       *Game
	logger     *log.Logger
	agents     map[string]Agent
	observers  []Observer
	maxIllegal int
	history    []ActionRecord
}

// NewEngine creates an engine over the given game. maxIllegal is the
// number of illegal decisions a player is allowed per turn before
// being force-folded.
func NewEngine(g *Game, logger *log.Logger, maxIllegal int) *Engine {
	if maxIllegal <= 0 {
		maxIllegal = 3
	}
	return &Engine{
		game:       g,
		logger:     logger,
		agents:     make(map[string]Agent),
		maxIllegal: maxIllegal,
	}
}

// Game exposes the underlying table state
func (e *Engine) Game() *Game { return e.game }

// Seat adds a player with their agent
func (e *Engine) Seat(name string, chips int, agent Agent) *Player {
	e.agents[name] = agent
	return e.game.AddPlayer(name, chips)
}

// AddObserver registers a reporting sink. Observers are notified in
// registration order; a panicking observer is logged and skipped.
func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// PlayHand runs a single hand to completion. The bool is false when a
// hand cannot start, which is the tournament's termination signal, not
// an error.
func (e *Engine) PlayHand() (*HandResult, bool) {
	startTotal := e.game.TotalChips()

	if !e.game.StartHand() {
		return nil, false
	}

	handID := uuid.New().String()
	e.history = e.history[:0]

	e.logger.Info("hand started",
		"hand", handID,
		"players", len(e.game.Players()),
		"dealer", e.game.DealerPos(),
		"smallBlind", e.game.SmallBlind(),
		"bigBlind", e.game.BigBlind())

	e.notify(func(o Observer) {
		o.HandStarted(handID, e.game.Views(), e.game.DealerPos(), e.game.SmallBlind(), e.game.BigBlind())
	})

	for _, p := range e.game.Players() {
		if agent, ok := e.agents[p.Name]; ok {
			e.safeHook(p.Name, func() {
				agent.ResetForNewHand()
				agent.ReceiveCards(p.HoleCards)
			})
		}
	}

	streets := []struct {
		street Street
		deal   int
	}{
		{Preflop, 0},
		{Flop, 3},
		{Turn, 1},
		{River, 1},
	}

	for _, s := range streets {
		if e.game.NonFoldedCount() <= 1 {
			break
		}
		if s.deal > 0 {
			e.game.ResetBetsForNewRound()
			cards := e.game.DealCommunityCards(s.deal)
			e.logger.Debug("community dealt", "hand", handID, "street", s.street, "cards", deck.Format(cards))
			e.notify(func(o Observer) {
				o.CommunityDealt(s.street, e.game.Community())
			})
			for _, p := range e.game.Players() {
				if agent, ok := e.agents[p.Name]; ok {
					e.safeHook(p.Name, func() {
						agent.OnCommunityCards(e.game.Community(), s.street)
					})
				}
			}
		}
		// With one or zero players still able to act the remaining
		// streets are a runout, no betting.
		if e.game.ActiveCount() >= 2 || (e.game.ActiveCount() == 1 && e.unmatchedBetExists()) {
			e.runBettingRound(s.street)
		}
	}

	result := e.settle(handID)
	result.Actions = append([]ActionRecord(nil), e.history...)

	for _, p := range e.game.Players() {
		if agent, ok := e.agents[p.Name]; ok {
			e.safeHook(p.Name, func() {
				agent.OnHandComplete(result.Winner, result.Pot, result.HandName)
			})
		}
	}

	if total := e.game.TotalChips(); total != startTotal {
		e.logger.Error("chip conservation violated",
			"hand", handID, "before", startTotal, "after", total)
	}

	return result, true
}

// unmatchedBetExists reports whether the single remaining active player
// still owes chips against the current bet. This happens when everyone
// else is all-in for more than that player has matched.
func (e *Engine) unmatchedBetExists() bool {
	for _, p := range e.game.Players() {
		if p.IsActive() && p.Bet < e.game.CurrentBet() {
			return true
		}
	}
	return false
}

// runBettingRound prompts agents in turn until the round closes. An
// agent that returns illegal actions maxIllegal times in a row is
// folded on its behalf.
func (e *Engine) runBettingRound(street Street) {
	round := e.game.NewRound(street)

	for !round.Complete() {
		seat := round.CurrentSeat()
		if seat < 0 {
			return
		}
		player := round.Current()
		agent := e.agents[player.Name]

		action, amount := Fold, 0
		if agent != nil {
			action, amount = e.decide(agent, player, seat, street)
		}

		res := round.Apply(action, amount)
		e.history = append(e.history, ActionRecord{
			PlayerName: player.Name,
			Action:     res.Action,
			Amount:     res.Amount,
			Street:     street,
			Position:   seat,
		})

		e.logger.Debug("action applied",
			"player", player.Name,
			"street", street,
			"action", res.Display,
			"amount", res.Amount,
			"pot", e.game.Pot())

		pot := e.game.Pot()
		e.notify(func(o Observer) {
			o.ActionApplied(res, pot)
		})
		for _, p := range e.game.Players() {
			if a, ok := e.agents[p.Name]; ok {
				e.safeHook(p.Name, func() {
					a.OnPlayerAction(player.Name, res.Action, res.Amount)
				})
			}
		}
	}
}

// decide asks the agent for a legal action, re-prompting after each
// illegal one. Validation never mutates state so retries are safe.
func (e *Engine) decide(agent Agent, player *Player, seat int, street Street) (Action, int) {
	for attempt := 1; attempt <= e.maxIllegal; attempt++ {
		obs := e.game.ObservationFor(seat, street, e.history)
		action, amount := agent.DecideAction(obs)

		ok, reason := e.game.ValidateAction(player, action, amount)
		if ok {
			return action, amount
		}
		e.logger.Warn("illegal action rejected",
			"player", player.Name,
			"action", action,
			"amount", amount,
			"reason", reason,
			"attempt", attempt)
	}
	e.logger.Warn("too many illegal actions, forcing fold", "player", player.Name)
	return Fold, 0
}

// settle distributes the pot, by forfeit when only one player remains
// and by showdown otherwise.
func (e *Engine) settle(handID string) *HandResult {
	result := &HandResult{ID: handID, Pot: e.game.Pot()}

	contenders := e.game.NonFoldedPlayers()
	if len(contenders) == 1 {
		winner := contenders[0]
		amount := e.game.AwardPotTo(winner)
		result.Winner = winner.Name
		result.EndedBy = "fold"
		result.Pots = []PotOutcome{{
			Label:          "Main Pot",
			Amount:         amount,
			Winners:        []string{winner.Name},
			PrizePerWinner: amount,
		}}
	} else {
		ranked := e.game.EvaluateHands()
		potResults := e.game.SidePotWinners(ranked)
		e.game.DistributePot(potResults)

		result.EndedBy = "showdown"
		for _, pr := range potResults {
			outcome := PotOutcome{
				Label:          pr.Label,
				Amount:         pr.Amount,
				PrizePerWinner: pr.PrizePerWinner,
				HandName:       e.game.DescribeScore(pr.WinningScore),
			}
			for _, w := range pr.Winners {
				outcome.Winners = append(outcome.Winners, w.Name)
			}
			result.Pots = append(result.Pots, outcome)
		}
		if len(result.Pots) > 0 {
			result.Winner = result.Pots[0].Winners[0]
			result.HandName = result.Pots[0].HandName
		}
	}

	e.logger.Info("hand complete",
		"hand", handID,
		"winner", result.Winner,
		"pot", result.Pot,
		"endedBy", result.EndedBy,
		"handName", result.HandName)

	pots := result.Pots
	e.notify(func(o Observer) {
		o.PotAwarded(handID, pots)
	})
	return result
}

// RemoveBusted drops players with zero chips, releases their agents and
// reports the eliminations. Returns the eliminated names.
func (e *Engine) RemoveBusted() []string {
	removed := e.game.RemoveBankruptPlayers()
	for _, name := range removed {
		delete(e.agents, name)
		e.logger.Info("player eliminated", "player", name)
		n := name
		e.notify(func(o Observer) {
			o.PlayerEliminated(n)
		})
	}
	return removed
}

// safeHook invokes an agent hook or lifecycle call, discarding panics
// at the call site so a misbehaving agent can never abort the hand.
// GuardedAgent recovers too, but Seat accepts raw agents.
func (e *Engine) safeHook(player string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("agent hook panicked", "player", player, "panic", r)
		}
	}()
	fn()
}

// notify fans out to every observer, isolating panics
func (e *Engine) notify(fn func(Observer)) {
	for _, o := range e.observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					e.logger.Warn("observer panicked", "panic", r)
				}
			}()
			fn(o)
		}()
	}
}
