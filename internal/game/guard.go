package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/jcbhmphrs733/texasholdem2/internal/deck"
)

// GuardedAgent wraps an Agent so that a slow, panicking, or otherwise
// misbehaving decision can never stall or crash a hand. A decision that
// exceeds the timeout or panics becomes a fold. Notification hooks are
// called with panic recovery and a zero result on failure.
type GuardedAgent struct {
	inner   Agent
	name    string
	timeout time.Duration
	clock   quartz.Clock
	logger  *log.Logger
}

// NewGuardedAgent wraps inner. A timeout of zero disables the deadline
// but panic recovery still applies.
func NewGuardedAgent(inner Agent, name string, timeout time.Duration, clock quartz.Clock, logger *log.Logger) *GuardedAgent {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &GuardedAgent{
		inner:   inner,
		name:    name,
		timeout: timeout,
		clock:   clock,
		logger:  logger,
	}
}

type decision struct {
	action Action
	amount int
}

// DecideAction runs the wrapped agent's decision in its own goroutine
// and races it against the deadline. On timeout the goroutine's
// eventual result is discarded.
func (ga *GuardedAgent) DecideAction(obs Observation) (Action, int) {
	done := make(chan decision, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ga.logger.Error("agent panicked during decision", "player", ga.name, "panic", fmt.Sprint(r))
				done <- decision{action: Fold}
			}
		}()
		action, amount := ga.inner.DecideAction(obs)
		done <- decision{action: action, amount: amount}
	}()

	if ga.timeout <= 0 {
		d := <-done
		return d.action, d.amount
	}

	timedOut := make(chan struct{})
	timer := ga.clock.AfterFunc(ga.timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case d := <-done:
		return d.action, d.amount
	case <-timedOut:
		ga.logger.Warn("agent decision timed out, folding", "player", ga.name, "timeout", ga.timeout)
		return Fold, 0
	}
}

func (ga *GuardedAgent) ReceiveCards(cards []deck.Card) {
	ga.safely("ReceiveCards", func() { ga.inner.ReceiveCards(cards) })
}

func (ga *GuardedAgent) ResetForNewHand() {
	ga.safely("ResetForNewHand", func() { ga.inner.ResetForNewHand() })
}

func (ga *GuardedAgent) OnPlayerAction(name string, action Action, amount int) {
	ga.safely("OnPlayerAction", func() { ga.inner.OnPlayerAction(name, action, amount) })
}

func (ga *GuardedAgent) OnCommunityCards(cards []deck.Card, street Street) {
	ga.safely("OnCommunityCards", func() { ga.inner.OnCommunityCards(cards, street) })
}

func (ga *GuardedAgent) OnHandComplete(winner string, pot int, winningHand string) {
	ga.safely("OnHandComplete", func() { ga.inner.OnHandComplete(winner, pot, winningHand) })
}

func (ga *GuardedAgent) safely(hook string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			ga.logger.Warn("agent hook panicked", "player", ga.name, "hook", hook, "panic", fmt.Sprint(r))
		}
	}()
	fn()
}
