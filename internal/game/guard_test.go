package game

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/jcbhmphrs733/texasholdem2/internal/deck"
)

// blockingAgent never answers
type blockingAgent struct {
	scriptedAgent
	block chan struct{}
}

func (b *blockingAgent) DecideAction(obs Observation) (Action, int) {
	<-b.block
	return Check, 0
}

// panickyAgent panics everywhere
type panickyAgent struct{}

func (panickyAgent) DecideAction(Observation) (Action, int) { panic("decision boom") }
func (panickyAgent) ReceiveCards([]deck.Card)               { panic("cards boom") }
func (panickyAgent) ResetForNewHand()                       { panic("reset boom") }
func (panickyAgent) OnPlayerAction(string, Action, int)     { panic("action boom") }
func (panickyAgent) OnCommunityCards([]deck.Card, Street)   { panic("community boom") }
func (panickyAgent) OnHandComplete(string, int, string)     { panic("complete boom") }

func TestGuardedAgentTimeoutFolds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mock := quartz.NewMock(t)
	trap := mock.Trap().AfterFunc()
	defer trap.Close()

	inner := &blockingAgent{block: make(chan struct{})}
	defer close(inner.block)
	ga := NewGuardedAgent(inner, "slow", time.Second, mock, testLogger())

	type result struct {
		action Action
		amount int
	}
	done := make(chan result, 1)
	go func() {
		action, amount := ga.DecideAction(Observation{})
		done <- result{action, amount}
	}()

	// Wait for the deadline timer to be armed, then fire it.
	call := trap.MustWait(ctx)
	call.Release()
	mock.Advance(time.Second).MustWait(ctx)

	res := <-done
	if res.action != Fold || res.amount != 0 {
		t.Errorf("timed-out decision = %v/%d, want fold/0", res.action, res.amount)
	}
}

func TestGuardedAgentPassesThroughInTime(t *testing.T) {
	t.Parallel()

	inner := (&scriptedAgent{}).script(Raise, 40)
	ga := NewGuardedAgent(inner, "fast", time.Minute, quartz.NewReal(), testLogger())

	action, amount := ga.DecideAction(Observation{})
	if action != Raise || amount != 40 {
		t.Errorf("decision = %v/%d, want raise/40", action, amount)
	}
}

func TestGuardedAgentZeroTimeoutWaitsForever(t *testing.T) {
	t.Parallel()

	inner := (&scriptedAgent{}).script(Call, 0)
	ga := NewGuardedAgent(inner, "untimed", 0, nil, testLogger())

	action, _ := ga.DecideAction(Observation{})
	if action != Call {
		t.Errorf("decision = %v, want call", action)
	}
}

func TestGuardedAgentPanicFolds(t *testing.T) {
	t.Parallel()

	ga := NewGuardedAgent(panickyAgent{}, "flaky", time.Minute, quartz.NewReal(), testLogger())

	action, amount := ga.DecideAction(Observation{})
	if action != Fold || amount != 0 {
		t.Errorf("panicked decision = %v/%d, want fold/0", action, amount)
	}
}

func TestGuardedAgentSwallowsHookPanics(t *testing.T) {
	t.Parallel()

	ga := NewGuardedAgent(panickyAgent{}, "flaky", time.Minute, quartz.NewReal(), testLogger())

	// None of these may propagate the panic.
	ga.ReceiveCards(nil)
	ga.ResetForNewHand()
	ga.OnPlayerAction("x", Fold, 0)
	ga.OnCommunityCards(nil, Flop)
	ga.OnHandComplete("x", 0, "")
}

func TestGuardedAgentWrapsFullHand(t *testing.T) {
	t.Parallel()

	g := newTestGame()
	e := NewEngine(g, testLogger(), 3)
	for _, name := range []string{"p0", "p1"} {
		e.Seat(name, 1000, NewGuardedAgent(&scriptedAgent{}, name, time.Minute, quartz.NewReal(), testLogger()))
	}
	e.Seat("p2", 1000, NewGuardedAgent(panickyAgent{}, "p2", time.Minute, quartz.NewReal(), testLogger()))

	result, ok := e.PlayHand()
	if !ok {
		t.Fatal("hand should play with guarded agents")
	}
	if result.Winner == "" {
		t.Error("hand should settle")
	}
	if g.TotalChips() != 3000 {
		t.Errorf("total chips = %d, want 3000", g.TotalChips())
	}
}
