package game

import "testing"

func TestPreflopActionOpensLeftOfBigBlind(t *testing.T) {
	t.Parallel()

	g := newTestGame(1000, 1000, 1000, 1000)
	if !g.StartHand() {
		t.Fatal("hand should start")
	}

	r := g.NewRound(Preflop)
	if r.CurrentSeat() != 3 {
		t.Errorf("first to act preflop = seat %d, want 3", r.CurrentSeat())
	}
}

func TestPostflopActionOpensLeftOfDealer(t *testing.T) {
	t.Parallel()

	g := newTestGame(1000, 1000, 1000, 1000)
	if !g.StartHand() {
		t.Fatal("hand should start")
	}
	g.ResetBetsForNewRound()

	r := g.NewRound(Flop)
	if r.CurrentSeat() != 1 {
		t.Errorf("first to act postflop = seat %d, want 1", r.CurrentSeat())
	}
}

func TestBigBlindHasTheOption(t *testing.T) {
	t.Parallel()

	g := newTestGame(1000, 1000, 1000, 1000)
	g.StartHand()

	r := g.NewRound(Preflop)
	r.Apply(Call, 0) // seat 3
	r.Apply(Call, 0) // seat 0 (dealer)
	r.Apply(Call, 0) // seat 1 (small blind completes)

	// Everyone has matched the big blind but the big blind has not
	// acted yet, so the round stays open.
	if r.Complete() {
		t.Fatal("round must not complete before the big blind acts")
	}
	if r.CurrentSeat() != 2 {
		t.Fatalf("action should be on the big blind, got seat %d", r.CurrentSeat())
	}

	r.Apply(Check, 0)
	if !r.Complete() {
		t.Error("round should complete after the big blind checks")
	}
}

func TestFullRaiseReopensAction(t *testing.T) {
	t.Parallel()

	g := newTestGame(1000, 1000, 1000, 1000)
	g.StartHand()

	r := g.NewRound(Preflop)
	r.Apply(Call, 0) // seat 3 calls 10
	r.Apply(Call, 0) // seat 0 calls 10

	res := r.Apply(Raise, 40) // seat 1 raises
	if !res.FullRaise {
		t.Fatal("raise to 40 over a 10 bet should be a full raise")
	}

	// Seats 3 and 0 already acted but must now respond again.
	r.Apply(Call, 0) // seat 2
	if r.Complete() {
		t.Fatal("round must stay open until earlier callers respond to the raise")
	}
	r.Apply(Call, 0) // seat 3
	r.Apply(Call, 0) // seat 0
	if !r.Complete() {
		t.Error("round should complete once everyone matches the raise")
	}
	if g.Pot() != 160 {
		t.Errorf("pot = %d, want 160", g.Pot())
	}
}

func TestShortAllInRaiseDoesNotReopen(t *testing.T) {
	t.Parallel()

	g := newTestGame(35, 1000, 1000, 1000)
	g.StartHand()

	r := g.NewRound(Preflop)
	r.Apply(Raise, 30) // seat 3 raises to 30

	res := r.Apply(Raise, 35) // seat 0 all-in, short of the 40 minimum
	if res.FullRaise || !res.AllIn {
		t.Fatalf("expected short all-in raise, got fullRaise=%v allIn=%v", res.FullRaise, res.AllIn)
	}
	if g.CurrentBet() != 35 {
		t.Fatalf("current bet = %d, want 35", g.CurrentBet())
	}

	r.Apply(Call, 0) // seat 1
	r.Apply(Call, 0) // seat 2
	if r.Complete() {
		t.Fatal("seat 3 still owes 5 against the short all-in")
	}
	r.Apply(Call, 0) // seat 3 matches the extra 5
	if !r.Complete() {
		t.Error("round should complete once the short all-in is matched")
	}
}

func TestRoundCompleteWhenOnlyOneRemains(t *testing.T) {
	t.Parallel()

	g := newTestGame(1000, 1000, 1000)
	g.StartHand()

	// 3 players: dealer seat 0 acts first preflop.
	r := g.NewRound(Preflop)
	r.Apply(Fold, 0) // seat 0
	r.Apply(Fold, 0) // seat 1
	if !r.Complete() {
		t.Error("round should complete when one player remains")
	}
}

func TestRoundSkipsFoldedAndAllIn(t *testing.T) {
	t.Parallel()

	g := newTestGame(1000, 1000, 1000, 1000)
	g.StartHand()
	g.players[3].Folded = true
	g.players[0].AllIn = true

	r := g.NewRound(Preflop)
	if r.CurrentSeat() != 1 {
		t.Errorf("round should skip folded seat 3 and all-in seat 0, got %d", r.CurrentSeat())
	}
}

func TestCurrentNilWhenNobodyCanAct(t *testing.T) {
	t.Parallel()

	g := newTestGame(1000, 1000)
	g.StartHand()
	g.players[0].AllIn = true
	g.players[1].AllIn = true

	r := g.NewRound(Flop)
	if r.Current() != nil || r.CurrentSeat() != -1 {
		t.Error("expected no current player when everyone is all-in")
	}
	if !r.Complete() {
		t.Error("round with no actors should be complete")
	}
}

func TestStreetAndActionStrings(t *testing.T) {
	t.Parallel()

	if Preflop.String() != "preflop" || River.String() != "river" {
		t.Error("unexpected street names")
	}
	if Fold.String() != "fold" || Raise.String() != "raise" {
		t.Error("unexpected action names")
	}
}
