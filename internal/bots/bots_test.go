package bots

import (
	"math/rand"
	"testing"

	"github.com/jcbhmphrs733/texasholdem2/internal/game"
)

func TestFactoryKnowsEveryStrategy(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for _, strategy := range Strategies() {
		agent, err := New(strategy, rng)
		if err != nil {
			t.Errorf("strategy %q: %v", strategy, err)
		}
		if agent == nil {
			t.Errorf("strategy %q returned nil agent", strategy)
		}
	}
}

func TestFactoryRejectsUnknownStrategy(t *testing.T) {
	t.Parallel()

	if _, err := New("psychic", rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestFolderChecksWhenFree(t *testing.T) {
	t.Parallel()

	f := NewFolder()
	if action, _ := f.DecideAction(game.Observation{CurrentBet: 10, PlayerBet: 10}); action != game.Check {
		t.Errorf("folder with matched bet should check, got %s", action)
	}
	if action, _ := f.DecideAction(game.Observation{CurrentBet: 50, PlayerBet: 10}); action != game.Fold {
		t.Errorf("folder facing a bet should fold, got %s", action)
	}
}

func TestStationNeverFolds(t *testing.T) {
	t.Parallel()

	s := NewStation()
	if action, _ := s.DecideAction(game.Observation{CurrentBet: 500, PlayerBet: 0}); action != game.Call {
		t.Errorf("station facing a bet should call, got %s", action)
	}
	if action, _ := s.DecideAction(game.Observation{}); action != game.Check {
		t.Errorf("station with no bet should check, got %s", action)
	}
}

func TestAllInShovesWhenPossible(t *testing.T) {
	t.Parallel()

	a := NewAllIn()
	obs := game.Observation{CurrentBet: 10, PlayerBet: 0, Chips: 500, MaxRaise: 500, MinRaise: 10}
	action, amount := a.DecideAction(obs)
	if action != game.Raise || amount != 500 {
		t.Errorf("all-in bot = %s/%d, want raise/500", action, amount)
	}

	// Too short to raise over the current bet: calls instead.
	short := game.Observation{CurrentBet: 500, PlayerBet: 0, Chips: 100, MaxRaise: 100, MinRaise: 10}
	if action, _ := a.DecideAction(short); action != game.Call {
		t.Errorf("short all-in bot should call, got %s", action)
	}
}

func TestRandomAlwaysLegal(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(99))
	r := NewRandom(rng)

	obs := game.Observation{
		CurrentBet: 20,
		PlayerBet:  10,
		Chips:      300,
		MaxRaise:   310,
		MinRaise:   10,
	}
	for i := 0; i < 500; i++ {
		action, amount := r.DecideAction(obs)
		switch action {
		case game.Fold, game.Call:
		case game.Check:
			t.Fatal("random bot checked while facing a bet")
		case game.Raise:
			if amount < obs.CurrentBet+obs.MinRaise || amount > obs.MaxRaise {
				t.Fatalf("random raise to %d outside [%d, %d]", amount, obs.CurrentBet+obs.MinRaise, obs.MaxRaise)
			}
		}
	}
}

func TestRaiserPrefersMinRaise(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	r := NewRaiser(rng)
	obs := game.Observation{CurrentBet: 20, PlayerBet: 0, Chips: 500, MaxRaise: 500, MinRaise: 10}

	raises := 0
	for i := 0; i < 300; i++ {
		action, amount := r.DecideAction(obs)
		if action == game.Raise {
			raises++
			if amount != 30 {
				t.Fatalf("raiser amount = %d, want the 30 minimum", amount)
			}
		}
	}
	if raises == 0 {
		t.Error("raiser never raised across 300 decisions")
	}
}

func TestBaseTracksHoleCards(t *testing.T) {
	t.Parallel()

	f := NewFolder()
	f.ReceiveCards(nil)
	f.ResetForNewHand()
	if len(f.HoleCards()) != 0 {
		t.Error("reset should clear hole cards")
	}
}
