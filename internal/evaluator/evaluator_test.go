package evaluator

import (
	"testing"

	"github.com/jcbhmphrs733/texasholdem2/internal/deck"
)

// c parses shorthand like "As", "Th", "2d" into a card
func c(s string) deck.Card {
	var rank deck.Rank
	switch s[0] {
	case 'A':
		rank = deck.Ace
	case 'K':
		rank = deck.King
	case 'Q':
		rank = deck.Queen
	case 'J':
		rank = deck.Jack
	case 'T':
		rank = deck.Ten
	default:
		rank = deck.Rank(s[0] - '0')
	}
	var suit deck.Suit
	switch s[1] {
	case 's':
		suit = deck.Spades
	case 'h':
		suit = deck.Hearts
	case 'd':
		suit = deck.Diamonds
	case 'c':
		suit = deck.Clubs
	}
	return deck.NewCard(suit, rank)
}

func cards(ss ...string) []deck.Card {
	out := make([]deck.Card, len(ss))
	for i, s := range ss {
		out[i] = c(s)
	}
	return out
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		hole      []string
		community []string
		category  int
	}{
		{"royal flush", []string{"As", "Ks"}, []string{"Qs", "Js", "Ts", "2d", "3c"}, RoyalFlushType},
		{"straight flush", []string{"9h", "8h"}, []string{"7h", "6h", "5h", "Ad", "Ac"}, StraightFlushType},
		{"steel wheel", []string{"Ah", "2h"}, []string{"3h", "4h", "5h", "Kc", "Kd"}, StraightFlushType},
		{"four of a kind", []string{"7s", "7h"}, []string{"7d", "7c", "2s", "9h", "Jc"}, FourOfAKindType},
		{"full house", []string{"Ts", "Th"}, []string{"Td", "4c", "4s", "9h", "2c"}, FullHouseType},
		{"full house from two trips", []string{"Ts", "Th"}, []string{"Td", "4c", "4s", "4h", "2c"}, FullHouseType},
		{"flush", []string{"Ks", "2s"}, []string{"9s", "6s", "3s", "Ah", "Ad"}, FlushType},
		{"straight", []string{"9c", "8d"}, []string{"7h", "6s", "5c", "Kd", "Kh"}, StraightType},
		{"wheel straight", []string{"Ac", "2d"}, []string{"3h", "4s", "5c", "Kd", "9h"}, StraightType},
		{"three of a kind", []string{"8s", "8h"}, []string{"8d", "Kc", "4s", "2h", "Jc"}, ThreeOfAKindType},
		{"two pair", []string{"As", "Ah"}, []string{"Kd", "Kc", "4s", "2h", "Jc"}, TwoPairType},
		{"one pair", []string{"As", "Ah"}, []string{"Kd", "Qc", "4s", "2h", "Jc"}, OnePairType},
		{"high card", []string{"As", "Kh"}, []string{"Qd", "Jc", "9s", "2h", "4c"}, HighCardType},
		{"preflop pair", []string{"As", "Ah"}, nil, OnePairType},
		{"preflop high card", []string{"As", "Kh"}, nil, HighCardType},
	}

	eval := New()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			score := eval.Evaluate(cards(tt.hole...), cards(tt.community...))
			if score.Category() != tt.category {
				t.Errorf("got category %d (%s), want %d", score.Category(), score, tt.category)
			}
		})
	}
}

func TestEvaluateOrdering(t *testing.T) {
	t.Parallel()

	eval := New()
	board := cards("2s", "7h", "9d", "Jc", "4s")

	// Stronger hand on the same board must score lower.
	pairs := [][2][]deck.Card{
		{cards("As", "Ah"), cards("Ks", "Kh")}, // aces beat kings
		{cards("Js", "Jh"), cards("As", "Ah")}, // trip jacks beat aces
		{cards("As", "9h"), cards("Ks", "9h")}, // same pair, ace kicker wins
		{cards("9s", "9h"), cards("7s", "7d")}, // trip nines beat trip sevens
	}
	for i, pair := range pairs {
		strong := eval.Evaluate(pair[0], board)
		weak := eval.Evaluate(pair[1], board)
		if strong.Compare(weak) != -1 {
			t.Errorf("case %d: expected %v to beat %v (scores %d vs %d)", i, pair[0], pair[1], strong, weak)
		}
	}
}

func TestEvaluateTies(t *testing.T) {
	t.Parallel()

	eval := New()
	// Board plays for both: the best five cards are the board straight.
	board := cards("5s", "6h", "7d", "8c", "9s")
	a := eval.Evaluate(cards("2s", "3h"), board)
	b := eval.Evaluate(cards("2d", "3c"), board)
	if a.Compare(b) != 0 {
		t.Errorf("identical best hands should tie, got %d vs %d", a, b)
	}
}

func TestStraightHighEdgeCases(t *testing.T) {
	t.Parallel()

	eval := New()

	// Ace-high straight outranks king-high straight.
	broadway := eval.Evaluate(cards("As", "Kh"), cards("Qd", "Jc", "Ts", "2h", "3d"))
	kingHigh := eval.Evaluate(cards("9s", "Kh"), cards("Qd", "Jc", "Ts", "2h", "3d"))
	if broadway.Compare(kingHigh) != -1 {
		t.Error("broadway should beat king-high straight")
	}

	// The wheel is the lowest straight.
	wheel := eval.Evaluate(cards("Ac", "2d"), cards("3h", "4s", "5c", "Kd", "9h"))
	sixHigh := eval.Evaluate(cards("6c", "2d"), cards("3h", "4s", "5c", "Kd", "9h"))
	if sixHigh.Compare(wheel) != -1 {
		t.Error("six-high straight should beat the wheel")
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	eval := New()
	score := eval.Evaluate(cards("As", "Ah"), cards("Ad", "Kc", "Ks", "2h", "3c"))
	if got := eval.Describe(score); got != "Full House" {
		t.Errorf("Describe = %q, want Full House", got)
	}
}
