// Package evaluator scores poker hands from 2 hole cards plus up to 5
// community cards. Scores are comparable integers where lower is
// stronger, so a straight flush always scores below a pair.
package evaluator

import (
	"math/bits"

	"github.com/jcbhmphrs733/texasholdem2/internal/deck"
)

// Hand category constants (lower number = stronger hand)
const (
	RoyalFlushType    = 1
	StraightFlushType = 2
	FourOfAKindType   = 3
	FullHouseType     = 4
	FlushType         = 5
	StraightType      = 6
	ThreeOfAKindType  = 7
	TwoPairType       = 8
	OnePairType       = 9
	HighCardType      = 10
)

// Score represents the strength of a poker hand. Lower is stronger.
// The top bits carry the hand category, the low 20 bits carry up to
// five tiebreak ranks packed as nibbles.
type Score int

// Category returns the hand category of the score
func (s Score) Category() int {
	return int(s) >> 20
}

// Compare returns -1 if s is stronger, 1 if other is stronger, 0 if equal
func (s Score) Compare(other Score) int {
	if s < other {
		return -1
	}
	if s > other {
		return 1
	}
	return 0
}

// String returns the readable name of the hand category
func (s Score) String() string {
	switch s.Category() {
	case RoyalFlushType:
		return "Royal Flush"
	case StraightFlushType:
		return "Straight Flush"
	case FourOfAKindType:
		return "Four of a Kind"
	case FullHouseType:
		return "Full House"
	case FlushType:
		return "Flush"
	case StraightType:
		return "Straight"
	case ThreeOfAKindType:
		return "Three of a Kind"
	case TwoPairType:
		return "Two Pair"
	case OnePairType:
		return "One Pair"
	case HighCardType:
		return "High Card"
	default:
		return "Unknown"
	}
}

// Evaluator scores hands. It is stateless and safe to share.
type Evaluator struct{}

// New creates a new evaluator
func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate scores the best hand makeable from the given hole and
// community cards. It accepts from 2 to 7 cards total, so pre-flop
// hands degrade to pair/high-card scoring.
func (e *Evaluator) Evaluate(hole, community []deck.Card) Score {
	var suitMasks [4]uint16
	var counts [15]int

	all := make([]deck.Card, 0, 7)
	all = append(all, hole...)
	all = append(all, community...)
	for _, c := range all {
		suitMasks[c.Suit] |= 1 << (int(c.Rank) - 2)
		counts[c.Rank]++
	}

	rankMask := suitMasks[0] | suitMasks[1] | suitMasks[2] | suitMasks[3]

	// Straight flush / royal flush
	for _, sm := range suitMasks {
		if bits.OnesCount16(sm) < 5 {
			continue
		}
		if high := straightHigh(sm); high > 0 {
			if high == int(deck.Ace) {
				return pack(RoyalFlushType, high)
			}
			return pack(StraightFlushType, high)
		}
	}

	// Collect ranks by multiplicity, high to low
	var quads, trips, pairs, singles []int
	for r := int(deck.Ace); r >= int(deck.Two); r-- {
		switch counts[r] {
		case 4:
			quads = append(quads, r)
		case 3:
			trips = append(trips, r)
		case 2:
			pairs = append(pairs, r)
		case 1:
			singles = append(singles, r)
		}
	}

	if len(quads) > 0 {
		kicker := bestKicker(rankMask, quads[0])
		return pack(FourOfAKindType, quads[0], kicker)
	}

	if len(trips) > 0 && (len(trips) > 1 || len(pairs) > 0) {
		pairRank := 0
		if len(trips) > 1 {
			pairRank = trips[1]
		}
		if len(pairs) > 0 && pairs[0] > pairRank {
			pairRank = pairs[0]
		}
		return pack(FullHouseType, trips[0], pairRank)
	}

	for _, sm := range suitMasks {
		if bits.OnesCount16(sm) >= 5 {
			return pack(FlushType, topRanks(sm, 5)...)
		}
	}

	if high := straightHigh(rankMask); high > 0 {
		return pack(StraightType, high)
	}

	if len(trips) > 0 {
		ks := topN(singles, 2)
		return pack(ThreeOfAKindType, append([]int{trips[0]}, ks...)...)
	}

	if len(pairs) >= 2 {
		kicker := 0
		for _, r := range append(pairs[2:], singles...) {
			if r > kicker {
				kicker = r
			}
		}
		return pack(TwoPairType, pairs[0], pairs[1], kicker)
	}

	if len(pairs) == 1 {
		ks := topN(singles, 3)
		return pack(OnePairType, append([]int{pairs[0]}, ks...)...)
	}

	return pack(HighCardType, topN(singles, 5)...)
}

// Describe returns the human-readable category name for a score
func (e *Evaluator) Describe(s Score) string {
	return s.String()
}

// pack encodes a category and tiebreak ranks into a Score. Each rank
// nibble stores 14-rank so higher ranks compare lower. Unused nibbles
// hold 13, below the lowest real rank.
func pack(category int, ranks ...int) Score {
	tiebreak := 0
	for i := 0; i < 5; i++ {
		nibble := 13
		if i < len(ranks) && ranks[i] > 0 {
			nibble = 14 - ranks[i]
		}
		tiebreak = tiebreak<<4 | nibble
	}
	return Score(category<<20 | tiebreak)
}

// straightHigh returns the high rank of the best straight in the rank
// mask, or 0 if there is none. Bit 0 = Two, bit 12 = Ace.
func straightHigh(mask uint16) int {
	for high := int(deck.Ace); high >= int(deck.Six); high-- {
		run := uint16(0x1F) << (high - 6)
		if mask&run == run {
			return high
		}
	}
	// Wheel: A-2-3-4-5
	const wheel = uint16(1<<12 | 0xF)
	if mask&wheel == wheel {
		return int(deck.Five)
	}
	return 0
}

// topRanks returns the highest n ranks set in the mask, descending
func topRanks(mask uint16, n int) []int {
	ranks := make([]int, 0, n)
	for bit := 12; bit >= 0 && len(ranks) < n; bit-- {
		if mask&(1<<bit) != 0 {
			ranks = append(ranks, bit+2)
		}
	}
	return ranks
}

// bestKicker returns the highest rank in the mask other than exclude
func bestKicker(mask uint16, exclude int) int {
	for bit := 12; bit >= 0; bit-- {
		if bit+2 != exclude && mask&(1<<bit) != 0 {
			return bit + 2
		}
	}
	return 0
}

// topN returns up to n ranks from the already-descending slice
func topN(ranks []int, n int) []int {
	if len(ranks) > n {
		return ranks[:n]
	}
	return ranks
}
