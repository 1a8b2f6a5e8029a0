package game

import (
	"fmt"
	"sort"

	"github.com/jcbhmphrs733/texasholdem2/internal/evaluator"
)

// PlayerScore pairs a player with their evaluated hand strength
type PlayerScore struct {
	Player *Player
	Score  evaluator.Score
}

// PotResult describes the settlement of one pot tier
type PotResult struct {
	Label          string
	Amount         int
	Winners        []*Player
	PrizePerWinner int
	Remainder      int
	WinningScore   evaluator.Score
}

// EvaluateHands scores every non-folded player's hand and returns them
// strongest first. Ties keep table order so results are deterministic.
func (g *Game) EvaluateHands() []PlayerScore {
	var scores []PlayerScore
	for _, p := range g.players {
		if p.Folded {
			continue
		}
		scores = append(scores, PlayerScore{
			Player: p,
			Score:  g.eval.Evaluate(p.HoleCards, g.community),
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score < scores[j].Score
	})
	return scores
}

// SidePotWinners settles each pot tier independently: the eligible
// subset's best (lowest) score wins the tier, split evenly on a tie.
// The integer remainder of a split is assigned to the tied winner
// seated earliest after the dealer button.
func (g *Game) SidePotWinners(ranked []PlayerScore) []PotResult {
	scoreOf := make(map[*Player]evaluator.Score, len(ranked))
	for _, ps := range ranked {
		scoreOf[ps.Player] = ps.Score
	}

	var results []PotResult
	for i, tier := range g.SplitPots() {
		var best evaluator.Score
		var winners []*Player
		for _, p := range tier.Eligible {
			score, ok := scoreOf[p]
			if !ok {
				continue
			}
			switch {
			case len(winners) == 0 || score < best:
				best = score
				winners = []*Player{p}
			case score == best:
				winners = append(winners, p)
			}
		}
		if len(winners) == 0 {
			continue
		}

		label := "Main Pot"
		if i > 0 {
			label = fmt.Sprintf("Side Pot %d", i)
		}
		results = append(results, PotResult{
			Label:          label,
			Amount:         tier.Amount,
			Winners:        winners,
			PrizePerWinner: tier.Amount / len(winners),
			Remainder:      tier.Amount % len(winners),
			WinningScore:   best,
		})
	}
	return results
}

// DistributePot credits each tier's winners and zeroes the pot. This
// is the only path by which chips increase. Returns the total paid.
func (g *Game) DistributePot(results []PotResult) int {
	total := 0
	for _, res := range results {
		for _, w := range res.Winners {
			w.Chips += res.PrizePerWinner
			total += res.PrizePerWinner
		}
		if res.Remainder > 0 {
			if w := g.firstAfterDealer(res.Winners); w != nil {
				w.Chips += res.Remainder
				total += res.Remainder
			}
		}
	}
	g.pot = 0
	return total
}

// AwardPotTo hands the entire pot to the sole surviving player without
// any hand evaluation.
func (g *Game) AwardPotTo(p *Player) int {
	amount := g.pot
	p.Chips += amount
	g.pot = 0
	return amount
}

// DescribeScore returns the category name for a score
func (g *Game) DescribeScore(s evaluator.Score) string {
	return g.eval.Describe(s)
}

// firstAfterDealer returns the candidate seated earliest after the
// dealer button in table order.
func (g *Game) firstAfterDealer(candidates []*Player) *Player {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		seat := g.players[(g.dealerPos+i)%n]
		for _, c := range candidates {
			if c == seat {
				return c
			}
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return nil
}
