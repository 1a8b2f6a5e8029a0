package game

import "sort"

// SidePot is one tier of the pot. Eligibility is restricted to players
// who contributed at least the tier's level and have not folded. Tiers
// are derived state: rebuilt from hand contributions whenever chips
// must be distributed, never persisted.
type SidePot struct {
	Amount   int
	Eligible []*Player
	Level    int // contribution threshold that created this tier
}

// SplitPots partitions the pot into tiers from the distinct hand-total
// contributions of the non-folded players, lowest level first. The
// first tier is the main pot. Chips that belong to no tier (folded
// players' contributions and any integer slack) are rolled into the
// main pot rather than lost, so the tier amounts always sum to the pot.
func (g *Game) SplitPots() []SidePot {
	contenders := g.NonFoldedPlayers()
	if len(contenders) == 0 {
		return nil
	}
	if len(contenders) == 1 {
		return []SidePot{{Amount: g.pot, Eligible: contenders}}
	}

	levels := make([]int, 0, len(contenders))
	seen := make(map[int]bool)
	for _, p := range contenders {
		if !seen[p.TotalBet] {
			seen[p.TotalBet] = true
			levels = append(levels, p.TotalBet)
		}
	}
	sort.Ints(levels)

	var tiers []SidePot
	prev := 0
	distributed := 0
	for _, level := range levels {
		if level <= prev {
			continue
		}
		var eligible []*Player
		for _, p := range contenders {
			if p.TotalBet >= level {
				eligible = append(eligible, p)
			}
		}
		amount := (level - prev) * len(eligible)
		tiers = append(tiers, SidePot{
			Amount:   amount,
			Eligible: eligible,
			Level:    level,
		})
		distributed += amount
		prev = level
	}

	if len(tiers) == 0 {
		// Every contender contributed zero; the pot is pure slack.
		return []SidePot{{Amount: g.pot, Eligible: contenders}}
	}

	// Folded contributions and rounding slack go to the main pot.
	if distributed != g.pot {
		tiers[0].Amount += g.pot - distributed
	}
	return tiers
}
