// Package statistics aggregates outcomes across simulated tournaments.
package statistics

import (
	"math"
	"sort"
)

// TournamentResult is the outcome of one simulated tournament as seen
// by the aggregator.
type TournamentResult struct {
	Winner      string
	HandsPlayed int
	Placements  map[string]int // name to finishing place, 1 is first
}

// BotStats tracks one bot's results across trials
type BotStats struct {
	Wins      int
	Trials    int
	SumPlace  float64
	SumPlace2 float64
}

// Mean returns the bot's average finishing place
func (b *BotStats) Mean() float64 {
	if b.Trials == 0 {
		return 0
	}
	return b.SumPlace / float64(b.Trials)
}

// Variance returns the sample variance of finishing place
func (b *BotStats) Variance() float64 {
	if b.Trials < 2 {
		return 0
	}
	mean := b.Mean()
	return (b.SumPlace2 - float64(b.Trials)*mean*mean) / float64(b.Trials-1)
}

// StdDev returns the standard deviation of finishing place
func (b *BotStats) StdDev() float64 {
	return math.Sqrt(b.Variance())
}

// Statistics aggregates results across all simulated tournaments
type Statistics struct {
	Tournaments int
	TotalHands  int
	MaxHands    int
	MinHands    int
	Bots        map[string]*BotStats
}

// New creates an empty aggregator
func New() *Statistics {
	return &Statistics{Bots: make(map[string]*BotStats)}
}

// Add records one tournament's outcome
func (s *Statistics) Add(result TournamentResult) {
	s.Tournaments++
	s.TotalHands += result.HandsPlayed
	if result.HandsPlayed > s.MaxHands {
		s.MaxHands = result.HandsPlayed
	}
	if s.MinHands == 0 || result.HandsPlayed < s.MinHands {
		s.MinHands = result.HandsPlayed
	}

	for name, place := range result.Placements {
		b := s.Bots[name]
		if b == nil {
			b = &BotStats{}
			s.Bots[name] = b
		}
		b.Trials++
		b.SumPlace += float64(place)
		b.SumPlace2 += float64(place) * float64(place)
		if name == result.Winner {
			b.Wins++
		}
	}
}

// MeanHands returns the average tournament length in hands
func (s *Statistics) MeanHands() float64 {
	if s.Tournaments == 0 {
		return 0
	}
	return float64(s.TotalHands) / float64(s.Tournaments)
}

// WinRate returns a bot's share of tournament wins in [0, 1]
func (s *Statistics) WinRate(name string) float64 {
	if s.Tournaments == 0 {
		return 0
	}
	b := s.Bots[name]
	if b == nil {
		return 0
	}
	return float64(b.Wins) / float64(s.Tournaments)
}

// WinRateConfidence95 returns the 95% confidence interval around a
// bot's win rate, using the normal approximation to the binomial.
func (s *Statistics) WinRateConfidence95(name string) (float64, float64) {
	p := s.WinRate(name)
	if s.Tournaments == 0 {
		return 0, 0
	}
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(s.Tournaments))
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// Ranked returns bot names ordered by wins, most first, ties broken by
// name for stable output.
func (s *Statistics) Ranked() []string {
	names := make([]string, 0, len(s.Bots))
	for name := range s.Bots {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		wi, wj := s.Bots[names[i]].Wins, s.Bots[names[j]].Wins
		if wi != wj {
			return wi > wj
		}
		return names[i] < names[j]
	})
	return names
}
