// Package tournament runs repeated hands until one player holds all
// the chips, escalating blinds on a fixed schedule.
package tournament

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/jcbhmphrs733/texasholdem2/internal/bots"
	"github.com/jcbhmphrs733/texasholdem2/internal/config"
	"github.com/jcbhmphrs733/texasholdem2/internal/evaluator"
	"github.com/jcbhmphrs733/texasholdem2/internal/game"
	"github.com/jcbhmphrs733/texasholdem2/internal/randutil"
)

// Standing is one player's final placement, 1 is the winner
type Standing struct {
	Name  string
	Chips int
	Place int
}

// Result summarizes a finished tournament
type Result struct {
	ID          string
	Winner      string
	HandsPlayed int
	Standings   []Standing
}

// Tournament owns an engine and plays it to completion
type Tournament struct {
	id         string
	cfg        *config.Config
	engine     *game.Engine
	logger     *log.Logger
	eliminated []string // in order of elimination
}

// New builds a tournament from configuration. The clock is injected so
// decision timeouts are testable; pass quartz.NewReal() in production.
func New(cfg *config.Config, logger *log.Logger, clock quartz.Clock) (*Tournament, error) {
	seed := cfg.Tournament.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	g := game.New(rng, evaluator.New(), game.Config{
		SmallBlind: cfg.Tournament.SmallBlind,
		BigBlind:   cfg.Tournament.BigBlind,
	})
	engine := game.NewEngine(g, logger, cfg.Tournament.MaxIllegalActions)

	timeout := time.Duration(cfg.Tournament.DecisionTimeoutMs) * time.Millisecond
	for _, bc := range cfg.Bots {
		agent, err := bots.New(bc.Strategy, rng)
		if err != nil {
			return nil, fmt.Errorf("bot %q: %w", bc.Name, err)
		}
		guarded := game.NewGuardedAgent(agent, bc.Name, timeout, clock, logger)
		engine.Seat(bc.Name, bc.Chips, guarded)
	}

	t := &Tournament{
		id:     uuid.New().String(),
		cfg:    cfg,
		engine: engine,
	}
	t.logger = logger.With("tournament", t.id)
	t.logger.Info("tournament created", "seed", seed, "bots", len(cfg.Bots))
	return t, nil
}

// Engine exposes the underlying engine for observer registration
func (t *Tournament) Engine() *game.Engine { return t.engine }

// Run plays hands until one player remains or the hand cap is hit
func (t *Tournament) Run() *Result {
	g := t.engine.Game()
	hands := 0

	for hands < t.cfg.Tournament.MaxHands {
		t.applyBlindLevel(hands)

		result, ok := t.engine.PlayHand()
		if !ok {
			break
		}
		hands++
		t.logger.Debug("hand finished", "hands", hands, "winner", result.Winner, "pot", result.Pot)

		t.eliminated = append(t.eliminated, t.engine.RemoveBusted()...)
		g.AdvanceDealerButton()
	}

	res := t.buildResult(hands)
	t.logger.Info("tournament complete",
		"winner", res.Winner,
		"hands", res.HandsPlayed,
		"players", len(res.Standings))
	return res
}

// applyBlindLevel switches blinds per the level schedule. With no
// levels configured the starting blinds run for the whole tournament.
func (t *Tournament) applyBlindLevel(handsPlayed int) {
	if len(t.cfg.Levels) == 0 {
		return
	}
	idx := handsPlayed / t.cfg.Tournament.HandsPerLevel
	if idx >= len(t.cfg.Levels) {
		idx = len(t.cfg.Levels) - 1
	}
	lvl := t.cfg.Levels[idx]
	g := t.engine.Game()
	if g.SmallBlind() != lvl.SmallBlind || g.BigBlind() != lvl.BigBlind {
		t.logger.Info("blind level changed", "smallBlind", lvl.SmallBlind, "bigBlind", lvl.BigBlind)
		g.UpdateBlinds(lvl.SmallBlind, lvl.BigBlind)
	}
}

// buildResult ranks the survivors by chips, then the eliminated in
// reverse order of elimination.
func (t *Tournament) buildResult(hands int) *Result {
	res := &Result{ID: t.id, HandsPlayed: hands}

	survivors := t.engine.Game().Players()
	for _, p := range survivors {
		res.Standings = append(res.Standings, Standing{Name: p.Name, Chips: p.Chips})
	}
	// Survivors are ranked by stack when the hand cap stopped play early.
	sort.SliceStable(res.Standings, func(i, j int) bool {
		return res.Standings[i].Chips > res.Standings[j].Chips
	})
	for i := len(t.eliminated) - 1; i >= 0; i-- {
		res.Standings = append(res.Standings, Standing{Name: t.eliminated[i]})
	}
	for i := range res.Standings {
		res.Standings[i].Place = i + 1
	}
	if len(res.Standings) > 0 {
		res.Winner = res.Standings[0].Name
	}
	return res
}
