package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/jcbhmphrs733/texasholdem2/internal/config"
	"github.com/jcbhmphrs733/texasholdem2/internal/randutil"
	"github.com/jcbhmphrs733/texasholdem2/internal/statistics"
	"github.com/jcbhmphrs733/texasholdem2/internal/tournament"
)

type CLI struct {
	Tournaments int    `short:"n" default:"100" help:"Number of tournaments to simulate"`
	Config      string `short:"c" default:"tournament.hcl" help:"Tournament configuration file (HCL)"`
	Seed        int64  `default:"0" help:"Base RNG seed (0 for wall clock); each trial derives its own"`
	Workers     int    `short:"w" default:"0" help:"Parallel workers (0 uses GOMAXPROCS)"`
	Verbose     bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("simulate"),
		kong.Description("Simulate many tournaments and report win rates per bot"))

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.ErrorLevel)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("failed to load config", "file", cli.Config, "error", err)
	}

	baseSeed := cli.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}
	workers := cli.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	stats := statistics.New()
	var mu sync.Mutex
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < cli.Tournaments; i++ {
		seed := randutil.Derive(baseSeed, i)
		g.Go(func() error {
			trialCfg := *cfg
			trialCfg.Tournament.Seed = seed
			t, err := tournament.New(&trialCfg, logger, quartz.NewReal())
			if err != nil {
				return err
			}
			res := t.Run()

			placements := make(map[string]int, len(res.Standings))
			for _, s := range res.Standings {
				placements[s.Name] = s.Place
			}
			mu.Lock()
			stats.Add(statistics.TournamentResult{
				Winner:      res.Winner,
				HandsPlayed: res.HandsPlayed,
				Placements:  placements,
			})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal("simulation failed", "error", err)
	}

	elapsed := time.Since(start)
	fmt.Printf("Simulated %d tournaments (%d hands, avg %.1f) in %s\n\n",
		stats.Tournaments, stats.TotalHands, stats.MeanHands(), elapsed.Round(time.Millisecond))

	for _, name := range stats.Ranked() {
		b := stats.Bots[name]
		lo, hi := stats.WinRateConfidence95(name)
		fmt.Printf("  %-12s %5d wins  %5.1f%%  (95%% CI %.1f%%-%.1f%%)  avg place %.2f\n",
			name, b.Wins, 100*stats.WinRate(name), 100*lo, 100*hi, b.Mean())
	}

	ctx.Exit(0)
}
