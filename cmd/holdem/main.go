package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/jcbhmphrs733/texasholdem2/internal/config"
	"github.com/jcbhmphrs733/texasholdem2/internal/display"
	"github.com/jcbhmphrs733/texasholdem2/internal/tournament"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Config  string `short:"c" default:"tournament.hcl" help:"Tournament configuration file (HCL)"`
	Seed    int64  `default:"0" help:"RNG seed override (0 uses config or wall clock)"`
	Quiet   bool   `short:"q" help:"Suppress per-hand output"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Run a bot-vs-bot no-limit hold'em tournament"))

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("failed to load config", "file", cli.Config, "error", err)
	}
	if cli.Seed != 0 {
		cfg.Tournament.Seed = cli.Seed
	}

	fmt.Println(titleStyle.Render(" ♠ ♥ Hold'em Bot Tournament ♦ ♣ "))

	t, err := tournament.New(cfg, logger, quartz.NewReal())
	if err != nil {
		logger.Fatal("failed to create tournament", "error", err)
	}
	if !cli.Quiet {
		t.Engine().AddObserver(display.NewConsole(os.Stdout))
	}

	result := t.Run()

	fmt.Println()
	fmt.Println(titleStyle.Render(" Final Standings "))
	for _, s := range result.Standings {
		if s.Chips > 0 {
			fmt.Printf("  %d. %s (%d chips)\n", s.Place, s.Name, s.Chips)
		} else {
			fmt.Printf("  %d. %s\n", s.Place, s.Name)
		}
	}
	fmt.Printf("\n%s wins after %d hands\n", result.Winner, result.HandsPlayed)

	ctx.Exit(0)
}
