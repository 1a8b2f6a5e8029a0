// Package config loads tournament configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete tournament configuration
type Config struct {
	Tournament TournamentSettings `hcl:"tournament,block"`
	Levels     []LevelConfig      `hcl:"level,block"`
	Bots       []BotConfig        `hcl:"bot,block"`
}

// TournamentSettings contains tournament-level configuration
type TournamentSettings struct {
	StartingChips     int    `hcl:"starting_chips,optional"`
	SmallBlind        int    `hcl:"small_blind,optional"`
	BigBlind          int    `hcl:"big_blind,optional"`
	Seed              int64  `hcl:"seed,optional"`
	DecisionTimeoutMs int    `hcl:"decision_timeout_ms,optional"`
	MaxIllegalActions int    `hcl:"max_illegal_actions,optional"`
	HandsPerLevel     int    `hcl:"hands_per_level,optional"`
	MaxHands          int    `hcl:"max_hands,optional"`
	LogLevel          string `hcl:"log_level,optional"`
}

// LevelConfig is one step of the blind escalation schedule. Levels are
// applied in order, one per hands_per_level hands.
type LevelConfig struct {
	SmallBlind int `hcl:"small_blind"`
	BigBlind   int `hcl:"big_blind"`
}

// BotConfig seats one bot in the tournament
type BotConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Chips    int    `hcl:"chips,optional"`
}

// Default returns a runnable four-bot tournament configuration
func Default() *Config {
	return &Config{
		Tournament: TournamentSettings{
			StartingChips:     1000,
			SmallBlind:        5,
			BigBlind:          10,
			DecisionTimeoutMs: 5000,
			MaxIllegalActions: 3,
			HandsPerLevel:     20,
			MaxHands:          1000,
			LogLevel:          "info",
		},
		Bots: []BotConfig{
			{Name: "folder", Strategy: "folder"},
			{Name: "station", Strategy: "station"},
			{Name: "random", Strategy: "random"},
			{Name: "raiser", Strategy: "raiser"},
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// default configuration.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		cfg := Default()
		applyDefaults(cfg)
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default().Tournament
	t := &cfg.Tournament
	if t.StartingChips == 0 {
		t.StartingChips = def.StartingChips
	}
	if t.SmallBlind == 0 {
		t.SmallBlind = def.SmallBlind
	}
	if t.BigBlind == 0 {
		t.BigBlind = def.BigBlind
	}
	if t.DecisionTimeoutMs == 0 {
		t.DecisionTimeoutMs = def.DecisionTimeoutMs
	}
	if t.MaxIllegalActions == 0 {
		t.MaxIllegalActions = def.MaxIllegalActions
	}
	if t.HandsPerLevel == 0 {
		t.HandsPerLevel = def.HandsPerLevel
	}
	if t.MaxHands == 0 {
		t.MaxHands = def.MaxHands
	}
	if t.LogLevel == "" {
		t.LogLevel = def.LogLevel
	}
	for i := range cfg.Bots {
		if cfg.Bots[i].Chips == 0 {
			cfg.Bots[i].Chips = t.StartingChips
		}
	}
}

// Validate checks the configuration for values the engine cannot run
// with.
func (c *Config) Validate() error {
	t := c.Tournament
	if t.SmallBlind <= 0 || t.BigBlind <= 0 {
		return fmt.Errorf("blinds must be positive, got %d/%d", t.SmallBlind, t.BigBlind)
	}
	if t.SmallBlind > t.BigBlind {
		return fmt.Errorf("small blind %d exceeds big blind %d", t.SmallBlind, t.BigBlind)
	}
	if t.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be positive, got %d", t.StartingChips)
	}
	if len(c.Bots) < 2 {
		return fmt.Errorf("need at least 2 bots, got %d", len(c.Bots))
	}
	seen := make(map[string]bool)
	for _, b := range c.Bots {
		if b.Name == "" {
			return fmt.Errorf("bot name must not be empty")
		}
		if seen[b.Name] {
			return fmt.Errorf("duplicate bot name %q", b.Name)
		}
		seen[b.Name] = true
		if b.Strategy == "" {
			return fmt.Errorf("bot %q has no strategy", b.Name)
		}
		if b.Chips <= 0 {
			return fmt.Errorf("bot %q has non-positive chips %d", b.Name, b.Chips)
		}
	}
	for i, lvl := range c.Levels {
		if lvl.SmallBlind <= 0 || lvl.BigBlind <= 0 || lvl.SmallBlind > lvl.BigBlind {
			return fmt.Errorf("level %d has invalid blinds %d/%d", i+1, lvl.SmallBlind, lvl.BigBlind)
		}
	}
	return nil
}
