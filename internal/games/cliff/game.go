// Package cliff implements an endless side-scrolling platformer: run right
// across procedurally generated platforms, jump with a coyote-time grace
// window, and dash in eight directions to cross gaps. Falling out of view
// ends the run.
package cliff

import (
	"fmt"
	"math/rand"

	"github.com/velikanov/cliffhop/internal/config"
	"github.com/velikanov/cliffhop/internal/core"
	"github.com/velikanov/cliffhop/internal/registry"
)

// maxRestartSeed bounds the seeds drawn for restarted runs, kept small so
// seeds stay readable on the scoreboard.
const maxRestartSeed = 1000000

// configPath stores the custom config path set via CLI.
var configPath string

// presetName stores the tuning preset set via CLI.
var presetName config.Preset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset selects a tuning preset applied after the config loads.
func SetPreset(preset string) {
	presetName = config.Preset(preset)
}

// Game implements one platformer session: player, platform generator and
// camera, plus score and terminal-state bookkeeping.
type Game struct {
	id     string
	title  string
	preset config.Preset

	cfg config.CliffConfig

	player    *Player
	generator *Generator
	camera    *Camera

	// reseed draws seeds for restarted runs, so a whole session replays
	// from the runtime seed alone.
	reseed *rand.Rand
	seed   int64

	score    int
	ticks    int
	gameOver bool
	paused   bool
}

// New creates the standard game instance.
func New() *Game {
	return &Game{id: "cliff", title: "Cliff Hopper"}
}

// NewZen creates the zen variant: the same engine with a longer difficulty
// ramp and a lower difficulty ceiling.
func NewZen() *Game {
	return &Game{id: "cliff_zen", title: "Cliff Hopper (Zen)", preset: config.PresetZen}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads and validates configuration, then builds a fresh session from
// the runtime seed. An invalid configuration is returned as an error and the
// session must not be played.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.LoadCliff(configPath)
	if err != nil {
		return fmt.Errorf("cliff: %w", err)
	}

	// An explicit CLI preset overrides the variant's own tuning.
	if presetName != "" {
		config.ApplyCliffPreset(&cfg, presetName)
	} else if g.preset != "" {
		config.ApplyCliffPreset(&cfg, g.preset)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("cliff: invalid config: %w", err)
	}

	g.cfg = cfg
	g.reseed = rand.New(rand.NewSource(runtime.Seed))
	g.startRun(runtime.Seed)
	return nil
}

// startRun builds the player, generator and camera for a single run.
func (g *Game) startRun(seed int64) {
	g.seed = seed
	g.player = NewPlayer(&g.cfg)
	g.generator = NewGenerator(seed, &g.cfg)
	g.camera = NewCamera(&g.cfg)
	g.score = 0
	g.ticks = 0
	g.gameOver = false
	g.paused = false
}

// Step advances the session by one tick. The tick order is fixed: platform
// window maintenance, player physics, camera, score, loss check. Once the
// run is over only a restart is listened for.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) && g.reseed != nil {
			g.startRun(g.reseed.Int63n(maxRestartSeed + 1))
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++

	g.generator.Update(g.player)
	g.player.Update(in, g.generator.ActivePlatforms())
	g.camera.Update(g.player)

	// Score is the best distance reached, never decreasing.
	if s := int(g.player.X / g.cfg.Session.ScoreDivisor); s > g.score {
		g.score = s
	}

	if g.player.Y > g.camera.Y+g.cfg.World.Height+g.cfg.Session.KillMargin {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Ticks:    g.ticks,
		Seed:     g.seed,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register both variants with the registry.
func init() {
	registry.Register("cliff", func() registry.Game {
		return New()
	})
	registry.Register("cliff_zen", func() registry.Game {
		return NewZen()
	})
}
