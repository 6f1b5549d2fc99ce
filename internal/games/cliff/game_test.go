package cliff

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/velikanov/cliffhop/internal/config"
	"github.com/velikanov/cliffhop/internal/core"
	"github.com/velikanov/cliffhop/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	if err := g.Reset(testRuntime(seed)); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return g
}

// scriptedInputs builds a fixed input sequence mixing running, jumping and
// dashing so determinism tests exercise every subsystem.
func scriptedInputs(n int) []core.InputFrame {
	seq := make([]core.InputFrame, n)
	for i := range seq {
		seq[i] = core.NewInputFrame()
		if i%7 < 4 {
			seq[i].Set(core.ActionRight)
		} else {
			seq[i].Set(core.ActionLeft)
		}
		if i%40 == 15 {
			seq[i].Set(core.ActionJump)
		}
		if i%90 == 25 {
			seq[i].Set(core.ActionDash)
			seq[i].Set(core.ActionUp)
		}
	}
	return seq
}

func TestGameDeterminism(t *testing.T) {
	inputs := scriptedInputs(400)

	g1 := newTestGame(t, 12345)
	for _, in := range inputs {
		if g1.Step(in).State.GameOver {
			break
		}
	}
	snap1 := g1.Snapshot()

	g2 := newTestGame(t, 12345)
	for _, in := range inputs {
		if g2.Step(in).State.GameOver {
			break
		}
	}
	snap2 := g2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ, %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("determinism failed: scores differ, %d vs %d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("determinism failed: tick counts differ, %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.PlayerX != snap2.PlayerX || snap1.PlayerY != snap2.PlayerY {
		t.Error("determinism failed: player positions differ")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	g1 := newTestGame(t, 1)
	g2 := newTestGame(t, 2)

	// The pregenerated layouts alone should separate the two runs.
	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1.Hash() == snap2.Hash() {
		t.Error("different seeds produced identical worlds")
	}
}

func TestScoreTracksBestDistance(t *testing.T) {
	g := newTestGame(t, 42)

	g.player.X = 1234
	g.Step(core.NewInputFrame())
	if g.score != 123 {
		t.Errorf("score = %d, want 123", g.score)
	}

	// Moving backwards never lowers the score.
	g.player.X = 50
	g.Step(core.NewInputFrame())
	if g.score != 123 {
		t.Errorf("score dropped to %d after moving back", g.score)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 42)
	g.Step(core.NewInputFrame())

	result := g.Step(frame(core.ActionPause))
	if !result.State.Paused {
		t.Fatal("game should pause")
	}

	before := g.Snapshot()
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("state changed while paused")
	}

	result = g.Step(frame(core.ActionPause))
	if result.State.Paused {
		t.Error("game should unpause")
	}
}

// fallToGameOver holds left so the player runs off the starting platform and
// falls out of view. Returns the number of ticks it took.
func fallToGameOver(t *testing.T, g *Game) int {
	t.Helper()
	left := frame(core.ActionLeft)
	for i := 1; i <= 1000; i++ {
		if g.Step(left).State.GameOver {
			return i
		}
	}
	t.Fatal("game never ended while falling")
	return 0
}

func TestFallEndsRun(t *testing.T) {
	g := newTestGame(t, 42)
	fallToGameOver(t, g)

	// A finished run ignores everything except restart.
	ticks := g.State().Ticks
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionJump, core.ActionRight))
	}
	if g.State().Ticks != ticks {
		t.Error("simulation advanced after game over")
	}
	if !g.State().GameOver {
		t.Error("game over state should persist")
	}
}

func TestRestartStartsFreshRun(t *testing.T) {
	g := newTestGame(t, 42)
	fallToGameOver(t, g)

	result := g.Step(frame(core.ActionRestart))
	state := result.State

	if state.GameOver {
		t.Error("restart should clear game over")
	}
	if state.Score != 0 || state.Ticks != 0 {
		t.Errorf("restart should zero the run, score = %d, ticks = %d", state.Score, state.Ticks)
	}
	if g.player.X != 100 || g.player.Y != 300 {
		t.Errorf("player should respawn at (100, 300), got (%v, %v)", g.player.X, g.player.Y)
	}
}

func TestRestartIgnoredMidRun(t *testing.T) {
	g := newTestGame(t, 42)
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Step(frame(core.ActionRestart))
	if g.State().Ticks != 6 {
		t.Errorf("mid-run restart should be a normal tick, ticks = %d", g.State().Ticks)
	}
}

func TestRestartSeedsAreSessionDeterministic(t *testing.T) {
	runSession := func() Snapshot {
		g := New()
		if err := g.Reset(testRuntime(7)); err != nil {
			t.Fatalf("Reset failed: %v", err)
		}
		fallToGameOver(t, g)
		g.Step(frame(core.ActionRestart))
		for _, in := range scriptedInputs(100) {
			g.Step(in)
		}
		return g.Snapshot()
	}

	a := runSession()
	b := runSession()
	if a.Hash() != b.Hash() {
		t.Error("two sessions with the same runtime seed diverged after restart")
	}
	if a.Seed == 7 {
		// Not impossible, but the restart seed comes from the reseed
		// stream, not the runtime seed.
		t.Logf("restart drew the original seed %d", a.Seed)
	}
}

func TestResetValidatesConfig(t *testing.T) {
	bad := config.DefaultCliffConfig()
	bad.Physics.Gravity = -1
	data, err := yaml.Marshal(bad)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "cliff.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	err = g.Reset(testRuntime(1))
	if err == nil {
		t.Fatal("Reset should reject a negative gravity")
	}

	var verr config.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error should wrap a ValidationError, got %v", err)
	}
	if verr.Code != "INVALID_GRAVITY" {
		t.Errorf("code = %s, want INVALID_GRAVITY", verr.Code)
	}
}

func TestResetFailsOnMissingCustomConfig(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "nope.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	if err := g.Reset(testRuntime(1)); err == nil {
		t.Error("Reset should fail when the custom config path is unreadable")
	}
}

func TestZenVariantTuning(t *testing.T) {
	g := NewZen()
	if err := g.Reset(testRuntime(1)); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if g.cfg.Generator.Difficulty.RampDistance != 2000 || g.cfg.Generator.Difficulty.Max != 2 {
		t.Errorf("zen tuning = ramp %v, max %v, want 2000 and 2",
			g.cfg.Generator.Difficulty.RampDistance, g.cfg.Generator.Difficulty.Max)
	}

	std := newTestGame(t, 1)
	if std.cfg.Generator.Difficulty.RampDistance != 1000 || std.cfg.Generator.Difficulty.Max != 5 {
		t.Errorf("standard tuning = ramp %v, max %v, want 1000 and 5",
			std.cfg.Generator.Difficulty.RampDistance, std.cfg.Generator.Difficulty.Max)
	}
}

func TestCLIPresetOverridesVariant(t *testing.T) {
	SetPreset("standard")
	t.Cleanup(func() { SetPreset("") })

	g := NewZen()
	if err := g.Reset(testRuntime(1)); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if g.cfg.Generator.Difficulty.RampDistance != 1000 {
		t.Errorf("explicit standard preset should win over the zen variant, ramp = %v",
			g.cfg.Generator.Difficulty.RampDistance)
	}
}

func TestStateReportsSeedAndTicks(t *testing.T) {
	g := newTestGame(t, 42)
	if g.State().Seed != 42 {
		t.Errorf("seed = %d, want 42", g.State().Seed)
	}
	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().Ticks != 3 {
		t.Errorf("ticks = %d, want 3", g.State().Ticks)
	}
}

func TestSnapshotMirrorsGame(t *testing.T) {
	g := newTestGame(t, 42)
	for _, in := range scriptedInputs(50) {
		g.Step(in)
	}

	snap := g.Snapshot()
	if snap.Tick != uint64(g.ticks) {
		t.Errorf("snapshot tick = %d, want %d", snap.Tick, g.ticks)
	}
	if snap.Score != g.score {
		t.Errorf("snapshot score = %d, want %d", snap.Score, g.score)
	}
	if snap.Seed != 42 {
		t.Errorf("snapshot seed = %d, want 42", snap.Seed)
	}
	if snap.PlatformCount != len(g.generator.Platforms()) {
		t.Errorf("snapshot platform count = %d, want %d", snap.PlatformCount, len(g.generator.Platforms()))
	}
	if len(snap.PlatformData) != snap.PlatformCount*platformWords {
		t.Errorf("platform data length = %d, want %d", len(snap.PlatformData), snap.PlatformCount*platformWords)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 42)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Score: ") {
		t.Error("render should draw the HUD")
	}

	hasWorld := false
	for _, ch := range screen.String() {
		if ch == playerChar || ch == normalChar {
			hasWorld = true
			break
		}
	}
	if !hasWorld {
		t.Error("render should draw the player and platforms")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, 42)
	screen := core.NewScreen(80, 24)

	g.paused = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	g.paused = false
	g.gameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestRegistryVariants(t *testing.T) {
	for _, id := range []string{"cliff", "cliff_zen"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("created game reports ID %q, want %q", g.ID(), id)
		}
	}
}
