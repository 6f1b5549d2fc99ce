package cliff

import (
	"math"
	"testing"

	"github.com/velikanov/cliffhop/internal/config"
	"github.com/velikanov/cliffhop/internal/core"
)

func testCliffConfig() *config.CliffConfig {
	cfg := config.DefaultCliffConfig()
	return &cfg
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// startPlatform builds the guaranteed platform under the spawn point.
func startPlatform(cfg *config.CliffConfig) []*Platform {
	return []*Platform{NewPlatform(0, cfg.Generator.StartY, cfg.Generator.StartWidth, KindNormal, cfg.Platforms)}
}

// settle runs empty-input ticks until the player has landed and come to rest.
func settle(p *Player, plats []*Platform) {
	for i := 0; i < 30; i++ {
		p.Update(core.NewInputFrame(), plats)
	}
}

func TestSpawnFallsToStartingPlatform(t *testing.T) {
	cfg := testCliffConfig()
	p := NewPlayer(cfg)
	plats := startPlatform(cfg)

	if p.X != 100 || p.Y != 300 {
		t.Fatalf("spawn position = (%v, %v), want (100, 300)", p.X, p.Y)
	}

	settle(p, plats)

	// Feet snap to the platform top: y = 400 - 40.
	if p.Y != 360 {
		t.Errorf("player should rest on the platform top, y = %v, want 360", p.Y)
	}
	if p.VY != 0 {
		t.Errorf("resting player should have zero vertical velocity, vy = %v", p.VY)
	}
	if !p.OnGround {
		t.Error("player should be on the ground after settling")
	}
}

func TestHorizontalMovement(t *testing.T) {
	cfg := testCliffConfig()
	p := NewPlayer(cfg)
	plats := startPlatform(cfg)
	settle(p, plats)

	x0 := p.X
	p.Update(frame(core.ActionRight), plats)
	if p.VX != 6 {
		t.Errorf("vx = %v, want 6", p.VX)
	}
	if p.X != x0+6 {
		t.Errorf("x = %v, want %v", p.X, x0+6)
	}

	x0 = p.X
	p.Update(frame(core.ActionLeft), plats)
	if p.VX != -6 || p.X != x0-6 {
		t.Errorf("left move: vx = %v, x = %v", p.VX, p.X)
	}

	x0 = p.X
	p.Update(core.NewInputFrame(), plats)
	if p.VX != 0 || p.X != x0 {
		t.Errorf("no input should stop the player: vx = %v", p.VX)
	}
}

func TestLeftWinsWhenBothDirectionsHeld(t *testing.T) {
	cfg := testCliffConfig()
	p := NewPlayer(cfg)
	plats := startPlatform(cfg)
	settle(p, plats)

	p.Update(frame(core.ActionLeft, core.ActionRight), plats)
	if p.VX != -6 {
		t.Errorf("vx = %v, want -6 when both directions are held", p.VX)
	}
}

func TestJumpFromGround(t *testing.T) {
	cfg := testCliffConfig()
	p := NewPlayer(cfg)
	plats := startPlatform(cfg)
	settle(p, plats)

	p.Update(frame(core.ActionJump), plats)

	// Gravity applies on the jump tick, so vy = -15 + 0.7.
	if !almostEqual(p.VY, -14.3) {
		t.Errorf("vy = %v, want -14.3", p.VY)
	}
	if p.OnGround {
		t.Error("player should leave the ground on jump")
	}
	if p.CoyoteTimer != 0 {
		t.Errorf("jump should consume the coyote window, timer = %d", p.CoyoteTimer)
	}
}

func TestJumpGateWhileAscending(t *testing.T) {
	cfg := testCliffConfig()

	// Ascending with an open coyote window: the vy >= 0 gate blocks the jump.
	p := NewPlayer(cfg)
	p.CoyoteTimer = 6
	p.VY = -5
	p.Update(frame(core.ActionJump), nil)
	if !almostEqual(p.VY, -4.3) {
		t.Errorf("ascending jump should be ignored, vy = %v, want -4.3", p.VY)
	}

	// Same window while descending: the jump fires.
	p = NewPlayer(cfg)
	p.CoyoteTimer = 6
	p.VY = 5
	p.Update(frame(core.ActionJump), nil)
	if !almostEqual(p.VY, -14.3) {
		t.Errorf("descending jump should fire, vy = %v, want -14.3", p.VY)
	}
}

func TestCoyoteWindow(t *testing.T) {
	cfg := testCliffConfig()

	run := func(airborneTicks int) *Player {
		p := NewPlayer(cfg)
		settle(p, startPlatform(cfg))
		// Walking off a ledge: the ground disappears, the window counts down.
		for i := 0; i < airborneTicks; i++ {
			p.Update(core.NewInputFrame(), nil)
		}
		p.Update(frame(core.ActionJump), nil)
		return p
	}

	// Five airborne ticks leave one tick of grace.
	if p := run(5); p.VY >= 0 {
		t.Errorf("jump within the coyote window should fire, vy = %v", p.VY)
	}

	// Six airborne ticks exhaust the window.
	if p := run(6); p.VY <= 0 {
		t.Errorf("jump after the coyote window should be ignored, vy = %v", p.VY)
	}
}

func TestDashDefaultsRight(t *testing.T) {
	cfg := testCliffConfig()
	p := NewPlayer(cfg)
	plats := startPlatform(cfg)
	settle(p, plats)

	x0 := p.X
	p.Update(frame(core.ActionDash), plats)

	if !p.Dashing {
		t.Fatal("dash should start")
	}
	if p.VX != 20 || p.VY != 0 {
		t.Errorf("directionless dash should go straight right, v = (%v, %v)", p.VX, p.VY)
	}
	if p.X != x0+20 {
		t.Errorf("x = %v, want %v", p.X, x0+20)
	}
	// Both timers tick on the trigger update.
	if p.DashTimer != 9 {
		t.Errorf("dash timer = %d, want 9", p.DashTimer)
	}
	if p.DashCooldown != 59 {
		t.Errorf("dash cooldown = %d, want 59", p.DashCooldown)
	}
}

func TestDashDiagonalNormalized(t *testing.T) {
	cfg := testCliffConfig()
	want := 20 / math.Sqrt2

	p := NewPlayer(cfg)
	p.Update(frame(core.ActionDash, core.ActionRight, core.ActionUp), nil)
	if !almostEqual(p.VX, want) || !almostEqual(p.VY, -want) {
		t.Errorf("up-right dash v = (%v, %v), want (%v, %v)", p.VX, p.VY, want, -want)
	}

	p = NewPlayer(cfg)
	p.Update(frame(core.ActionDash, core.ActionLeft, core.ActionDown), nil)
	if !almostEqual(p.VX, -want) || !almostEqual(p.VY, want) {
		t.Errorf("down-left dash v = (%v, %v), want (%v, %v)", p.VX, p.VY, -want, want)
	}
}

func TestDashOppositeKeysResolve(t *testing.T) {
	cfg := testCliffConfig()
	want := 20 / math.Sqrt2

	// Left beats right, up beats down.
	p := NewPlayer(cfg)
	p.Update(frame(core.ActionDash, core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown), nil)
	if !almostEqual(p.VX, -want) || !almostEqual(p.VY, -want) {
		t.Errorf("conflicted dash v = (%v, %v), want (%v, %v)", p.VX, p.VY, -want, -want)
	}
}

func TestDashDurationAndExitVelocity(t *testing.T) {
	cfg := testCliffConfig()

	// Rightward dash keeps run speed to the right when it ends.
	p := NewPlayer(cfg)
	p.Update(frame(core.ActionDash), nil)
	for i := 0; i < 8; i++ {
		p.Update(core.NewInputFrame(), nil)
		if !p.Dashing {
			t.Fatalf("dash ended early on tick %d", i+2)
		}
	}
	p.Update(core.NewInputFrame(), nil)
	if p.Dashing {
		t.Fatal("dash should end after its duration")
	}
	if p.VX != 6 {
		t.Errorf("rightward dash should exit at run speed, vx = %v", p.VX)
	}
	// Gravity resumes on the exit tick.
	if !almostEqual(p.VY, 0.7) {
		t.Errorf("vy = %v, want 0.7", p.VY)
	}

	// A pure vertical dash has vx == 0 and exits moving left.
	p = NewPlayer(cfg)
	p.Update(frame(core.ActionDash, core.ActionUp), nil)
	for i := 0; i < 9; i++ {
		p.Update(core.NewInputFrame(), nil)
	}
	if p.Dashing {
		t.Fatal("dash should end after its duration")
	}
	if p.VX != -6 {
		t.Errorf("vertical dash should exit moving left, vx = %v", p.VX)
	}
	// Nine ticks at full dash speed counting the trigger, then the exit
	// tick still carries the dash velocity with gravity back on:
	// 300 - 9*20 - 19.3.
	if !almostEqual(p.Y, 100.7) {
		t.Errorf("y = %v, want 100.7", p.Y)
	}
}

func TestDashCooldownGate(t *testing.T) {
	cfg := testCliffConfig()
	p := NewPlayer(cfg)
	dash := frame(core.ActionDash)

	p.Update(dash, nil)
	if !p.Dashing {
		t.Fatal("dash should start")
	}

	// Holding dash through the cooldown must not re-trigger.
	for tick := 2; tick <= 60; tick++ {
		p.Update(dash, nil)
		if tick > 10 && p.Dashing {
			t.Fatalf("dash re-triggered during cooldown on tick %d", tick)
		}
	}
	if p.DashCooldown != 0 {
		t.Fatalf("cooldown should be exhausted after 60 ticks, got %d", p.DashCooldown)
	}
	if !p.DashReady() {
		t.Fatal("dash should be ready once the cooldown expires")
	}

	p.Update(dash, nil)
	if !p.Dashing {
		t.Error("dash should re-trigger after the cooldown")
	}
}

func TestBouncyLaunchesPlayer(t *testing.T) {
	cfg := testCliffConfig()
	p := NewPlayer(cfg)
	plats := []*Platform{NewPlatform(0, 400, 250, KindBouncy, cfg.Platforms)}

	bounced := false
	for i := 0; i < 30; i++ {
		p.Update(core.NewInputFrame(), plats)
		if p.VY < 0 {
			bounced = true
			break
		}
	}

	if !bounced {
		t.Fatal("player never bounced")
	}
	if p.VY != -22.5 {
		t.Errorf("bounce vy = %v, want -22.5", p.VY)
	}
	if p.OnGround {
		t.Error("a bounce should leave the player airborne")
	}
	if p.Y != 360 {
		t.Errorf("bounce should still snap to the surface, y = %v", p.Y)
	}
}

func TestCrumblingStartsOnLanding(t *testing.T) {
	cfg := testCliffConfig()
	p := NewPlayer(cfg)
	plat := NewPlatform(0, 400, 250, KindCrumbling, cfg.Platforms)
	plats := []*Platform{plat}

	for i := 0; i < 30 && !p.OnGround; i++ {
		p.Update(core.NewInputFrame(), plats)
	}

	if !p.OnGround {
		t.Fatal("player never landed")
	}
	if plat.CrumbleTimer != cfg.Platforms.CrumbleTicks {
		t.Errorf("landing should arm the crumble timer, got %d, want %d", plat.CrumbleTimer, cfg.Platforms.CrumbleTicks)
	}
}

func TestLandingGuards(t *testing.T) {
	cfg := testCliffConfig()
	plat := NewPlatform(0, 400, 250, KindNormal, cfg.Platforms)

	// Ascending through the platform: no snap.
	p := NewPlayer(cfg)
	p.X, p.Y = 100, 390
	p.VY = -5
	p.resolveCollisions([]*Platform{plat})
	if p.OnGround || p.Y != 390 {
		t.Errorf("ascending player should pass through, y = %v, onGround = %v", p.Y, p.OnGround)
	}

	// Descending but already deep inside: too late to land.
	p = NewPlayer(cfg)
	p.X, p.Y = 100, 390
	p.VY = 3
	p.resolveCollisions([]*Platform{plat})
	if p.OnGround || p.Y != 390 {
		t.Errorf("deep overlap should pass through, y = %v, onGround = %v", p.Y, p.OnGround)
	}

	// Descending with pre-move feet just above the surface: lands.
	p = NewPlayer(cfg)
	p.X, p.Y = 100, 365
	p.VY = 9.1
	p.resolveCollisions([]*Platform{plat})
	if !p.OnGround || p.Y != 360 {
		t.Errorf("shallow descent should land, y = %v, onGround = %v", p.Y, p.OnGround)
	}
}

func TestCooldownFraction(t *testing.T) {
	cfg := testCliffConfig()
	p := NewPlayer(cfg)

	if p.CooldownFraction() != 0 {
		t.Errorf("fresh player fraction = %v, want 0", p.CooldownFraction())
	}
	p.DashCooldown = 30
	if p.CooldownFraction() != 0.5 {
		t.Errorf("fraction = %v, want 0.5", p.CooldownFraction())
	}
	p.DashCooldown = 60
	if p.CooldownFraction() != 1 {
		t.Errorf("fraction = %v, want 1", p.CooldownFraction())
	}
}
