package cliff

import (
	"math"

	"github.com/velikanov/cliffhop/internal/config"
	"github.com/velikanov/cliffhop/internal/core"
)

// bounceFactor scales the jump impulse when landing on a bouncy platform.
const bounceFactor = 1.5

// landingSlack is how far past a platform top the player's pre-move feet may
// be and still count as a landing. It covers the distance stepped in one tick.
const landingSlack = 5.0

// Player is the kinematic body driven by input.
type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	OnGround bool
	Dashing  bool

	DashTimer    int // Ticks left in the current dash
	DashCooldown int // Ticks until the next dash is allowed
	CoyoteTimer  int // Ticks left in which a jump still works after leaving ground

	cfg *config.CliffConfig
}

// NewPlayer creates a player at the configured spawn point, at rest.
func NewPlayer(cfg *config.CliffConfig) *Player {
	return &Player{
		X:   cfg.Player.SpawnX,
		Y:   cfg.Player.SpawnY,
		W:   cfg.Player.Width,
		H:   cfg.Player.Height,
		cfg: cfg,
	}
}

// Update advances the player by one tick against the given platform set.
// The order is load-bearing: input shaping, coyote bookkeeping, jump, dash
// trigger, dash countdown, cooldown, gravity, integration, then collision.
func (p *Player) Update(in core.InputFrame, platforms []*Platform) {
	phys := p.cfg.Physics

	// Horizontal control is instantaneous. The dash owns both velocity
	// components while it lasts. Left wins if both directions are held.
	if !p.Dashing {
		switch {
		case in.Has(core.ActionLeft):
			p.VX = -phys.MoveSpeed
		case in.Has(core.ActionRight):
			p.VX = phys.MoveSpeed
		default:
			p.VX = 0
		}
	}

	if p.OnGround {
		p.CoyoteTimer = phys.CoyoteTicks
	} else if p.CoyoteTimer > 0 {
		p.CoyoteTimer--
	}

	// The vy >= 0 gate keeps a bounce or an in-flight jump from being
	// re-triggered while still ascending.
	if in.Has(core.ActionJump) && p.CoyoteTimer > 0 && p.VY >= 0 {
		p.VY = phys.JumpImpulse
		p.CoyoteTimer = 0
		p.OnGround = false
	}

	if in.Has(core.ActionDash) && p.DashCooldown <= 0 && !p.Dashing {
		p.startDash(in)
	}

	// The dash timer ticks on the same update that starts it, so a dash
	// lasts exactly DurationTicks updates including the first.
	if p.Dashing {
		p.DashTimer--
		if p.DashTimer <= 0 {
			p.Dashing = false
			// Keep residual run speed in the dash's horizontal direction.
			// A pure vertical dash (vx == 0) exits moving left.
			if p.VX > 0 {
				p.VX = phys.MoveSpeed
			} else {
				p.VX = -phys.MoveSpeed
			}
		}
	}

	if p.DashCooldown > 0 {
		p.DashCooldown--
	}

	// Gravity is suspended for the whole dash.
	if !p.Dashing {
		p.VY += phys.Gravity
	}

	p.X += p.VX
	p.Y += p.VY

	p.resolveCollisions(platforms)
}

// startDash begins a dash aimed by the held directional actions.
// Held opposites resolve left over right and up over down; with no
// direction held the dash goes right. Diagonals are normalized so the
// speed is the same in every direction.
func (p *Player) startDash(in core.InputFrame) {
	dash := p.cfg.Dash
	p.Dashing = true
	p.DashTimer = dash.DurationTicks
	p.DashCooldown = dash.CooldownTicks

	var dx, dy float64
	switch {
	case in.Has(core.ActionLeft):
		dx = -1
	case in.Has(core.ActionRight):
		dx = 1
	}
	switch {
	case in.Has(core.ActionUp):
		dy = -1
	case in.Has(core.ActionDown):
		dy = 1
	}
	if dx == 0 && dy == 0 {
		dx = 1
	}

	mag := math.Sqrt(dx*dx + dy*dy)
	p.VX = dx / mag * dash.Speed
	p.VY = dy / mag * dash.Speed
}

// resolveCollisions lands the player on platform tops. Platforms are tested
// in list order with live values; the first landing zeroes vy, which closes
// the guard for the rest of the list this tick.
func (p *Player) resolveCollisions(platforms []*Platform) {
	p.OnGround = false
	for _, plat := range platforms {
		if !p.Bounds().Intersects(plat.Bounds()) {
			continue
		}
		p.land(plat)
	}
}

// land applies top-only resolution: only a descending player whose pre-move
// feet were at most landingSlack below the surface snaps on top. Everything
// else passes through.
func (p *Player) land(plat *Platform) {
	if p.VY <= 0 || p.Y+p.H-p.VY > plat.Y+landingSlack {
		return
	}

	p.Y = plat.Y - p.H
	p.VY = 0
	p.OnGround = true

	switch plat.Kind {
	case KindBouncy:
		p.VY = p.cfg.Physics.JumpImpulse * bounceFactor
		p.OnGround = false
	case KindCrumbling:
		plat.StartCrumble()
	}
}

// Bounds returns the player's collision box in world units.
func (p *Player) Bounds() core.FRect {
	return core.FRect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// DashReady reports whether a dash can be triggered this tick.
func (p *Player) DashReady() bool {
	return p.DashCooldown <= 0
}

// CooldownFraction returns how much of the dash cooldown remains, in [0, 1].
func (p *Player) CooldownFraction() float64 {
	if p.cfg.Dash.CooldownTicks <= 0 {
		return 0
	}
	return float64(p.DashCooldown) / float64(p.cfg.Dash.CooldownTicks)
}
