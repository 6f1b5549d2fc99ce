package cliff

import (
	"math"

	"github.com/velikanov/cliffhop/internal/config"
	"github.com/velikanov/cliffhop/internal/core"
)

// PlatformKind discriminates platform behavior. The kind is fixed at
// construction; all per-kind state lives on the platform itself.
type PlatformKind int

const (
	KindNormal PlatformKind = iota
	KindCrumbling
	KindBouncy
	KindMoving
)

// String returns a human-readable name for the platform kind.
func (k PlatformKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindCrumbling:
		return "crumbling"
	case KindBouncy:
		return "bouncy"
	case KindMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// flickerPeriod drives the warning blink of a crumbling platform.
const flickerPeriod = 10

// Platform is one solid (or formerly solid) segment of the endless cliff.
type Platform struct {
	X, Y float64
	W, H float64
	Kind PlatformKind

	// Active is false once a crumbling platform has collapsed. Inactive
	// platforms are invisible and intangible but stay in the generator's
	// list until pruned by position.
	Active bool

	// CrumbleTimer counts down once the platform has been touched.
	// Zero means untouched (or already collapsed).
	CrumbleTimer int
	crumbleTicks int

	// Moving platform oscillation state.
	originY   float64
	amplitude float64
	moveSpeed float64
	moveDir   float64
}

// NewPlatform creates a platform of the given kind at (x, y).
// Moving platforms oscillate vertically around their spawn position.
func NewPlatform(x, y, w float64, kind PlatformKind, pcfg config.PlatformsConfig) *Platform {
	p := &Platform{
		X:            x,
		Y:            y,
		W:            w,
		H:            pcfg.Height,
		Kind:         kind,
		Active:       true,
		crumbleTicks: pcfg.CrumbleTicks,
	}
	if kind == KindMoving {
		p.originY = y
		p.amplitude = pcfg.MoveAmplitude
		p.moveSpeed = pcfg.MoveSpeed
		p.moveDir = 1
	}
	return p
}

// Update advances per-kind state by one tick.
func (p *Platform) Update() {
	switch p.Kind {
	case KindCrumbling:
		if p.CrumbleTimer > 0 {
			p.CrumbleTimer--
			if p.CrumbleTimer <= 0 {
				p.Active = false
			}
		}
	case KindMoving:
		p.Y += p.moveSpeed * p.moveDir
		if math.Abs(p.Y-p.originY) > p.amplitude {
			p.moveDir = -p.moveDir
		}
	}
}

// StartCrumble arms the collapse countdown on first touch. Further touches
// while the timer is running leave it unchanged.
func (p *Platform) StartCrumble() {
	if p.Kind != KindCrumbling {
		return
	}
	if p.CrumbleTimer == 0 {
		p.CrumbleTimer = p.crumbleTicks
	}
}

// Flickering reports whether a crumbling platform is in the bright phase of
// its warning blink.
func (p *Platform) Flickering() bool {
	return p.Kind == KindCrumbling && p.CrumbleTimer > 0 && p.CrumbleTimer%flickerPeriod < flickerPeriod/2
}

// Bounds returns the platform's collision box in world units.
func (p *Platform) Bounds() core.FRect {
	return core.FRect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}
