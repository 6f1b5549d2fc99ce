package cliff

import (
	"math/rand"

	"github.com/velikanov/cliffhop/internal/config"
	"github.com/velikanov/cliffhop/internal/core"
)

// Generator owns the procedural platform stream. All randomness comes from
// its private seeded source, so a seed fully determines the sequence: the
// draws per platform happen in a fixed order (spacing, vertical offset,
// width, kind).
type Generator struct {
	platforms []*Platform

	rng *rand.Rand

	// lastX and lastY track the generation frontier: the left edge and top
	// of the most recently emitted platform.
	lastX, lastY float64

	// difficulty is derived from the frontier after every emission and is
	// never set directly.
	difficulty float64

	cfg *config.CliffConfig
}

// NewGenerator creates a generator for the given seed and pre-populates the
// starting platform plus the configured number of platforms ahead of it.
func NewGenerator(seed int64, cfg *config.CliffConfig) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
	g.generateStartingPlatform()
	for i := 0; i < cfg.Generator.Pregenerate; i++ {
		g.generatePlatform()
	}
	return g
}

// Difficulty returns the current derived difficulty scalar.
func (g *Generator) Difficulty() float64 {
	return g.difficulty
}

// Platforms returns every platform currently tracked, including collapsed
// ones that have not been pruned yet.
func (g *Generator) Platforms() []*Platform {
	return g.platforms
}

// ActivePlatforms returns the collidable subset in generation order.
func (g *Generator) ActivePlatforms() []*Platform {
	active := make([]*Platform, 0, len(g.platforms))
	for _, p := range g.platforms {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

// generateStartingPlatform emits the guaranteed safe platform under the
// spawn point. It is always the same regardless of seed, and it does not
// advance the horizontal frontier: the next platform is placed relative to
// its left edge.
func (g *Generator) generateStartingPlatform() {
	gen := g.cfg.Generator
	g.platforms = append(g.platforms, NewPlatform(0, gen.StartY, gen.StartWidth, KindNormal, g.cfg.Platforms))
	g.lastX = 0
	g.lastY = gen.StartY
}

// randBetween draws an integer uniformly from [lo, hi], both ends inclusive.
func (g *Generator) randBetween(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// generatePlatform advances the frontier by one platform and re-derives the
// difficulty from the new frontier position.
func (g *Generator) generatePlatform() {
	gen := g.cfg.Generator

	spacingHi := gen.SpacingJitter + int(g.difficulty*gen.SpacingDiffScale)
	spacing := gen.SpacingBase + float64(g.randBetween(-gen.SpacingJitter, spacingHi))
	if spacing < gen.SpacingMin {
		spacing = gen.SpacingMin
	}

	vertRange := gen.VerticalBase + int(g.difficulty*gen.VerticalDiffScale)
	offset := float64(g.randBetween(-vertRange, vertRange))

	newX := g.lastX + spacing
	newY := core.ClampF(g.lastY+offset, gen.MinY, g.cfg.World.Height-gen.BottomMargin)

	width := gen.WidthBase - float64(int(g.difficulty*gen.WidthDiffScale)) + float64(g.randBetween(-gen.WidthJitter, gen.WidthJitter))
	if width < gen.WidthMin {
		width = gen.WidthMin
	}

	kind := g.choosePlatformKind()
	g.platforms = append(g.platforms, NewPlatform(newX, newY, width, kind, g.cfg.Platforms))

	g.lastX = newX
	g.lastY = newY
	g.difficulty = core.ClampF(newX/gen.Difficulty.RampDistance, 0, gen.Difficulty.Max)
}

// choosePlatformKind picks the kind for the next platform. Below the gate
// difficulty every platform is normal and no random draw is consumed, so
// early sequences stay stable across tuning of the type bands.
func (g *Generator) choosePlatformKind() PlatformKind {
	gen := g.cfg.Generator
	if g.difficulty < gen.Difficulty.TypeGate {
		return KindNormal
	}

	u := g.rng.Float64()
	switch {
	case u < gen.Types.NormalBand:
		return KindNormal
	case u < gen.Types.CrumbleBase+g.difficulty*gen.Types.CrumbleScale:
		return KindCrumbling
	case u < gen.Types.BouncyBase+g.difficulty*gen.Types.BouncyScale:
		return KindBouncy
	default:
		return KindMoving
	}
}

// Update maintains the platform window around the player: prune platforms
// far behind the view, top up the lookahead past its right edge, then tick
// every remaining platform. Freshly generated platforms tick the same frame
// they are born.
func (g *Generator) Update(player *Player) {
	gen := g.cfg.Generator
	frontier := player.X - g.cfg.World.Width/3

	kept := g.platforms[:0]
	for _, p := range g.platforms {
		if p.X > frontier-gen.PruneMargin {
			kept = append(kept, p)
		}
	}
	// Clear the tail so pruned platforms can be collected.
	for i := len(kept); i < len(g.platforms); i++ {
		g.platforms[i] = nil
	}
	g.platforms = kept

	for g.lastX < frontier+g.cfg.World.Width+gen.LookaheadMargin {
		g.generatePlatform()
	}

	for _, p := range g.platforms {
		p.Update()
	}
}
