package cliff

import (
	"math"
	"testing"
)

func TestStartingPlatform(t *testing.T) {
	cfg := testCliffConfig()
	g := NewGenerator(42, cfg)

	plats := g.Platforms()
	if len(plats) != 1+cfg.Generator.Pregenerate {
		t.Fatalf("platform count = %d, want %d", len(plats), 1+cfg.Generator.Pregenerate)
	}

	start := plats[0]
	if start.X != 0 || start.Y != 400 || start.W != 250 || start.Kind != KindNormal {
		t.Errorf("starting platform = {x:%v y:%v w:%v kind:%v}", start.X, start.Y, start.W, start.Kind)
	}

	// The starting platform does not advance the frontier, so the second
	// platform is spaced from x = 0. At zero difficulty the spacing draw
	// is 150 with a ±50 spread, floored at 100.
	second := plats[1]
	if second.X < 100 || second.X > 200 {
		t.Errorf("second platform x = %v, want within [100, 200]", second.X)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	cfg := testCliffConfig()
	a := NewGenerator(7, cfg)
	b := NewGenerator(7, cfg)

	pa, pb := a.Platforms(), b.Platforms()
	if len(pa) != len(pb) {
		t.Fatalf("platform counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i].X != pb[i].X || pa[i].Y != pb[i].Y || pa[i].W != pb[i].W || pa[i].Kind != pb[i].Kind {
			t.Errorf("platform %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}

	c := NewGenerator(8, cfg)
	pc := c.Platforms()
	same := true
	for i := range pa {
		if pa[i].X != pc[i].X || pa[i].Y != pc[i].Y {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced an identical sequence")
	}
}

func TestPlacementWithinBounds(t *testing.T) {
	cfg := testCliffConfig()
	g := NewGenerator(99, cfg)
	for i := 0; i < 500; i++ {
		g.generatePlatform()
	}

	prevX := math.Inf(-1)
	for i, p := range g.Platforms() {
		if i == 0 {
			prevX = p.X
			continue
		}
		if p.X-prevX < cfg.Generator.SpacingMin {
			t.Errorf("platform %d spacing = %v, want >= %v", i, p.X-prevX, cfg.Generator.SpacingMin)
		}
		prevX = p.X

		if p.Y < cfg.Generator.MinY || p.Y > cfg.World.Height-cfg.Generator.BottomMargin {
			t.Errorf("platform %d y = %v outside [%v, %v]", i, p.Y, cfg.Generator.MinY, cfg.World.Height-cfg.Generator.BottomMargin)
		}
		if p.W < cfg.Generator.WidthMin {
			t.Errorf("platform %d width = %v, want >= %v", i, p.W, cfg.Generator.WidthMin)
		}
	}
}

func TestEarlyPlatformsAllNormal(t *testing.T) {
	cfg := testCliffConfig()

	// The kind is chosen at the difficulty of the previous frontier, so
	// everything emitted before the gate distance must be normal.
	gateX := cfg.Generator.Difficulty.TypeGate * cfg.Generator.Difficulty.RampDistance
	for seed := int64(1); seed <= 10; seed++ {
		g := NewGenerator(seed, cfg)
		for _, p := range g.Platforms() {
			if p.X <= gateX && p.Kind != KindNormal {
				t.Errorf("seed %d: %s platform at x = %v, before the gate at %v", seed, p.Kind, p.X, gateX)
			}
		}
	}
}

func TestDifficultyDerivedFromFrontier(t *testing.T) {
	cfg := testCliffConfig()
	g := NewGenerator(3, cfg)

	for i := 0; i < 200; i++ {
		g.generatePlatform()
		want := math.Min(g.lastX/cfg.Generator.Difficulty.RampDistance, cfg.Generator.Difficulty.Max)
		if !almostEqual(g.difficulty, want) {
			t.Fatalf("after emission %d: difficulty = %v, want %v (frontier %v)", i, g.difficulty, want, g.lastX)
		}
	}

	if g.Difficulty() != cfg.Generator.Difficulty.Max {
		t.Errorf("difficulty should cap at %v, got %v", cfg.Generator.Difficulty.Max, g.Difficulty())
	}
}

func TestUpdatePrunesAndTopsUp(t *testing.T) {
	cfg := testCliffConfig()
	g := NewGenerator(42, cfg)
	player := &Player{X: 2000}

	g.Update(player)

	viewLeft := player.X - cfg.World.Width/3
	pruneBound := viewLeft - cfg.Generator.PruneMargin
	for _, p := range g.Platforms() {
		if p.X <= pruneBound {
			t.Errorf("platform at x = %v should have been pruned (bound %v)", p.X, pruneBound)
		}
	}

	// The starting platform is far behind the player by now.
	for _, p := range g.Platforms() {
		if p.X == 0 {
			t.Error("starting platform survived pruning")
		}
	}

	wantFrontier := viewLeft + cfg.World.Width + cfg.Generator.LookaheadMargin
	if g.lastX < wantFrontier {
		t.Errorf("frontier = %v, want >= %v", g.lastX, wantFrontier)
	}
}

func TestUpdateTicksPlatforms(t *testing.T) {
	cfg := testCliffConfig()
	g := NewGenerator(42, cfg)

	p := NewPlatform(500, 300, 100, KindCrumbling, cfg.Platforms)
	p.CrumbleTimer = 5
	g.platforms = append(g.platforms, p)

	g.Update(&Player{X: 100})

	if p.CrumbleTimer != 4 {
		t.Errorf("crumble timer = %d, want 4 after one generator update", p.CrumbleTimer)
	}
}

func TestActivePlatformsExcludesCollapsed(t *testing.T) {
	cfg := testCliffConfig()
	g := NewGenerator(42, cfg)

	all := g.Platforms()
	all[2].Active = false

	active := g.ActivePlatforms()
	if len(active) != len(all)-1 {
		t.Fatalf("active count = %d, want %d", len(active), len(all)-1)
	}
	for _, p := range active {
		if !p.Active {
			t.Error("ActivePlatforms returned a collapsed platform")
		}
	}
}
