package cliff

import "math"

// platformWords is the flattened size of one platform in a snapshot:
// Kind, X, Y, W, Active, CrumbleTimer, OriginY, MoveDir.
const platformWords = 8

// Snapshot captures the complete run state for determinism checks and
// debugging. Uses primitive types only for stable serialization. Floats in
// PlatformData are stored as IEEE-754 bits. A run is reproduced by reseeding
// and replaying inputs rather than by restoring a snapshot, so there is no
// ApplySnapshot.
type Snapshot struct {
	Tick   uint64
	Seed   int64
	Score  int
	Over   bool
	Paused bool

	PlayerX, PlayerY   float64
	PlayerVX, PlayerVY float64
	OnGround           bool
	Dashing            bool
	DashTimer          int
	DashCooldown       int
	CoyoteTimer        int

	CameraX, CameraY float64
	TargetX, TargetY float64

	FrontierX, FrontierY float64
	Difficulty           float64

	PlatformCount int
	PlatformData  []uint64
}

// Snapshot returns the current run state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	plats := g.generator.Platforms()
	data := make([]uint64, 0, len(plats)*platformWords)
	for _, p := range plats {
		data = append(data,
			uint64(p.Kind), //#nosec G115 -- kind is a small enum
			math.Float64bits(p.X),
			math.Float64bits(p.Y),
			math.Float64bits(p.W),
			boolWord(p.Active),
			uint64(p.CrumbleTimer), //#nosec G115 -- timer is never negative
			math.Float64bits(p.originY),
			math.Float64bits(p.moveDir),
		)
	}

	return Snapshot{
		Tick:   uint64(g.ticks), //#nosec G115 -- tick count is always positive
		Seed:   g.seed,
		Score:  g.score,
		Over:   g.gameOver,
		Paused: g.paused,

		PlayerX:      g.player.X,
		PlayerY:      g.player.Y,
		PlayerVX:     g.player.VX,
		PlayerVY:     g.player.VY,
		OnGround:     g.player.OnGround,
		Dashing:      g.player.Dashing,
		DashTimer:    g.player.DashTimer,
		DashCooldown: g.player.DashCooldown,
		CoyoteTimer:  g.player.CoyoteTimer,

		CameraX: g.camera.X,
		CameraY: g.camera.Y,
		TargetX: g.camera.TargetX,
		TargetY: g.camera.TargetY,

		FrontierX:  g.generator.lastX,
		FrontierY:  g.generator.lastY,
		Difficulty: g.generator.difficulty,

		PlatformCount: len(plats),
		PlatformData:  data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Seed)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + boolWord(snap.Over)
	h = h*31 + boolWord(snap.Paused)

	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerVX)
	h = h*31 + math.Float64bits(snap.PlayerVY)
	h = h*31 + boolWord(snap.OnGround)
	h = h*31 + boolWord(snap.Dashing)
	h = h*31 + uint64(snap.DashTimer)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DashCooldown) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CoyoteTimer)  //#nosec G115 -- hash computation

	h = h*31 + math.Float64bits(snap.CameraX)
	h = h*31 + math.Float64bits(snap.CameraY)
	h = h*31 + math.Float64bits(snap.TargetX)
	h = h*31 + math.Float64bits(snap.TargetY)

	h = h*31 + math.Float64bits(snap.FrontierX)
	h = h*31 + math.Float64bits(snap.FrontierY)
	h = h*31 + math.Float64bits(snap.Difficulty)

	h = h*31 + uint64(snap.PlatformCount) //#nosec G115 -- hash computation
	for _, w := range snap.PlatformData {
		h = h*31 + w
	}

	return h
}

func boolWord(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
