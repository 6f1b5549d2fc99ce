// Package config provides YAML-based game configuration loading and
// tuning presets for the cliffhop platform.
package config

// CliffConfig contains all tunables for the cliff platformer simulation.
// Every physics and generation constant lives here so variants of the game
// are data, not code.
type CliffConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Dash      DashConfig      `yaml:"dash"`
	Player    PlayerConfig    `yaml:"player"`
	Platforms PlatformsConfig `yaml:"platforms"`
	Generator GeneratorConfig `yaml:"generator"`
	Camera    CameraConfig    `yaml:"camera"`
	Session   SessionConfig   `yaml:"session"`
}

// WorldConfig defines the fixed logical world dimensions. The renderer
// projects world units onto whatever cell grid the terminal provides.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the per-tick movement parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per tick
	MoveSpeed   float64 `yaml:"move_speed"`   // Horizontal run speed
	JumpImpulse float64 `yaml:"jump_impulse"` // Instant vertical velocity on jump (negative = up)
	CoyoteTicks int     `yaml:"coyote_ticks"` // Grace window for jumping after leaving ground
}

// DashConfig defines the dash move parameters.
type DashConfig struct {
	Speed         float64 `yaml:"speed"`          // Velocity magnitude while dashing
	DurationTicks int     `yaml:"duration_ticks"` // How long a dash lasts
	CooldownTicks int     `yaml:"cooldown_ticks"` // Ticks before the next dash is allowed
}

// PlayerConfig defines the player body and spawn point.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// PlatformsConfig defines per-kind platform behavior.
type PlatformsConfig struct {
	Height        float64 `yaml:"height"`         // Thickness of every platform
	CrumbleTicks  int     `yaml:"crumble_ticks"`  // Delay between first touch and collapse
	MoveAmplitude float64 `yaml:"move_amplitude"` // Vertical travel of moving platforms
	MoveSpeed     float64 `yaml:"move_speed"`     // Per-tick speed of moving platforms
}

// GeneratorConfig defines the procedural level stream.
type GeneratorConfig struct {
	StartY     float64 `yaml:"start_y"`     // Y of the guaranteed starting platform
	StartWidth float64 `yaml:"start_width"` // Width of the starting platform

	Pregenerate int `yaml:"pregenerate"` // Platforms emitted ahead at reset

	SpacingBase      float64 `yaml:"spacing_base"`       // Mean horizontal gap between platforms
	SpacingJitter    int     `yaml:"spacing_jitter"`     // Symmetric random spread on spacing
	SpacingDiffScale float64 `yaml:"spacing_diff_scale"` // Extra max spread per difficulty point
	SpacingMin       float64 `yaml:"spacing_min"`        // Hard floor on spacing

	VerticalBase      int     `yaml:"vertical_base"`       // Max vertical step at zero difficulty
	VerticalDiffScale float64 `yaml:"vertical_diff_scale"` // Extra vertical step per difficulty point

	MinY         float64 `yaml:"min_y"`         // Highest platform top allowed
	BottomMargin float64 `yaml:"bottom_margin"` // Gap kept between platforms and world bottom

	WidthBase      float64 `yaml:"width_base"`       // Platform width at zero difficulty
	WidthDiffScale float64 `yaml:"width_diff_scale"` // Width shaved off per difficulty point
	WidthJitter    int     `yaml:"width_jitter"`     // Symmetric random spread on width
	WidthMin       float64 `yaml:"width_min"`        // Hard floor on width

	PruneMargin     float64 `yaml:"prune_margin"`     // How far behind the camera platforms survive
	LookaheadMargin float64 `yaml:"lookahead_margin"` // How far past the right edge to generate

	Difficulty DifficultyConfig `yaml:"difficulty"`
	Types      TypeWeights      `yaml:"types"`
}

// DifficultyConfig defines how difficulty scales with distance. The scalar is
// always derived from the frontier position; it is never set directly.
type DifficultyConfig struct {
	RampDistance float64 `yaml:"ramp_distance"` // World units per difficulty point
	Max          float64 `yaml:"max"`           // Difficulty ceiling
	TypeGate     float64 `yaml:"type_gate"`     // Below this, only normal platforms spawn
}

// TypeWeights defines the platform kind distribution once past the gate.
// A uniform draw lands in [0, normal_band) for normal, then the crumbling and
// bouncy bands (both widening with difficulty), with moving taking the rest.
type TypeWeights struct {
	NormalBand   float64 `yaml:"normal_band"`
	CrumbleBase  float64 `yaml:"crumble_base"`
	CrumbleScale float64 `yaml:"crumble_scale"`
	BouncyBase   float64 `yaml:"bouncy_base"`
	BouncyScale  float64 `yaml:"bouncy_scale"`
}

// CameraConfig defines camera smoothing.
type CameraConfig struct {
	Smoothing float64 `yaml:"smoothing"` // Fraction of remaining distance covered per tick
}

// SessionConfig defines scoring and the losing condition.
type SessionConfig struct {
	KillMargin   float64 `yaml:"kill_margin"`   // How far below the view the player may fall
	ScoreDivisor float64 `yaml:"score_divisor"` // World units per score point
}

// Preset names a packaged tuning of the simulation.
type Preset string

const (
	PresetStandard Preset = "standard"
	PresetZen      Preset = "zen"
)
