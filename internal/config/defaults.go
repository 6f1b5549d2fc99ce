package config

import (
	_ "embed"
)

//go:embed defaults/cliff.yaml
var defaultCliffYAML []byte

// DefaultCliffConfig returns the default cliff configuration. It mirrors
// defaults/cliff.yaml and serves as the last-resort fallback if the embedded
// YAML somehow fails to parse.
func DefaultCliffConfig() CliffConfig {
	return CliffConfig{
		World: WorldConfig{
			Width:  1000,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:     0.7,
			MoveSpeed:   6,
			JumpImpulse: -15,
			CoyoteTicks: 6,
		},
		Dash: DashConfig{
			Speed:         20,
			DurationTicks: 10,
			CooldownTicks: 60,
		},
		Player: PlayerConfig{
			Width:  30,
			Height: 40,
			SpawnX: 100,
			SpawnY: 300,
		},
		Platforms: PlatformsConfig{
			Height:        20,
			CrumbleTicks:  30,
			MoveAmplitude: 100,
			MoveSpeed:     2,
		},
		Generator: GeneratorConfig{
			StartY:      400,
			StartWidth:  250,
			Pregenerate: 15,

			SpacingBase:      150,
			SpacingJitter:    50,
			SpacingDiffScale: 30,
			SpacingMin:       80,

			VerticalBase:      80,
			VerticalDiffScale: 40,

			MinY:         150,
			BottomMargin: 100,

			WidthBase:      150,
			WidthDiffScale: 20,
			WidthJitter:    30,
			WidthMin:       60,

			PruneMargin:     500,
			LookaheadMargin: 500,

			Difficulty: DifficultyConfig{
				RampDistance: 1000,
				Max:          5,
				TypeGate:     0.5,
			},
			Types: TypeWeights{
				NormalBand:   0.5,
				CrumbleBase:  0.65,
				CrumbleScale: 0.05,
				BouncyBase:   0.8,
				BouncyScale:  0.03,
			},
		},
		Camera: CameraConfig{
			Smoothing: 0.1,
		},
		Session: SessionConfig{
			KillMargin:   100,
			ScoreDivisor: 10,
		},
	}
}

// DefaultYAML returns the embedded default cliff YAML, e.g. for writing a
// starter config file the user can edit.
func DefaultYAML() []byte {
	return defaultCliffYAML
}
