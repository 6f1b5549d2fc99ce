package config

import "fmt"

// ValidationError contains details about a rejected configuration.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the configuration for values the simulation cannot run on.
// It returns the first violation found; a session must refuse to start on a
// non-nil result rather than run with undefined physics.
func (c CliffConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_WORLD",
			Message: fmt.Sprintf("world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height),
		}
	}
	if c.Physics.Gravity <= 0 {
		return ValidationError{
			Code:    "INVALID_GRAVITY",
			Message: fmt.Sprintf("gravity must be positive, got %g", c.Physics.Gravity),
		}
	}
	if c.Physics.MoveSpeed <= 0 {
		return ValidationError{
			Code:    "INVALID_MOVE_SPEED",
			Message: fmt.Sprintf("move_speed must be positive, got %g", c.Physics.MoveSpeed),
		}
	}
	if c.Physics.JumpImpulse >= 0 {
		return ValidationError{
			Code:    "INVALID_JUMP_IMPULSE",
			Message: fmt.Sprintf("jump_impulse must be negative (up), got %g", c.Physics.JumpImpulse),
		}
	}
	if c.Physics.CoyoteTicks <= 0 {
		return ValidationError{
			Code:    "INVALID_COYOTE",
			Message: fmt.Sprintf("coyote_ticks must be positive, got %d", c.Physics.CoyoteTicks),
		}
	}
	if c.Dash.Speed <= 0 {
		return ValidationError{
			Code:    "INVALID_DASH_SPEED",
			Message: fmt.Sprintf("dash speed must be positive, got %g", c.Dash.Speed),
		}
	}
	if c.Dash.DurationTicks <= 0 {
		return ValidationError{
			Code:    "INVALID_DASH_DURATION",
			Message: fmt.Sprintf("dash duration_ticks must be positive, got %d", c.Dash.DurationTicks),
		}
	}
	if c.Dash.CooldownTicks < c.Dash.DurationTicks {
		return ValidationError{
			Code:    "INVALID_DASH_COOLDOWN",
			Message: fmt.Sprintf("dash cooldown_ticks must be at least duration_ticks, got %d < %d",
				c.Dash.CooldownTicks, c.Dash.DurationTicks),
		}
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_PLAYER",
			Message: fmt.Sprintf("player body must be positive, got %gx%g", c.Player.Width, c.Player.Height),
		}
	}
	if c.Platforms.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_PLATFORM_HEIGHT",
			Message: fmt.Sprintf("platform height must be positive, got %g", c.Platforms.Height),
		}
	}
	if c.Platforms.CrumbleTicks <= 0 {
		return ValidationError{
			Code:    "INVALID_CRUMBLE",
			Message: fmt.Sprintf("crumble_ticks must be positive, got %d", c.Platforms.CrumbleTicks),
		}
	}
	if c.Platforms.MoveAmplitude < 0 || c.Platforms.MoveSpeed < 0 {
		return ValidationError{
			Code:    "INVALID_MOVING",
			Message: "moving platform amplitude and speed must not be negative",
		}
	}
	if err := c.Generator.validate(c.World); err != nil {
		return err
	}
	return c.validateRuntime()
}

func (g GeneratorConfig) validate(world WorldConfig) error {
	if g.StartWidth <= 0 {
		return ValidationError{
			Code:    "INVALID_START",
			Message: fmt.Sprintf("start_width must be positive, got %g", g.StartWidth),
		}
	}
	if g.Pregenerate < 0 {
		return ValidationError{
			Code:    "INVALID_PREGENERATE",
			Message: fmt.Sprintf("pregenerate must not be negative, got %d", g.Pregenerate),
		}
	}
	if g.SpacingMin <= 0 || g.SpacingBase < g.SpacingMin {
		return ValidationError{
			Code:    "INVALID_SPACING",
			Message: fmt.Sprintf("need 0 < spacing_min <= spacing_base, got min %g base %g", g.SpacingMin, g.SpacingBase),
		}
	}
	if g.SpacingJitter < 0 || g.VerticalBase < 0 || g.WidthJitter < 0 {
		return ValidationError{
			Code:    "INVALID_JITTER",
			Message: "random spreads must not be negative",
		}
	}
	if g.WidthMin <= 0 || g.WidthBase < g.WidthMin {
		return ValidationError{
			Code:    "INVALID_WIDTH",
			Message: fmt.Sprintf("need 0 < width_min <= width_base, got min %g base %g", g.WidthMin, g.WidthBase),
		}
	}
	if g.MinY < 0 || g.MinY >= world.Height-g.BottomMargin {
		return ValidationError{
			Code:    "INVALID_BOUNDS",
			Message: fmt.Sprintf("vertical band [%g, %g] is empty", g.MinY, world.Height-g.BottomMargin),
		}
	}
	if g.PruneMargin < 0 || g.LookaheadMargin < 0 {
		return ValidationError{
			Code:    "INVALID_MARGINS",
			Message: "prune_margin and lookahead_margin must not be negative",
		}
	}
	if g.Difficulty.RampDistance <= 0 {
		return ValidationError{
			Code:    "INVALID_RAMP",
			Message: fmt.Sprintf("ramp_distance must be positive, got %g", g.Difficulty.RampDistance),
		}
	}
	if g.Difficulty.Max < 0 {
		return ValidationError{
			Code:    "INVALID_DIFFICULTY_MAX",
			Message: fmt.Sprintf("difficulty max must not be negative, got %g", g.Difficulty.Max),
		}
	}
	t := g.Types
	if t.NormalBand < 0 || t.NormalBand > t.CrumbleBase || t.CrumbleBase > t.BouncyBase || t.BouncyBase > 1 {
		return ValidationError{
			Code:    "INVALID_TYPE_BANDS",
			Message: fmt.Sprintf("type bands must satisfy 0 <= normal <= crumble <= bouncy <= 1, got %g/%g/%g",
				t.NormalBand, t.CrumbleBase, t.BouncyBase),
		}
	}
	if t.CrumbleScale < 0 || t.BouncyScale < 0 {
		return ValidationError{
			Code:    "INVALID_TYPE_SCALES",
			Message: "type band scales must not be negative",
		}
	}
	return nil
}

func (c CliffConfig) validateRuntime() error {
	if c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		return ValidationError{
			Code:    "INVALID_SMOOTHING",
			Message: fmt.Sprintf("camera smoothing must be in (0, 1], got %g", c.Camera.Smoothing),
		}
	}
	if c.Session.KillMargin < 0 {
		return ValidationError{
			Code:    "INVALID_KILL_MARGIN",
			Message: fmt.Sprintf("kill_margin must not be negative, got %g", c.Session.KillMargin),
		}
	}
	if c.Session.ScoreDivisor <= 0 {
		return ValidationError{
			Code:    "INVALID_SCORE_DIVISOR",
			Message: fmt.Sprintf("score_divisor must be positive, got %g", c.Session.ScoreDivisor),
		}
	}
	return nil
}
