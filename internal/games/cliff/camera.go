package cliff

import "github.com/velikanov/cliffhop/internal/config"

// Camera follows the player with exponential smoothing, keeping the player a
// third of the screen from the left edge and vertically centered. The x
// target never goes left of the world origin; y is unclamped.
type Camera struct {
	X, Y             float64
	TargetX, TargetY float64

	cfg *config.CliffConfig
}

// NewCamera creates a camera at the world origin.
func NewCamera(cfg *config.CliffConfig) *Camera {
	return &Camera{cfg: cfg}
}

// Update recomputes the targets from the player position and moves a fixed
// fraction of the remaining distance, so the camera eases in without
// overshooting.
func (c *Camera) Update(player *Player) {
	c.TargetX = player.X - c.cfg.World.Width/3
	if c.TargetX < 0 {
		c.TargetX = 0
	}
	c.TargetY = player.Y - c.cfg.World.Height/2

	smoothing := c.cfg.Camera.Smoothing
	c.X += (c.TargetX - c.X) * smoothing
	c.Y += (c.TargetY - c.Y) * smoothing
}
