package cliff

import (
	"fmt"
	"math"

	"github.com/velikanov/cliffhop/internal/core"
)

// Visual characters for rendering
const (
	normalChar    = '='
	crumblingChar = '%'
	bouncyChar    = '^'
	movingChar    = '~'
	playerChar    = '█'
)

// dashBarWidth is the HUD cooldown bar length in cells.
const dashBarWidth = 10

// viewport projects world coordinates onto the cell grid through the camera.
type viewport struct {
	camX, camY     float64
	scaleX, scaleY float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	return viewport{
		camX:   g.camera.X,
		camY:   g.camera.Y,
		scaleX: float64(dst.Width()) / g.cfg.World.Width,
		scaleY: float64(dst.Height()) / g.cfg.World.Height,
	}
}

func (v viewport) x(wx float64) int {
	return int(math.Round((wx - v.camX) * v.scaleX))
}

func (v viewport) y(wy float64) int {
	return int(math.Round((wy - v.camY) * v.scaleY))
}

// spanX converts a world width to cells, never collapsing below one cell so
// every visible entity paints something.
func (v viewport) spanX(w float64) int {
	return core.Max(1, int(math.Round(w*v.scaleX)))
}

func (v viewport) spanY(h float64) int {
	return core.Max(1, int(math.Round(h*v.scaleY)))
}

// Render draws the world through the camera, then the HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil {
		return
	}

	v := g.viewport(dst)

	for _, p := range g.generator.Platforms() {
		if !p.Active {
			continue
		}
		g.drawPlatform(dst, v, p)
	}

	g.drawPlayer(dst, v)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score), core.ColorBrightRed)
	}
}

// drawPlatform paints one platform with its kind's glyph and color. A
// crumbling platform that has been stepped on blinks red as a warning.
func (g *Game) drawPlatform(dst *core.Screen, v viewport, p *Platform) {
	var char rune
	var color core.Color

	switch p.Kind {
	case KindCrumbling:
		char = crumblingChar
		if p.Flickering() {
			color = core.ColorBrightRed
		} else {
			color = core.ColorGray
		}
	case KindBouncy:
		char, color = bouncyChar, core.ColorBrightMagenta
	case KindMoving:
		char, color = movingChar, core.ColorYellow
	default:
		char, color = normalChar, core.ColorGreen
	}

	dst.FillRect(v.x(p.X), v.y(p.Y), v.spanX(p.W), v.spanY(p.H), char, color)
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	color := core.ColorBrightBlue
	if g.player.Dashing {
		color = core.ColorBrightYellow
	}
	dst.FillRect(v.x(g.player.X), v.y(g.player.Y), v.spanX(g.player.W), v.spanY(g.player.H), playerChar, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)

	diffText := fmt.Sprintf("Diff: %.1f", g.generator.Difficulty())
	dst.DrawText(dst.Width()-len(diffText)-1, 0, diffText, core.ColorGray)

	if g.player.DashReady() {
		dst.DrawText(1, 1, "DASH READY", core.ColorBrightGreen)
	} else {
		// The bar drains as the cooldown runs out.
		filled := core.Clamp(int(math.Round(g.player.CooldownFraction()*dashBarWidth)), 0, dashBarWidth)
		dst.DrawText(1, 1, "Dash", core.ColorWhite)
		dst.DrawHLine(6, 1, filled, '#', core.ColorGreen)
		dst.DrawHLine(6+filled, 1, dashBarWidth-filled, '-', core.ColorRed)
	}

	dst.DrawText(1, dst.Height()-1, "arrows move | z/space jump | x dash | p pause | q quit", core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, titleColor core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, titleColor)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
