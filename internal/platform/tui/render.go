package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/velikanov/cliffhop/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Indexed by the color value,
// which is a small dense enum.
var colorStyles = func() []lipgloss.Style {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	styles := make([]lipgloss.Style, core.ColorGray+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	styles[core.ColorRed] = fg("1")
	styles[core.ColorGreen] = fg("2")
	styles[core.ColorYellow] = fg("3")
	styles[core.ColorBlue] = fg("4")
	styles[core.ColorMagenta] = fg("5")
	styles[core.ColorCyan] = fg("6")
	styles[core.ColorWhite] = fg("7")
	styles[core.ColorBrightRed] = fg("9")
	styles[core.ColorBrightGreen] = fg("10")
	styles[core.ColorBrightYellow] = fg("11")
	styles[core.ColorBrightBlue] = fg("12")
	styles[core.ColorBrightMagenta] = fg("13")
	styles[core.ColorBrightCyan] = fg("14")
	styles[core.ColorBrightWhite] = fg("15")
	styles[core.ColorOrange] = fg("208")
	styles[core.ColorGray] = fg("245")
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(colorStyles) {
		return colorStyles[core.ColorDefault]
	}
	return colorStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped into one styled run to keep
// the ANSI overhead down; at 60 ticks per second that matters.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		runColor := s.GetCell(0, y).Color
		run.Reset()
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(styleFor(runColor).Render(run.String()))
	}
	return sb.String()
}
