package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	barFull  = "█"
	barEmpty = "░"
)

// meter draws filled cells out of width, e.g. [███░░].
func meter(filled, width int, style lipgloss.Style) string {
	filled = min(max(filled, 0), width)
	return "[" + style.Render(strings.Repeat(barFull, filled)) + strings.Repeat(barEmpty, width-filled) + "]"
}

// RenderProgress draws a completion bar for a 0–100 percentage, e.g.
// [████░░░░]  50%. Under a third is red, under two thirds yellow.
func RenderProgress(percent, width int) string {
	percent = min(max(percent, 0), 100)
	width = max(width, 2)

	style := StylePass
	switch {
	case percent < 34:
		style = StyleFail
	case percent < 67:
		style = StyleWarn
	}
	return fmt.Sprintf("%s %3d%%", meter(percent*width/100, width, style), percent)
}

// RenderScoreBar draws points out of maxPoints, e.g. [█████░░░░░] 15/30.
func RenderScoreBar(points, maxPoints, width int) string {
	filled := 0
	if maxPoints > 0 {
		filled = points * width / maxPoints
	}

	style := StyleWarn
	switch {
	case points <= 0:
		style = StyleMuted
	case points >= maxPoints:
		style = StylePass
	}
	return fmt.Sprintf("%s %d/%d", meter(filled, width, style), points, maxPoints)
}
