package formatter

import (
	"strings"

	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette, loosely after the Australian landscape.
var (
	ColorEucalypt  = lipgloss.Color("#7fb685")
	ColorWattle    = lipgloss.Color("#f2c14e")
	ColorOchre     = lipgloss.Color("#d1603d")
	ColorHarbour   = lipgloss.Color("#5fa8d3")
	ColorJacaranda = lipgloss.Color("#a78bfa")
	ColorMuted     = lipgloss.Color("#8a8f98")
	ColorText      = lipgloss.Color("#e8e3d7")
	ColorSunset    = lipgloss.Color("#f08a4b")
)

// Styles by role. Formatters pick a role, never a raw color.
var (
	StylePass      = lipgloss.NewStyle().Foreground(ColorEucalypt)
	StyleWarn      = lipgloss.NewStyle().Foreground(ColorWattle)
	StyleFail      = lipgloss.NewStyle().Foreground(ColorOchre)
	StyleAccent    = lipgloss.NewStyle().Foreground(ColorHarbour)
	StyleHighlight = lipgloss.NewStyle().Foreground(ColorJacaranda)
	StyleMuted     = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleText      = lipgloss.NewStyle().Foreground(ColorText)
	StyleTitle     = lipgloss.NewStyle().Foreground(ColorSunset).Bold(true)
	StyleStrong    = StyleText.Bold(true)
)

var tierStyles = map[domain.Tier]lipgloss.Style{
	domain.TierA: StylePass,
	domain.TierB: StyleWarn,
	domain.TierC: StyleFail,
}

// TierColor returns the style used for an eligibility tier.
func TierColor(tier domain.Tier) lipgloss.Style {
	if s, ok := tierStyles[tier]; ok {
		return s
	}
	return StyleMuted
}

// ScoreColor is green at or above the pass mark and red below it.
func ScoreColor(total, passMark int) lipgloss.Style {
	if total < passMark {
		return StyleFail
	}
	return StylePass
}

// Header renders an upper-cased title over a rule of the same width.
func Header(text string) string {
	title := strings.ToUpper(text)
	rule := strings.Repeat("─", lipgloss.Width(title))
	return StyleTitle.Render(title) + "\n" + StyleMuted.Render(rule)
}

func Dim(text string) string  { return StyleMuted.Render(text) }
func Bold(text string) string { return StyleStrong.Render(text) }
