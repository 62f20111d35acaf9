package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorMuted).
	Padding(1, 2)

// RenderBox frames content in a rounded panel, with the title upper-cased
// on top when given.
func RenderBox(title, content string) string {
	body := strings.TrimRight(content, "\n")
	if title != "" {
		body = StyleTitle.Render(strings.ToUpper(title)) + "\n\n" + body
	}
	return boxStyle.Render(body)
}

// Bullets renders one item per line, indented by indent spaces.
func Bullets(items []string, indent int) string {
	prefix := strings.Repeat(" ", indent) + StyleAccent.Render("•") + " "
	var b strings.Builder
	for _, item := range items {
		b.WriteString(prefix)
		b.WriteString(StyleText.Render(item))
		b.WriteByte('\n')
	}
	return b.String()
}

// Checkbox renders the completion marker used in the action plan.
func Checkbox(done bool) string {
	if !done {
		return StyleMuted.Render("[ ]")
	}
	return StylePass.Render("[x]")
}

// HumanDateFrom names t relative to now: "Today", "Yesterday" or a date.
func HumanDateFrom(t, now time.Time) string {
	switch calendarDays(t, now) {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// calendarDays counts midnights between t and now, ignoring time of day.
func calendarDays(t, now time.Time) int {
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	from := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	to := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
