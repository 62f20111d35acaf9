package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ozpath/internal/domain"
)

// FormatPoints renders a points-test breakdown with a pass/fail summary.
func FormatPoints(sb domain.ScoreBreakdown, passMark, maxPoints int) string {
	var b strings.Builder

	rows := make([][]string, 0, len(sb.Categories))
	for _, c := range sb.Categories {
		rows = append(rows, []string{c.Name, RenderScoreBar(c.Points, c.MaxPoints, 10)})
	}
	b.WriteString(RenderTable([]string{"CATEGORY", "POINTS"}, rows))
	b.WriteString("\n")

	total := fmt.Sprintf("Total: %d / %d", sb.Total, maxPoints)
	b.WriteString(ScoreColor(sb.Total, passMark).Bold(true).Render(total) + "\n")
	if sb.Total >= passMark {
		b.WriteString(StylePass.Render(fmt.Sprintf("You meet the %d point pass mark for skilled migration.", passMark)) + "\n")
	} else {
		b.WriteString(StyleWarn.Render(fmt.Sprintf("You need %d more points to reach the %d point pass mark.", passMark-sb.Total, passMark)) + "\n")
	}

	return RenderBox("Points Calculator", b.String())
}
