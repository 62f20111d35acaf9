package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ozpath/internal/domain"
)

// FormatActionPlan renders the checklist with an overall progress bar.
// progress is a whole percentage.
func FormatActionPlan(items []domain.ActionItem, progress int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Progress:"), RenderProgress(progress, 20)))

	if len(items) == 0 {
		b.WriteString(Dim("No action items in this category.") + "\n")
		return RenderBox("Action Plan", b.String())
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		title := StyleText.Render(it.Title)
		if it.Completed {
			title = Dim(it.Title)
		}
		rows = append(rows, []string{
			Checkbox(it.Completed),
			StyleAccent.Render(it.ID),
			title,
			StyleHighlight.Render(string(it.Category)),
			Dim(it.Timeframe.Label()),
		})
	}
	b.WriteString(RenderTable([]string{"", "ID", "TASK", "CATEGORY", "WHEN"}, rows))
	return RenderBox("Action Plan", b.String())
}

// FormatActionItem renders a single checklist entry after a toggle.
func FormatActionItem(it domain.ActionItem) string {
	state := StyleWarn.Render("marked incomplete")
	if it.Completed {
		state = StylePass.Render("marked complete")
	}
	return fmt.Sprintf("%s %s %s\n%s\n", Checkbox(it.Completed), Bold(it.Title), state, Dim(it.Description))
}
