package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = "  "

// RenderTable lays out rows under a styled header and rule. Column widths
// are measured on visible text so styled cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for _, row := range append([][]string{headers}, rows...) {
		for i := range min(len(row), len(widths)) {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = StyleMuted.Render(strings.Repeat("─", w))
	}
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = StyleTitle.Render(h)
	}

	var b strings.Builder
	writeRow(&b, styled, widths)
	writeRow(&b, rules, widths)
	for _, row := range rows {
		writeRow(&b, row, widths)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	var line strings.Builder
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i > 0 {
			line.WriteString(colGap)
		}
		line.WriteString(padRight(cell, w))
	}
	b.WriteString(strings.TrimRight(line.String(), " "))
	b.WriteByte('\n')
}

// padRight pads s with spaces to w visible columns.
func padRight(s string, w int) string {
	return s + strings.Repeat(" ", max(w-lipgloss.Width(s), 0))
}

// RenderKeyValues renders "label: value" lines with the values aligned.
func RenderKeyValues(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0])+1)
	}
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(padRight(Dim(p[0]+":"), width+1))
		b.WriteString(StyleText.Render(p[1]))
		b.WriteByte('\n')
	}
	return b.String()
}
