package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ozpath/internal/domain"
)

// VisaGroup is one heading of the directory with its visas.
type VisaGroup struct {
	Title string
	Intro string
	Visas []domain.Visa
}

// FormatVisaDirectory renders grouped visa summaries.
func FormatVisaDirectory(groups []VisaGroup) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(g.Title) + "\n")
		if g.Intro != "" {
			b.WriteString(Dim(g.Intro) + "\n")
		}
		b.WriteString("\n")
		for _, v := range g.Visas {
			b.WriteString(fmt.Sprintf("%s  %s\n", StyleAccent.Render(fmt.Sprintf("%-14s", v.Subclass)), Bold(v.Name)))
			b.WriteString(fmt.Sprintf("%s  %s\n", strings.Repeat(" ", 14), Dim(v.Residence)))
		}
	}
	return b.String()
}

// FormatVisa renders one visa with its requirements.
func FormatVisa(v domain.Visa) string {
	var b strings.Builder
	b.WriteString(StyleHighlight.Render(v.Residence) + "\n\n")
	b.WriteString(StyleText.Render(v.Summary) + "\n\n")
	b.WriteString(Bold("Key requirements") + "\n")
	b.WriteString(Bullets(v.Requirements, 2))
	return RenderBox(v.Name, b.String())
}
