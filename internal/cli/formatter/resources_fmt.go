package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ozpath/internal/domain"
)

// ResourceGroup is one titled list of links.
type ResourceGroup struct {
	Title     string
	Resources []domain.Resource
}

// FormatResources renders link lists, one section per group.
func FormatResources(groups []ResourceGroup) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(g.Title) + "\n")
		for _, r := range g.Resources {
			b.WriteString(fmt.Sprintf("%s %s\n", StyleAccent.Render("•"), Bold(r.Title)))
			b.WriteString(fmt.Sprintf("  %s\n", Dim(r.Description)))
			b.WriteString(fmt.Sprintf("  %s\n", StylePass.Render(r.Link)))
		}
	}
	return b.String()
}

// FormatProviders renders service provider contact cards.
func FormatProviders(title string, providers []domain.ServiceProvider) string {
	if len(providers) == 0 {
		return Dim("No service providers in this category.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header(title) + "\n")
	for _, p := range providers {
		b.WriteString("\n" + Bold(p.Name) + "\n")
		var pairs [][2]string
		for _, kv := range [][2]string{
			{"Website", p.Website},
			{"Phone", p.Phone},
			{"Email", p.Email},
			{"Address", strings.ReplaceAll(p.Address, "\n", "; ")},
		} {
			if kv[1] != "" {
				pairs = append(pairs, kv)
			}
		}
		b.WriteString(indentLines(RenderKeyValues(pairs), "  "))
		if p.Notes != "" {
			b.WriteString("  " + StyleWarn.Render(p.Notes) + "\n")
		}
	}
	return b.String()
}

func indentLines(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, l := range lines {
		if l == "" {
			continue
		}
		b.WriteString(prefix + l)
	}
	return b.String()
}

// FormatOccupations renders the key occupations as a table.
func FormatOccupations(title string, occs []domain.Occupation) string {
	if len(occs) == 0 {
		return Dim("No occupations on this list.") + "\n"
	}
	rows := make([][]string, 0, len(occs))
	for _, o := range occs {
		rows = append(rows, []string{o.ANZSCO, o.Title, string(o.List), o.AssessingAuthority})
	}
	return Header(title) + "\n" + RenderTable([]string{"ANZSCO", "Occupation", "List", "Assessing authority"}, rows)
}
