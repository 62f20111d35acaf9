package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ozpath/internal/domain"
)

// FormatEligibility renders the questionnaire result and its suggestions.
// related are directory entries shown as further reading; it may be empty.
func FormatEligibility(res domain.EligibilityResult, related []domain.Visa) string {
	var b strings.Builder

	score := fmt.Sprintf("Indicative score: %d", res.Score)
	b.WriteString(TierColor(res.Tier).Bold(true).Render(score) + "\n\n")
	b.WriteString(StyleText.Render(res.Heading) + "\n")
	b.WriteString(Bullets(res.Visas, 2))

	if len(related) > 0 {
		b.WriteString("\n" + Dim("Read more with `ozpath visas <subclass>`:") + "\n")
		for _, v := range related {
			b.WriteString(fmt.Sprintf("  %s  %s\n", StyleAccent.Render(v.Subclass), Dim(v.Name)))
		}
	}

	b.WriteString("\n" + Dim("This is an indication only. Consult a registered migration agent for advice.") + "\n")
	return RenderBox("Eligibility", b.String())
}
