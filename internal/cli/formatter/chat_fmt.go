package formatter

import (
	"strings"

	"github.com/alexanderramin/ozpath/internal/assistant"
)

// FormatReply renders an assistant response for one-shot output. Offline
// answers get a dim footnote.
func FormatReply(r assistant.Response) string {
	var b strings.Builder
	b.WriteString(StyleText.Render(r.Message))
	b.WriteString("\n")
	if r.Status == assistant.StatusError {
		b.WriteString("\n" + Dim("(offline answer: the AI service was unavailable)") + "\n")
	}
	return b.String()
}
