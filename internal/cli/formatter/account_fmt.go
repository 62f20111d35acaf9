package formatter

import (
	"time"

	"github.com/alexanderramin/ozpath/internal/domain"
)

// FormatProfile renders the signed-in account.
func FormatProfile(u domain.UserProfile, now time.Time) string {
	pairs := [][2]string{
		{"Name", u.Name},
		{"Email", u.Email},
		{"ID", u.ID},
	}
	if !u.CreatedAt.IsZero() {
		pairs = append(pairs, [2]string{"Member since", HumanDateFrom(u.CreatedAt, now)})
	}
	return RenderBox("Account", RenderKeyValues(pairs))
}
