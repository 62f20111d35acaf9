package domain

type ActionCategory string

const (
	CategoryDocumentation ActionCategory = "documentation"
	CategoryApplication   ActionCategory = "application"
	CategoryPreparation   ActionCategory = "preparation"
	CategorySettlement    ActionCategory = "settlement"
)

// ValidActionCategories is the canonical set of accepted category strings.
var ValidActionCategories = map[string]bool{
	"documentation": true, "application": true,
	"preparation": true, "settlement": true,
}

type Timeframe string

const (
	TimeframeImmediate  Timeframe = "immediate"
	TimeframeShortTerm  Timeframe = "short-term"
	TimeframeMediumTerm Timeframe = "medium-term"
	TimeframeLongTerm   Timeframe = "long-term"
)

// Label returns the human-readable deadline for the timeframe.
func (t Timeframe) Label() string {
	switch t {
	case TimeframeImmediate:
		return "Do now"
	case TimeframeShortTerm:
		return "Within 1-3 months"
	case TimeframeMediumTerm:
		return "Within 3-6 months"
	case TimeframeLongTerm:
		return "After visa approval"
	default:
		return string(t)
	}
}

// ActionItem is one step of a user's migration checklist. Only Completed
// changes after the list is seeded.
type ActionItem struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Completed   bool           `json:"completed"`
	Category    ActionCategory `json:"category"`
	Timeframe   Timeframe      `json:"timeframe"`
}
