package domain

// ProficiencyLevel is the self-reported English level on the eligibility
// questionnaire, used for both applicant and partner.
type ProficiencyLevel string

const (
	ProficiencyNative     ProficiencyLevel = "native"
	ProficiencyProficient ProficiencyLevel = "proficient"
	ProficiencyCompetent  ProficiencyLevel = "competent"
	ProficiencyModerate   ProficiencyLevel = "moderate"
	ProficiencyBasic      ProficiencyLevel = "basic"
)

type MaritalStatus string

const (
	MaritalSingle    MaritalStatus = "single"
	MaritalMarried   MaritalStatus = "married"
	MaritalSeparated MaritalStatus = "separated"
	MaritalWidowed   MaritalStatus = "widowed"
)

// YearsUnanswered marks YearsExperience as not given. Zero years is a valid
// answer.
const YearsUnanswered = -1

// EligibilityAnswers holds the three questionnaire steps. Age and
// experience are whole years. A zero age or a negative experience is
// unanswered.
type EligibilityAnswers struct {
	Age             int              `json:"age"`
	EnglishLevel    ProficiencyLevel `json:"englishLevel"`
	Occupation      string           `json:"occupation"`
	YearsExperience int              `json:"yearsOfExperience"`
	Qualification   Qualification    `json:"qualification"`

	MaritalStatus       MaritalStatus    `json:"maritalStatus"`
	PartnerAge          int              `json:"partnerAge,omitempty"`
	PartnerEnglishLevel ProficiencyLevel `json:"partnerEnglishLevel,omitempty"`
	PartnerOccupation   string           `json:"partnerOccupation,omitempty"`
	NumberOfChildren    int              `json:"numberOfChildren"`
	ChildrenAges        string           `json:"childrenAges,omitempty"`
}

// Tier is a score band selecting which visa suggestions are shown.
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// EligibilityResult is the scored questionnaire with its recommendation.
type EligibilityResult struct {
	Score   int      `json:"score"`
	Tier    Tier     `json:"tier"`
	Heading string   `json:"heading"`
	Visas   []string `json:"visas"`
}

// InDemandOccupations is the occupation picker offered by the questionnaire.
var InDemandOccupations = []string{
	"Software Engineer",
	"Registered Nurse",
	"Civil Engineer",
	"Electrician",
	"Mechanical Engineer",
	"Teacher",
	"Accountant",
	"Chef",
	"Construction Manager",
	"Medical Doctor",
	"Other",
}
