package domain

// AgeBand is the age range selected on the points calculator.
type AgeBand string

const (
	Age18to24 AgeBand = "18-24"
	Age25to32 AgeBand = "25-32"
	Age33to39 AgeBand = "33-39"
	Age40to44 AgeBand = "40-44"
	Age45to49 AgeBand = "45-49"
)

// EnglishTest identifies the approved English test an applicant sat.
// It only changes the helper text, never the score.
type EnglishTest string

const (
	TestIELTS     EnglishTest = "ielts"
	TestPTE       EnglishTest = "pte"
	TestTOEFL     EnglishTest = "toefl"
	TestCambridge EnglishTest = "cambridge"
)

// EnglishLevel is the points-test English band.
type EnglishLevel string

const (
	EnglishCompetent  EnglishLevel = "competent"
	EnglishProficient EnglishLevel = "proficient"
	EnglishSuperior   EnglishLevel = "superior"
)

type Qualification string

const (
	QualDiploma    Qualification = "diploma"
	QualBachelors  Qualification = "bachelors"
	QualMasters    Qualification = "masters"
	QualDoctorate  Qualification = "doctorate"
	QualTrade      Qualification = "trade"
	QualHighSchool Qualification = "highschool"
	QualNone       Qualification = "none"
)

// OverseasExperience is skilled employment outside Australia, in years.
type OverseasExperience string

const (
	OverseasUnder1 OverseasExperience = "0"
	Overseas1to3   OverseasExperience = "1-3"
	Overseas3to5   OverseasExperience = "3-5"
	Overseas5to8   OverseasExperience = "5-8"
	Overseas8Plus  OverseasExperience = "8+"
)

// AustralianExperience is skilled employment in Australia. The values are
// the lower bound of each band: "1" means 1-3 years.
type AustralianExperience string

const (
	AustralianUnder1 AustralianExperience = "0"
	Australian1to3   AustralianExperience = "1"
	Australian3to5   AustralianExperience = "3"
	Australian5to8   AustralianExperience = "5"
	Australian8Plus  AustralianExperience = "8+"
)

type PartnerSkills string

const (
	PartnerNotSkilled       PartnerSkills = "none"
	PartnerCompetentEnglish PartnerSkills = "competent-english"
	PartnerSkilled          PartnerSkills = "skilled"
	PartnerSingle           PartnerSkills = "no-partner"
)

type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

// PointsAnswers is the flat record of selections made on the points
// calculator. Empty fields are allowed and score zero.
type PointsAnswers struct {
	Age                  AgeBand              `json:"age"`
	EnglishTest          EnglishTest          `json:"englishTest"`
	EnglishLevel         EnglishLevel         `json:"englishLevel"`
	Qualification        Qualification        `json:"qualification"`
	Experience           OverseasExperience   `json:"experience"`
	AustralianExperience AustralianExperience `json:"australianExperience"`
	PartnerSkills        PartnerSkills        `json:"partnerSkills"`
	SpecialistEducation  YesNo                `json:"specialistEducation"`
	ProfessionalYear     YesNo                `json:"professionalYear"`
}

// CategoryScore is one line of a points breakdown.
type CategoryScore struct {
	Name      string `json:"name"`
	Points    int    `json:"points"`
	MaxPoints int    `json:"maxPoints"`
}

// ScoreBreakdown lists awarded points per category in display order.
type ScoreBreakdown struct {
	Categories []CategoryScore `json:"categories"`
	Total      int             `json:"total"`
}

// Points returns the awarded points for the named category, or 0.
func (b ScoreBreakdown) Points(name string) int {
	for _, c := range b.Categories {
		if c.Name == name {
			return c.Points
		}
	}
	return 0
}
