package scoring

import "github.com/alexanderramin/ozpath/internal/domain"

// PassMark is the minimum points-test score for general skilled migration.
const PassMark = 65

// Category names as shown in the breakdown.
const (
	CategoryAge                  = "Age"
	CategoryEnglish              = "English Language"
	CategoryQualification        = "Educational Qualification"
	CategoryOverseasExperience   = "Skilled Employment Outside Australia"
	CategoryAustralianExperience = "Skilled Employment In Australia"
	CategoryPartner              = "Partner Skills / Single Applicant"
	CategorySpecialist           = "Specialist Education"
	CategoryProfessionalYear     = "Professional Year"
)

type pointsRule struct {
	name   string
	max    int
	table  map[string]int
	choose func(domain.PointsAnswers) string
}

var pointsRules = []pointsRule{
	{
		name: CategoryAge,
		max:  30,
		table: map[string]int{
			string(domain.Age18to24): 25,
			string(domain.Age25to32): 30,
			string(domain.Age33to39): 25,
			string(domain.Age40to44): 15,
			string(domain.Age45to49): 0,
		},
		choose: func(a domain.PointsAnswers) string { return string(a.Age) },
	},
	{
		name: CategoryEnglish,
		max:  20,
		table: map[string]int{
			string(domain.EnglishCompetent):  0,
			string(domain.EnglishProficient): 10,
			string(domain.EnglishSuperior):   20,
		},
		choose: func(a domain.PointsAnswers) string { return string(a.EnglishLevel) },
	},
	{
		name: CategoryQualification,
		max:  20,
		table: map[string]int{
			string(domain.QualDiploma):   10,
			string(domain.QualBachelors): 15,
			string(domain.QualMasters):   15,
			string(domain.QualDoctorate): 20,
		},
		choose: func(a domain.PointsAnswers) string { return string(a.Qualification) },
	},
	{
		name: CategoryOverseasExperience,
		max:  20,
		table: map[string]int{
			string(domain.OverseasUnder1): 0,
			string(domain.Overseas1to3):   5,
			string(domain.Overseas3to5):   10,
			string(domain.Overseas5to8):   15,
			string(domain.Overseas8Plus):  20,
		},
		choose: func(a domain.PointsAnswers) string { return string(a.Experience) },
	},
	{
		name: CategoryAustralianExperience,
		max:  20,
		table: map[string]int{
			string(domain.AustralianUnder1): 0,
			string(domain.Australian1to3):   5,
			string(domain.Australian3to5):   10,
			string(domain.Australian5to8):   15,
			string(domain.Australian8Plus):  20,
		},
		choose: func(a domain.PointsAnswers) string { return string(a.AustralianExperience) },
	},
	{
		name: CategoryPartner,
		max:  10,
		table: map[string]int{
			string(domain.PartnerNotSkilled):       0,
			string(domain.PartnerCompetentEnglish): 5,
			string(domain.PartnerSkilled):          10,
			string(domain.PartnerSingle):           10,
		},
		choose: func(a domain.PointsAnswers) string { return string(a.PartnerSkills) },
	},
	{
		name:   CategorySpecialist,
		max:    10,
		table:  map[string]int{string(domain.Yes): 10},
		choose: func(a domain.PointsAnswers) string { return string(a.SpecialistEducation) },
	},
	{
		name:   CategoryProfessionalYear,
		max:    5,
		table:  map[string]int{string(domain.Yes): 5},
		choose: func(a domain.PointsAnswers) string { return string(a.ProfessionalYear) },
	},
}

// CalculatePoints scores the points-test answers. Unknown or empty
// selections award nothing for their category.
func CalculatePoints(a domain.PointsAnswers) domain.ScoreBreakdown {
	out := domain.ScoreBreakdown{Categories: make([]domain.CategoryScore, 0, len(pointsRules))}
	for _, r := range pointsRules {
		pts := r.table[r.choose(a)]
		out.Categories = append(out.Categories, domain.CategoryScore{
			Name:      r.name,
			Points:    pts,
			MaxPoints: r.max,
		})
		out.Total += pts
	}
	return out
}

// MaxPoints is the highest total CalculatePoints can return.
func MaxPoints() int {
	total := 0
	for _, r := range pointsRules {
		total += r.max
	}
	return total
}

// EnglishThresholds describes the score each band requires on the given test.
func EnglishThresholds(test domain.EnglishTest) string {
	switch test {
	case domain.TestIELTS:
		return "IELTS: Competent (6 in each), Proficient (7 in each), Superior (8 in each)"
	case domain.TestPTE:
		return "PTE: Competent (50+), Proficient (65+), Superior (79+)"
	case domain.TestTOEFL:
		return "TOEFL: Competent (12+ in each), Proficient (24+ in each), Superior (28+ in each)"
	case domain.TestCambridge:
		return "Cambridge: Competent (169+), Proficient (185+), Superior (200+)"
	default:
		return "Select your English language level"
	}
}
