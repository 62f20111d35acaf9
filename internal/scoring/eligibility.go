package scoring

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ozpath/internal/domain"
)

// Tier lower bounds, inclusive.
const (
	TierAMin = 65
	TierBMin = 50
)

// EligibilityStepCount is the number of questionnaire steps.
const EligibilityStepCount = 3

const (
	headingEligible = "Based on your answers, you may be eligible for:"
	headingExplore  = "Based on your answers, you might want to explore:"
)

var tierVisas = map[domain.Tier][]string{
	domain.TierA: {
		"Skilled Independent visa (subclass 189)",
		"Skilled Nominated visa (subclass 190)",
	},
	domain.TierB: {
		"Skilled Work Regional (Provisional) visa (subclass 491)",
		"Employer Nomination Scheme (subclass 186)",
	},
	domain.TierC: {
		"Temporary Skill Shortage visa (subclass 482)",
		"Working Holiday visa (if eligible by age)",
		"Student visa options to gain Australian qualifications",
	},
}

// EligibilityScore is the questionnaire's indicative score. It is a
// separate, simpler scale than CalculatePoints.
func EligibilityScore(a domain.EligibilityAnswers) int {
	score := 0

	switch {
	case a.Age >= 25 && a.Age <= 32:
		score += 30
	case a.Age >= 18 && a.Age <= 24:
		score += 25
	case a.Age >= 33 && a.Age <= 39:
		score += 25
	case a.Age >= 40 && a.Age <= 44:
		score += 15
	}

	switch a.EnglishLevel {
	case domain.ProficiencyNative, domain.ProficiencyProficient:
		score += 20
	case domain.ProficiencyCompetent:
		score += 10
	}

	switch {
	case a.YearsExperience >= 8:
		score += 20
	case a.YearsExperience >= 5:
		score += 15
	case a.YearsExperience >= 3:
		score += 10
	case a.YearsExperience >= 1:
		score += 5
	}

	switch a.Qualification {
	case domain.QualDoctorate:
		score += 20
	case domain.QualMasters, domain.QualBachelors:
		score += 15
	case domain.QualDiploma, domain.QualTrade:
		score += 10
	}

	if a.MaritalStatus == domain.MaritalMarried && a.PartnerEnglishLevel != domain.ProficiencyBasic {
		score += 10
	}

	return score
}

// TierFor maps a score to its recommendation band.
func TierFor(score int) domain.Tier {
	switch {
	case score >= TierAMin:
		return domain.TierA
	case score >= TierBMin:
		return domain.TierB
	default:
		return domain.TierC
	}
}

// Recommend builds the visa suggestion for a score.
func Recommend(score int) domain.EligibilityResult {
	tier := TierFor(score)
	heading := headingEligible
	if tier == domain.TierC {
		heading = headingExplore
	}
	visas := make([]string, len(tierVisas[tier]))
	copy(visas, tierVisas[tier])
	return domain.EligibilityResult{
		Score:   score,
		Tier:    tier,
		Heading: heading,
		Visas:   visas,
	}
}

// Evaluate scores the answers and attaches the recommendation.
func Evaluate(a domain.EligibilityAnswers) domain.EligibilityResult {
	return Recommend(EligibilityScore(a))
}

// IncompleteStepError lists the questionnaire fields still unanswered on
// a step.
type IncompleteStepError struct {
	Step    int
	Missing []string
}

func (e *IncompleteStepError) Error() string {
	return fmt.Sprintf("step %d incomplete: missing %s", e.Step, strings.Join(e.Missing, ", "))
}

// ValidateEligibilityStep reports whether the given 1-based step has every
// required answer.
func ValidateEligibilityStep(step int, a domain.EligibilityAnswers) error {
	var missing []string
	switch step {
	case 1:
		if a.Age <= 0 {
			missing = append(missing, "age")
		}
		if a.EnglishLevel == "" {
			missing = append(missing, "englishLevel")
		}
	case 2:
		if a.Occupation == "" {
			missing = append(missing, "occupation")
		}
		if a.YearsExperience < 0 {
			missing = append(missing, "yearsOfExperience")
		}
		if a.Qualification == "" {
			missing = append(missing, "qualification")
		}
	case 3:
		if a.MaritalStatus == "" {
			missing = append(missing, "maritalStatus")
		}
	default:
		return fmt.Errorf("unknown step %d", step)
	}
	if len(missing) > 0 {
		return &IncompleteStepError{Step: step, Missing: missing}
	}
	return nil
}
