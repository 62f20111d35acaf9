package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/alexanderramin/ozpath/internal/scoring"
	"github.com/alexanderramin/ozpath/internal/service"
	"github.com/charmbracelet/huh"
)

var ageBandOptions = []huh.Option[domain.AgeBand]{
	huh.NewOption("18-24 years", domain.Age18to24),
	huh.NewOption("25-32 years", domain.Age25to32),
	huh.NewOption("33-39 years", domain.Age33to39),
	huh.NewOption("40-44 years", domain.Age40to44),
	huh.NewOption("45-49 years", domain.Age45to49),
}

var englishTestOptions = []huh.Option[domain.EnglishTest]{
	huh.NewOption("IELTS", domain.TestIELTS),
	huh.NewOption("PTE Academic", domain.TestPTE),
	huh.NewOption("TOEFL iBT", domain.TestTOEFL),
	huh.NewOption("Cambridge C1 Advanced", domain.TestCambridge),
}

var englishLevelOptions = []huh.Option[domain.EnglishLevel]{
	huh.NewOption("Competent English", domain.EnglishCompetent),
	huh.NewOption("Proficient English", domain.EnglishProficient),
	huh.NewOption("Superior English", domain.EnglishSuperior),
}

var qualificationOptions = []huh.Option[domain.Qualification]{
	huh.NewOption("Doctorate", domain.QualDoctorate),
	huh.NewOption("Masters degree", domain.QualMasters),
	huh.NewOption("Bachelor degree", domain.QualBachelors),
	huh.NewOption("Diploma", domain.QualDiploma),
	huh.NewOption("Trade certificate", domain.QualTrade),
	huh.NewOption("High school", domain.QualHighSchool),
	huh.NewOption("None of the above", domain.QualNone),
}

var overseasOptions = []huh.Option[domain.OverseasExperience]{
	huh.NewOption("Less than 1 year", domain.OverseasUnder1),
	huh.NewOption("1-3 years", domain.Overseas1to3),
	huh.NewOption("3-5 years", domain.Overseas3to5),
	huh.NewOption("5-8 years", domain.Overseas5to8),
	huh.NewOption("8 or more years", domain.Overseas8Plus),
}

var australianOptions = []huh.Option[domain.AustralianExperience]{
	huh.NewOption("Less than 1 year", domain.AustralianUnder1),
	huh.NewOption("1-3 years", domain.Australian1to3),
	huh.NewOption("3-5 years", domain.Australian3to5),
	huh.NewOption("5-8 years", domain.Australian5to8),
	huh.NewOption("8 or more years", domain.Australian8Plus),
}

var partnerOptions = []huh.Option[domain.PartnerSkills]{
	huh.NewOption("Single, or partner is an Australian citizen/PR", domain.PartnerSingle),
	huh.NewOption("Partner has competent English and skills", domain.PartnerSkilled),
	huh.NewOption("Partner has competent English only", domain.PartnerCompetentEnglish),
	huh.NewOption("Partner has neither", domain.PartnerNotSkilled),
}

var yesNoOptions = []huh.Option[domain.YesNo]{
	huh.NewOption("No", domain.No),
	huh.NewOption("Yes", domain.Yes),
}

var proficiencyOptions = []huh.Option[domain.ProficiencyLevel]{
	huh.NewOption("Native speaker", domain.ProficiencyNative),
	huh.NewOption("Proficient", domain.ProficiencyProficient),
	huh.NewOption("Competent", domain.ProficiencyCompetent),
	huh.NewOption("Moderate", domain.ProficiencyModerate),
	huh.NewOption("Basic", domain.ProficiencyBasic),
}

var eligibilityQualificationOptions = []huh.Option[domain.Qualification]{
	huh.NewOption("Doctorate", domain.QualDoctorate),
	huh.NewOption("Masters degree", domain.QualMasters),
	huh.NewOption("Bachelor degree", domain.QualBachelors),
	huh.NewOption("Diploma", domain.QualDiploma),
	huh.NewOption("Trade qualification", domain.QualTrade),
	huh.NewOption("High school", domain.QualHighSchool),
}

var maritalOptions = []huh.Option[domain.MaritalStatus]{
	huh.NewOption("Single", domain.MaritalSingle),
	huh.NewOption("Married / de facto", domain.MaritalMarried),
	huh.NewOption("Separated / divorced", domain.MaritalSeparated),
	huh.NewOption("Widowed", domain.MaritalWidowed),
}

// pointsForm collects every points-test answer into a.
func pointsForm(a *domain.PointsAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.AgeBand]().Title("Age").Options(ageBandOptions...).Value(&a.Age),
			huh.NewSelect[domain.EnglishTest]().Title("English test").Options(englishTestOptions...).Value(&a.EnglishTest),
			huh.NewSelect[domain.EnglishLevel]().Title("English level").
				DescriptionFunc(func() string { return scoring.EnglishThresholds(a.EnglishTest) }, &a.EnglishTest).
				Options(englishLevelOptions...).Value(&a.EnglishLevel),
			huh.NewSelect[domain.Qualification]().Title("Highest qualification").Options(qualificationOptions...).Value(&a.Qualification),
		),
		huh.NewGroup(
			huh.NewSelect[domain.OverseasExperience]().Title("Skilled employment outside Australia").Options(overseasOptions...).Value(&a.Experience),
			huh.NewSelect[domain.AustralianExperience]().Title("Skilled employment in Australia").Options(australianOptions...).Value(&a.AustralianExperience),
			huh.NewSelect[domain.PartnerSkills]().Title("Partner skills").Options(partnerOptions...).Value(&a.PartnerSkills),
			huh.NewSelect[domain.YesNo]().Title("Specialist education (STEM masters or doctorate by research)").Options(yesNoOptions...).Value(&a.SpecialistEducation),
			huh.NewSelect[domain.YesNo]().Title("Completed an Australian Professional Year").Options(yesNoOptions...).Value(&a.ProfessionalYear),
		),
	).WithTheme(ozpathHuhTheme()).WithShowHelp(false)
}

// eligibilityFields holds the questionnaire's free-text inputs before they
// are parsed into EligibilityAnswers.
type eligibilityFields struct {
	age, experience, partnerAge, children string
}

// eligibilityForm is the three-step questionnaire. The partner questions
// only show for married applicants.
func eligibilityForm(a *domain.EligibilityAnswers, f *eligibilityFields) *huh.Form {
	occupations := huh.NewOptions(domain.InDemandOccupations...)
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Age").Placeholder("30").Value(&f.age).Validate(validatePositiveInt),
			huh.NewSelect[domain.ProficiencyLevel]().Title("English level").Options(proficiencyOptions...).Value(&a.EnglishLevel),
		).Title("Step 1 of 3: About you"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Occupation").Options(occupations...).Value(&a.Occupation),
			huh.NewInput().Title("Years of experience").Placeholder("5").Value(&f.experience).Validate(validateWholeNumber),
			huh.NewSelect[domain.Qualification]().Title("Highest qualification").Options(eligibilityQualificationOptions...).Value(&a.Qualification),
		).Title("Step 2 of 3: Work and education"),
		huh.NewGroup(
			huh.NewSelect[domain.MaritalStatus]().Title("Marital status").Options(maritalOptions...).Value(&a.MaritalStatus),
			huh.NewInput().Title("Number of children").Placeholder("0").Value(&f.children).Validate(validateOptionalInt),
			huh.NewInput().Title("Children's ages (comma separated)").Value(&a.ChildrenAges),
		).Title("Step 3 of 3: Family"),
		huh.NewGroup(
			huh.NewInput().Title("Partner's age").Value(&f.partnerAge).Validate(validateOptionalInt),
			huh.NewSelect[domain.ProficiencyLevel]().Title("Partner's English level").Options(proficiencyOptions...).Value(&a.PartnerEnglishLevel),
			huh.NewSelect[string]().Title("Partner's occupation").Options(occupations...).Value(&a.PartnerOccupation),
		).Title("Partner details").WithHideFunc(func() bool { return a.MaritalStatus != domain.MaritalMarried }),
	).WithTheme(ozpathHuhTheme()).WithShowHelp(false)
}

// apply parses the free-text fields into a. Blank optional fields stay zero.
func (f eligibilityFields) apply(a *domain.EligibilityAnswers) {
	a.Age = atoiOrZero(f.age)
	a.YearsExperience = domain.YearsUnanswered
	if n, err := strconv.Atoi(strings.TrimSpace(f.experience)); err == nil && n >= 0 {
		a.YearsExperience = n
	}
	a.PartnerAge = atoiOrZero(f.partnerAge)
	a.NumberOfChildren = atoiOrZero(f.children)
}

func registerForm(in *service.RegisterInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Full name").Value(&in.Name),
			huh.NewInput().Title("Email").Value(&in.Email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&in.Password),
			huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&in.ConfirmPassword),
		),
	).WithTheme(ozpathHuhTheme()).WithShowHelp(false)
}

func loginForm(email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Email").Value(email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password),
		),
	).WithTheme(ozpathHuhTheme()).WithShowHelp(false)
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a whole number above zero")
	}
	return nil
}

// validateWholeNumber requires an answer of zero or more.
func validateWholeNumber(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("enter a whole number, 0 or more")
	}
	return nil
}

func validateOptionalInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
