package catalog

import "github.com/alexanderramin/ozpath/internal/domain"

const (
	residencePermanent = "Permanent Residence"
	residenceTemporary = "Temporary Residence"
	residenceTwoToFour = "Temporary Residence (2-4 years)"
)

var visas = []domain.Visa{
	{
		Subclass:  "189",
		Name:      "Skilled Independent Visa (subclass 189)",
		Stream:    domain.StreamSkilled,
		Residence: residencePermanent,
		Summary:   "This points-based visa allows skilled workers to live and work permanently in Australia without needing a sponsor.",
		Requirements: []string{
			"Invitation to apply after submitting an Expression of Interest (EOI)",
			"Under 45 years of age",
			"Competent English (IELTS 6 or equivalent)",
			"Positive skills assessment in an occupation on the skilled occupation list",
			"Score at least 65 points on the points test",
		},
	},
	{
		Subclass:  "190",
		Name:      "Skilled Nominated Visa (subclass 190)",
		Stream:    domain.StreamSkilled,
		Residence: residencePermanent,
		Summary:   "Similar to the 189 visa, but requires nomination by an Australian state or territory government.",
		Requirements: []string{
			"Nomination by a state or territory government",
			"Under 45 years of age",
			"Competent English (IELTS 6 or equivalent)",
			"Positive skills assessment in an occupation on the relevant state's skilled occupation list",
			"Score at least 65 points on the points test",
		},
	},
	{
		Subclass:  "482",
		Name:      "Temporary Skill Shortage Visa (subclass 482)",
		Stream:    domain.StreamWork,
		Residence: residenceTwoToFour,
		Summary:   "Enables employers to address labor shortages by sponsoring skilled overseas workers when they cannot find an appropriately skilled Australian worker.",
		Requirements: []string{
			"Sponsorship by an approved business",
			"Occupation on the relevant skilled occupation list",
			"At least 2 years of relevant work experience",
			"English language proficiency",
		},
	},
	{
		Subclass:  "186",
		Name:      "Employer Nomination Scheme (subclass 186)",
		Stream:    domain.StreamWork,
		Residence: residencePermanent,
		Summary:   "For skilled workers who want to be sponsored by an Australian employer for a permanent skilled position.",
		Requirements: []string{
			"Nomination by an approved Australian employer",
			"Under 45 years of age (some exemptions apply)",
			"At least 3 years of relevant work experience",
			"Competent English (IELTS 6 or equivalent)",
			"Positive skills assessment for your occupation",
		},
	},
	{
		Subclass:  "820/801",
		Name:      "Partner Visa (subclasses 820 and 801)",
		Stream:    domain.StreamFamily,
		Residence: "Temporary to Permanent Residence",
		Summary:   "For partners (spouse or de facto) of Australian citizens, permanent residents, or eligible New Zealand citizens.",
		Requirements: []string{
			"Sponsorship by an eligible Australian partner",
			"Genuine and continuing relationship",
			"Meet health and character requirements",
		},
	},
	{
		Subclass:  "parent",
		Name:      "Parent Visa (various subclasses)",
		Stream:    domain.StreamFamily,
		Residence: residencePermanent,
		Summary:   "For parents of Australian citizens, permanent residents, or eligible New Zealand citizens.",
		Requirements: []string{
			"Sponsorship by your child who is an Australian citizen, permanent resident, or eligible New Zealand citizen",
			"Balance of family test (at least half of your children live permanently in Australia)",
			"Meet health and character requirements",
			"Assurance of Support (financial guarantee)",
		},
	},
	{
		Subclass:  "500",
		Name:      "Student Visa (subclass 500)",
		Stream:    domain.StreamStudent,
		Residence: residenceTemporary,
		Summary:   "For international students who have been accepted to study in Australia at a registered institution.",
		Requirements: []string{
			"Enrollment in a registered course of study",
			"Genuine temporary entrant requirement",
			"English language proficiency",
			"Financial capacity to support yourself during your stay",
			"Health insurance coverage",
		},
	},
	{
		Subclass:  "485",
		Name:      "Temporary Graduate Visa (subclass 485)",
		Stream:    domain.StreamStudent,
		Residence: residenceTwoToFour,
		Summary:   "For international students who have recently graduated from an Australian educational institution.",
		Requirements: []string{
			"Recent graduation from an Australian institution",
			"Under 50 years of age",
			"Competent English (IELTS 6 or equivalent)",
			"Meet health and character requirements",
		},
	},
	{
		Subclass:  "417",
		Name:      "Working Holiday Visa (subclass 417)",
		Stream:    domain.StreamWorkingHoliday,
		Residence: "Temporary Residence (up to 3 years with extensions)",
		Summary:   "For young adults from eligible countries, including the UK, who want to holiday and work in Australia.",
		Requirements: []string{
			"Age 18-30 (or 35 for some countries)",
			"Hold a passport from an eligible country (including the UK)",
			"Sufficient funds to support yourself (usually around AUD $5,000)",
			"Meet health and character requirements",
			"Have not previously held a Working Holiday visa (for first application)",
		},
	},
	{
		Subclass:  "417-extension",
		Name:      "Second and Third Working Holiday Visas",
		Stream:    domain.StreamWorkingHoliday,
		Residence: "Extensions to the initial visa",
		Summary:   "You may be eligible for a second or third Working Holiday visa if you complete specified work in regional Australia.",
		Requirements: []string{
			"Completed 3 months (88 days) of specified work in regional Australia during your first Working Holiday visa",
			"Specified work includes: plant and animal cultivation, fishing and pearling, tree farming and felling, mining, and construction",
			"For the third visa: Completed 6 months of specified work in regional Australia during your second Working Holiday visa",
		},
	},
}

var streams = []Stream{
	{
		ID:    domain.StreamSkilled,
		Title: "Skilled Migration Visas",
		Intro: "Australia's skilled migration program is designed to attract skilled workers who can contribute to the Australian economy.",
	},
	{
		ID:    domain.StreamWork,
		Title: "Work Visas",
		Intro: "These visas are designed for people who have been sponsored by an employer to work in Australia.",
	},
	{
		ID:    domain.StreamFamily,
		Title: "Family Visas",
		Intro: "These visas allow Australian citizens, permanent residents, or eligible New Zealand citizens to sponsor their family members to come to Australia.",
	},
	{
		ID:    domain.StreamStudent,
		Title: "Student Visas",
		Intro: "These visas allow international students to study in Australia at a registered institution.",
	},
	{
		ID:    domain.StreamWorkingHoliday,
		Title: "Working Holiday Visa",
		Intro: "This visa is designed for young adults who want to holiday and work in Australia for up to a year.",
	},
}

var tierSubclasses = map[domain.Tier][]string{
	domain.TierA: {"189", "190"},
	domain.TierB: {"186"},
	domain.TierC: {"482", "417", "500"},
}
