package service

import "github.com/alexanderramin/ozpath/internal/domain"

// DefaultActionItems is the checklist every account starts with.
func DefaultActionItems() []domain.ActionItem {
	return []domain.ActionItem{
		{
			ID:          "1",
			Title:       "Research visa options",
			Description: "Explore different visa subclasses (189, 190, 491) and determine which one suits your situation best.",
			Category:    domain.CategoryPreparation,
			Timeframe:   domain.TimeframeImmediate,
		},
		{
			ID:          "2",
			Title:       "Take English language test",
			Description: "Book and complete an approved English language test (IELTS, PTE, TOEFL, etc.) to demonstrate your proficiency.",
			Category:    domain.CategoryPreparation,
			Timeframe:   domain.TimeframeImmediate,
		},
		{
			ID:          "3",
			Title:       "Skills assessment",
			Description: "Apply for a skills assessment with the relevant assessing authority for your occupation.",
			Category:    domain.CategoryPreparation,
			Timeframe:   domain.TimeframeShortTerm,
		},
		{
			ID:          "4",
			Title:       "Create EOI in SkillSelect",
			Description: "Submit an Expression of Interest (EOI) through the SkillSelect system.",
			Category:    domain.CategoryApplication,
			Timeframe:   domain.TimeframeMediumTerm,
		},
		{
			ID:          "5",
			Title:       "Gather documentation",
			Description: "Collect all required documents including passport, birth certificate, marriage certificate, qualification certificates, etc.",
			Category:    domain.CategoryDocumentation,
			Timeframe:   domain.TimeframeShortTerm,
		},
		{
			ID:          "6",
			Title:       "Police clearance certificates",
			Description: "Obtain police clearance certificates from all countries where you have lived for 12 months or more in the past 10 years.",
			Category:    domain.CategoryDocumentation,
			Timeframe:   domain.TimeframeMediumTerm,
		},
		{
			ID:          "7",
			Title:       "Medical examination",
			Description: "Complete a medical examination with an approved panel physician.",
			Category:    domain.CategoryDocumentation,
			Timeframe:   domain.TimeframeMediumTerm,
		},
		{
			ID:          "8",
			Title:       "Visa application",
			Description: "Submit your visa application after receiving an invitation to apply.",
			Category:    domain.CategoryApplication,
			Timeframe:   domain.TimeframeMediumTerm,
		},
		{
			ID:          "9",
			Title:       "Research housing options",
			Description: "Research housing options in your intended destination in Australia.",
			Category:    domain.CategorySettlement,
			Timeframe:   domain.TimeframeLongTerm,
		},
		{
			ID:          "10",
			Title:       "Job search preparation",
			Description: "Update your resume/CV to Australian format and start researching job opportunities.",
			Category:    domain.CategorySettlement,
			Timeframe:   domain.TimeframeLongTerm,
		},
		{
			ID:          "11",
			Title:       "Banking setup",
			Description: "Research Australian banks and prepare to open an account.",
			Category:    domain.CategorySettlement,
			Timeframe:   domain.TimeframeLongTerm,
		},
		{
			ID:          "12",
			Title:       "Healthcare information",
			Description: "Research Medicare and private health insurance options in Australia.",
			Category:    domain.CategorySettlement,
			Timeframe:   domain.TimeframeLongTerm,
		},
	}
}
