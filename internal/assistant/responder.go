package assistant

import "strings"

// rule matches when the lowercased input contains every word in allOf
// and, if anyOf is set, at least one word in anyOf.
type rule struct {
	name   string
	allOf  []string
	anyOf  []string
	answer string
}

func (r rule) matches(input string) bool {
	for _, w := range r.allOf {
		if !strings.Contains(input, w) {
			return false
		}
	}
	if len(r.anyOf) == 0 {
		return true
	}
	for _, w := range r.anyOf {
		if strings.Contains(input, w) {
			return true
		}
	}
	return false
}

// Order matters: the first matching rule answers.
var localRules = []rule{
	{name: "visa-types", allOf: []string{"visa"}, anyOf: []string{"type", "kind"}, answer: visaTypesAnswer},
	{name: "points", anyOf: []string{"point", "score"}, answer: pointsAnswer},
	{name: "english", anyOf: []string{"english", "language"}, answer: englishAnswer},
	{name: "pte", anyOf: []string{"pte", "pearson"}, answer: pteAnswer},
	{name: "ielts", anyOf: []string{"ielts"}, answer: ieltsAnswer},
	{name: "skills-assessment", allOf: []string{"skill", "assessment"}, answer: skillsAssessmentAnswer},
	{name: "occupation-lists", allOf: []string{"occupation"}, anyOf: []string{"list", "mltssl", "stsol"}, answer: occupationListsAnswer},
	{name: "mltssl", anyOf: []string{"mltssl"}, answer: mltsslAnswer},
	{name: "stsol", anyOf: []string{"stsol", "short term"}, answer: stsolAnswer},
	{name: "anzsco", anyOf: []string{"anzsco"}, answer: anzscoAnswer},
	{name: "costs", anyOf: []string{"cost", "fee", "price", "expensive"}, answer: costsAnswer},
	{name: "processing-times", anyOf: []string{"time", "long", "processing"}, answer: processingTimesAnswer},
	{name: "family", anyOf: []string{"family", "partner", "child"}, answer: familyAnswer},
	{name: "regional", anyOf: []string{"regional", "491"}, answer: regionalAnswer},
	{name: "thanks", anyOf: []string{"thank"}, answer: thanksAnswer},
	{name: "community", anyOf: []string{"facebook", "group", "community"}, answer: communityAnswer},
}

// FallbackRule names the answer given when nothing matches.
const FallbackRule = "fallback"

// LocalResponder answers from a fixed keyword table without any network
// access.
type LocalResponder struct {
	rules []rule
}

func NewLocalResponder() *LocalResponder {
	return &LocalResponder{rules: localRules}
}

// Respond returns the canned answer for text.
func (l *LocalResponder) Respond(text string) string {
	_, answer := l.match(text)
	return answer
}

// Topic returns the name of the rule that answers text, or FallbackRule.
func (l *LocalResponder) Topic(text string) string {
	name, _ := l.match(text)
	return name
}

func (l *LocalResponder) match(text string) (string, string) {
	input := strings.ToLower(text)
	for _, r := range l.rules {
		if r.matches(input) {
			return r.name, r.answer
		}
	}
	return FallbackRule, fallbackAnswer
}
