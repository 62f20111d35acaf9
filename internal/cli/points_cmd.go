package cli

import (
	"fmt"

	"github.com/alexanderramin/ozpath/internal/cli/formatter"
	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/alexanderramin/ozpath/internal/scoring"
	"github.com/spf13/cobra"
)

var pointsFlagNames = []string{
	"age", "english-test", "english", "qualification", "overseas",
	"australian", "partner", "specialist", "professional-year",
}

func newPointsCmd(app *App) *cobra.Command {
	var (
		a      domain.PointsAnswers
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "points",
		Short: "Calculate your skilled migration points score",
		Long: `Score the General Skilled Migration points test. Run without flags in
a terminal to answer the questions interactively. Unanswered questions
score zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !anyFlagChanged(cmd.Flags(), pointsFlagNames...) && app.interactive() {
				if err := pointsForm(&a).Run(); err != nil {
					return err
				}
			}

			breakdown := scoring.CalculatePoints(a)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), breakdown)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatPoints(breakdown, scoring.PassMark, scoring.MaxPoints()))
			fmt.Fprintln(out)
			if a.EnglishTest != "" {
				fmt.Fprintln(out, formatter.Dim(scoring.EnglishThresholds(a.EnglishTest)))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar((*string)(&a.Age), "age", "", "Age band: 18-24, 25-32, 33-39, 40-44, 45-49")
	f.StringVar((*string)(&a.EnglishTest), "english-test", "", "English test: ielts, pte, toefl, cambridge")
	f.StringVar((*string)(&a.EnglishLevel), "english", "", "English level: competent, proficient, superior")
	f.StringVar((*string)(&a.Qualification), "qualification", "", "Qualification: doctorate, masters, bachelors, diploma, trade")
	f.StringVar((*string)(&a.Experience), "overseas", "", "Skilled employment outside Australia: 0, 1-3, 3-5, 5-8, 8+")
	f.StringVar((*string)(&a.AustralianExperience), "australian", "", "Skilled employment in Australia: 0, 1, 3, 5, 8+")
	f.StringVar((*string)(&a.PartnerSkills), "partner", "", "Partner skills: no-partner, skilled, competent-english, none")
	f.StringVar((*string)(&a.SpecialistEducation), "specialist", "", "Specialist education: yes, no")
	f.StringVar((*string)(&a.ProfessionalYear), "professional-year", "", "Professional Year in Australia: yes, no")
	f.BoolVar(&asJSON, "json", false, "Print the breakdown as JSON")

	return cmd
}
