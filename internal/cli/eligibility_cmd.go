package cli

import (
	"fmt"

	"github.com/alexanderramin/ozpath/internal/catalog"
	"github.com/alexanderramin/ozpath/internal/cli/formatter"
	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/alexanderramin/ozpath/internal/scoring"
	"github.com/spf13/cobra"
)

var eligibilityFlagNames = []string{
	"age", "english", "occupation", "experience", "qualification", "marital",
	"partner-age", "partner-english", "partner-occupation", "children", "children-ages",
}

func newEligibilityCmd(app *App) *cobra.Command {
	var (
		a      domain.EligibilityAnswers
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "eligibility",
		Short: "Answer the three-step eligibility questionnaire",
		Long: `Get an indicative eligibility score and visa suggestions. Run without
flags in a terminal to answer the questions interactively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !anyFlagChanged(cmd.Flags(), eligibilityFlagNames...) && app.interactive() {
				var fields eligibilityFields
				if err := eligibilityForm(&a, &fields).Run(); err != nil {
					return err
				}
				fields.apply(&a)
			} else if !cmd.Flags().Changed("experience") {
				a.YearsExperience = domain.YearsUnanswered
			}

			for step := 1; step <= scoring.EligibilityStepCount; step++ {
				if err := scoring.ValidateEligibilityStep(step, a); err != nil {
					return err
				}
			}

			res := scoring.Evaluate(a)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEligibility(res, catalog.TierVisas(res.Tier)))
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&a.Age, "age", 0, "Your age in years")
	f.StringVar((*string)(&a.EnglishLevel), "english", "", "English level: native, proficient, competent, moderate, basic")
	f.StringVar(&a.Occupation, "occupation", "", "Your occupation")
	f.IntVar(&a.YearsExperience, "experience", 0, "Years of work experience")
	f.StringVar((*string)(&a.Qualification), "qualification", "", "Qualification: doctorate, masters, bachelors, diploma, trade, highschool")
	f.StringVar((*string)(&a.MaritalStatus), "marital", "", "Marital status: single, married, separated, widowed")
	f.IntVar(&a.PartnerAge, "partner-age", 0, "Partner's age")
	f.StringVar((*string)(&a.PartnerEnglishLevel), "partner-english", "", "Partner's English level")
	f.StringVar(&a.PartnerOccupation, "partner-occupation", "", "Partner's occupation")
	f.IntVar(&a.NumberOfChildren, "children", 0, "Number of children")
	f.StringVar(&a.ChildrenAges, "children-ages", "", "Children's ages, comma separated")
	f.BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}
