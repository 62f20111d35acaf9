package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ozpath/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the immigration assistant a single question",
		Example: `  ozpath ask "How many points do I need?"
  ozpath ask what is the MLTSSL`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				return fmt.Errorf("question is empty")
			}

			stop := func() {}
			if app.LLM != nil && app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Thinking...")
			}
			resp := app.Assistant.GetResponse(cmd.Context(), question)
			stop()

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReply(resp))
			return nil
		},
	}
}
