package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/ozpath/internal/cli/formatter"
	"github.com/alexanderramin/ozpath/internal/llm"
	"github.com/spf13/cobra"
)

func newAICmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Manage the AI chat connection",
	}
	cmd.AddCommand(newAITestCmd(app))
	return cmd
}

func newAITestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Check that the configured API key and endpoint work",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.LLM == nil {
				return fmt.Errorf("set OZPATH_AI_API_KEY to enable the AI assistant: %w", llm.ErrMissingAPIKey)
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Contacting AI service...")
			}
			err := app.LLM.TestConnection(cmd.Context())
			stop()

			if err != nil {
				var status *llm.StatusError
				if errors.As(err, &status) {
					return fmt.Errorf("connection failed (HTTP %d): %s", status.StatusCode, status.Message)
				}
				return fmt.Errorf("connection failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Connection successful.\n", formatter.StylePass.Render("✔"))
			return nil
		},
	}
}
