package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the immigration assistant",
		Long: `Open an interactive chat. Answers come from the configured AI service
when OZPATH_AI_API_KEY is set, and from built-in guidance otherwise.
The conversation is not saved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("chat needs an interactive terminal; use `ozpath ask` instead")
			}
			p := tea.NewProgram(
				newChatView(cmd.Context(), app.Assistant),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			_, err := p.Run()
			return err
		},
	}
}
