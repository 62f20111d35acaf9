package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/ozpath/internal/assistant"
	"github.com/alexanderramin/ozpath/internal/kv"
	"github.com/alexanderramin/ozpath/internal/llm"
	"github.com/alexanderramin/ozpath/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all services used by CLI commands.
type App struct {
	Auth      service.AuthService
	Plan      service.ActionPlanService
	Assistant *assistant.Provider

	// LLM is nil when no API key is configured.
	LLM   llm.ChatClient
	Store kv.Store

	// IsInteractive reports whether forms may be shown. Nil means never.
	IsInteractive func() bool
	Now           func() time.Time

	aiConfig   llm.Config
	aiObserver llm.Observer
}

// UseAI wires the assistant to a remote client for cfg. Without an API key
// every answer comes from the local responder.
func (a *App) UseAI(cfg llm.Config, observer llm.Observer) {
	a.aiConfig, a.aiObserver = cfg, observer
	a.LLM = nil
	if cfg.HasAPIKey() {
		a.LLM = llm.NewOpenAIClient(cfg, observer)
	}
	a.Assistant = assistant.NewProvider(a.LLM, nil)
}

// applyAISettings rebuilds the client when any --ai-* flag is given.
func (a *App) applyAISettings(s llm.Settings) {
	base := a.aiConfig
	if base.Endpoint == "" {
		base = llm.DefaultConfig()
	}
	a.UseAI(base.Apply(s), a.aiObserver)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "ozpath" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var (
		ai          llm.Settings
		temperature float64
	)

	root := &cobra.Command{
		Use:           "ozpath",
		Short:         "Plan a move to Australia: points, eligibility, visas and an action plan",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !anyFlagChanged(cmd.Flags(), "ai-key", "ai-temperature", "ai-max-tokens") {
				return nil
			}
			if cmd.Flags().Changed("ai-temperature") {
				if temperature < 0 || temperature > 2 {
					return fmt.Errorf("--ai-temperature must be between 0 and 2")
				}
				ai.Temperature = &temperature
			}
			if ai.MaxTokens < 0 {
				return fmt.Errorf("--ai-max-tokens must be positive")
			}
			app.applyAISettings(ai)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&ai.APIKey, "ai-key", "", "API key for this run (overrides OZPATH_AI_API_KEY)")
	pf.Float64Var(&temperature, "ai-temperature", 0, "Sampling temperature for this run")
	pf.IntVar(&ai.MaxTokens, "ai-max-tokens", 0, "Maximum reply tokens for this run")

	root.AddCommand(
		newPointsCmd(app),
		newEligibilityCmd(app),
		newVisasCmd(),
		newResourcesCmd(),
		newAccountCmd(app),
		newPlanCmd(app),
		newAskCmd(app),
		newChatCmd(app),
		newAICmd(app),
		newStorageCmd(app),
	)

	return root
}

// displayError swaps a service error's text for the message shown on forms
// while keeping it matchable with errors.Is.
type displayError struct {
	msg string
	err error
}

func (e *displayError) Error() string { return e.msg }
func (e *displayError) Unwrap() error { return e.err }

func friendly(err error) error {
	if err == nil {
		return nil
	}
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return err
	}
	msg := service.UserMessage(err)
	if msg == err.Error() {
		return err
	}
	return &displayError{msg: msg, err: err}
}
