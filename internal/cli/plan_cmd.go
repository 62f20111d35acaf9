package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ozpath/internal/cli/formatter"
	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/alexanderramin/ozpath/internal/service"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Track your migration action plan",
		Long:  "Your personal checklist, saved per account. Requires `ozpath account login`.",
	}

	cmd.AddCommand(
		newPlanListCmd(app),
		newPlanToggleCmd(app),
		newPlanProgressCmd(app),
	)

	return cmd
}

// currentEmail resolves the logged-in account's email.
func currentEmail(ctx context.Context, app *App) (string, error) {
	u, err := app.Auth.Current(ctx)
	if err != nil {
		return "", friendly(err)
	}
	return u.Email, nil
}

func newPlanListCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			email, err := currentEmail(ctx, app)
			if err != nil {
				return err
			}

			all, err := app.Plan.List(ctx, email, "")
			if err != nil {
				return friendly(err)
			}
			items := all
			if category != "" {
				items, err = app.Plan.List(ctx, email, domain.ActionCategory(category))
				if err != nil {
					return friendly(err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActionPlan(items, service.Progress(all)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter: documentation, application, preparation, settlement")

	return cmd
}

func newPlanToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark an item complete, or incomplete again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			email, err := currentEmail(ctx, app)
			if err != nil {
				return err
			}

			item, err := app.Plan.Toggle(ctx, email, args[0])
			if err != nil {
				return friendly(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActionItem(*item))
			return nil
		},
	}
}

func newPlanProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show overall completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			email, err := currentEmail(ctx, app)
			if err != nil {
				return err
			}

			items, err := app.Plan.List(ctx, email, "")
			if err != nil {
				return friendly(err)
			}
			pct := service.Progress(items)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.RenderProgress(pct, 20),
				formatter.Dim(fmt.Sprintf("(%d of %d complete)", completed(items), len(items))))
			return nil
		},
	}
}

func completed(items []domain.ActionItem) int {
	n := 0
	for _, it := range items {
		if it.Completed {
			n++
		}
	}
	return n
}
