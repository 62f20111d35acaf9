package cli

import (
	"fmt"

	"github.com/alexanderramin/ozpath/internal/cli/formatter"
	"github.com/alexanderramin/ozpath/internal/service"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Register, log in and manage your local profile",
	}

	cmd.AddCommand(
		newAccountRegisterCmd(app),
		newAccountLoginCmd(app),
		newAccountLogoutCmd(app),
		newAccountWhoamiCmd(app),
	)

	return cmd
}

func newAccountRegisterCmd(app *App) *cobra.Command {
	var in service.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a local account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Email == "" && app.interactive() {
				if err := registerForm(&in).Run(); err != nil {
					return err
				}
			}
			if in.ConfirmPassword == "" && !cmd.Flags().Changed("confirm") {
				in.ConfirmPassword = in.Password
			}

			u, err := app.Auth.Register(cmd.Context(), in)
			if err != nil {
				return friendly(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Welcome, %s. You are now logged in.\n",
				formatter.StylePass.Render("✔"), formatter.Bold(u.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&in.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "Password (at least 6 characters)")
	cmd.Flags().StringVar(&in.ConfirmPassword, "confirm", "", "Repeat the password (defaults to --password)")

	return cmd
}

func newAccountLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to an existing local account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (email == "" || password == "") && app.interactive() {
				if err := loginForm(&email, &password).Run(); err != nil {
					return err
				}
			}

			u, err := app.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return friendly(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Logged in as %s.\n",
				formatter.StylePass.Render("✔"), formatter.Bold(u.Email))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")

	return cmd
}

func newAccountLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the current account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newAccountWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Auth.Current(cmd.Context())
			if err != nil {
				return friendly(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(*u, app.now()))
			return nil
		},
	}
}
