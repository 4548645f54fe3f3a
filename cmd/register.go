package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bnema/jobboard-cli/internal/application"
	"github.com/bnema/jobboard-cli/internal/domain"
)

func newRegisterCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a candidate or company account and sign in",
	}

	cmd.AddCommand(newRegisterUserCmd(app), newRegisterCompanyCmd(app))

	return cmd
}

func newRegisterUserCmd(app *app) *cobra.Command {
	var (
		registration domain.UserRegistration
		password     passwordFlags
		confirm      string
	)

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Register a candidate account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := password.read(cmd)
			if err != nil {
				return err
			}
			registration.Password = secret
			registration.ConfirmPassword = confirmOrSame(confirm, secret, password.stdin)

			return runRegister(cmd, app, registration)
		},
	}

	cmd.Flags().StringVar(&registration.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&registration.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&registration.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "Password confirmation")
	password.register(cmd)
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newRegisterCompanyCmd(app *app) *cobra.Command {
	var (
		registration domain.CompanyRegistration
		password     passwordFlags
		confirm      string
	)

	cmd := &cobra.Command{
		Use:   "company",
		Short: "Register a company account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := password.read(cmd)
			if err != nil {
				return err
			}
			registration.Password = secret
			registration.ConfirmPassword = confirmOrSame(confirm, secret, password.stdin)

			return runRegister(cmd, app, registration)
		},
	}

	cmd.Flags().StringVar(&registration.CompanyName, "name", "", "Company name")
	cmd.Flags().StringVar(&registration.Industry, "industry", "", "Industry")
	cmd.Flags().StringVar(&registration.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "Password confirmation")
	password.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("industry")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func confirmOrSame(confirm, password string, fromStdin bool) string {
	if fromStdin && confirm == "" {
		return password
	}
	return confirm
}

func runRegister(cmd *cobra.Command, app *app, registration domain.Registration) error {
	if err := restoreSession(cmd, app); err != nil {
		return err
	}

	result, err := awaitRemote(cmd.Context(), cmd.ErrOrStderr(), "Creating account...", func(ctx context.Context) (application.LoginResult, error) {
		return app.sessions.Register(ctx, registration)
	})
	if err != nil {
		return loginError(err)
	}

	return writeLoginResult(cmd, result)
}
