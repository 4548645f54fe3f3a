package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/jobboard-cli/internal/application"
	"github.com/bnema/jobboard-cli/internal/domain"
)

type passwordFlags struct {
	password string
	stdin    bool
}

func (f *passwordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.password, "password", "", "Password")
	cmd.Flags().BoolVar(&f.stdin, "password-stdin", false, "Read the password from stdin")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
}

func (f passwordFlags) read(cmd *cobra.Command) (string, error) {
	if !f.stdin {
		return f.password, nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLoginCmd(app *app) *cobra.Command {
	var (
		email     string
		actorKind string
		password  passwordFlags
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as a candidate or a company",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := domain.ParseActorKind(actorKind)
			if err != nil {
				return err
			}
			secret, err := password.read(cmd)
			if err != nil {
				return err
			}
			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			creds := domain.NewCredentials(email, secret, kind)
			result, err := awaitRemote(cmd.Context(), cmd.ErrOrStderr(), "Signing in...", func(ctx context.Context) (application.LoginResult, error) {
				return app.sessions.Login(ctx, creds)
			})
			if err != nil {
				return loginError(err)
			}

			return writeLoginResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&actorKind, "as", string(domain.ActorKindUser), "Account kind (user|company)")
	password.register(cmd)
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sessions.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("logout: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return err
		},
	}
}

func restoreSession(cmd *cobra.Command, app *app) error {
	if _, err := app.sessions.Restore(cmd.Context()); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	return nil
}

func loginError(err error) error {
	switch {
	case errors.Is(err, domain.ErrAlreadyAuthenticated):
		return fmt.Errorf("%w: run `jb logout` first", err)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fmt.Errorf("login failed: %w", err)
	default:
		return err
	}
}

func writeLoginResult(cmd *cobra.Command, result application.LoginResult) error {
	actor := result.Session.Actor
	out := cmd.OutOrStdout()

	if _, err := fmt.Fprintf(out, "Logged in as %s (%s)\n", actor.DisplayName(), actor.Kind()); err != nil {
		return err
	}
	if result.Source == application.SourceFallback {
		_, err := fmt.Fprintln(out, "Job board API unreachable: signed in offline against the demo directory")
		return err
	}
	return nil
}
