package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	boardrender "github.com/bnema/jobboard-cli/internal/adapters/render/board"
	"github.com/bnema/jobboard-cli/internal/application"
)

type statusOutput struct {
	State          string     `json:"state"`
	ActorKind      string     `json:"actorKind,omitempty"`
	ActorID        string     `json:"actorId,omitempty"`
	Name           string     `json:"name,omitempty"`
	Email          string     `json:"email,omitempty"`
	HasToken       bool       `json:"hasToken"`
	OfflineToken   bool       `json:"offlineToken"`
	TokenVerified  bool       `json:"tokenVerified"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt,omitempty"`
}

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			status, err := app.sessions.Status(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, toStatusOutput(status))
			}

			rendered, err := boardrender.RenderSession(status, app.renderOptions())
			if err != nil {
				return fmt.Errorf("render session: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}

func toStatusOutput(status application.SessionStatus) statusOutput {
	actor := status.Session.Actor
	output := statusOutput{
		State:         string(status.Session.State()),
		ActorKind:     string(actor.Kind()),
		ActorID:       actor.ID(),
		Name:          actor.DisplayName(),
		Email:         actor.Email(),
		HasToken:      status.HasToken,
		OfflineToken:  status.OfflineToken,
		TokenVerified: status.TokenVerified,
	}
	if !status.TokenExpiresAt.IsZero() {
		expiresAt := status.TokenExpiresAt
		output.TokenExpiresAt = &expiresAt
	}
	return output
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
