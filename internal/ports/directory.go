package ports

import (
	"context"

	"github.com/bnema/jobboard-cli/internal/domain"
)

type Directory interface {
	// Authenticate returns domain.ErrInvalidCredentials when no actor of the
	// requested kind matches.
	Authenticate(ctx context.Context, creds domain.Credentials) (domain.Actor, error)
	Register(ctx context.Context, registration domain.Registration) (domain.Actor, error)
}
