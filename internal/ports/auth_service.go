package ports

import (
	"context"

	"github.com/bnema/jobboard-cli/internal/domain"
)

type AuthResult struct {
	Actor domain.Actor
	Token string
}

type AuthService interface {
	Login(ctx context.Context, creds domain.Credentials) (AuthResult, error)
	Register(ctx context.Context, registration domain.Registration) (AuthResult, error)
}
