package ports

import (
	"context"
	"time"

	"github.com/bnema/jobboard-cli/internal/domain"
)

type TokenStore interface {
	Set(ctx context.Context, token string) error
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

type TokenIssuer interface {
	Issue(actor domain.Actor) (string, error)
}

type TokenInfo struct {
	Subject   string
	ActorKind domain.ActorKind
	Offline   bool
	Verified  bool
	ExpiresAt time.Time
}

type TokenInspector interface {
	Inspect(token string) (TokenInfo, error)
}
