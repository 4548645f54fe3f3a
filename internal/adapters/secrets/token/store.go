package token

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/jobboard-cli/internal/domain"
	"github.com/bnema/jobboard-cli/internal/ports"
)

const DefaultKey = "session/token"

type Store struct {
	secrets ports.SecretStore
	key     string
}

var _ ports.TokenStore = (*Store)(nil)

func NewStore(secrets ports.SecretStore) *Store {
	return &Store{secrets: secrets, key: DefaultKey}
}

func (s *Store) Set(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("session token is empty")
	}
	if err := s.secrets.Put(ctx, s.key, token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context) (string, error) {
	token, err := s.secrets.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("load session token: %w", err)
	}
	return strings.TrimSpace(token), nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.secrets.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}
