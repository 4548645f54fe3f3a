package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jobboard-cli/internal/domain"
)

func TestStorePutUsesPassInsertBelowPrefix(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		prefix: "jobboard",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, []string{"insert", "-m", "-f", "jobboard/session/token"}, args)
			assert.Equal(t, "header.payload.signature\n", input)
			return "", "", nil
		},
	}

	err := store.Put(context.Background(), "session/token", "header.payload.signature")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestStoreGetUsesPassShowAndTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "session/token"}, args)
			assert.Empty(t, input)
			return "token-value\r\n", "", nil
		},
	}

	value, err := store.Get(context.Background(), "session/token")
	require.NoError(t, err)
	assert.Equal(t, "token-value", value)
}

func TestStoreGetMissingEntryIsNotFound(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: "jobboard",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: jobboard/session/token is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Get(context.Background(), "session/token")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreDeleteMissingEntryIsNoop(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"rm", "-f", "session/token"}, args)
			return "", "Error: session/token is not in the password store.", errors.New("exit status 1")
		},
	}

	require.NoError(t, store.Delete(context.Background(), "session/token"))
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "gpg: decryption failed: No secret key", errors.New("exit status 2")
		},
	}

	_, err := store.Get(context.Background(), "session/token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, "No secret key")
}

func TestStoreUnavailableBinary(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "", ErrUnavailable
		},
	}

	err := store.Put(context.Background(), "session/token", "v")
	require.ErrorIs(t, err, ErrUnavailable)
}
