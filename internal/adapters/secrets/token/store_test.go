package token

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	filestore "github.com/bnema/jobboard-cli/internal/adapters/secrets/file"
	"github.com/bnema/jobboard-cli/internal/ports/mocks"
)

func TestStoreRoundTripOnFileBackend(t *testing.T) {
	t.Parallel()

	store := NewStore(filestore.NewStore(t.TempDir()))
	ctx := context.Background()

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Set(ctx, "header.payload.signature"))
	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "header.payload.signature", token)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestStoreRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	store := NewStore(mocks.NewMockSecretStore(t))

	assert.ErrorContains(t, store.Set(context.Background(), "  "), "session token is empty")
}

func TestStoreSurfacesBackendErrors(t *testing.T) {
	t.Parallel()

	secrets := mocks.NewMockSecretStore(t)
	store := NewStore(secrets)
	backendErr := errors.New("permission denied")

	secrets.EXPECT().Get(mock.Anything, DefaultKey).Return("", backendErr).Once()
	secrets.EXPECT().Delete(mock.Anything, DefaultKey).Return(backendErr).Once()

	_, err := store.Get(context.Background())
	require.ErrorIs(t, err, backendErr)
	require.ErrorIs(t, store.Clear(context.Background()), backendErr)
}
