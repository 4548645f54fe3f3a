package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jobboard-cli/internal/domain"
	"github.com/bnema/jobboard-cli/internal/ports/mocks"
)

func TestIssueAndInspectOfflineToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(now)

	issuer, err := NewIssuer("test-secret", time.Hour, clock)
	require.NoError(t, err)

	actor := domain.UserActor(domain.User{ID: "u-1", Email: "a@b.com"})
	token, err := issuer.Issue(actor)
	require.NoError(t, err)

	info, err := issuer.Inspect(token)
	require.NoError(t, err)
	assert.True(t, info.Offline)
	assert.Equal(t, "u-1", info.Subject)
	assert.Equal(t, domain.ActorKindUser, info.ActorKind)
	assert.True(t, info.ExpiresAt.Equal(now.Add(time.Hour)))
	assert.True(t, info.Verified)

	claims, err := issuer.verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestIssueRejectsEmptyActor(t *testing.T) {
	t.Parallel()

	issuer, err := NewIssuer("", 0, nil)
	require.NoError(t, err)

	_, err = issuer.Issue(domain.Actor{})
	assert.ErrorContains(t, err, "actor is empty")
}

func TestInspectForeignToken(t *testing.T) {
	t.Parallel()

	expires := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "remote-user",
		ExpiresAt: jwt.NewNumericDate(expires),
	}).SignedString([]byte("server-secret"))
	require.NoError(t, err)

	issuer, err := NewIssuer("", 0, nil)
	require.NoError(t, err)

	info, err := issuer.Inspect(foreign)
	require.NoError(t, err)
	assert.False(t, info.Offline)
	assert.Equal(t, "remote-user", info.Subject)
	assert.True(t, info.ExpiresAt.Equal(expires))

	_, err = issuer.verify(foreign)
	assert.Error(t, err)
}

func TestInspectOpaqueToken(t *testing.T) {
	t.Parallel()

	issuer, err := NewIssuer("", 0, nil)
	require.NoError(t, err)

	_, err = issuer.Inspect("not-a-jwt")
	assert.ErrorContains(t, err, "decode token")

	_, err = issuer.Inspect("")
	assert.ErrorContains(t, err, "token string is empty")
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	issued := time.Now().Add(-2 * time.Hour)
	past := mocks.NewMockClock(t)
	past.EXPECT().Now().Return(issued).Once()

	issuer, err := NewIssuer("test-secret", time.Hour, past)
	require.NoError(t, err)

	token, err := issuer.Issue(domain.CompanyActor(domain.Company{ID: "c-1", Email: "jobs@acme.test"}))
	require.NoError(t, err)

	past.EXPECT().Now().Return(time.Now())

	_, err = issuer.verify(token)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestInspectVerifiesOfflineTokenWithConfiguredSecret(t *testing.T) {
	t.Parallel()

	actor := domain.UserActor(domain.User{ID: "u-1", Email: "a@b.com"})

	first, err := NewIssuer("shared-secret", time.Hour, nil)
	require.NoError(t, err)
	token, err := first.Issue(actor)
	require.NoError(t, err)

	tests := []struct {
		name         string
		secret       string
		wantVerified bool
	}{
		{name: "same secret in a later process", secret: "shared-secret", wantVerified: true},
		{name: "different secret", secret: "rotated-secret", wantVerified: false},
		{name: "no configured secret", secret: "", wantVerified: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer, err := NewIssuer(tt.secret, time.Hour, nil)
			require.NoError(t, err)

			info, err := issuer.Inspect(token)
			require.NoError(t, err)
			assert.True(t, info.Offline)
			assert.Equal(t, tt.wantVerified, info.Verified)
		})
	}
}

func TestInspectReportsExpiredOfflineTokenAsUnverified(t *testing.T) {
	t.Parallel()

	issued := time.Now().Add(-2 * time.Hour)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(issued).Once()

	issuer, err := NewIssuer("test-secret", time.Hour, clock)
	require.NoError(t, err)

	token, err := issuer.Issue(domain.UserActor(domain.User{ID: "u-1", Email: "a@b.com"}))
	require.NoError(t, err)

	clock.EXPECT().Now().Return(time.Now())

	info, err := issuer.Inspect(token)
	require.NoError(t, err)
	assert.True(t, info.Offline)
	assert.False(t, info.Verified)
}
