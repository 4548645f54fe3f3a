package tokens

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bnema/jobboard-cli/internal/domain"
	"github.com/bnema/jobboard-cli/internal/ports"
)

const (
	offlineIssuer = "jobboard-offline"
	defaultTTL    = 24 * time.Hour
)

type Claims struct {
	ActorKind domain.ActorKind `json:"actor_kind,omitempty"`
	Email     string           `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret []byte
	keyed  bool
	ttl    time.Duration
	clock  ports.Clock
}

var (
	_ ports.TokenIssuer    = (*Issuer)(nil)
	_ ports.TokenInspector = (*Issuer)(nil)
)

func NewIssuer(secret string, ttl time.Duration, clock ports.Clock) (*Issuer, error) {
	key := []byte(secret)
	keyed := len(key) > 0
	if !keyed {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate offline token key: %w", err)
		}
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Issuer{secret: key, keyed: keyed, ttl: ttl, clock: clock}, nil
}

func (i *Issuer) Issue(actor domain.Actor) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", fmt.Errorf("issue offline token: %w", err)
	}

	now := i.clock.Now()
	claims := &Claims{
		ActorKind: actor.Kind(),
		Email:     actor.Email(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    offlineIssuer,
			Subject:   actor.ID(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign offline token: %w", err)
	}

	return signed, nil
}

// Inspect reads the claims of a token. Offline tokens are also verified when
// the issuer was built with a configured secret; API tokens are only decoded.
func (i *Issuer) Inspect(token string) (ports.TokenInfo, error) {
	if token == "" {
		return ports.TokenInfo{}, errors.New("token string is empty")
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ports.TokenInfo{}, fmt.Errorf("decode token: %w", err)
	}

	info := ports.TokenInfo{
		Subject:   claims.Subject,
		ActorKind: claims.ActorKind,
		Offline:   claims.Issuer == offlineIssuer,
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	if info.Offline && i.keyed {
		_, err := i.verify(token)
		info.Verified = err == nil
	}

	return info, nil
}

func (i *Issuer) verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	},
		jwt.WithIssuer(offlineIssuer),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("verify offline token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("offline token is not valid")
	}

	return claims, nil
}
