package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/bnema/jobboard-cli/internal/domain"
	"github.com/bnema/jobboard-cli/internal/ports"
)

const invalidCredentialsMessage = "Invalid credentials"

// SessionManager owns the authentication state of the client. The mutex guards
// the session and its persisted copies; calls to the auth service run outside it.
type SessionManager struct {
	auth      ports.AuthService
	directory ports.Directory
	tokens    ports.TokenStore
	issuer    ports.TokenIssuer
	inspector ports.TokenInspector
	storage   ports.KeyValueStore
	logger    *log.Logger

	mu         sync.Mutex
	session    domain.Session
	generation uint64
}

type SessionDeps struct {
	Auth      ports.AuthService
	Directory ports.Directory
	Tokens    ports.TokenStore
	Issuer    ports.TokenIssuer
	Inspector ports.TokenInspector
	Storage   ports.KeyValueStore
	Logger    *log.Logger
}

func NewSessionManager(deps SessionDeps) *SessionManager {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &SessionManager{
		auth:      deps.Auth,
		directory: deps.Directory,
		tokens:    deps.Tokens,
		issuer:    deps.Issuer,
		inspector: deps.Inspector,
		storage:   deps.Storage,
		logger:    logger,
		session:   domain.EmptySession(),
	}
}

func (m *SessionManager) Current() domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.session
}

func (m *SessionManager) Login(ctx context.Context, creds domain.Credentials) (LoginResult, error) {
	if err := creds.Validate(); err != nil {
		return LoginResult{Session: m.Current()}, fmt.Errorf("validate credentials: %w", err)
	}

	return m.authenticate(ctx, creds.Kind,
		func(ctx context.Context) (ports.AuthResult, error) {
			return m.auth.Login(ctx, creds)
		},
		func(ctx context.Context) (domain.Actor, error) {
			return m.directory.Authenticate(ctx, creds)
		},
	)
}

func (m *SessionManager) Register(ctx context.Context, registration domain.Registration) (LoginResult, error) {
	if registration == nil {
		return LoginResult{Session: m.Current()}, fmt.Errorf("validate registration: %w: registration is required", domain.ErrInvalidInput)
	}
	if err := registration.Validate(); err != nil {
		return LoginResult{Session: m.Current()}, fmt.Errorf("validate registration: %w", err)
	}

	return m.authenticate(ctx, registration.Kind(),
		func(ctx context.Context) (ports.AuthResult, error) {
			return m.auth.Register(ctx, registration)
		},
		func(ctx context.Context) (domain.Actor, error) {
			return m.directory.Register(ctx, registration)
		},
	)
}

func (m *SessionManager) authenticate(ctx context.Context, kind domain.ActorKind, remote remoteStage, fallback fallbackStage) (LoginResult, error) {
	generation, err := m.begin()
	if err != nil {
		return LoginResult{Session: m.Current()}, err
	}

	resolution, err := m.resolve(ctx, kind, remote, fallback)
	if err != nil {
		return LoginResult{Session: m.fail(generation, err)}, err
	}

	session, err := m.establish(ctx, generation, resolution)
	if err != nil {
		return LoginResult{Session: session, Source: resolution.Source}, err
	}

	m.logger.Info("session established", "kind", kind, "source", resolution.Source)

	return LoginResult{Session: session, Source: resolution.Source}, nil
}

func (m *SessionManager) begin() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.session.State() {
	case domain.SessionLoggedIn:
		return 0, domain.ErrAlreadyAuthenticated
	case domain.SessionLoggingIn:
		return 0, domain.ErrLoginInProgress
	}

	m.generation++
	m.session = domain.Session{Loading: true}

	return m.generation, nil
}

// resolve asks the auth service first and consults the fallback only when that
// call itself failed. A clean rejection by the service is final.
func (m *SessionManager) resolve(ctx context.Context, kind domain.ActorKind, remote remoteStage, fallback fallbackStage) (Resolution, error) {
	result, remoteErr := remote(ctx)
	if remoteErr == nil {
		if result.Actor.IsZero() {
			return Resolution{}, domain.ErrInvalidCredentials
		}
		if err := checkActor(result.Actor, kind); err != nil {
			remoteErr = fmt.Errorf("auth service returned unusable actor: %w", err)
		} else {
			return Resolution{Actor: result.Actor, Token: result.Token, Source: SourceRemote}, nil
		}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return Resolution{}, fmt.Errorf("authenticate: %w", ctxErr)
	}

	m.logger.Warn("auth service unavailable, falling back to local directory", "kind", kind, "err", remoteErr)

	actor, err := fallback(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return Resolution{}, fmt.Errorf("%w: %w: %w", domain.ErrInvalidCredentials, domain.ErrServiceUnavailable, remoteErr)
		}
		return Resolution{}, fmt.Errorf("local directory: %w", errors.Join(domain.ErrServiceUnavailable, remoteErr, err))
	}
	if err := checkActor(actor, kind); err != nil {
		return Resolution{}, fmt.Errorf("local directory returned unusable actor: %w", err)
	}

	token, err := m.issuer.Issue(actor)
	if err != nil {
		return Resolution{}, fmt.Errorf("issue offline token: %w", err)
	}

	return Resolution{Actor: actor, Token: token, Source: SourceFallback, RemoteErr: remoteErr}, nil
}

func checkActor(actor domain.Actor, kind domain.ActorKind) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Kind() != kind {
		return fmt.Errorf("%w: got %s, want %s", domain.ErrWrongActorKind, actor.Kind(), kind)
	}
	return nil
}

func (m *SessionManager) establish(ctx context.Context, generation uint64, resolution Resolution) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if generation != m.generation || !m.session.Loading {
		return m.session, fmt.Errorf("establish session: login was interrupted by logout")
	}

	record, err := encodeSessionRecord(resolution.Actor)
	if err != nil {
		m.session = domain.FailedSession(err.Error())
		return m.session, err
	}

	if err := m.tokens.Set(ctx, resolution.Token); err != nil {
		m.session = domain.FailedSession("could not store session token")
		return m.session, fmt.Errorf("store session token: %w", err)
	}

	if err := m.storage.Set(ctx, sessionStorageKey, record); err != nil {
		m.session = domain.FailedSession("could not persist session")
		if rollbackErr := m.tokens.Clear(ctx); rollbackErr != nil {
			return m.session, fmt.Errorf("persist session and rollback stored token: %w", errors.Join(err, rollbackErr))
		}
		return m.session, fmt.Errorf("persist session: %w", err)
	}

	m.session = domain.AuthenticatedSession(resolution.Actor)

	return m.session, nil
}

func (m *SessionManager) fail(generation uint64, err error) domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if generation != m.generation {
		return m.session
	}

	message := err.Error()
	if errors.Is(err, domain.ErrInvalidCredentials) {
		message = invalidCredentialsMessage
	}
	m.session = domain.FailedSession(message)

	return m.session
}

func (m *SessionManager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	m.session = domain.EmptySession()

	var errs []error
	if err := m.tokens.Clear(ctx); err != nil {
		errs = append(errs, fmt.Errorf("clear session token: %w", err))
	}
	if err := m.storage.Remove(ctx, sessionStorageKey); err != nil {
		errs = append(errs, fmt.Errorf("remove persisted session: %w", err))
	}

	return errors.Join(errs...)
}

func (m *SessionManager) Restore(ctx context.Context) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.State() != domain.SessionLoggedOut {
		return m.session, nil
	}

	raw, ok, err := m.storage.Get(ctx, sessionStorageKey)
	if err != nil {
		return m.session, fmt.Errorf("read persisted session: %w", err)
	}
	if !ok {
		m.session = domain.EmptySession()
		return m.session, nil
	}

	actor, err := decodeSessionRecord(raw)
	if err != nil {
		m.logger.Warn("discarding corrupt session record", "err", err)
		if removeErr := m.storage.Remove(ctx, sessionStorageKey); removeErr != nil {
			m.logger.Warn("remove corrupt session record", "err", removeErr)
		}
		m.session = domain.EmptySession()
		return m.session, nil
	}

	m.session = domain.AuthenticatedSession(actor)

	return m.session, nil
}

func (m *SessionManager) Token(ctx context.Context) (string, error) {
	token, err := m.tokens.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}
	return token, nil
}

func (m *SessionManager) Status(ctx context.Context) (SessionStatus, error) {
	status := SessionStatus{Session: m.Current()}

	token, err := m.Token(ctx)
	if err != nil {
		return status, err
	}
	if token == "" {
		return status, nil
	}
	status.HasToken = true

	if m.inspector == nil {
		return status, nil
	}
	info, err := m.inspector.Inspect(token)
	if err != nil {
		m.logger.Debug("session token is opaque", "err", err)
		return status, nil
	}
	status.OfflineToken = info.Offline
	status.TokenVerified = info.Verified
	status.TokenExpiresAt = info.ExpiresAt

	return status, nil
}
