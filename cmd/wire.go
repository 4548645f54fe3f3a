package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/bnema/jobboard-cli/internal/adapters/api"
	"github.com/bnema/jobboard-cli/internal/adapters/directory/fixtures"
	boardrender "github.com/bnema/jobboard-cli/internal/adapters/render/board"
	chainstore "github.com/bnema/jobboard-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/jobboard-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/jobboard-cli/internal/adapters/secrets/pass"
	tokenstore "github.com/bnema/jobboard-cli/internal/adapters/secrets/token"
	sqlitestore "github.com/bnema/jobboard-cli/internal/adapters/storage/sqlite"
	tomlstore "github.com/bnema/jobboard-cli/internal/adapters/storage/toml"
	"github.com/bnema/jobboard-cli/internal/adapters/tokens"
	"github.com/bnema/jobboard-cli/internal/application"
	"github.com/bnema/jobboard-cli/internal/ports"
)

type app struct {
	sessions *application.SessionManager
	board    *application.JobBoard
	logger   *log.Logger
	now      func() time.Time
	close    func() error
}

func wireApp(cfg *viper.Viper, logger *log.Logger) (*app, error) {
	baseURL := cfg.GetString(keyAPIBaseURL)
	if err := api.ValidateBaseURL(baseURL); err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}
	timeout := cfg.GetDuration(keyAPITimeout)
	if timeout <= 0 {
		return nil, fmt.Errorf("wire api client: %s must be positive, got %q", keyAPITimeout, cfg.GetString(keyAPITimeout))
	}

	secretStore, err := newSecretStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}
	tokenStore := tokenstore.NewStore(secretStore)

	storage, closeStorage, err := newSessionStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session storage: %w", err)
	}

	directory, err := fixtures.Default()
	if err != nil {
		_ = closeStorage()
		return nil, fmt.Errorf("wire demo directory: %w", err)
	}

	issuer, err := tokens.NewIssuer(cfg.GetString(keyOfflineSecret), cfg.GetDuration(keyOfflineTTL), ports.SystemClock{})
	if err != nil {
		_ = closeStorage()
		return nil, fmt.Errorf("wire offline token issuer: %w", err)
	}

	client := api.Client{
		BaseURL:        baseURL,
		HTTPClient:     &http.Client{},
		RequestTimeout: timeout,
		Tokens:         tokenStore,
	}

	sessions := application.NewSessionManager(application.SessionDeps{
		Auth:      client,
		Directory: directory,
		Tokens:    tokenStore,
		Issuer:    issuer,
		Inspector: issuer,
		Storage:   storage,
		Logger:    logger,
	})

	return &app{
		sessions: sessions,
		board:    application.NewJobBoard(client, directory, sessions, logger),
		logger:   logger,
		now:      time.Now,
		close:    closeStorage,
	}, nil
}

func newSecretStore(cfg *viper.Viper) (ports.SecretStore, error) {
	dir := cfg.GetString(keySecretsDir)
	prefix := cfg.GetString(keyPassPrefix)

	switch backend := cfg.GetString(keySecretsBackend); backend {
	case "chain":
		return chainstore.NewPassFirstWithFileFallback(prefix, dir)
	case "file":
		return filestore.NewStore(dir), nil
	case "pass":
		return passstore.NewStore(prefix), nil
	default:
		return nil, fmt.Errorf("unsupported %s %q (chain|file|pass)", keySecretsBackend, backend)
	}
}

func newSessionStorage(cfg *viper.Viper) (ports.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch backend := cfg.GetString(keyStorageBackend); backend {
	case "toml":
		store, err := tomlstore.NewStore(cfg)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	case "sqlite":
		path := cfg.GetString(keyStoragePath)
		if path == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return nil, nil, fmt.Errorf("resolve home directory: %w", err)
			}
			path = filepath.Join(homeDir, configDir, sqliteFile)
		}
		store, err := sqlitestore.Open(context.Background(), path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported %s %q (toml|sqlite)", keyStorageBackend, backend)
	}
}

func (a *app) renderOptions() boardrender.RenderOptions {
	return boardrender.RenderOptions{Now: a.now()}
}
