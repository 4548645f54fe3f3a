package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configDir  = ".jobboard"
	configName = "config"
	configType = "toml"
	envPrefix  = "JOBBOARD"

	keyAPIBaseURL     = "api.base_url"
	keyAPITimeout     = "api.timeout"
	keyStorageBackend = "storage.backend"
	keyStoragePath    = "storage.path"
	keySecretsBackend = "secrets.backend"
	keySecretsDir     = "secrets.dir"
	keyPassPrefix     = "secrets.pass_prefix"
	keyOfflineSecret  = "offline.token_secret"
	keyOfflineTTL     = "offline.token_ttl"
	keyLogLevel       = "log.level"

	defaultAPIBaseURL = "http://localhost:5050/api"
	defaultAPITimeout = 15 * time.Second
	defaultOfflineTTL = 24 * time.Hour
	defaultPassPrefix = "jobboard"
	sqliteFile        = "session.db"
)

// loadConfig reads ~/.jobboard/config.toml and JOBBOARD_* variables. A .env
// file in the working directory is loaded first when present.
func loadConfig() (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(keyAPIBaseURL, defaultAPIBaseURL)
	cfg.SetDefault(keyAPITimeout, defaultAPITimeout)
	cfg.SetDefault(keyStorageBackend, "toml")
	cfg.SetDefault(keySecretsBackend, "chain")
	cfg.SetDefault(keySecretsDir, filepath.Join(homeDir, configDir, "secrets"))
	cfg.SetDefault(keyPassPrefix, defaultPassPrefix)
	cfg.SetDefault(keyOfflineTTL, defaultOfflineTTL)
	cfg.SetDefault(keyLogLevel, "warn")

	// storage.path has no default here: each backend picks its own file name.
	_ = cfg.BindEnv(keyStoragePath)
	_ = cfg.BindEnv(keyOfflineSecret)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func newLogger(cfg *viper.Viper) (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "jb"})

	raw := cfg.GetString(keyLogLevel)
	level, err := log.ParseLevel(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s %q: %w", keyLogLevel, raw, err)
	}
	logger.SetLevel(level)

	return logger, nil
}
