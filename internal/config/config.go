package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AppName names the data directory, the keyring service and the log file.
const AppName = "phasewise"

// DefaultUserID owns the snapshot when PHASEWISE_USER is unset.
const DefaultUserID = "default"

// ErrEmbeddedCredentials is returned for a PostgreSQL DSN that carries a
// password.
var ErrEmbeddedCredentials = errors.New("postgres connection strings with embedded passwords are not allowed; store the DSN with `phasewise config set-dsn` instead")

// Config is the process configuration read from the environment.
type Config struct {
	// DB is a SQLite file path or a postgres:// DSN.
	DB      string
	UserID  string
	Debug   bool
	DataDir string
}

// Load reads PHASEWISE_* variables, filling defaults under ~/.phasewise.
func Load() (Config, error) {
	cfg := Config{
		DB:      os.Getenv("PHASEWISE_DB"),
		UserID:  os.Getenv("PHASEWISE_USER"),
		DataDir: os.Getenv("PHASEWISE_DATA_DIR"),
	}
	if v := os.Getenv("PHASEWISE_DEBUG"); v != "" {
		cfg.Debug, _ = strconv.ParseBool(v)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, "."+AppName)
	}
	if cfg.DB == "" {
		cfg.DB = filepath.Join(cfg.DataDir, AppName+".db")
	}
	if cfg.UserID == "" {
		cfg.UserID = DefaultUserID
	}

	if cfg.IsPostgres() && HasEmbeddedCredentials(cfg.DB) {
		return Config{}, ErrEmbeddedCredentials
	}
	return cfg, nil
}

// IsPostgres reports whether DB names a PostgreSQL server.
func (c Config) IsPostgres() bool {
	return IsPostgresDSN(c.DB)
}

func IsPostgresDSN(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a DSN carries a password, either in
// the URL userinfo or as a password= query or keyword parameter.
func HasEmbeddedCredentials(dsn string) bool {
	if IsPostgresDSN(dsn) {
		u, err := url.Parse(dsn)
		if err != nil {
			// Unparseable: be strict.
			return strings.Contains(dsn, "@") && strings.Contains(dsn, ":")
		}
		if _, ok := u.User.Password(); ok {
			return true
		}
		return u.Query().Has("password")
	}
	for _, field := range strings.Fields(dsn) {
		if strings.HasPrefix(strings.ToLower(field), "password=") {
			return true
		}
	}
	return false
}
