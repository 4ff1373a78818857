package config

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringUser is the keyring entry holding the database DSN.
const KeyringUser = "database-connection"

var (
	// ErrDSNNotFound is returned when no DSN is stored in the keyring.
	ErrDSNNotFound = errors.New("database connection not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be used.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// StoredDSN returns the DSN saved with SetStoredDSN.
func StoredDSN() (string, error) {
	dsn, err := keyring.Get(AppName, KeyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrDSNNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return dsn, nil
}

// SetStoredDSN saves dsn in the OS keyring. Passwords are allowed here; the
// keyring is the place for them.
func SetStoredDSN(dsn string) error {
	if dsn == "" {
		return errors.New("connection string cannot be empty")
	}
	if !IsPostgresDSN(dsn) {
		return fmt.Errorf("not a postgres connection string: %q", dsn)
	}
	if err := keyring.Set(AppName, KeyringUser, dsn); err != nil {
		return fmt.Errorf("storing connection string in keyring: %w", err)
	}
	return nil
}

func DeleteStoredDSN() error {
	err := keyring.Delete(AppName, KeyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrDSNNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting connection string from keyring: %w", err)
	}
	return nil
}

// ResolveDB returns the database location to open. A keyring DSN wins over
// the default SQLite path but never over an explicit PHASEWISE_DB.
func (c Config) ResolveDB(explicit bool) string {
	if explicit {
		return c.DB
	}
	if dsn, err := StoredDSN(); err == nil {
		return dsn
	}
	return c.DB
}
