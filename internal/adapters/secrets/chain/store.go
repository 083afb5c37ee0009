package chain

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	envstore "github.com/bnema/hedera-wallet-cli/internal/adapters/secrets/env"
	filestore "github.com/bnema/hedera-wallet-cli/internal/adapters/secrets/file"
	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
)

const (
	// EnvPrefix is the variable prefix of the environment overlay.
	EnvPrefix = "HW"

	// BridgeTokenKey holds the pairing token presented to the wallet bridge.
	BridgeTokenKey = "bridge/token"
)

// Source names the backend a secret was read from.
type Source string

const (
	SourceEnv  Source = "env"
	SourceFile Source = "file"
)

// ErrUnknownKey is returned for keys hw does not manage.
var ErrUnknownKey = errors.New("unknown secret key")

var knownKeys = []string{BridgeTokenKey}

// Store layers a read-only environment overlay over a writable store. Reads
// prefer the environment; writes and deletes only ever touch the writable
// store.
type Store struct {
	env      *envstore.Store
	writable ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilEnvStore      = errors.New("environment secret store is nil")
	errNilWritableStore = errors.New("writable secret store is nil")
)

func NewStore(env *envstore.Store, writable ports.SecretStore) (*Store, error) {
	if env == nil {
		return nil, errNilEnvStore
	}
	if writable == nil {
		return nil, errNilWritableStore
	}

	return &Store{env: env, writable: writable}, nil
}

// NewEnvFirstWithFileFallback reads HW_* variables first and persists
// writes under fileRoot.
func NewEnvFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(envstore.NewStore(EnvPrefix), filestore.NewStore(fileRoot))
}

// Lookup returns the secret for key and the backend that supplied it.
func (s *Store) Lookup(ctx context.Context, key string) (string, Source, error) {
	if err := checkKey(key); err != nil {
		return "", "", err
	}

	value, err := s.env.Get(ctx, key)
	if err == nil {
		return value, SourceEnv, nil
	}
	if !errors.Is(err, domain.ErrSecretNotFound) {
		return "", "", err
	}

	value, fileErr := s.writable.Get(ctx, key)
	if fileErr != nil {
		if errors.Is(fileErr, domain.ErrSecretNotFound) {
			return "", "", fmt.Errorf("%w; %w", fileErr, err)
		}
		return "", "", fileErr
	}
	return value, SourceFile, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, _, err := s.Lookup(ctx, key)
	return value, err
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("secret %q is empty", key)
	}

	return s.writable.Put(ctx, key, value)
}

// Delete removes the stored copy of key. A value supplied by the
// environment stays visible; Shadowed reports it.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	return s.writable.Delete(ctx, key)
}

// Shadowed reports the environment variable that overrides the stored
// value of key, when that variable is set.
func (s *Store) Shadowed(ctx context.Context, key string) (string, bool) {
	name, err := s.env.VariableName(key)
	if err != nil {
		return "", false
	}
	if _, err := s.env.Get(ctx, key); err != nil {
		return name, false
	}
	return name, true
}

func checkKey(key string) error {
	if !slices.Contains(knownKeys, key) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}
