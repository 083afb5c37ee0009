package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
)

// ErrReadOnly is returned by Put and Delete: the process environment is
// only ever read.
var ErrReadOnly = errors.New("environment secret store is read-only")

// Store resolves secrets from environment variables. Key "bridge/token"
// with prefix "HW" maps to HW_BRIDGE_TOKEN.
type Store struct {
	prefix string
	lookup func(string) (string, bool)
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(prefix string) *Store {
	return &Store{prefix: prefix, lookup: os.LookupEnv}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := s.VariableName(key)
	if err != nil {
		return "", err
	}

	value, ok := s.lookup(name)
	if !ok || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: %s is not set", domain.ErrSecretNotFound, name)
	}
	return strings.TrimSpace(value), nil
}

func (s *Store) Put(context.Context, string, string) error {
	return ErrReadOnly
}

func (s *Store) Delete(context.Context, string) error {
	return ErrReadOnly
}

func (s *Store) VariableName(key string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(key), "/")
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}

	name := strings.ToUpper(strings.NewReplacer("/", "_", "-", "_", ".", "_").Replace(trimmed))
	if s.prefix != "" {
		name = strings.ToUpper(s.prefix) + "_" + name
	}
	return name, nil
}
