package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
	"go.uber.org/zap"
)

var (
	errNoProviderLookup = errors.New("transport does not expose pairing metadata")
	errNoPairingTopic   = errors.New("pairing metadata has no channel topic")
	errNilSigner        = errors.New("wallet returned no signer")
)

// SignerResolver obtains a signing capability for a paired account. It tries
// a direct lookup first and a provider-mediated lookup second; it never retries.
type SignerResolver struct {
	network string
	logger  *zap.Logger
}

func NewSignerResolver(network string, logger *zap.Logger) *SignerResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SignerResolver{network: network, logger: logger}
}

func (r *SignerResolver) Resolve(ctx context.Context, session *Session, account domain.AccountID) (ports.Signer, error) {
	if err := session.RequirePaired(ctx, account); err != nil {
		return nil, err
	}

	signer, directErr := r.direct(ctx, session.Transport(), account)
	if directErr == nil {
		return signer, nil
	}
	if shouldStopLookup(directErr) {
		return nil, directErr
	}
	r.logger.Debug("direct signer lookup failed, trying provider", zap.String("account", account.String()), zap.Error(directErr))

	signer, providerErr := r.viaProvider(ctx, session.Transport(), account)
	if providerErr == nil {
		return signer, nil
	}

	return nil, &domain.SignerUnavailableError{Account: account, Direct: directErr, Provider: providerErr}
}

func (r *SignerResolver) direct(ctx context.Context, transport ports.WalletTransport, account domain.AccountID) (ports.Signer, error) {
	signer, err := transport.GetSigner(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("get signer: %w", err)
	}
	if signer == nil {
		return nil, errNilSigner
	}
	return signer, nil
}

func (r *SignerResolver) viaProvider(ctx context.Context, transport ports.WalletTransport, account domain.AccountID) (ports.Signer, error) {
	lookup, ok := transport.(ports.ProviderLookup)
	if !ok {
		return nil, errNoProviderLookup
	}

	metadata, err := lookup.PairingMetadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("read pairing metadata: %w", err)
	}
	if strings.TrimSpace(metadata.Topic) == "" {
		return nil, errNoPairingTopic
	}

	network := metadata.Network
	if network == "" {
		network = r.network
	}

	provider, err := lookup.GetProvider(ctx, network, metadata.Topic, account)
	if err != nil {
		return nil, fmt.Errorf("get provider: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("get provider: %w", errNilSigner)
	}

	signer, err := provider.Signer(ctx)
	if err != nil {
		return nil, fmt.Errorf("get signer from provider: %w", err)
	}
	if signer == nil {
		return nil, errNilSigner
	}
	return signer, nil
}

func shouldStopLookup(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
