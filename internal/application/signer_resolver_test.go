package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
	"github.com/bnema/hedera-wallet-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignerResolverRejectsUnpairedAccountBeforeLookup(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.7152637")
	session := readySession(t, transport)

	_, err := NewSignerResolver("testnet", nil).Resolve(context.Background(), session, "0.0.999")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccountNotPaired)
}

func TestSignerResolverDirectLookupWins(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	signer := mocks.NewMockSigner(t)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().GetSigner(mockAnyContext(), domain.AccountID("0.0.42")).Return(signer, nil).Once()
	session := readySession(t, transport)

	resolved, err := NewSignerResolver("testnet", nil).Resolve(context.Background(), session, "0.0.42")
	require.NoError(t, err)
	assert.Same(t, signer, resolved)
}

func TestSignerResolverFallsBackToProvider(t *testing.T) {
	wallet := mocks.NewMockWalletTransport(t)
	lookup := mocks.NewMockProviderLookup(t)
	provider := mocks.NewMockProvider(t)
	signer := mocks.NewMockSigner(t)

	expectHandshake(wallet, "0.0.42")
	wallet.EXPECT().GetSigner(mockAnyContext(), domain.AccountID("0.0.42")).Return(nil, ports.ErrUnsupported).Once()
	lookup.EXPECT().PairingMetadata(mockAnyContext()).Return(ports.PairingMetadata{Topic: "topic-1"}, nil).Once()
	lookup.EXPECT().GetProvider(mockAnyContext(), "testnet", "topic-1", domain.AccountID("0.0.42")).Return(provider, nil).Once()
	provider.EXPECT().Signer(mockAnyContext()).Return(signer, nil).Once()

	session := readySession(t, lookupTransport{MockWalletTransport: wallet, MockProviderLookup: lookup})

	resolved, err := NewSignerResolver("testnet", nil).Resolve(context.Background(), session, "0.0.42")
	require.NoError(t, err)
	assert.Same(t, signer, resolved)
}

func TestSignerResolverPrefersMetadataNetwork(t *testing.T) {
	wallet := mocks.NewMockWalletTransport(t)
	lookup := mocks.NewMockProviderLookup(t)
	provider := mocks.NewMockProvider(t)
	signer := mocks.NewMockSigner(t)

	expectHandshake(wallet, "0.0.42")
	wallet.EXPECT().GetSigner(mockAnyContext(), domain.AccountID("0.0.42")).Return(nil, nil).Once()
	lookup.EXPECT().PairingMetadata(mockAnyContext()).Return(ports.PairingMetadata{Topic: "topic-1", Network: "mainnet"}, nil).Once()
	lookup.EXPECT().GetProvider(mockAnyContext(), "mainnet", "topic-1", domain.AccountID("0.0.42")).Return(provider, nil).Once()
	provider.EXPECT().Signer(mockAnyContext()).Return(signer, nil).Once()

	session := readySession(t, lookupTransport{MockWalletTransport: wallet, MockProviderLookup: lookup})

	resolved, err := NewSignerResolver("testnet", nil).Resolve(context.Background(), session, "0.0.42")
	require.NoError(t, err)
	assert.Same(t, signer, resolved)
}

func TestSignerResolverReportsBothCauses(t *testing.T) {
	wallet := mocks.NewMockWalletTransport(t)
	lookup := mocks.NewMockProviderLookup(t)
	directErr := errors.New("no signer for account")
	providerErr := errors.New("provider offline")

	expectHandshake(wallet, "0.0.42")
	wallet.EXPECT().GetSigner(mockAnyContext(), domain.AccountID("0.0.42")).Return(nil, directErr).Once()
	lookup.EXPECT().PairingMetadata(mockAnyContext()).Return(ports.PairingMetadata{Topic: "topic-1"}, nil).Once()
	lookup.EXPECT().GetProvider(mockAnyContext(), "testnet", "topic-1", domain.AccountID("0.0.42")).Return(nil, providerErr).Once()

	session := readySession(t, lookupTransport{MockWalletTransport: wallet, MockProviderLookup: lookup})

	_, err := NewSignerResolver("testnet", nil).Resolve(context.Background(), session, "0.0.42")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSignerUnavailable)
	assert.ErrorIs(t, err, directErr)
	assert.ErrorIs(t, err, providerErr)

	var unavailable *domain.SignerUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, domain.AccountID("0.0.42"), unavailable.Account)
}

func TestSignerResolverWithoutMetadataIsUnavailable(t *testing.T) {
	tests := []struct {
		name        string
		transport   func(t *testing.T) ports.WalletTransport
		providerErr error
	}{
		{
			name: "transport without provider lookup",
			transport: func(t *testing.T) ports.WalletTransport {
				wallet := mocks.NewMockWalletTransport(t)
				expectHandshake(wallet, "0.0.42")
				wallet.EXPECT().GetSigner(mockAnyContext(), domain.AccountID("0.0.42")).Return(nil, ports.ErrUnsupported).Once()
				return wallet
			},
			providerErr: errNoProviderLookup,
		},
		{
			name: "metadata without topic",
			transport: func(t *testing.T) ports.WalletTransport {
				wallet := mocks.NewMockWalletTransport(t)
				lookup := mocks.NewMockProviderLookup(t)
				expectHandshake(wallet, "0.0.42")
				wallet.EXPECT().GetSigner(mockAnyContext(), domain.AccountID("0.0.42")).Return(nil, ports.ErrUnsupported).Once()
				lookup.EXPECT().PairingMetadata(mockAnyContext()).Return(ports.PairingMetadata{}, nil).Once()
				return lookupTransport{MockWalletTransport: wallet, MockProviderLookup: lookup}
			},
			providerErr: errNoPairingTopic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := readySession(t, tt.transport(t))

			_, err := NewSignerResolver("testnet", nil).Resolve(context.Background(), session, "0.0.42")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrSignerUnavailable)
			assert.ErrorIs(t, err, ports.ErrUnsupported)
			assert.ErrorIs(t, err, tt.providerErr)
		})
	}
}

func TestSignerResolverStopsOnCancelledContext(t *testing.T) {
	wallet := mocks.NewMockWalletTransport(t)
	expectHandshake(wallet, "0.0.42")
	wallet.EXPECT().GetSigner(mockAnyContext(), domain.AccountID("0.0.42")).Return(nil, context.Canceled).Once()
	session := readySession(t, wallet)

	_, err := NewSignerResolver("testnet", nil).Resolve(context.Background(), session, "0.0.42")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrSignerUnavailable)
}
