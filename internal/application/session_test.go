package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRegistryWithoutTransportIsNotInitialized(t *testing.T) {
	registry := NewSessionRegistry(nil)

	_, err := registry.Session()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestSessionRegistryConcurrentCallersShareOneHandshake(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.7152637")
	registry := NewSessionRegistry(transport)
	defer registry.Close()

	const callers = 16
	sessions := make([]*Session, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			session, err := registry.Session()
			if err == nil {
				_ = session.AwaitReady(context.Background())
			}
			sessions[i] = session
		}(i)
	}
	wg.Wait()

	for _, session := range sessions {
		require.NotNil(t, session)
		assert.Same(t, sessions[0], session)
	}
	assert.Equal(t, InitReady, sessions[0].State())
}

func TestSessionRegistryReturnsSameSessionOnRepeatedCalls(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport)
	registry := NewSessionRegistry(transport)
	defer registry.Close()

	first, err := registry.Session()
	require.NoError(t, err)
	require.NoError(t, first.AwaitReady(context.Background()))

	second, err := registry.Session()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSessionRegistryReplacesFailedSession(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	handshakeErr := errors.New("extension not found")
	transport.EXPECT().Init(mockAnyContext()).Return(handshakeErr).Once()
	expectHandshake(transport, "0.0.42")
	registry := NewSessionRegistry(transport)
	defer registry.Close()

	failed, err := registry.Session()
	require.NoError(t, err)
	err = failed.AwaitReady(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInitializationFailed)
	assert.ErrorIs(t, err, handshakeErr)
	assert.Equal(t, InitFailed, failed.State())

	retried, err := registry.Session()
	require.NoError(t, err)
	assert.NotSame(t, failed, retried)
	require.NoError(t, retried.AwaitReady(context.Background()))

	accounts, err := retried.PairedAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.AccountID{"0.0.42"}, accounts)
}

func TestSessionAwaitReadyHonoursContext(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	release := make(chan struct{})
	transport.EXPECT().Init(mockAnyContext()).RunAndReturn(func(ctx context.Context) error {
		select {
		case <-release:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}).Once()
	registry := NewSessionRegistry(transport)

	session, err := registry.Session()
	require.NoError(t, err)
	assert.Equal(t, InitPending, session.State())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = session.AwaitReady(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	require.NoError(t, registry.Close())
	err = session.AwaitReady(context.Background())
	assert.ErrorIs(t, err, domain.ErrInitializationFailed)
	close(release)
}

func TestSessionPairedAccountsAreNormalizedAndDeduplicated(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, " 0.0.42 ", "0.0.42", "", "0xABCDEF")
	session := readySession(t, transport)

	accounts, err := session.PairedAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.AccountID{"0.0.42", "0xabcdef"}, accounts)

	paired, err := session.IsPaired(context.Background(), "0xAbCdEf")
	require.NoError(t, err)
	assert.True(t, paired)
}

func TestSessionRefreshReloadsPairedAccounts(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.1")
	session := readySession(t, transport)

	transport.EXPECT().ListPairedAccounts(mockAnyContext()).Return([]domain.AccountID{"0.0.1", "0.0.2"}, nil).Once()
	accounts, err := session.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.AccountID{"0.0.1", "0.0.2"}, accounts)

	require.NoError(t, session.RequirePaired(context.Background(), "0.0.2"))
	err = session.RequirePaired(context.Background(), "0.0.999")
	assert.ErrorIs(t, err, domain.ErrAccountNotPaired)
}
