package application

import (
	"context"
	"testing"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
	"github.com/bnema/hedera-wallet-cli/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

// lookupTransport is a wallet transport that also exposes provider lookup.
type lookupTransport struct {
	*mocks.MockWalletTransport
	*mocks.MockProviderLookup
}

// executingSigner is a signer that can also broadcast.
type executingSigner struct {
	*mocks.MockSigner
	*mocks.MockTransactionExecutor
}

type plainHandle struct {
	id string
}

func (h plainHandle) TransactionID() string {
	return h.id
}

type receiptHandle struct {
	id      string
	receipt domain.Receipt
	err     error
}

func (h receiptHandle) TransactionID() string {
	return h.id
}

func (h receiptHandle) Receipt(context.Context) (domain.Receipt, error) {
	return h.receipt, h.err
}

var (
	_ ports.ProviderLookup      = lookupTransport{}
	_ ports.TransactionExecutor = executingSigner{}
	_ ports.ReceiptFetcher      = receiptHandle{}
)

func expectHandshake(transport *mocks.MockWalletTransport, paired ...domain.AccountID) {
	transport.EXPECT().Init(mockAnyContext()).Return(nil).Once()
	transport.EXPECT().ListPairedAccounts(mockAnyContext()).Return(paired, nil).Once()
}

func readySession(t *testing.T, transport ports.WalletTransport) *Session {
	t.Helper()

	registry := NewSessionRegistry(transport)
	t.Cleanup(func() { _ = registry.Close() })

	session, err := registry.Session()
	require.NoError(t, err)
	require.NoError(t, session.AwaitReady(context.Background()))
	return session
}
