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

func TestParseSubmissionStrategy(t *testing.T) {
	strategy, err := ParseSubmissionStrategy(" Wallet ")
	require.NoError(t, err)
	assert.Equal(t, StrategyWallet, strategy)

	strategy, err = ParseSubmissionStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyAuto, strategy)

	_, err = ParseSubmissionStrategy("minimal")
	require.Error(t, err)
}

func TestSignerSubmitterRequiresExecutor(t *testing.T) {
	_, err := signerSubmitter{}.submit(context.Background(), submission{signer: mocks.NewMockSigner(t)})
	assert.ErrorIs(t, err, ports.ErrUnsupported)

	_, err = signerSubmitter{}.submit(context.Background(), submission{})
	assert.ErrorIs(t, err, ports.ErrUnsupported)
}

func TestSignerSubmitterExecutes(t *testing.T) {
	executor := mocks.NewMockTransactionExecutor(t)
	tx := domain.TransactionRequest{Kind: domain.TransactionContractCall}
	executor.EXPECT().ExecuteTransaction(mockAnyContext(), tx).Return(plainHandle{id: "0.0.42@1.2"}, nil).Once()

	handle, err := signerSubmitter{}.submit(context.Background(), submission{
		signer: executingSigner{MockSigner: mocks.NewMockSigner(t), MockTransactionExecutor: executor},
		tx:     tx,
	})
	require.NoError(t, err)
	assert.Equal(t, "0.0.42@1.2", handle.TransactionID())
}

func TestWalletSubmitterSends(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	tx := domain.TransactionRequest{Kind: domain.TransactionTokenAssociate}
	transport.EXPECT().SendTransaction(mockAnyContext(), domain.AccountID("0.0.42"), tx).Return(plainHandle{id: "tx-1"}, nil).Once()

	handle, err := walletSubmitter{}.submit(context.Background(), submission{transport: transport, account: "0.0.42", tx: tx})
	require.NoError(t, err)
	assert.Equal(t, "tx-1", handle.TransactionID())
}

type stubSubmitter struct {
	handle ports.SubmissionHandle
	err    error
	calls  int
}

func (s *stubSubmitter) strategy() SubmissionStrategy {
	return "stub"
}

func (s *stubSubmitter) submit(context.Context, submission) (ports.SubmissionHandle, error) {
	s.calls++
	return s.handle, s.err
}

func TestFallbackSubmitter(t *testing.T) {
	tests := []struct {
		name         string
		primaryErr   error
		wantFallback bool
		wantErr      error
	}{
		{name: "primary succeeds", wantFallback: false},
		{name: "unsupported falls back", primaryErr: ports.ErrUnsupported, wantFallback: true},
		{name: "malformed falls back", primaryErr: ports.ErrMalformedTransaction, wantFallback: true},
		{name: "user rejection stops", primaryErr: ports.ErrUserRejected, wantErr: ports.ErrUserRejected},
		{name: "rejection wrapping unsupported stops", primaryErr: errors.Join(ports.ErrUserRejected, ports.ErrUnsupported), wantErr: ports.ErrUserRejected},
		{name: "other errors stop", primaryErr: ports.ErrTransportClosed, wantErr: ports.ErrTransportClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &stubSubmitter{handle: plainHandle{id: "primary"}, err: tt.primaryErr}
			secondary := &stubSubmitter{handle: plainHandle{id: "secondary"}}
			fellBack := false
			f := fallbackSubmitter{primary: primary, secondary: secondary, onFallback: func(error) { fellBack = true }}

			handle, err := f.submit(context.Background(), submission{})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, secondary.calls)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFallback, fellBack)
			if tt.wantFallback {
				assert.Equal(t, "secondary", handle.TransactionID())
				assert.Equal(t, 1, secondary.calls)
			} else {
				assert.Equal(t, "primary", handle.TransactionID())
			}
		})
	}
}

func TestFallbackSubmitterJoinsBothFailures(t *testing.T) {
	secondaryErr := errors.New("wallet offline")
	f := fallbackSubmitter{
		primary:   &stubSubmitter{err: ports.ErrUnsupported},
		secondary: &stubSubmitter{err: secondaryErr},
	}

	_, err := f.submit(context.Background(), submission{})
	require.Error(t, err)
	assert.ErrorIs(t, err, secondaryErr)
	assert.ErrorIs(t, err, ports.ErrUnsupported)
}
