package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
	"github.com/bnema/hedera-wallet-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestCoordinator(transport ports.WalletTransport, opts ...CoordinatorOption) *Coordinator {
	marshaller := NewMarshaller(nil)
	return NewCoordinator(
		NewSessionRegistry(transport),
		NewSignerResolver("testnet", nil),
		marshaller,
		NewTransactionBuilder(DefaultBuilderConfig(), nil, marshaller.Table()),
		opts...,
	)
}

func transferCommand() ContractCallCommand {
	return ContractCallCommand{
		AccountID:  "0.0.42",
		ContractID: "0.0.5005",
		Function:   domain.FunctionTransferAsset,
		Args:       validArgs()[domain.FunctionTransferAsset],
	}
}

func requireExecutionError(t *testing.T, err error, stage domain.Stage, sentinel error) {
	t.Helper()

	require.Error(t, err)
	var execErr *domain.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, stage, execErr.Stage)
	assert.ErrorIs(t, err, sentinel)
}

func TestExecuteContractCallThroughSigner(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	signer := mocks.NewMockSigner(t)
	executor := mocks.NewMockTransactionExecutor(t)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().GetSigner(mockAnyContext(), domain.AccountID("0.0.42")).
		Return(executingSigner{MockSigner: signer, MockTransactionExecutor: executor}, nil).Once()

	var submitted domain.TransactionRequest
	executor.EXPECT().ExecuteTransaction(mockAnyContext(), mock.Anything).
		Run(func(_ context.Context, tx domain.TransactionRequest) { submitted = tx }).
		Return(receiptHandle{id: "0.0.42@1700000000.1", receipt: domain.Receipt{Status: domain.ReceiptStatusSuccess}}, nil).Once()

	coordinator := newTestCoordinator(transport)
	result, err := coordinator.ExecuteContractCall(context.Background(), transferCommand())
	require.NoError(t, err)

	assert.NotEmpty(t, result.RequestID)
	assert.Equal(t, domain.OperationContractCall, result.Operation)
	assert.Equal(t, "signer", result.Strategy)
	assert.Equal(t, domain.PathSpec, result.Path)
	assert.Equal(t, "0.0.42@1700000000.1", result.TransactionID)
	require.NotNil(t, result.Receipt)
	assert.Equal(t, "0.0.42@1700000000.1", result.Receipt.TransactionID)
	assert.False(t, result.ReceiptUnavailable)

	assert.Equal(t, domain.AccountID("0.0.42"), submitted.AccountID)
	assert.Equal(t, domain.FunctionTransferAsset, submitted.Function)
	assert.True(t, submitted.PayableAmount.IsZero())
	assert.Equal(t, DefaultGasLimit, submitted.GasLimit)
}

func TestExecuteContractCallWithoutReceiptCapabilityCompletes(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().SendTransaction(mockAnyContext(), domain.AccountID("0.0.42"), mock.Anything).
		Return(plainHandle{id: "tx-1"}, nil).Once()

	core, logs := observer.New(zap.WarnLevel)
	cmd := transferCommand()
	cmd.Strategy = StrategyWallet

	result, err := newTestCoordinator(transport, WithCoordinatorLogger(zap.New(core))).ExecuteContractCall(context.Background(), cmd)
	require.NoError(t, err)
	assert.Nil(t, result.Receipt)
	assert.True(t, result.ReceiptUnavailable)
	assert.Equal(t, "wallet", result.Strategy)

	entries := logs.FilterField(zap.Bool("degraded", true)).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "execution completed without receipt", entries[0].Message)
}

func TestExecuteContractCallReceiptFetchFailureIsDegraded(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().SendTransaction(mockAnyContext(), domain.AccountID("0.0.42"), mock.Anything).
		Return(receiptHandle{id: "tx-1", err: errors.New("mirror node timeout")}, nil).Once()

	observerMock := mocks.NewMockExecutionObserver(t)
	observerMock.EXPECT().ObserveExecution(mockAnyContext(), mock.MatchedBy(func(event ports.ExecutionEvent) bool {
		return event.Stage == domain.StageCompleted && event.ReceiptUnavailable && event.Err == nil
	})).Return().Once()

	cmd := transferCommand()
	cmd.Strategy = StrategyWallet
	result, err := newTestCoordinator(transport, WithExecutionObserver(observerMock)).ExecuteContractCall(context.Background(), cmd)
	require.NoError(t, err)
	assert.Nil(t, result.Receipt)
	assert.True(t, result.ReceiptUnavailable)
}

func TestExecuteContractCallFailedReceipt(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().SendTransaction(mockAnyContext(), domain.AccountID("0.0.42"), mock.Anything).
		Return(receiptHandle{id: "tx-1", receipt: domain.Receipt{Status: "CONTRACT_REVERT_EXECUTED"}}, nil).Once()

	cmd := transferCommand()
	cmd.Strategy = StrategyWallet
	_, err := newTestCoordinator(transport).ExecuteContractCall(context.Background(), cmd)
	requireExecutionError(t, err, domain.StageAwaitingReceipt, domain.ErrTransactionFailed)
	assert.Contains(t, err.Error(), "CONTRACT_REVERT_EXECUTED")
}

func TestExecuteContractCallAutoFallsBackToWallet(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	signer := mocks.NewMockSigner(t)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().GetSigner(mockAnyContext(), domain.AccountID("0.0.42")).Return(signer, nil).Once()
	transport.EXPECT().SendTransaction(mockAnyContext(), domain.AccountID("0.0.42"), mock.Anything).
		Return(plainHandle{id: "tx-2"}, nil).Once()

	observerMock := mocks.NewMockExecutionObserver(t)
	observerMock.EXPECT().ObserveExecution(mockAnyContext(), mock.MatchedBy(func(event ports.ExecutionEvent) bool {
		return event.Strategy == "wallet" && event.Err == nil
	})).Return().Once()

	result, err := newTestCoordinator(transport, WithExecutionObserver(observerMock)).ExecuteContractCall(context.Background(), transferCommand())
	require.NoError(t, err)
	assert.Equal(t, "wallet", result.Strategy)
	assert.Equal(t, "tx-2", result.TransactionID)
}

func TestExecuteContractCallAutoSubmitsThroughWalletWhenNoSigner(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().GetSigner(mockAnyContext(), domain.AccountID("0.0.42")).Return(nil, ports.ErrUnsupported).Once()
	transport.EXPECT().SendTransaction(mockAnyContext(), domain.AccountID("0.0.42"), mock.Anything).
		Return(plainHandle{id: "tx-3"}, nil).Once()

	result, err := newTestCoordinator(transport).ExecuteContractCall(context.Background(), transferCommand())
	require.NoError(t, err)
	assert.Equal(t, "wallet", result.Strategy)
}

func TestExecuteContractCallSignerStrategyNeedsSigner(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().GetSigner(mockAnyContext(), domain.AccountID("0.0.42")).Return(nil, ports.ErrUnsupported).Once()

	cmd := transferCommand()
	cmd.Strategy = StrategySigner
	_, err := newTestCoordinator(transport).ExecuteContractCall(context.Background(), cmd)
	requireExecutionError(t, err, domain.StageResolving, domain.ErrSignerUnavailable)
}

func TestExecuteContractCallUserRejectionDoesNotFallBack(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	executor := mocks.NewMockTransactionExecutor(t)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().GetSigner(mockAnyContext(), domain.AccountID("0.0.42")).
		Return(executingSigner{MockSigner: mocks.NewMockSigner(t), MockTransactionExecutor: executor}, nil).Once()
	executor.EXPECT().ExecuteTransaction(mockAnyContext(), mock.Anything).Return(nil, ports.ErrUserRejected).Once()

	_, err := newTestCoordinator(transport).ExecuteContractCall(context.Background(), transferCommand())
	requireExecutionError(t, err, domain.StageSubmitting, domain.ErrTransportRejected)
	assert.ErrorIs(t, err, ports.ErrUserRejected)
	assert.Equal(t, domain.CategoryRejected, domain.Describe(err).Category)
}

func TestExecuteContractCallCreateAssetCarriesDeposit(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.42")

	var submitted domain.TransactionRequest
	transport.EXPECT().SendTransaction(mockAnyContext(), domain.AccountID("0.0.42"), mock.Anything).
		Run(func(_ context.Context, _ domain.AccountID, tx domain.TransactionRequest) { submitted = tx }).
		Return(plainHandle{id: "tx-4"}, nil).Once()

	_, err := newTestCoordinator(transport).ExecuteContractCall(context.Background(), ContractCallCommand{
		AccountID:  "0.0.42",
		ContractID: "0.0.5005",
		Function:   domain.FunctionCreateAsset,
		Args:       validArgs()[domain.FunctionCreateAsset],
		Strategy:   StrategyWallet,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.NewHbar(20), submitted.PayableAmount)
	assert.Equal(t, domain.NewHbar(2), submitted.MaxFee)
}

func TestExecuteContractCallInvalidArgumentsFailWhileBuilding(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.42")

	_, err := newTestCoordinator(transport).ExecuteContractCall(context.Background(), ContractCallCommand{
		AccountID:  "0.0.42",
		ContractID: "0.0.5005",
		Function:   domain.FunctionCreateAsset,
		Args:       Args{"name": "X"},
		Strategy:   StrategyWallet,
	})
	requireExecutionError(t, err, domain.StageBuilding, domain.ErrMissingArgument)
	assert.Equal(t, domain.CategoryInvalid, domain.Describe(err).Category)
}

func TestExecuteContractCallInvalidContractIDFailsWhileBuilding(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.42")

	_, err := newTestCoordinator(transport).ExecuteContractCall(context.Background(), ContractCallCommand{
		AccountID:  "0.0.42",
		ContractID: "booking",
		Function:   domain.FunctionTransferAsset,
		Args:       validArgs()[domain.FunctionTransferAsset],
		Strategy:   StrategyWallet,
	})
	requireExecutionError(t, err, domain.StageBuilding, domain.ErrInvalidIdentifier)
}

func TestExecuteContractCallUnpairedAccount(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.7")

	_, err := newTestCoordinator(transport).ExecuteContractCall(context.Background(), transferCommand())
	requireExecutionError(t, err, domain.StageValidating, domain.ErrAccountNotPaired)
}

func TestExecuteContractCallPairingCheckedBeforeArguments(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.7")

	_, err := newTestCoordinator(transport).ExecuteContractCall(context.Background(), ContractCallCommand{
		AccountID:  "0.0.42",
		ContractID: "0.0.5005",
		Function:   domain.FunctionCreateAsset,
		Args:       Args{"name": "X"},
	})
	requireExecutionError(t, err, domain.StageValidating, domain.ErrAccountNotPaired)
	assert.NotErrorIs(t, err, domain.ErrMissingArgument)
}

func TestExecuteContractCallHandshakeFailure(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	transport.EXPECT().Init(mockAnyContext()).Return(errors.New("no extension")).Once()

	_, err := newTestCoordinator(transport).ExecuteContractCall(context.Background(), transferCommand())
	requireExecutionError(t, err, domain.StageValidating, domain.ErrInitializationFailed)
	assert.Equal(t, domain.CategoryPairing, domain.Describe(err).Category)
}

func TestAssociateTokenUnpairedAccountNeverReachesTransport(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.7152637")

	_, err := newTestCoordinator(transport).AssociateToken(context.Background(), AssociateTokenCommand{
		AccountID: "0.0.999",
		TokenID:   "0.0.7152637",
	})
	requireExecutionError(t, err, domain.StageValidating, domain.ErrAccountNotPaired)
	assert.NotErrorIs(t, err, domain.ErrAssociationFailed)
}

func TestAssociateTokenSubmitsAssociation(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.42")

	var submitted domain.TransactionRequest
	transport.EXPECT().SendTransaction(mockAnyContext(), domain.AccountID("0.0.42"), mock.Anything).
		Run(func(_ context.Context, _ domain.AccountID, tx domain.TransactionRequest) { submitted = tx }).
		Return(receiptHandle{id: "tx-5", receipt: domain.Receipt{Status: domain.ReceiptStatusSuccess}}, nil).Once()

	result, err := newTestCoordinator(transport).AssociateToken(context.Background(), AssociateTokenCommand{
		AccountID: "0.0.42",
		TokenID:   "0.0.7152637",
		Strategy:  StrategyWallet,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OperationTokenAssociate, result.Operation)
	assert.Equal(t, domain.MustParseEntityID("0.0.7152637"), result.TargetID)

	assert.Equal(t, domain.TransactionTokenAssociate, submitted.Kind)
	assert.False(t, submitted.HasFunction())
	assert.Nil(t, submitted.Parameters)
	assert.True(t, submitted.PayableAmount.IsZero())
}

func TestAssociateTokenWrapsSubmissionFailure(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().SendTransaction(mockAnyContext(), domain.AccountID("0.0.42"), mock.Anything).
		Return(nil, ports.ErrUserRejected).Once()

	_, err := newTestCoordinator(transport).AssociateToken(context.Background(), AssociateTokenCommand{
		AccountID: "0.0.42",
		TokenID:   "0.0.7152637",
		Strategy:  StrategyWallet,
	})
	requireExecutionError(t, err, domain.StageSubmitting, domain.ErrAssociationFailed)
	assert.ErrorIs(t, err, domain.ErrTransportRejected)
	assert.ErrorIs(t, err, ports.ErrUserRejected)
}

func TestAssociateTokenFailureIsRecordedAsAssociationFailure(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().SendTransaction(mockAnyContext(), domain.AccountID("0.0.42"), mock.Anything).
		Return(nil, ports.ErrUserRejected).Once()

	observerMock := mocks.NewMockExecutionObserver(t)
	observerMock.EXPECT().ObserveExecution(mockAnyContext(), mock.MatchedBy(func(event ports.ExecutionEvent) bool {
		return event.Stage == domain.StageSubmitting && errors.Is(event.Err, domain.ErrAssociationFailed)
	})).Return().Once()
	core, logs := observer.New(zap.WarnLevel)

	coordinator := newTestCoordinator(transport, WithExecutionObserver(observerMock), WithCoordinatorLogger(zap.New(core)))
	_, err := coordinator.AssociateToken(context.Background(), AssociateTokenCommand{
		AccountID: "0.0.42",
		TokenID:   "0.0.7152637",
		Strategy:  StrategyWallet,
	})
	require.Error(t, err)

	entries := logs.FilterMessage("execution failed").All()
	require.Len(t, entries, 1)
	logged, ok := entries[0].ContextMap()["error"].(string)
	require.True(t, ok)
	assert.Contains(t, logged, domain.ErrAssociationFailed.Error())
	assert.Equal(t, 1, strings.Count(err.Error(), domain.ErrAssociationFailed.Error()))
}

func TestSignTransactionUnpairedAccountFailsValidating(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.7")

	_, err := newTestCoordinator(transport).SignTransaction(context.Background(), ContractCallCommand{
		AccountID:  "0.0.42",
		ContractID: "booking",
		Function:   domain.FunctionMintAsset,
	})
	requireExecutionError(t, err, domain.StageValidating, domain.ErrAccountNotPaired)
}

func TestSignMessage(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().SignMessages(mockAnyContext(), domain.AccountID("0.0.42"), "hello").Return([]byte{0xca, 0xfe}, nil).Once()
	coordinator := newTestCoordinator(transport)

	signature, err := coordinator.SignMessage(context.Background(), SignMessageCommand{AccountID: "0.0.42", Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xca, 0xfe}, signature)

	_, err = coordinator.SignMessage(context.Background(), SignMessageCommand{AccountID: "0.0.1", Message: "hello"})
	requireExecutionError(t, err, domain.StageValidating, domain.ErrAccountNotPaired)
}

func TestSignMessageRejected(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().SignMessages(mockAnyContext(), domain.AccountID("0.0.42"), "hello").Return(nil, ports.ErrUserRejected).Once()

	_, err := newTestCoordinator(transport).SignMessage(context.Background(), SignMessageCommand{AccountID: "0.0.42", Message: "hello"})
	requireExecutionError(t, err, domain.StageSubmitting, domain.ErrTransportRejected)
}

func TestSignTransactionDoesNotSubmit(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	signer := mocks.NewMockSigner(t)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().GetSigner(mockAnyContext(), domain.AccountID("0.0.42")).Return(signer, nil).Once()
	signer.EXPECT().SignTransaction(mockAnyContext(), mock.MatchedBy(func(tx domain.TransactionRequest) bool {
		return tx.Function == domain.FunctionMintAsset && tx.AccountID == "0.0.42"
	})).Return([]byte("signed"), nil).Once()

	signed, err := newTestCoordinator(transport).SignTransaction(context.Background(), ContractCallCommand{
		AccountID:  "0.0.42",
		ContractID: "0.0.5005",
		Function:   domain.FunctionMintAsset,
		Args:       validArgs()[domain.FunctionMintAsset],
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("signed"), signed.Signature)
	assert.NotEmpty(t, signed.RequestID)
	assert.Equal(t, domain.FunctionMintAsset, signed.Request.Function)
}

func TestCoordinatorUsesClockForTimestamps(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	clock := mocks.NewMockClock(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)
	expectHandshake(transport, "0.0.42")
	transport.EXPECT().SendTransaction(mockAnyContext(), domain.AccountID("0.0.42"), mock.Anything).Return(plainHandle{id: "tx-6"}, nil).Once()

	cmd := transferCommand()
	cmd.Strategy = StrategyWallet
	result, err := newTestCoordinator(transport, WithClock(clock)).ExecuteContractCall(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, now, result.SubmittedAt)
}

func TestCoordinatorRejectsUnknownStrategy(t *testing.T) {
	transport := mocks.NewMockWalletTransport(t)
	cmd := transferCommand()
	cmd.Strategy = "minimal"

	_, err := newTestCoordinator(transport).ExecuteContractCall(context.Background(), cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported submission strategy")
}
