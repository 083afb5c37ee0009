package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Coordinator drives a call through validation, signer resolution, building,
// submission and receipt retrieval. It never retries and enforces no timeouts
// of its own; callers bound calls with ctx.
type Coordinator struct {
	sessions   *SessionRegistry
	resolver   *SignerResolver
	marshaller *Marshaller
	builder    *TransactionBuilder

	strategy SubmissionStrategy
	logger   *zap.Logger
	observer ports.ExecutionObserver
	clock    ports.Clock
}

type CoordinatorOption func(*Coordinator)

func WithCoordinatorLogger(logger *zap.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithExecutionObserver(observer ports.ExecutionObserver) CoordinatorOption {
	return func(c *Coordinator) {
		c.observer = observer
	}
}

func WithClock(clock ports.Clock) CoordinatorOption {
	return func(c *Coordinator) {
		if clock != nil {
			c.clock = clock
		}
	}
}

func WithDefaultStrategy(strategy SubmissionStrategy) CoordinatorOption {
	return func(c *Coordinator) {
		if strategy.Valid() {
			c.strategy = strategy
		}
	}
}

func NewCoordinator(sessions *SessionRegistry, resolver *SignerResolver, marshaller *Marshaller, builder *TransactionBuilder, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		sessions:   sessions,
		resolver:   resolver,
		marshaller: marshaller,
		builder:    builder,
		strategy:   StrategyAuto,
		logger:     zap.NewNop(),
		clock:      ports.SystemClock{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.resolver == nil {
		c.resolver = NewSignerResolver("", c.logger)
	}
	if c.marshaller == nil {
		c.marshaller = NewMarshaller(nil)
	}
	if c.builder == nil {
		c.builder = NewTransactionBuilder(DefaultBuilderConfig(), nil, c.marshaller.Table())
	}
	return c
}

// execution is the local state of one call.
type execution struct {
	requestID string
	operation domain.Operation
	account   domain.AccountID
	target    string
	function  domain.FunctionName
	stage     domain.Stage
	strategy  SubmissionStrategy
	started   time.Time
	degraded  bool
	// wrap is applied to every failure recorded after it is set.
	wrap func(error) error
}

func (c *Coordinator) begin(operation domain.Operation, account domain.AccountID, target string) *execution {
	return &execution{
		requestID: uuid.NewString(),
		operation: operation,
		account:   account.Normalize(),
		target:    target,
		stage:     domain.StageValidating,
		started:   c.clock.Now(),
	}
}

func (c *Coordinator) ExecuteContractCall(ctx context.Context, cmd ContractCallCommand) (domain.ExecutionResult, error) {
	run := c.begin(domain.OperationContractCall, cmd.AccountID, cmd.ContractID)
	run.function = cmd.Function

	strategy, err := c.strategyFor(cmd.Strategy)
	if err != nil {
		return domain.ExecutionResult{}, c.fail(ctx, run, err)
	}
	run.strategy = strategy

	session, err := c.pairedSession(ctx, run.account)
	if err != nil {
		return domain.ExecutionResult{}, c.fail(ctx, run, err)
	}

	run.stage = domain.StageResolving
	signer, err := c.resolveFor(ctx, session, run.account, strategy)
	if err != nil {
		return domain.ExecutionResult{}, c.fail(ctx, run, err)
	}

	run.stage = domain.StageBuilding
	tx, err := c.buildCall(run, cmd)
	if err != nil {
		return domain.ExecutionResult{}, c.fail(ctx, run, err)
	}

	return c.submitAndAwait(ctx, run, session, signer, tx)
}

// AssociateToken associates tokenID with a paired account.
func (c *Coordinator) AssociateToken(ctx context.Context, cmd AssociateTokenCommand) (domain.ExecutionResult, error) {
	run := c.begin(domain.OperationTokenAssociate, cmd.AccountID, cmd.TokenID)

	strategy, err := c.strategyFor(cmd.Strategy)
	if err != nil {
		return domain.ExecutionResult{}, c.fail(ctx, run, err)
	}
	run.strategy = strategy

	session, err := c.pairedSession(ctx, run.account)
	if err != nil {
		return domain.ExecutionResult{}, c.fail(ctx, run, err)
	}

	// Past the pairing check every failure is an association failure.
	run.wrap = associationFailed

	run.stage = domain.StageResolving
	signer, err := c.resolveFor(ctx, session, run.account, strategy)
	if err != nil {
		return domain.ExecutionResult{}, c.fail(ctx, run, err)
	}

	run.stage = domain.StageBuilding
	tx, err := c.builder.BuildTokenAssociation(run.account.String(), cmd.TokenID)
	if err != nil {
		return domain.ExecutionResult{}, c.fail(ctx, run, err)
	}

	return c.submitAndAwait(ctx, run, session, signer, tx)
}

// SignMessage asks the wallet to sign message with a paired account.
func (c *Coordinator) SignMessage(ctx context.Context, cmd SignMessageCommand) ([]byte, error) {
	run := c.begin(domain.OperationSignMessage, cmd.AccountID, "")

	session, err := c.pairedSession(ctx, run.account)
	if err != nil {
		return nil, c.fail(ctx, run, err)
	}

	run.stage = domain.StageSubmitting
	signature, err := session.Transport().SignMessages(ctx, run.account, cmd.Message)
	if err != nil {
		return nil, c.fail(ctx, run, transportRejected(err))
	}

	c.complete(ctx, run)
	return signature, nil
}

// SignTransaction builds a contract call and has the resolved signer sign it
// without submitting it.
func (c *Coordinator) SignTransaction(ctx context.Context, cmd ContractCallCommand) (SignedTransaction, error) {
	run := c.begin(domain.OperationSignTransaction, cmd.AccountID, cmd.ContractID)
	run.function = cmd.Function
	run.strategy = StrategySigner

	session, err := c.pairedSession(ctx, run.account)
	if err != nil {
		return SignedTransaction{}, c.fail(ctx, run, err)
	}

	run.stage = domain.StageResolving
	signer, err := c.resolver.Resolve(ctx, session, run.account)
	if err != nil {
		return SignedTransaction{}, c.fail(ctx, run, err)
	}

	run.stage = domain.StageBuilding
	tx, err := c.buildCall(run, cmd)
	if err != nil {
		return SignedTransaction{}, c.fail(ctx, run, err)
	}

	run.stage = domain.StageSubmitting
	signature, err := signer.SignTransaction(ctx, tx)
	if err != nil {
		return SignedTransaction{}, c.fail(ctx, run, transportRejected(err))
	}

	c.complete(ctx, run)
	return SignedTransaction{RequestID: run.requestID, Request: tx, Signature: signature}, nil
}

// pairedSession waits for the handshake and confirms account is paired.
func (c *Coordinator) pairedSession(ctx context.Context, account domain.AccountID) (*Session, error) {
	session, err := c.readySession(ctx)
	if err != nil {
		return nil, err
	}
	if err := session.RequirePaired(ctx, account); err != nil {
		return nil, err
	}
	return session, nil
}

func (c *Coordinator) buildCall(run *execution, cmd ContractCallCommand) (domain.TransactionRequest, error) {
	if _, err := domain.ParseEntityID(cmd.ContractID); err != nil {
		return domain.TransactionRequest{}, fmt.Errorf("parse contract id: %w", err)
	}
	params, err := c.marshaller.MarshalOrdered(cmd.Function, cmd.Args, cmd.ArgOrder)
	if err != nil {
		return domain.TransactionRequest{}, err
	}
	tx, err := c.builder.BuildContractCall(cmd.ContractID, params, cmd.Gas, cmd.Payable)
	if err != nil {
		return domain.TransactionRequest{}, err
	}
	tx.AccountID = run.account
	return tx, nil
}

func (c *Coordinator) readySession(ctx context.Context) (*Session, error) {
	session, err := c.sessions.Session()
	if err != nil {
		return nil, err
	}
	if err := session.AwaitReady(ctx); err != nil {
		return nil, err
	}
	return session, nil
}

func (c *Coordinator) strategyFor(requested SubmissionStrategy) (SubmissionStrategy, error) {
	if requested == "" {
		return c.strategy, nil
	}
	if !requested.Valid() {
		return "", fmt.Errorf("unsupported submission strategy %q", requested)
	}
	return requested, nil
}

// resolveFor resolves the signer a strategy needs. The wallet strategy needs
// none. Under auto, an unavailable signer is not fatal: submission goes
// through the wallet instead.
func (c *Coordinator) resolveFor(ctx context.Context, session *Session, account domain.AccountID, strategy SubmissionStrategy) (ports.Signer, error) {
	if strategy == StrategyWallet {
		return nil, nil
	}

	signer, err := c.resolver.Resolve(ctx, session, account)
	if err == nil {
		return signer, nil
	}
	if strategy == StrategyAuto && errors.Is(err, domain.ErrSignerUnavailable) {
		c.logger.Debug("no signer available, submitting through wallet", zap.String("account", account.String()), zap.Error(err))
		return nil, nil
	}
	return nil, err
}

func (c *Coordinator) submitAndAwait(ctx context.Context, run *execution, session *Session, signer ports.Signer, tx domain.TransactionRequest) (domain.ExecutionResult, error) {
	run.stage = domain.StageSubmitting
	used := run.strategy
	if used == StrategyAuto {
		used = StrategySigner
	}
	submitter := run.strategy.submitter(func(err error) {
		used = StrategyWallet
		c.logger.Info("signer path unavailable, falling back to wallet",
			zap.String("request_id", run.requestID),
			zap.Error(err),
		)
	})

	handle, err := submitter.submit(ctx, submission{
		transport: session.Transport(),
		signer:    signer,
		account:   run.account,
		tx:        tx,
	})
	if err != nil {
		return domain.ExecutionResult{}, c.fail(ctx, run, transportRejected(err))
	}
	if handle == nil {
		return domain.ExecutionResult{}, c.fail(ctx, run, transportRejected(errors.New("wallet returned no submission handle")))
	}
	// From here on the run reports the path that actually carried the transaction.
	run.strategy = used

	result := domain.ExecutionResult{
		RequestID:     run.requestID,
		Operation:     run.operation,
		AccountID:     run.account,
		TargetID:      tx.TargetID,
		Function:      tx.Function,
		Strategy:      used.String(),
		TransactionID: handle.TransactionID(),
		SubmittedAt:   c.clock.Now(),
	}
	if tx.Parameters != nil {
		result.Path = tx.Parameters.Path
	}

	run.stage = domain.StageAwaitingReceipt
	receipt, err := c.awaitReceipt(ctx, run, handle)
	if err != nil {
		return domain.ExecutionResult{}, c.fail(ctx, run, err)
	}
	result.Receipt = receipt
	result.ReceiptUnavailable = receipt == nil

	c.complete(ctx, run)
	return result, nil
}

// awaitReceipt returns a nil receipt, not an error, when the handle cannot
// produce one: the transaction was accepted and its outcome is unknown.
func (c *Coordinator) awaitReceipt(ctx context.Context, run *execution, handle ports.SubmissionHandle) (*domain.Receipt, error) {
	fetcher, ok := handle.(ports.ReceiptFetcher)
	if !ok {
		run.degraded = true
		return nil, nil
	}

	receipt, err := fetcher.Receipt(ctx)
	if err != nil {
		run.degraded = true
		c.logger.Debug("receipt retrieval failed", zap.String("request_id", run.requestID), zap.Error(fmt.Errorf("%w: %w", domain.ErrReceiptUnavailable, err)))
		return nil, nil
	}
	if !receipt.Succeeded() {
		return nil, fmt.Errorf("%w: status %s", domain.ErrTransactionFailed, receipt.Status)
	}
	if receipt.TransactionID == "" {
		receipt.TransactionID = handle.TransactionID()
	}
	return &receipt, nil
}

func (c *Coordinator) fields(run *execution) []zap.Field {
	fields := []zap.Field{
		zap.String("request_id", run.requestID),
		zap.String("operation", string(run.operation)),
		zap.String("account", run.account.String()),
		zap.String("stage", string(run.stage)),
	}
	if run.target != "" {
		fields = append(fields, zap.String("target", run.target))
	}
	if run.function != "" {
		fields = append(fields, zap.String("function", string(run.function)))
	}
	if run.strategy != "" {
		fields = append(fields, zap.String("strategy", run.strategy.String()))
	}
	return fields
}

func (c *Coordinator) fail(ctx context.Context, run *execution, err error) error {
	if run.wrap != nil {
		err = run.wrap(err)
	}
	execErr := &domain.ExecutionError{Operation: run.operation, Stage: run.stage, Err: err}
	c.logger.Warn("execution failed", append(c.fields(run), zap.Error(err))...)
	c.observe(ctx, run, err)
	return execErr
}

func (c *Coordinator) complete(ctx context.Context, run *execution) {
	run.stage = domain.StageCompleted
	if run.degraded {
		c.logger.Warn("execution completed without receipt", append(c.fields(run), zap.Bool("degraded", true))...)
	} else {
		c.logger.Info("execution completed", c.fields(run)...)
	}
	c.observe(ctx, run, nil)
}

func (c *Coordinator) observe(ctx context.Context, run *execution, err error) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveExecution(ctx, ports.ExecutionEvent{
		RequestID:          run.requestID,
		Operation:          run.operation,
		Stage:              run.stage,
		Strategy:           run.strategy.String(),
		Err:                err,
		ReceiptUnavailable: run.degraded,
		Duration:           c.clock.Now().Sub(run.started),
	})
}

func transportRejected(err error) error {
	if errors.Is(err, domain.ErrTransportRejected) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrTransportRejected, err)
}

func associationFailed(err error) error {
	if errors.Is(err, domain.ErrAssociationFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrAssociationFailed, err)
}
