package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
)

// SubmissionStrategy selects how a built transaction reaches the ledger.
type SubmissionStrategy string

const (
	// StrategyAuto submits through the signer and falls back to the wallet
	// when the signer cannot execute the transaction.
	StrategyAuto SubmissionStrategy = "auto"
	// StrategySigner only submits through the resolved signer.
	StrategySigner SubmissionStrategy = "signer"
	// StrategyWallet hands the transaction to the wallet transport and
	// skips signer resolution.
	StrategyWallet SubmissionStrategy = "wallet"
)

func ParseSubmissionStrategy(raw string) (SubmissionStrategy, error) {
	strategy := SubmissionStrategy(strings.ToLower(strings.TrimSpace(raw)))
	if strategy == "" {
		return StrategyAuto, nil
	}
	if !strategy.Valid() {
		return "", fmt.Errorf("unsupported submission strategy %q", raw)
	}
	return strategy, nil
}

func (s SubmissionStrategy) Valid() bool {
	switch s {
	case StrategyAuto, StrategySigner, StrategyWallet:
		return true
	default:
		return false
	}
}

func (s SubmissionStrategy) String() string {
	return string(s)
}

// submission is everything a submitter needs for one transaction.
type submission struct {
	transport ports.WalletTransport
	signer    ports.Signer
	account   domain.AccountID
	tx        domain.TransactionRequest
}

// submitter is one isolated way of getting a transaction submitted.
type submitter interface {
	strategy() SubmissionStrategy
	submit(ctx context.Context, sub submission) (ports.SubmissionHandle, error)
}

type signerSubmitter struct{}

func (signerSubmitter) strategy() SubmissionStrategy {
	return StrategySigner
}

func (signerSubmitter) submit(ctx context.Context, sub submission) (ports.SubmissionHandle, error) {
	if sub.signer == nil {
		return nil, fmt.Errorf("%w: no signer resolved", ports.ErrUnsupported)
	}
	executor, ok := sub.signer.(ports.TransactionExecutor)
	if !ok {
		return nil, fmt.Errorf("%w: signer cannot execute transactions", ports.ErrUnsupported)
	}

	handle, err := executor.ExecuteTransaction(ctx, sub.tx)
	if err != nil {
		return nil, fmt.Errorf("execute through signer: %w", err)
	}
	return handle, nil
}

type walletSubmitter struct{}

func (walletSubmitter) strategy() SubmissionStrategy {
	return StrategyWallet
}

func (walletSubmitter) submit(ctx context.Context, sub submission) (ports.SubmissionHandle, error) {
	handle, err := sub.transport.SendTransaction(ctx, sub.account, sub.tx)
	if err != nil {
		return nil, fmt.Errorf("send through wallet: %w", err)
	}
	return handle, nil
}

// fallbackSubmitter tries primary first and secondary only when primary
// failed in a way that another path may succeed.
type fallbackSubmitter struct {
	primary    submitter
	secondary  submitter
	onFallback func(err error)
}

func (fallbackSubmitter) strategy() SubmissionStrategy {
	return StrategyAuto
}

func (f fallbackSubmitter) submit(ctx context.Context, sub submission) (ports.SubmissionHandle, error) {
	handle, err := f.primary.submit(ctx, sub)
	if err == nil {
		return handle, nil
	}
	if !canFallBack(err) {
		return nil, err
	}
	if f.onFallback != nil {
		f.onFallback(err)
	}

	handle, fallbackErr := f.secondary.submit(ctx, sub)
	if fallbackErr != nil {
		return nil, errors.Join(fallbackErr, err)
	}
	return handle, nil
}

// canFallBack excludes user declines: asking the user again through another
// path would show a second approval prompt.
func canFallBack(err error) bool {
	if errors.Is(err, ports.ErrUserRejected) {
		return false
	}
	return errors.Is(err, ports.ErrUnsupported) || errors.Is(err, ports.ErrMalformedTransaction)
}

func (s SubmissionStrategy) submitter(onFallback func(error)) submitter {
	switch s {
	case StrategySigner:
		return signerSubmitter{}
	case StrategyWallet:
		return walletSubmitter{}
	default:
		return fallbackSubmitter{primary: signerSubmitter{}, secondary: walletSubmitter{}, onFallback: onFallback}
	}
}
