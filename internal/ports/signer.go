package ports

import (
	"context"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
)

type Signer interface {
	AccountID() domain.AccountID
	SignTransaction(ctx context.Context, tx domain.TransactionRequest) ([]byte, error)
}

// TransactionExecutor is implemented by signers that can also broadcast the
// transaction they signed.
type TransactionExecutor interface {
	ExecuteTransaction(ctx context.Context, tx domain.TransactionRequest) (SubmissionHandle, error)
}
