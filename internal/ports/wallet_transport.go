package ports

import (
	"context"
	"errors"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
)

// Errors a transport reports so the coordinator can decide between falling
// back and surfacing the failure.
var (
	ErrUserRejected         = errors.New("user rejected the request")
	ErrUnsupported          = errors.New("operation not supported by wallet")
	ErrMalformedTransaction = errors.New("wallet could not decode transaction")
	ErrUnauthorized         = errors.New("wallet refused the application")
	ErrTransportClosed      = errors.New("wallet transport closed")
)

// WalletTransport is the wallet extension/provider library as seen by the core.
type WalletTransport interface {
	Init(ctx context.Context) error
	ListPairedAccounts(ctx context.Context) ([]domain.AccountID, error)
	GetSigner(ctx context.Context, account domain.AccountID) (Signer, error)
	SendTransaction(ctx context.Context, account domain.AccountID, tx domain.TransactionRequest) (SubmissionHandle, error)
	SignMessages(ctx context.Context, account domain.AccountID, message string) ([]byte, error)
}

type PairingMetadata struct {
	Topic   string
	Network string
}

// ProviderLookup is implemented by transports able to hand out a signer
// through a provider bound to the pairing channel.
type ProviderLookup interface {
	PairingMetadata(ctx context.Context) (PairingMetadata, error)
	GetProvider(ctx context.Context, network, topic string, account domain.AccountID) (Provider, error)
}

type Provider interface {
	Signer(ctx context.Context) (Signer, error)
}

// SubmissionHandle is what the wallet returns once it broadcast a transaction.
type SubmissionHandle interface {
	TransactionID() string
}

// ReceiptFetcher is implemented by handles that can wait for consensus.
type ReceiptFetcher interface {
	Receipt(ctx context.Context) (domain.Receipt, error)
}
