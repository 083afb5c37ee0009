package wsbridge

import (
	"context"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
)

// Signer is a wallet-held signing capability for one account.
type Signer struct {
	client  *Client
	id      string
	account domain.AccountID
}

// ExecutingSigner is a Signer whose wallet can also broadcast.
type ExecutingSigner struct {
	*Signer
}

var (
	_ ports.Signer              = (*Signer)(nil)
	_ ports.TransactionExecutor = (*ExecutingSigner)(nil)
	_ ports.Provider            = (*Provider)(nil)
	_ ports.ReceiptFetcher      = (*ReceiptHandle)(nil)
)

func (c *Client) newSigner(result SignerResult, fallback domain.AccountID) ports.Signer {
	account := domain.AccountID(result.Account)
	if account == "" {
		account = fallback
	}
	signer := &Signer{client: c, id: result.SignerID, account: account}
	if result.CanExecute {
		return &ExecutingSigner{Signer: signer}
	}
	return signer
}

func (s *Signer) AccountID() domain.AccountID {
	return s.account
}

func (s *Signer) SignTransaction(ctx context.Context, tx domain.TransactionRequest) ([]byte, error) {
	var result SignatureResult
	params := SignerTransactionParams{SignerID: s.id, Transaction: NewTransaction(tx)}
	if err := s.client.call(ctx, MethodSignTransaction, params, &result); err != nil {
		return nil, err
	}
	return result.Signature, nil
}

func (s *ExecutingSigner) ExecuteTransaction(ctx context.Context, tx domain.TransactionRequest) (ports.SubmissionHandle, error) {
	var result HandleResult
	params := SignerTransactionParams{SignerID: s.id, Transaction: NewTransaction(tx)}
	if err := s.client.call(ctx, MethodExecuteTransaction, params, &result); err != nil {
		return nil, err
	}
	return s.client.newHandle(result), nil
}

// Provider is a signer source bound to the pairing channel.
type Provider struct {
	client  *Client
	id      string
	account domain.AccountID
}

func (p *Provider) Signer(ctx context.Context) (ports.Signer, error) {
	var result SignerResult
	if err := p.client.call(ctx, MethodProviderSigner, ProviderSignerParams{ProviderID: p.id}, &result); err != nil {
		return nil, err
	}
	return p.client.newSigner(result, p.account), nil
}

type Handle struct {
	transactionID string
}

func (h *Handle) TransactionID() string {
	return h.transactionID
}

// ReceiptHandle is returned when the wallet reports that a receipt can be queried.
type ReceiptHandle struct {
	*Handle
	client *Client
}

func (c *Client) newHandle(result HandleResult) ports.SubmissionHandle {
	handle := &Handle{transactionID: result.TransactionID}
	if result.ReceiptAvailable {
		return &ReceiptHandle{Handle: handle, client: c}
	}
	return handle
}

func (h *ReceiptHandle) Receipt(ctx context.Context) (domain.Receipt, error) {
	var result ReceiptResult
	if err := h.client.call(ctx, MethodGetReceipt, ReceiptParams{TransactionID: h.transactionID}, &result); err != nil {
		return domain.Receipt{}, err
	}
	receipt := result.Receipt()
	if receipt.TransactionID == "" {
		receipt.TransactionID = h.transactionID
	}
	return receipt, nil
}
