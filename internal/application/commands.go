package application

import "github.com/bnema/hedera-wallet-cli/internal/domain"

type ContractCallCommand struct {
	AccountID  domain.AccountID
	ContractID string
	Function   domain.FunctionName
	Args       Args
	// ArgOrder fixes the parameter order of dynamically marshalled calls.
	ArgOrder []string
	Gas      uint64
	Payable  domain.Hbar
	// Strategy overrides the coordinator's default when set.
	Strategy SubmissionStrategy
}

type AssociateTokenCommand struct {
	AccountID domain.AccountID
	TokenID   string
	Strategy  SubmissionStrategy
}

type SignMessageCommand struct {
	AccountID domain.AccountID
	Message   string
}

// SignedTransaction is the output of the sign-only path.
type SignedTransaction struct {
	RequestID string
	Request   domain.TransactionRequest
	Signature []byte
}
