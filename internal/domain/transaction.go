package domain

type TransactionKind string

const (
	TransactionContractCall   TransactionKind = "contract_call"
	TransactionTokenAssociate TransactionKind = "token_associate"
)

// TransactionRequest is the wallet-facing description of one transaction.
// Function, Parameters and CallData are empty for token associations.
type TransactionRequest struct {
	Kind          TransactionKind
	TargetID      EntityID
	AccountID     AccountID
	Function      FunctionName
	Parameters    *ParameterList
	CallData      []byte
	GasLimit      uint64
	MaxFee        Hbar
	PayableAmount Hbar
}

func (r TransactionRequest) HasFunction() bool {
	return r.Function != ""
}
