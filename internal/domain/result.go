package domain

import "time"

type Operation string

const (
	OperationContractCall    Operation = "contract_call"
	OperationTokenAssociate  Operation = "token_associate"
	OperationSignMessage     Operation = "sign_message"
	OperationSignTransaction Operation = "sign_transaction"
)

type Stage string

const (
	StageValidating      Stage = "validating"
	StageResolving       Stage = "resolving"
	StageBuilding        Stage = "building"
	StageSubmitting      Stage = "submitting"
	StageAwaitingReceipt Stage = "awaiting_receipt"
	StageCompleted       Stage = "completed"
)

const ReceiptStatusSuccess = "SUCCESS"

type Receipt struct {
	TransactionID string
	Status        string
	ContractID    string
	TokenID       string
	SerialNumbers []int64
	Result        []byte
}

func (r Receipt) Succeeded() bool {
	return r.Status == "" || r.Status == ReceiptStatusSuccess
}

// ExecutionResult is the success side of an execution. A nil Receipt with
// ReceiptUnavailable set is a degraded success: the wallet accepted the
// transaction but its outcome was not confirmed.
type ExecutionResult struct {
	RequestID          string
	Operation          Operation
	AccountID          AccountID
	TargetID           EntityID
	Function           FunctionName
	Path               MarshalPath
	Strategy           string
	TransactionID      string
	Receipt            *Receipt
	ReceiptUnavailable bool
	SubmittedAt        time.Time
}
