package wsbridge

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	MethodInit               = "wallet_init"
	MethodPairedAccounts     = "wallet_pairedAccounts"
	MethodGetSigner          = "wallet_getSigner"
	MethodPairingMetadata    = "wallet_pairingMetadata"
	MethodGetProvider        = "wallet_getProvider"
	MethodProviderSigner     = "provider_getSigner"
	MethodSendTransaction    = "wallet_sendTransaction"
	MethodExecuteTransaction = "signer_executeTransaction"
	MethodSignTransaction    = "signer_signTransaction"
	MethodSignMessages       = "wallet_signMessages"
	MethodGetReceipt         = "tx_getReceipt"
)

// Error codes follow the wallet provider conventions (EIP-1193) plus the
// JSON-RPC invalid params code for transactions the wallet cannot decode.
const (
	CodeUserRejected  = 4001
	CodeUnauthorized  = 4100
	CodeUnsupported   = 4200
	CodeInvalidParams = -32602
)

// Message is a request when Method is set and a response otherwise.
type Message struct {
	ID     string          `json:"id"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *RPCError       `json:"error,omitempty"`
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("wallet error %d: %s", e.Code, e.Message)
}

func (e *RPCError) Unwrap() error {
	switch e.Code {
	case CodeUserRejected:
		return ports.ErrUserRejected
	case CodeUnauthorized:
		return ports.ErrUnauthorized
	case CodeUnsupported:
		return ports.ErrUnsupported
	case CodeInvalidParams:
		return ports.ErrMalformedTransaction
	default:
		return nil
	}
}

type InitParams struct {
	AppName string `json:"appName"`
	Network string `json:"network"`
	Token   string `json:"token,omitempty"`
}

type AccountParams struct {
	Account string `json:"account"`
}

type PairedAccountsResult struct {
	Accounts []string `json:"accounts"`
}

type SignerResult struct {
	SignerID   string `json:"signerId"`
	Account    string `json:"account"`
	CanExecute bool   `json:"canExecute"`
}

type PairingMetadataResult struct {
	Topic   string `json:"topic"`
	Network string `json:"network"`
}

type ProviderParams struct {
	Network string `json:"network"`
	Topic   string `json:"topic"`
	Account string `json:"account"`
}

type ProviderResult struct {
	ProviderID string `json:"providerId"`
}

type ProviderSignerParams struct {
	ProviderID string `json:"providerId"`
}

// Transaction is the wallet-facing form of a domain.TransactionRequest.
// Parameters are informational; CallData is authoritative.
type Transaction struct {
	Kind            string        `json:"kind"`
	TargetID        string        `json:"targetId"`
	AccountID       string        `json:"accountId,omitempty"`
	Function        string        `json:"function,omitempty"`
	Parameters      []string      `json:"parameters,omitempty"`
	CallData        hexutil.Bytes `json:"callData,omitempty"`
	GasLimit        uint64        `json:"gasLimit,omitempty"`
	MaxFeeTinybars  int64         `json:"maxFeeTinybars"`
	PayableTinybars int64         `json:"payableTinybars,omitempty"`
}

func NewTransaction(tx domain.TransactionRequest) Transaction {
	wire := Transaction{
		Kind:            string(tx.Kind),
		TargetID:        tx.TargetID.String(),
		AccountID:       tx.AccountID.String(),
		Function:        string(tx.Function),
		CallData:        tx.CallData,
		GasLimit:        tx.GasLimit,
		MaxFeeTinybars:  tx.MaxFee.Tinybars(),
		PayableTinybars: tx.PayableAmount.Tinybars(),
	}
	if tx.Parameters != nil {
		for _, p := range tx.Parameters.Params() {
			wire.Parameters = append(wire.Parameters, p.String())
		}
	}
	return wire
}

type SendTransactionParams struct {
	Account     string      `json:"account"`
	Transaction Transaction `json:"transaction"`
}

type SignerTransactionParams struct {
	SignerID    string      `json:"signerId"`
	Transaction Transaction `json:"transaction"`
}

type HandleResult struct {
	TransactionID    string `json:"transactionId"`
	ReceiptAvailable bool   `json:"receiptAvailable"`
}

type ReceiptParams struct {
	TransactionID string `json:"transactionId"`
}

type ReceiptResult struct {
	TransactionID string        `json:"transactionId"`
	Status        string        `json:"status"`
	ContractID    string        `json:"contractId,omitempty"`
	TokenID       string        `json:"tokenId,omitempty"`
	SerialNumbers []int64       `json:"serialNumbers,omitempty"`
	Result        hexutil.Bytes `json:"result,omitempty"`
}

func (r ReceiptResult) Receipt() domain.Receipt {
	return domain.Receipt{
		TransactionID: r.TransactionID,
		Status:        r.Status,
		ContractID:    r.ContractID,
		TokenID:       r.TokenID,
		SerialNumbers: r.SerialNumbers,
		Result:        r.Result,
	}
}

type SignMessagesParams struct {
	Account string `json:"account"`
	Message string `json:"message"`
}

type SignatureResult struct {
	Signature hexutil.Bytes `json:"signature"`
}
