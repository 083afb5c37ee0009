package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotInitialized       = errors.New("wallet session not initialized")
	ErrInitializationFailed = errors.New("wallet initialization failed")
	ErrAccountNotPaired     = errors.New("account not paired")
	ErrUnknownFunction      = errors.New("unknown contract function")
	ErrMissingArgument      = errors.New("missing argument")
	ErrTypeMismatch         = errors.New("argument type mismatch")
	ErrValueOutOfRange      = errors.New("value out of range")
	ErrValueTooLarge        = errors.New("value too large")
	ErrInvalidIdentifier    = errors.New("invalid identifier")
	ErrSignerUnavailable    = errors.New("signer unavailable")
	ErrTransportRejected    = errors.New("wallet rejected the transaction")
	ErrAssociationFailed    = errors.New("token association failed")
	ErrReceiptUnavailable   = errors.New("receipt unavailable")
	ErrTransactionFailed    = errors.New("transaction failed on ledger")
	ErrDuplicateFunction    = errors.New("duplicate function definition")
	ErrContractNotFound     = errors.New("contract not found")
	ErrSecretNotFound       = errors.New("secret not found")
)

// ArgumentError describes why one argument of a function call could not be marshalled.
type ArgumentError struct {
	Function FunctionName
	Argument string
	Position int
	Kind     ArgKind
	Err      error
}

func (e *ArgumentError) Error() string {
	msg := fmt.Sprintf("%s: argument %d %q", e.Function, e.Position, e.Argument)
	if e.Kind != "" {
		msg += fmt.Sprintf(" (%s)", e.Kind)
	}
	return msg + ": " + e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// SignerUnavailableError carries the cause of each signer lookup attempt.
type SignerUnavailableError struct {
	Account  AccountID
	Direct   error
	Provider error
}

func (e *SignerUnavailableError) Error() string {
	return fmt.Sprintf("%s for %s: direct lookup: %v; provider lookup: %v", ErrSignerUnavailable, e.Account, e.Direct, e.Provider)
}

func (e *SignerUnavailableError) Unwrap() []error {
	causes := []error{ErrSignerUnavailable}
	if e.Direct != nil {
		causes = append(causes, e.Direct)
	}
	if e.Provider != nil {
		causes = append(causes, e.Provider)
	}
	return causes
}

// ExecutionError is the failure side of an execution: the stage the call was
// in when it stopped, and why.
type ExecutionError struct {
	Operation Operation
	Stage     Stage
	Err       error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s failed while %s: %v", e.Operation, e.Stage, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
