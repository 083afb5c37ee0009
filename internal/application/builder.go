package application

import (
	"fmt"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
)

const (
	DefaultGasLimit uint64 = 500_000
	MaxGasLimit     uint64 = 15_000_000
)

type BuilderConfig struct {
	MaxFee               domain.Hbar
	AssetCreationDeposit domain.Hbar
	DefaultGas           uint64
	MaxGas               uint64
}

func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		MaxFee:               domain.NewHbar(2),
		AssetCreationDeposit: domain.NewHbar(20),
		DefaultGas:           DefaultGasLimit,
		MaxGas:               MaxGasLimit,
	}
}

// TransactionBuilder assembles transaction requests. It performs no I/O.
type TransactionBuilder struct {
	cfg     BuilderConfig
	encoder ports.CallEncoder
	table   *domain.FunctionTable
}

func NewTransactionBuilder(cfg BuilderConfig, encoder ports.CallEncoder, table *domain.FunctionTable) *TransactionBuilder {
	defaults := DefaultBuilderConfig()
	if cfg.DefaultGas == 0 {
		cfg.DefaultGas = defaults.DefaultGas
	}
	if cfg.MaxGas == 0 {
		cfg.MaxGas = defaults.MaxGas
	}
	if table == nil {
		table = domain.DefaultFunctionTable()
	}
	return &TransactionBuilder{cfg: cfg, encoder: encoder, table: table}
}

func (b *TransactionBuilder) Config() BuilderConfig {
	return b.cfg
}

// BuildContractCall builds a contract call against targetID. A zero gas uses
// the configured default. Functions that create an asset carry at least the
// asset creation deposit; other functions carry payable only when given.
func (b *TransactionBuilder) BuildContractCall(targetID string, params domain.ParameterList, gas uint64, payable domain.Hbar) (domain.TransactionRequest, error) {
	target, err := domain.ParseEntityID(targetID)
	if err != nil {
		return domain.TransactionRequest{}, fmt.Errorf("parse contract id: %w", err)
	}
	if params.Function == "" {
		return domain.TransactionRequest{}, fmt.Errorf("%w: parameter list has no function", domain.ErrUnknownFunction)
	}

	if gas == 0 {
		gas = b.cfg.DefaultGas
	}
	if gas > b.cfg.MaxGas {
		return domain.TransactionRequest{}, fmt.Errorf("%w: gas %d exceeds the limit of %d", domain.ErrValueOutOfRange, gas, b.cfg.MaxGas)
	}

	if b.createsAsset(params) && payable < b.cfg.AssetCreationDeposit {
		payable = b.cfg.AssetCreationDeposit
	}

	var callData []byte
	if b.encoder != nil {
		callData, err = b.encoder.EncodeCall(params)
		if err != nil {
			return domain.TransactionRequest{}, fmt.Errorf("encode %s call: %w", params.Function, err)
		}
	}

	list := params
	return domain.TransactionRequest{
		Kind:          domain.TransactionContractCall,
		TargetID:      target,
		Function:      params.Function,
		Parameters:    &list,
		CallData:      callData,
		GasLimit:      gas,
		MaxFee:        b.cfg.MaxFee,
		PayableAmount: payable,
	}, nil
}

// BuildTokenAssociation builds an association of tokenID with accountID.
func (b *TransactionBuilder) BuildTokenAssociation(accountID, tokenID string) (domain.TransactionRequest, error) {
	if _, err := domain.ParseEntityID(accountID); err != nil {
		return domain.TransactionRequest{}, fmt.Errorf("parse account id: %w", err)
	}
	token, err := domain.ParseEntityID(tokenID)
	if err != nil {
		return domain.TransactionRequest{}, fmt.Errorf("parse token id: %w", err)
	}

	return domain.TransactionRequest{
		Kind:      domain.TransactionTokenAssociate,
		TargetID:  token,
		AccountID: domain.NormalizeAccountID(accountID),
		MaxFee:    b.cfg.MaxFee,
	}, nil
}

func (b *TransactionBuilder) createsAsset(params domain.ParameterList) bool {
	if params.Path != domain.PathSpec {
		return false
	}
	spec, ok := b.table.Lookup(params.Function)
	return ok && spec.CreatesAsset
}
