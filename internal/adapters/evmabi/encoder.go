package evmabi

import (
	"fmt"
	"math/big"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Encoder produces Solidity ABI call data: a 4-byte selector followed by the
// packed arguments.
type Encoder struct{}

var _ ports.CallEncoder = (*Encoder)(nil)

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) EncodeCall(params domain.ParameterList) ([]byte, error) {
	method, err := Method(params)
	if err != nil {
		return nil, err
	}

	values := make([]any, 0, params.Len())
	for _, p := range params.Params() {
		value, err := abiValue(p)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", p.Name, err)
		}
		values = append(values, value)
	}

	packed, err := method.Inputs.Pack(values...)
	if err != nil {
		return nil, fmt.Errorf("pack %s arguments: %w", method.Sig, err)
	}

	data := make([]byte, 0, len(method.ID)+len(packed))
	data = append(data, method.ID...)
	return append(data, packed...), nil
}

// Method describes params as an ABI function so callers can decode call data.
func Method(params domain.ParameterList) (abi.Method, error) {
	if params.Function == "" {
		return abi.Method{}, fmt.Errorf("%w: parameter list has no function", domain.ErrUnknownFunction)
	}

	inputs := make(abi.Arguments, 0, params.Len())
	for i, p := range params.Params() {
		typ, err := abi.NewType(string(p.Kind.WireKind()), "", nil)
		if err != nil {
			return abi.Method{}, fmt.Errorf("abi type for %q: %w", p.Name, err)
		}
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		inputs = append(inputs, abi.Argument{Name: name, Type: typ})
	}

	name := string(params.Function)
	return abi.NewMethod(name, name, abi.Function, "nonpayable", false, false, inputs, nil), nil
}

func abiValue(p domain.Parameter) (any, error) {
	switch v := p.Value.(type) {
	case domain.Address:
		return common.BytesToAddress(v[:]), nil
	case string, int64, uint32, bool, [][]byte:
		return v, nil
	case *big.Int:
		if v == nil {
			return new(big.Int), nil
		}
		return v, nil
	case []*big.Int:
		if v == nil {
			return []*big.Int{}, nil
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %T has no ABI encoding", domain.ErrTypeMismatch, p.Value)
	}
}
