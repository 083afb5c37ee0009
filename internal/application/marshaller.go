package application

import (
	"fmt"
	"math/big"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
)

// ProtocolLimits bounds the size of values the network accepts in a single call.
type ProtocolLimits struct {
	MaxStringLen     int
	MaxBytesLen      int
	MaxBytesArrayLen int
}

func DefaultProtocolLimits() ProtocolLimits {
	return ProtocolLimits{
		MaxStringLen:     100,
		MaxBytesLen:      100,
		MaxBytesArrayLen: 10,
	}
}

// Args are the loosely-typed arguments of a function call, keyed by name.
type Args map[string]any

type Marshaller struct {
	table   *domain.FunctionTable
	limits  ProtocolLimits
	dynamic bool
}

type MarshallerOption func(*Marshaller)

func WithProtocolLimits(limits ProtocolLimits) MarshallerOption {
	return func(m *Marshaller) {
		m.limits = limits
	}
}

// WithDynamicFallback lets Marshal classify arguments of functions that are
// absent from the table. Lists produced that way carry PathDynamic.
func WithDynamicFallback(enabled bool) MarshallerOption {
	return func(m *Marshaller) {
		m.dynamic = enabled
	}
}

func NewMarshaller(table *domain.FunctionTable, opts ...MarshallerOption) *Marshaller {
	if table == nil {
		table = domain.DefaultFunctionTable()
	}
	m := &Marshaller{table: table, limits: DefaultProtocolLimits()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Marshaller) Table() *domain.FunctionTable {
	return m.table
}

func (m *Marshaller) Lookup(function domain.FunctionName) (domain.FunctionCallSpec, bool) {
	return m.table.Lookup(function)
}

// Marshal converts args into the ordered parameter list declared for function.
// The first offending argument, in declared order, determines the error.
func (m *Marshaller) Marshal(function domain.FunctionName, args Args) (domain.ParameterList, error) {
	return m.MarshalOrdered(function, args, nil)
}

// MarshalOrdered is Marshal with an explicit key order for the dynamic
// fallback. order is ignored for functions present in the table.
func (m *Marshaller) MarshalOrdered(function domain.FunctionName, args Args, order []string) (domain.ParameterList, error) {
	spec, ok := m.table.Lookup(function)
	if !ok {
		if m.dynamic {
			return m.MarshalDynamic(function, args, order)
		}
		return domain.ParameterList{}, fmt.Errorf("%w: %s", domain.ErrUnknownFunction, function)
	}
	return m.marshalSpec(spec, args)
}

func (m *Marshaller) marshalSpec(spec domain.FunctionCallSpec, args Args) (domain.ParameterList, error) {
	params := make([]domain.Parameter, 0, len(spec.Args))
	for i, arg := range spec.Args {
		value, err := m.convertArg(arg, args)
		if err != nil {
			return domain.ParameterList{}, &domain.ArgumentError{
				Function: spec.Name,
				Argument: arg.Name,
				Position: i,
				Kind:     arg.Kind,
				Err:      err,
			}
		}
		params = append(params, domain.Parameter{Name: arg.Name, Kind: arg.Kind.WireKind(), Value: value})
	}
	return domain.NewParameterList(spec.Name, domain.PathSpec, params), nil
}

func (m *Marshaller) convertArg(arg domain.ArgSpec, args Args) (any, error) {
	raw, present := args[arg.Name]
	if !present || raw == nil {
		if arg.Optional {
			return emptyValue(arg.Kind), nil
		}
		return nil, domain.ErrMissingArgument
	}

	switch arg.Kind {
	case domain.KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, mismatch(raw, "string")
		}
		if m.limits.MaxStringLen > 0 && len(s) > m.limits.MaxStringLen {
			return nil, fmt.Errorf("%w: %d bytes exceed the limit of %d", domain.ErrValueTooLarge, len(s), m.limits.MaxStringLen)
		}
		return s, nil
	case domain.KindInt64:
		return toInt64(raw)
	case domain.KindUint32:
		return toUint32(raw)
	case domain.KindUint256:
		return toUint256(raw)
	case domain.KindUint256Array:
		return toUint256Array(raw)
	case domain.KindBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, mismatch(raw, "bool")
		}
		return b, nil
	case domain.KindAddress:
		return toAddress(raw)
	case domain.KindBytesArray:
		return toBytesArray(raw, m.limits)
	case domain.KindStringOrBytes:
		return m.convertStringOrBytes(raw)
	default:
		return nil, fmt.Errorf("%w: unsupported kind %q", domain.ErrTypeMismatch, arg.Kind)
	}
}

// convertStringOrBytes accepts a single string as a one-element byte array.
// An empty value is treated as missing.
func (m *Marshaller) convertStringOrBytes(raw any) ([][]byte, error) {
	if s, ok := raw.(string); ok {
		if s == "" {
			return nil, domain.ErrMissingArgument
		}
		raw = []string{s}
	}

	items, err := toBytesArray(raw, m.limits)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrMissingArgument
	}
	for _, item := range items {
		if len(item) == 0 {
			return nil, fmt.Errorf("%w: empty metadata entry", domain.ErrMissingArgument)
		}
	}
	return items, nil
}

func emptyValue(kind domain.ArgKind) any {
	switch kind {
	case domain.KindUint256Array:
		return []*big.Int{}
	case domain.KindBytesArray, domain.KindStringOrBytes:
		return [][]byte{}
	case domain.KindString:
		return ""
	case domain.KindInt64:
		return int64(0)
	case domain.KindUint32:
		return uint32(0)
	case domain.KindUint256:
		return new(big.Int)
	case domain.KindBool:
		return false
	default:
		return domain.Address{}
	}
}
