package application

import (
	"fmt"
	"sort"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
)

// MarshalDynamic classifies arguments by their runtime type only. It is the
// weaker path: the resulting list is marked PathDynamic and nothing checks it
// against the deployed contract's signature. Keys are taken in order when
// given, otherwise sorted.
func (m *Marshaller) MarshalDynamic(function domain.FunctionName, args Args, order []string) (domain.ParameterList, error) {
	if function == "" {
		return domain.ParameterList{}, fmt.Errorf("%w: empty function name", domain.ErrUnknownFunction)
	}

	keys := order
	if len(keys) == 0 {
		keys = make([]string, 0, len(args))
		for key := range args {
			keys = append(keys, key)
		}
		sort.Strings(keys)
	}

	params := make([]domain.Parameter, 0, len(keys))
	for i, key := range keys {
		raw, ok := args[key]
		if !ok || raw == nil {
			return domain.ParameterList{}, &domain.ArgumentError{Function: function, Argument: key, Position: i, Err: domain.ErrMissingArgument}
		}

		param, err := m.classify(key, raw)
		if err != nil {
			return domain.ParameterList{}, &domain.ArgumentError{Function: function, Argument: key, Position: i, Kind: param.Kind, Err: err}
		}
		params = append(params, param)
	}

	return domain.NewParameterList(function, domain.PathDynamic, params), nil
}

func (m *Marshaller) classify(name string, raw any) (domain.Parameter, error) {
	param := domain.Parameter{Name: name}

	switch {
	case isNumber(raw):
		param.Kind = domain.KindInt64
		value, err := toInt64(raw)
		param.Value = value
		return param, err
	case isBytesArray(raw):
		param.Kind = domain.KindBytesArray
		value, err := toBytesArray(raw, m.limits)
		param.Value = value
		return param, err
	case isNumberArray(raw):
		param.Kind = domain.KindUint256Array
		value, err := toUint256Array(raw)
		param.Value = value
		return param, err
	}

	s, ok := raw.(string)
	if !ok {
		s = fmt.Sprint(raw)
	}
	param.Kind = domain.KindString
	param.Value = s
	if m.limits.MaxStringLen > 0 && len(s) > m.limits.MaxStringLen {
		return param, fmt.Errorf("%w: %d bytes exceed the limit of %d", domain.ErrValueTooLarge, len(s), m.limits.MaxStringLen)
	}
	return param, nil
}
