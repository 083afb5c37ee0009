package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// MarshalPath records how a parameter list was produced.
type MarshalPath string

const (
	// PathSpec lists come from an explicit FunctionCallSpec.
	PathSpec MarshalPath = "spec"
	// PathDynamic lists were classified from runtime value types only.
	PathDynamic MarshalPath = "dynamic"
)

// Parameter is one typed contract-call argument. Value holds the canonical Go
// representation of Kind:
//
//	string    -> string
//	int64     -> int64
//	uint32    -> uint32
//	address   -> Address
//	bytes[]   -> [][]byte
//	bool      -> bool
//	uint256   -> *big.Int
//	uint256[] -> []*big.Int
type Parameter struct {
	Name  string
	Kind  ArgKind
	Value any
}

func (p Parameter) String() string {
	switch v := p.Value.(type) {
	case [][]byte:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, fmt.Sprintf("%q", item))
		}
		return fmt.Sprintf("%s [%s]", p.Kind, strings.Join(items, ", "))
	case []*big.Int:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, item.String())
		}
		return fmt.Sprintf("%s [%s]", p.Kind, strings.Join(items, ", "))
	default:
		return fmt.Sprintf("%s %v", p.Kind, v)
	}
}

// ParameterList is immutable once returned by the marshaller.
type ParameterList struct {
	Function FunctionName
	Path     MarshalPath
	params   []Parameter
}

func NewParameterList(function FunctionName, path MarshalPath, params []Parameter) ParameterList {
	copied := make([]Parameter, len(params))
	copy(copied, params)
	return ParameterList{Function: function, Path: path, params: copied}
}

func (l ParameterList) Len() int {
	return len(l.params)
}

func (l ParameterList) At(i int) Parameter {
	return l.params[i]
}

// Params returns a copy of the parameters in declared order.
func (l ParameterList) Params() []Parameter {
	copied := make([]Parameter, len(l.params))
	copy(copied, l.params)
	return copied
}

// Kinds returns the wire kinds in order, e.g. for building a signature.
func (l ParameterList) Kinds() []ArgKind {
	kinds := make([]ArgKind, 0, len(l.params))
	for _, p := range l.params {
		kinds = append(kinds, p.Kind)
	}
	return kinds
}

func (l ParameterList) Signature() string {
	kinds := make([]string, 0, len(l.params))
	for _, kind := range l.Kinds() {
		kinds = append(kinds, string(kind))
	}
	return fmt.Sprintf("%s(%s)", l.Function, strings.Join(kinds, ","))
}

func (l ParameterList) String() string {
	items := make([]string, 0, len(l.params))
	for _, p := range l.params {
		items = append(items, p.String())
	}
	return fmt.Sprintf("[%s]", strings.Join(items, ", "))
}
