package domain

import (
	"fmt"
	"sort"
	"strings"
)

type FunctionName string

type ArgKind string

const (
	KindString        ArgKind = "string"
	KindInt64         ArgKind = "int64"
	KindUint32        ArgKind = "uint32"
	KindAddress       ArgKind = "address"
	KindBytesArray    ArgKind = "bytes[]"
	KindBool          ArgKind = "bool"
	KindUint256       ArgKind = "uint256"
	KindUint256Array  ArgKind = "uint256[]"
	KindStringOrBytes ArgKind = "string|bytes[]"
)

func (k ArgKind) Valid() bool {
	switch k {
	case KindString, KindInt64, KindUint32, KindAddress, KindBytesArray, KindBool, KindUint256, KindUint256Array, KindStringOrBytes:
		return true
	default:
		return false
	}
}

// WireKind is the on-wire kind a value of k is encoded as.
func (k ArgKind) WireKind() ArgKind {
	if k == KindStringOrBytes {
		return KindBytesArray
	}
	return k
}

const (
	FunctionCreateAsset        FunctionName = "createAsset"
	FunctionMintAsset          FunctionName = "mintAsset"
	FunctionUpdateAvailability FunctionName = "updateAvailability"
	FunctionTransferAsset      FunctionName = "transferAsset"
)

type ArgSpec struct {
	Name     string
	Kind     ArgKind
	Optional bool
}

type FunctionCallSpec struct {
	Name FunctionName
	Args []ArgSpec
	// CreatesAsset marks functions that create a token and must carry the
	// network's token-creation deposit as payable amount.
	CreatesAsset bool
}

func (s FunctionCallSpec) Validate() error {
	if strings.TrimSpace(string(s.Name)) == "" {
		return fmt.Errorf("function name is required")
	}

	seen := make(map[string]struct{}, len(s.Args))
	for i, arg := range s.Args {
		if strings.TrimSpace(arg.Name) == "" {
			return fmt.Errorf("%s: argument %d has no name", s.Name, i)
		}
		if !arg.Kind.Valid() {
			return fmt.Errorf("%s: argument %q has unsupported kind %q", s.Name, arg.Name, arg.Kind)
		}
		if _, ok := seen[arg.Name]; ok {
			return fmt.Errorf("%s: argument %q declared twice", s.Name, arg.Name)
		}
		seen[arg.Name] = struct{}{}
	}

	return nil
}

// Signature returns the Solidity-style signature used to derive the selector,
// e.g. "transferAsset(address,address,int64)".
func (s FunctionCallSpec) Signature() string {
	kinds := make([]string, 0, len(s.Args))
	for _, arg := range s.Args {
		kinds = append(kinds, string(arg.Kind.WireKind()))
	}
	return fmt.Sprintf("%s(%s)", s.Name, strings.Join(kinds, ","))
}

// FunctionTable is the closed set of functions the marshaller accepts.
type FunctionTable struct {
	specs map[FunctionName]FunctionCallSpec
}

func NewFunctionTable(specs ...FunctionCallSpec) (*FunctionTable, error) {
	table := &FunctionTable{specs: make(map[FunctionName]FunctionCallSpec, len(specs))}
	if err := table.Register(specs...); err != nil {
		return nil, err
	}
	return table, nil
}

func DefaultFunctionTable() *FunctionTable {
	table, err := NewFunctionTable(DefaultFunctionSpecs()...)
	if err != nil {
		panic(err)
	}
	return table
}

func DefaultFunctionSpecs() []FunctionCallSpec {
	return []FunctionCallSpec{
		{
			Name: FunctionCreateAsset,
			Args: []ArgSpec{
				{Name: "name", Kind: KindString},
				{Name: "symbol", Kind: KindString},
				{Name: "memo", Kind: KindString},
				{Name: "maxSupply", Kind: KindInt64},
				{Name: "autoRenewPeriod", Kind: KindUint32},
			},
			CreatesAsset: true,
		},
		{
			Name: FunctionMintAsset,
			Args: []ArgSpec{
				{Name: "tokenAddress", Kind: KindAddress},
				{Name: "metadata", Kind: KindStringOrBytes},
				{Name: "availableDates", Kind: KindUint256Array, Optional: true},
			},
		},
		{
			Name: FunctionUpdateAvailability,
			Args: []ArgSpec{
				{Name: "tokenAddress", Kind: KindAddress},
				{Name: "serialNumber", Kind: KindInt64},
				{Name: "date", Kind: KindUint256},
				{Name: "isBooked", Kind: KindBool},
			},
		},
		{
			Name: FunctionTransferAsset,
			Args: []ArgSpec{
				{Name: "tokenAddress", Kind: KindAddress},
				{Name: "newOwnerAddress", Kind: KindAddress},
				{Name: "serialNumber", Kind: KindInt64},
			},
		},
	}
}

// Register adds specs; a name that is already present is rejected, never replaced.
func (t *FunctionTable) Register(specs ...FunctionCallSpec) error {
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return err
		}
		if _, ok := t.specs[spec.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateFunction, spec.Name)
		}
		t.specs[spec.Name] = spec
	}
	return nil
}

func (t *FunctionTable) Lookup(name FunctionName) (FunctionCallSpec, bool) {
	spec, ok := t.specs[name]
	return spec, ok
}

func (t *FunctionTable) List() []FunctionCallSpec {
	specs := make([]FunctionCallSpec, 0, len(t.specs))
	for _, spec := range t.specs {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Name < specs[j].Name
	})
	return specs
}
