package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const AddressLength = 20

// Address is a 20-byte contract-level address. Entity ids map onto it in
// long-zero form; EVM aliases are kept verbatim.
type Address [AddressLength]byte

// ParseAddress accepts either shard.realm.num or a 0x-prefixed 40 hex digit alias.
func ParseAddress(raw string) (Address, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		decoded, err := hexutil.Decode(trimmed)
		if err != nil {
			return Address{}, fmt.Errorf("%w: %q: %v", ErrInvalidIdentifier, raw, err)
		}
		if len(decoded) != AddressLength {
			return Address{}, fmt.Errorf("%w: %q must be %d bytes", ErrInvalidIdentifier, raw, AddressLength)
		}

		var a Address
		copy(a[:], decoded)
		return a, nil
	}

	id, err := ParseEntityID(trimmed)
	if err != nil {
		return Address{}, err
	}
	return id.Address(), nil
}

func MustParseAddress(raw string) Address {
	a, err := ParseAddress(raw)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) IsLongZero() bool {
	for _, b := range a[:12] {
		if b != 0 {
			return false
		}
	}
	return true
}

func (a Address) String() string {
	if a.IsLongZero() {
		var num uint64
		for _, b := range a[12:] {
			num = num<<8 | uint64(b)
		}
		return EntityID{Num: num}.String()
	}
	return a.Hex()
}

func (a Address) Hex() string {
	return hexutil.Encode(a[:])
}
