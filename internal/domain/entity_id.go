package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// EntityID is a ledger entity identifier in shard.realm.num form. Contracts,
// tokens and accounts share the format.
type EntityID struct {
	Shard uint32
	Realm uint64
	Num   uint64
}

func ParseEntityID(raw string) (EntityID, error) {
	trimmed := strings.TrimSpace(raw)
	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return EntityID{}, fmt.Errorf("%w: %q is not shard.realm.num", ErrInvalidIdentifier, raw)
	}

	shard, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return EntityID{}, fmt.Errorf("%w: shard of %q: %v", ErrInvalidIdentifier, raw, err)
	}
	realm, err := strconv.ParseUint(parts[1], 10, 63)
	if err != nil {
		return EntityID{}, fmt.Errorf("%w: realm of %q: %v", ErrInvalidIdentifier, raw, err)
	}
	num, err := strconv.ParseUint(parts[2], 10, 63)
	if err != nil {
		return EntityID{}, fmt.Errorf("%w: num of %q: %v", ErrInvalidIdentifier, raw, err)
	}

	return EntityID{Shard: uint32(shard), Realm: realm, Num: num}, nil
}

func MustParseEntityID(raw string) EntityID {
	id, err := ParseEntityID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

func (id EntityID) IsZero() bool {
	return id == EntityID{}
}

func (id EntityID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.Num)
}

// Address returns the long-zero EVM form: 4 bytes shard, 8 bytes realm, 8 bytes num.
func (id EntityID) Address() Address {
	var a Address
	putUint(a[0:4], uint64(id.Shard))
	putUint(a[4:12], id.Realm)
	putUint(a[12:20], id.Num)
	return a
}

func putUint(dst []byte, v uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

func (id EntityID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *EntityID) UnmarshalText(text []byte) error {
	parsed, err := ParseEntityID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
