package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const tinybarDecimals = 8

// Hbar is an amount of the network currency, held in tinybars (1 ℏ = 10^8 tinybars).
type Hbar int64

func NewHbar(whole int64) Hbar {
	return Hbar(decimal.New(whole, tinybarDecimals).IntPart())
}

// ParseHbar parses a decimal ℏ amount such as "2", "0.5" or "20.00000001".
// Amounts with more than eight fractional digits are rejected rather than rounded.
func ParseHbar(raw string) (Hbar, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "ℏ")
	amount, err := decimal.NewFromString(strings.TrimSpace(trimmed))
	if err != nil {
		return 0, fmt.Errorf("parse hbar amount %q: %w", raw, err)
	}
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w: hbar amount %q is negative", ErrValueOutOfRange, raw)
	}

	tinybars := amount.Shift(tinybarDecimals)
	if !tinybars.IsInteger() {
		return 0, fmt.Errorf("%w: hbar amount %q has more than %d decimals", ErrValueOutOfRange, raw, tinybarDecimals)
	}
	if !tinybars.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: hbar amount %q overflows int64 tinybars", ErrValueOutOfRange, raw)
	}

	return Hbar(tinybars.IntPart()), nil
}

func (h Hbar) Tinybars() int64 {
	return int64(h)
}

func (h Hbar) IsZero() bool {
	return h == 0
}

func (h Hbar) String() string {
	return decimal.New(int64(h), -tinybarDecimals).String() + " ℏ"
}
