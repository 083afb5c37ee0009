package application

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
)

var (
	maxUint32  = new(big.Int).SetUint64(math.MaxUint32)
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

func mismatch(v any, want string) error {
	return fmt.Errorf("%w: got %T, want %s", domain.ErrTypeMismatch, v, want)
}

// toBigInt accepts any integral number representation without losing precision.
func toBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case int:
		return big.NewInt(int64(n)), nil
	case int8:
		return big.NewInt(int64(n)), nil
	case int16:
		return big.NewInt(int64(n)), nil
	case int32:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case float32:
		return floatToBigInt(float64(n))
	case float64:
		return floatToBigInt(n)
	case json.Number:
		return numberToBigInt(n.String())
	case *big.Int:
		if n == nil {
			return nil, mismatch(v, "integer")
		}
		return new(big.Int).Set(n), nil
	case big.Int:
		return new(big.Int).Set(&n), nil
	default:
		return nil, mismatch(v, "integer")
	}
}

func floatToBigInt(f float64) (*big.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v is not a finite number", domain.ErrTypeMismatch, f)
	}
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%w: %v is not an integer", domain.ErrTypeMismatch, f)
	}
	i, _ := new(big.Float).SetFloat64(f).Int(nil)
	return i, nil
}

func numberToBigInt(s string) (*big.Int, error) {
	if i, ok := new(big.Int).SetString(s, 10); ok {
		return i, nil
	}
	f, _, err := big.ParseFloat(s, 10, 512, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", domain.ErrTypeMismatch, s)
	}
	if !f.IsInt() {
		return nil, fmt.Errorf("%w: %s is not an integer", domain.ErrTypeMismatch, s)
	}
	i, _ := f.Int(nil)
	return i, nil
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number, *big.Int, big.Int:
		return true
	default:
		return false
	}
}

func toInt64(v any) (int64, error) {
	i, err := toBigInt(v)
	if err != nil {
		return 0, err
	}
	if !i.IsInt64() {
		return 0, fmt.Errorf("%w: %s does not fit int64", domain.ErrValueOutOfRange, i)
	}
	return i.Int64(), nil
}

func toUint32(v any) (uint32, error) {
	i, err := toBigInt(v)
	if err != nil {
		return 0, err
	}
	if i.Sign() < 0 || i.Cmp(maxUint32) > 0 {
		return 0, fmt.Errorf("%w: %s does not fit uint32", domain.ErrValueOutOfRange, i)
	}
	return uint32(i.Uint64()), nil
}

func toUint256(v any) (*big.Int, error) {
	i, err := toBigInt(v)
	if err != nil {
		return nil, err
	}
	if i.Sign() < 0 || i.Cmp(maxUint256) > 0 {
		return nil, fmt.Errorf("%w: %s does not fit uint256", domain.ErrValueOutOfRange, i)
	}
	return i, nil
}

func toUint256Array(v any) ([]*big.Int, error) {
	items, ok := sliceItems(v)
	if !ok {
		return nil, mismatch(v, "array of unsigned integers")
	}
	result := make([]*big.Int, 0, len(items))
	for i, item := range items {
		n, err := toUint256(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		result = append(result, n)
	}
	return result, nil
}

func toAddress(v any) (domain.Address, error) {
	switch a := v.(type) {
	case string:
		return domain.ParseAddress(a)
	case domain.Address:
		return a, nil
	case domain.EntityID:
		return a.Address(), nil
	default:
		return domain.Address{}, mismatch(v, "address")
	}
}

func toBytesArray(v any, limits ProtocolLimits) ([][]byte, error) {
	if _, isBytes := v.([]byte); isBytes {
		return nil, mismatch(v, "array of byte strings")
	}
	items, ok := sliceItems(v)
	if !ok {
		return nil, mismatch(v, "array of byte strings")
	}
	if limits.MaxBytesArrayLen > 0 && len(items) > limits.MaxBytesArrayLen {
		return nil, fmt.Errorf("%w: %d entries exceed the limit of %d", domain.ErrValueTooLarge, len(items), limits.MaxBytesArrayLen)
	}

	result := make([][]byte, 0, len(items))
	for i, item := range items {
		var b []byte
		switch e := item.(type) {
		case []byte:
			b = append([]byte(nil), e...)
		case string:
			b = []byte(e)
		default:
			return nil, fmt.Errorf("element %d: %w", i, mismatch(item, "byte string"))
		}
		if limits.MaxBytesLen > 0 && len(b) > limits.MaxBytesLen {
			return nil, fmt.Errorf("element %d: %w: %d bytes exceed the limit of %d", i, domain.ErrValueTooLarge, len(b), limits.MaxBytesLen)
		}
		result = append(result, b)
	}
	return result, nil
}

func isBytesArray(v any) bool {
	switch items := v.(type) {
	case [][]byte:
		return true
	case []any:
		if len(items) == 0 {
			return false
		}
		for _, item := range items {
			if _, ok := item.([]byte); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isNumberArray(v any) bool {
	items, ok := sliceItems(v)
	if !ok || len(items) == 0 {
		return false
	}
	if _, isBytes := v.([]byte); isBytes {
		return false
	}
	for _, item := range items {
		if !isNumber(item) {
			return false
		}
	}
	return true
}

// sliceItems flattens any slice or array into its elements.
func sliceItems(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
