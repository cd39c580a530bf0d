package nodes

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/spf13/cast"
)

var (
	errMissing  = errors.New("missing")
	errNegative = errors.New("negative value")
)

// Runtime-call results arrive as generic trees. These helpers read them
// without caring whether a number is a uint64, a float, a *big.Int or a
// json.Number.

func asMap(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected object, got %T", v)
	}
	return m, nil
}

func asSlice(v any) ([]any, error) {
	switch s := v.(type) {
	case []any:
		return s, nil
	case nil:
		return nil, errMissing
	case []byte:
		return nil, fmt.Errorf("expected sequence, got bytes")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected sequence, got %T", v)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

func field(m map[string]any, key string) (any, error) {
	v, ok := m[key]
	if !ok {
		return nil, errMissing
	}
	return v, nil
}

func at(s []any, i int) (any, error) {
	if i >= len(s) {
		return nil, fmt.Errorf("index %d out of range for length %d", i, len(s))
	}
	return s[i], nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, errMissing
	case *big.Int:
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, nil
	}
	return cast.ToFloat64E(v)
}

func toNonNegativeFloat(v any) (float64, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	if f < 0 || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %v", errNegative, f)
	}
	return f, nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case nil:
		return 0, errMissing
	case *big.Int:
		if !n.IsInt64() {
			return 0, fmt.Errorf("%v overflows int64", n)
		}
		return n.Int64(), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", n)
		}
		return int64(n), nil
	}
	return cast.ToInt64E(v)
}

func toInt(v any) (int, error) {
	n, err := toInt64(v)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func toUint16(v any) (uint16, error) {
	n, err := toInt64(v)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > math.MaxUint16 {
		return 0, fmt.Errorf("%d out of u16 range", n)
	}
	return uint16(n), nil
}

func toBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case nil:
		return nil, errMissing
	case *big.Int:
		return n, nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case string:
		b, ok := new(big.Int).SetString(n, 0)
		if !ok {
			return nil, fmt.Errorf("not an integer: %q", n)
		}
		return b, nil
	}
	n, err := toInt64(v)
	if err != nil {
		return nil, err
	}
	return big.NewInt(n), nil
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case *big.Int:
		return s.String()
	}
	return cast.ToString(v)
}
