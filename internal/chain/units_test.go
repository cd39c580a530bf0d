package chain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeU16(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeU16(0))
	assert.Equal(t, 1.0, NormalizeU16(65535))
	assert.InDelta(t, 0.5, NormalizeU16(32768), 1e-4)

	prev := NormalizeU16(0)
	for x := 1; x <= 65535; x += 257 {
		cur := NormalizeU16(uint16(x))
		assert.Greater(t, cur, prev)
		prev = cur
	}
}

func TestRaoToTao(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		assert.Equal(t, 0.0, RaoToTao(0))
		assert.Equal(t, 1.0, RaoToTao(uint64(1_000_000_000)))
		assert.Equal(t, 5.0, RaoToTao(int64(5_000_000_000)))
	})

	t.Run("SuccessFloatsTruncatedFirst", func(t *testing.T) {
		assert.Equal(t, RaoToTao(1_500_000_000), RaoToTao(1_500_000_000.9))
		assert.Equal(t, 0.0, RaoToTao(0.99))
	})

	t.Run("SuccessLinear", func(t *testing.T) {
		for _, x := range []int64{1, 7, 123_456_789, 1_000_000_000, 21_000_000 * RaoPerTao} {
			assert.Equal(t, 2*RaoToTao(x), RaoToTao(2*x))
		}
	})
}

func TestIPFromInt(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ip, err := IPFromInt(big.NewInt(16909060))
		require.NoError(t, err)
		assert.Equal(t, "1.2.3.4", ip)
	})

	t.Run("SuccessZero", func(t *testing.T) {
		ip, err := IPFromInt(big.NewInt(0))
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0", ip)
	})

	t.Run("SuccessIPv6", func(t *testing.T) {
		v, ok := new(big.Int).SetString("20010db8000000000000000000000001", 16)
		require.True(t, ok)
		ip, err := IPFromInt(v)
		require.NoError(t, err)
		assert.Equal(t, "2001:db8::1", ip)
	})

	t.Run("FailureOutOfRange", func(t *testing.T) {
		_, err := IPFromInt(big.NewInt(-1))
		assert.Error(t, err)
		_, err = IPFromInt(new(big.Int).Lsh(big.NewInt(1), 128))
		assert.Error(t, err)
		_, err = IPFromInt(nil)
		assert.Error(t, err)
	})
}
