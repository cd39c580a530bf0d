package layout

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wire builds SCALE bytes by hand for the tests.
type wire struct{ bytes.Buffer }

func (w *wire) compact(n uint64) *wire {
	switch {
	case n < 1<<6:
		w.WriteByte(byte(n << 2))
	case n < 1<<14:
		_ = binary.Write(w, binary.LittleEndian, uint16(n<<2|0b01))
	case n < 1<<30:
		_ = binary.Write(w, binary.LittleEndian, uint32(n<<2|0b10))
	default:
		var le [8]byte
		binary.LittleEndian.PutUint64(le[:], n)
		size := 8
		for size > 4 && le[size-1] == 0 {
			size--
		}
		w.WriteByte(byte((size-4)<<2 | 0b11))
		w.Write(le[:size])
	}
	return w
}

func (w *wire) le(v any) *wire {
	_ = binary.Write(w, binary.LittleEndian, v)
	return w
}

func (w *wire) raw(b ...byte) *wire {
	w.Write(b)
	return w
}

func (w *wire) u128(v uint64) *wire {
	return w.le(v).le(uint64(0))
}

func account(fill byte) []byte {
	return bytes.Repeat([]byte{fill}, 32)
}

func (w *wire) axon(ip uint64, port uint16) *wire {
	return w.le(uint64(100)).le(uint32(1)).u128(ip).le(port).raw(4, 4, 0, 0)
}

func (w *wire) neuron(uid uint64, stakes ...uint64) *wire {
	w.raw(account(1)...).raw(account(2)...)
	w.compact(uid).compact(7).raw(1)
	w.axon(16909060, 8091)
	w.le(uint64(0)).le(uint32(0)).u128(0).le(uint16(0)).raw(0)
	w.compact(uint64(len(stakes)))
	for i, s := range stakes {
		w.raw(account(byte(10 + i))...).compact(s)
	}
	// rank, emission, incentive, consensus, trust, validator_trust, dividends, last_update
	w.compact(0).compact(0).compact(500).compact(0).compact(65535).compact(32768).compact(0).compact(4242)
	w.raw(0)
	return w.compact(0)
}

func TestDecodeScalars(t *testing.T) {
	t.Run("fixed width", func(t *testing.T) {
		v, err := Decode(U16, []byte{0x34, 0x12})
		require.NoError(t, err)
		assert.Equal(t, uint64(0x1234), v)

		v, err = Decode(U32, []byte{1, 0, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), v)
	})

	t.Run("u128", func(t *testing.T) {
		w := new(wire).u128(16909060)
		v, err := Decode(U128, w.Bytes())
		require.NoError(t, err)
		assert.Equal(t, 0, big.NewInt(16909060).Cmp(v.(*big.Int)))
	})

	t.Run("compact modes", func(t *testing.T) {
		for _, n := range []uint64{0, 1, 63, 64, 16383, 16384, 1 << 29, 5_000_000_000} {
			v, err := Decode(Compact, new(wire).compact(n).Bytes())
			require.NoError(t, err, n)
			assert.Equal(t, n, v)
		}
	})

	t.Run("bool", func(t *testing.T) {
		v, err := Decode(Bool, []byte{1})
		require.NoError(t, err)
		assert.Equal(t, true, v)
	})

	t.Run("empty bytes at end of input", func(t *testing.T) {
		v, err := Decode(Bytes, []byte{0})
		require.NoError(t, err)
		assert.Equal(t, []byte{}, v)
	})
}

func TestDecodeComposites(t *testing.T) {
	t.Run("option", func(t *testing.T) {
		v, err := Decode(Option(U8), []byte{0})
		require.NoError(t, err)
		assert.Nil(t, v)

		v, err = Decode(Option(U8), []byte{1, 9})
		require.NoError(t, err)
		assert.Equal(t, uint64(9), v)

		_, err = Decode(Option(U8), []byte{2})
		assert.Error(t, err)
	})

	t.Run("vec of tuples", func(t *testing.T) {
		w := new(wire).compact(2)
		w.raw(account(1)...).compact(10)
		w.raw(account(2)...).compact(20)
		v, err := Decode(Vec(Tuple(AccountID, Compact)), w.Bytes())
		require.NoError(t, err)
		entries := v.([]any)
		require.Len(t, entries, 2)
		assert.Equal(t, []any{account(2), uint64(20)}, entries[1])
	})

	t.Run("neuron info lite", func(t *testing.T) {
		w := new(wire).compact(1).neuron(3, 1_000_000_000, 2_000_000_000)
		v, err := Decode(Vec(NeuronInfoLite), w.Bytes())
		require.NoError(t, err)

		entries := v.([]any)
		require.Len(t, entries, 1)
		neuron := entries[0].(map[string]any)
		assert.Equal(t, account(1), neuron["hotkey"])
		assert.Equal(t, uint64(3), neuron["uid"])
		assert.Equal(t, uint64(7), neuron["netuid"])
		assert.Equal(t, uint64(32768), neuron["validator_trust"])
		assert.Equal(t, uint64(4242), neuron["last_update"])
		assert.Len(t, neuron["stake"], 2)

		axon := neuron["axon_info"].(map[string]any)
		assert.Equal(t, uint64(8091), axon["port"])
		assert.Equal(t, uint64(4), axon["ip_type"])
		assert.Equal(t, 0, big.NewInt(16909060).Cmp(axon["ip"].(*big.Int)))
	})
}

func TestDecodeErrors(t *testing.T) {
	t.Run("trailing bytes", func(t *testing.T) {
		_, err := Decode(U8, []byte{1, 2})
		assert.ErrorIs(t, err, ErrTrailingBytes)
	})

	t.Run("truncated input reports path", func(t *testing.T) {
		w := new(wire).compact(1).neuron(3)
		raw := w.Bytes()[:70]
		_, err := Decode(Vec(NeuronInfoLite), raw)
		var le *Error
		require.ErrorAs(t, err, &le)
		assert.Contains(t, le.Path, "[0]")
	})

	t.Run("absurd length", func(t *testing.T) {
		_, err := Decode(Vec(U8), new(wire).compact(1<<29).Bytes())
		assert.Error(t, err)
	})
}

func TestEncode(t *testing.T) {
	t.Run("u16", func(t *testing.T) {
		b, err := Encode(U16, 7)
		require.NoError(t, err)
		assert.Equal(t, []byte{7, 0}, b)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := Encode(U16, 70000)
		assert.Error(t, err)
	})

	t.Run("compact", func(t *testing.T) {
		b, err := Encode(Compact, uint64(64))
		require.NoError(t, err)
		assert.Equal(t, new(wire).compact(64).Bytes(), b)
	})

	t.Run("u128", func(t *testing.T) {
		b, err := Encode(U128, new(big.Int).Lsh(big.NewInt(1), 64))
		require.NoError(t, err)
		assert.Equal(t, new(wire).le(uint64(0)).le(uint64(1)).Bytes(), b)

		_, err = Encode(U128, new(big.Int).Lsh(big.NewInt(1), 128))
		assert.Error(t, err)
	})

	t.Run("composites", func(t *testing.T) {
		b, err := Encode(Vec(Tuple(U8, Compact)), []any{[]any{1, 2}, []any{3, 4}})
		require.NoError(t, err)
		assert.Equal(t, new(wire).compact(2).raw(1).compact(2).raw(3).compact(4).Bytes(), b)

		b, err = Encode(Option(Bytes), []byte("ab"))
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 8, 'a', 'b'}, b)

		b, err = Encode(Option(Bytes), nil)
		require.NoError(t, err)
		assert.Equal(t, []byte{0}, b)
	})

	t.Run("missing struct fields are zero", func(t *testing.T) {
		b, err := Encode(AxonInfo, map[string]any{"port": 8091, "ip_type": 4})
		require.NoError(t, err)
		assert.Equal(t, new(wire).le(uint64(0)).le(uint32(0)).u128(0).le(uint16(8091)).raw(4, 0, 0, 0).Bytes(), b)
	})

	t.Run("wrong shape", func(t *testing.T) {
		_, err := Encode(Vec(U8), map[string]any{})
		assert.Error(t, err)

		_, err = Encode(Tuple(U8, U8), []any{1})
		assert.Error(t, err)

		_, err = Encode(AxonInfo, []any{})
		assert.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		raw := new(wire).neuron(3, 5, 6).Bytes()
		v, err := Decode(NeuronInfoLite, raw)
		require.NoError(t, err)

		b, err := Encode(NeuronInfoLite, v)
		require.NoError(t, err)
		assert.Equal(t, raw, b)
	})
}

func (w *wire) zeros(n int) *wire {
	for i := 0; i < n; i++ {
		w.compact(0)
	}
	return w
}

func (w *wire) pair(a, b uint64) *wire {
	return w.compact(2).compact(a).compact(b)
}

// metagraphWire is a two-neuron get_metagraph result, written field by field.
func metagraphWire() []byte {
	w := new(wire).raw(1)
	w.compact(3).compact(2).compact('s').compact('n').compact(0).raw(0).compact(0)
	w.raw(account(9)...).raw(account(8)...)
	// block, then tempo through subnet_volume
	w.compact(5000).zeros(13)
	w.u128(1 << 32)
	// rho through max_validators
	w.zeros(8)
	// num_uids, max_uids, burn, difficulty
	w.compact(2).compact(256).zeros(2)
	w.raw(1, 0)
	// immunity_period through serving_rate_limit
	w.zeros(10)
	w.raw(0).compact(0).raw(0).zeros(3)

	w.compact(2).raw(account(1)...).raw(account(2)...)
	w.compact(2).raw(account(3)...).raw(account(4)...)
	w.compact(2).raw(0, 0)
	w.compact(2).axon(16909060, 8091).axon(0, 0)
	w.compact(2).raw(1, 1)
	w.compact(2).raw(1, 0)

	w.pair(0, 0)       // pruning_score
	w.pair(4242, 4241) // last_update
	w.pair(0, 0).pair(0, 0)
	w.pair(500, 0) // incentives
	w.pair(0, 0).pair(0, 0).pair(0, 0)
	w.pair(10, 11) // block_at_registration
	w.pair(3_000_000_000, 0)
	w.pair(2_000_000_000, 0)
	w.pair(5_000_000_000, 0) // total_stake

	return w.compact(0).compact(0).Bytes()
}

func TestMetagraphWire(t *testing.T) {
	raw := metagraphWire()

	v, err := Decode(Option(Metagraph), raw)
	require.NoError(t, err)
	mg := v.(map[string]any)

	assert.Equal(t, uint64(3), mg["netuid"])
	assert.Equal(t, []any{uint64('s'), uint64('n')}, mg["name"])
	assert.Nil(t, mg["identity"])
	assert.Equal(t, account(9), mg["owner_hotkey"])
	assert.Equal(t, uint64(5000), mg["block"])
	assert.Equal(t, 0, big.NewInt(1<<32).Cmp(mg["moving_price"].(*big.Int)))
	assert.Equal(t, uint64(256), mg["max_uids"])
	assert.Equal(t, true, mg["registration_allowed"])
	assert.Equal(t, []any{account(1), account(2)}, mg["hotkeys"])
	assert.Equal(t, []any{nil, nil}, mg["identities"])
	assert.Equal(t, []any{true, false}, mg["validator_permit"])
	assert.Equal(t, []any{uint64(5_000_000_000), uint64(0)}, mg["total_stake"])
	assert.Empty(t, mg["alpha_dividends_per_hotkey"])

	axons := mg["axons"].([]any)
	require.Len(t, axons, 2)
	assert.Equal(t, uint64(8091), axons[0].(map[string]any)["port"])

	b, err := Encode(Option(Metagraph), mg)
	require.NoError(t, err)
	assert.Equal(t, raw, b)

	_, err = Decode(Option(Metagraph), raw[:len(raw)-1])
	assert.Error(t, err)
}
