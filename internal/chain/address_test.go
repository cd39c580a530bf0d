package chain

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alicePublicKey = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	aliceAddress   = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
)

func aliceAsInts(t *testing.T) []any {
	t.Helper()
	key := hexutil.MustDecode(alicePublicKey)
	out := make([]any, len(key))
	for i, b := range key {
		out[i] = int(b)
	}
	return out
}

func TestEncodeSS58(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		addr, err := EncodeSS58(hexutil.MustDecode(alicePublicKey), DefaultSS58Format)
		require.NoError(t, err)
		assert.Equal(t, aliceAddress, addr)
	})

	t.Run("SuccessFormatChangesAddress", func(t *testing.T) {
		key := hexutil.MustDecode(alicePublicKey)
		generic, err := EncodeSS58(key, DefaultSS58Format)
		require.NoError(t, err)
		polkadot, err := EncodeSS58(key, 0)
		require.NoError(t, err)
		assert.NotEqual(t, generic, polkadot)
	})

	t.Run("SuccessTwoBytePrefix", func(t *testing.T) {
		addr, err := EncodeSS58(hexutil.MustDecode(alicePublicKey), 255)
		require.NoError(t, err)
		assert.NotEmpty(t, addr)
	})

	t.Run("FailureReservedFormat", func(t *testing.T) {
		_, err := EncodeSS58(hexutil.MustDecode(alicePublicKey), 46)
		assert.ErrorIs(t, err, ErrAddress)
	})

	t.Run("FailureFormatOutOfRange", func(t *testing.T) {
		_, err := EncodeSS58(hexutil.MustDecode(alicePublicKey), 16384)
		assert.ErrorIs(t, err, ErrAddress)
	})

	t.Run("FailureBadKeyLength", func(t *testing.T) {
		_, err := EncodeSS58(make([]byte, 31), DefaultSS58Format)
		assert.ErrorIs(t, err, ErrAddress)
	})
}

func TestDecodeAddress(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		addr, err := DecodeAddress(aliceAsInts(t), DefaultSS58Format)
		require.NoError(t, err)
		assert.Equal(t, aliceAddress, addr)
	})

	t.Run("SuccessNestedShape", func(t *testing.T) {
		flat, err := DecodeAddress(aliceAsInts(t), DefaultSS58Format)
		require.NoError(t, err)
		nested, err := DecodeAddress([]any{aliceAsInts(t)}, DefaultSS58Format)
		require.NoError(t, err)
		assert.Equal(t, flat, nested)
	})

	t.Run("SuccessBytesAndHex", func(t *testing.T) {
		key := hexutil.MustDecode(alicePublicKey)

		fromBytes, err := DecodeAddress(key, DefaultSS58Format)
		require.NoError(t, err)
		assert.Equal(t, aliceAddress, fromBytes)

		fromWrappedBytes, err := DecodeAddress([]any{key}, DefaultSS58Format)
		require.NoError(t, err)
		assert.Equal(t, aliceAddress, fromWrappedBytes)

		fromHex, err := DecodeAddress(alicePublicKey, DefaultSS58Format)
		require.NoError(t, err)
		assert.Equal(t, aliceAddress, fromHex)
	})

	t.Run("FailureOnlyOneLevelUnwrapped", func(t *testing.T) {
		_, err := DecodeAddress([]any{[]any{aliceAsInts(t)}}, DefaultSS58Format)
		assert.ErrorIs(t, err, ErrAddress)
	})

	t.Run("FailureMalformedLength", func(t *testing.T) {
		_, err := DecodeAddress(aliceAsInts(t)[:20], DefaultSS58Format)
		assert.ErrorIs(t, err, ErrAddress)
	})

	t.Run("FailureElementOutOfByteRange", func(t *testing.T) {
		raw := aliceAsInts(t)
		raw[3] = 300
		_, err := DecodeAddress(raw, DefaultSS58Format)
		assert.ErrorIs(t, err, ErrAddress)
	})

	t.Run("FailureMissingAndEmpty", func(t *testing.T) {
		_, err := DecodeAddress(nil, DefaultSS58Format)
		assert.ErrorIs(t, err, ErrAddress)
		_, err = DecodeAddress([]any{}, DefaultSS58Format)
		assert.ErrorIs(t, err, ErrAddress)
	})
}
