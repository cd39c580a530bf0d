package chain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mr-tron/base58"
	"github.com/spf13/cast"
	"golang.org/x/crypto/blake2b"
)

// DefaultSS58Format is the address format used by the bittensor networks.
const DefaultSS58Format uint16 = 42

var ss58Prefix = []byte("SS58PRE")

// ErrAddress is returned for byte sequences that cannot be rendered as an address.
var ErrAddress = errors.New("invalid address")

// EncodeSS58 renders a public key as a checksummed SS58 address for the given format.
func EncodeSS58(key []byte, format uint16) (string, error) {
	if format > 16383 || format == 46 || format == 47 {
		return "", fmt.Errorf("%w: unsupported ss58 format %d", ErrAddress, format)
	}

	var checksumLen int
	switch len(key) {
	case 1, 2, 4, 8:
		checksumLen = 1
	case 32, 33:
		checksumLen = 2
	default:
		return "", fmt.Errorf("%w: unexpected key length %d", ErrAddress, len(key))
	}

	var prefix []byte
	if format < 64 {
		prefix = []byte{byte(format)}
	} else {
		prefix = []byte{
			byte((format&0x00fc)>>2) | 0x40,
			byte(format>>8) | byte((format&0x0003)<<6),
		}
	}

	payload := make([]byte, 0, len(prefix)+len(key)+checksumLen)
	payload = append(payload, prefix...)
	payload = append(payload, key...)

	hash, err := blake2b.New512(nil)
	if err != nil {
		return "", fmt.Errorf("failed to create blake2b hash: %w", err)
	}
	hash.Write(ss58Prefix)
	hash.Write(payload)
	checksum := hash.Sum(nil)

	payload = append(payload, checksum[:checksumLen]...)
	return base58.Encode(payload), nil
}

// DecodeAddress turns a raw account id into an SS58 address.
//
// The chain hands account ids over in two shapes: a flat sequence of bytes, or
// the same sequence wrapped in a single outer container. The shape is detected
// from the first element and one level of wrapping is removed.
func DecodeAddress(raw any, format uint16) (string, error) {
	key, err := addressBytes(raw, true)
	if err != nil {
		return "", err
	}
	return EncodeSS58(key, format)
}

func addressBytes(raw any, unwrap bool) ([]byte, error) {
	switch v := raw.(type) {
	case []byte:
		return v, nil
	case [32]byte:
		return v[:], nil
	case string:
		if !strings.HasPrefix(v, "0x") {
			return nil, fmt.Errorf("%w: expected 0x-prefixed hex, got %q", ErrAddress, v)
		}
		b, err := hexutil.Decode(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAddress, err)
		}
		return b, nil
	case []int:
		out := make([]byte, len(v))
		for i, n := range v {
			if n < 0 || n > 0xff {
				return nil, fmt.Errorf("%w: element %d out of byte range: %d", ErrAddress, i, n)
			}
			out[i] = byte(n)
		}
		return out, nil
	case []any:
		if len(v) == 0 {
			return nil, fmt.Errorf("%w: empty sequence", ErrAddress)
		}
		if isContainer(v[0]) {
			if !unwrap {
				return nil, fmt.Errorf("%w: nested more than one level", ErrAddress)
			}
			return addressBytes(v[0], false)
		}
		out := make([]byte, len(v))
		for i, el := range v {
			n, err := cast.ToUint64E(el)
			if err != nil || n > 0xff {
				return nil, fmt.Errorf("%w: element %d is not a byte: %v", ErrAddress, i, el)
			}
			out[i] = byte(n)
		}
		return out, nil
	case nil:
		return nil, fmt.Errorf("%w: missing", ErrAddress)
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrAddress, raw)
	}
}

func isContainer(v any) bool {
	switch v.(type) {
	case []any, []byte, []int, [32]byte:
		return true
	}
	return false
}
