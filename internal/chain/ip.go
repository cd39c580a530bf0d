package chain

import (
	"fmt"
	"math/big"
	"net/netip"
)

var (
	maxIPv4 = new(big.Int).SetUint64(0xffffffff)
	maxIPv6 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

// IPFromInt renders an address packed into an integer. Values that fit in 32
// bits are IPv4, anything up to 128 bits is IPv6.
func IPFromInt(v *big.Int) (string, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(maxIPv6) > 0 {
		return "", fmt.Errorf("ip value out of range: %v", v)
	}

	var buf [16]byte
	v.FillBytes(buf[:])

	if v.Cmp(maxIPv4) <= 0 {
		return netip.AddrFrom4([4]byte(buf[12:])).String(), nil
	}
	return netip.AddrFrom16(buf).String(), nil
}
