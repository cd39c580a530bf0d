package chain

// RaoPerTao is the number of base units in one display unit.
const RaoPerTao = 1_000_000_000

const u16Max = 65535.0

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NormalizeU16 maps a u16 fraction of one onto [0, 1].
func NormalizeU16(x uint16) float64 {
	return float64(x) / u16Max
}

// RaoToTao converts a base unit amount to display units. Float input is
// truncated to a whole number of rao first.
func RaoToTao[T number](amount T) float64 {
	return float64(int64(amount)) / RaoPerTao
}
