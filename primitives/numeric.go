package primitives

import (
	"math/bits"

	"github.com/holiman/uint256"
)

// U256 is the canonical 256-bit unsigned integer.
type U256 = uint256.Int

// Unsigned is the set of fixed-width targets a U256 can be narrowed into.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Narrow converts v into T. Values that do not fit are rejected with an
// InvalidNumericConversionError naming field; nothing is truncated or saturated.
func Narrow[T Unsigned](field string, v *U256) (T, error) {
	var zero T
	limit := uint64(^zero)
	if v == nil {
		return zero, &MissingFieldError{Field: field}
	}
	if !v.IsUint64() || v.Uint64() > limit {
		return zero, &InvalidNumericConversionError{
			Field: field,
			Value: v.Dec(),
			Bits:  bits.Len64(limit),
		}
	}
	return T(v.Uint64()), nil
}

// NarrowU64 is Narrow for 64-bit counts: nonces, chain ids, block numbers.
func NarrowU64(field string, v *U256) (uint64, error) {
	return Narrow[uint64](field, v)
}

// U256FromUint64 lifts a 64-bit quantity so it can go through Narrow.
func U256FromUint64(v uint64) *U256 {
	return uint256.NewInt(v)
}
