package primitives

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField             = errors.New("missing field")
	ErrInvalidNumericConversion = errors.New("invalid numeric conversion")
	ErrUnsupportedTxType        = errors.New("unsupported transaction type")
)

// MissingFieldError reports a field the target protocol variant mandates but
// the source record left out.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s missing", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InvalidNumericConversionError reports a value that does not fit the
// fixed-width destination of Field.
type InvalidNumericConversionError struct {
	Field string
	Value string // decimal
	Bits  int
}

func (e *InvalidNumericConversionError) Error() string {
	return fmt.Sprintf("invalid %s: value %s overflows %d-bit integer", e.Field, e.Value, e.Bits)
}

func (e *InvalidNumericConversionError) Is(target error) bool {
	return target == ErrInvalidNumericConversion
}

// UnsupportedTxTypeError carries a transaction type discriminant outside of
// legacy, EIP-2930 and EIP-1559.
type UnsupportedTxTypeError struct {
	Type uint64
}

func (e *UnsupportedTxTypeError) Error() string {
	return fmt.Sprintf("unsupported transaction type %#x", e.Type)
}

func (e *UnsupportedTxTypeError) Is(target error) bool {
	return target == ErrUnsupportedTxType
}
