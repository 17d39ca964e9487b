// Package console implements the interactive console core: the session
// state machine (edit buffer, scrollback, bounded history ring), the typed
// argument binder and the per-tick command dispatcher.
package console

import (
	"math"

	"devconsole/pkg/contypes"
)

// ArgReader walks an argument list in order, converting each literal into
// the requested Go type. Conversion is pure; every method either returns the
// value or one of the bind errors from contypes. Optional variants treat an
// exhausted list as success and return nil.
type ArgReader struct {
	args []contypes.Value
	pos  int
}

// NewArgReader creates a reader positioned at the first argument.
func NewArgReader(args []contypes.Value) *ArgReader {
	return &ArgReader{args: args}
}

// Remaining reports how many arguments have not been consumed yet.
func (r *ArgReader) Remaining() int {
	return len(r.args) - r.pos
}

func (r *ArgReader) next(expected contypes.ValueType) (contypes.Value, error) {
	if r.pos >= len(r.args) {
		return contypes.Value{}, contypes.NotEnoughArgsError{}
	}
	v := r.args[r.pos]
	r.pos++
	if v.Type != expected {
		return contypes.Value{}, contypes.UnexpectedArgTypeError{Expected: expected, Received: v.Type}
	}
	return v, nil
}

// Bool consumes the next argument as a boolean.
func (r *ArgReader) Bool() (bool, error) {
	v, err := r.next(contypes.ValueTypeBool)
	if err != nil {
		return false, err
	}
	return v.Bool, nil
}

// String consumes the next argument as a string.
func (r *ArgReader) String() (string, error) {
	v, err := r.next(contypes.ValueTypeString)
	if err != nil {
		return "", err
	}
	return v.Str, nil
}

// Float64 consumes the next argument as a 64-bit float.
func (r *ArgReader) Float64() (float64, error) {
	v, err := r.next(contypes.ValueTypeNumber)
	if err != nil {
		return 0, err
	}
	return v.Number, nil
}

// Float32 consumes the next argument as a 32-bit float. Magnitudes beyond
// the float32 range fail with ValueTooLargeError.
func (r *ArgReader) Float32() (float32, error) {
	v, err := r.next(contypes.ValueTypeNumber)
	if err != nil {
		return 0, err
	}
	if math.Abs(v.Number) > math.MaxFloat32 {
		return 0, contypes.ValueTooLargeError{Value: v.Number, Target: "float32"}
	}
	return float32(v.Number), nil
}

// integer consumes the next argument as a whole number within [min, max).
// The exclusive upper bound is exactly representable as a float64 for every
// integer width, which keeps the range check precise.
func (r *ArgReader) integer(target string, min, max float64) (float64, error) {
	v, err := r.next(contypes.ValueTypeNumber)
	if err != nil {
		return 0, err
	}
	n := v.Number
	if n != math.Trunc(n) || n < min || n >= max {
		return 0, contypes.ValueTooLargeError{Value: n, Target: target}
	}
	return n, nil
}

// Int consumes the next argument as an int.
func (r *ArgReader) Int() (int, error) {
	n, err := r.integer("int", math.MinInt64, math.MaxInt64)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Int8 consumes the next argument as an int8.
func (r *ArgReader) Int8() (int8, error) {
	n, err := r.integer("int8", math.MinInt8, 1<<7)
	if err != nil {
		return 0, err
	}
	return int8(n), nil
}

// Int16 consumes the next argument as an int16.
func (r *ArgReader) Int16() (int16, error) {
	n, err := r.integer("int16", math.MinInt16, 1<<15)
	if err != nil {
		return 0, err
	}
	return int16(n), nil
}

// Int32 consumes the next argument as an int32.
func (r *ArgReader) Int32() (int32, error) {
	n, err := r.integer("int32", math.MinInt32, 1<<31)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

// Int64 consumes the next argument as an int64.
func (r *ArgReader) Int64() (int64, error) {
	n, err := r.integer("int64", math.MinInt64, math.MaxInt64)
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}

// Uint consumes the next argument as a uint.
func (r *ArgReader) Uint() (uint, error) {
	n, err := r.integer("uint", 0, 1<<64)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

// Uint8 consumes the next argument as a uint8.
func (r *ArgReader) Uint8() (uint8, error) {
	n, err := r.integer("uint8", 0, 1<<8)
	if err != nil {
		return 0, err
	}
	return uint8(n), nil
}

// Uint16 consumes the next argument as a uint16.
func (r *ArgReader) Uint16() (uint16, error) {
	n, err := r.integer("uint16", 0, 1<<16)
	if err != nil {
		return 0, err
	}
	return uint16(n), nil
}

// Uint32 consumes the next argument as a uint32.
func (r *ArgReader) Uint32() (uint32, error) {
	n, err := r.integer("uint32", 0, 1<<32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// Uint64 consumes the next argument as a uint64.
func (r *ArgReader) Uint64() (uint64, error) {
	n, err := r.integer("uint64", 0, 1<<64)
	if err != nil {
		return 0, err
	}
	return uint64(n), nil
}

// OptionalBool consumes the next argument as a boolean, or returns nil when
// the argument list is exhausted.
func (r *ArgReader) OptionalBool() (*bool, error) {
	if r.pos >= len(r.args) {
		return nil, nil
	}
	v, err := r.Bool()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OptionalString consumes the next argument as a string, or returns nil when
// the argument list is exhausted.
func (r *ArgReader) OptionalString() (*string, error) {
	if r.pos >= len(r.args) {
		return nil, nil
	}
	v, err := r.String()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OptionalFloat64 consumes the next argument as a 64-bit float, or returns
// nil when the argument list is exhausted.
func (r *ArgReader) OptionalFloat64() (*float64, error) {
	if r.pos >= len(r.args) {
		return nil, nil
	}
	v, err := r.Float64()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OptionalInt consumes the next argument as an int, or returns nil when the
// argument list is exhausted.
func (r *ArgReader) OptionalInt() (*int, error) {
	if r.pos >= len(r.args) {
		return nil, nil
	}
	v, err := r.Int()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OptionalInt64 consumes the next argument as an int64, or returns nil when
// the argument list is exhausted.
func (r *ArgReader) OptionalInt64() (*int64, error) {
	if r.pos >= len(r.args) {
		return nil, nil
	}
	v, err := r.Int64()
	if err != nil {
		return nil, err
	}
	return &v, nil
}
