package console

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconsole/pkg/contypes"
)

func TestArgReader_ConsumesInOrder(t *testing.T) {
	r := NewArgReader([]contypes.Value{
		contypes.StringValue("hello"),
		contypes.NumberValue(3),
		contypes.BoolValue(true),
	})

	s, err := r.String()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	n, err := r.Int()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	b, err := r.Bool()
	require.NoError(t, err)
	assert.True(t, b)

	assert.Equal(t, 0, r.Remaining())
}

func TestArgReader_NotEnoughArgs(t *testing.T) {
	r := NewArgReader(nil)

	_, err := r.String()
	assert.ErrorAs(t, err, &contypes.NotEnoughArgsError{})
}

func TestArgReader_UnexpectedArgType(t *testing.T) {
	r := NewArgReader([]contypes.Value{contypes.StringValue("nope")})

	_, err := r.Float64()
	var typeErr contypes.UnexpectedArgTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, contypes.ValueTypeNumber, typeErr.Expected)
	assert.Equal(t, contypes.ValueTypeString, typeErr.Received)
}

func TestArgReader_IntegerRanges(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		read    func(r *ArgReader) error
		wantErr bool
	}{
		{"int8 in range", 127, func(r *ArgReader) error { _, err := r.Int8(); return err }, false},
		{"int8 overflow", 128, func(r *ArgReader) error { _, err := r.Int8(); return err }, true},
		{"int8 underflow", -129, func(r *ArgReader) error { _, err := r.Int8(); return err }, true},
		{"uint8 in range", 255, func(r *ArgReader) error { _, err := r.Uint8(); return err }, false},
		{"uint8 negative", -1, func(r *ArgReader) error { _, err := r.Uint8(); return err }, true},
		{"int16 overflow", 1 << 15, func(r *ArgReader) error { _, err := r.Int16(); return err }, true},
		{"int32 in range", math.MaxInt32, func(r *ArgReader) error { _, err := r.Int32(); return err }, false},
		{"int32 overflow", 1 << 31, func(r *ArgReader) error { _, err := r.Int32(); return err }, true},
		{"int64 huge", 1e300, func(r *ArgReader) error { _, err := r.Int64(); return err }, true},
		{"fractional int", 1.5, func(r *ArgReader) error { _, err := r.Int(); return err }, true},
		{"uint64 in range", 42, func(r *ArgReader) error { _, err := r.Uint64(); return err }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewArgReader([]contypes.Value{contypes.NumberValue(tt.value)})
			err := tt.read(r)
			if tt.wantErr {
				assert.ErrorAs(t, err, &contypes.ValueTooLargeError{})
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestArgReader_Float32Range(t *testing.T) {
	r := NewArgReader([]contypes.Value{contypes.NumberValue(1e300)})
	_, err := r.Float32()
	assert.ErrorAs(t, err, &contypes.ValueTooLargeError{})

	r = NewArgReader([]contypes.Value{contypes.NumberValue(1.5)})
	f, err := r.Float32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f)
}

func TestArgReader_OptionalAbsentIsSuccess(t *testing.T) {
	r := NewArgReader(nil)

	s, err := r.OptionalString()
	require.NoError(t, err)
	assert.Nil(t, s)

	n, err := r.OptionalInt64()
	require.NoError(t, err)
	assert.Nil(t, n)

	b, err := r.OptionalBool()
	require.NoError(t, err)
	assert.Nil(t, b)

	f, err := r.OptionalFloat64()
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestArgReader_OptionalPresent(t *testing.T) {
	r := NewArgReader([]contypes.Value{contypes.NumberValue(7)})

	n, err := r.OptionalInt()
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 7, *n)
}

func TestArgReader_OptionalPresentWrongTypeStillFails(t *testing.T) {
	// Optional means absence is fine; a present literal of the wrong type
	// is still a type mismatch.
	r := NewArgReader([]contypes.Value{contypes.StringValue("seven")})

	_, err := r.OptionalInt()
	assert.ErrorAs(t, err, &contypes.UnexpectedArgTypeError{})
}
