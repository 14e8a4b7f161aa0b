// SPDX-License-Identifier: MIT

package setting

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip encodes src and decodes the result into dst, then compares
// values.
func roundTrip[T comparable](t *testing.T, src, dst *Value[T]) {
	t.Helper()
	data, err := src.Encode()
	require.NoError(t, err)
	require.NoError(t, dst.Decode(data))
	assert.Equal(t, src.Value(), dst.Value())
}

func TestByteRoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 127, 255} {
		src := NewByte(v)
		roundTrip(t, src, NewByte(0))
	}
}

func TestShortRoundTrip(t *testing.T) {
	for _, v := range []int16{math.MinInt16, -1, 0, 1, math.MaxInt16} {
		roundTrip(t, NewShort(v), NewShort(0))
	}
}

func TestUShortRoundTrip(t *testing.T) {
	for _, v := range []uint16{0, 1, math.MaxUint16} {
		roundTrip(t, NewUShort(v), NewUShort(0))
	}
}

func TestIntRoundTrip(t *testing.T) {
	for _, v := range []int32{math.MinInt32, -1, 0, 1, math.MaxInt32} {
		roundTrip(t, NewInt(v), NewInt(0))
	}
}

func TestUIntRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, math.MaxUint32} {
		roundTrip(t, NewUInt(v), NewUInt(0))
	}
}

func TestLongRoundTrip(t *testing.T) {
	for _, v := range []int64{math.MinInt64, -1, 0, 1, math.MaxInt64} {
		roundTrip(t, NewLong(v), NewLong(0))
	}
}

func TestULongRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, math.MaxUint64} {
		roundTrip(t, NewULong(v), NewULong(0))
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 0.5, -1.25, math.MaxFloat32, math.SmallestNonzeroFloat32} {
		roundTrip(t, NewFloat(v), NewFloat(0))
	}
}

func TestDoubleRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.5, -1.25, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		roundTrip(t, NewDouble(v), NewDouble(0))
	}
}

func TestFloatWireBytes(t *testing.T) {
	data, err := NewFloat(0.5).Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x3F}, data)
}

func TestBoolSentinel(t *testing.T) {
	data, err := NewBool(true).Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF}, data)

	data, err = NewBool(false).Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, data)

	// Any nonzero byte decodes as true.
	for _, b := range []byte{0x01, 0x7F, 0xFF} {
		s := NewBool(false)
		require.NoError(t, s.Decode([]byte{b}))
		assert.True(t, s.Value())
	}
	s := NewBool(true)
	require.NoError(t, s.Decode([]byte{0x00}))
	assert.False(t, s.Value())
}

func TestBoolRoundTrip(t *testing.T) {
	roundTrip(t, NewBool(true), NewBool(false))
	roundTrip(t, NewBool(false), NewBool(true))
}

func TestCharRoundTrip(t *testing.T) {
	for _, v := range []rune{'A', ' ', 0x01, 0xFF, 'ÿ'} {
		roundTrip(t, NewChar(v), NewChar('x'))
	}
}

func TestCharValidation(t *testing.T) {
	s := NewChar('A')

	err := s.Set('€')
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, '€', verr.Value)
	assert.NotEmpty(t, verr.Description)
	assert.Equal(t, 'A', s.Value(), "failed Set must keep the old value")

	require.NoError(t, s.Set('ÿ'))
	assert.Equal(t, 'ÿ', s.Value())
}

func TestStringRoundTrip(t *testing.T) {
	for _, v := range []string{"main", "a", "héllo", "with space", "trailing\\backslash"} {
		roundTrip(t, NewString(v), NewString("-"))
	}
}

func TestStringValidation(t *testing.T) {
	s := NewString("main")

	var verr *ValidationError
	require.ErrorAs(t, s.Set(""), &verr)
	require.ErrorAs(t, s.Set("日本"), &verr)
	assert.Equal(t, "main", s.Value())
}

func TestStringConsumesAllBytes(t *testing.T) {
	s := NewString("-")
	require.NoError(t, s.Decode([]byte{'h', 0xE9, 'l', 'l', 'o'}))
	assert.Equal(t, "héllo", s.Value())
}

func TestDecodeWidthMismatch(t *testing.T) {
	tests := []struct {
		name string
		s    Setting
		want int
	}{
		{"byte", NewByte(0), 1},
		{"short", NewShort(0), 2},
		{"int", NewInt(0), 4},
		{"long", NewLong(0), 8},
		{"float", NewFloat(0), 4},
		{"double", NewDouble(0), 8},
		{"bool", NewBool(false), 1},
		{"char", NewChar('a'), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Decode([]byte{0x00, 0x01, 0x02})
			var derr *DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, tt.want, derr.Want)
			assert.Equal(t, 3, derr.Got)
		})
	}
}

func TestNormalizedValidity(t *testing.T) {
	s := NewNormFloat(0.5)

	for _, v := range []float32{-0.1, 1.1} {
		err := s.Set(v)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "Set(%v)", v)
		assert.Equal(t, v, verr.Value)
	}
	for _, v := range []float32{0, 1, 0.25} {
		require.NoError(t, s.Set(v), "Set(%v)", v)
	}

	d := NewNormDouble(0)
	require.Error(t, d.Set(1.0000001))
	require.NoError(t, d.Set(1))
}

func TestNormalizedDecodeRejectsOutOfRange(t *testing.T) {
	// A plain float accepts 2.0, the normalized variant must refuse the
	// same bytes.
	data, err := NewFloat(2).Encode()
	require.NoError(t, err)

	s := NewNormFloat(0.5)
	var verr *ValidationError
	require.ErrorAs(t, s.Decode(data), &verr)
	assert.Equal(t, float32(0.5), s.Value(), "failed decode must keep the old value")
}

func TestNormalizedRoundTrip(t *testing.T) {
	roundTrip(t, NewNormFloat(0), NewNormFloat(1))
	roundTrip(t, NewNormFloat(1), NewNormFloat(0))
	roundTrip(t, NewNormDouble(0.75), NewNormDouble(0))
}

func TestConstructorPanicsOnInvalidDefault(t *testing.T) {
	assert.Panics(t, func() { NewNormFloat(1.5) })
	assert.Panics(t, func() { NewNormDouble(-0.1) })
	assert.Panics(t, func() { NewString("") })
	assert.Panics(t, func() { NewChar(0) })
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewNormFloat(0.5).Set(1.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1.5")
	assert.Contains(t, err.Error(), normalizedDesc)
}

func TestDefaultSurvivesSet(t *testing.T) {
	s := NewInt(42)
	require.NoError(t, s.Set(7))
	assert.Equal(t, int32(7), s.Value())
	assert.Equal(t, int32(42), s.Default())
}

func TestErrorsAreDistinct(t *testing.T) {
	werr := NewInt(0).Decode([]byte{1})
	var verr *ValidationError
	assert.False(t, errors.As(werr, &verr))
}
