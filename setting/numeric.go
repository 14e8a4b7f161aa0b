// SPDX-License-Identifier: MIT

package setting

import (
	"encoding/binary"
	"math"
)

// Numeric wire formats are fixed-width little-endian. Every bit pattern of
// the underlying type is a legal value, so the numeric variants use an
// unconstrained validity predicate.

func anyValue[T any](T) bool { return true }

func fixed[T any](width int, put func([]byte, T), get func([]byte) T) codec[T] {
	return codec[T]{
		width: width,
		encode: func(v T) []byte {
			b := make([]byte, width)
			put(b, v)
			return b
		},
		decode: func(b []byte) (T, error) {
			return get(b), nil
		},
	}
}

var (
	byteCodec = fixed(1,
		func(b []byte, v uint8) { b[0] = v },
		func(b []byte) uint8 { return b[0] })

	shortCodec = fixed(2,
		func(b []byte, v int16) { binary.LittleEndian.PutUint16(b, uint16(v)) },
		func(b []byte) int16 { return int16(binary.LittleEndian.Uint16(b)) })

	ushortCodec = fixed(2,
		binary.LittleEndian.PutUint16,
		binary.LittleEndian.Uint16)

	intCodec = fixed(4,
		func(b []byte, v int32) { binary.LittleEndian.PutUint32(b, uint32(v)) },
		func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) })

	uintCodec = fixed(4,
		binary.LittleEndian.PutUint32,
		binary.LittleEndian.Uint32)

	longCodec = fixed(8,
		func(b []byte, v int64) { binary.LittleEndian.PutUint64(b, uint64(v)) },
		func(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) })

	ulongCodec = fixed(8,
		binary.LittleEndian.PutUint64,
		binary.LittleEndian.Uint64)

	floatCodec = fixed(4,
		func(b []byte, v float32) { binary.LittleEndian.PutUint32(b, math.Float32bits(v)) },
		func(b []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b)) })

	doubleCodec = fixed(8,
		func(b []byte, v float64) { binary.LittleEndian.PutUint64(b, math.Float64bits(v)) },
		func(b []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(b)) })
)

// NewByte returns a byte setting with the given default.
func NewByte(def uint8) *Value[uint8] {
	return newValue(def, byteCodec, anyValue[uint8], "any byte value")
}

// NewShort returns a 16-bit signed integer setting with the given default.
func NewShort(def int16) *Value[int16] {
	return newValue(def, shortCodec, anyValue[int16], "any 16-bit signed integer")
}

// NewUShort returns a 16-bit unsigned integer setting with the given default.
func NewUShort(def uint16) *Value[uint16] {
	return newValue(def, ushortCodec, anyValue[uint16], "any 16-bit unsigned integer")
}

// NewInt returns a 32-bit signed integer setting with the given default.
func NewInt(def int32) *Value[int32] {
	return newValue(def, intCodec, anyValue[int32], "any 32-bit signed integer")
}

// NewUInt returns a 32-bit unsigned integer setting with the given default.
func NewUInt(def uint32) *Value[uint32] {
	return newValue(def, uintCodec, anyValue[uint32], "any 32-bit unsigned integer")
}

// NewLong returns a 64-bit signed integer setting with the given default.
func NewLong(def int64) *Value[int64] {
	return newValue(def, longCodec, anyValue[int64], "any 64-bit signed integer")
}

// NewULong returns a 64-bit unsigned integer setting with the given default.
func NewULong(def uint64) *Value[uint64] {
	return newValue(def, ulongCodec, anyValue[uint64], "any 64-bit unsigned integer")
}

// NewFloat returns a 32-bit float setting with the given default.
func NewFloat(def float32) *Value[float32] {
	return newValue(def, floatCodec, anyValue[float32], "any 32-bit float")
}

// NewDouble returns a 64-bit float setting with the given default.
func NewDouble(def float64) *Value[float64] {
	return newValue(def, doubleCodec, anyValue[float64], "any 64-bit float")
}
