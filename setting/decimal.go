// SPDX-License-Identifier: MIT

package setting

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// The decimal wire format is four little-endian 32-bit words: the low,
// middle and high words of a 96-bit unsigned coefficient, then a flags
// word carrying the scale in bits 16-23 (0-28) and the sign in bit 31.

const (
	decimalWidth = 16
	maxScale     = 28
	scaleShift   = 16
	signMask     = 0x80000000
)

var (
	bigTen         = big.NewInt(10)
	maxCoefficient = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1))
)

// decimalWords decomposes d into its wire words. ok is false when the
// coefficient needs more than 96 bits or the scale cannot be brought
// within range by dropping trailing zeros.
func decimalWords(d decimal.Decimal) (lo, mid, hi, flags uint32, ok bool) {
	coef := new(big.Int).Abs(d.Coefficient())
	scale := int64(0)
	if exp := int64(d.Exponent()); exp < 0 {
		scale = -exp
	} else if exp > 0 {
		coef.Mul(coef, new(big.Int).Exp(bigTen, big.NewInt(exp), nil))
	}

	rem := new(big.Int)
	for scale > maxScale {
		q := new(big.Int)
		q.QuoRem(coef, bigTen, rem)
		if rem.Sign() != 0 {
			return 0, 0, 0, 0, false
		}
		coef = q
		scale--
	}
	if coef.Cmp(maxCoefficient) > 0 {
		return 0, 0, 0, 0, false
	}

	buf := coef.FillBytes(make([]byte, 12))
	lo = binary.BigEndian.Uint32(buf[8:12])
	mid = binary.BigEndian.Uint32(buf[4:8])
	hi = binary.BigEndian.Uint32(buf[0:4])
	flags = uint32(scale) << scaleShift
	if d.Sign() < 0 {
		flags |= signMask
	}
	return lo, mid, hi, flags, true
}

func validDecimal(d decimal.Decimal) bool {
	_, _, _, _, ok := decimalWords(d)
	return ok
}

var decimalCodec = codec[decimal.Decimal]{
	width: decimalWidth,
	encode: func(v decimal.Decimal) []byte {
		// Encode runs only on values that passed validDecimal.
		lo, mid, hi, flags, _ := decimalWords(v)
		b := make([]byte, decimalWidth)
		binary.LittleEndian.PutUint32(b[0:4], lo)
		binary.LittleEndian.PutUint32(b[4:8], mid)
		binary.LittleEndian.PutUint32(b[8:12], hi)
		binary.LittleEndian.PutUint32(b[12:16], flags)
		return b
	},
	decode: func(b []byte) (decimal.Decimal, error) {
		lo := binary.LittleEndian.Uint32(b[0:4])
		mid := binary.LittleEndian.Uint32(b[4:8])
		hi := binary.LittleEndian.Uint32(b[8:12])
		flags := binary.LittleEndian.Uint32(b[12:16])

		scale := (flags >> scaleShift) & 0xFF
		if scale > maxScale {
			return decimal.Decimal{}, fmt.Errorf("decimal scale %d out of range", scale)
		}

		coef := new(big.Int).SetUint64(uint64(hi))
		coef.Lsh(coef, 32).Or(coef, new(big.Int).SetUint64(uint64(mid)))
		coef.Lsh(coef, 32).Or(coef, new(big.Int).SetUint64(uint64(lo)))
		if flags&signMask != 0 {
			coef.Neg(coef)
		}
		return decimal.NewFromBigInt(coef, -int32(scale)), nil
	},
}

// NewDecimal returns a 128-bit decimal setting with the given default.
func NewDecimal(def decimal.Decimal) *Value[decimal.Decimal] {
	return newValue(def, decimalCodec, validDecimal,
		"a decimal with at most 96 coefficient bits and a scale of 0-28")
}
