// SPDX-License-Identifier: MIT

package setting

import "github.com/shopspring/decimal"

// Normalized variants share the base numeric wire format and narrow the
// validity predicate to the closed interval [0, 1].

const normalizedDesc = "a number between 0 and 1 inclusive"

// NewNormFloat returns a 32-bit float setting constrained to [0, 1].
func NewNormFloat(def float32) *Value[float32] {
	return newValue(def, floatCodec,
		func(v float32) bool { return v >= 0 && v <= 1 }, normalizedDesc)
}

// NewNormDouble returns a 64-bit float setting constrained to [0, 1].
func NewNormDouble(def float64) *Value[float64] {
	return newValue(def, doubleCodec,
		func(v float64) bool { return v >= 0 && v <= 1 }, normalizedDesc)
}

// NewNormDecimal returns a decimal setting constrained to [0, 1].
func NewNormDecimal(def decimal.Decimal) *Value[decimal.Decimal] {
	one := decimal.New(1, 0)
	valid := func(d decimal.Decimal) bool {
		return validDecimal(d) && !d.IsNegative() && d.LessThanOrEqual(one)
	}
	return newValue(def, decimalCodec, valid, normalizedDesc)
}
