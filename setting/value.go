// SPDX-License-Identifier: MIT

package setting

import "fmt"

// codec fixes the wire format of a value type. A negative width means the
// codec consumes the entire byte sequence.
type codec[T any] struct {
	width  int
	encode func(T) []byte
	decode func([]byte) (T, error)
}

// Value is a typed setting backed by a fixed codec and a validity
// predicate. The zero Value is not usable; construct through the New*
// functions.
type Value[T any] struct {
	val   T
	def   T
	codec codec[T]
	valid func(T) bool
	desc  string
}

// newValue panics when the default fails the validity predicate; an
// invalid default is a programmer error in the catalog.
func newValue[T any](def T, c codec[T], valid func(T) bool, desc string) *Value[T] {
	if !valid(def) {
		panic(&ValidationError{Value: def, Description: desc})
	}
	return &Value[T]{val: def, def: def, codec: c, valid: valid, desc: desc}
}

// Value returns the current value.
func (v *Value[T]) Value() T { return v.val }

// Default returns the value the setting was constructed with.
func (v *Value[T]) Default() T { return v.def }

// Set replaces the current value. An invalid value is rejected with a
// ValidationError and the current value is kept.
func (v *Value[T]) Set(val T) error {
	if !v.valid(val) {
		return &ValidationError{Value: val, Description: v.desc}
	}
	v.val = val
	return nil
}

// String renders the current value for logs and tooling.
func (v *Value[T]) String() string { return fmt.Sprint(v.val) }

// IsValid implements Setting.
func (v *Value[T]) IsValid() bool { return v.valid(v.val) }

// ValidationDescription implements Setting.
func (v *Value[T]) ValidationDescription() string { return v.desc }

// Encode implements Setting.
func (v *Value[T]) Encode() ([]byte, error) {
	if !v.IsValid() {
		return nil, &ValidationError{Value: v.val, Description: v.desc}
	}
	return v.codec.encode(v.val), nil
}

// Decode implements Setting.
func (v *Value[T]) Decode(data []byte) error {
	if v.codec.width >= 0 && len(data) != v.codec.width {
		return &DecodeError{Want: v.codec.width, Got: len(data)}
	}
	val, err := v.codec.decode(data)
	if err != nil {
		return err
	}
	if !v.valid(val) {
		return &ValidationError{Value: val, Description: v.desc}
	}
	v.val = val
	return nil
}
