// SPDX-License-Identifier: MIT

package setting

// Bool wire format is a single byte: 0x00 for false, 0xFF for true. The
// 0xFF sentinel is kept for compatibility with existing store files.
// Decoding accepts any nonzero byte as true.
var boolCodec = codec[bool]{
	width: 1,
	encode: func(v bool) []byte {
		if v {
			return []byte{0xFF}
		}
		return []byte{0x00}
	},
	decode: func(b []byte) (bool, error) {
		return b[0] != 0, nil
	},
}

// NewBool returns a bool setting with the given default.
func NewBool(def bool) *Value[bool] {
	return newValue(def, boolCodec, anyValue[bool], "true or false")
}
