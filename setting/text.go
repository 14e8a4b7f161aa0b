// SPDX-License-Identifier: MIT

package setting

// Character data travels one byte per code point. Code points above 0xFF
// cannot be represented and fail validation rather than being truncated.

var charCodec = codec[rune]{
	width: 1,
	encode: func(v rune) []byte {
		return []byte{byte(v)}
	},
	decode: func(b []byte) (rune, error) {
		return rune(b[0]), nil
	},
}

func validChar(r rune) bool { return r > 0 && r <= 0xFF }

// NewChar returns a single-character setting with the given default.
func NewChar(def rune) *Value[rune] {
	return newValue(def, charCodec, validChar, "a non-NUL single-byte code point")
}

// stringCodec consumes the entire byte sequence; strings have no fixed
// width on the wire.
var stringCodec = codec[string]{
	width: -1,
	encode: func(v string) []byte {
		b := make([]byte, 0, len(v))
		for _, r := range v {
			b = append(b, byte(r))
		}
		return b
	},
	decode: func(b []byte) (string, error) {
		rs := make([]rune, len(b))
		for i, c := range b {
			rs[i] = rune(c)
		}
		return string(rs), nil
	},
}

func validString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > 0xFF {
			return false
		}
	}
	return true
}

// NewString returns a string setting with the given default.
func NewString(def string) *Value[string] {
	return newValue(def, stringCodec, validString, "a non-empty string of single-byte code points")
}
