// SPDX-License-Identifier: MIT

package store

import "strings"

// The store format is line-oriented: raw newlines or carriage returns in
// encoded value bytes would corrupt line structure, and literal backslashes
// must not be misread as escape sequences. Escape hides all three inside a
// single line; Unescape inverts it.

// Escape makes encoded value bytes safe to place on one text line. The
// backslash substitution runs first so the later ones cannot collide.
func Escape(data []byte) string {
	s := string(data)
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	return s
}

// Unescape is the exact inverse of Escape. An unknown escape sequence or a
// trailing bare backslash passes through unchanged; the store skips
// malformed input rather than failing on it.
func Unescape(text string) []byte {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '\\' || i+1 == len(text) {
			out = append(out, c)
			continue
		}
		i++
		switch text[i] {
		case '\\':
			out = append(out, '\\')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		default:
			out = append(out, '\\', text[i])
		}
	}
	return out
}
