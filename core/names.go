// SPDX-License-Identifier: MIT

package core

// nameAlphabet is the fixed base-62 alphabet used for vertex display names.
const nameAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// VertexName returns the display name for vertex index id.
//
// Digits are emitted least-significant first, so single letters cover
// 0..61 and larger indices grow to the right:
//
//	0 → "A", 25 → "Z", 26 → "a", 61 → "9", 62 → "AB", 248 → "AE"
//
// A negative id has no name; VertexName returns "?" for it instead of
// failing, since names are display-only (use NewVertex to validate).
func VertexName(id int) string {
	if id < 0 {
		return "?"
	}

	base := len(nameAlphabet)
	if id < base {
		return nameAlphabet[id : id+1]
	}

	buf := make([]byte, 0, 4)
	for id >= base {
		buf = append(buf, nameAlphabet[id%base])
		id /= base
	}
	buf = append(buf, nameAlphabet[id])

	return string(buf)
}
