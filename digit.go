// hexfmt.  A configurable hexadecimal codec for Go.
// Copyright (C) 2024-2026  The hexfmt Authors
//
// This file is part of hexfmt.
//
// hexfmt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package hexfmt

// lowerDigits and upperDigits are the two hex alphabets. Index i holds the
// ASCII character for nibble value i.
const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// nibbleOf holds, for every possible byte value interpreted as a code
// point below 256, the nibble it represents, or -1 if the byte is not an
// ASCII hex digit in either case. It is built once at program start and
// never mutated afterward, so concurrent reads need no synchronization.
var nibbleOf = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for v, c := range lowerDigits {
		t[c] = int8(v)
	}
	for v, c := range upperDigits {
		t[c] = int8(v)
	}
	return t
}()

// digitTable returns the 16-character alphabet to use for formatting,
// selected by upperCase.
func digitTable(upperCase bool) string {
	if upperCase {
		return upperDigits
	}
	return lowerDigits
}

// nibbleAt returns the nibble value of the hex digit c, and whether c is a
// valid ASCII hex digit at all. Non-ASCII code points and any byte at or
// above 256 are always invalid.
func nibbleAt(c byte) (nibble uint8, ok bool) {
	n := nibbleOf[c]
	if n < 0 {
		return 0, false
	}
	return uint8(n), true
}

// letterCaseDiff is the bit that differs between the lowercase and
// uppercase forms of an ASCII letter, used to fold case without a full
// Unicode case-folding routine.
const letterCaseDiff = 'a' ^ 'A'
