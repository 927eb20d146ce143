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

import "github.com/arlojacobsen/hexfmt/internal/errors"

// DecodeString parses s[start:end] as hexadecimal text under f, returning
// the decoded bytes. A nil f selects Default. Hex digits and every
// configured literal (prefixes, suffixes, separators) are matched
// case-insensitively. It validates 0 <= start <= end <= len(s), returning
// ErrOutOfRange or ErrInvalidRange on violation.
func DecodeString(s string, start, end int, f *HexFormat) ([]byte, error) {
	if err := checkRange(start, end, len(s)); err != nil {
		return nil, err
	}
	if start == end {
		return []byte{}, nil
	}
	// Bound every helper's reads at end; indices stay relative to s.
	s = s[:end]
	f = resolve(f)
	bf := &f.Bytes
	maxSize, err := parsedByteArrayMaxSize(end-start, bf)
	if err != nil {
		return nil, errors.AutoWrap(err)
	}
	dst := make([]byte, maxSize)

	var n int
	if bf.isTrivial() {
		n, err = decodeTrivial(dst, s, start, end, bf)
	} else {
		n, err = decodeGeneral(dst, s, start, end, bf)
	}
	if err != nil {
		return nil, errors.AutoWrap(err)
	}
	return dst[:n], nil
}

// DecodeAllString is a convenience wrapper decoding the whole of s under
// Default.
func DecodeAllString(s string) ([]byte, error) {
	return DecodeString(s, 0, len(s), nil)
}

// matchLiteral reports whether lit occurs at s[pos:], compared ASCII-case
// insensitively, returning the position just past it.
func matchLiteral(s string, pos int, lit string) (newPos int, ok bool) {
	if len(lit) == 0 {
		return pos, true
	}
	if pos+len(lit) > len(s) {
		return pos, false
	}
	for i := 0; i < len(lit); i++ {
		a, b := s[pos+i], lit[i]
		if a != b && !(isASCIILetter(a) && isASCIILetter(b) && a^letterCaseDiff == b) {
			return pos, false
		}
	}
	return pos + len(lit), true
}

func isASCIILetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// consumeLineSeparator accepts CRLF, LF, or CR at s[pos:], per the
// tolerant line-break rule: decoding never requires the exact "\n" that
// encoding always emits.
func consumeLineSeparator(s string, pos int) (newPos int, ok bool) {
	if pos >= len(s) {
		return pos, false
	}
	if s[pos] == '\r' {
		if pos+1 < len(s) && s[pos+1] == '\n' {
			return pos + 2, true
		}
		return pos + 1, true
	}
	if s[pos] == '\n' {
		return pos + 1, true
	}
	return pos, false
}

// decodeTwoHexDigits reads the byte encoded by the two hex digits at
// s[pos:pos+2].
func decodeTwoHexDigits(s string, pos int) (b byte, newPos int, ok bool) {
	if pos+2 > len(s) {
		return 0, pos, false
	}
	hi, ok1 := nibbleAt(s[pos])
	lo, ok2 := nibbleAt(s[pos+1])
	if !ok1 || !ok2 {
		return 0, pos, false
	}
	return hi<<4 | lo, pos + 2, true
}

// decodeTrivial is the byte-array decoder's fast path: neither grouping
// nor line wrapping is configured, and the input's length is consistent
// with a fixed per-byte width, so every byte can be located by arithmetic
// instead of state tracking.
func decodeTrivial(dst []byte, s string, start, end int, bf *BytesFormat) (int, error) {
	l := end - start
	bs := len(bf.ByteSeparator)
	k := 2 + len(bf.BytePrefix) + len(bf.ByteSuffix) + bs
	if k <= bs {
		return decodeGeneral(dst, s, start, end, bf)
	}
	n := (l + bs) / k
	if n*k-bs != l || n == 0 {
		return decodeGeneral(dst, s, start, end, bf)
	}

	pos := start
	for i := 0; i < n; i++ {
		if i > 0 {
			var ok bool
			pos, ok = matchLiteral(s, pos, bf.ByteSeparator)
			if !ok {
				return decodeGeneral(dst, s, start, end, bf)
			}
		}
		var ok bool
		pos, ok = matchLiteral(s, pos, bf.BytePrefix)
		if !ok {
			return decodeGeneral(dst, s, start, end, bf)
		}
		var b byte
		b, pos, ok = decodeTwoHexDigits(s, pos)
		if !ok {
			return decodeGeneral(dst, s, start, end, bf)
		}
		pos, ok = matchLiteral(s, pos, bf.ByteSuffix)
		if !ok {
			return decodeGeneral(dst, s, start, end, bf)
		}
		dst[i] = b
	}
	if pos != end {
		return decodeGeneral(dst, s, start, end, bf)
	}
	return n, nil
}

// decodeGeneral is the byte-array decoder's general path: it mirrors
// encodeGeneral's per-line and per-group counters, consuming line
// separators, group separators, and byte separators at the positions the
// encoder would have emitted them.
func decodeGeneral(dst []byte, s string, start, end int, bf *BytesFormat) (int, error) {
	i := start
	byteIndex := 0
	indexInLine, indexInGroup := 0, 0
	for i < end {
		var ok bool
		switch {
		case indexInLine == bf.BytesPerLine:
			i, ok = consumeLineSeparator(s, i)
			if !ok {
				return 0, newFormatError(i, "a line separator", peek(s, i))
			}
			indexInLine, indexInGroup = 0, 0
		case indexInGroup == bf.BytesPerGroup:
			i, ok = matchLiteral(s, i, bf.GroupSeparator)
			if !ok {
				return 0, newFormatError(i, quote(bf.GroupSeparator), peek(s, i))
			}
			indexInGroup = 0
		case indexInGroup != 0:
			i, ok = matchLiteral(s, i, bf.ByteSeparator)
			if !ok {
				return 0, newFormatError(i, quote(bf.ByteSeparator), peek(s, i))
			}
		}
		indexInLine++
		indexInGroup++

		var ok2 bool
		i, ok2 = matchLiteral(s, i, bf.BytePrefix)
		if !ok2 {
			return 0, newFormatError(i, quote(bf.BytePrefix), peek(s, i))
		}
		var b byte
		b, i, ok2 = decodeTwoHexDigits(s, i)
		if !ok2 {
			return 0, newFormatError(i, "exactly 2 hex digits", peek(s, i))
		}
		dst[byteIndex] = b
		byteIndex++
		i, ok2 = matchLiteral(s, i, bf.ByteSuffix)
		if !ok2 {
			return 0, newFormatError(i, quote(bf.ByteSuffix), peek(s, i))
		}
	}
	return byteIndex, nil
}

// peek returns a short, safe-to-print preview of s starting at pos, for
// embedding in a FormatError.
func peek(s string, pos int) string {
	const maxLen = 16
	if pos >= len(s) {
		return ""
	}
	end := pos + maxLen
	if end > len(s) {
		end = len(s)
	}
	return s[pos:end]
}

func quote(lit string) string {
	if lit == "" {
		return `""`
	}
	return "\"" + lit + "\""
}
