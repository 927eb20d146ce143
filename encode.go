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

import (
	"github.com/arlojacobsen/hexfmt/internal/constraints"
	"github.com/arlojacobsen/hexfmt/internal/errors"
)

// EncodeToString renders b[start:end] as hexadecimal text under f. A nil
// f selects Default. It validates 0 <= start <= end <= len(b), returning
// ErrOutOfRange or ErrInvalidRange on violation, and sizes its output
// buffer exactly once, by formattedStringLength; the returned string is a
// copy of that buffer.
//
// B may be instantiated with []byte or string (or any type with one of
// those as its underlying type), matching the teacher's generic
// Encode/EncodeToString over constraints.ByteString.
func EncodeToString[B constraints.ByteString](b B, start, end int, f *HexFormat) (string, error) {
	if err := checkRange(start, end, len(b)); err != nil {
		return "", err
	}
	if start == end {
		return "", nil
	}
	f = resolve(f)
	bf := &f.Bytes
	n := end - start
	size, err := formattedStringLength(n, bf)
	if err != nil {
		return "", errors.AutoWrap(err)
	}
	buf := make([]byte, size)
	if bf.isTrivial() {
		encodeTrivial(buf, b, start, end, bf, f.UpperCase)
	} else {
		encodeGeneral(buf, b, start, end, bf, f.UpperCase)
	}
	return string(buf), nil
}

// EncodeAllToString is a convenience wrapper encoding the whole of b
// under Default.
func EncodeAllToString[B constraints.ByteString](b B) (string, error) {
	return EncodeToString(b, 0, len(b), nil)
}

// encodeTrivial is the fast path used when neither line wrapping nor
// grouping is configured. It further specializes on whether byte
// prefix/suffix/separator are in play, per the spec's fast-path dispatch.
func encodeTrivial[B constraints.ByteString](dst []byte, src B, start, end int, bf *BytesFormat, upper bool) {
	table := digitTable(upper)
	switch {
	case bf.BytePrefix == "" && bf.ByteSuffix == "" && bf.ByteSeparator == "":
		i := 0
		for p := start; p < end; p++ {
			b := src[p]
			dst[i] = table[b>>4]
			dst[i+1] = table[b&0xF]
			i += 2
		}
	case bf.BytePrefix == "" && bf.ByteSuffix == "" && len(bf.ByteSeparator) == 1:
		sep := bf.ByteSeparator[0]
		i := 0
		for j, p := 0, start; p < end; j, p = j+1, p+1 {
			if j > 0 {
				dst[i] = sep
				i++
			}
			b := src[p]
			dst[i] = table[b>>4]
			dst[i+1] = table[b&0xF]
			i += 2
		}
	default:
		i := 0
		for j, p := 0, start; p < end; j, p = j+1, p+1 {
			if j > 0 {
				i += copy(dst[i:], bf.ByteSeparator)
			}
			i += copy(dst[i:], bf.BytePrefix)
			b := src[p]
			dst[i] = table[b>>4]
			dst[i+1] = table[b&0xF]
			i += 2
			i += copy(dst[i:], bf.ByteSuffix)
		}
	}
}

// encodeGeneral is the byte-array encoder's general path: it honors
// grouping and line wrapping via two counters that count bytes up to
// BytesPerLine and BytesPerGroup, matching the
// per-byte state machine bit for bit.
func encodeGeneral[B constraints.ByteString](dst []byte, src B, start, end int, bf *BytesFormat, upper bool) {
	table := digitTable(upper)
	i := 0
	indexInLine, indexInGroup := 0, 0
	for p := start; p < end; p++ {
		b := src[p]
		switch {
		case indexInLine == bf.BytesPerLine:
			dst[i] = '\n'
			i++
			indexInLine, indexInGroup = 0, 0
		case indexInGroup == bf.BytesPerGroup:
			i += copy(dst[i:], bf.GroupSeparator)
			indexInGroup = 0
		case indexInGroup != 0:
			i += copy(dst[i:], bf.ByteSeparator)
		}
		i += copy(dst[i:], bf.BytePrefix)
		dst[i] = table[b>>4]
		dst[i+1] = table[b&0xF]
		i += 2
		i += copy(dst[i:], bf.ByteSuffix)
		indexInLine++
		indexInGroup++
	}
}
