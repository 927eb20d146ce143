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

import "math"

// Unbounded marks BytesPerLine or BytesPerGroup as having no limit: no
// line wrap, or no within-line grouping, respectively. Being math.MaxInt,
// it also works as an ordinary operand in the size arithmetic of
// formattedStringLength.
const Unbounded = math.MaxInt

// BytesFormat governs how a byte sequence is rendered to, and parsed
// from, hexadecimal text. It is an immutable value: once built, every
// field is read-only and the value is safe to share across goroutines.
//
// The zero value is not a valid BytesFormat (BytesPerLine and
// BytesPerGroup must be at least 1); use NewBytesFormatBuilder or
// DefaultBytesFormat.
type BytesFormat struct {
	// BytesPerLine is the number of bytes after which a line break is
	// emitted (encoding) or expected (decoding). Unbounded disables
	// line wrapping.
	BytesPerLine int
	// BytesPerGroup is the number of bytes, within one line, after
	// which GroupSeparator is emitted or expected. Unbounded disables
	// grouping.
	BytesPerGroup int
	// GroupSeparator is written between groups on one line.
	GroupSeparator string
	// ByteSeparator is written between bytes within one group.
	ByteSeparator string
	// BytePrefix is written before each byte's two hex digits.
	BytePrefix string
	// ByteSuffix is written after each byte's two hex digits.
	ByteSuffix string
}

// DefaultBytesFormat is the zero-configuration BytesFormat: no prefixes,
// suffixes or byte separators, and no line wrapping or grouping. Its
// GroupSeparator is two spaces, which never appear since grouping is
// unbounded.
var DefaultBytesFormat = BytesFormat{
	BytesPerLine:   Unbounded,
	BytesPerGroup:  Unbounded,
	GroupSeparator: "  ",
}

// hasLineWrap reports whether lines are bounded.
func (bf *BytesFormat) hasLineWrap() bool {
	return bf.BytesPerLine != Unbounded
}

// hasGrouping reports whether groups are bounded.
func (bf *BytesFormat) hasGrouping() bool {
	return bf.BytesPerGroup != Unbounded
}

// isTrivial reports whether neither line wrapping nor grouping applies,
// which is what selects the byte-array fast paths.
func (bf *BytesFormat) isTrivial() bool {
	return !bf.hasLineWrap() && !bf.hasGrouping()
}

// NumberFormat governs how a fixed-width unsigned value is rendered to,
// and parsed from, hexadecimal text. It is an immutable value.
type NumberFormat struct {
	// Prefix is emitted before, and required before, the hex digits.
	Prefix string
	// Suffix is emitted after, and required after, the hex digits.
	Suffix string
	// RemoveLeadingZeros strips leading zero nibbles on format; it has
	// no effect on the minimum digit count accepted on parse (see the
	// open question recorded in DESIGN.md).
	RemoveLeadingZeros bool
}

// DefaultNumberFormat has empty prefix and suffix and does not strip
// leading zeros.
var DefaultNumberFormat = NumberFormat{}

// isDigitsOnly reports whether both Prefix and Suffix are empty, which is
// what selects the integer-codec fast path.
func (nf *NumberFormat) isDigitsOnly() bool {
	return nf.Prefix == "" && nf.Suffix == ""
}

// HexFormat is the complete, immutable configuration for both the
// byte-array codec and the integer codec: a BytesFormat, a NumberFormat,
// and a case selector shared by both.
type HexFormat struct {
	Bytes     BytesFormat
	Number    NumberFormat
	UpperCase bool
}

// Default is the configuration used when no HexFormat is supplied
// explicitly: all separators empty except BytesFormat.GroupSeparator
// (which never appears, since grouping is unbounded), all sizes
// unbounded, lowercase digits, and no prefix/suffix/zero-stripping on
// numbers.
var Default = HexFormat{
	Bytes:     DefaultBytesFormat,
	Number:    DefaultNumberFormat,
	UpperCase: false,
}

// resolve substitutes Default for a nil *HexFormat, so call sites can
// accept an optional format without a separate nil check at every use.
func resolve(f *HexFormat) *HexFormat {
	if f == nil {
		return &Default
	}
	return f
}
