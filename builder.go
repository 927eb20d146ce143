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

// BytesFormatBuilder builds a BytesFormat fluently. Unset fields take
// the values of DefaultBytesFormat. Unlike NumberFormatBuilder, the zero
// value of BytesFormatBuilder is not ready to use (its BytesPerLine and
// BytesPerGroup would be 0, not Unbounded); use NewBytesFormatBuilder.
type BytesFormatBuilder struct {
	f BytesFormat
}

// NewBytesFormatBuilder returns a builder seeded with DefaultBytesFormat.
func NewBytesFormatBuilder() *BytesFormatBuilder {
	return &BytesFormatBuilder{f: DefaultBytesFormat}
}

// WithBytesPerLine sets BytesPerLine. n must be at least 1, or Unbounded.
func (b *BytesFormatBuilder) WithBytesPerLine(n int) *BytesFormatBuilder {
	b.f.BytesPerLine = n
	return b
}

// WithBytesPerGroup sets BytesPerGroup. n must be at least 1, or Unbounded.
func (b *BytesFormatBuilder) WithBytesPerGroup(n int) *BytesFormatBuilder {
	b.f.BytesPerGroup = n
	return b
}

// WithGroupSeparator sets GroupSeparator.
func (b *BytesFormatBuilder) WithGroupSeparator(s string) *BytesFormatBuilder {
	b.f.GroupSeparator = s
	return b
}

// WithByteSeparator sets ByteSeparator.
func (b *BytesFormatBuilder) WithByteSeparator(s string) *BytesFormatBuilder {
	b.f.ByteSeparator = s
	return b
}

// WithBytePrefix sets BytePrefix.
func (b *BytesFormatBuilder) WithBytePrefix(s string) *BytesFormatBuilder {
	b.f.BytePrefix = s
	return b
}

// WithByteSuffix sets ByteSuffix.
func (b *BytesFormatBuilder) WithByteSuffix(s string) *BytesFormatBuilder {
	b.f.ByteSuffix = s
	return b
}

// Build returns the frozen BytesFormat value. The builder remains usable
// afterward; further With* calls do not affect values already built.
func (b *BytesFormatBuilder) Build() BytesFormat {
	return b.f
}

// NumberFormatBuilder builds a NumberFormat fluently. Unset fields take
// the values of DefaultNumberFormat. The zero value of
// NumberFormatBuilder is ready to use.
type NumberFormatBuilder struct {
	f NumberFormat
}

// NewNumberFormatBuilder returns a builder seeded with DefaultNumberFormat.
func NewNumberFormatBuilder() *NumberFormatBuilder {
	return &NumberFormatBuilder{f: DefaultNumberFormat}
}

// WithPrefix sets Prefix.
func (b *NumberFormatBuilder) WithPrefix(s string) *NumberFormatBuilder {
	b.f.Prefix = s
	return b
}

// WithSuffix sets Suffix.
func (b *NumberFormatBuilder) WithSuffix(s string) *NumberFormatBuilder {
	b.f.Suffix = s
	return b
}

// WithRemoveLeadingZeros sets RemoveLeadingZeros.
func (b *NumberFormatBuilder) WithRemoveLeadingZeros(v bool) *NumberFormatBuilder {
	b.f.RemoveLeadingZeros = v
	return b
}

// Build returns the frozen NumberFormat value.
func (b *NumberFormatBuilder) Build() NumberFormat {
	return b.f
}

// HexFormatBuilder builds a HexFormat fluently, seeded from Default. Its
// zero value is not ready to use, for the same reason as
// BytesFormatBuilder's (its embedded BytesFormat would have
// BytesPerLine and BytesPerGroup of 0, not Unbounded); use
// NewHexFormatBuilder.
type HexFormatBuilder struct {
	f HexFormat
}

// NewHexFormatBuilder returns a builder seeded with Default.
func NewHexFormatBuilder() *HexFormatBuilder {
	return &HexFormatBuilder{f: Default}
}

// WithBytes replaces the BytesFormat half of the configuration.
func (b *HexFormatBuilder) WithBytes(bf BytesFormat) *HexFormatBuilder {
	b.f.Bytes = bf
	return b
}

// WithNumber replaces the NumberFormat half of the configuration.
func (b *HexFormatBuilder) WithNumber(nf NumberFormat) *HexFormatBuilder {
	b.f.Number = nf
	return b
}

// WithUpperCase sets the shared case selector.
func (b *HexFormatBuilder) WithUpperCase(v bool) *HexFormatBuilder {
	b.f.UpperCase = v
	return b
}

// Build returns the frozen HexFormat value.
func (b *HexFormatBuilder) Build() HexFormat {
	return b.f
}
