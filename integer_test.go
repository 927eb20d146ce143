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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerScenarioE(t *testing.T) {
	stripped := NewNumberFormatBuilder().WithRemoveLeadingZeros(true).Build()
	got := EncodeUint64ToString(0x3A, &stripped, false)
	require.Equal(t, "3a", got)

	got = EncodeUint64ToString(0x3A, nil, false)
	require.Equal(t, "000000000000003a", got)

	v, err := DecodeUint64String("deadc0dedeadc0d", 0, len("deadc0dedeadc0d"), nil)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0DEADC0DEDEADC0D), v)
}

func TestIntegerScenarioF(t *testing.T) {
	prefixed := NewNumberFormatBuilder().WithPrefix("0x").Build()
	v, err := DecodeUint32String("0xFF", 0, 4, &prefixed)
	require.NoError(t, err)
	require.Equal(t, uint32(255), v)

	_, err = DecodeUint32String("ff", 0, 2, &prefixed)
	require.Error(t, err)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
}

func TestIntegerRoundTrip(t *testing.T) {
	// Invariant 3: parse_w(format_w(v, C), C) == v, for every width.
	formats := []NumberFormat{
		DefaultNumberFormat,
		NewNumberFormatBuilder().WithRemoveLeadingZeros(true).Build(),
		NewNumberFormatBuilder().WithPrefix("0x").WithSuffix("h").Build(),
	}
	for _, nf := range formats {
		s8 := EncodeUint8ToString(0xA5, &nf, false)
		v8, err := DecodeUint8String(s8, 0, len(s8), &nf)
		require.NoError(t, err)
		require.Equal(t, uint8(0xA5), v8)

		s16 := EncodeUint16ToString(0xBEEF, &nf, false)
		v16, err := DecodeUint16String(s16, 0, len(s16), &nf)
		require.NoError(t, err)
		require.Equal(t, uint16(0xBEEF), v16)

		s32 := EncodeUint32ToString(0xDEADBEEF, &nf, false)
		v32, err := DecodeUint32String(s32, 0, len(s32), &nf)
		require.NoError(t, err)
		require.Equal(t, uint32(0xDEADBEEF), v32)

		s64 := EncodeUint64ToString(0x0DEADC0DEDEADC0D, &nf, false)
		v64, err := DecodeUint64String(s64, 0, len(s64), &nf)
		require.NoError(t, err)
		require.Equal(t, uint64(0x0DEADC0DEDEADC0D), v64)
	}
}

func TestIntegerLeadingZeroPolicy(t *testing.T) {
	// Invariant 7.
	stripped := NewNumberFormatBuilder().WithRemoveLeadingZeros(true).Build()
	require.Equal(t, "0", EncodeUint64ToString(0, &stripped, false))

	padded := DefaultNumberFormat
	got := EncodeUint64ToString(0, &padded, false)
	require.Len(t, got, 16)
	require.Equal(t, "0000000000000000", got)
}

func TestIntegerWidthBounds(t *testing.T) {
	// Invariant 8: parse_w rejects a digit count exceeding w/4.
	_, err := DecodeUint8String("abc", 0, 3, nil)
	require.Error(t, err)

	_, err = DecodeUint16String("abcde", 0, 5, nil)
	require.Error(t, err)
}

func TestIntegerUpperCase(t *testing.T) {
	got := EncodeUint8ToString(0xAB, nil, true)
	require.Equal(t, "AB", got)
}
