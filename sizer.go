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

// formattedStringLength computes the exact number of characters that
// encode will write for n bytes under bf. n must be at least 1.
//
// All intermediate arithmetic happens in int64 so that the multiplication
// of byte count by per-byte width cannot silently wrap before the final
// bounds check against the platform int range.
func formattedStringLength(n int, bf *BytesFormat) (int, error) {
	n64 := int64(n)
	bpl := int64(bf.BytesPerLine)
	bpg := int64(bf.BytesPerGroup)
	gs := int64(len(bf.GroupSeparator))
	bs := int64(len(bf.ByteSeparator))
	bp := int64(len(bf.BytePrefix))
	bx := int64(len(bf.ByteSuffix))

	lineSeparators := (n64 - 1) / bpl
	groupSepsPerLine := (bpl - 1) / bpg
	bytesInLastLine := n64 % bpl
	if bytesInLastLine == 0 {
		bytesInLastLine = bpl
	}
	groupSepsInLastLine := (bytesInLastLine - 1) / bpg
	groupSeparators := lineSeparators*groupSepsPerLine + groupSepsInLastLine
	byteSeparators := n64 - 1 - lineSeparators - groupSeparators

	total := lineSeparators + groupSeparators*gs + byteSeparators*bs + n64*(bp+2+bx)
	if total < 0 || total > math.MaxInt {
		return 0, capacityExceeded()
	}
	return int(total), nil
}

// parsedByteArrayMaxSize computes an upper bound on the number of bytes a
// string of length L can decode to under bf. L must be at least 1. The
// bound may overestimate (it is only ever used to size a buffer that is
// shrunk to the true count afterward); it must never underestimate.
func parsedByteArrayMaxSize(l int, bf *BytesFormat) (int, error) {
	bpl := int64(bf.BytesPerLine)
	bpg := int64(bf.BytesPerGroup)
	gs := int64(len(bf.GroupSeparator))
	bs := int64(len(bf.ByteSeparator))
	bp := int64(len(bf.BytePrefix))
	bx := int64(len(bf.ByteSuffix))
	charsPerByte := bp + 2 + bx

	l64 := int64(l)
	var wholeLines, wholeGroups int64

	if bf.hasLineWrap() {
		var charsPerLine int64
		if bpl <= bpg {
			charsPerLine = charsPerByte*bpl + bs*(bpl-1)
		} else {
			charsPerGroup := charsPerByte*bpg + bs*(bpg-1)
			g := bpl / bpg
			lastBytes := bpl % bpg
			charsPerLine = charsPerGroup*g + gs*(g-1)
			if lastBytes > 0 {
				charsPerLine += gs + charsPerByte*lastBytes + bs*(lastBytes-1)
			}
		}
		wholeLines = (l64 + 1) / (charsPerLine + 1)
		l64--
		if l64 < 0 {
			l64 = 0
		}
	}

	if bf.hasGrouping() {
		charsPerGroup := charsPerByte*bpg + bs*(bpg-1)
		divisor := charsPerGroup + gs
		if divisor > 0 {
			wholeGroups = l64 / divisor
			l64 -= wholeGroups * divisor
			if l64 < 0 {
				l64 = 0
			}
		}
	}

	var wholeBytes int64
	divisor := charsPerByte + bs
	if divisor > 0 {
		wholeBytes = l64 / divisor
		l64 -= wholeBytes * divisor
	}
	spare := int64(0)
	if l64 > 0 {
		spare = 1
	}

	total := wholeLines*bpl + wholeGroups*bpg + wholeBytes + spare
	if total < 0 || total > math.MaxInt {
		return 0, capacityExceeded()
	}
	return int(total), nil
}
