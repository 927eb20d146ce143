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

// Package constraints provides a handful of generic type constraints.
// The codec uses ByteString to stay agnostic of the concrete
// byte-sequence type (string or []byte) it reads; the integer type sets
// are declared alongside it and are not used by the codec.
package constraints

// SignedInteger is a constraint for signed integers.
// It matches any type whose underlying type is one of int, int8, int16,
// int32 (rune), or int64.
type SignedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInteger is a constraint for unsigned integers.
// It matches any type whose underlying type is one of uint, uint8 (byte),
// uint16, uint32, uint64, or uintptr.
type UnsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint for integers.
// It matches any type whose underlying type is one of int, int8, int16,
// int32 (rune), int64, uint, uint8 (byte), uint16, uint32, uint64, or uintptr.
type Integer interface {
	SignedInteger | UnsignedInteger
}

// ByteString is a constraint for byte sequences.
// It matches any type whose underlying type is []byte or string.
type ByteString interface {
	~[]byte | ~string
}
