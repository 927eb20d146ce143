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

// Package hexfmt converts between raw bytes (or fixed-width unsigned
// integers) and hexadecimal text, under a configurable HexFormat: per-byte
// prefix/suffix, byte separators, grouping, line-wrapping, case selection,
// and, for numbers, optional leading-zero stripping with a textual
// prefix/suffix.
//
// Every exported operation is a whole-buffer, single-pass, synchronous
// call: there is no streaming/chunked variant, and every HexFormat value
// is immutable and safe to share across goroutines once built (see
// HexFormatBuilder). Encoding pre-sizes its output exactly once;
// decoding pre-sizes an upper bound and shrinks to the actual byte count.
//
// Decoding is tolerant of input case (for both hex digits and configured
// literals) and of line-separator style (LF, CRLF, or CR are all accepted
// regardless of what was emitted).
package hexfmt
