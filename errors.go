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
	"fmt"

	"github.com/arlojacobsen/hexfmt/internal/errors"
)

// ErrOutOfRange is returned (wrapped) when startIndex < 0 or
// endIndex > length of the input.
var ErrOutOfRange = errors.New("hexfmt: index out of range")

// ErrInvalidRange is returned (wrapped) when startIndex > endIndex.
var ErrInvalidRange = errors.New("hexfmt: start index greater than end index")

// ErrCapacityExceeded is returned (wrapped) when the computed output
// length would exceed the maximum representable int.
var ErrCapacityExceeded = errors.New("hexfmt: output length exceeds capacity")

// FormatError reports why a parse (decode) operation failed. It names the
// index at which the failure was detected, what was expected there, and
// the actual substring observed, so a caller can produce an actionable
// message without re-deriving the format.
type FormatError struct {
	// Index is the offset, relative to the start of the original input,
	// at which the mismatch was detected.
	Index int
	// Expected describes what the parser required at Index.
	Expected string
	// Actual is the substring the parser found at Index instead (it may
	// be shorter than Expected's length if the input ran out).
	Actual string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format at index %d: expected %s, got %q", e.Index, e.Expected, e.Actual)
}

// Is reports whether target is also a *FormatError, so that
// errors.Is(err, new(FormatError)) style sentinel checks work without
// callers comparing fields.
func (e *FormatError) Is(target error) bool {
	_, ok := target.(*FormatError)
	return ok
}

func newFormatError(index int, expected, actual string) error {
	return errors.AutoWrap(&FormatError{Index: index, Expected: expected, Actual: actual})
}

func outOfRange() error {
	return errors.AutoWrap(ErrOutOfRange)
}

func invalidRange() error {
	return errors.AutoWrap(ErrInvalidRange)
}

func capacityExceeded() error {
	return errors.AutoWrap(ErrCapacityExceeded)
}

// checkRange validates 0 <= start <= end <= length, returning the
// OutOfRange/InvalidRange error hexfmt surfaces for bad indices.
func checkRange(start, end, length int) error {
	if start > end {
		return invalidRange()
	}
	if start < 0 || end > length {
		return outOfRange()
	}
	return nil
}
