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

import "testing"

func TestDigitTable(t *testing.T) {
	if digitTable(false) != lowerDigits {
		t.Errorf("digitTable(false) = %q, want %q", digitTable(false), lowerDigits)
	}
	if digitTable(true) != upperDigits {
		t.Errorf("digitTable(true) = %q, want %q", digitTable(true), upperDigits)
	}
}

func TestNibbleAt(t *testing.T) {
	var records = []struct {
		c       byte
		want    uint8
		wantOk  bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'a', 10, true},
		{'f', 15, true},
		{'A', 10, true},
		{'F', 15, true},
		{'g', 0, false},
		{'G', 0, false},
		{' ', 0, false},
		{'-', 0, false},
	}
	for _, rec := range records {
		got, ok := nibbleAt(rec.c)
		if ok != rec.wantOk || (ok && got != rec.want) {
			t.Errorf("nibbleAt(%q) = (%d, %v), want (%d, %v)", rec.c, got, ok, rec.want, rec.wantOk)
		}
	}
}

func TestNibbleOfCoversWholeAlphabet(t *testing.T) {
	for i, c := range lowerDigits {
		if got, ok := nibbleAt(byte(c)); !ok || int(got) != i {
			t.Errorf("nibbleAt(%q) = (%d, %v), want (%d, true)", c, got, ok, i)
		}
	}
	for i, c := range upperDigits {
		if got, ok := nibbleAt(byte(c)); !ok || int(got) != i {
			t.Errorf("nibbleAt(%q) = (%d, %v), want (%d, true)", c, got, ok, i)
		}
	}
}
