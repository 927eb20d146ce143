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

package errors_test

import (
	"strings"
	"testing"

	"github.com/arlojacobsen/hexfmt/internal/errors"
)

func TestAutoWrap_Nil(t *testing.T) {
	if err := errors.AutoWrap(nil); err != nil {
		t.Errorf("got %v, want nil", err)
	}
}

func TestAutoWrap(t *testing.T) {
	err := errors.AutoWrap(errors.New("boom"))
	if err == nil {
		t.Fatal("got nil, want non-nil error")
	}
	const wantPrefix = "github.com/arlojacobsen/hexfmt/internal/errors_test: boom"
	if err.Error() != wantPrefix {
		t.Errorf("got %q, want %q", err.Error(), wantPrefix)
	}
}

func TestAutoWrap_DoesNotStutterPrefix(t *testing.T) {
	inner := errors.AutoWrap(errors.New("boom"))
	outer := errors.AutoWrap(inner)
	if strings.Count(outer.Error(), "boom") != 1 {
		t.Errorf("message %q should mention the original error once", outer.Error())
	}
}

func TestAutoWrap_Unwrap(t *testing.T) {
	base := errors.New("boom")
	wrapped := errors.AutoWrap(base)
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is(wrapped, base) = false, want true")
	}
}

func TestAutoMsg_Empty(t *testing.T) {
	if got := errors.AutoMsg(""); !strings.HasSuffix(got, "<no error message>") {
		t.Errorf("got %q, want suffix %q", got, "<no error message>")
	}
}
