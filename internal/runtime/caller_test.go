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

package runtime_test

import (
	"testing"

	"github.com/arlojacobsen/hexfmt/internal/runtime"
)

type ExportedStruct struct{}

func (es *ExportedStruct) Foo() (pkg, fn string) {
	pkg, fn, _ = runtime.CallerPkgFunc(0)
	return pkg, fn
}

type callerPkgFuncRecord struct {
	wantPkg string
	wantFn  string
	pkg     string
	fn      string
}

func TestCallerPkgFunc(t *testing.T) {
	const WantPkg = "github.com/arlojacobsen/hexfmt/internal/runtime_test"

	var records []callerPkgFuncRecord
	pkg, fn, _ := runtime.CallerPkgFunc(0)
	records = append(records, callerPkgFuncRecord{
		wantPkg: WantPkg,
		wantFn:  "TestCallerPkgFunc",
		pkg:     pkg,
		fn:      fn,
	})
	func() {
		pkg, fn, _ := runtime.CallerPkgFunc(0)
		records = append(records, callerPkgFuncRecord{
			wantPkg: WantPkg,
			wantFn:  "TestCallerPkgFunc.func1",
			pkg:     pkg,
			fn:      fn,
		})
	}()
	tes := new(ExportedStruct)
	pkg, fn = tes.Foo()
	records = append(records, callerPkgFuncRecord{
		wantPkg: WantPkg,
		wantFn:  "(*ExportedStruct).Foo",
		pkg:     pkg,
		fn:      fn,
	})

	for _, rec := range records {
		if rec.pkg != rec.wantPkg || rec.fn != rec.wantFn {
			t.Errorf("got pkg: %s, fn: %s; want pkg: %s, fn: %s", rec.pkg, rec.fn, rec.wantPkg, rec.wantFn)
		}
	}
}

func TestFuncPkg(t *testing.T) {
	const fn = "github.com/arlojacobsen/hexfmt.Encode"
	const want = "github.com/arlojacobsen/hexfmt"
	if got := runtime.FuncPkg(fn); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
