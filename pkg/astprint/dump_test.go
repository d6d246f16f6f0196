// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package astprint

import (
	"testing"

	"github.com/tmikov/smalls-sub000/pkg/ast"
	"github.com/tmikov/smalls-sub000/pkg/source"
)

func TestDump_00_Var(t *testing.T) {
	f := ast.NewFrame(0, nil)
	v := f.NewVariable("x", 0, source.NoCoords)

	got := Dump(ast.NewVar(source.NoCoords, v), 0)
	if want := "(VAR x:0)\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDump_01_Datum(t *testing.T) {
	got := Dump(ast.NewDatum(source.NoCoords, "42"), 0)
	if want := "(DATUM 42)\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDump_02_Unspecified(t *testing.T) {
	got := Dump(ast.NewUnspecified(source.NoCoords), 0)
	if want := "(UNSPECIFIED)\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDump_03_Set(t *testing.T) {
	f := ast.NewFrame(0, nil)
	v := f.NewVariable("x", 0, source.NoCoords)

	n := ast.NewSet(source.NoCoords, v, ast.NewDatum(source.NoCoords, "1"))

	got := Dump(n, 0)
	want := "(SET x:0\n    (DATUM 1))\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDump_04_ApplyNoArgs(t *testing.T) {
	f := ast.NewFrame(0, nil)
	v := f.NewVariable("f", 0, source.NoCoords)

	n := ast.NewApply(source.NoCoords, ast.NewVar(source.NoCoords, v), nil)

	got := Dump(n, 0)
	if want := "(APPLY (VAR f:0) '())\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDump_05_IfTwoArmed(t *testing.T) {
	n := ast.NewIf(source.NoCoords,
		ast.NewDatum(source.NoCoords, "#t"),
		ast.NewDatum(source.NoCoords, "1"),
		ast.NewDatum(source.NoCoords, "2"))

	got := Dump(n, 0)
	want := "(IF\n    (DATUM #t)\n    (DATUM 1)\n    (DATUM 2))\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDump_06_ClosureWithRest(t *testing.T) {
	outer := ast.NewFrame(0, nil)
	pf := ast.NewFrame(1, outer)
	p := pf.NewVariable("p", 0, source.NoCoords)
	rest := pf.NewVariable("more", 0, source.NoCoords)

	n := ast.NewClosure(source.NoCoords, pf, rest, ast.NewVar(source.NoCoords, p))

	got := Dump(n, 0)
	want := "(CLOSURE (p . more)\n    (VAR p:1))\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDump_07_BodyMultiFormIsExplicitBegin(t *testing.T) {
	body := ast.NewBody(source.NoCoords, []*ast.Node{
		ast.NewDatum(source.NoCoords, "1"),
		ast.NewDatum(source.NoCoords, "2"),
	})

	got := Dump(body, 0)
	want := "(BEGIN\n    (DATUM 1)\n    (DATUM 2))\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDump_08_BodyEmptyIsUnspecified(t *testing.T) {
	got := Dump(ast.NewBody(source.NoCoords, nil), 0)
	if want := "(UNSPECIFIED)\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDump_09_Fix(t *testing.T) {
	f := ast.NewFrame(0, nil)
	v := f.NewVariable("x", 0, source.NoCoords)

	n := ast.NewFix(source.NoCoords, f, []*ast.Node{ast.NewDatum(source.NoCoords, "1")},
		ast.NewVar(source.NoCoords, v))

	got := Dump(n, 0)
	want := "(LETREC* ((x:0 (DATUM 1)))\n    (VAR x:0))\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDump_10_ClipToWidth(t *testing.T) {
	got := Dump(ast.NewDatum(source.NoCoords, "1234567890"), 5)
	if want := "(DATU\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDump_11_ClipCountsWideRunesAsTwoColumns(t *testing.T) {
	// U+FF21 FULLWIDTH LATIN CAPITAL LETTER A occupies two display columns.
	got := clipToWidth("(DATUM ＡＡ)", 10)
	if want := "(DATUM Ａ"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDump_12_ClipZeroMeansUnlimited(t *testing.T) {
	long := "123456789012345678901234567890"

	got := Dump(ast.NewDatum(source.NoCoords, long), 0)
	if want := "(DATUM " + long + ")\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
