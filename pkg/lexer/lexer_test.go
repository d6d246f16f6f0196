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
package lexer

import (
	"strings"
	"testing"

	"github.com/tmikov/smalls-sub000/pkg/input"
	"github.com/tmikov/smalls-sub000/pkg/report"
	"github.com/tmikov/smalls-sub000/pkg/symtab"
	"github.com/tmikov/smalls-sub000/pkg/utf8"
)

func lexAll(t *testing.T, src string) ([]Token, *report.CollectingReporter, *symtab.Table) {
	t.Helper()

	rep := &report.CollectingReporter{}
	table := symtab.NewTable()
	dec := utf8.NewDecoder(input.NewBuffer(strings.NewReader(src)), "t.scm", rep)
	lx := NewLexer(dec, rep, table)

	var toks []Token

	for {
		tok := lx.NextToken()
		toks = append(toks, tok)

		if tok.Kind == EOF {
			break
		}
	}

	return toks, rep, table
}

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}

	return ks
}

func TestLexer_00_Empty(t *testing.T) {
	toks, rep, _ := lexAll(t, "")
	if !equalKinds(kinds(toks), []Kind{EOF}) || rep.Count() != 0 {
		t.Errorf("got %v", toks)
	}
}

func TestLexer_01_Parens(t *testing.T) {
	toks, rep, _ := lexAll(t, "()[]")
	want := []Kind{LParen, RParen, LSquare, RSquare, EOF}

	if !equalKinds(kinds(toks), want) || rep.Count() != 0 {
		t.Errorf("got %v", kinds(toks))
	}
}

func TestLexer_02_QuoteShorthands(t *testing.T) {
	toks, _, _ := lexAll(t, "' ` , ,@ #( #' #` #, #,@")
	want := []Kind{Apostrophe, Backtick, Comma, CommaAt, HashLParen, HashApostrophe, HashBacktick, HashComma, HashCommaAt, EOF}

	if !equalKinds(kinds(toks), want) {
		t.Errorf("got %v", kinds(toks))
	}
}

func TestLexer_03_Bool(t *testing.T) {
	toks, _, _ := lexAll(t, "#t #f")
	if toks[0].Kind != Bool || !toks[0].BoolVal {
		t.Errorf("got %v", toks[0])
	}

	if toks[1].Kind != Bool || toks[1].BoolVal {
		t.Errorf("got %v", toks[1])
	}
}

func TestLexer_04_Integer(t *testing.T) {
	toks, rep, _ := lexAll(t, "123")
	if toks[0].Kind != Integer || toks[0].IntVal != 123 || rep.Count() != 0 {
		t.Errorf("got %v", toks[0])
	}
}

func TestLexer_05_NegativeInteger(t *testing.T) {
	toks, _, _ := lexAll(t, "-42")
	if toks[0].Kind != Integer || toks[0].IntVal != -42 {
		t.Errorf("got %v", toks[0])
	}
}

func TestLexer_06_HexInteger(t *testing.T) {
	toks, rep, _ := lexAll(t, "0x1A")
	if toks[0].Kind != Integer || toks[0].IntVal != 0x1A || rep.Count() != 0 {
		t.Errorf("got %v", toks[0])
	}
}

func TestLexer_07_Real(t *testing.T) {
	toks, rep, _ := lexAll(t, "3.14")
	if toks[0].Kind != Real || toks[0].RealVal != 3.14 || rep.Count() != 0 {
		t.Errorf("got %v", toks[0])
	}
}

func TestLexer_08_RealExponent(t *testing.T) {
	toks, rep, _ := lexAll(t, "1e10")
	if toks[0].Kind != Real || toks[0].RealVal != 1e10 || rep.Count() != 0 {
		t.Errorf("got %v", toks[0])
	}
}

func TestLexer_09_String(t *testing.T) {
	toks, rep, _ := lexAll(t, `"hi\nthere"`)
	if toks[0].Kind != Str || toks[0].StrVal != "hi\nthere" || rep.Count() != 0 {
		t.Errorf("got %q, errs %d", toks[0].StrVal, rep.Count())
	}
}

func TestLexer_10_StringUnterminated(t *testing.T) {
	toks, rep, _ := lexAll(t, `"hi`)
	if toks[0].Kind != Str || rep.Count() != 1 {
		t.Errorf("got %v, errs %d", toks[0], rep.Count())
	}
}

func TestLexer_11_Identifier(t *testing.T) {
	toks, rep, table := lexAll(t, "foo-bar?")
	if toks[0].Kind != Symbol || rep.Count() != 0 {
		t.Fatalf("got %v", toks[0])
	}

	if table.DisplayName(toks[0].SymbolVal) != "foo-bar?" {
		t.Errorf("got %q", table.DisplayName(toks[0].SymbolVal))
	}
}

func TestLexer_12_PlusMinusAreIdentifiers(t *testing.T) {
	toks, _, table := lexAll(t, "+ -")
	if toks[0].Kind != Symbol || table.DisplayName(toks[0].SymbolVal) != "+" {
		t.Errorf("got %v", toks[0])
	}

	if toks[1].Kind != Symbol || table.DisplayName(toks[1].SymbolVal) != "-" {
		t.Errorf("got %v", toks[1])
	}
}

func TestLexer_13_LineComment(t *testing.T) {
	toks, rep, _ := lexAll(t, "1 ; comment\n2")
	want := []Kind{Integer, Integer, EOF}

	if !equalKinds(kinds(toks), want) || rep.Count() != 0 {
		t.Errorf("got %v", kinds(toks))
	}
}

func TestLexer_14_NestedBlockComment(t *testing.T) {
	toks, rep, _ := lexAll(t, "1 /* a /* b */ c */ 2")
	want := []Kind{Integer, Integer, EOF}

	if !equalKinds(kinds(toks), want) || rep.Count() != 0 {
		t.Errorf("got %v", kinds(toks))
	}
}

func TestLexer_15_UnterminatedNestedComment(t *testing.T) {
	_, rep, _ := lexAll(t, "/* a /* b */ ")
	if rep.Count() != 1 {
		t.Errorf("expected 1 diagnostic, got %d", rep.Count())
	}
}

func TestLexer_16_DatumComment(t *testing.T) {
	toks, _, _ := lexAll(t, "#;")
	if toks[0].Kind != DatumComment {
		t.Errorf("got %v", toks[0])
	}
}

func TestLexer_17_DottedToken(t *testing.T) {
	toks, _, _ := lexAll(t, "(a . b)")
	want := []Kind{LParen, Symbol, Dot, Symbol, RParen, EOF}

	if !equalKinds(kinds(toks), want) {
		t.Errorf("got %v", kinds(toks))
	}
}

func equalKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
