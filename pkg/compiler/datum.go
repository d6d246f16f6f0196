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
package compiler

import (
	"strconv"
	"strings"

	"github.com/tmikov/smalls-sub000/pkg/symtab"
	"github.com/tmikov/smalls-sub000/pkg/syntax"
)

// renderBool renders a boolean datum in its external representation.
func renderBool(v bool) string {
	if v {
		return "#t"
	}

	return "#f"
}

// renderInt renders an exact integer datum.
func renderInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// renderReal renders an inexact real datum, always with a decimal point or
// exponent so it is never mistaken for an exact integer when printed back.
func renderReal(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += "."
	}

	return s
}

// renderString renders a string datum, re-escaping the characters that
// would otherwise make it unreadable.
func renderString(v string) string {
	var b strings.Builder

	b.WriteByte('"')

	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')

	return b.String()
}

// RenderSyntax renders any raw Syntax tree (as produced by the Reader,
// before expansion) into its external representation. This is renderDatum
// exported for the `dump-syntax` debug subcommand, which needs to print
// data read straight off the Reader with no compilation step in between.
func RenderSyntax(table *symtab.Table, s *syntax.Syntax) string {
	return renderDatum(table, s)
}

// renderDatum recursively renders any literal Syntax tree (as produced by
// `quote` or appearing as a self-evaluating literal) into its external
// representation, the text stored directly in an ast.Node's DatumText.
func renderDatum(table *symtab.Table, s *syntax.Syntax) string {
	switch s.Kind {
	case syntax.Bool:
		return renderBool(s.BoolVal)
	case syntax.Integer:
		return renderInt(s.IntVal)
	case syntax.Real:
		return renderReal(s.RealVal)
	case syntax.String:
		return renderString(s.StrVal)
	case syntax.Symbol:
		return table.DisplayName(s.SymbolVal)
	case syntax.Nil:
		return "()"
	case syntax.Vector:
		elems := s.Elements(table)
		parts := make([]string, len(elems))

		for i, e := range elems {
			parts[i] = renderDatum(table, e)
		}

		return "#(" + strings.Join(parts, " ") + ")"
	case syntax.Pair:
		return renderPair(table, s)
	case syntax.Binding:
		return table.DisplayName(table.Binding(s.BindingVal).Symbol)
	default:
		return "#<unknown>"
	}
}

// renderPair renders a Pair chain, using dotted-tail notation only when the
// list is actually improper.
func renderPair(table *symtab.Table, s *syntax.Syntax) string {
	var parts []string

	cur := s
	for cur.Kind == syntax.Pair {
		parts = append(parts, renderDatum(table, cur.Car(table)))
		cur = cur.Cdr(table)
	}

	if cur.Kind == syntax.Nil {
		return "(" + strings.Join(parts, " ") + ")"
	}

	return "(" + strings.Join(parts, " ") + " . " + renderDatum(table, cur) + ")"
}
