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
	"github.com/tmikov/smalls-sub000/pkg/source"
	"github.com/tmikov/smalls-sub000/pkg/symtab"
	"github.com/tmikov/smalls-sub000/pkg/syntax"
)

// macro is the payload of a Macro binding: a transformer closure plus the
// scope active when the macro was defined, used to construct the real mark
// applied to its expansion (§4.11).
type macro struct {
	defScope  symtab.ScopeID
	transform func(e *Expander, use *syntax.Syntax) *syntax.Syntax
}

// expandMacro implements the three-step hygienic expansion algorithm of
// §4.11: wrap the use with a fresh anti-mark, invoke the transformer, then
// wrap the result with a fresh real mark referencing the macro's
// definition scope. The cancellation rule in Syntax.Wrap/symtab.Wrap means
// syntax passed through unchanged by the transformer (still carrying the
// anti-mark) has it cancelled by the following real mark and so resolves
// at the use site, while syntax introduced fresh by the transformer keeps
// only the real mark and so resolves in the macro's definition scope.
func (e *Expander) expandMacro(m *macro, use *syntax.Syntax) *syntax.Syntax {
	anti := use.Wrap(e.Table, symtab.NewAntiMark())
	result := m.transform(e, anti)
	real := e.Table.NewRealMark(m.defScope)

	return result.Wrap(e.Table, real)
}

// installOr binds the built-in `or` macro into scope, per §4.11:
//
//	(or)        => #t
//	(or a)      => a
//	(or a b …)  => (let ((tmp a)) (if tmp tmp (or b …)))
func installOr(e *Expander, scope symtab.Scope) {
	sym := e.Table.NewSymbol("or")
	m := &macro{defScope: scope.ID(), transform: transformOr}
	scope.Bind(sym, source.NoCoords, symtab.Macro, m)
}

func transformOr(e *Expander, use *syntax.Syntax) *syntax.Syntax {
	table := e.Table
	coords := use.Coords

	args := listElements(table, use.Cdr(table))

	if len(args) == 0 {
		return syntax.NewBool(coords, true)
	}

	if len(args) == 1 {
		return args[0]
	}

	tmpSym := table.NewSymbol("tmp")
	tmp := syntax.NewSymbol(coords, tmpSym)

	letBindings := syntax.NewPair(coords,
		syntax.NewPair(coords, tmp, syntax.NewPair(coords, args[0], syntax.NewNil(coords))),
		syntax.NewNil(coords))

	restOr := syntax.NewPair(coords, syntax.NewSymbol(coords, table.NewSymbol("or")), sliceToList(coords, args[1:]))

	ifForm := syntax.NewPair(coords,
		syntax.NewSymbol(coords, table.NewSymbol("if")),
		syntax.NewPair(coords, tmp, syntax.NewPair(coords, tmp, syntax.NewPair(coords, restOr, syntax.NewNil(coords)))))

	letForm := syntax.NewPair(coords,
		syntax.NewSymbol(coords, table.NewSymbol("let")),
		syntax.NewPair(coords, letBindings, syntax.NewPair(coords, ifForm, syntax.NewNil(coords))))

	return letForm
}

// sliceToList builds a proper Syntax list out of elems, all at coords
// (used for the synthetic recursive `or` call the transformer constructs).
func sliceToList(coords source.Coords, elems []*syntax.Syntax) *syntax.Syntax {
	result := syntax.NewNil(coords)

	for i := len(elems) - 1; i >= 0; i-- {
		result = syntax.NewPair(elems[i].Coords, elems[i], result)
	}

	return result
}
