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
	"github.com/tmikov/smalls-sub000/pkg/symtab"
	"github.com/tmikov/smalls-sub000/pkg/syntax"
)

// resolveSymbol implements lookupSyntaxSymbol (§4.6): try a direct,
// table-wide lookup of sym first (this already reflects every real mark
// applied to it, since Syntax.Wrap eagerly re-stamps a Symbol's SymbolVal
// for each real mark that does not cancel an anti-mark, per §4.5); if that
// fails, walk the mark chain
// outermost-first, peeling one stamp per real mark and retrying the lookup
// rooted at that mark's own definition scope. This is what lets an
// identifier introduced by a macro resolve in the macro's definition
// environment unless shadowed at the use site.
func (e *Expander) resolveSymbol(sym symtab.SymbolID, marks *symtab.MarkChain, useScope symtab.Scope) (symtab.Binding, bool) {
	if b, ok := e.Table.Lookup(sym); ok {
		return b, true
	}

	outer := marksOutermostFirst(marks)

	cur := sym
	for _, m := range outer {
		if m.Kind != symtab.RealMarkKind {
			continue
		}

		parent, _, ok := e.Table.IsVariant(cur)
		if !ok {
			break
		}

		cur = parent

		if b, ok := e.Table.ScopeOf(m.DefScope).LookupHereAndUp(cur); ok {
			return b, true
		}
	}

	return symtab.Binding{}, false
}

// marksOutermostFirst flattens a mark chain (stored innermost-first) into a
// slice ordered outermost-first.
func marksOutermostFirst(chain *symtab.MarkChain) []symtab.Mark {
	var innermostFirst []symtab.Mark
	for m := chain; m != nil; m = m.Next {
		innermostFirst = append(innermostFirst, m.Mark)
	}

	for i, j := 0, len(innermostFirst)-1; i < j; i, j = i+1, j-1 {
		innermostFirst[i], innermostFirst[j] = innermostFirst[j], innermostFirst[i]
	}

	return innermostFirst
}

// listElements collects a list's elements into a slice. An improper tail is
// dropped without a diagnostic: "(a b . c)" yields just a and b.
func listElements(table *symtab.Table, s *syntax.Syntax) []*syntax.Syntax {
	var out []*syntax.Syntax

	cur := s
	for cur.Kind == syntax.Pair {
		out = append(out, cur.Car(table))
		cur = cur.Cdr(table)
	}

	return out
}
