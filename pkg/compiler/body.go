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
	"github.com/tmikov/smalls-sub000/pkg/ast"
	"github.com/tmikov/smalls-sub000/pkg/source"
	"github.com/tmikov/smalls-sub000/pkg/symtab"
	"github.com/tmikov/smalls-sub000/pkg/syntax"
)

// deferredDefine is one (variable, initialiser) pair accumulated while
// walking a body, per §4.9's "deferred define" list. init is nil for a
// `(define id)` with no initialiser, compiled later as Unspecified.
type deferredDefine struct {
	variable *ast.Variable
	init     *syntax.Syntax
}

// compileBody implements §4.9: it walks forms, splicing `begin` and
// expanding macro uses, hoisting `define`s into a deferred list bound into
// frame, and deferring compilation of every initialiser/expression to a
// second pass so that forward references between sibling defines resolve
// (matching letrec* semantics: every name in the body is visible to every
// initialiser, even though they run in declaration order).
func (e *Expander) compileBody(forms []*syntax.Syntax, scope symtab.Scope, frame *ast.Frame, topLevel bool) *ast.Node {
	var defines []deferredDefine

	var exprs []*syntax.Syntax

	seenExpr := false
	coords := source.NoCoords

	var walk func([]*syntax.Syntax)

	walk = func(fs []*syntax.Syntax) {
		for _, f := range fs {
			if coords == source.NoCoords {
				coords = f.Coords
			}

			if f.Kind == syntax.Pair {
				head := f.Car(e.Table)
				if head.Kind == syntax.Symbol {
					if b, ok := e.resolveSymbol(head.SymbolVal, head.Marks(), scope); ok {
						switch b.Kind {
						case symtab.ReservedWord:
							tag := b.Payload.(reservedTag)
							if tag == tagBegin {
								walk(listElements(e.Table, f.Cdr(e.Table)))
								continue
							}

							if tag == tagDefine {
								e.walkDefine(f, scope, frame, topLevel, &defines, &exprs, &seenExpr)
								continue
							}
						case symtab.Macro:
							expanded := e.expandMacro(b.Payload.(*macro), f)
							walk([]*syntax.Syntax{expanded})

							continue
						}
					}
				}
			}

			seenExpr = true
			exprs = append(exprs, f)
		}
	}

	walk(forms)

	if len(defines) == 0 {
		if len(exprs) == 0 {
			return ast.NewUnspecified(coords)
		}

		return ast.NewBody(coords, e.compileAll(exprs, scope, frame))
	}

	inits := make([]*ast.Node, len(defines))
	for i, d := range defines {
		if d.init == nil {
			inits[i] = ast.NewUnspecified(coords)
		} else {
			inits[i] = e.compileExpr(d.init, scope, frame)
		}
	}

	var body *ast.Node
	if len(exprs) == 0 {
		body = ast.NewUnspecified(coords)
	} else {
		body = ast.NewBody(coords, e.compileAll(exprs, scope, frame))
	}

	return ast.NewFix(coords, frame, inits, body)
}

func (e *Expander) compileAll(forms []*syntax.Syntax, scope symtab.Scope, frame *ast.Frame) []*ast.Node {
	out := make([]*ast.Node, len(forms))
	for i, f := range forms {
		out[i] = e.compileExpr(f, scope, frame)
	}

	return out
}

// walkDefine handles one `(define id expr)` / `(define id)` form encountered
// while walking a body.
func (e *Expander) walkDefine(
	f *syntax.Syntax, scope symtab.Scope, frame *ast.Frame, topLevel bool,
	defines *[]deferredDefine, exprs *[]*syntax.Syntax, seenExpr *bool,
) {
	rest := listElements(e.Table, f.Cdr(e.Table))
	if len(rest) == 0 || len(rest) > 2 || rest[0].Kind != syntax.Symbol {
		e.Reporter.Report(f.Coords, "malformed define")
		return
	}

	if *seenExpr {
		if !topLevel {
			e.Reporter.Report(f.Coords, "definition not allowed here")
			return
		}

		placeholder := frame.NewAnonymous("unused")
		bundled := *exprs
		*exprs = nil
		*seenExpr = false

		*defines = append(*defines, deferredDefine{variable: placeholder, init: beginUnspecifiedSyntax(e.Table, f.Coords, bundled)})
	}

	nameSym := rest[0]

	var v *ast.Variable

	if existing, ok := scope.LookupOnlyHere(nameSym.SymbolVal); ok {
		ev, ok := existing.Payload.(*ast.Variable)
		if !ok {
			e.Reporter.Reportf(nameSym.Coords, "%q is already bound and is not a variable", e.Table.DisplayName(nameSym.SymbolVal))
			return
		}

		v = ev
	} else {
		v = frame.NewVariable(e.Table.DisplayName(nameSym.SymbolVal), nameSym.SymbolVal, nameSym.Coords)
		scope.Bind(nameSym.SymbolVal, nameSym.Coords, symtab.Variable, v)
	}

	var init *syntax.Syntax
	if len(rest) == 2 {
		init = rest[1]
	}

	*defines = append(*defines, deferredDefine{variable: v, init: init})
}

// beginUnspecifiedSyntax builds the raw syntax for `(begin expr…)`, used to
// bundle top-level expressions seen before a later define into a single
// placeholder initialiser per §4.9 step 2 (the "synthetic deferred
// define"); the placeholder's own variable is anonymous and never read, so
// the bundle's resulting value is immaterial. It is expressed directly as
// Syntax (rather than as an ast.Node) so that it flows through the same
// deferred-compilation path as every other initialiser, preserving forward
// references to sibling defines.
func beginUnspecifiedSyntax(table *symtab.Table, coords source.Coords, exprs []*syntax.Syntax) *syntax.Syntax {
	var tail *syntax.Syntax = syntax.NewNil(coords)

	for i := len(exprs) - 1; i >= 0; i-- {
		tail = syntax.NewPair(exprs[i].Coords, exprs[i], tail)
	}

	head := syntax.NewSymbol(coords, table.NewSymbol("begin"))

	return syntax.NewPair(coords, head, tail)
}
