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
	"github.com/tmikov/smalls-sub000/pkg/symtab"
	"github.com/tmikov/smalls-sub000/pkg/syntax"
)

// bindFormals implements §4.10: formals is either a bare identifier (all
// arguments collected into a rest-list), a proper list of identifiers, or a
// list with a dotted tail. Each formal gets a fresh Variable in frame,
// bound into scope; a duplicate name still reserves a slot (via
// NewAnonymous) so positional indices line up with the call convention,
// but the name is not rebound. The rest identifier, if any, is returned
// separately (nil if formals was a proper list).
func (e *Expander) bindFormals(formals *syntax.Syntax, scope symtab.Scope, frame *ast.Frame) *ast.Variable {
	if formals.Kind == syntax.Symbol {
		return e.bindOneFormal(formals, scope, frame)
	}

	cur := formals
	for cur.Kind == syntax.Pair {
		e.bindOneFormal(cur.Car(e.Table), scope, frame)
		cur = cur.Cdr(e.Table)
	}

	if cur.Kind == syntax.Nil {
		return nil
	}

	if cur.Kind == syntax.Symbol {
		return e.bindOneFormal(cur, scope, frame)
	}

	e.Reporter.Report(cur.Coords, "malformed parameter list")

	return nil
}

func (e *Expander) bindOneFormal(id *syntax.Syntax, scope symtab.Scope, frame *ast.Frame) *ast.Variable {
	if id.Kind != syntax.Symbol {
		e.Reporter.Report(id.Coords, "parameter must be an identifier")
		return frame.NewAnonymous("param")
	}

	if _, already := scope.LookupOnlyHere(id.SymbolVal); already {
		e.Reporter.Reportf(id.Coords, "duplicate formal parameter %q", e.Table.DisplayName(id.SymbolVal))
		return frame.NewAnonymous(e.Table.DisplayName(id.SymbolVal))
	}

	v := frame.NewVariable(e.Table.DisplayName(id.SymbolVal), id.SymbolVal, id.Coords)
	scope.Bind(id.SymbolVal, id.Coords, symtab.Variable, v)

	return v
}

// compileLambda implements the `lambda` special form of §4.8.
func (e *Expander) compileLambda(s *syntax.Syntax, _ symtab.Scope, outer *ast.Frame) *ast.Node {
	rest := s.Cdr(e.Table)
	if rest.Kind != syntax.Pair {
		e.Reporter.Report(s.Coords, "malformed lambda")
		return ast.NewUnspecified(s.Coords)
	}

	formals := rest.Car(e.Table)
	bodyForms := listElements(e.Table, rest.Cdr(e.Table))

	paramFrame := e.newFrame(outer)
	paramScope := e.Table.NewScope()

	restVar := e.bindFormals(formals, paramScope, paramFrame)

	bodyFrame := e.newFrame(paramFrame)
	bodyScope := e.Table.NewScope()

	bodyNode := e.compileBody(bodyForms, bodyScope, bodyFrame, false)

	e.Table.PopScope() // bodyScope
	e.Table.PopScope() // paramScope

	return ast.NewClosure(s.Coords, paramFrame, restVar, bodyNode)
}

// compileLet implements `let` (§4.8). A named let — `(let loop ((v init)…)
// body…)` — is desugared into a self-recursive lambda bound by a
// letrec*-equivalent: `(letrec* ((loop (lambda (v…) body…))) (loop init…))`,
// the Open Question resolved in favour of implementing it rather than
// rejecting it, since the desugaring is immediate given compileLambda and
// ast.Fix are already available. Otherwise, all initialisers are compiled
// in the outer scope, then bound to fresh variables in a new frame/scope
// before the body is compiled.
func (e *Expander) compileLet(s *syntax.Syntax, outerScope symtab.Scope, outerFrame *ast.Frame) *ast.Node {
	rest := s.Cdr(e.Table)
	if rest.Kind != syntax.Pair {
		e.Reporter.Report(s.Coords, "malformed let")
		return ast.NewUnspecified(s.Coords)
	}

	if name := rest.Car(e.Table); name.Kind == syntax.Symbol {
		return e.compileNamedLet(s, name, rest.Cdr(e.Table), outerScope, outerFrame)
	}

	bindingForms := listElements(e.Table, rest.Car(e.Table))
	bodyForms := listElements(e.Table, rest.Cdr(e.Table))

	type binding struct {
		name *syntax.Syntax
		init *ast.Node
	}

	bindings := make([]binding, 0, len(bindingForms))

	for _, bf := range bindingForms {
		parts := listElements(e.Table, bf)
		if len(parts) != 2 || parts[0].Kind != syntax.Symbol {
			e.Reporter.Report(bf.Coords, "malformed let binding")
			continue
		}

		bindings = append(bindings, binding{name: parts[0], init: e.compileExpr(parts[1], outerScope, outerFrame)})
	}

	letFrame := e.newFrame(outerFrame)
	letScope := e.Table.NewScope()

	inits := make([]*ast.Node, len(bindings))

	for i, b := range bindings {
		e.bindOneFormal(b.name, letScope, letFrame)
		inits[i] = b.init
	}

	body := e.compileBody(bodyForms, letScope, letFrame, false)

	e.Table.PopScope() // letScope

	return ast.NewLet(s.Coords, letFrame, inits, body)
}

// compileNamedLet implements the named-let desugaring described on
// compileLet. loopFrame holds just the loop variable itself, so that the
// closure's own body can refer to it by recursive call; paramFrame/bodyFrame
// are nested exactly as in an ordinary lambda.
func (e *Expander) compileNamedLet(s *syntax.Syntax, name *syntax.Syntax, rest *syntax.Syntax, outerScope symtab.Scope, outerFrame *ast.Frame) *ast.Node {
	if rest.Kind != syntax.Pair {
		e.Reporter.Report(s.Coords, "malformed named let")
		return ast.NewUnspecified(s.Coords)
	}

	bindingForms := listElements(e.Table, rest.Car(e.Table))
	bodyForms := listElements(e.Table, rest.Cdr(e.Table))

	type binding struct {
		name *syntax.Syntax
		init *ast.Node
	}

	bindings := make([]binding, 0, len(bindingForms))

	for _, bf := range bindingForms {
		parts := listElements(e.Table, bf)
		if len(parts) != 2 || parts[0].Kind != syntax.Symbol {
			e.Reporter.Report(bf.Coords, "malformed let binding")
			continue
		}

		bindings = append(bindings, binding{name: parts[0], init: e.compileExpr(parts[1], outerScope, outerFrame)})
	}

	loopFrame := e.newFrame(outerFrame)
	loopScope := e.Table.NewScope()
	loopVar := e.bindOneFormal(name, loopScope, loopFrame)

	paramFrame := e.newFrame(loopFrame)
	paramScope := e.Table.NewScope()

	for _, b := range bindings {
		e.bindOneFormal(b.name, paramScope, paramFrame)
	}

	bodyFrame := e.newFrame(paramFrame)
	bodyScope := e.Table.NewScope()

	bodyNode := e.compileBody(bodyForms, bodyScope, bodyFrame, false)

	e.Table.PopScope() // bodyScope
	e.Table.PopScope() // paramScope

	closure := ast.NewClosure(s.Coords, paramFrame, nil, bodyNode)

	args := make([]*ast.Node, len(bindings))
	for i, b := range bindings {
		args[i] = b.init
	}

	call := ast.NewApply(s.Coords, ast.NewVar(s.Coords, loopVar), args)
	fix := ast.NewFix(s.Coords, loopFrame, []*ast.Node{closure}, call)

	e.Table.PopScope() // loopScope

	return fix
}
