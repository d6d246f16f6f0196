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

// Package compiler implements the Scheme Parser/Expander component: Syntax
// trees from the Syntax Reader become ast.Node trees, resolving identifiers
// through the Symbol/Scope/Binding Table, hoisting internal defines into an
// implicit letrec*, and expanding macro uses (including the one built-in
// "or" transformer) under the hygiene rules of §4.5/§4.6/§4.11.
package compiler

import (
	"github.com/tmikov/smalls-sub000/pkg/ast"
	"github.com/tmikov/smalls-sub000/pkg/report"
	"github.com/tmikov/smalls-sub000/pkg/source"
	"github.com/tmikov/smalls-sub000/pkg/symtab"
	"github.com/tmikov/smalls-sub000/pkg/syntax"
)

// reservedTag names the compiler primitive a ReservedWord binding denotes.
type reservedTag string

const (
	tagQuote      reservedTag = "quote"
	tagBegin      reservedTag = "begin"
	tagSet        reservedTag = "set!"
	tagIf         reservedTag = "if"
	tagLambda     reservedTag = "lambda"
	tagLet        reservedTag = "let"
	tagLetrec     reservedTag = "letrec"
	tagLetrecStar reservedTag = "letrec*"
	tagDefine     reservedTag = "define"
)

// Expander holds everything shared across one compilation: the symbol
// table, the error reporter, the top-level frame, and the counter that
// numbers new frames. The current frame is threaded through call
// parameters; scopes live on the table's scope stack, and every form that
// pushes one pops it again with PopScope before returning.
type Expander struct {
	Table    *symtab.Table
	Reporter report.Reporter
	Top      *ast.Frame

	nextFrame ast.FrameID
}

// NewExpander constructs an Expander with every reserved word and the
// built-in "or" macro bound into the table's root scope.
func NewExpander(table *symtab.Table, reporter report.Reporter) *Expander {
	e := &Expander{Table: table, Reporter: reporter}
	e.Top = e.newFrame(nil)

	root := table.ScopeOf(symtab.RootScope)
	for _, tag := range []reservedTag{
		tagQuote, tagBegin, tagSet, tagIf, tagLambda, tagLet, tagLetrec, tagLetrecStar, tagDefine,
	} {
		sym := table.NewSymbol(string(tag))
		root.Bind(sym, source.NoCoords, symtab.ReservedWord, tag)
	}

	installOr(e, root)

	return e
}

func (e *Expander) newFrame(parent *ast.Frame) *ast.Frame {
	f := ast.NewFrame(e.nextFrame, parent)
	e.nextFrame++

	return f
}

// CompileProgram compiles a sequence of top-level data (as produced
// repeatedly by the Syntax Reader) into a single Body node, treating the
// whole program as one top-level body so that defines may appear anywhere
// within it per §4.9.
func (e *Expander) CompileProgram(forms []*syntax.Syntax) *ast.Node {
	scope := e.Table.Top()
	return e.compileBody(forms, scope, e.Top, true)
}

// compileExpr dispatches on the syntax kind per §4.8.
func (e *Expander) compileExpr(s *syntax.Syntax, scope symtab.Scope, frame *ast.Frame) *ast.Node {
	switch s.Kind {
	case syntax.Bool:
		return ast.NewDatum(s.Coords, renderBool(s.BoolVal))
	case syntax.Integer:
		return ast.NewDatum(s.Coords, renderInt(s.IntVal))
	case syntax.Real:
		return ast.NewDatum(s.Coords, renderReal(s.RealVal))
	case syntax.String:
		return ast.NewDatum(s.Coords, renderString(s.StrVal))
	case syntax.Nil:
		return ast.NewDatum(s.Coords, "()")
	case syntax.Vector:
		return ast.NewDatum(s.Coords, renderDatum(e.Table, s))
	case syntax.Binding:
		b := e.Table.Binding(s.BindingVal)
		if v, ok := b.Payload.(*ast.Variable); ok {
			return ast.NewVar(s.Coords, v)
		}

		e.Reporter.Report(s.Coords, "not a variable")

		return ast.NewUnspecified(s.Coords)
	case syntax.Symbol:
		return e.compileSymbolUse(s, scope)
	case syntax.Pair:
		return e.compilePair(s, scope, frame)
	default:
		e.Reporter.Reportf(s.Coords, "unexpected syntax")
		return ast.NewUnspecified(s.Coords)
	}
}

// compileSymbolUse compiles a bare identifier appearing in expression
// position: it must resolve to a Variable (ReservedWord/Macro used bare,
// with no surrounding form, is not meaningful here).
func (e *Expander) compileSymbolUse(s *syntax.Syntax, scope symtab.Scope) *ast.Node {
	b, ok := e.resolveSymbol(s.SymbolVal, s.Marks(), scope)
	if !ok {
		e.Reporter.Reportf(s.Coords, "unbound identifier %q", e.Table.DisplayName(s.SymbolVal))
		return ast.NewUnspecified(s.Coords)
	}

	switch b.Kind {
	case symtab.Variable:
		return ast.NewVar(s.Coords, b.Payload.(*ast.Variable))
	default:
		e.Reporter.Reportf(s.Coords, "%q cannot be used as an expression", e.Table.DisplayName(s.SymbolVal))
		return ast.NewUnspecified(s.Coords)
	}
}

// compilePair compiles a form whose head is a Pair: a reserved-word form, a
// macro use, or a procedure call.
func (e *Expander) compilePair(s *syntax.Syntax, scope symtab.Scope, frame *ast.Frame) *ast.Node {
	head := s.Car(e.Table)

	if head.Kind == syntax.Symbol {
		if b, ok := e.resolveSymbol(head.SymbolVal, head.Marks(), scope); ok {
			switch b.Kind {
			case symtab.ReservedWord:
				return e.compileSpecialForm(b.Payload.(reservedTag), s, scope, frame)
			case symtab.Macro:
				expanded := e.expandMacro(b.Payload.(*macro), s)
				return e.compileExpr(expanded, scope, frame)
			}
		}
	}

	return e.compileApply(s, scope, frame)
}

// compileApply compiles a procedure call: callee and arguments, left to
// right, packed into a positional list.
func (e *Expander) compileApply(s *syntax.Syntax, scope symtab.Scope, frame *ast.Frame) *ast.Node {
	callee := e.compileExpr(s.Car(e.Table), scope, frame)

	var args []*ast.Node

	rest := s.Cdr(e.Table)
	for rest.Kind == syntax.Pair {
		args = append(args, e.compileExpr(rest.Car(e.Table), scope, frame))
		rest = rest.Cdr(e.Table)
	}

	if rest.Kind != syntax.Nil {
		e.Reporter.Report(rest.Coords, "improper argument list")
	}

	return ast.NewApply(s.Coords, callee, args)
}

// compileSpecialForm dispatches a reserved-word form per §4.8.
func (e *Expander) compileSpecialForm(tag reservedTag, s *syntax.Syntax, scope symtab.Scope, frame *ast.Frame) *ast.Node {
	switch tag {
	case tagQuote:
		return e.compileQuote(s)
	case tagBegin:
		return e.compileBeginExpr(s, scope, frame)
	case tagSet:
		return e.compileSet(s, scope, frame)
	case tagIf:
		return e.compileIf(s, scope, frame)
	case tagLambda:
		return e.compileLambda(s, scope, frame)
	case tagLet:
		return e.compileLet(s, scope, frame)
	case tagLetrec, tagLetrecStar:
		e.Reporter.Reportf(s.Coords, "%s is not yet supported", tag)
		return ast.NewUnspecified(s.Coords)
	case tagDefine:
		e.Reporter.Report(s.Coords, "definition not allowed here")
		return ast.NewUnspecified(s.Coords)
	default:
		e.Reporter.Reportf(s.Coords, "unimplemented reserved word %q", tag)
		return ast.NewUnspecified(s.Coords)
	}
}

func (e *Expander) compileQuote(s *syntax.Syntax) *ast.Node {
	rest := s.Cdr(e.Table)
	if rest.Kind != syntax.Pair {
		e.Reporter.Report(s.Coords, "quote requires exactly one datum")
		return ast.NewUnspecified(s.Coords)
	}

	return ast.NewDatum(s.Coords, renderDatum(e.Table, rest.Car(e.Table)))
}

func (e *Expander) compileBeginExpr(s *syntax.Syntax, scope symtab.Scope, frame *ast.Frame) *ast.Node {
	forms := listElements(e.Table, s.Cdr(e.Table))
	if len(forms) == 0 {
		return ast.NewUnspecified(s.Coords)
	}

	nodes := make([]*ast.Node, len(forms))
	for i, f := range forms {
		nodes[i] = e.compileExpr(f, scope, frame)
	}

	return ast.NewBody(s.Coords, nodes)
}

func (e *Expander) compileSet(s *syntax.Syntax, scope symtab.Scope, frame *ast.Frame) *ast.Node {
	forms := listElements(e.Table, s.Cdr(e.Table))
	if len(forms) != 2 || forms[0].Kind != syntax.Symbol {
		e.Reporter.Report(s.Coords, "set! requires (set! identifier expr)")
		return ast.NewUnspecified(s.Coords)
	}

	b, ok := e.resolveSymbol(forms[0].SymbolVal, forms[0].Marks(), scope)
	if !ok || b.Kind != symtab.Variable {
		e.Reporter.Reportf(forms[0].Coords, "set! target %q is not a variable", e.Table.DisplayName(forms[0].SymbolVal))
		return ast.NewUnspecified(s.Coords)
	}

	value := e.compileExpr(forms[1], scope, frame)

	return ast.NewSet(s.Coords, b.Payload.(*ast.Variable), value)
}

func (e *Expander) compileIf(s *syntax.Syntax, scope symtab.Scope, frame *ast.Frame) *ast.Node {
	forms := listElements(e.Table, s.Cdr(e.Table))
	if len(forms) != 2 && len(forms) != 3 {
		e.Reporter.Report(s.Coords, "if requires (if cond then [else])")
		return ast.NewUnspecified(s.Coords)
	}

	cond := e.compileExpr(forms[0], scope, frame)
	then := e.compileExpr(forms[1], scope, frame)

	var els *ast.Node
	if len(forms) == 3 {
		els = e.compileExpr(forms[2], scope, frame)
	}

	return ast.NewIf(s.Coords, cond, then, els)
}
