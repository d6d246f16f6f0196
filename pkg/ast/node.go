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
package ast

import (
	"fmt"

	"github.com/tmikov/smalls-sub000/pkg/source"
)

// Kind tags the variant of a Node.
type Kind uint8

const (
	Unspecified Kind = iota
	Var
	Datum
	Set
	Apply
	If
	Closure
	Let
	Fix
	Body
)

var kindNames = map[Kind]string{
	Unspecified: "UNSPECIFIED",
	Var:         "VAR",
	Datum:       "DATUM",
	Set:         "SET",
	Apply:       "APPLY",
	If:          "IF",
	Closure:     "CLOSURE",
	Let:         "LET",
	Fix:         "FIX",
	Body:        "BODY",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", k)
}

// Node is the compiled AST: a tagged union covering every shape the
// Parser/Expander can produce. Only the fields relevant to Kind are
// meaningful; the zero value of the rest is ignored.
type Node struct {
	Kind   Kind
	Coords source.Coords

	// Var
	Variable *Variable

	// Datum: a literal self-evaluating value, stored pre-rendered since the
	// AST dumper only needs to print it, never evaluate it.
	DatumText string

	// Set: Variable and Value.
	Value *Node

	// Apply: Callee and Args.
	Callee *Node
	Args   []*Node

	// If: Cond, Then and (optional, nil if absent) Else.
	Cond *Node
	Then *Node
	Else *Node

	// Closure: the Frame of its own parameters plus its Body. ClosureRest is
	// non-nil when the formals list had a rest-list tail (or was a bare
	// identifier): that Variable receives the remaining arguments packed
	// into a list.
	ClosureFrame *Frame
	ClosureRest  *Variable
	ClosureBody  *Node

	// Let/Fix: Frame of the newly bound Variables, their initialisers
	// (parallel to Frame.Variables for Let; in declaration order for Fix),
	// and the Body evaluated in that extended scope.
	LetFrame *Frame
	Inits    []*Node
	LetBody  *Node

	// Body: a sequence of Nodes evaluated for effect, the last for value.
	Forms []*Node
}

// NewUnspecified constructs the Unspecified node, the value of forms
// executed purely for effect (e.g. a bare top-level define in tail
// position).
func NewUnspecified(coords source.Coords) *Node {
	return &Node{Kind: Unspecified, Coords: coords}
}

// NewVar constructs a reference to an already-resolved Variable.
func NewVar(coords source.Coords, v *Variable) *Node {
	return &Node{Kind: Var, Coords: coords, Variable: v}
}

// NewDatum constructs a literal node from its pre-rendered text.
func NewDatum(coords source.Coords, text string) *Node {
	return &Node{Kind: Datum, Coords: coords, DatumText: text}
}

// NewSet constructs a (set! variable value) node.
func NewSet(coords source.Coords, v *Variable, value *Node) *Node {
	return &Node{Kind: Set, Coords: coords, Variable: v, Value: value}
}

// NewApply constructs a procedure call node.
func NewApply(coords source.Coords, callee *Node, args []*Node) *Node {
	return &Node{Kind: Apply, Coords: coords, Callee: callee, Args: args}
}

// NewIf constructs a conditional; els may be nil (a one-armed if).
func NewIf(coords source.Coords, cond, then, els *Node) *Node {
	return &Node{Kind: If, Coords: coords, Cond: cond, Then: then, Else: els}
}

// NewClosure constructs a lambda expression: its own parameter Frame, and a
// Body evaluated within it. rest may be nil.
func NewClosure(coords source.Coords, frame *Frame, rest *Variable, body *Node) *Node {
	return &Node{Kind: Closure, Coords: coords, ClosureFrame: frame, ClosureRest: rest, ClosureBody: body}
}

// NewLet constructs a let expression: inits are evaluated in the
// surrounding scope, in order, then bound to frame's Variables (in the
// same order) before body runs.
func NewLet(coords source.Coords, frame *Frame, inits []*Node, body *Node) *Node {
	return &Node{Kind: Let, Coords: coords, LetFrame: frame, Inits: inits, LetBody: body}
}

// NewFix constructs a letrec*-equivalent binding form: frame's Variables
// are all visible (initially unassigned) while inits are evaluated, in
// order, each immediately assigned to its Variable before the next init
// runs, then body runs. This is what internal defines are hoisted into.
func NewFix(coords source.Coords, frame *Frame, inits []*Node, body *Node) *Node {
	return &Node{Kind: Fix, Coords: coords, LetFrame: frame, Inits: inits, LetBody: body}
}

// NewBody constructs a sequence of forms evaluated for effect, the value of
// the whole sequence being that of the last form.
func NewBody(coords source.Coords, forms []*Node) *Node {
	return &Node{Kind: Body, Coords: coords, Forms: forms}
}
