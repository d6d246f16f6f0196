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

// Package syntax implements the Syntax Reader component: tokens from the
// Lexer become a tree of Syntax nodes (the hygienic analogue of an
// s-expression), each carrying a mark chain recording which macro
// expansions, if any, introduced it.
package syntax

import (
	"fmt"

	"github.com/tmikov/smalls-sub000/pkg/source"
	"github.com/tmikov/smalls-sub000/pkg/symtab"
)

// Kind tags the variant of a Syntax node.
type Kind uint8

const (
	Eof Kind = iota
	Bool
	Integer
	Real
	String
	Symbol
	Binding
	Pair
	Nil
	Vector
)

var kindNames = map[Kind]string{
	Eof:     "eof",
	Bool:    "bool",
	Integer: "integer",
	Real:    "real",
	String:  "string",
	Symbol:  "symbol",
	Binding: "binding",
	Pair:    "pair",
	Nil:     "nil",
	Vector:  "vector",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", k)
}

// Syntax is a single node of the hygienic analogue of an s-expression tree.
// Every node carries its own mark chain; Car/Cdr/Elements are accessed
// through methods (not fields) so that an ancestor's wrap is propagated
// down to its children lazily, at the moment they are actually
// destructured, rather than being pushed through the whole tree eagerly
// whenever an outer node is wrapped.
type Syntax struct {
	Kind   Kind
	Coords source.Coords
	marks  *symtab.MarkChain

	BoolVal    bool
	IntVal     int64
	RealVal    float64
	StrVal     string
	SymbolVal  symtab.SymbolID
	BindingVal symtab.BindingID

	car, cdr *Syntax
	elements []*Syntax
}

// NewBool, NewInteger, etc. construct unwrapped (mark-chain-empty) leaf
// nodes, as produced directly by the reader.
func NewBool(coords source.Coords, v bool) *Syntax {
	return &Syntax{Kind: Bool, Coords: coords, BoolVal: v}
}

func NewInteger(coords source.Coords, v int64) *Syntax {
	return &Syntax{Kind: Integer, Coords: coords, IntVal: v}
}

func NewReal(coords source.Coords, v float64) *Syntax {
	return &Syntax{Kind: Real, Coords: coords, RealVal: v}
}

func NewString(coords source.Coords, v string) *Syntax {
	return &Syntax{Kind: String, Coords: coords, StrVal: v}
}

func NewSymbol(coords source.Coords, sym symtab.SymbolID) *Syntax {
	return &Syntax{Kind: Symbol, Coords: coords, SymbolVal: sym}
}

// NewBinding wraps a resolved Binding directly into the tree. The expander
// in pkg/compiler does not produce these; it resolves identifiers each time
// it meets them.
func NewBinding(coords source.Coords, b symtab.BindingID) *Syntax {
	return &Syntax{Kind: Binding, Coords: coords, BindingVal: b}
}

func NewPair(coords source.Coords, car, cdr *Syntax) *Syntax {
	return &Syntax{Kind: Pair, Coords: coords, car: car, cdr: cdr}
}

func NewNil(coords source.Coords) *Syntax {
	return &Syntax{Kind: Nil, Coords: coords}
}

func NewVector(coords source.Coords, elements []*Syntax) *Syntax {
	return &Syntax{Kind: Vector, Coords: coords, elements: elements}
}

// Car returns the car of a Pair, with this node's own wrap propagated onto
// it. table is used to re-stamp any symbol uncovered by the propagation,
// per the hygiene rule that a real-mark wrap maps a symbol to a fresh
// mark-stamped variant (§4.5 "Wrapping a symbol").
func (s *Syntax) Car(table *symtab.Table) *Syntax {
	return s.car.wrapAll(table, s.marks)
}

// Cdr returns the cdr of a Pair, with this node's own wrap propagated onto
// it.
func (s *Syntax) Cdr(table *symtab.Table) *Syntax {
	return s.cdr.wrapAll(table, s.marks)
}

// Elements returns a Vector's elements, each with this node's own wrap
// propagated onto it.
func (s *Syntax) Elements(table *symtab.Table) []*Syntax {
	if s.marks == nil {
		return s.elements
	}

	out := make([]*Syntax, len(s.elements))
	for i, e := range s.elements {
		out[i] = e.wrapAll(table, s.marks)
	}

	return out
}

// Marks returns this node's own mark chain (not including any not-yet
// propagated ancestor wrap; Car/Cdr/Elements already fold that in).
func (s *Syntax) Marks() *symtab.MarkChain {
	return s.marks
}

// Wrap returns a copy of s with mark additionally applied to its chain. This
// is O(1): children are not touched, and only receive the extra wrap lazily,
// the next time they are fetched via Car/Cdr/Elements. If s is a Symbol and
// mark is a real mark, SymbolVal is eagerly replaced by the mark-stamped
// variant (§4.5), so that later identifier resolution can recognise
// occurrences sharing one macro expansion by simple SymbolID equality. A
// real mark that cancels an anti-mark at the head of s's chain leaves
// SymbolVal unchanged, so such a symbol resolves as written at the use site.
func (s *Syntax) Wrap(table *symtab.Table, mark symtab.Mark) *Syntax {
	clone := *s
	clone.marks = symtab.Wrap(s.marks, mark)

	cancels := s.marks != nil && s.marks.Mark.Kind == symtab.AntiMarkKind
	if s.Kind == Symbol && mark.Kind == symtab.RealMarkKind && !cancels {
		clone.SymbolVal = table.NewSymbolVariant(s.SymbolVal, mark.Stamp)
	}

	return &clone
}

// wrapAll applies an entire ancestor mark chain (outermost mark first) on
// top of s's own chain, used internally by Car/Cdr/Elements.
func (s *Syntax) wrapAll(table *symtab.Table, ancestor *symtab.MarkChain) *Syntax {
	if s == nil || ancestor == nil {
		return s
	}

	return s.applyChain(table, ancestor)
}

// applyChain folds chain onto s, applying chain's marks outermost-first so
// cancellation against s's innermost mark behaves as if s had been read
// directly inside the wrap represented by chain.
func (s *Syntax) applyChain(table *symtab.Table, chain *symtab.MarkChain) *Syntax {
	if chain == nil {
		return s
	}

	return s.applyChain(table, chain.Next).Wrap(table, chain.Mark)
}

// StripMarks returns a copy of s with an empty mark chain. SymbolVal is left
// as it is, including any mark-stamped variant. The expander does not call
// it.
func (s *Syntax) StripMarks() *Syntax {
	clone := *s
	clone.marks = nil

	return &clone
}
