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

// Package symtab implements the Symbol / Scope / Binding Table component: a
// single arena-backed table, shared by one compilation run, which interns
// symbols (including mark-stamped macro-hygiene variants), maintains a
// strict LIFO stack of lexical scopes, and tracks which binding is currently
// visible for each symbol.
//
// Following the Design Notes' recommendation, every entity (symbol, scope,
// binding) is an index into an arena-backed slice held by the Table rather
// than a pointer into a garbage-collected graph; this makes equality and
// hashing trivial and sidesteps any self-referential ownership concerns.
package symtab

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/tmikov/smalls-sub000/pkg/source"
)

// SymbolID identifies an interned symbol.
type SymbolID int32

// InvalidSymbol is never returned by NewSymbol/NewSymbolVariant.
const InvalidSymbol SymbolID = -1

// ScopeID identifies a lexical scope.
type ScopeID int32

// InvalidScope marks the absence of a scope.
const InvalidScope ScopeID = -1

// RootScope is the implicit scope every other scope ultimately descends
// from; per the data model its level is -1 and it is always active.
const RootScope ScopeID = 0

// BindingID identifies a binding within the table's binding arena.
type BindingID int32

// InvalidBinding marks the absence of a binding.
const InvalidBinding BindingID = -1

// BindingKind classifies what a Binding's Payload means.
type BindingKind uint8

// The three binding kinds named in the data model.
const (
	ReservedWord BindingKind = iota
	Variable
	Macro
)

func (k BindingKind) String() string {
	switch k {
	case ReservedWord:
		return "reserved-word"
	case Variable:
		return "variable"
	case Macro:
		return "macro"
	default:
		return "?"
	}
}

// symbolRec is the arena record for one interned symbol.
type symbolRec struct {
	// name is only meaningful for root (by-name) symbols.
	name string
	// parent is InvalidSymbol for root symbols, else the symbol this one is
	// a mark-stamped variant of.
	parent SymbolID
	// markStamp is 0 for root symbols.
	markStamp uint64
	// displayName caches the original, unmarked spelling for diagnostics.
	displayName string
}

// scopeRec is the arena record for one lexical scope.
type scopeRec struct {
	level    int
	parent   ScopeID
	active   bool
	bySymbol map[SymbolID]BindingID
	// order is the declaration order of bindings made directly in this
	// scope; PopScope detaches them in reverse (LIFO) order.
	order []BindingID
}

// bindingRec is the arena record for one binding.
type bindingRec struct {
	symbol  SymbolID
	scope   ScopeID
	coords  source.Coords
	kind    BindingKind
	payload any
}

// Table is the Symbol / Scope / Binding Table for one compilation run. It is
// not safe for concurrent use; per the concurrency model, one compilation
// owns exactly one Table, used synchronously from a single goroutine.
type Table struct {
	symbols []symbolRec
	byName  map[string]SymbolID
	// byVariant interns mark-stamped variants by (parent, markStamp).
	byVariant map[variantKey]SymbolID
	nextStamp uint64

	scopes     []scopeRec
	scopeStack []ScopeID

	bindings []bindingRec
	// active is, per symbol, the stack of currently-visible bindings with
	// the most recently pushed (innermost) on top.
	active map[SymbolID][]BindingID
	// hasActive is a fast membership test mirroring len(active[sym]) > 0,
	// answered by HasActiveBinding without touching the map.
	hasActive *bitset.BitSet
}

type variantKey struct {
	parent SymbolID
	stamp  uint64
}

// NewTable constructs an empty table with just the root scope.
func NewTable() *Table {
	t := &Table{
		byName:    make(map[string]SymbolID),
		byVariant: make(map[variantKey]SymbolID),
		nextStamp: 1,
		active:    make(map[SymbolID][]BindingID),
		hasActive: bitset.New(64),
	}
	t.scopes = append(t.scopes, scopeRec{
		level:    -1,
		parent:   InvalidScope,
		active:   true,
		bySymbol: make(map[SymbolID]BindingID),
	})
	t.scopeStack = []ScopeID{RootScope}

	return t
}

// ---------------------------------------------------------------------
// Symbols
// ---------------------------------------------------------------------

// NewSymbol interns a symbol by name: two calls with equal byte-string names
// return the same id.
func (t *Table) NewSymbol(name string) SymbolID {
	if id, ok := t.byName[name]; ok {
		return id
	}

	id := SymbolID(len(t.symbols))
	t.symbols = append(t.symbols, symbolRec{name: name, parent: InvalidSymbol, displayName: name})
	t.byName[name] = id

	return id
}

// NewSymbolVariant interns a mark-stamped variant of parent: two calls with
// equal (parent-uid, mark-stamp) return the same id.
func (t *Table) NewSymbolVariant(parent SymbolID, markStamp uint64) SymbolID {
	key := variantKey{parent, markStamp}
	if id, ok := t.byVariant[key]; ok {
		return id
	}

	id := SymbolID(len(t.symbols))
	t.symbols = append(t.symbols, symbolRec{
		parent:      parent,
		markStamp:   markStamp,
		displayName: t.DisplayName(parent),
	})
	t.byVariant[key] = id

	return id
}

// IsVariant reports whether id was produced by NewSymbolVariant, and if so
// returns its parent and mark stamp.
func (t *Table) IsVariant(id SymbolID) (parent SymbolID, stamp uint64, ok bool) {
	rec := t.symbols[id]
	if rec.parent == InvalidSymbol {
		return InvalidSymbol, 0, false
	}

	return rec.parent, rec.markStamp, true
}

// DisplayName returns the original, unmarked spelling of a symbol; useful for
// diagnostics and AST dumps where the mark chain is irrelevant.
func (t *Table) DisplayName(id SymbolID) string {
	return t.symbols[id].displayName
}

// NewMarkStamp hands out the next monotonically increasing mark stamp,
// starting at 1, for a fresh macro expansion.
func (t *Table) NewMarkStamp() uint64 {
	s := t.nextStamp
	t.nextStamp++

	return s
}

// ---------------------------------------------------------------------
// Scopes
// ---------------------------------------------------------------------

// Scope is a lightweight handle bundling a Table with one of its scopes, so
// that Bind/LookupOnlyHere/LookupHereAndUp can be written as scope.Method(...)
// as in the data model.
type Scope struct {
	t  *Table
	id ScopeID
}

// ID returns the underlying scope identifier.
func (s Scope) ID() ScopeID { return s.id }

// Level returns this scope's nesting level (root is -1).
func (s Scope) Level() int { return s.t.scopes[s.id].level }

// ScopeOf wraps an existing scope id with its owning table.
func (t *Table) ScopeOf(id ScopeID) Scope {
	return Scope{t, id}
}

// NewScope pushes a fresh scope on top of the current one and returns it.
func (t *Table) NewScope() Scope {
	parent := t.scopeStack[len(t.scopeStack)-1]
	id := ScopeID(len(t.scopes))
	t.scopes = append(t.scopes, scopeRec{
		level:    t.scopes[parent].level + 1,
		parent:   parent,
		active:   true,
		bySymbol: make(map[SymbolID]BindingID),
	})
	t.scopeStack = append(t.scopeStack, id)

	return Scope{t, id}
}

// PopScope pops the innermost scope. Every binding made directly in it is
// detached from its symbol's active-binding stack, in the reverse of the
// order in which it was bound (LIFO within the scope). Popping must be
// strict LIFO: it always pops whatever NewScope most recently pushed.
func (t *Table) PopScope() {
	top := t.scopeStack[len(t.scopeStack)-1]
	if top == RootScope {
		panic("symtab: cannot pop the root scope")
	}

	t.scopeStack = t.scopeStack[:len(t.scopeStack)-1]

	rec := &t.scopes[top]
	for i := len(rec.order) - 1; i >= 0; i-- {
		t.detach(rec.order[i])
	}

	rec.active = false
}

// detach removes a binding from its symbol's active-binding stack. It must
// currently be the topmost binding for that symbol, by the LIFO discipline.
func (t *Table) detach(id BindingID) {
	sym := t.bindings[id].symbol
	stack := t.active[sym]

	if len(stack) == 0 || stack[len(stack)-1] != id {
		panic("symtab: scope popped out of LIFO order")
	}

	stack = stack[:len(stack)-1]
	if len(stack) == 0 {
		delete(t.active, sym)
		t.hasActive.Clear(uint(sym))
	} else {
		t.active[sym] = stack
	}
}

// Top returns the scope currently on top of the table-wide scope stack (the
// innermost active lexical scope).
func (t *Table) Top() Scope {
	return Scope{t, t.scopeStack[len(t.scopeStack)-1]}
}

// ---------------------------------------------------------------------
// Bindings
// ---------------------------------------------------------------------

// Binding is a read-only view onto a binding record.
type Binding struct {
	ID      BindingID
	Symbol  SymbolID
	Scope   ScopeID
	Coords  source.Coords
	Kind    BindingKind
	Payload any
}

func (t *Table) view(id BindingID) Binding {
	r := t.bindings[id]
	return Binding{id, r.symbol, r.scope, r.coords, r.kind, r.payload}
}

// Binding returns the full view of a binding by id.
func (t *Table) Binding(id BindingID) Binding {
	return t.view(id)
}

// Bind attempts to bind sym within scope s. If a binding already exists for
// the (symbol, scope) pair, it is returned unchanged with inserted=false
// (kind/coords/payload are ignored in that case). Otherwise a fresh binding
// is created, pushed onto the symbol's active-binding stack, and returned
// with inserted=true. At most one binding may exist per (symbol, scope).
func (s Scope) Bind(sym SymbolID, coords source.Coords, kind BindingKind, payload any) (Binding, bool) {
	t := s.t
	rec := &t.scopes[s.id]

	if existing, ok := rec.bySymbol[sym]; ok {
		return t.view(existing), false
	}

	id := BindingID(len(t.bindings))
	t.bindings = append(t.bindings, bindingRec{sym, s.id, coords, kind, payload})
	rec.bySymbol[sym] = id
	rec.order = append(rec.order, id)

	t.active[sym] = append(t.active[sym], id)
	t.hasActive.Set(uint(sym))

	return t.view(id), true
}

// LookupOnlyHere returns the binding made directly within this scope for
// sym, if any.
func (s Scope) LookupOnlyHere(sym SymbolID) (Binding, bool) {
	if id, ok := s.t.scopes[s.id].bySymbol[sym]; ok {
		return s.t.view(id), true
	}

	return Binding{}, false
}

// LookupHereAndUp returns the nearest active binding of sym visible from
// this scope: one made directly in this scope, or else the nearest one made
// in an ancestor of this scope. The scope must be active.
func (s Scope) LookupHereAndUp(sym SymbolID) (Binding, bool) {
	t := s.t
	if !t.scopes[s.id].active {
		panic("symtab: lookupHereAndUp on an inactive scope")
	}

	level := t.scopes[s.id].level

	stack := t.active[sym]
	for i := len(stack) - 1; i >= 0; i-- {
		b := t.bindings[stack[i]]
		if t.scopes[b.scope].level <= level {
			return t.view(stack[i]), true
		}
	}

	return Binding{}, false
}

// Lookup returns the topmost (innermost) currently active binding for sym,
// across the whole table, regardless of which scope is asking.
func (t *Table) Lookup(sym SymbolID) (Binding, bool) {
	stack := t.active[sym]
	if len(stack) == 0 {
		return Binding{}, false
	}

	return t.view(stack[len(stack)-1]), true
}

// HasActiveBinding is a fast membership test equivalent to
// `_, ok := t.Lookup(sym); ok` but backed by a bitset rather than a map probe.
func (t *Table) HasActiveBinding(sym SymbolID) bool {
	return uint(sym) < t.hasActive.Len() && t.hasActive.Test(uint(sym))
}
