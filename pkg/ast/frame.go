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

// Package ast defines the target of compilation: Frames and Variables
// describing the run-time environment structure, and the Node tagged
// union describing the compiled program shape, both produced by the
// Parser/Expander out of a Syntax tree.
package ast

import (
	"fmt"

	"github.com/tmikov/smalls-sub000/pkg/source"
	"github.com/tmikov/smalls-sub000/pkg/symtab"
)

// FrameID identifies a Frame: one run-time activation record's worth of
// Variables, corresponding to one Closure or Let/Fix body.
type FrameID int32

// VariableID identifies a Variable within its owning Frame.
type VariableID int32

// Frame describes one activation record: an ordered list of Variables,
// together with the enclosing Frame (nil for the outermost/top-level
// frame).
type Frame struct {
	ID       FrameID
	Parent   *Frame
	Level    int
	Variables []*Variable

	anonCounters map[string]int
}

// Variable is one slot within a Frame.
type Variable struct {
	Frame  *Frame
	Index  VariableID
	Name   string
	Symbol symtab.SymbolID
	// Coords is where the variable was introduced: the formal parameter, the
	// `define`/`let` binding, or NoCoords for a compiler-synthesised one.
	Coords source.Coords
	// IsAnonymous marks a compiler-synthesised temporary (never written by
	// the user, never resolvable by name lookup).
	IsAnonymous bool
}

// NewFrame allocates a fresh frame nested under parent (nil for the
// top-level frame).
func NewFrame(id FrameID, parent *Frame) *Frame {
	level := 0
	if parent != nil {
		level = parent.Level + 1
	}

	return &Frame{ID: id, Parent: parent, Level: level, anonCounters: make(map[string]int)}
}

// NewVariable appends a named Variable to the frame, bound to sym, recording
// coords as its defining location.
func (f *Frame) NewVariable(name string, sym symtab.SymbolID, coords source.Coords) *Variable {
	v := &Variable{Frame: f, Index: VariableID(len(f.Variables)), Name: name, Symbol: sym, Coords: coords}
	f.Variables = append(f.Variables, v)

	return v
}

// NewAnonymous appends a compiler-synthesised temporary named
// "tmp_<prefix>_<n>", where n is the number of previously-synthesised
// temporaries sharing prefix within this frame.
func (f *Frame) NewAnonymous(prefix string) *Variable {
	n := f.anonCounters[prefix]
	f.anonCounters[prefix] = n + 1

	name := fmt.Sprintf("tmp_%s_%d", prefix, n)
	v := &Variable{Frame: f, Index: VariableID(len(f.Variables)), Name: name, IsAnonymous: true, Symbol: symtab.InvalidSymbol, Coords: source.NoCoords}
	f.Variables = append(f.Variables, v)

	return v
}
