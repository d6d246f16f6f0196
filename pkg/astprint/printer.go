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

// Package astprint implements the AST dump pretty-printer described in the
// external-interfaces section of the front end: a human-readable,
// non-stable-contract rendering of a compiled ast.Node tree, four spaces of
// indentation per nesting level. Unlike the source material's stream
// formatter, which threaded its indent level through a process-global
// stream index (the "OStreamSetIndent trick"), indentation here is an
// explicit counter carried on the Printer value.
package astprint

import (
	"strings"

	"golang.org/x/text/width"
)

// Printer accumulates the dump one line at a time. It plays the same role
// as the source material's FormattedText: a small mutable line buffer with
// an explicit indent counter, rather than a global stream index.
type Printer struct {
	indent   int
	lines    []string
	maxWidth uint // 0 means unlimited; set from the terminal width when stdout is a TTY.
}

// NewPrinter constructs a Printer. maxWidth clips each rendered line to that
// many display columns (counting East-Asian wide runes as two); 0 leaves
// lines unclipped, appropriate when stdout is not a terminal.
func NewPrinter(maxWidth uint) *Printer {
	return &Printer{maxWidth: maxWidth}
}

// Indent increases (positive) or decreases (negative) the current indent
// level, one level being four spaces.
func (p *Printer) Indent(delta int) {
	p.indent += delta
}

// NewLine starts a fresh line, pre-filled with the current indentation.
func (p *Printer) NewLine() {
	p.lines = append(p.lines, strings.Repeat("    ", p.indent))
}

// WriteString appends to the line currently being built.
func (p *Printer) WriteString(s string) {
	if len(p.lines) == 0 {
		p.lines = append(p.lines, "")
	}

	n := len(p.lines) - 1
	p.lines[n] += s
}

// String renders the accumulated lines, clipping each to maxWidth display
// columns (if set).
func (p *Printer) String() string {
	var b strings.Builder

	for _, l := range p.lines {
		b.WriteString(clipToWidth(l, p.maxWidth))
		b.WriteByte('\n')
	}

	return b.String()
}

// clipToWidth truncates s to at most maxWidth display columns, treating
// East-Asian wide/fullwidth runes as occupying two columns. maxWidth == 0
// means no clipping.
func clipToWidth(s string, maxWidth uint) string {
	if maxWidth == 0 {
		return s
	}

	var (
		b   strings.Builder
		col uint
	)

	for _, r := range s {
		w := uint(1)
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w = 2
		}

		if col+w > maxWidth {
			break
		}

		b.WriteRune(r)
		col += w
	}

	return b.String()
}
