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

// Package source provides the shared source-location vocabulary used by every
// stage of the pipeline, from the UTF-8 decoder through to the AST.
package source

import "fmt"

// Coords identifies a single point within a source file: a file name, a
// 1-based line number and a column derived from the byte offset of that
// point minus the byte offset of the start of its line.  A zero Line or
// Column means "unknown", matching the diagnostic format in which absent
// fields are simply omitted.
type Coords struct {
	File   string
	Line   int
	Column int
}

// NoCoords is used when a diagnostic cannot be attributed to a specific
// location (e.g. a top-level I/O failure).
var NoCoords = Coords{}

// String renders coordinates as "filename(line).column", without a trailing
// colon (report.Diagnostic adds that); any field that is empty/zero is
// omitted, along with its separators.  This mirrors the teacher's SyntaxError.Error(), except the
// teacher reports raw byte offsets where we report (line, column).
func (c Coords) String() string {
	s := c.File
	if c.Line != 0 {
		s += fmt.Sprintf("(%d)", c.Line)
	}

	if c.Column != 0 {
		s += fmt.Sprintf(".%d", c.Column)
	}

	return s
}

// Equal compares two coordinate sets field-by-field.  The source material
// this system is derived from infamously compared "fileName == fileName"
// (a typo comparing a field to itself); we compare against the argument's
// field instead.
func (c Coords) Equal(x Coords) bool {
	return c.File == x.File && c.Line == x.Line && c.Column == x.Column
}
