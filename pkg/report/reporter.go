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

// Package report implements the Error Reporter component: an abstract sink
// for (coords, message) diagnostics which accumulates errors without halting
// compilation, following the error taxonomy and policy of the front end
// (only I/O failures abort; everything else is reported and compilation
// continues).
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/tmikov/smalls-sub000/pkg/source"
)

// Diagnostic is a single (coords, message) pair collected by a Reporter.
type Diagnostic struct {
	Coords  source.Coords
	Message string
}

// String formats a diagnostic using the "filename(line).column:message"
// convention from the external interface spec.  The trailing colon is
// dropped when no location fields were printed at all.
func (d Diagnostic) String() string {
	loc := d.Coords.String()
	if loc == "" {
		return d.Message
	}

	return fmt.Sprintf("%s:%s", loc, d.Message)
}

// Reporter is the abstract sink every pipeline stage reports diagnostics
// through.  A single Reporter instance is shared across one compilation run
// (one UTF-8 decoder, one lexer, one syntax reader, one parser).
type Reporter interface {
	// Report records a single diagnostic at the given coordinates.
	Report(coords source.Coords, message string)
	// Reportf is a convenience wrapper applying fmt.Sprintf before Report.
	Reportf(coords source.Coords, format string, args ...any)
	// Count returns the number of diagnostics reported so far.
	Count() uint
}

// DefaultReporter is the reference Reporter implementation: it counts every
// diagnostic and writes one line per diagnostic to an underlying writer
// (stderr, by default from NewDefaultReporter).
type DefaultReporter struct {
	out   io.Writer
	count uint
}

// NewDefaultReporter constructs a DefaultReporter which writes to stderr.
func NewDefaultReporter() *DefaultReporter {
	return NewDefaultReporterTo(os.Stderr)
}

// NewDefaultReporterTo constructs a DefaultReporter which writes to a given
// writer; useful for tests which wish to capture the diagnostic stream.
func NewDefaultReporterTo(out io.Writer) *DefaultReporter {
	return &DefaultReporter{out: out}
}

// Report implements Reporter.
func (r *DefaultReporter) Report(coords source.Coords, message string) {
	r.count++
	fmt.Fprintln(r.out, Diagnostic{coords, message}.String())
}

// Reportf implements Reporter.
func (r *DefaultReporter) Reportf(coords source.Coords, format string, args ...any) {
	r.Report(coords, fmt.Sprintf(format, args...))
}

// Count implements Reporter.
func (r *DefaultReporter) Count() uint {
	return r.count
}

// NullReporter discards every diagnostic.  The lexer's nested-comment scanner
// (§4.2) swaps its reporter for one of these while it scans a comment body,
// then restores the original reporter on every exit path.
type NullReporter struct{}

// Report implements Reporter by discarding the diagnostic.
func (NullReporter) Report(source.Coords, string) {}

// Reportf implements Reporter by discarding the diagnostic.
func (NullReporter) Reportf(source.Coords, string, ...any) {}

// Count implements Reporter; a NullReporter never accumulates anything.
func (NullReporter) Count() uint { return 0 }

// CollectingReporter accumulates every diagnostic in memory, in addition to
// counting them.  Useful for tests which want to assert on the exact set of
// messages produced, and for the hosting CLI which wants to print a summary
// after driving a compilation.
type CollectingReporter struct {
	Diagnostics []Diagnostic
}

// Report implements Reporter.
func (r *CollectingReporter) Report(coords source.Coords, message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{coords, message})
}

// Reportf implements Reporter.
func (r *CollectingReporter) Reportf(coords source.Coords, format string, args ...any) {
	r.Report(coords, fmt.Sprintf(format, args...))
}

// Count implements Reporter.
func (r *CollectingReporter) Count() uint {
	return uint(len(r.Diagnostics))
}
