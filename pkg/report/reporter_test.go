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
package report

import (
	"strings"
	"testing"

	"github.com/tmikov/smalls-sub000/pkg/source"
)

func TestDiagnostic_String_0(t *testing.T) {
	d := Diagnostic{Coords: source.Coords{File: "a.scm", Line: 2, Column: 4}, Message: "bad token"}
	if got := d.String(); got != "a.scm(2).4:bad token" {
		t.Errorf("got %q", got)
	}
}

func TestDiagnostic_String_1(t *testing.T) {
	d := Diagnostic{Coords: source.NoCoords, Message: "bad token"}
	if got := d.String(); got != "bad token" {
		t.Errorf("got %q", got)
	}
}

func TestDefaultReporter_0(t *testing.T) {
	var buf strings.Builder

	r := NewDefaultReporterTo(&buf)
	r.Report(source.Coords{File: "a.scm", Line: 1, Column: 1}, "oops")
	r.Reportf(source.Coords{File: "a.scm", Line: 2, Column: 1}, "oops %d", 2)

	if r.Count() != 2 {
		t.Fatalf("got count %d", r.Count())
	}

	if !strings.Contains(buf.String(), "oops") || !strings.Contains(buf.String(), "oops 2") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestNullReporter_0(t *testing.T) {
	var r NullReporter

	r.Report(source.NoCoords, "discarded")
	r.Reportf(source.NoCoords, "discarded %d", 1)

	if r.Count() != 0 {
		t.Errorf("expected 0, got %d", r.Count())
	}
}

func TestCollectingReporter_0(t *testing.T) {
	r := &CollectingReporter{}

	r.Report(source.Coords{File: "a.scm", Line: 1}, "first")
	r.Reportf(source.Coords{File: "a.scm", Line: 2}, "second %d", 2)

	if r.Count() != 2 {
		t.Fatalf("got count %d", r.Count())
	}

	if r.Diagnostics[0].Message != "first" || r.Diagnostics[1].Message != "second 2" {
		t.Errorf("unexpected diagnostics: %+v", r.Diagnostics)
	}
}
