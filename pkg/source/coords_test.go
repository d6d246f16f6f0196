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
package source

import "testing"

func TestCoords_String_0(t *testing.T) {
	c := Coords{File: "a.scm", Line: 3, Column: 7}
	if got := c.String(); got != "a.scm(3).7" {
		t.Errorf("got %q", got)
	}
}

func TestCoords_String_1(t *testing.T) {
	if got := NoCoords.String(); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestCoords_String_2(t *testing.T) {
	c := Coords{File: "a.scm"}
	if got := c.String(); got != "a.scm" {
		t.Errorf("got %q", got)
	}
}

func TestCoords_Equal_0(t *testing.T) {
	a := Coords{File: "a.scm", Line: 1, Column: 2}
	b := Coords{File: "a.scm", Line: 1, Column: 2}

	if !a.Equal(b) {
		t.Errorf("expected equal")
	}
}

func TestCoords_Equal_1(t *testing.T) {
	a := Coords{File: "a.scm", Line: 1, Column: 2}
	b := Coords{File: "b.scm", Line: 1, Column: 2}

	if a.Equal(b) {
		t.Errorf("expected not equal")
	}
}
