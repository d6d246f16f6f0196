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
package utf8

import (
	"strings"
	"testing"

	"github.com/tmikov/smalls-sub000/pkg/input"
	"github.com/tmikov/smalls-sub000/pkg/report"
)

func decodeAll(t *testing.T, s string) ([]rune, *report.CollectingReporter) {
	t.Helper()

	rep := &report.CollectingReporter{}
	d := NewDecoder(input.NewBuffer(strings.NewReader(s)), "t.scm", rep)

	var out []rune

	for {
		r, _ := d.Get()
		if r == EOF {
			break
		}

		out = append(out, r)
	}

	return out, rep
}

func TestDecoder_ASCII(t *testing.T) {
	out, rep := decodeAll(t, "ab")
	if string(out) != "ab" || rep.Count() != 0 {
		t.Errorf("got %q, errors %d", string(out), rep.Count())
	}
}

func TestDecoder_MultiByte(t *testing.T) {
	out, rep := decodeAll(t, "λ")
	if string(out) != "λ" || rep.Count() != 0 {
		t.Errorf("got %q, errors %d", string(out), rep.Count())
	}
}

func TestDecoder_CRLFNormalised(t *testing.T) {
	out, rep := decodeAll(t, "a\r\nb")
	if string(out) != "a\nb" || rep.Count() != 0 {
		t.Errorf("got %q, errors %d", string(out), rep.Count())
	}
}

func TestDecoder_BareCRNormalised(t *testing.T) {
	out, _ := decodeAll(t, "a\rb")
	if string(out) != "a\nb" {
		t.Errorf("got %q", string(out))
	}
}

func TestDecoder_InvalidLeadByte(t *testing.T) {
	out, rep := decodeAll(t, "a\xffb")
	if rep.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", rep.Count())
	}

	if string(out) != "a�b" {
		t.Errorf("got %q", string(out))
	}
}

func TestDecoder_TruncatedSequence(t *testing.T) {
	out, rep := decodeAll(t, "a\xe2\x82")
	if rep.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", rep.Count())
	}

	if string(out) != "a�" {
		t.Errorf("got %q", string(out))
	}
}

func TestDecoder_OverlongEncoding(t *testing.T) {
	// 0xC0 0x80 is an overlong encoding of NUL.
	out, rep := decodeAll(t, "a\xc0\x80")
	if rep.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", rep.Count())
	}

	if string(out) != "a�" {
		t.Errorf("got %q", string(out))
	}
}

func TestDecoder_Surrogate(t *testing.T) {
	// 0xED 0xA0 0x80 encodes U+D800, a surrogate.
	out, rep := decodeAll(t, "\xed\xa0\x80")
	if rep.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", rep.Count())
	}

	if string(out) != "�" {
		t.Errorf("got %q", string(out))
	}
}

func TestDecoder_Peek2(t *testing.T) {
	d := NewDecoder(input.NewBuffer(strings.NewReader("ab")), "t.scm", &report.CollectingReporter{})

	r1, _ := d.Peek()
	r2, _ := d.Peek2()

	if r1 != 'a' || r2 != 'b' {
		t.Errorf("got %c, %c", r1, r2)
	}

	// Peeking must not consume.
	g, _ := d.Get()
	if g != 'a' {
		t.Errorf("got %c", g)
	}
}
