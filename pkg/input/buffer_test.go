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
package input

import (
	"strings"
	"testing"
)

func TestBuffer_Peek_0(t *testing.T) {
	b := NewBuffer(strings.NewReader("hello"))

	if got := string(b.Peek(3)); got != "hel" {
		t.Errorf("got %q", got)
	}
	// Peek must not consume.
	if got := string(b.Peek(5)); got != "hello" {
		t.Errorf("got %q", got)
	}
}

func TestBuffer_Peek_ShortAtEOF(t *testing.T) {
	b := NewBuffer(strings.NewReader("hi"))

	if got := string(b.Peek(10)); got != "hi" {
		t.Errorf("got %q", got)
	}
}

func TestBuffer_AdvancePutBack(t *testing.T) {
	b := NewBuffer(strings.NewReader("abcdef"))

	b.Advance(2)
	if got := string(b.Peek(2)); got != "cd" {
		t.Errorf("got %q", got)
	}

	b.PutBack(2)
	if got := string(b.Peek(2)); got != "ab" {
		t.Errorf("got %q", got)
	}
}

func TestBuffer_PutBackPastStart_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()

	b := NewBuffer(strings.NewReader("abc"))
	b.PutBack(1)
}

func TestBuffer_OffsetAndEOF(t *testing.T) {
	b := NewBuffer(strings.NewReader("ab"))

	if b.AtEOF() {
		t.Errorf("should not be at EOF before consuming")
	}

	b.Advance(2)

	if b.Offset() != 2 {
		t.Errorf("got offset %d", b.Offset())
	}

	if !b.AtEOF() {
		t.Errorf("expected EOF after consuming all bytes")
	}
}

func TestBuffer_PeekByte(t *testing.T) {
	b := NewBufferFromBytes([]byte("xy"))

	if c, ok := b.PeekByte(0); !ok || c != 'x' {
		t.Errorf("got %c, %v", c, ok)
	}

	if _, ok := b.PeekByte(5); ok {
		t.Errorf("expected no byte at offset 5")
	}
}
