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
package symtab

// MarkKind distinguishes an anti-mark from a real mark. The Design Notes
// call for a tagged sum rather than sharing one struct under a sign-bit
// convention, so Mark carries an explicit kind instead of relying on Stamp's
// sign.
type MarkKind uint8

const (
	// AntiMarkKind tags syntax introduced by the user, pending cancellation
	// against a following real mark.
	AntiMarkKind MarkKind = iota
	// RealMarkKind tags syntax introduced by a macro's definition
	// environment.
	RealMarkKind
)

// Mark is one element of a Syntax node's mark chain.
type Mark struct {
	Kind MarkKind
	// Stamp and DefScope are only meaningful when Kind == RealMarkKind.
	Stamp    uint64
	DefScope ScopeID
}

// NewAntiMark constructs an anti-mark, used to tag the input to a macro
// transformer before it is invoked.
func NewAntiMark() Mark {
	return Mark{Kind: AntiMarkKind}
}

// NewRealMark allocates a fresh mark stamp and constructs a real mark
// referencing the scope active when the macro was defined.
func (t *Table) NewRealMark(defScope ScopeID) Mark {
	return Mark{Kind: RealMarkKind, Stamp: t.NewMarkStamp(), DefScope: defScope}
}

// MarkChain is an immutable, structurally-shared singly-linked list of
// marks threaded from a Syntax node towards the root. A nil *MarkChain is
// the empty chain.
type MarkChain struct {
	Mark Mark
	Next *MarkChain
}

// Wrap prepends m onto chain, applying the cancellation rule: concatenating
// a real mark before a chain whose head is an anti-mark cancels both and
// yields chain.Next; otherwise it is a plain prepend.
func Wrap(chain *MarkChain, m Mark) *MarkChain {
	if m.Kind == RealMarkKind && chain != nil && chain.Mark.Kind == AntiMarkKind {
		return chain.Next
	}

	return &MarkChain{Mark: m, Next: chain}
}

// Equal performs the structural comparison the data model requires of mark
// chains (two chains are equal iff they have the same marks in the same
// order), independent of whether they happen to share storage.
func (c *MarkChain) Equal(o *MarkChain) bool {
	for c != nil && o != nil {
		if c.Mark != o.Mark {
			return false
		}

		c, o = c.Next, o.Next
	}

	return c == nil && o == nil
}
