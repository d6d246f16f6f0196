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

// Package lexer implements the Lexer component: code points from the UTF-8
// Decoder become the token stream consumed by the Syntax Reader.
package lexer

import (
	"fmt"

	"github.com/tmikov/smalls-sub000/pkg/source"
	"github.com/tmikov/smalls-sub000/pkg/symtab"
)

// Kind tags the variant of a Token.
type Kind uint8

// Token kinds, matching the tagged variant enumerated in the data model.
// NestedCommentStart/NestedCommentEnd are never produced by the lexer: the
// nested-comment scanner counts "/*" and "*/" characters directly, so these
// kinds never reach the Syntax Reader.
const (
	EOF Kind = iota
	LParen
	RParen
	LSquare
	RSquare
	HashLParen
	Apostrophe
	Backtick
	Comma
	CommaAt
	HashApostrophe
	HashBacktick
	HashComma
	HashCommaAt
	Dot
	DatumComment
	Bool
	Integer
	Real
	Str
	Symbol
	NestedCommentStart
	NestedCommentEnd
)

var kindNames = map[Kind]string{
	EOF:                "EOF",
	LParen:             "(",
	RParen:             ")",
	LSquare:            "[",
	RSquare:            "]",
	HashLParen:         "#(",
	Apostrophe:         "'",
	Backtick:           "`",
	Comma:              ",",
	CommaAt:            ",@",
	HashApostrophe:     "#'",
	HashBacktick:       "#`",
	HashComma:          "#,",
	HashCommaAt:        "#,@",
	Dot:                ".",
	DatumComment:       "#;",
	Bool:               "bool",
	Integer:            "integer",
	Real:               "real",
	Str:                "string",
	Symbol:             "symbol",
	NestedCommentStart: "/*",
	NestedCommentEnd:   "*/",
}

// String renders the kind's punctuation/name, for diagnostics.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", k)
}

// Token is a single lexical unit together with the source location at which
// it begins.
type Token struct {
	Kind   Kind
	Coords source.Coords

	BoolVal   bool
	IntVal    int64
	RealVal   float64
	StrVal    string
	SymbolVal symtab.SymbolID
}

// String renders a token for debugging/snapshot output.
func (t Token) String() string {
	switch t.Kind {
	case Bool:
		return fmt.Sprintf("#%t", t.BoolVal)
	case Integer:
		return fmt.Sprintf("%d", t.IntVal)
	case Real:
		return fmt.Sprintf("%g", t.RealVal)
	case Str:
		return fmt.Sprintf("%q", t.StrVal)
	case Symbol:
		return fmt.Sprintf("sym#%d", t.SymbolVal)
	default:
		return t.Kind.String()
	}
}
