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
package syntax

import (
	"github.com/tmikov/smalls-sub000/pkg/lexer"
	"github.com/tmikov/smalls-sub000/pkg/report"
	"github.com/tmikov/smalls-sub000/pkg/source"
	"github.com/tmikov/smalls-sub000/pkg/symtab"
)

// Reader turns a Lexer's token stream into a sequence of top-level Syntax
// data, expanding quote/quasiquote abbreviations and honouring #; datum
// comments.
type Reader struct {
	lx       *lexer.Lexer
	reporter report.Reporter
	symbols  *symtab.Table

	have bool
	tok  lexer.Token
}

// NewReader constructs a Reader over a Lexer sharing the same reporter and
// symbol table as the rest of the pipeline.
func NewReader(lx *lexer.Lexer, reporter report.Reporter, symbols *symtab.Table) *Reader {
	return &Reader{lx: lx, reporter: reporter, symbols: symbols}
}

func (r *Reader) peek() lexer.Token {
	if !r.have {
		r.tok = r.lx.NextToken()
		r.have = true
	}

	return r.tok
}

func (r *Reader) next() lexer.Token {
	t := r.peek()
	r.have = false

	return t
}

// quoteNames maps each abbreviation token to the symbol its expansion is
// headed by.
var quoteNames = map[lexer.Kind]string{
	lexer.Apostrophe:     "quote",
	lexer.Backtick:       "quasiquote",
	lexer.Comma:          "unquote",
	lexer.CommaAt:        "unquote-splicing",
	lexer.HashApostrophe: "syntax",
	lexer.HashBacktick:   "quasisyntax",
	lexer.HashComma:      "unsyntax",
	lexer.HashCommaAt:    "unsyntax-splicing",
}

// ReadDatum reads one top-level datum, returning (nil, false) once the
// input is exhausted. Parse errors are reported and recovered from: a
// malformed datum is replaced by Nil and scanning resumes at the next
// token.
func (r *Reader) ReadDatum() (*Syntax, bool) {
	for {
		t := r.peek()
		if t.Kind == lexer.EOF {
			return nil, false
		}

		if t.Kind == lexer.DatumComment {
			r.next()

			if _, ok := r.readDatumInner(); !ok {
				return nil, false
			}

			continue
		}

		return r.readDatumInner()
	}
}

// readDatumInner reads exactly one datum. A #; met where a datum is expected
// discards the datum after it and reads the one that follows.
func (r *Reader) readDatumInner() (*Syntax, bool) {
	t := r.next()

	switch t.Kind {
	case lexer.EOF:
		r.reporter.Report(t.Coords, "unexpected end of file")
		return nil, false
	case lexer.RParen, lexer.RSquare:
		r.reporter.Report(t.Coords, "unexpected closing bracket")
		return NewNil(t.Coords), true
	case lexer.Dot:
		r.reporter.Report(t.Coords, "unexpected .")
		return NewNil(t.Coords), true
	case lexer.Bool:
		return NewBool(t.Coords, t.BoolVal), true
	case lexer.Integer:
		return NewInteger(t.Coords, t.IntVal), true
	case lexer.Real:
		return NewReal(t.Coords, t.RealVal), true
	case lexer.Str:
		return NewString(t.Coords, t.StrVal), true
	case lexer.Symbol:
		return NewSymbol(t.Coords, t.SymbolVal), true
	case lexer.LParen, lexer.LSquare:
		closer := lexer.RParen
		if t.Kind == lexer.LSquare {
			closer = lexer.RSquare
		}

		return r.readList(t, closer)
	case lexer.HashLParen:
		return r.readVector(t)
	case lexer.DatumComment:
		// A #; at a position where a datum was expected: skip the commented
		// datum, then read the one that follows.
		if _, ok := r.readDatumInner(); !ok {
			return nil, false
		}

		return r.readDatumInner()
	default:
		if name, ok := quoteNames[t.Kind]; ok {
			return r.readAbbrev(t, name)
		}

		r.reporter.Reportf(t.Coords, "unexpected token %s", t.Kind)

		return NewNil(t.Coords), true
	}
}

// readAbbrev expands 'x, `x, ,x, ,@x, #'x, #`x, #,x and #,@x into
// (name x).
func (r *Reader) readAbbrev(t lexer.Token, name string) (*Syntax, bool) {
	datum, ok := r.ReadDatum()
	if !ok {
		r.reporter.Report(t.Coords, "missing datum after abbreviation")
		return NewNil(t.Coords), true
	}

	sym := r.symbols.NewSymbol(name)
	head := NewSymbol(t.Coords, sym)
	tail := NewPair(t.Coords, datum, NewNil(t.Coords))

	return NewPair(t.Coords, head, tail), true
}

// readList reads the body of a "(" or "[" form, consuming its matching
// closer and handling an optional ". tail" before it.
func (r *Reader) readList(open lexer.Token, closer lexer.Kind) (*Syntax, bool) {
	var elems []*Syntax

	tail := NewNil(open.Coords)

	for {
		t := r.peek()

		switch {
		case t.Kind == lexer.EOF:
			r.reporter.Report(open.Coords, "unterminated list")
			return r.buildList(open.Coords, elems, tail), false
		case t.Kind == lexer.RParen || t.Kind == lexer.RSquare:
			if t.Kind != closer {
				r.reporter.Reportf(t.Coords, "mismatched closing bracket")
			}

			r.next()

			return r.buildList(open.Coords, elems, tail), true
		case t.Kind == lexer.Dot:
			r.next()

			d, ok := r.ReadDatum()
			if !ok {
				r.reporter.Report(t.Coords, "missing datum after .")
				return r.buildList(open.Coords, elems, tail), false
			}

			tail = d

			closeTok := r.peek()
			if closeTok.Kind != lexer.RParen && closeTok.Kind != lexer.RSquare {
				r.reporter.Report(closeTok.Coords, "expected closing bracket after dotted tail")
			} else {
				r.next()
			}

			return r.buildList(open.Coords, elems, tail), true
		case t.Kind == lexer.DatumComment:
			r.next()

			if _, ok := r.readDatumInner(); !ok {
				return r.buildList(open.Coords, elems, tail), false
			}
		default:
			d, ok := r.readDatumInner()
			if !ok {
				return r.buildList(open.Coords, elems, tail), false
			}

			elems = append(elems, d)
		}
	}
}

func (r *Reader) buildList(coords source.Coords, elems []*Syntax, tail *Syntax) *Syntax {
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = NewPair(elems[i].Coords, elems[i], result)
	}

	if result == tail && len(elems) == 0 {
		return tail
	}

	result.Coords = coords

	return result
}

// readVector reads the body of a "#(" form, consuming its matching ")".
func (r *Reader) readVector(open lexer.Token) (*Syntax, bool) {
	var elems []*Syntax

	for {
		t := r.peek()

		switch {
		case t.Kind == lexer.EOF:
			r.reporter.Report(open.Coords, "unterminated vector")
			return NewVector(open.Coords, elems), false
		case t.Kind == lexer.RParen:
			r.next()
			return NewVector(open.Coords, elems), true
		case t.Kind == lexer.DatumComment:
			r.next()

			if _, ok := r.readDatumInner(); !ok {
				return NewVector(open.Coords, elems), false
			}
		default:
			d, ok := r.readDatumInner()
			if !ok {
				return NewVector(open.Coords, elems), false
			}

			elems = append(elems, d)
		}
	}
}
