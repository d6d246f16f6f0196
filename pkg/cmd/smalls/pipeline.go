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
package smalls

import (
	"fmt"
	"os"

	"github.com/tmikov/smalls-sub000/pkg/input"
	"github.com/tmikov/smalls-sub000/pkg/lexer"
	"github.com/tmikov/smalls-sub000/pkg/report"
	"github.com/tmikov/smalls-sub000/pkg/symtab"
	"github.com/tmikov/smalls-sub000/pkg/syntax"
	"github.com/tmikov/smalls-sub000/pkg/utf8"
)

// pipeline bundles the three front-end stages that every subcommand shares:
// a Lexer and Reader over one opened file, plus the symbol table and
// reporter threaded through the rest of compilation.
type pipeline struct {
	symbols  *symtab.Table
	reporter report.Reporter
	lexer    *lexer.Lexer
	reader   *syntax.Reader
	close    func() error
}

// openPipeline opens filename and wires up the Decoder/Lexer/Reader stack
// over it, sharing one reporter and symbol table. Exits the process (code 2)
// on I/O failure, matching the teacher's ReadAndUncompress-failure
// convention in pkg/cmd/zkc/util.go.
func openPipeline(filename string) *pipeline {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	reporter := report.NewDefaultReporter()
	symbols := symtab.NewTable()
	buf := input.NewBuffer(f)
	dec := utf8.NewDecoder(buf, filename, reporter)
	lx := lexer.NewLexer(dec, reporter, symbols)
	rd := syntax.NewReader(lx, reporter, symbols)

	return &pipeline{symbols: symbols, reporter: reporter, lexer: lx, reader: rd, close: f.Close}
}

// readAll drains the Reader into a slice of top-level data.
func (p *pipeline) readAll() []*syntax.Syntax {
	var forms []*syntax.Syntax

	for {
		datum, ok := p.reader.ReadDatum()
		if !ok {
			break
		}

		forms = append(forms, datum)
	}

	return forms
}
