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

	"github.com/tmikov/smalls-sub000/pkg/lexer"
	"github.com/spf13/cobra"
)

// dumpTokensCmd exposes the Lexer stage in isolation: `smalls dump-tokens
// <file>` prints one token per line, the external debugging surface for the
// tokenizer, mirroring the teacher's own stage-by-stage debug subcommands.
var dumpTokensCmd = &cobra.Command{
	Use:   "dump-tokens <source-file>",
	Short: "print the token stream of a source file",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		os.Exit(runDumpTokens(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(dumpTokensCmd)
}

func runDumpTokens(filename string) int {
	p := openPipeline(filename)
	defer p.close()

	for {
		t := p.lexer.NextToken()

		if t.Kind == lexer.Symbol {
			fmt.Printf("symbol %s\n", p.symbols.DisplayName(t.SymbolVal))
		} else {
			fmt.Println(t.String())
		}

		if t.Kind == lexer.EOF {
			break
		}
	}

	if p.reporter.Count() > 0 {
		return 1
	}

	return 0
}
