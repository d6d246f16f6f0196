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

	"github.com/tmikov/smalls-sub000/pkg/compiler"
	"github.com/spf13/cobra"
)

// dumpSyntaxCmd exposes the Reader stage in isolation: `smalls dump-syntax
// <file>` prints one top-level datum per line, exactly as read, with no
// macro expansion or symbol resolution performed.
var dumpSyntaxCmd = &cobra.Command{
	Use:   "dump-syntax <source-file>",
	Short: "print the data read from a source file, one per line",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		os.Exit(runDumpSyntax(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(dumpSyntaxCmd)
}

func runDumpSyntax(filename string) int {
	p := openPipeline(filename)
	defer p.close()

	for _, datum := range p.readAll() {
		fmt.Println(compiler.RenderSyntax(p.symbols, datum))
	}

	if p.reporter.Count() > 0 {
		return 1
	}

	return 0
}
