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

	"github.com/tmikov/smalls-sub000/pkg/astprint"
	"github.com/tmikov/smalls-sub000/pkg/compiler"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// compileCmd is the primary subcommand: `smalls compile <file>` runs the
// whole pipeline and, on success, prints the AST dump to stdout.
var compileCmd = &cobra.Command{
	Use:   "compile <source-file>",
	Short: "compile a source file and print its AST dump",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		os.Exit(runCompile(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

// runCompile drives one compilation end to end, returning the process exit
// code: 0 on success, 1 if any diagnostic was reported.
func runCompile(filename string) int {
	p := openPipeline(filename)
	defer p.close()

	forms := p.readAll()

	expander := compiler.NewExpander(p.symbols, p.reporter)
	program := expander.CompileProgram(forms)

	if p.reporter.Count() > 0 {
		return 1
	}

	fmt.Print(astprint.Dump(program, terminalWidth(int(os.Stdout.Fd()))))

	return 0
}
