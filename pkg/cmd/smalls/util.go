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

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// terminalWidth returns the display width to clip the AST dump to: the
// actual terminal width when fd is a TTY, 0 (unlimited) otherwise. 0 is
// also returned if the width cannot be determined.
func terminalWidth(fd int) uint {
	if !term.IsTerminal(fd) {
		return 0
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0
	}

	return uint(w)
}
