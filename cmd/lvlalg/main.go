// SPDX-License-Identifier: MIT

// Command lvlalg runs row reduction, determinants, inverses and linear
// solves over documents of integer, rational, real or complex entries.
package main

import (
	"os"

	"github.com/katalvlaran/lvlalg/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	os.Exit(cli.GetExitCode(err))
}
