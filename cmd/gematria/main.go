// SPDX-License-Identifier: MIT

// Command gematria computes letter values, verse statistics and the Sefer
// Yetzirah structures (classification, 231 gates, diagram) over Hebrew,
// Greek, Arabic and Latin text.
//
// Usage:
//
//	gematria [--config file] [--table name] [--policy strict|lenient] <command>
//
// Run "gematria help" for the command list.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gematria:", err)
		os.Exit(1)
	}
}

// run executes the CLI with explicit streams.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}
