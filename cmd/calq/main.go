// Calq is an interactive calculator. It reads commands of the form
// "<operation> <number1> <number2>" either from its command line or from an
// interactive read-eval-print loop, and also speaks the language server
// protocol for editing calq command files.
package main

import (
	"os"

	"src.calq.sh/pkg/buildinfo"
	"src.calq.sh/pkg/lsp"
	"src.calq.sh/pkg/prog"
	"src.calq.sh/pkg/repl"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		&buildinfo.Program{}, &lsp.Program{}, &repl.Program{}))
}
