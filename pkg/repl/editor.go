package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"src.calq.sh/pkg/strutil"
	"src.calq.sh/pkg/sys"
)

// The part of a line editor that the interactive loop needs.
type editor interface {
	ReadLine() (string, error)
}

// A line editor sufficient for pipes and dumb terminals. The prompt is only
// written when the input is a terminal; feeding a script on stdin should not
// produce a wall of prompts in the output.
type minEditor struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func newMinEditor(in, out *os.File, prompt string) *minEditor {
	if !sys.IsATTY(in) {
		prompt = ""
	}
	return &minEditor{bufio.NewReader(in), out, prompt}
}

func (ed *minEditor) ReadLine() (string, error) {
	if ed.prompt != "" {
		fmt.Fprint(ed.out, ed.prompt)
	}
	line, err := ed.in.ReadString('\n')
	return strutil.ChopLineEnding(line), err
}
