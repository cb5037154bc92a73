package repl

import (
	"fmt"
	"os"
	"strings"

	"src.calq.sh/pkg/calc"
	"src.calq.sh/pkg/parse"
)

// Script evaluates a single command given as command-line arguments, like
// "calq add 1 2", and returns the exit status.
func Script(fds [3]*os.File, args []string, registry *calc.Registry) int {
	cmd, err := parse.Parse(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return 2
	}
	c, err := registry.Create(cmd.Name, cmd.A, cmd.B)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return 2
	}
	display, err := c.DisplayString()
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return 2
	}
	fmt.Fprintln(fds[1], display)
	return 0
}
