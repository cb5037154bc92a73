// Package progtest provides a DSL for testing subprograms.
//
// Tests are written as a list of [Case] values describing the command-line
// arguments, the standard input, and the expected output and exit status:
//
//	Test(t, someProgram{},
//		ThatCalq("-version").WritesStdout("0.1.0\n"),
//		ThatCalq("-bad-flag").ExitsWith(2),
//	)
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.calq.sh/pkg/must"
	"src.calq.sh/pkg/prog"
)

// Case is a test case for a subprogram.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exit   int
	stdout output
	stderr output
}

type output struct {
	content string
	partial bool
}

// ThatCalq returns a new Case with the given command-line arguments.
func ThatCalq(args ...string) Case {
	return Case{args: append([]string{"calq"}, args...)}
}

// WithStdin returns an altered Case that feeds the given input to the
// program's stdin.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark that a Case expects no
// output and a zero exit status.
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program to exit with
// the given status.
func (c Case) ExitsWith(code int) Case {
	c.want.exit = code
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program to
// write output to stdout containing the given text.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program to
// write output to stderr containing the given text.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs the test cases against the given subprograms.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			r := Run(c.args, c.stdin, p)
			if r.exit != c.want.exit {
				t.Errorf("got exit %v, want %v", r.exit, c.want.exit)
			}
			checkOutput(t, "stdout", r.stdout.content, c.want.stdout)
			checkOutput(t, "stderr", r.stderr.content, c.want.stderr)
		})
	}
}

func checkOutput(t *testing.T, what, got string, want output) {
	t.Helper()
	if want.partial {
		if !strings.Contains(got, want.content) {
			t.Errorf("got %v %q, want string containing %q", what, got, want.content)
		}
	} else if got != want.content {
		t.Errorf("got %v %q, want %q", what, got, want.content)
	}
}

// Run runs the given subprograms with the given arguments and stdin, and
// captures the exit status and output.
func Run(args []string, stdin string, programs ...prog.Program) Result {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()

	// Inputs in tests are small enough to fit in the pipe buffer, so this
	// doesn't block.
	_, err := w0.WriteString(stdin)
	must.OK(err)
	must.OK(w0.Close())

	stdoutDone := captureOutput(r1)
	stderrDone := captureOutput(r2)

	exit := prog.Run([3]*os.File{r0, w1, w2}, args, programs...)
	must.OK(w1.Close())
	must.OK(w2.Close())
	must.OK(r0.Close())

	return Result{exit, output{content: <-stdoutDone}, output{content: <-stderrDone}}
}

// Result is the captured result of running a subprogram.
type Result struct {
	exit   int
	stdout output
	stderr output
}

// Exit returns the exit status.
func (r Result) Exit() int { return r.exit }

// Stdout returns what was written to stdout.
func (r Result) Stdout() string { return r.stdout.content }

// Stderr returns what was written to stderr.
func (r Result) Stderr() string { return r.stderr.content }

func captureOutput(r *os.File) <-chan string {
	done := make(chan string, 1)
	go func() {
		content, err := io.ReadAll(r)
		must.OK(r.Close())
		must.OK(err)
		done <- string(content)
	}()
	return done
}
