//go:build !windows && !plan9

package repl

import (
	"os"
	"strings"
	"testing"

	"github.com/creack/pty"

	"src.calq.sh/pkg/calc"
	"src.calq.sh/pkg/must"
)

// The prompt is only written when the input is a terminal, so this test reads
// commands from a pty instead of a pipe.
func TestInteract_PromptOnTTY(t *testing.T) {
	ptmx, tty := must.OK2(pty.Open())
	defer ptmx.Close()
	defer tty.Close()

	outR, outW := must.Pipe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		Interact([3]*os.File{tty, outW, outW},
			&InteractConfig{Registry: calc.Builtin()})
	}()

	must.OK1(ptmx.WriteString("exit\n"))
	<-done
	must.OK(outW.Close())
	got := string(must.ReadAllAndClose(outR))

	if !strings.Contains(got, defaultPrompt) {
		t.Errorf("output %q misses prompt %q", got, defaultPrompt)
	}
	if !strings.Contains(got, "Exiting calculator. Goodbye!") {
		t.Errorf("output %q misses goodbye message", got)
	}
}

func TestInteract_NoPromptOnPipe(t *testing.T) {
	inR, inW := must.Pipe()
	outR, outW := must.Pipe()

	must.OK1(inW.WriteString("exit\n"))
	must.OK(inW.Close())

	Interact([3]*os.File{inR, outW, outW},
		&InteractConfig{Registry: calc.Builtin()})
	must.OK(outW.Close())
	must.OK(inR.Close())
	got := string(must.ReadAllAndClose(outR))

	if strings.Contains(got, defaultPrompt) {
		t.Errorf("output %q contains prompt; pipes should not be prompted", got)
	}
}
