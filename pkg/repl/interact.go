package repl

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"src.calq.sh/pkg/calc"
	"src.calq.sh/pkg/parse"
	"src.calq.sh/pkg/sys"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	// Registry holds the operations available in the session. If nil, the
	// built-in registry is used.
	Registry *calc.Registry
	// Config is the rc file configuration.
	Config Config
}

// Interact runs an interactive calculator session: it reads one command per
// line, evaluates it, and keeps an ordered history of successful
// calculations. It returns when the input is exhausted or the user asks to
// exit.
func Interact(fds [3]*os.File, cfg *InteractConfig) {
	cleanup := handleSignals(fds[1])
	defer cleanup()

	registry := cfg.Registry
	if registry == nil {
		registry = calc.Builtin()
	}
	prompt := cfg.Config.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}

	out, errOut := fds[1], fds[2]
	hist := newHistory(cfg.Config.MaxHistory)

	fmt.Fprintln(out, "Welcome to the calq calculator REPL!")
	fmt.Fprintln(out, "Type 'help' for instructions, 'history' for past calculations, or 'exit' to quit.")
	fmt.Fprintln(out)

	var ed editor = newMinEditor(fds[0], fds[1], prompt)
	for {
		line, err := ed.ReadLine()
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(errOut, "Editor error:", err)
			} else {
				// A final line without a trailing newline arrives together
				// with EOF and is still evaluated.
				evalLine(line, registry, hist, out, errOut)
			}
			return
		}
		if evalLine(line, registry, hist, out, errOut) {
			return
		}
	}
}

// evalLine evaluates one line of input. It reports whether the user asked to
// end the session.
func evalLine(line string, registry *calc.Registry, hist *history, out, errOut io.Writer) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	// Special commands are recognized before any registry lookup.
	switch strings.ToLower(line) {
	case "help":
		showHelp(out, registry)
		return false
	case "history":
		hist.show(out)
		return false
	case "exit":
		fmt.Fprintln(out, "Exiting calculator. Goodbye!")
		return true
	}

	cmd, err := parse.Parse(line)
	if err != nil {
		fmt.Fprintln(errOut, err)
		fmt.Fprintln(errOut, "Type 'help' for more information.")
		return false
	}

	c, err := registry.Create(cmd.Name, cmd.A, cmd.B)
	if err != nil {
		fmt.Fprintln(errOut, err)
		fmt.Fprintln(errOut, "Type 'help' to see the list of supported operations.")
		return false
	}

	display, err := c.DisplayString()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	fmt.Fprintln(out, "Result:", display)
	hist.add(c)
	return false
}

func showHelp(w io.Writer, registry *calc.Registry) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "    <operation> <number1> <number2>")
	fmt.Fprintln(w, "Supported operations:")
	for _, k := range registry.Kinds() {
		fmt.Fprintf(w, "    %-9s: %s\n", k.Name, k.Doc)
	}
	fmt.Fprintln(w, "Special commands:")
	fmt.Fprintln(w, "    help     : Show this help message.")
	fmt.Fprintln(w, "    history  : Show the history of calculations.")
	fmt.Fprintln(w, "    exit     : Exit the calculator.")
}

// Watches incoming signals for the lifetime of the interactive session. A
// keyboard interrupt exits the process, like typing "exit"; everything else
// is only logged.
func handleSignals(out *os.File) func() {
	sigs := sys.NotifySignals()
	go func() {
		for sig := range sigs {
			if sys.IgnoreSignal(sig) {
				continue
			}
			logger.Println("signal", sys.SignalName(sig))
			if sig == os.Interrupt {
				fmt.Fprintln(out, "\nKeyboard interrupt. Exiting calculator. Goodbye!")
				os.Exit(0)
			}
		}
	}()
	return func() { signal.Stop(sigs) }
}
