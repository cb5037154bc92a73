// Package repl is the entry point for the interactive surface of calq. It
// owns the input loop, the session history and the rc file; all arithmetic
// goes through the calc package.
package repl

import (
	"fmt"
	"os"

	"src.calq.sh/pkg/calc"
	"src.calq.sh/pkg/logutil"
	"src.calq.sh/pkg/prog"
)

var logger = logutil.GetLogger("[repl] ")

// Program is the REPL subprogram. It is the fallback subprogram and should be
// composed after all others.
type Program struct {
	rc   string
	noRc bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.StringVar(&p.rc, "rc", "", "Path to the rc file")
	fs.BoolVar(&p.noRc, "norc", false, "Don't read the rc file")
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	registry := calc.Builtin()

	if len(args) > 0 {
		return prog.Exit(Script(fds, args, registry))
	}

	cfg := defaultConfig()
	if !p.noRc {
		path := p.rc
		if path == "" {
			var err error
			path, err = rcPath()
			if err != nil {
				fmt.Fprintln(fds[2], "Warning:", err)
			}
		}
		if path != "" {
			var err error
			cfg, err = readConfig(path)
			if err != nil {
				fmt.Fprintln(fds[2], "Warning:", err)
				fmt.Fprintln(fds[2], "Continuing with default configuration.")
			}
		}
	}

	Interact(fds, &InteractConfig{Registry: registry, Config: cfg})
	return nil
}
