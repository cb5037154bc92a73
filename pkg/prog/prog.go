// Package prog provides the entry point to calq. Its subpackages correspond
// to subprograms of calq.
package prog

// This package sets up the basic environment, parses the shared flag set and
// calls the first applicable subprogram: the version printer, the language
// server, or the REPL.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"src.calq.sh/pkg/logutil"
)

// FlagSet wraps a [flag.FlagSet], and provides methods for the flags shared
// by multiple subprograms. A shared flag is only registered the first time
// one of those methods is called.
type FlagSet struct {
	*flag.FlagSet
	json *bool
}

// JSON returns a pointer to the value of the shared -json flag, registering
// it if needed.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"Show the output from -buildinfo or -version in JSON")
		fs.json = &json
	}
	return fs.json
}

// Program represents a subprogram.
type Program interface {
	// RegisterFlags registers the subprogram's flags on the shared flag set.
	RegisterFlags(fs *FlagSet)
	// Run runs the subprogram. It may return ErrNextProgram to defer to the
	// next subprogram.
	Run(fds [3]*os.File, args []string) error
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: calq [flags] [operation number1 number2]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the process.
func Run(fds [3]*os.File, args []string, programs ...Program) int {
	fs := flag.NewFlagSet("calq", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	var log string
	var cpuProfile string
	var help bool
	fs.StringVar(&log, "log", "", "Write debug log to file")
	fs.StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	fs.BoolVar(&help, "help", false, "Show usage help and quit")

	flagSet := FlagSet{FlagSet: fs}
	for _, program := range programs {
		program.RegisterFlags(&flagSet)
	}

	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. We define -help, but not -h, so
			// this means that -h has been requested. Handle this by printing
			// the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot create CPU profile:", err)
			fmt.Fprintln(fds[2], "Continuing without CPU profiling.")
		} else if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot start CPU profiling:", err)
			fmt.Fprintln(fds[2], "Continuing without CPU profiling.")
		} else {
			defer pprof.StopCPUProfile()
		}
	}

	if log != "" {
		err = logutil.SetOutputFile(log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if help {
		usage(fds[1], fs)
		return 0
	}

	for _, program := range programs {
		err := program.Run(fds, fs.Args())
		if err == nil {
			return 0
		}
		if err == ErrNextProgram {
			continue
		}
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(fds[2], msg)
		}
		switch err := err.(type) {
		case badUsageError:
			usage(fds[2], fs)
		case exitError:
			return err.exit
		}
		return 2
	}
	fmt.Fprintln(fds[2], ErrNextProgram.Error())
	return 2
}

// ErrNextProgram is a special error that may be returned by Program.Run, to
// signify that the next subprogram should be tried. It is only sensible for
// use in Run.
var ErrNextProgram = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
