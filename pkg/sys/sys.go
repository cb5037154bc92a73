// Package sys provides system utilities with the same API across OSes.
package sys

import (
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
)

const sigsChanBufferSize = 256

// IsATTY reports whether the given file is a terminal.
func IsATTY(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NotifySignals returns a channel on which all signals get delivered.
func NotifySignals() chan os.Signal {
	sigs := make(chan os.Signal, sigsChanBufferSize)
	signal.Notify(sigs)
	return sigs
}
