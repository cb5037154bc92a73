//go:build !windows && !plan9

package sys

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// SignalName returns the name of a signal, like "SIGINT".
func SignalName(sig os.Signal) string {
	if s, ok := sig.(syscall.Signal); ok {
		return unix.SignalName(s)
	}
	return sig.String()
}

// IgnoreSignal reports whether a signal delivered by NotifySignals carries no
// information worth logging. SIGURG is used internally by the Go runtime and
// occurs with great frequency.
func IgnoreSignal(sig os.Signal) bool {
	return sig == syscall.SIGURG
}
