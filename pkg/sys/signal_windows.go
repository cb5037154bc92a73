//go:build windows

package sys

import "os"

// SignalName returns the name of a signal.
func SignalName(sig os.Signal) string {
	return sig.String()
}

// IgnoreSignal reports whether a signal delivered by NotifySignals carries no
// information worth logging.
func IgnoreSignal(sig os.Signal) bool {
	return false
}
