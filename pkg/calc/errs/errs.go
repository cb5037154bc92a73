// Package errs declares error types used by the calculation packages. The
// fields carry the structured information; the Error methods only format it.
package errs

import (
	"fmt"
	"strings"
)

// AlreadyRegistered is returned by Registry.Register when the normalized name
// of a kind is already present. It indicates a mistake in startup wiring, not
// bad user input.
type AlreadyRegistered struct {
	Name string
}

func (e AlreadyRegistered) Error() string {
	return fmt.Sprintf("operation already registered: %s", e.Name)
}

// Unsupported is returned by Registry.Create when no kind is registered under
// the looked-up name. Valid lists the registered names in sorted order.
type Unsupported struct {
	Name  string
	Valid []string
}

func (e Unsupported) Error() string {
	return fmt.Sprintf("unsupported operation: %s (valid operations: %s)",
		e.Name, strings.Join(e.Valid, ", "))
}

// DivideByZero is returned by the divide kind when the divisor is zero. It is
// distinct from the error the arith package returns for the same condition;
// the kind's own guard fires first.
type DivideByZero struct{}

func (e DivideByZero) Error() string {
	return "cannot divide by zero"
}
