// Package calc implements the calculation abstraction and the registry of
// calculation kinds.
//
// A Calculation binds one registered Kind to two operands. Which behavior a
// Calculation carries is decided once, when the registry constructs it; from
// then on it can be executed and formatted uniformly, without the holder
// knowing which concrete operation it wraps.
package calc

import "fmt"

// Calculation binds a calculation kind to two operands. Calculations are
// immutable, and executing one is free of side effects, so re-execution
// always produces the same outcome. Construct Calculations with
// Registry.Create; constructing them any other way is unsupported.
type Calculation struct {
	kind *Kind
	a, b float64
}

// Kind returns the kind of the calculation.
func (c Calculation) Kind() *Kind { return c.kind }

// Operands returns the two operands of the calculation.
func (c Calculation) Operands() (a, b float64) { return c.a, c.b }

// Execute computes the result of the calculation. It propagates any error
// from the kind's behavior untranslated, like errs.DivideByZero from the
// divide kind.
func (c Calculation) Execute() (float64, error) {
	return c.kind.Body(c.a, c.b)
}

// DisplayString returns a human-readable rendering of the calculation and its
// result, like "Add: 5 Add 3 = 8". It executes the calculation, so it fails
// whenever Execute fails; callers that must not fail should use DebugString.
func (c Calculation) DisplayString() (string, error) {
	result, err := c.Execute()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %v %s %v = %v",
		c.kind.Label, c.a, c.kind.Label, c.b, result), nil
}

// DebugString returns an unambiguous rendering of the calculation without its
// result, like "Add(a=5, b=3)". It never executes the calculation and never
// fails.
func (c Calculation) DebugString() string {
	return fmt.Sprintf("%s(a=%v, b=%v)", c.kind.Label, c.a, c.b)
}
