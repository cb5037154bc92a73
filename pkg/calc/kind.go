package calc

import (
	"src.calq.sh/pkg/arith"
	"src.calq.sh/pkg/calc/errs"
	"src.calq.sh/pkg/strutil"
)

// Kind describes one kind of calculation: a canonical name, a display label,
// a one-line description used in help output, and the arithmetic behavior the
// kind binds to its operands.
type Kind struct {
	// Name is the canonical lower-case name the kind is registered under,
	// like "add".
	Name string
	// Label is the display form of the name, like "Add".
	Label string
	// Doc is a one-line description shown in help output.
	Doc string
	// Body computes the result from two operands.
	Body func(a, b float64) (float64, error)
}

func newKind(name, doc string, body func(a, b float64) (float64, error)) *Kind {
	return &Kind{Name: name, Label: strutil.Title(name), Doc: doc, Body: body}
}

// Adapts an arith function with no error case to a kind body.
func total(f func(a, b float64) float64) func(a, b float64) (float64, error) {
	return func(a, b float64) (float64, error) { return f(a, b), nil }
}

// The built-in kinds, in registration order. The divide kind checks the
// divisor itself and returns errs.DivideByZero before arith.Div ever sees the
// operands; both this guard and the one inside arith are observable behavior
// and must stay.
func builtinKinds() []*Kind {
	return []*Kind{
		newKind("add", "Adds two numbers.", total(arith.Add)),
		newKind("subtract", "Subtracts the second number from the first.", total(arith.Sub)),
		newKind("multiply", "Multiplies two numbers.", total(arith.Mul)),
		newKind("divide", "Divides the first number by the second.",
			func(a, b float64) (float64, error) {
				if b == 0 {
					return 0, errs.DivideByZero{}
				}
				return arith.Div(a, b)
			}),
		newKind("power", "Raises the first number to the power of the second.", total(arith.Pow)),
	}
}
