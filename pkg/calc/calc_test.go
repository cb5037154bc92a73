package calc

import (
	"errors"
	"math"
	"strings"
	"testing"

	"src.calq.sh/pkg/arith"
	"src.calq.sh/pkg/calc/errs"
	"src.calq.sh/pkg/strutil"
)

var builtinNames = []string{"add", "divide", "multiply", "power", "subtract"}

func TestBuiltin_Names(t *testing.T) {
	r := Builtin()
	got := r.Names()
	if len(got) != len(builtinNames) {
		t.Fatalf("Names() = %v, want %v", got, builtinNames)
	}
	for i, name := range builtinNames {
		if got[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], name)
		}
	}
}

var executeTests = []struct {
	name    string
	a, b    float64
	want    float64
	wantErr error
}{
	{"add", 5, 3, 8, nil},
	{"subtract", 15.5, 3.2, 15.5 - 3.2, nil},
	{"multiply", 7, 8, 56, nil},
	{"divide", 20, 4, 5, nil},
	{"divide", 20, 0, 0, errs.DivideByZero{}},
	{"power", 2, 10, 1024, nil},
	// Case-insensitive lookup.
	{"DIVIDE", 10, 2, 5, nil},
	{"Add", 1, 2, 3, nil},
}

func TestCreateAndExecute(t *testing.T) {
	r := Builtin()
	for _, test := range executeTests {
		c, err := r.Create(test.name, test.a, test.b)
		if err != nil {
			t.Errorf("Create(%q, %v, %v) -> error %v, want nil",
				test.name, test.a, test.b, err)
			continue
		}
		got, err := c.Execute()
		if err != test.wantErr {
			t.Errorf("Execute() of %s -> error %v, want %v",
				c.DebugString(), err, test.wantErr)
		}
		if err == nil && got != test.want {
			t.Errorf("Execute() of %s -> %v, want %v",
				c.DebugString(), got, test.want)
		}
	}
}

// Registry-dispatched execution must agree with calling the arith package
// directly.
func TestExecute_ConsistentWithArith(t *testing.T) {
	r := Builtin()
	a, b := 17.25, -3.5
	direct := map[string]float64{
		"add":      arith.Add(a, b),
		"subtract": arith.Sub(a, b),
		"multiply": arith.Mul(a, b),
		"power":    arith.Pow(a, b),
	}
	q, err := arith.Div(a, b)
	if err != nil {
		t.Fatal(err)
	}
	direct["divide"] = q

	for name, want := range direct {
		c, err := r.Create(name, a, b)
		if err != nil {
			t.Fatal(err)
		}
		got, err := c.Execute()
		if err != nil {
			t.Fatal(err)
		}
		if got != want && !(math.IsNaN(got) && math.IsNaN(want)) {
			t.Errorf("Create(%q, %v, %v).Execute() = %v, want %v (direct call)",
				name, a, b, got, want)
		}
	}
}

func TestCreate_Unsupported(t *testing.T) {
	r := Builtin()
	_, err := r.Create("modulo", 1, 1)
	var unsupported errs.Unsupported
	if !errors.As(err, &unsupported) {
		t.Fatalf("Create(\"modulo\", 1, 1) -> error %v, want errs.Unsupported", err)
	}
	if unsupported.Name != "modulo" {
		t.Errorf("error carries name %q, want %q", unsupported.Name, "modulo")
	}
	if len(unsupported.Valid) != len(builtinNames) {
		t.Fatalf("error carries valid names %v, want %v",
			unsupported.Valid, builtinNames)
	}
	for i, name := range builtinNames {
		if unsupported.Valid[i] != name {
			t.Errorf("Valid[%d] = %q, want %q", i, unsupported.Valid[i], name)
		}
	}
}

func TestRegister_Duplicate(t *testing.T) {
	r := Builtin()
	err := r.Register(newKind("add", "Bogus duplicate.",
		func(a, b float64) (float64, error) { return 0, nil }))
	if err != (errs.AlreadyRegistered{Name: "add"}) {
		t.Fatalf("Register(duplicate add) -> error %v, want errs.AlreadyRegistered", err)
	}

	// The first registration must remain intact and usable.
	c, err := r.Create("add", 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := c.Execute(); got != 8 {
		t.Errorf("Execute() after failed duplicate registration = %v, want 8", got)
	}
}

func TestRegister_NormalizesCase(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(newKind("Modulo", "Remainder.", total(math.Mod))); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Create("MODULO", 7, 3); err != nil {
		t.Errorf("Create(\"MODULO\") -> error %v, want nil", err)
	}
	err := r.Register(newKind("modulo", "Remainder again.", total(math.Mod)))
	if err != (errs.AlreadyRegistered{Name: "modulo"}) {
		t.Errorf("Register(\"modulo\") after \"Modulo\" -> error %v, want errs.AlreadyRegistered", err)
	}
}

func TestExecute_Idempotent(t *testing.T) {
	r := Builtin()
	c, err := r.Create("power", 2, 8)
	if err != nil {
		t.Fatal(err)
	}
	first, err1 := c.Execute()
	second, err2 := c.Execute()
	if first != second || err1 != err2 {
		t.Errorf("Execute() twice -> (%v, %v) then (%v, %v), want identical results",
			first, err1, second, err2)
	}
}

func TestDisplayString(t *testing.T) {
	r := Builtin()
	c, err := r.Create("add", 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := "Add: 5 Add 3 = 8"
	if got, err := c.DisplayString(); err != nil || got != want {
		t.Errorf("DisplayString() = (%q, %v), want (%q, nil)", got, err, want)
	}
}

func TestDisplayString_FailsWhenExecuteFails(t *testing.T) {
	r := Builtin()
	c, err := r.Create("divide", 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.DisplayString(); err != (errs.DivideByZero{}) {
		t.Errorf("DisplayString() -> error %v, want errs.DivideByZero", err)
	}
}

// The display label of every built-in kind must be the Title-cased form of
// its registered name.
func TestDisplayString_LabelRoundTrip(t *testing.T) {
	r := Builtin()
	for _, name := range r.Names() {
		c, err := r.Create(name, 6, 2)
		if err != nil {
			t.Fatal(err)
		}
		label := strutil.Title(name)
		s, err := c.DisplayString()
		if err != nil {
			t.Fatal(err)
		}
		if strings.Count(s, label+":") != 1 || !strings.Contains(s, " "+label+" ") {
			t.Errorf("DisplayString() of %q = %q, want label %q as prefix and infix",
				name, s, label)
		}
	}
}

func TestDebugString(t *testing.T) {
	r := Builtin()
	c, err := r.Create("subtract", 10, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.DebugString(), "Subtract(a=10, b=4)"; got != want {
		t.Errorf("DebugString() = %q, want %q", got, want)
	}
}

// DebugString must not fail (or execute) even when the operands would make
// Execute fail.
func TestDebugString_DivideByZero(t *testing.T) {
	r := Builtin()
	c, err := r.Create("divide", 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.DebugString(), "Divide(a=20, b=0)"; got != want {
		t.Errorf("DebugString() = %q, want %q", got, want)
	}
}

// The divide kind's own guard fires before arith.Div's guard, and the two
// produce distinct errors.
func TestDivide_GuardPrecedesArith(t *testing.T) {
	r := Builtin()
	c, err := r.Create("divide", 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Execute()
	if err != (errs.DivideByZero{}) {
		t.Errorf("Execute() -> error %v, want errs.DivideByZero", err)
	}
	if errors.Is(err, arith.ErrDivisionByZero) {
		t.Errorf("kind guard returned the arith error; want a distinct identity")
	}
	if _, err := arith.Div(1, 0); err != arith.ErrDivisionByZero {
		t.Errorf("arith.Div(1, 0) -> error %v, want arith.ErrDivisionByZero", err)
	}
}

func TestOperands(t *testing.T) {
	r := Builtin()
	c, err := r.Create("multiply", 7, 8)
	if err != nil {
		t.Fatal(err)
	}
	if a, b := c.Operands(); a != 7 || b != 8 {
		t.Errorf("Operands() = (%v, %v), want (7, 8)", a, b)
	}
	if c.Kind().Name != "multiply" {
		t.Errorf("Kind().Name = %q, want %q", c.Kind().Name, "multiply")
	}
}
