package calc

import (
	"sort"
	"strings"

	"src.calq.sh/pkg/calc/errs"
)

// Registry maps case-insensitive operation names to calculation kinds. A
// Registry is populated during startup wiring and treated as read-only
// afterwards; it assumes single-threaded use.
type Registry struct {
	kinds map[string]*Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]*Kind)}
}

// Builtin returns a new registry with all built-in kinds registered: add,
// subtract, multiply, divide and power. Registration order is fixed and does
// not depend on import order.
func Builtin() *Registry {
	r := NewRegistry()
	for _, k := range builtinKinds() {
		// A duplicate among the built-in kinds is a bug in this package.
		if err := r.Register(k); err != nil {
			panic(err)
		}
	}
	return r
}

// Register records a kind under the lower-cased form of its name. It returns
// errs.AlreadyRegistered if the name is already taken; the earlier
// registration stays intact. There is no way to unregister a kind.
func (r *Registry) Register(k *Kind) error {
	name := strings.ToLower(k.Name)
	if _, ok := r.kinds[name]; ok {
		return errs.AlreadyRegistered{Name: name}
	}
	r.kinds[name] = k
	return nil
}

// Create builds a Calculation of the named kind bound to the two operands.
// The name is matched case-insensitively. If no kind is registered under the
// name, Create returns errs.Unsupported listing the registered names. This is
// the only sanctioned way to construct a Calculation.
func (r *Registry) Create(name string, a, b float64) (Calculation, error) {
	k, ok := r.kinds[strings.ToLower(name)]
	if !ok {
		return Calculation{}, errs.Unsupported{Name: name, Valid: r.Names()}
	}
	return Calculation{kind: k, a: a, b: b}, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Kinds returns the registered kinds, sorted by name.
func (r *Registry) Kinds() []*Kind {
	kinds := make([]*Kind, 0, len(r.kinds))
	for _, name := range r.Names() {
		kinds = append(kinds, r.kinds[name])
	}
	return kinds
}
