package interp

import "github.com/lambada-lang/lambada/syntax"

// Env is the ordered collection of top-level bindings. Bindings are kept
// in insertion order because later bindings may reference earlier ones;
// names are unique and lookups are case-sensitive exact matches.
type Env struct {
	bindings []*syntax.Binding
}

func NewEnv() *Env {
	return &Env{}
}

// Set replaces an existing binding with the same name in place, preserving
// its position, and appends otherwise.
func (e *Env) Set(b *syntax.Binding) {
	for i, old := range e.bindings {
		if old.Name == b.Name {
			e.bindings[i] = b
			return
		}
	}
	e.bindings = append(e.bindings, b)
}

// Get returns the term bound to name, or nil when name is unbound.
func (e *Env) Get(name string) *syntax.Term {
	if b := e.Binding(name); b != nil {
		return b.Term
	}
	return nil
}

func (e *Env) Binding(name string) *syntax.Binding {
	for _, b := range e.bindings {
		if b.Name == name {
			return b
		}
	}
	return nil
}

func (e *Env) Contains(name string) bool {
	return e.Binding(name) != nil
}

func (e *Env) Delete(name string) {
	for i, b := range e.bindings {
		if b.Name == name {
			e.bindings = append(e.bindings[:i], e.bindings[i+1:]...)
			return
		}
	}
}

// Names returns the binding names in insertion order.
func (e *Env) Names() []string {
	names := make([]string, len(e.bindings))
	for i, b := range e.bindings {
		names[i] = b.Name
	}
	return names
}
