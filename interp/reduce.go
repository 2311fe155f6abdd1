package interp

import (
	"fmt"

	"github.com/lambada-lang/lambada/syntax"
)

// RecursionError reports a top-level binding whose reduction re-entered
// its own definition. Name is the binding whose lookup closed the cycle.
type RecursionError struct {
	Name string
}

func (e *RecursionError) Error() string {
	return fmt.Sprintf("recursion detected in function `%v`", e.Name)
}

// Reduce reduces the named binding to weak normal form, replacing the
// environment entry's term with the residual.
func Reduce(env *Env, name string) error {
	b := env.Binding(name)
	if b == nil {
		return fmt.Errorf("undefined binding `%v`", name)
	}
	r := &reducer{
		env: env,
	}
	_, err := r.reduce(b.Term, []string{name})
	return err
}

type reducer struct {
	env *Env

	// counter supplies the numeric freshness prefixes. It increases
	// monotonically across the whole reduction so no two unfoldings share
	// a prefix.
	counter int
}

// reduce performs normal-order reduction on t in place, interleaving beta
// steps with on-demand unfolding of free variables that name top-level
// bindings. expanding is the stack of binding names whose definitions are
// currently being unfolded; looking one of them up again is a recursion
// error. The returned flag reports whether t can make no further progress.
func (r *reducer) reduce(t *syntax.Term, expanding []string) (bool, error) {
	switch t.Kind {
	case syntax.KindAbstraction:
		if t.Body.Kind == syntax.KindVariable {
			return true, nil
		}
		return r.reduce(t.Body, expanding)
	case syntax.KindApplication:
		if _, err := r.reduce(t.Right, expanding); err != nil {
			return false, err
		}
		for t.Left.Kind != syntax.KindAbstraction {
			done, err := r.reduce(t.Left, expanding)
			if err != nil {
				return false, err
			}
			if done && t.Left.Kind != syntax.KindAbstraction {
				// The function position is stuck; the application stays
				// as a residual.
				return true, nil
			}
		}
		body := t.Left.Body
		substitute(body, t.Left.Param, t.Right)
		*t = *body
		return r.reduce(t, expanding)
	default:
		for _, name := range expanding {
			if name == t.Name {
				return false, &RecursionError{Name: t.Name}
			}
		}
		def := r.env.Get(t.Name)
		if def == nil {
			// A bound variable of an enclosing abstraction, or a genuinely
			// undefined name. Either way it stays as-is.
			return true, nil
		}
		unfolded := def.Clone()
		r.counter++
		freshen(unfolded, fmt.Sprintf("%d", r.counter), r.env)
		if _, err := r.reduce(unfolded, append(expanding, t.Name)); err != nil {
			return false, err
		}
		*t = *unfolded
		return false, nil
	}
}

// substitute replaces every occurrence of the variable name in t with a
// fresh clone of arg. Shadowing is not tracked: binders inside unfolded
// definitions have been freshened before substitution can reach them.
func substitute(t *syntax.Term, name string, arg *syntax.Term) {
	switch t.Kind {
	case syntax.KindAbstraction:
		substitute(t.Body, name, arg)
	case syntax.KindApplication:
		substitute(t.Left, name, arg)
		substitute(t.Right, name, arg)
	case syntax.KindVariable:
		if t.Name == name {
			*t = *arg.Clone()
		}
	}
}
