package interp

import (
	"strings"

	"github.com/lambada-lang/lambada/syntax"
)

// freshen rewrites the binders of an unfolded definition body in place so
// that repeated unfoldings of the same definition cannot alias each other's
// bound variables. Every abstraction parameter becomes prefix-param, and
// every variable becomes prefix-name unless it references a top-level
// binding or already carries a freshness hyphen. Top-level references are
// left untouched so later unfolding still finds them.
func freshen(t *syntax.Term, prefix string, env *Env) {
	switch t.Kind {
	case syntax.KindAbstraction:
		t.Param = prefix + "-" + t.Param
		freshen(t.Body, prefix, env)
	case syntax.KindApplication:
		freshen(t.Left, prefix, env)
		freshen(t.Right, prefix, env)
	case syntax.KindVariable:
		if env.Contains(t.Name) || strings.Contains(t.Name, "-") {
			return
		}
		t.Name = prefix + "-" + t.Name
	}
}
