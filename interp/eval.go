package interp

import (
	"errors"

	"github.com/lambada-lang/lambada/syntax"
)

// ErrNoMain is returned when a program defines no main binding.
var ErrNoMain = errors.New("a program must have a `main` binding")

// EvalProgram loads the bindings into a fresh environment, reduces main,
// and returns its decoded residual.
func EvalProgram(bindings []*syntax.Binding) (string, error) {
	env := NewEnv()
	for _, b := range bindings {
		env.Set(b)
	}
	main := env.Binding("main")
	if main == nil {
		return "", ErrNoMain
	}
	if err := Reduce(env, "main"); err != nil {
		return "", err
	}
	return Decode(main.Term, main.Hint), nil
}
