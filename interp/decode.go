package interp

import (
	"strconv"

	"github.com/lambada-lang/lambada/syntax"
)

// Decode renders a residual term according to the display hint of main.
// A term that doesn't match the hinted Church shape falls back to the
// generic printer.
func Decode(t *syntax.Term, hint syntax.DisplayHint) string {
	switch hint {
	case syntax.HintInt:
		if s, ok := decodeNumeral(t); ok {
			return s
		}
	case syntax.HintBool:
		if s, ok := decodeBoolean(t); ok {
			return s
		}
	}
	return t.String()
}

// decodeNumeral matches \f.\x. f (f (... (f x))) and counts the f layers.
// The match is by parameter identity, not by the literal names f and x.
func decodeNumeral(t *syntax.Term) (string, bool) {
	if t.Kind != syntax.KindAbstraction || t.Body.Kind != syntax.KindAbstraction {
		return "", false
	}
	succ := t.Param
	zero := t.Body.Param
	body := t.Body.Body
	n := 0
	for {
		switch {
		case body.Kind == syntax.KindVariable && body.Name == zero:
			return strconv.Itoa(n), true
		case body.Kind == syntax.KindApplication &&
			body.Left.Kind == syntax.KindVariable && body.Left.Name == succ:
			n++
			body = body.Right
		default:
			return "", false
		}
	}
}

// decodeBoolean matches \a.\b.a (true) and \a.\b.b (false).
func decodeBoolean(t *syntax.Term) (string, bool) {
	if t.Kind != syntax.KindAbstraction || t.Body.Kind != syntax.KindAbstraction {
		return "", false
	}
	body := t.Body.Body
	if body.Kind != syntax.KindVariable {
		return "", false
	}
	switch body.Name {
	case t.Param:
		return "true", true
	case t.Body.Param:
		return "false", true
	}
	return "", false
}
