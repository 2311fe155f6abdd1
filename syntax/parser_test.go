package syntax

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	verr "github.com/lambada-lang/lambada/error"
)

func TestParseBinding(t *testing.T) {
	vr := func(name string) *Term {
		return NewVariable(name)
	}
	abs := func(param string, body *Term) *Term {
		return NewAbstraction(param, body)
	}
	app := func(left, right *Term) *Term {
		return NewApplication(left, right)
	}
	bind := func(name string, term *Term) *Binding {
		return &Binding{
			Name: name,
			Term: term,
		}
	}
	withHint := func(b *Binding, hint DisplayHint) *Binding {
		b.Hint = hint
		return b
	}

	tests := []struct {
		caption string
		src     string
		binding *Binding
		synErr  *SyntaxError
	}{
		{
			caption: "a blank line yields no binding",
			src:     "   \t ",
		},
		{
			caption: "a comment line yields no binding",
			src:     "-- twice = \\f.\\x. f (f x)",
		},
		{
			caption: "a bare identifier is a variable",
			src:     "main = x",
			binding: bind("main", vr("x")),
		},
		{
			caption: "juxtaposition is left-associative application",
			src:     "main = f a b c",
			binding: bind("main", app(app(app(vr("f"), vr("a")), vr("b")), vr("c"))),
		},
		{
			caption: "an abstraction body extends to the end of its scope",
			src:     `twice = \f.\x. f (f x)`,
			binding: bind("twice", abs("f", abs("x", app(vr("f"), app(vr("f"), vr("x")))))),
		},
		{
			caption: "parentheses group a sub-term",
			src:     `main = (\x.x) y`,
			binding: bind("main", app(abs("x", vr("x")), vr("y"))),
		},
		{
			caption: "a parenthesized term continues a left-associative application",
			src:     "main = (f a) b (g c)",
			binding: bind("main", app(app(app(vr("f"), vr("a")), vr("b")), app(vr("g"), vr("c")))),
		},
		{
			caption: "an abstraction in argument position binds tighter than the body rule",
			src:     `main = f (\x. x)`,
			binding: bind("main", app(vr("f"), abs("x", vr("x")))),
		},
		{
			caption: "main accepts an int annotation",
			src:     `main int = \f.\x. f x`,
			binding: withHint(bind("main", abs("f", abs("x", app(vr("f"), vr("x"))))), HintInt),
		},
		{
			caption: "num is an alias of int",
			src:     `main num = \f.\x. x`,
			binding: withHint(bind("main", abs("f", abs("x", vr("x")))), HintInt),
		},
		{
			caption: "main accepts a bool annotation",
			src:     `main bool = \a.\b. a`,
			binding: withHint(bind("main", abs("a", abs("b", vr("a")))), HintBool),
		},
		{
			caption: "an annotation is rejected on bindings other than main",
			src:     `id int = \x.x`,
			synErr:  synErrNoEq,
		},
		{
			caption: "an unknown annotation is rejected",
			src:     "main str = x",
			synErr:  synErrNoEq,
		},
		{
			caption: "a binding needs a '='",
			src:     "id \\x.x",
			synErr:  synErrNoEq,
		},
		{
			caption: "a binding name is mandatory",
			src:     "= x",
			synErr:  synErrNoBindingName,
		},
		{
			caption: "a binding needs a term",
			src:     "id = ",
			synErr:  synErrEmptyTerm,
		},
		{
			caption: "a dot must follow an abstraction parameter",
			src:     `id = \x x`,
			synErr:  synErrNoDot,
		},
		{
			caption: "an abstraction parameter is mandatory",
			src:     `id = \.x`,
			synErr:  synErrNoAbsParam,
		},
		{
			caption: "an abstraction needs a body",
			src:     `id = \x.`,
			synErr:  synErrEmptyTerm,
		},
		{
			caption: "a dot must not begin a term",
			src:     "main = .x",
			synErr:  synErrUnexpectedDot,
		},
		{
			caption: "a parenthesis must be closed",
			src:     "main = (f x",
			synErr:  synErrUnclosedParen,
		},
		{
			caption: "a stray closing parenthesis is rejected",
			src:     "main = f x)",
			synErr:  synErrUnmatchedParen,
		},
		{
			caption: "parentheses must not be empty",
			src:     "main = ()",
			synErr:  synErrEmptyTerm,
		},
		{
			caption: "a second '=' is rejected",
			src:     "main = x = y",
			synErr:  synErrUnexpectedEq,
		},
		{
			caption: "an identifier must not contain a hyphen",
			src:     "add-one = \\n.n",
			synErr:  synErrReservedHyphen,
		},
		{
			caption: "a hyphenated identifier is rejected in a term as well",
			src:     "main = add-one",
			synErr:  synErrReservedHyphen,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			b, err := ParseBinding(tt.src, 1)
			if tt.synErr != nil {
				if err == nil {
					t.Fatalf("an error is expected but it didn't occur; binding: %+v", b)
				}
				var srcErr *verr.SourceError
				if !errors.As(err, &srcErr) {
					t.Fatalf("unexpected error type: %T: %v", err, err)
				}
				if srcErr.Cause != tt.synErr {
					t.Fatalf("unexpected syntax error: want: %v, got: %v", tt.synErr, srcErr.Cause)
				}
				if srcErr.Line != 1 {
					t.Fatalf("unexpected line number: want: 1, got: %v", srcErr.Line)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.binding, b); diff != "" {
				t.Fatalf("unexpected binding:\n%v", diff)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	src := `-- church arithmetic
twice = \f.\x. f (f x)

succ = \n.\f.\x. f (n f x)
main int = twice succ (\f.\x. x)
`
	bindings, err := ParseFile(strings.NewReader(src), "arith.lam")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, b := range bindings {
		names = append(names, b.Name)
	}
	if diff := cmp.Diff([]string{"twice", "succ", "main"}, names); diff != "" {
		t.Fatalf("unexpected binding names:\n%v", diff)
	}
	if bindings[2].Hint != HintInt {
		t.Fatalf("unexpected hint: want: %v, got: %v", HintInt, bindings[2].Hint)
	}
}

func TestParseFile_CollectsAllErrors(t *testing.T) {
	src := `id = \x x
k = \x.\y. x
main = (id k
`
	_, err := ParseFile(strings.NewReader(src), "broken.lam")
	if err == nil {
		t.Fatal("an error is expected but it didn't occur")
	}
	srcErrs, ok := err.(verr.SourceErrors)
	if !ok {
		t.Fatalf("unexpected error type: %T: %v", err, err)
	}
	if len(srcErrs) != 2 {
		t.Fatalf("unexpected error count: want: 2, got: %v: %v", len(srcErrs), srcErrs)
	}
	if srcErrs[0].Line != 1 || srcErrs[0].Cause != synErrNoDot {
		t.Fatalf("unexpected first error: %v", srcErrs[0])
	}
	if srcErrs[1].Line != 3 || srcErrs[1].Cause != synErrUnclosedParen {
		t.Fatalf("unexpected second error: %v", srcErrs[1])
	}
	if srcErrs[0].FilePath != "broken.lam" {
		t.Fatalf("unexpected file path: %v", srcErrs[0].FilePath)
	}
}

// Printing a parsed term and re-parsing the output must yield the same
// structure; the printer's parenthesization is already unambiguous.
func TestParsePrintRoundTrip(t *testing.T) {
	srcs := []string{
		`main = x`,
		`main = \x.x`,
		`main = f a b c`,
		`main = \f.\x. f (f (f x))`,
		`main = (\x.x) (\y. y y)`,
		`main = f (g (h x)) y`,
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			b, err := ParseBinding(src, 1)
			if err != nil {
				t.Fatal(err)
			}
			b2, err := ParseBinding("main = "+b.Term.String(), 1)
			if err != nil {
				t.Fatal(err)
			}
			if !b.Term.Equal(b2.Term) {
				t.Fatalf("the round trip changed the term: %v -> %v", b.Term, b2.Term)
			}
		})
	}
}
