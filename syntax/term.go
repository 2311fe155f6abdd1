package syntax

import (
	"fmt"
	"strings"
)

type TermKind int

const (
	KindVariable TermKind = iota
	KindAbstraction
	KindApplication
)

// Term is a lambda expression. Exactly one variant is populated, selected
// by Kind: Name for a variable, Param/Body for an abstraction, Left/Right
// for an application.
type Term struct {
	Kind  TermKind
	Name  string
	Param string
	Body  *Term
	Left  *Term
	Right *Term
}

func NewVariable(name string) *Term {
	return &Term{
		Kind: KindVariable,
		Name: name,
	}
}

func NewAbstraction(param string, body *Term) *Term {
	return &Term{
		Kind:  KindAbstraction,
		Param: param,
		Body:  body,
	}
}

func NewApplication(left, right *Term) *Term {
	return &Term{
		Kind:  KindApplication,
		Left:  left,
		Right: right,
	}
}

// Clone returns a deep copy sharing no nodes with the receiver.
func (t *Term) Clone() *Term {
	switch t.Kind {
	case KindVariable:
		return NewVariable(t.Name)
	case KindAbstraction:
		return NewAbstraction(t.Param, t.Body.Clone())
	default:
		return NewApplication(t.Left.Clone(), t.Right.Clone())
	}
}

func (t *Term) Equal(other *Term) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindVariable:
		return t.Name == other.Name
	case KindAbstraction:
		return t.Param == other.Param && t.Body.Equal(other.Body)
	default:
		return t.Left.Equal(other.Left) && t.Right.Equal(other.Right)
	}
}

// ContainsFree reports whether name occurs free in t.
func (t *Term) ContainsFree(name string) bool {
	switch t.Kind {
	case KindVariable:
		return t.Name == name
	case KindAbstraction:
		if t.Param == name {
			return false
		}
		return t.Body.ContainsFree(name)
	default:
		return t.Left.ContainsFree(name) || t.Right.ContainsFree(name)
	}
}

// visibleName strips a freshness prefix. Fresh identifiers have the form
// N-original; everything up to and including the first hyphen is internal.
func visibleName(name string) string {
	if i := strings.IndexByte(name, '-'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func (t *Term) String() string {
	var b strings.Builder
	t.format(&b)
	return b.String()
}

func (t *Term) format(b *strings.Builder) {
	switch t.Kind {
	case KindVariable:
		b.WriteString(visibleName(t.Name))
	case KindAbstraction:
		fmt.Fprintf(b, "\\%v.", visibleName(t.Param))
		t.Body.format(b)
	default:
		b.WriteString("(")
		t.Left.format(b)
		b.WriteString(")(")
		t.Right.format(b)
		b.WriteString(")")
	}
}

type DisplayHint int

const (
	HintNone DisplayHint = iota
	HintInt
	HintBool
)

// Binding is a top-level definition `name = term`. Hint is non-None only
// for the binding named main.
type Binding struct {
	Name string
	Term *Term
	Hint DisplayHint
}
