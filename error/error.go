package error

import (
	"fmt"
	"strings"
)

type SourceError struct {
	Cause    error
	FilePath string
	Line     int
	Col      int
}

func (e *SourceError) Error() string {
	var b strings.Builder
	if e.FilePath != "" {
		fmt.Fprintf(&b, "%v:", e.FilePath)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "%v:", e.Line)
		if e.Col > 0 {
			fmt.Fprintf(&b, "%v:", e.Col)
		}
	}
	if b.Len() > 0 {
		b.WriteString(" ")
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	return b.String()
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

type SourceErrors []*SourceError

func (e SourceErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v", e[0])
	for _, err := range e[1:] {
		fmt.Fprintf(&b, "\n%v", err)
	}
	return b.String()
}
