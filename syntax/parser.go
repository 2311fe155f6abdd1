package syntax

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	verr "github.com/lambada-lang/lambada/error"
)

func raiseSyntaxError(col int, synErr *SyntaxError) {
	panic(&verr.SourceError{
		Cause: synErr,
		Col:   col + 1,
	})
}

// ParseFile parses a whole program, one binding per line. Blank lines and
// `--` comment lines contribute nothing. All parse errors are collected
// and returned together as verr.SourceErrors.
func ParseFile(src io.Reader, filePath string) ([]*Binding, error) {
	var bindings []*Binding
	var errs verr.SourceErrors
	s := bufio.NewScanner(src)
	lineNum := 0
	for s.Scan() {
		lineNum++
		b, err := ParseBinding(s.Text(), lineNum)
		if err != nil {
			srcErr, ok := err.(*verr.SourceError)
			if !ok {
				return nil, err
			}
			srcErr.FilePath = filePath
			errs = append(errs, srcErr)
			continue
		}
		if b != nil {
			bindings = append(bindings, b)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return bindings, nil
}

// ParseBinding parses a single line of the form `name [int|num|bool] = term`.
// It returns (nil, nil) for blank lines and comments. The type annotation is
// accepted only when the name is main; int and num are aliases.
func ParseBinding(line string, lineNum int) (binding *Binding, retErr error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	if strings.HasPrefix(line, "--") {
		return nil, nil
	}

	defer func() {
		err := recover()
		if err == nil {
			return
		}
		srcErr, ok := err.(*verr.SourceError)
		if !ok {
			panic(fmt.Errorf("an unexpected error occurred: %v", err))
		}
		srcErr.Line = lineNum
		binding = nil
		retErr = srcErr
	}()

	p := &parser{
		lex: newLexer(line),
	}
	return p.parseBinding(), nil
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token

	// The column of the token the parser read at last, used to annotate
	// error messages.
	pos int
}

func (p *parser) parseBinding() *Binding {
	if !p.consume(tokenKindID) {
		raiseSyntaxError(p.pos, synErrNoBindingName)
	}
	name := p.lastTok.text

	hint := HintNone
	if !p.consume(tokenKindEq) {
		if name != "main" || !p.consume(tokenKindID) {
			raiseSyntaxError(p.pos, synErrNoEq)
		}
		switch p.lastTok.text {
		case "int", "num":
			hint = HintInt
		case "bool":
			hint = HintBool
		default:
			raiseSyntaxError(p.lastTok.col, synErrNoEq)
		}
		if !p.consume(tokenKindEq) {
			raiseSyntaxError(p.pos, synErrNoEq)
		}
	}

	t := p.parseTerm()
	if t == nil {
		raiseSyntaxError(p.pos, synErrEmptyTerm)
	}
	if p.consume(tokenKindRParen) {
		raiseSyntaxError(p.pos, synErrUnmatchedParen)
	}
	// parseTerm stops only at ')' or the end of the line.

	return &Binding{
		Name: name,
		Term: t,
		Hint: hint,
	}
}

// parseTerm parses a run of atoms up to the end of the current scope and
// folds them into a left-associative application. It returns nil when the
// scope is empty.
func (p *parser) parseTerm() *Term {
	var acc *Term
	for {
		atom := p.parseAtom()
		if atom == nil {
			return acc
		}
		if acc == nil {
			acc = atom
		} else {
			acc = NewApplication(acc, atom)
		}
	}
}

func (p *parser) parseAtom() *Term {
	switch {
	case p.consume(tokenKindID):
		return NewVariable(p.lastTok.text)
	case p.consume(tokenKindLambda):
		if !p.consume(tokenKindID) {
			raiseSyntaxError(p.pos, synErrNoAbsParam)
		}
		param := p.lastTok.text
		if !p.consume(tokenKindDot) {
			raiseSyntaxError(p.pos, synErrNoDot)
		}
		// The body extends as far right as the enclosing scope allows.
		body := p.parseTerm()
		if body == nil {
			raiseSyntaxError(p.pos, synErrEmptyTerm)
		}
		return NewAbstraction(param, body)
	case p.consume(tokenKindLParen):
		open := p.lastTok.col
		t := p.parseTerm()
		if !p.consume(tokenKindRParen) {
			raiseSyntaxError(open, synErrUnclosedParen)
		}
		if t == nil {
			raiseSyntaxError(open, synErrEmptyTerm)
		}
		return t
	case p.consume(tokenKindDot):
		raiseSyntaxError(p.pos, synErrUnexpectedDot)
	case p.consume(tokenKindEq):
		raiseSyntaxError(p.pos, synErrUnexpectedEq)
	}
	return nil
}

func (p *parser) consume(expected tokenKind) bool {
	var tok *token
	if p.peekedTok != nil {
		tok = p.peekedTok
		p.peekedTok = nil
	} else {
		tok = p.lex.next()
	}
	p.pos = tok.col
	if tok.kind == tokenKindInvalid {
		raiseSyntaxError(tok.col, synErrReservedHyphen)
	}
	if tok.kind == expected {
		p.lastTok = tok
		return true
	}
	p.peekedTok = tok

	return false
}
