package syntax

import "strings"

type tokenKind string

const (
	tokenKindID      = tokenKind("id")
	tokenKindLambda  = tokenKind(`\`)
	tokenKindDot     = tokenKind(".")
	tokenKindLParen  = tokenKind("(")
	tokenKindRParen  = tokenKind(")")
	tokenKindEq      = tokenKind("=")
	tokenKindEOF     = tokenKind("eof")
	tokenKindInvalid = tokenKind("invalid")
)

type token struct {
	kind tokenKind
	text string
	col  int
}

func newSymbolToken(kind tokenKind, col int) *token {
	return &token{
		kind: kind,
		col:  col,
	}
}

func newIDToken(text string, col int) *token {
	return &token{
		kind: tokenKindID,
		text: text,
		col:  col,
	}
}

func newInvalidToken(text string, col int) *token {
	return &token{
		kind: tokenKindInvalid,
		text: text,
		col:  col,
	}
}

func newEOFToken(col int) *token {
	return &token{
		kind: tokenKindEOF,
		col:  col,
	}
}

// isDelimiter reports whether r ends an identifier. An identifier is a
// maximal run of runes excluding whitespace and the five syntax characters.
func isDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '.', '\\', '(', ')', '=':
		return true
	}
	return false
}

// lexer tokenizes a single source line. The driver strips the newline
// before handing a line over.
type lexer struct {
	src []rune
	pos int
}

func newLexer(src string) *lexer {
	return &lexer{
		src: []rune(src),
	}
}

func (l *lexer) skipSpaces() {
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.pos++
	}
}

func (l *lexer) next() *token {
	l.skipSpaces()
	if l.pos >= len(l.src) {
		return newEOFToken(l.pos)
	}
	col := l.pos
	switch l.src[l.pos] {
	case '\\':
		l.pos++
		return newSymbolToken(tokenKindLambda, col)
	case '.':
		l.pos++
		return newSymbolToken(tokenKindDot, col)
	case '(':
		l.pos++
		return newSymbolToken(tokenKindLParen, col)
	case ')':
		l.pos++
		return newSymbolToken(tokenKindRParen, col)
	case '=':
		l.pos++
		return newSymbolToken(tokenKindEq, col)
	}
	start := l.pos
	for l.pos < len(l.src) && !isDelimiter(l.src[l.pos]) {
		l.pos++
	}
	text := string(l.src[start:l.pos])
	// The hyphen is reserved as the freshness marker the reducer attaches
	// to renamed binders, so user identifiers must not contain one.
	if strings.Contains(text, "-") {
		return newInvalidToken(text, col)
	}
	return newIDToken(text, col)
}
