// Package lexer scans a C source buffer into a stream of tokens. It is a
// hand-rolled, single-pass, allocation-light scanner: tokens borrow their
// lexeme bytes directly from the input buffer rather than copying them.
package lexer

import (
	"github.com/Hoshoyo/moparser/token"
)

// Lexer holds the scanning cursor over a source buffer. It is not safe
// for concurrent use: it scans one buffer at a time, and Reset points it
// at a new one.
type Lexer struct {
	src  []byte
	pos  int
	line uint32
	col  uint32

	// scratch holds a verbatim copy of an identifier candidate for
	// keyword lookup (no case folding), avoiding an allocation.
	scratch [64]byte
}

// New creates a Lexer positioned at the start of src.
func New(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 0}
}

// Reset reuses the lexer for a new buffer.
func (l *Lexer) Reset(src []byte) {
	l.src = src
	l.pos = 0
	l.line = 1
	l.col = 0
}

// Lex scans the entire buffer and returns the resulting token stream,
// always terminated by a single EOF token. Lex never fails: a byte it
// cannot classify becomes a single-byte token whose type equals that
// byte's value.
func Lex(src []byte) token.Stream {
	l := New(src)
	out := token.NewStream(len(src)/4 + 1)
	for {
		t := l.Next()
		out.Push(t)
		if t.Type == token.EOF {
			break
		}
	}
	return out
}

// Next returns the next token from the input, skipping whitespace and
// comments first. It returns an EOF token once the buffer is exhausted.
func (l *Lexer) Next() token.Token {
	l.skipWhitespaceAndComments()
	if l.pos >= len(l.src) {
		return token.Token{Type: token.EOF, Line: l.line, Col: l.col}
	}

	startLine, startCol := l.line, l.col
	b := l.src[l.pos]

	switch {
	case isDigit(b) || (b == '.' && l.peekIsDigit(1)):
		return l.lexNumber(startLine, startCol)
	case b == '\'':
		return l.lexChar(startLine, startCol)
	case b == '"':
		return l.lexString(startLine, startCol)
	case isIdentStart(b):
		return l.lexIdent(startLine, startCol)
	default:
		return l.lexPunct(startLine, startCol)
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.src) {
		b := l.src[l.pos]
		switch {
		case b == '\n':
			l.advance()
			l.line++
			l.col = 0
		case b == ' ' || b == '\t' || b == '\r' || b == '\v' || b == '\f':
			l.advance()
		case b == '/' && l.peekByte(1) == '/':
			l.advance()
			l.advance()
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance()
			}
		case b == '/' && l.peekByte(1) == '*':
			l.advance()
			l.advance()
			for l.pos < len(l.src) {
				if l.src[l.pos] == '*' && l.peekByte(1) == '/' {
					l.advance()
					l.advance()
					break
				}
				if l.src[l.pos] == '\n' {
					l.advance()
					l.line++
					l.col = 0
					continue
				}
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) advance() {
	l.pos++
	l.col++
}

func (l *Lexer) peekByte(ahead int) byte {
	if l.pos+ahead < len(l.src) {
		return l.src[l.pos+ahead]
	}
	return 0
}

func (l *Lexer) peekIsDigit(ahead int) bool { return isDigit(l.peekByte(ahead)) }

// lexIdent scans an identifier and classifies it against the keyword
// table.
func (l *Lexer) lexIdent(line, col uint32) token.Token {
	start := l.pos
	l.advance()
	for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
		l.advance()
	}
	raw := l.src[start:l.pos]

	typ := token.IDENTIFIER
	var flags token.Flags
	if len(raw) <= len(l.scratch) {
		for i, c := range raw {
			l.scratch[i] = c
		}
		kwTyp, isType, isKeyword := token.Lookup(l.scratch[:len(raw)])
		if isKeyword {
			typ = kwTyp
			flags |= token.KEYWORD
			if isType {
				flags |= token.TYPE_KEYWORD
			}
		}
	}
	return token.Token{Type: typ, Line: line, Col: col, Data: raw, Length: len(raw), Flags: flags}
}

// lexNumber scans the full C numeric-literal suffix matrix: hex, binary,
// octal, decimal integers with u/l suffix combinations, and floating
// literals with an optional exponent and f/l suffix.
func (l *Lexer) lexNumber(line, col uint32) token.Token {
	start := l.pos

	if l.src[l.pos] == '0' && (l.peekByte(1) == 'x' || l.peekByte(1) == 'X') {
		l.advance()
		l.advance()
		for l.pos < len(l.src) && isHexDigit(l.src[l.pos]) {
			l.advance()
		}
		return l.finish(token.INT_HEX_LITERAL, start, line, col)
	}
	if l.src[l.pos] == '0' && (l.peekByte(1) == 'b' || l.peekByte(1) == 'B') {
		l.advance()
		l.advance()
		for l.pos < len(l.src) && (l.src[l.pos] == '0' || l.src[l.pos] == '1') {
			l.advance()
		}
		return l.finish(token.INT_BIN_LITERAL, start, line, col)
	}
	if l.src[l.pos] == '0' && isDigit(l.peekByte(1)) {
		l.advance()
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.advance()
		}
		return l.finish(token.INT_OCT_LITERAL, start, line, col)
	}

	isFloat := false
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.advance()
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		isFloat = true
		l.advance()
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.advance()
		}
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		isFloat = true
		l.advance()
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.advance()
		}
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.advance()
		}
	}

	if isFloat {
		switch {
		case l.pos < len(l.src) && (l.src[l.pos] == 'f' || l.src[l.pos] == 'F'):
			l.advance()
			return l.finish(token.FLOAT_LITERAL, start, line, col)
		case l.pos < len(l.src) && (l.src[l.pos] == 'l' || l.src[l.pos] == 'L'):
			l.advance()
			return l.finish(token.LONG_DOUBLE_LITERAL, start, line, col)
		default:
			return l.finish(token.DOUBLE_LITERAL, start, line, col)
		}
	}

	unsigned := false
	longCount := 0
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if (c == 'u' || c == 'U') && !unsigned {
			unsigned = true
			l.advance()
			continue
		}
		if (c == 'l' || c == 'L') && longCount < 2 {
			longCount++
			l.advance()
			continue
		}
		break
	}
	var typ token.Type
	switch {
	case unsigned && longCount == 0:
		typ = token.INT_U_LITERAL
	case unsigned && longCount == 1:
		typ = token.INT_UL_LITERAL
	case unsigned && longCount >= 2:
		typ = token.INT_ULL_LITERAL
	case longCount == 1:
		typ = token.INT_L_LITERAL
	case longCount >= 2:
		typ = token.INT_LL_LITERAL
	default:
		typ = token.INT_LITERAL
	}
	return l.finish(typ, start, line, col)
}

func (l *Lexer) finish(typ token.Type, start int, line, col uint32) token.Token {
	raw := l.src[start:l.pos]
	return token.Token{Type: typ, Line: line, Col: col, Data: raw, Length: len(raw)}
}

// lexChar scans a character literal, excluding the surrounding quotes
// from the token's data.
func (l *Lexer) lexChar(line, col uint32) token.Token {
	l.advance() // opening '
	start := l.pos
	for l.pos < len(l.src) && l.src[l.pos] != '\'' {
		if l.src[l.pos] == '\\' {
			l.advance()
		}
		if l.pos < len(l.src) {
			l.advance()
		}
	}
	raw := l.src[start:l.pos]
	if l.pos < len(l.src) {
		l.advance() // closing '
	}
	return token.Token{Type: token.CHAR_LITERAL, Line: line, Col: col, Data: raw, Length: len(raw)}
}

// lexString scans a string literal. Unlike lexChar, the token's data
// includes the surrounding quotes (matching the original lexer, whose
// token spans from the opening quote through the closing one). An
// unterminated string reads to EOF without error, matching the lexer's
// overall no-abort policy.
func (l *Lexer) lexString(line, col uint32) token.Token {
	start := l.pos
	l.advance() // opening "
	for l.pos < len(l.src) && l.src[l.pos] != '"' {
		if l.src[l.pos] == '\\' {
			l.advance()
		}
		if l.pos < len(l.src) {
			if l.src[l.pos] == '\n' {
				l.line++
				l.col = 0
				l.pos++
				continue
			}
			l.advance()
		}
	}
	if l.pos < len(l.src) {
		l.advance() // closing "
	}
	raw := l.src[start:l.pos]
	return token.Token{Type: token.STRING_LITERAL, Line: line, Col: col, Data: raw, Length: len(raw)}
}

// lexPunct scans a single- or multi-character punctuator, using
// longest-match lookahead for every compound operator in the C grammar
// this front end supports.
func (l *Lexer) lexPunct(line, col uint32) token.Token {
	start := l.pos
	b := l.src[l.pos]
	l.advance()

	mk := func(typ token.Type, flags token.Flags) token.Token {
		raw := l.src[start:l.pos]
		return token.Token{Type: typ, Line: line, Col: col, Data: raw, Length: len(raw), Flags: flags}
	}
	single := func() token.Token { return mk(token.Type(b), 0) }
	assign := func(typ token.Type) token.Token { return mk(typ, token.ASSIGNMENT_OPERATOR) }

	switch b {
	case '-':
		switch l.peekByte(0) {
		case '>':
			l.advance()
			return mk(token.ARROW, 0)
		case '-':
			l.advance()
			return mk(token.MINUS_MINUS, 0)
		case '=':
			l.advance()
			return assign(token.MINUS_EQUAL)
		}
		return single()
	case '+':
		switch l.peekByte(0) {
		case '+':
			l.advance()
			return mk(token.PLUS_PLUS, 0)
		case '=':
			l.advance()
			return assign(token.PLUS_EQUAL)
		}
		return single()
	case '=':
		if l.peekByte(0) == '=' {
			l.advance()
			return mk(token.EQUAL_EQUAL, 0)
		}
		return assign(token.Type('='))
	case '<':
		switch l.peekByte(0) {
		case '=':
			l.advance()
			return mk(token.LESS_EQUAL, 0)
		case '<':
			l.advance()
			if l.peekByte(0) == '=' {
				l.advance()
				return assign(token.SHL_EQUAL)
			}
			return mk(token.BITSHIFT_LEFT, 0)
		}
		return single()
	case '>':
		switch l.peekByte(0) {
		case '=':
			l.advance()
			return mk(token.GREATER_EQUAL, 0)
		case '>':
			l.advance()
			if l.peekByte(0) == '=' {
				l.advance()
				return assign(token.SHR_EQUAL)
			}
			return mk(token.BITSHIFT_RIGHT, 0)
		}
		return single()
	case '!':
		if l.peekByte(0) == '=' {
			l.advance()
			// The original C lexer mis-assigns this case to
			// TOKEN_LESS_EQUAL; this lexer emits the correct NOT_EQUAL.
			return mk(token.NOT_EQUAL, 0)
		}
		return single()
	case '|':
		switch l.peekByte(0) {
		case '|':
			l.advance()
			return mk(token.LOGIC_OR, 0)
		case '=':
			l.advance()
			return assign(token.OR_EQUAL)
		}
		return single()
	case '&':
		switch l.peekByte(0) {
		case '&':
			l.advance()
			return mk(token.LOGIC_AND, 0)
		case '=':
			l.advance()
			return assign(token.AND_EQUAL)
		}
		return single()
	case '*':
		if l.peekByte(0) == '=' {
			l.advance()
			return assign(token.TIMES_EQUAL)
		}
		return single()
	case '/':
		if l.peekByte(0) == '=' {
			l.advance()
			return assign(token.DIV_EQUAL)
		}
		return single()
	case '%':
		if l.peekByte(0) == '=' {
			l.advance()
			return assign(token.MOD_EQUAL)
		}
		return single()
	case '^':
		if l.peekByte(0) == '=' {
			l.advance()
			return assign(token.XOR_EQUAL)
		}
		return single()
	default:
		return single()
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
func isIdentCont(c byte) bool { return isIdentStart(c) || isDigit(c) }
