// Package parser implements a recursive-descent parser over the token
// package's token stream, producing the ast package's typed tree. It
// covers the full C expression-precedence ladder plus the type-name
// grammar (specifier-qualifier lists, pointers, abstract declarators,
// struct/union/enum specifiers, parameter lists).
package parser

import (
	"github.com/Hoshoyo/moparser/ast"
	"github.com/Hoshoyo/moparser/lexer"
	"github.com/Hoshoyo/moparser/token"
)

// Parser converts a token stream into an AST. Expression nodes,
// enumerators and the backing arrays of AST child lists come from its
// arena; the other type-name nodes are ordinary heap allocations. A
// Parser is reusable via Reset, which rewinds the arena
// and discards the previous cursor, amortizing allocation across repeated
// parses of unrelated input.
type Parser struct {
	cur   cursor
	arena arena
	opts  Options
	depth int
}

// New creates a Parser over src, lexing it immediately.
func New(src []byte, opts ...Option) *Parser {
	p := &Parser{opts: buildOptions(opts)}
	p.arena.init()
	p.cur = newCursor(lexer.Lex(src))
	return p
}

// NewFromTokens creates a Parser over an already-lexed token stream.
func NewFromTokens(stream token.Stream, opts ...Option) *Parser {
	p := &Parser{opts: buildOptions(opts)}
	p.arena.init()
	p.cur = newCursor(stream)
	return p
}

// Reset reuses the parser for new source, rewinding the arena rather
// than discarding it.
func (p *Parser) Reset(src []byte) {
	p.arena.reset()
	p.cur = newCursor(lexer.Lex(src))
	p.depth = 0
}

// ---- public entry points ----

// ParseExpression parses a single assignment-expression from src.
func ParseExpression(src []byte, opts ...Option) Result {
	p := New(src, opts...)
	return resultOf(p.parseAssignment())
}

// ParseExpressionTokens parses a single assignment-expression from an
// already-lexed token stream.
func ParseExpressionTokens(stream token.Stream, opts ...Option) Result {
	p := NewFromTokens(stream, opts...)
	return resultOf(p.parseAssignment())
}

// ParseTypeName parses a single type-name from src.
func ParseTypeName(src []byte, opts ...Option) Result {
	p := New(src, opts...)
	return resultOf(p.parseTypeName())
}

// ParseTypeNameTokens parses a single type-name from an already-lexed
// token stream.
func ParseTypeNameTokens(stream token.Stream, opts ...Option) Result {
	p := NewFromTokens(stream, opts...)
	return resultOf(p.parseTypeName())
}

func resultOf(node ast.Node, err error) Result {
	if err == nil {
		return Result{Status: StatusOK, Node: node}
	}
	pe, ok := err.(*ParseError)
	if !ok {
		return Result{Status: StatusFatal, ErrKind: ErrKindSyntax, Error: err.Error()}
	}
	return Result{Status: StatusFatal, ErrKind: pe.Kind, Error: pe.Error()}
}

// ---- cursor/error helpers ----

func (p *Parser) peek() token.Token        { return p.cur.peek() }
func (p *Parser) peekN(n int) token.Token  { return p.cur.peekN(n) }
func (p *Parser) advance() token.Token     { return p.cur.next() }
func (p *Parser) check(t token.Type) bool  { return p.peek().Type == t }

// accept consumes the current token and returns true if it matches t.
func (p *Parser) accept(t token.Type) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it matches t, otherwise returns a
// fatal *ParseError naming what was expected.
func (p *Parser) expect(t token.Type, expectedName string) (token.Token, error) {
	if !p.check(t) {
		return token.Token{}, p.errExpected(expectedName)
	}
	return p.advance(), nil
}

func (p *Parser) errExpected(expected string) *ParseError {
	got := p.peek()
	actual := got.String()
	if got.Type == token.EOF {
		actual = "EOF"
	}
	return &ParseError{
		File:     p.opts.FileName,
		Line:     got.Line,
		Col:      got.Col,
		Expected: expected,
		Actual:   actual,
		Kind:     ErrKindSyntax,
	}
}

// enterRecursion bumps the recursive-descent depth counter, returning a
// fatal error once MaxDepth is exceeded so pathological input fails
// gracefully instead of overflowing the goroutine stack.
func (p *Parser) enterRecursion() error {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		got := p.peek()
		return &ParseError{File: p.opts.FileName, Line: got.Line, Col: got.Col, Kind: ErrKindDepthExceeded}
	}
	return nil
}

func (p *Parser) exitRecursion() { p.depth-- }

func arenaNode[T any](a *arena, v T) *T {
	n := arenaMakeSlice[T](a, 1, 1)
	n[0] = v
	return &n[0]
}
