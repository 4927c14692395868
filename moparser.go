// Package moparser is a hand-written C expression and type-name parser
// for Go.
//
// Design goals:
//   - Arena allocator eliminates per-node GC pressure
//   - O(1) keyword recognition via length-bucketed tables
//   - Recursive-descent expression parser, one function per precedence
//     level
//   - Full C expression grammar plus the type-name/abstract-declarator
//     grammar used by casts and sizeof
//
// Usage:
//
//	res := moparser.ParseExpression([]byte("a + b * c"))
//	res := moparser.ParseTypeName([]byte("int (*)[10]"))
//	out, err := moparser.Print(res.Node)
package moparser

import (
	"github.com/Hoshoyo/moparser/ast"
	"github.com/Hoshoyo/moparser/lexer"
	"github.com/Hoshoyo/moparser/parser"
	"github.com/Hoshoyo/moparser/printer"
	"github.com/Hoshoyo/moparser/token"
)

// Re-export core types so callers only import this package.
type (
	Node       = ast.Node
	Result     = parser.Result
	Status     = parser.Status
	ErrKind    = parser.ErrKind
	Option     = parser.Option
	Options    = parser.Options
	Token      = token.Token
	TokenType  = token.Type
	TokenFlags = token.Flags
)

const (
	StatusOK    = parser.StatusOK
	StatusFatal = parser.StatusFatal
)

// ParseExpression parses a single assignment-expression from src.
func ParseExpression(src []byte, opts ...Option) Result {
	return parser.ParseExpression(src, opts...)
}

// ParseTypeName parses a single type-name from src, the grammar used
// inside casts and sizeof(...).
func ParseTypeName(src []byte, opts ...Option) Result {
	return parser.ParseTypeName(src, opts...)
}

// Lex breaks src into a token stream. The returned tokens borrow their
// Data slices directly from src.
func Lex(src []byte) token.Stream {
	return lexer.Lex(src)
}

// Print renders an AST node back to its canonical, fully parenthesized
// textual form. Pass a fatal Result's Node only after checking its
// Status; a fatal result commonly carries a nil Node.
func Print(n Node) (string, error) {
	return printer.Print(n)
}

// WithMaxDepth overrides the recursive-descent depth limit.
func WithMaxDepth(n int) Option { return parser.WithMaxDepth(n) }

// WithTypedefPredicate installs the callback used to disambiguate a
// cast from a parenthesized expression and to recognize typedef-name
// type specifiers.
func WithTypedefPredicate(fn func(token.Token) bool) Option {
	return parser.WithTypedefPredicate(fn)
}

// WithFileName sets the file name reported in a ParseError.
func WithFileName(name string) Option { return parser.WithFileName(name) }
