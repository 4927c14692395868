package parser

import "github.com/Hoshoyo/moparser/token"

// Options configures a Parser. The zero value is not useful; build one
// with DefaultOptions and the With* functions, or simply pass Option
// values to New/ParseExpression/ParseTypeName.
type Options struct {
	// MaxDepth bounds recursive-descent call depth so a pathologically
	// nested input returns a structured error instead of exhausting the
	// goroutine stack.
	MaxDepth int
	// IsTypedefName resolves whether an identifier token denotes a
	// typedef-name, the one disambiguation a context-free grammar cannot
	// make on its own (cast-expression vs parenthesized expression, and
	// declaration-specifiers vs expression-statement starters). The
	// default always returns false, since recognizing typedef-names
	// requires a symbol table this front end deliberately does not
	// build.
	IsTypedefName func(token.Token) bool
	// FileName is reported in diagnostic messages.
	FileName string
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns the Options a Parser uses when none are given.
func DefaultOptions() Options {
	return Options{
		MaxDepth:      512,
		IsTypedefName: func(token.Token) bool { return false },
		FileName:      "<input>",
	}
}

// WithMaxDepth overrides the recursion-depth limit.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

// WithTypedefPredicate installs a caller-supplied typedef-name
// predicate, letting an embedder with a symbol table resolve the
// cast-vs-parenthesized-expression ambiguity correctly.
func WithTypedefPredicate(f func(token.Token) bool) Option {
	return func(o *Options) { o.IsTypedefName = f }
}

// WithFileName sets the file name reported in diagnostics.
func WithFileName(name string) Option {
	return func(o *Options) { o.FileName = name }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
