package parser

import (
	"fmt"

	"github.com/Hoshoyo/moparser/ast"
)

// ErrKind distinguishes why a parse failed, so a caller can tell
// malformed input apart from a pathologically deep one.
type ErrKind int

const (
	ErrKindNone ErrKind = iota
	ErrKindSyntax
	ErrKindDepthExceeded
)

// ParseError records a parse failure with enough context to reproduce
// the original C front end's diagnostic shape.
type ParseError struct {
	File     string
	Line     uint32
	Col      uint32
	Expected string
	Actual   string
	Kind     ErrKind
}

func (e *ParseError) Error() string {
	if e.Kind == ErrKindDepthExceeded {
		return fmt.Sprintf("%s:%d:%d: Syntax error: expression nested too deeply", e.File, e.Line, e.Col)
	}
	return fmt.Sprintf("%s:%d:%d: Syntax error: Required '%s', but got '%s'", e.File, e.Line, e.Col, e.Expected, e.Actual)
}

// Status is the outcome of a parse.
type Status int

const (
	StatusOK Status = iota
	StatusFatal
)

// Result is returned by every public parse entry point.
type Result struct {
	Status  Status
	Node    ast.Node
	ErrKind ErrKind
	Error   string
}
