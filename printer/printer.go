// Package printer renders an AST back to canonical C source text: every
// binary and ternary expression is fully parenthesized, primitive
// keywords print in a fixed canonical order, and literal lexemes are
// reproduced character for character from their borrowed token slices.
package printer

import (
	"fmt"
	"strings"

	"github.com/Hoshoyo/moparser/ast"
)

// Print renders root to its canonical textual form. It returns an error
// rather than panicking when root is nil, the shape a fatal parse result
// carries.
func Print(root ast.Node) (string, error) {
	if root == nil {
		return "", fmt.Errorf("printer: cannot print a nil node")
	}
	var b strings.Builder
	if err := printNode(&b, root); err != nil {
		return "", err
	}
	return b.String(), nil
}

func printNode(b *strings.Builder, n ast.Node) error {
	switch v := n.(type) {
	case *ast.Ident:
		b.WriteString(v.Tok.String())
	case *ast.ConstantInt:
		b.WriteString(v.Tok.String())
	case *ast.ConstantFloat:
		b.WriteString(v.Tok.String())
	case *ast.ConstantChar:
		b.WriteByte('\'')
		b.WriteString(v.Tok.String())
		b.WriteByte('\'')
	case *ast.ConstantEnum:
		b.WriteString(v.Tok.String())
	case *ast.StringLiteral:
		// v.Tok.Data already spans the surrounding quotes.
		b.WriteString(v.Tok.String())
	case *ast.Unary:
		b.WriteString(unaryOperatorSpelling(v.Op))
		return printNode(b, v.Expr)
	case *ast.PostfixUnary:
		if err := printNode(b, v.Expr); err != nil {
			return err
		}
		b.WriteString(postfixOperatorSpelling(v.Op))
	case *ast.PostfixBinary:
		return printPostfixBinary(b, v)
	case *ast.ArgumentList:
		for i, item := range v.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := printNode(b, item); err != nil {
				return err
			}
		}
	case *ast.Cast:
		b.WriteByte('(')
		if err := printTypeName(b, v.TypeName); err != nil {
			return err
		}
		b.WriteByte(')')
		return printNode(b, v.Expr)
	case *ast.Binary:
		return printParenBinary(b, v.Left, v.Op.String(), v.Right)
	case *ast.Assignment:
		return printParenBinary(b, v.Left, v.Op.String(), v.Right)
	case *ast.Ternary:
		b.WriteByte('(')
		if err := printNode(b, v.Condition); err != nil {
			return err
		}
		b.WriteString(" ? ")
		if err := printNode(b, v.CaseTrue); err != nil {
			return err
		}
		b.WriteString(" : ")
		if err := printNode(b, v.CaseFalse); err != nil {
			return err
		}
		b.WriteByte(')')
	case *ast.Sizeof:
		b.WriteString("sizeof")
		if v.IsTypeName {
			b.WriteByte('(')
			if err := printTypeName(b, v.TypeName); err != nil {
				return err
			}
			b.WriteByte(')')
		} else {
			b.WriteByte(' ')
			return printNode(b, v.Expr)
		}
	case *ast.TypeName:
		return printTypeName(b, v)
	default:
		return fmt.Errorf("printer: unsupported node %T", n)
	}
	return nil
}

func printParenBinary(b *strings.Builder, left ast.Node, op string, right ast.Node) error {
	b.WriteByte('(')
	if err := printNode(b, left); err != nil {
		return err
	}
	b.WriteByte(' ')
	b.WriteString(op)
	b.WriteByte(' ')
	if err := printNode(b, right); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}

func printPostfixBinary(b *strings.Builder, v *ast.PostfixBinary) error {
	if err := printNode(b, v.Left); err != nil {
		return err
	}
	switch v.Op {
	case ast.PostfixArrayAccess:
		b.WriteByte('[')
		if v.Right != nil {
			if err := printNode(b, v.Right); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case ast.PostfixCall:
		b.WriteByte('(')
		if v.Right != nil {
			if err := printNode(b, v.Right); err != nil {
				return err
			}
		}
		b.WriteByte(')')
	case ast.PostfixDot:
		b.WriteByte('.')
		return printNode(b, v.Right)
	case ast.PostfixArrow:
		b.WriteString("->")
		return printNode(b, v.Right)
	}
	return nil
}

func unaryOperatorSpelling(op ast.UnaryOperator) string {
	switch op {
	case ast.UnaryPlusPlus:
		return "++"
	case ast.UnaryMinusMinus:
		return "--"
	case ast.UnaryAddressOf:
		return "&"
	case ast.UnaryDereference:
		return "*"
	case ast.UnaryPlus:
		return "+"
	case ast.UnaryMinus:
		return "-"
	case ast.UnaryNotBitwise:
		return "~"
	case ast.UnaryNotLogical:
		return "!"
	default:
		return "?"
	}
}

func postfixOperatorSpelling(op ast.PostfixOperator) string {
	switch op {
	case ast.PostfixPlusPlus:
		return "++"
	case ast.PostfixMinusMinus:
		return "--"
	default:
		return "?"
	}
}

