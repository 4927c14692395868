package parser

import (
	"github.com/Hoshoyo/moparser/ast"
	"github.com/Hoshoyo/moparser/token"
)

// parseAssignment is the parser's top-level expression entry point:
// conditional-expression ( assignment-operator assignment-expression )?,
// right-associative via recursion on the right operand, so a = b = c
// parses as a = (b = c).
func (p *Parser) parseAssignment() (ast.Node, error) {
	if err := p.enterRecursion(); err != nil {
		return nil, err
	}
	defer p.exitRecursion()

	left, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	if !p.peek().Is(token.ASSIGNMENT_OPERATOR) {
		return left, nil
	}
	op := p.advance()
	right, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return arenaNode(&p.arena, ast.Assignment{Op: op.Type, Left: left, Right: right}), nil
}

// parseConditional is logical-or-expression ( '?' assignment-expression
// ':' conditional-expression )?, right-associative on the false branch
// via recursion.
func (p *Parser) parseConditional() (ast.Node, error) {
	if err := p.enterRecursion(); err != nil {
		return nil, err
	}
	defer p.exitRecursion()

	cond, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if !p.accept(token.Type('?')) {
		return cond, nil
	}
	caseTrue, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Type(':'), ":"); err != nil {
		return nil, err
	}
	caseFalse, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	return arenaNode(&p.arena, ast.Ternary{Condition: cond, CaseTrue: caseTrue, CaseFalse: caseFalse}), nil
}

// binaryLevel is one entry in the ten-level left-associative binary
// cascade: it knows its own operator set, its AST kind tag, and which
// level parses its operands.
type binaryLevel struct {
	kind    ast.BinaryKind
	ops     []token.Type
	operand func(*Parser) (ast.Node, error)
}

func (p *Parser) parseBinaryLevel(lvl binaryLevel) (ast.Node, error) {
	if err := p.enterRecursion(); err != nil {
		return nil, err
	}
	defer p.exitRecursion()

	left, err := lvl.operand(p)
	if err != nil {
		return nil, err
	}
	for {
		matched := false
		for _, op := range lvl.ops {
			if p.check(op) {
				matched = true
				break
			}
		}
		if !matched {
			return left, nil
		}
		opTok := p.advance()
		right, err := lvl.operand(p)
		if err != nil {
			return nil, err
		}
		left = arenaNode(&p.arena, ast.Binary{Kind: lvl.kind, Op: opTok.Type, Left: left, Right: right})
	}
}

func (p *Parser) parseLogicalOr() (ast.Node, error) {
	return p.parseBinaryLevel(binaryLevel{ast.LogicalOr, []token.Type{token.LOGIC_OR}, (*Parser).parseLogicalAnd})
}

func (p *Parser) parseLogicalAnd() (ast.Node, error) {
	return p.parseBinaryLevel(binaryLevel{ast.LogicalAnd, []token.Type{token.LOGIC_AND}, (*Parser).parseInclusiveOr})
}

func (p *Parser) parseInclusiveOr() (ast.Node, error) {
	return p.parseBinaryLevel(binaryLevel{ast.InclusiveOr, []token.Type{token.Type('|')}, (*Parser).parseExclusiveOr})
}

func (p *Parser) parseExclusiveOr() (ast.Node, error) {
	return p.parseBinaryLevel(binaryLevel{ast.ExclusiveOr, []token.Type{token.Type('^')}, (*Parser).parseAnd})
}

func (p *Parser) parseAnd() (ast.Node, error) {
	return p.parseBinaryLevel(binaryLevel{ast.And, []token.Type{token.Type('&')}, (*Parser).parseEquality})
}

func (p *Parser) parseEquality() (ast.Node, error) {
	return p.parseBinaryLevel(binaryLevel{ast.Equality, []token.Type{token.EQUAL_EQUAL, token.NOT_EQUAL}, (*Parser).parseRelational})
}

func (p *Parser) parseRelational() (ast.Node, error) {
	return p.parseBinaryLevel(binaryLevel{ast.Relational,
		[]token.Type{token.Type('<'), token.Type('>'), token.LESS_EQUAL, token.GREATER_EQUAL},
		(*Parser).parseShift})
}

func (p *Parser) parseShift() (ast.Node, error) {
	return p.parseBinaryLevel(binaryLevel{ast.Shift, []token.Type{token.BITSHIFT_LEFT, token.BITSHIFT_RIGHT}, (*Parser).parseAdditive})
}

func (p *Parser) parseAdditive() (ast.Node, error) {
	return p.parseBinaryLevel(binaryLevel{ast.Additive, []token.Type{token.Type('+'), token.Type('-')}, (*Parser).parseMultiplicative})
}

func (p *Parser) parseMultiplicative() (ast.Node, error) {
	return p.parseBinaryLevel(binaryLevel{ast.Multiplicative,
		[]token.Type{token.Type('*'), token.Type('/'), token.Type('%')},
		(*Parser).parseCast})
}

// parseCast is ( type-name ) cast-expression, falling through to
// unary-expression when the parenthesized contents don't start a type.
func (p *Parser) parseCast() (ast.Node, error) {
	if err := p.enterRecursion(); err != nil {
		return nil, err
	}
	defer p.exitRecursion()

	if p.check(token.Type('(')) && p.startsTypeName(p.peekN(1)) {
		p.advance() // (
		typeName, err := p.parseTypeName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Type(')'), ")"); err != nil {
			return nil, err
		}
		expr, err := p.parseCast()
		if err != nil {
			return nil, err
		}
		return arenaNode(&p.arena, ast.Cast{TypeName: typeName, Expr: expr}), nil
	}
	return p.parseUnary()
}

// startsTypeName reports whether tok can begin a type-name: a type
// keyword, struct/union/enum, a qualifier, or (with the caller-supplied
// predicate) a typedef-name identifier.
func (p *Parser) startsTypeName(tok token.Token) bool {
	switch tok.Type {
	case token.KEYWORD_STRUCT, token.KEYWORD_UNION, token.KEYWORD_ENUM,
		token.KEYWORD_CONST, token.KEYWORD_VOLATILE:
		return true
	}
	if token.IsTypeKeyword(tok.Type) {
		return true
	}
	if tok.Type == token.IDENTIFIER {
		return p.opts.IsTypedefName(tok)
	}
	return false
}

// parseUnary handles prefix ++/--, the unary operators, and both forms
// of sizeof.
func (p *Parser) parseUnary() (ast.Node, error) {
	if err := p.enterRecursion(); err != nil {
		return nil, err
	}
	defer p.exitRecursion()

	switch p.peek().Type {
	case token.PLUS_PLUS:
		p.advance()
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return arenaNode(&p.arena, ast.Unary{Op: ast.UnaryPlusPlus, Expr: expr}), nil
	case token.MINUS_MINUS:
		p.advance()
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return arenaNode(&p.arena, ast.Unary{Op: ast.UnaryMinusMinus, Expr: expr}), nil
	case token.Type('&'):
		return p.parseUnaryOperand(ast.UnaryAddressOf)
	case token.Type('*'):
		return p.parseUnaryOperand(ast.UnaryDereference)
	case token.Type('+'):
		return p.parseUnaryOperand(ast.UnaryPlus)
	case token.Type('-'):
		return p.parseUnaryOperand(ast.UnaryMinus)
	case token.Type('~'):
		return p.parseUnaryOperand(ast.UnaryNotBitwise)
	case token.Type('!'):
		return p.parseUnaryOperand(ast.UnaryNotLogical)
	case token.KEYWORD_SIZEOF:
		p.advance()
		if p.check(token.Type('(')) && p.startsTypeName(p.peekN(1)) {
			p.advance()
			typeName, err := p.parseTypeName()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Type(')'), ")"); err != nil {
				return nil, err
			}
			return arenaNode(&p.arena, ast.Sizeof{IsTypeName: true, TypeName: typeName}), nil
		}
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return arenaNode(&p.arena, ast.Sizeof{IsTypeName: false, Expr: expr}), nil
	default:
		return p.parsePostfix()
	}
}

// parseUnaryOperand consumes the current operator token and parses its
// cast-expression operand (the unary operators bind to a cast-expression,
// one level below unary itself, in the C grammar).
func (p *Parser) parseUnaryOperand(op ast.UnaryOperator) (ast.Node, error) {
	p.advance()
	expr, err := p.parseCast()
	if err != nil {
		return nil, err
	}
	return arenaNode(&p.arena, ast.Unary{Op: op, Expr: expr}), nil
}

// parsePostfix handles array indexing, calls, member access, and
// postfix increment/decrement, left-associated by iteration.
func (p *Parser) parsePostfix() (ast.Node, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Type {
		case token.Type('['):
			p.advance()
			var index ast.Node
			if !p.check(token.Type(']')) {
				index, err = p.parseAssignment()
				if err != nil {
					return nil, err
				}
			}
			if _, err := p.expect(token.Type(']'), "]"); err != nil {
				return nil, err
			}
			expr = arenaNode(&p.arena, ast.PostfixBinary{Op: ast.PostfixArrayAccess, Left: expr, Right: index})
		case token.Type('('):
			p.advance()
			var args ast.Node
			if !p.check(token.Type(')')) {
				args, err = p.parseArgumentExpressionList()
				if err != nil {
					return nil, err
				}
			}
			if _, err := p.expect(token.Type(')'), ")"); err != nil {
				return nil, err
			}
			expr = arenaNode(&p.arena, ast.PostfixBinary{Op: ast.PostfixCall, Left: expr, Right: args})
		case token.Type('.'):
			p.advance()
			name, err := p.expect(token.IDENTIFIER, "identifier")
			if err != nil {
				return nil, err
			}
			expr = arenaNode(&p.arena, ast.PostfixBinary{Op: ast.PostfixDot, Left: expr, Right: arenaNode(&p.arena, ast.Ident{Tok: name})})
		case token.ARROW:
			p.advance()
			name, err := p.expect(token.IDENTIFIER, "identifier")
			if err != nil {
				return nil, err
			}
			expr = arenaNode(&p.arena, ast.PostfixBinary{Op: ast.PostfixArrow, Left: expr, Right: arenaNode(&p.arena, ast.Ident{Tok: name})})
		case token.PLUS_PLUS:
			p.advance()
			expr = arenaNode(&p.arena, ast.PostfixUnary{Op: ast.PostfixPlusPlus, Expr: expr})
		case token.MINUS_MINUS:
			p.advance()
			expr = arenaNode(&p.arena, ast.PostfixUnary{Op: ast.PostfixMinusMinus, Expr: expr})
		default:
			return expr, nil
		}
	}
}

// parseArgumentExpressionList is a comma-separated list of
// assignment-expressions, preserved as a left-to-right vector.
func (p *Parser) parseArgumentExpressionList() (ast.Node, error) {
	list := ast.ArgumentList{}
	first, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	list.Items = arenaAppend(&p.arena, list.Items, first)
	for p.accept(token.Type(',')) {
		item, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		list.Items = arenaAppend(&p.arena, list.Items, item)
	}
	return arenaNode(&p.arena, list), nil
}

// parsePrimary handles identifiers, string literals, parenthesized
// sub-expressions, and falls through to parseConstant for every other
// literal form.
func (p *Parser) parsePrimary() (ast.Node, error) {
	switch p.peek().Type {
	case token.IDENTIFIER:
		tok := p.advance()
		return arenaNode(&p.arena, ast.Ident{Tok: tok}), nil
	case token.STRING_LITERAL:
		tok := p.advance()
		return arenaNode(&p.arena, ast.StringLiteral{Tok: tok}), nil
	case token.Type('('):
		p.advance()
		expr, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Type(')'), ")"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return p.parseConstant()
	}
}

// parseConstant handles every literal token class that isn't dispatched
// directly by parsePrimary.
func (p *Parser) parseConstant() (ast.Node, error) {
	switch p.peek().Type {
	case token.CHAR_LITERAL:
		return arenaNode(&p.arena, ast.ConstantChar{Tok: p.advance()}), nil
	case token.FLOAT_LITERAL, token.DOUBLE_LITERAL, token.LONG_DOUBLE_LITERAL:
		return arenaNode(&p.arena, ast.ConstantFloat{Tok: p.advance()}), nil
	case token.INT_LITERAL, token.INT_L_LITERAL, token.INT_LL_LITERAL,
		token.INT_U_LITERAL, token.INT_UL_LITERAL, token.INT_ULL_LITERAL,
		token.INT_HEX_LITERAL, token.INT_BIN_LITERAL, token.INT_OCT_LITERAL:
		return arenaNode(&p.arena, ast.ConstantInt{Tok: p.advance()}), nil
	default:
		return nil, p.errExpected("expression")
	}
}
