package parser

import (
	"github.com/Hoshoyo/moparser/ast"
	"github.com/Hoshoyo/moparser/token"
)

// parseTypeName is specifier-qualifier-list abstract-declarator?, the
// grammar used inside casts, sizeof(...), and as the library's second
// top-level entry point.
func (p *Parser) parseTypeName() (*ast.TypeName, error) {
	specQual, err := p.parseSpecifierQualifierList()
	if err != nil {
		return nil, err
	}
	declarator, err := p.parseAbstractDeclarator()
	if err != nil {
		return nil, err
	}
	return &ast.TypeName{SpecifierQualifier: specQual, AbstractDeclarator: declarator}, nil
}

// parseSpecifierQualifierList accumulates type specifiers and
// qualifiers into one TypeInfo node. It runs the Empty/Partial/Complete
// accumulation described in the expanded specification: accept any
// number of compatible specifier/qualifier tokens, reject mixing a
// struct/union/enum specifier with a primitive one, and stop at the
// first token that cannot extend the list.
func (p *Parser) parseSpecifierQualifierList() (*ast.TypeInfo, error) {
	info := &ast.TypeInfo{}
	sawAny := false
	for {
		tok := p.peek()
		switch {
		case tok.Type == token.KEYWORD_CONST:
			info.Qualifiers |= ast.QualifierConst
			p.advance()
			sawAny = true
		case tok.Type == token.KEYWORD_VOLATILE:
			info.Qualifiers |= ast.QualifierVolatile
			p.advance()
			sawAny = true
		case token.IsTypeKeyword(tok.Type):
			if info.Kind != ast.TypeNone && info.Kind != ast.TypePrimitive {
				return nil, p.errExpected("type specifier")
			}
			info.Kind = ast.TypePrimitive
			info.Primitive[primitiveIndex(tok.Type)]++
			p.advance()
			sawAny = true
		case tok.Type == token.KEYWORD_STRUCT || tok.Type == token.KEYWORD_UNION:
			if info.Kind == ast.TypePrimitive {
				return nil, p.errExpected("type specifier")
			}
			if err := p.parseStructOrUnionSpecifier(info, tok.Type == token.KEYWORD_UNION); err != nil {
				return nil, err
			}
			sawAny = true
		case tok.Type == token.KEYWORD_ENUM:
			if info.Kind == ast.TypePrimitive {
				return nil, p.errExpected("type specifier")
			}
			if err := p.parseEnumSpecifier(info); err != nil {
				return nil, err
			}
			sawAny = true
		case tok.Type == token.IDENTIFIER && info.Kind == ast.TypeNone && p.opts.IsTypedefName(tok):
			info.Kind = ast.TypeAlias
			info.Alias = string(tok.Data)
			p.advance()
			sawAny = true
		default:
			if !sawAny {
				return nil, p.errExpected("type specifier")
			}
			return info, nil
		}
	}
}

// parseDeclarationSpecifiers extends parseSpecifierQualifierList with
// storage-class keywords, for use inside parameter declarations. When no
// type specifier appears at all, the specifiers default to int, matching
// the C rule for an implicit-int declaration.
func (p *Parser) parseDeclarationSpecifiers() (*ast.TypeInfo, error) {
	info := &ast.TypeInfo{}
	sawType := false
	for {
		tok := p.peek()
		var sc ast.StorageClass
		switch tok.Type {
		case token.KEYWORD_AUTO:
			sc = ast.StorageAuto
		case token.KEYWORD_REGISTER:
			sc = ast.StorageRegister
		case token.KEYWORD_STATIC:
			sc = ast.StorageStatic
		case token.KEYWORD_EXTERN:
			sc = ast.StorageExtern
		case token.KEYWORD_TYPEDEF:
			sc = ast.StorageTypedef
		}
		if sc != 0 {
			info.StorageClass |= sc
			p.advance()
			continue
		}
		switch {
		case tok.Type == token.KEYWORD_CONST:
			info.Qualifiers |= ast.QualifierConst
			p.advance()
		case tok.Type == token.KEYWORD_VOLATILE:
			info.Qualifiers |= ast.QualifierVolatile
			p.advance()
		case token.IsTypeKeyword(tok.Type):
			if info.Kind != ast.TypeNone && info.Kind != ast.TypePrimitive {
				return nil, p.errExpected("type specifier")
			}
			info.Kind = ast.TypePrimitive
			info.Primitive[primitiveIndex(tok.Type)]++
			p.advance()
			sawType = true
		case tok.Type == token.KEYWORD_STRUCT || tok.Type == token.KEYWORD_UNION:
			if info.Kind == ast.TypePrimitive {
				return nil, p.errExpected("type specifier")
			}
			if err := p.parseStructOrUnionSpecifier(info, tok.Type == token.KEYWORD_UNION); err != nil {
				return nil, err
			}
			sawType = true
		case tok.Type == token.KEYWORD_ENUM:
			if info.Kind == ast.TypePrimitive {
				return nil, p.errExpected("type specifier")
			}
			if err := p.parseEnumSpecifier(info); err != nil {
				return nil, err
			}
			sawType = true
		case tok.Type == token.IDENTIFIER && info.Kind == ast.TypeNone && p.opts.IsTypedefName(tok):
			info.Kind = ast.TypeAlias
			info.Alias = string(tok.Data)
			p.advance()
			sawType = true
		default:
			if !sawType && info.Kind == ast.TypeNone {
				info.Kind = ast.TypePrimitive
				info.Primitive[ast.PrimInt]++
			}
			return info, nil
		}
	}
}

func primitiveIndex(ty token.Type) int {
	switch ty {
	case token.KEYWORD_CHAR:
		return ast.PrimChar
	case token.KEYWORD_SHORT:
		return ast.PrimShort
	case token.KEYWORD_INT:
		return ast.PrimInt
	case token.KEYWORD_LONG:
		return ast.PrimLong
	case token.KEYWORD_FLOAT:
		return ast.PrimFloat
	case token.KEYWORD_DOUBLE:
		return ast.PrimDouble
	case token.KEYWORD_SIGNED:
		return ast.PrimSigned
	case token.KEYWORD_UNSIGNED:
		return ast.PrimUnsigned
	default:
		return ast.PrimInt
	}
}

func (p *Parser) parseStructOrUnionSpecifier(info *ast.TypeInfo, isUnion bool) error {
	p.advance() // struct | union
	if isUnion {
		info.Kind = ast.TypeUnion
	} else {
		info.Kind = ast.TypeStruct
	}
	if p.check(token.IDENTIFIER) {
		info.StructName = string(p.advance().Data)
	}
	if !p.accept(token.Type('{')) {
		return nil
	}
	list := &ast.StructDeclarationList{}
	for !p.check(token.Type('}')) && !p.check(token.EOF) {
		decl, err := p.parseStructDeclaration()
		if err != nil {
			return err
		}
		list.Items = arenaAppend(&p.arena, list.Items, decl)
	}
	if _, err := p.expect(token.Type('}'), "}"); err != nil {
		return err
	}
	info.StructBody = list
	return nil
}

func (p *Parser) parseStructDeclaration() (*ast.StructDeclaration, error) {
	specQual, err := p.parseSpecifierQualifierList()
	if err != nil {
		return nil, err
	}
	declList, err := p.parseStructDeclaratorList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Type(';'), ";"); err != nil {
		return nil, err
	}
	return &ast.StructDeclaration{SpecifierQualifier: specQual, Declarators: declList}, nil
}

func (p *Parser) parseStructDeclaratorList() (*ast.StructDeclaratorList, error) {
	list := &ast.StructDeclaratorList{}
	first, err := p.parseStructDeclarator()
	if err != nil {
		return nil, err
	}
	list.Items = arenaAppend(&p.arena, list.Items, first)
	for p.accept(token.Type(',')) {
		next, err := p.parseStructDeclarator()
		if err != nil {
			return nil, err
		}
		list.Items = arenaAppend(&p.arena, list.Items, next)
	}
	return list, nil
}

func (p *Parser) parseStructDeclarator() (ast.Node, error) {
	if p.accept(token.Type(':')) {
		width, err := p.parseConditional()
		if err != nil {
			return nil, err
		}
		return &ast.StructDeclaratorBitfield{Width: width}, nil
	}
	decl, err := p.parseAbstractDeclarator()
	if err != nil {
		return nil, err
	}
	if p.accept(token.Type(':')) {
		width, err := p.parseConditional()
		if err != nil {
			return nil, err
		}
		return &ast.StructDeclaratorBitfield{Declarator: decl, Width: width}, nil
	}
	return &ast.StructDeclarator{Declarator: decl}, nil
}

func (p *Parser) parseEnumSpecifier(info *ast.TypeInfo) error {
	p.advance() // enum
	info.Kind = ast.TypeEnum
	if p.check(token.IDENTIFIER) {
		info.EnumName = string(p.advance().Data)
	}
	if !p.accept(token.Type('{')) {
		return nil
	}
	list := &ast.EnumeratorList{}
	for {
		name, err := p.expect(token.IDENTIFIER, "identifier")
		if err != nil {
			return err
		}
		var value ast.Node
		if p.accept(token.Type('=')) {
			value, err = p.parseConditional()
			if err != nil {
				return err
			}
		}
		enumerator := arenaNode(&p.arena, ast.Enumerator{Name: name, Value: value})
		list.Items = arenaAppend(&p.arena, list.Items, enumerator)
		if !p.accept(token.Type(',')) {
			break
		}
		if p.check(token.Type('}')) {
			break // trailing comma before closing brace
		}
	}
	if _, err := p.expect(token.Type('}'), "}"); err != nil {
		return err
	}
	info.EnumBody = list
	return nil
}

// parsePointer is '*' type-qualifier-list? pointer?, right-recursive so
// the outermost '*' is the head and Next walks inward.
func (p *Parser) parsePointer() (*ast.Pointer, error) {
	if !p.check(token.Type('*')) {
		return nil, nil
	}
	p.advance()
	ptr := &ast.Pointer{}
	for {
		switch p.peek().Type {
		case token.KEYWORD_CONST:
			ptr.Qualifiers |= ast.QualifierConst
			p.advance()
		case token.KEYWORD_VOLATILE:
			ptr.Qualifiers |= ast.QualifierVolatile
			p.advance()
		default:
			if p.check(token.Type('*')) {
				next, err := p.parsePointer()
				if err != nil {
					return nil, err
				}
				ptr.Next = next
			}
			return ptr, nil
		}
	}
}

// parseAbstractDeclarator is pointer? direct-abstract-declarator?. Both
// halves are optional; a type-name with neither (e.g. a bare "int") is
// valid and yields a nil *AbstractDeclarator.
func (p *Parser) parseAbstractDeclarator() (*ast.AbstractDeclarator, error) {
	ptr, err := p.parsePointer()
	if err != nil {
		return nil, err
	}
	direct, err := p.parseDirectAbstractDeclarator()
	if err != nil {
		return nil, err
	}
	if ptr == nil && direct == nil {
		return nil, nil
	}
	return &ast.AbstractDeclarator{Pointer: ptr, Direct: direct}, nil
}

// declSpecifierStartToken reports whether tok can begin a
// declaration-specifiers list, used to disambiguate a leading '(' in a
// direct-abstract-declarator between a parenthesized grouping and a
// function parameter list.
func declSpecifierStartToken(tok token.Token) bool {
	switch tok.Type {
	case token.KEYWORD_STRUCT, token.KEYWORD_UNION, token.KEYWORD_ENUM,
		token.KEYWORD_CONST, token.KEYWORD_VOLATILE,
		token.KEYWORD_AUTO, token.KEYWORD_REGISTER, token.KEYWORD_STATIC,
		token.KEYWORD_EXTERN, token.KEYWORD_TYPEDEF:
		return true
	}
	return token.IsTypeKeyword(tok.Type)
}

// parseDirectAbstractDeclarator parses the array/function/grouping
// portion of a declarator, left-to-right so that e.g. "(*)[10]" builds
// an Array node wrapping a grouped pointer declarator.
func (p *Parser) parseDirectAbstractDeclarator() (*ast.DirectAbstractDeclarator, error) {
	var base *ast.DirectAbstractDeclarator

	switch {
	case p.check(token.IDENTIFIER):
		tok := p.advance()
		base = &ast.DirectAbstractDeclarator{Kind: ast.DirectName, Name: tok}
	// A leading '(' is a parameter list when followed by ')', an
	// identifier, or a declaration specifier; otherwise it is a grouping.
	case p.check(token.Type('(')) && p.peekN(1).Type != token.Type(')') && p.peekN(1).Type != token.IDENTIFIER && !declSpecifierStartToken(p.peekN(1)):
		p.advance()
		inner, err := p.parseAbstractDeclarator()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Type(')'), ")"); err != nil {
			return nil, err
		}
		base = &ast.DirectAbstractDeclarator{Kind: ast.DirectNone, Group: inner}
	}

	for {
		switch p.peek().Type {
		case token.Type('['):
			p.advance()
			var size ast.Node
			if !p.check(token.Type(']')) {
				var err error
				size, err = p.parseConditional()
				if err != nil {
					return nil, err
				}
			}
			if _, err := p.expect(token.Type(']'), "]"); err != nil {
				return nil, err
			}
			base = &ast.DirectAbstractDeclarator{Kind: ast.DirectArray, Left: base, Size: size}
		case token.Type('('):
			p.advance()
			var params *ast.ParameterList
			if !p.check(token.Type(')')) {
				var err error
				params, err = p.parseParameterList()
				if err != nil {
					return nil, err
				}
			}
			if _, err := p.expect(token.Type(')'), ")"); err != nil {
				return nil, err
			}
			base = &ast.DirectAbstractDeclarator{Kind: ast.DirectFunction, Left: base, Params: params}
		default:
			return base, nil
		}
	}
}

// parseParameterList is parameter-list ( ',' '...' )?.
func (p *Parser) parseParameterList() (*ast.ParameterList, error) {
	list := &ast.ParameterList{}
	for {
		if p.check(token.Type('.')) && p.peekN(1).Type == token.Type('.') && p.peekN(2).Type == token.Type('.') {
			p.advance()
			p.advance()
			p.advance()
			list.IsVararg = true
			break
		}
		decl, err := p.parseParameterDeclaration()
		if err != nil {
			return nil, err
		}
		list.Params = arenaAppend(&p.arena, list.Params, decl)
		if !p.accept(token.Type(',')) {
			break
		}
	}
	return list, nil
}

func (p *Parser) parseParameterDeclaration() (*ast.ParameterDeclaration, error) {
	specs, err := p.parseDeclarationSpecifiers()
	if err != nil {
		return nil, err
	}
	declarator, err := p.parseAbstractDeclarator()
	if err != nil {
		return nil, err
	}
	return &ast.ParameterDeclaration{Specifiers: specs, Declarator: declarator}, nil
}
