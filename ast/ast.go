// Package ast defines the typed abstract syntax tree produced by the
// parser: C expressions, type names, and the declarator/struct/enum
// grammar that type names are built from.
package ast

import "github.com/Hoshoyo/moparser/token"

// Node is implemented by every AST node. Every node owns its children
// directly; there is no sharing and no cycles.
type Node interface {
	node()
}

// ---- operator tag types ----

// BinaryKind discriminates the ten left-associative binary precedence
// levels that share the Binary node shape.
type BinaryKind int

const (
	Multiplicative BinaryKind = iota
	Additive
	Shift
	Relational
	Equality
	And
	ExclusiveOr
	InclusiveOr
	LogicalAnd
	LogicalOr
)

// UnaryOperator discriminates a prefix unary expression.
type UnaryOperator int

const (
	UnaryPlusPlus UnaryOperator = iota
	UnaryMinusMinus
	UnaryAddressOf
	UnaryDereference
	UnaryPlus
	UnaryMinus
	UnaryNotBitwise
	UnaryNotLogical
)

// PostfixOperator discriminates a postfix expression.
type PostfixOperator int

const (
	PostfixArrayAccess PostfixOperator = iota
	PostfixCall
	PostfixDot
	PostfixArrow
	PostfixPlusPlus
	PostfixMinusMinus
)

// TypeKind discriminates the data carried by a TypeInfo node.
type TypeKind int

const (
	TypeNone TypeKind = iota
	TypeVoid
	TypePrimitive
	TypeStruct
	TypeUnion
	TypeEnum
	TypeAlias
)

// StorageClass is a bitmask of C storage-class specifiers.
type StorageClass uint8

const (
	StorageAuto StorageClass = 1 << iota
	StorageRegister
	StorageStatic
	StorageExtern
	StorageTypedef
)

// TypeQualifier is a bitmask of C type qualifiers.
type TypeQualifier uint8

const (
	QualifierConst TypeQualifier = 1 << iota
	QualifierVolatile
)

// DirectAbstractKind discriminates a DirectAbstractDeclarator.
type DirectAbstractKind int

const (
	DirectNone DirectAbstractKind = iota
	DirectName
	DirectArray
	DirectFunction
)

// ---- expressions ----

// Ident is a bare identifier used as a primary expression.
type Ident struct{ Tok token.Token }

func (*Ident) node() {}

// ConstantInt is an integer literal (any of the suffix forms).
type ConstantInt struct{ Tok token.Token }

func (*ConstantInt) node() {}

// ConstantFloat is a floating-point literal (float/double/long double).
type ConstantFloat struct{ Tok token.Token }

func (*ConstantFloat) node() {}

// ConstantChar is a character literal.
type ConstantChar struct{ Tok token.Token }

func (*ConstantChar) node() {}

// ConstantEnum is an identifier used where an enumeration constant is
// expected (syntactically identical to Ident; kept distinct so callers
// building an enumerator list don't confuse it with a primary identifier
// expression).
type ConstantEnum struct{ Tok token.Token }

func (*ConstantEnum) node() {}

// StringLiteral is a string literal used as a primary expression.
type StringLiteral struct{ Tok token.Token }

func (*StringLiteral) node() {}

// Unary is a prefix unary expression: ++x, --x, &x, *x, +x, -x, ~x, !x.
type Unary struct {
	Op   UnaryOperator
	Expr Node
}

func (*Unary) node() {}

// Cast is (type-name) expr.
type Cast struct {
	TypeName *TypeName
	Expr     Node
}

func (*Cast) node() {}

// PostfixUnary is a postfix increment or decrement: x++, x--.
type PostfixUnary struct {
	Op   PostfixOperator
	Expr Node
}

func (*PostfixUnary) node() {}

// PostfixBinary is an array index, call, member, or arrow access:
// x[y], x(args), x.y, x->y.
type PostfixBinary struct {
	Op    PostfixOperator
	Left  Node
	Right Node // nil for Call when there are no arguments
}

func (*PostfixBinary) node() {}

// ArgumentList is a comma-separated call-argument list, each element an
// assignment-expression.
type ArgumentList struct {
	Items []Node
}

func (*ArgumentList) node() {}

// Binary is any of the ten left-associative binary-operator levels
// (multiplicative through logical-or), discriminated by Kind.
type Binary struct {
	Kind  BinaryKind
	Op    token.Type
	Left  Node
	Right Node
}

func (*Binary) node() {}

// Assignment is a right-associative assignment-operator application.
type Assignment struct {
	Op    token.Type
	Left  Node
	Right Node
}

func (*Assignment) node() {}

// Ternary is the conditional operator: cond ? caseTrue : caseFalse.
type Ternary struct {
	Condition Node
	CaseTrue  Node
	CaseFalse Node
}

func (*Ternary) node() {}

// Sizeof is sizeof unary-expression or sizeof ( type-name ).
type Sizeof struct {
	IsTypeName bool
	TypeName   *TypeName // set when IsTypeName
	Expr       Node      // set when !IsTypeName
}

func (*Sizeof) node() {}

// ---- type names and declarators ----

// TypeName is a specifier-qualifier-list followed by an optional
// abstract declarator, the grammar used inside casts and sizeof(...).
type TypeName struct {
	SpecifierQualifier *TypeInfo
	AbstractDeclarator *AbstractDeclarator // nil if the type name has no declarator
}

func (*TypeName) node() {}

// TypeInfo accumulates the specifier-qualifier-list and, where
// applicable, the declaration-specifiers' storage class. Exactly one of
// the Kind-specific payload fields is meaningful for a given Kind.
type TypeInfo struct {
	Kind         TypeKind
	Qualifiers   TypeQualifier
	StorageClass StorageClass

	// TypePrimitive: counts how many times each primitive keyword
	// appeared, indexed by Primitive* below, so "long long" yields
	// Primitive[Long]=2 and "unsigned int" yields Primitive[Unsigned]=1,
	// Primitive[Int]=1.
	Primitive [8]int

	// TypeAlias: the typedef-name's spelling.
	Alias string

	// TypeStruct / TypeUnion:
	StructName string
	StructBody *StructDeclarationList // nil if no braced body

	// TypeEnum:
	EnumName string
	EnumBody *EnumeratorList // nil if no braced body
}

func (*TypeInfo) node() {}

// Primitive-keyword indices into TypeInfo.Primitive.
const (
	PrimChar = iota
	PrimShort
	PrimInt
	PrimLong
	PrimFloat
	PrimDouble
	PrimSigned
	PrimUnsigned
)

// Pointer is one `*` in a pointer chain, right-recursive: the outermost
// `*` is the head, and Next points to the pointer it qualifies.
type Pointer struct {
	Qualifiers TypeQualifier
	Next       *Pointer // nil at the innermost pointer
}

func (*Pointer) node() {}

// AbstractDeclarator is an optional pointer chain followed by a direct
// abstract declarator.
type AbstractDeclarator struct {
	Pointer *Pointer // nil if there is no leading *
	Direct  *DirectAbstractDeclarator
}

func (*AbstractDeclarator) node() {}

// DirectAbstractDeclarator is the array/function/parenthesized-grouping
// portion of a declarator. Kind selects which fields are meaningful:
//
//	DirectNone:     Group holds the parenthesized inner declarator (its
//	                own pointer and direct parts), e.g. the "(*)" in
//	                "(*)[10]"; nil for a wholly empty declarator
//	DirectName:     Name holds the identifier
//	DirectArray:    Left holds the inner declarator (may be DirectNone),
//	                Size holds the optional constant-expression bound
//	DirectFunction: Left holds the inner declarator, Params the
//	                parameter-type-list (nil if empty parens)
type DirectAbstractDeclarator struct {
	Kind   DirectAbstractKind
	Name   token.Token
	Left   *DirectAbstractDeclarator
	Group  *AbstractDeclarator // DirectNone only
	Size   Node                // DirectArray only, may be nil
	Params *ParameterList
}

func (*DirectAbstractDeclarator) node() {}

// ParameterList is a function declarator's parameter-type-list.
type ParameterList struct {
	IsVararg bool
	Params   []*ParameterDeclaration
}

func (*ParameterList) node() {}

// ParameterDeclaration is one entry in a ParameterList.
type ParameterDeclaration struct {
	Specifiers *TypeInfo
	Declarator *AbstractDeclarator // nil for an unnamed, undecorated parameter
}

func (*ParameterDeclaration) node() {}

// StructDeclarator is one plain (non-bit-field) declarator inside a
// struct body.
type StructDeclarator struct {
	Declarator *AbstractDeclarator
}

func (*StructDeclarator) node() {}

// StructDeclaratorBitfield is a bit-field member: declarator : width.
// Declarator is nil for an unnamed padding bit-field.
type StructDeclaratorBitfield struct {
	Declarator *AbstractDeclarator
	Width      Node
}

func (*StructDeclaratorBitfield) node() {}

// StructDeclaratorList is the comma-separated declarator list following
// a specifier-qualifier-list inside a struct body.
type StructDeclaratorList struct {
	Items []Node // *StructDeclarator or *StructDeclaratorBitfield
}

func (*StructDeclaratorList) node() {}

// StructDeclaration is one `specifier-qualifier-list declarator-list ;`
// line inside a struct or union body.
type StructDeclaration struct {
	SpecifierQualifier *TypeInfo
	Declarators        *StructDeclaratorList
}

func (*StructDeclaration) node() {}

// StructDeclarationList is the full body of a struct or union.
type StructDeclarationList struct {
	Items []*StructDeclaration
}

func (*StructDeclarationList) node() {}

// Enumerator is one `IDENT ( = constant-expression )?` entry.
type Enumerator struct {
	Name  token.Token
	Value Node // nil if no explicit value
}

func (*Enumerator) node() {}

// EnumeratorList is the full body of an enum.
type EnumeratorList struct {
	Items []*Enumerator
}

func (*EnumeratorList) node() {}
