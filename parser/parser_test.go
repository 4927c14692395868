package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hoshoyo/moparser/ast"
	"github.com/Hoshoyo/moparser/parser"
	"github.com/Hoshoyo/moparser/token"
)

func parseExprOK(t *testing.T, src string) ast.Node {
	t.Helper()
	res := parser.ParseExpression([]byte(src))
	require.Equal(t, parser.StatusOK, res.Status, "unexpected parse error: %s", res.Error)
	require.NotNil(t, res.Node)
	return res.Node
}

func TestAdditiveMultiplicativePrecedence(t *testing.T) {
	n := parseExprOK(t, "1 + 2 * 3")
	add, ok := n.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, ast.Additive, add.Kind)
	_, lhsIsInt := add.Left.(*ast.ConstantInt)
	require.True(t, lhsIsInt)
	mul, ok := add.Right.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, ast.Multiplicative, mul.Kind)
}

func TestBinaryLevelsAreLeftAssociative(t *testing.T) {
	n := parseExprOK(t, "a - b - c")
	outer, ok := n.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, ast.Additive, outer.Kind)
	inner, ok := outer.Left.(*ast.Binary)
	require.True(t, ok, "left operand of a-b-c must be the inner a-b binary")
	require.Equal(t, ast.Additive, inner.Kind)
	_, rhsIsIdent := outer.Right.(*ast.Ident)
	require.True(t, rhsIsIdent)
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	n := parseExprOK(t, "a = b = 1")
	outer, ok := n.(*ast.Assignment)
	require.True(t, ok)
	_, lhsIsIdent := outer.Left.(*ast.Ident)
	require.True(t, lhsIsIdent)
	inner, ok := outer.Right.(*ast.Assignment)
	require.True(t, ok, "right operand of a=b=1 must be the inner b=1 assignment")
	_, innerRHSIsInt := inner.Right.(*ast.ConstantInt)
	require.True(t, innerRHSIsInt)
}

func TestTernaryIsRightAssociative(t *testing.T) {
	n := parseExprOK(t, "a ? b : c ? d : e")
	outer, ok := n.(*ast.Ternary)
	require.True(t, ok)
	_, falseIsTernary := outer.CaseFalse.(*ast.Ternary)
	require.True(t, falseIsTernary, "false-branch of a?b:c?d:e must be the inner ternary")
}

func TestSizeofTypeNameForm(t *testing.T) {
	n := parseExprOK(t, "sizeof(int *)")
	sz, ok := n.(*ast.Sizeof)
	require.True(t, ok)
	require.True(t, sz.IsTypeName)
	require.NotNil(t, sz.TypeName)
	require.Equal(t, ast.TypePrimitive, sz.TypeName.SpecifierQualifier.Kind)
	require.Equal(t, 1, sz.TypeName.SpecifierQualifier.Primitive[ast.PrimInt])
	require.NotNil(t, sz.TypeName.AbstractDeclarator.Pointer)
}

func TestSizeofExpressionFormAttachesExpr(t *testing.T) {
	// original_source/parser.c dropped this on the floor; this parser
	// must attach the parsed sub-expression.
	n := parseExprOK(t, "sizeof x")
	sz, ok := n.(*ast.Sizeof)
	require.True(t, ok)
	require.False(t, sz.IsTypeName)
	require.NotNil(t, sz.Expr)
	ident, ok := sz.Expr.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "x", string(ident.Tok.Data))
}

func TestPostfixCallAndIndexChain(t *testing.T) {
	n := parseExprOK(t, "f(x, y+1)[0]")
	outer, ok := n.(*ast.PostfixBinary)
	require.True(t, ok)
	require.Equal(t, ast.PostfixArrayAccess, outer.Op)
	call, ok := outer.Left.(*ast.PostfixBinary)
	require.True(t, ok)
	require.Equal(t, ast.PostfixCall, call.Op)
	args, ok := call.Right.(*ast.ArgumentList)
	require.True(t, ok)
	require.Len(t, args.Items, 2)
}

func TestArgumentListEmptyWhenNoArgs(t *testing.T) {
	n := parseExprOK(t, "f()")
	call, ok := n.(*ast.PostfixBinary)
	require.True(t, ok)
	require.Equal(t, ast.PostfixCall, call.Op)
	require.Nil(t, call.Right)
}

func TestCastVsParenthesizedExpression(t *testing.T) {
	n := parseExprOK(t, "(int)x")
	cast, ok := n.(*ast.Cast)
	require.True(t, ok)
	require.Equal(t, ast.TypePrimitive, cast.TypeName.SpecifierQualifier.Kind)

	n2 := parseExprOK(t, "(x)")
	_, ok = n2.(*ast.Ident)
	require.True(t, ok, "(x) with x not recognized as a typedef-name must parse as a parenthesized identifier")
}

func TestUnaryOperatorsBindToCastExpression(t *testing.T) {
	n := parseExprOK(t, "-(int)x")
	un, ok := n.(*ast.Unary)
	require.True(t, ok)
	require.Equal(t, ast.UnaryMinus, un.Op)
	_, ok = un.Expr.(*ast.Cast)
	require.True(t, ok)
}

func TestRequiredTokenMismatchIsFatalWithMessage(t *testing.T) {
	res := parser.ParseExpression([]byte("f(1, 2"), parser.WithFileName("in.c"))
	require.Equal(t, parser.StatusFatal, res.Status)
	require.Contains(t, res.Error, "in.c:")
	require.Contains(t, res.Error, "Required")
}

func TestParseTypeNamePrimitiveCounts(t *testing.T) {
	res := parser.ParseTypeName([]byte("unsigned long long"))
	require.Equal(t, parser.StatusOK, res.Status, res.Error)
	tn, ok := res.Node.(*ast.TypeName)
	require.True(t, ok)
	require.Equal(t, 1, tn.SpecifierQualifier.Primitive[ast.PrimUnsigned])
	require.Equal(t, 2, tn.SpecifierQualifier.Primitive[ast.PrimLong])
}

func TestParseTypeNameRejectsStructMixedWithPrimitive(t *testing.T) {
	res := parser.ParseTypeName([]byte("int struct"))
	require.Equal(t, parser.StatusFatal, res.Status)
}

func TestParseTypeNamePointerChainIsLeftOutermost(t *testing.T) {
	res := parser.ParseTypeName([]byte("int **"))
	require.Equal(t, parser.StatusOK, res.Status, res.Error)
	tn := res.Node.(*ast.TypeName)
	outer := tn.AbstractDeclarator.Pointer
	require.NotNil(t, outer)
	require.NotNil(t, outer.Next)
	require.Nil(t, outer.Next.Next)
}

func TestParseTypeNameArrayOfPointerGrouping(t *testing.T) {
	res := parser.ParseTypeName([]byte("int(*)[3]"))
	require.Equal(t, parser.StatusOK, res.Status, res.Error)
	tn := res.Node.(*ast.TypeName)
	direct := tn.AbstractDeclarator.Direct
	require.Equal(t, ast.DirectArray, direct.Kind)
	require.NotNil(t, direct.Left)
	require.Equal(t, ast.DirectNone, direct.Left.Kind)
	require.NotNil(t, direct.Left.Group.Pointer)
}

func TestParseTypeNameFunctionParamsWithVarargs(t *testing.T) {
	res := parser.ParseTypeName([]byte("int (*)(int, char, ...)"))
	require.Equal(t, parser.StatusOK, res.Status, res.Error)
	tn := res.Node.(*ast.TypeName)
	fn := tn.AbstractDeclarator.Direct
	require.Equal(t, ast.DirectFunction, fn.Kind)
	require.True(t, fn.Params.IsVararg)
	require.Len(t, fn.Params.Params, 2)
}

func TestParseStructAllFourTagBodyCombinations(t *testing.T) {
	cases := []string{
		"struct { int x; }",
		"struct point { int x; }",
		"struct point",
		"struct",
	}
	for _, src := range cases {
		res := parser.ParseTypeName([]byte(src))
		require.Equal(t, parser.StatusOK, res.Status, "src=%q err=%s", src, res.Error)
	}
}

func TestParseStructBitfield(t *testing.T) {
	res := parser.ParseTypeName([]byte("struct { unsigned flag : 1; }"))
	require.Equal(t, parser.StatusOK, res.Status, res.Error)
	tn := res.Node.(*ast.TypeName)
	body := tn.SpecifierQualifier.StructBody
	require.Len(t, body.Items, 1)
	bf, ok := body.Items[0].Declarators.Items[0].(*ast.StructDeclaratorBitfield)
	require.True(t, ok)
	require.NotNil(t, bf.Width)
}

func TestParseEnumWithAndWithoutValues(t *testing.T) {
	res := parser.ParseTypeName([]byte("enum color { RED, GREEN = 5, BLUE }"))
	require.Equal(t, parser.StatusOK, res.Status, res.Error)
	tn := res.Node.(*ast.TypeName)
	require.Equal(t, ast.TypeEnum, tn.SpecifierQualifier.Kind)
	items := tn.SpecifierQualifier.EnumBody.Items
	require.Len(t, items, 3)
	require.Nil(t, items[0].Value)
	require.NotNil(t, items[1].Value)
}

func TestParameterDeclarationDefaultsToInt(t *testing.T) {
	res := parser.ParseTypeName([]byte("int (x)"))
	require.Equal(t, parser.StatusOK, res.Status, res.Error)
	fn := res.Node.(*ast.TypeName).AbstractDeclarator.Direct
	require.Equal(t, ast.DirectFunction, fn.Kind)
	require.Len(t, fn.Params.Params, 1)
	require.Equal(t, 1, fn.Params.Params[0].Specifiers.Primitive[ast.PrimInt])
}

func TestTypedefPredicateEnablesIdentifierCast(t *testing.T) {
	isMyType := func(tok token.Token) bool { return string(tok.Data) == "myint_t" }
	res := parser.ParseExpression([]byte("(myint_t)x"), parser.WithTypedefPredicate(isMyType))
	// Without a predicate match this would parse as (myint_t) applied via
	// parenthesized-expression fallback; with the match it must be a Cast.
	require.Equal(t, parser.StatusOK, res.Status, res.Error)
	_, ok := res.Node.(*ast.Cast)
	require.True(t, ok)
}

func TestMaxDepthExceededIsFatal(t *testing.T) {
	src := ""
	for i := 0; i < 2000; i++ {
		src += "("
	}
	src += "1"
	for i := 0; i < 2000; i++ {
		src += ")"
	}
	res := parser.ParseExpression([]byte(src), parser.WithMaxDepth(64))
	require.Equal(t, parser.StatusFatal, res.Status)
}
