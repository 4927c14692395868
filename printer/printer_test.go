package printer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Hoshoyo/moparser/ast"
	"github.com/Hoshoyo/moparser/parser"
	"github.com/Hoshoyo/moparser/printer"
)

func parseExpr(t *testing.T, src string) ast.Node {
	t.Helper()
	res := parser.ParseExpression([]byte(src))
	require.Equal(t, parser.StatusOK, res.Status, "unexpected parse error: %s", res.Error)
	return res.Node
}

func TestPrintBinaryIsFullyParenthesized(t *testing.T) {
	n := parseExpr(t, "1 + 2 * 3")
	out, err := printer.Print(n)
	require.NoError(t, err)
	require.Equal(t, "(1 + (2 * 3))", out)
}

func TestPrintTernaryIsParenthesized(t *testing.T) {
	n := parseExpr(t, "a ? b : c")
	out, err := printer.Print(n)
	require.NoError(t, err)
	require.Equal(t, "(a ? b : c)", out)
}

func TestPrintUnaryHasNoExtraParens(t *testing.T) {
	n := parseExpr(t, "-x")
	out, err := printer.Print(n)
	require.NoError(t, err)
	require.Equal(t, "-x", out)
}

func TestPrintSizeofExpression(t *testing.T) {
	n := parseExpr(t, "sizeof x")
	out, err := printer.Print(n)
	require.NoError(t, err)
	require.Equal(t, "sizeof x", out)
}

func TestPrintSizeofTypeName(t *testing.T) {
	n := parseExpr(t, "sizeof(int)")
	out, err := printer.Print(n)
	require.NoError(t, err)
	require.Equal(t, "sizeof(int)", out)
}

func TestPrintCastUnsignedLongIsCanonicalOrder(t *testing.T) {
	n := parseExpr(t, "(long unsigned int)x")
	out, err := printer.Print(n)
	require.NoError(t, err)
	require.Equal(t, "(unsigned long int)x", out)
}

func TestPrintPointerDeclaratorInTypeName(t *testing.T) {
	res := parser.ParseTypeName([]byte("int **"))
	require.Equal(t, parser.StatusOK, res.Status, "unexpected parse error: %s", res.Error)
	out, err := printer.Print(res.Node)
	require.NoError(t, err)
	require.Equal(t, "int **", out)
}

func TestPrintNilNodeIsError(t *testing.T) {
	_, err := printer.Print(nil)
	require.Error(t, err)
}

func TestPrintPointerToArrayMatchesSource(t *testing.T) {
	res := parser.ParseTypeName([]byte("int (*)[10]"))
	require.Equal(t, parser.StatusOK, res.Status, "unexpected parse error: %s", res.Error)
	out, err := printer.Print(res.Node)
	require.NoError(t, err)
	require.Equal(t, "int (*)[10]", out)

	// the pointer carried by the grouped declarator must survive: a
	// naive printer that drops ast.DirectAbstractDeclarator.Group would
	// render "int [10]" instead.
	if diff := cmp.Diff("int (*)[10]", out); diff != "" {
		t.Fatalf("unexpected diff (-want +got):\n%s", diff)
	}
}
