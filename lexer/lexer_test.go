package lexer

import (
	"testing"

	"github.com/Hoshoyo/moparser/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	stream := Lex([]byte(src))
	out := make([]token.Token, 0, stream.Len())
	for i := 0; i < stream.Len(); i++ {
		out = append(out, stream.At(i))
	}
	return out
}

func TestLexIdentifierAndKeyword(t *testing.T) {
	toks := lexAll(t, "foo int")
	if toks[0].Type != token.IDENTIFIER || string(toks[0].Data) != "foo" {
		t.Fatalf("expected identifier foo, got %+v", toks[0])
	}
	if toks[1].Type != token.KEYWORD_INT {
		t.Fatalf("expected keyword int, got %+v", toks[1])
	}
	if !toks[1].Is(token.KEYWORD | token.TYPE_KEYWORD) {
		t.Fatalf("expected int to carry KEYWORD|TYPE_KEYWORD, got flags %v", toks[1].Flags)
	}
}

func TestLexNotEqualIsNotEqual(t *testing.T) {
	toks := lexAll(t, "a != b")
	if toks[1].Type != token.NOT_EQUAL {
		t.Fatalf("expected != to lex as NOT_EQUAL, got %v", toks[1].Type)
	}
}

func TestLexIntegerSuffixMatrix(t *testing.T) {
	cases := []struct {
		src  string
		want token.Type
	}{
		{"123", token.INT_LITERAL},
		{"123u", token.INT_U_LITERAL},
		{"123U", token.INT_U_LITERAL},
		{"123l", token.INT_L_LITERAL},
		{"123ul", token.INT_UL_LITERAL},
		{"123ull", token.INT_ULL_LITERAL},
		{"123ll", token.INT_LL_LITERAL},
		{"0x1F", token.INT_HEX_LITERAL},
		{"0b101", token.INT_BIN_LITERAL},
		{"0755", token.INT_OCT_LITERAL},
	}
	for _, c := range cases {
		toks := lexAll(t, c.src)
		if toks[0].Type != c.want {
			t.Errorf("lexing %q: got %v, want %v", c.src, toks[0].Type, c.want)
		}
	}
}

func TestLexFloatingSuffixes(t *testing.T) {
	cases := []struct {
		src  string
		want token.Type
	}{
		{"1.5", token.DOUBLE_LITERAL},
		{"1.5f", token.FLOAT_LITERAL},
		{"1.5F", token.FLOAT_LITERAL},
		{"1.5l", token.LONG_DOUBLE_LITERAL},
		{"1e10", token.DOUBLE_LITERAL},
		{"1.5e-3f", token.FLOAT_LITERAL},
	}
	for _, c := range cases {
		toks := lexAll(t, c.src)
		if toks[0].Type != c.want {
			t.Errorf("lexing %q: got %v, want %v", c.src, toks[0].Type, c.want)
		}
	}
}

func TestLexCharAndStringLiterals(t *testing.T) {
	// Char literals exclude their quotes; string literals include them.
	toks := lexAll(t, `'a' "hello\n"`)
	if toks[0].Type != token.CHAR_LITERAL || string(toks[0].Data) != "a" {
		t.Fatalf("expected char literal a, got %+v", toks[0])
	}
	if toks[1].Type != token.STRING_LITERAL || string(toks[1].Data) != `"hello\n"` {
		t.Fatalf(`expected string literal "hello\n", got %+v`, toks[1])
	}
}

func TestLexStringLiteralLengthIncludesQuotes(t *testing.T) {
	toks := lexAll(t, `"a\"b"`)
	if toks[0].Type != token.STRING_LITERAL {
		t.Fatalf("expected string literal, got %+v", toks[0])
	}
	if toks[0].Length != 6 {
		t.Fatalf(`expected length 6 for "a\"b", got %d (%q)`, toks[0].Length, toks[0].Data)
	}
}

func TestLexMultiCharOperators(t *testing.T) {
	toks := lexAll(t, "-> == <= >= || && << >> += -= *= /= %= &= |= ^= <<= >>= ++ --")
	want := []token.Type{
		token.ARROW, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.LOGIC_OR, token.LOGIC_AND, token.BITSHIFT_LEFT, token.BITSHIFT_RIGHT,
		token.PLUS_EQUAL, token.MINUS_EQUAL, token.TIMES_EQUAL, token.DIV_EQUAL,
		token.MOD_EQUAL, token.AND_EQUAL, token.OR_EQUAL, token.XOR_EQUAL,
		token.SHL_EQUAL, token.SHR_EQUAL, token.PLUS_PLUS, token.MINUS_MINUS,
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("operator %d: got %v, want %v", i, toks[i].Type, w)
		}
		if token.IsAssignmentOperator(toks[i].Type) != toks[i].Is(token.ASSIGNMENT_OPERATOR) {
			t.Errorf("operator %d: assignment flag mismatch for %v", i, toks[i].Type)
		}
	}
}

func TestLexSingleBytePunctuatorUsesASCIIValue(t *testing.T) {
	toks := lexAll(t, "+")
	if toks[0].Type != token.Type('+') {
		t.Fatalf("expected single-byte punctuator to use ASCII value, got %v", toks[0].Type)
	}
}

func TestLexCommentsAreSkipped(t *testing.T) {
	toks := lexAll(t, "a // comment\nb /* block\ncomment */ c")
	if len(toks) != 4 { // a, b, c, EOF
		t.Fatalf("expected 4 tokens, got %d: %+v", len(toks), toks)
	}
	if string(toks[0].Data) != "a" || string(toks[1].Data) != "b" || string(toks[2].Data) != "c" {
		t.Fatalf("unexpected token contents: %+v", toks)
	}
}

func TestLexEndsWithEOF(t *testing.T) {
	toks := lexAll(t, "x")
	last := toks[len(toks)-1]
	if last.Type != token.EOF {
		t.Fatalf("expected stream to terminate with EOF, got %v", last.Type)
	}
}
