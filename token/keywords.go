package token

// kwEntry is one keyword table entry.
type kwEntry struct {
	word string
	typ  Type
}

// keywordsByLen buckets the keyword table by word length so lookup never
// scans more than a handful of candidates, matching the shape of a
// length-bucketed perfect-hash table without the hashing.
var keywordsByLen [16][]kwEntry

func init() {
	words := []kwEntry{
		{"int", KEYWORD_INT},
		{"float", KEYWORD_FLOAT},
		{"double", KEYWORD_DOUBLE},
		{"long", KEYWORD_LONG},
		{"void", KEYWORD_VOID},
		{"char", KEYWORD_CHAR},
		{"short", KEYWORD_SHORT},
		{"signed", KEYWORD_SIGNED},
		{"unsigned", KEYWORD_UNSIGNED},
		{"auto", KEYWORD_AUTO},
		{"break", KEYWORD_BREAK},
		{"case", KEYWORD_CASE},
		{"const", KEYWORD_CONST},
		{"continue", KEYWORD_CONTINUE},
		{"default", KEYWORD_DEFAULT},
		{"do", KEYWORD_DO},
		{"else", KEYWORD_ELSE},
		{"enum", KEYWORD_ENUM},
		{"extern", KEYWORD_EXTERN},
		{"for", KEYWORD_FOR},
		{"goto", KEYWORD_GOTO},
		{"if", KEYWORD_IF},
		{"inline", KEYWORD_INLINE},
		{"register", KEYWORD_REGISTER},
		{"restrict", KEYWORD_RESTRICT},
		{"return", KEYWORD_RETURN},
		{"sizeof", KEYWORD_SIZEOF},
		{"static", KEYWORD_STATIC},
		{"struct", KEYWORD_STRUCT},
		{"switch", KEYWORD_SWITCH},
		{"typedef", KEYWORD_TYPEDEF},
		{"union", KEYWORD_UNION},
		{"volatile", KEYWORD_VOLATILE},
		{"while", KEYWORD_WHILE},
	}
	for _, e := range words {
		l := len(e.word)
		keywordsByLen[l] = append(keywordsByLen[l], e)
	}
}

// Lookup returns the keyword type for val (an exact, case-sensitive
// match, as C keywords are case sensitive) and whether it is a type
// keyword, or IDENTIFIER/false if val is not a keyword.
func Lookup(val []byte) (typ Type, isType bool, isKeyword bool) {
	l := len(val)
	if l == 0 || l >= len(keywordsByLen) {
		return IDENTIFIER, false, false
	}
	for _, e := range keywordsByLen[l] {
		if bytesEqualString(val, e.word) {
			return e.typ, IsTypeKeyword(e.typ), true
		}
	}
	return IDENTIFIER, false, false
}

func bytesEqualString(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := range b {
		if b[i] != s[i] {
			return false
		}
	}
	return true
}
