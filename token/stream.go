package token

import "github.com/Hoshoyo/moparser/internal/varray"

// Stream is an ordered sequence of tokens terminated by a single EOF
// token, produced by the lexer and consumed by the parser through a
// cursor.
type Stream struct {
	arr *varray.Array[Token]
}

// NewStream returns an empty stream with room for capHint tokens.
func NewStream(capHint int) Stream {
	return Stream{arr: varray.New[Token](capHint)}
}

// Push appends a token to the stream.
func (s *Stream) Push(t Token) { s.arr.Push(t) }

// Len returns the number of tokens in the stream, including the
// terminating EOF token.
func (s Stream) Len() int { return s.arr.Len() }

// At returns the token at index i.
func (s Stream) At(i int) Token { return s.arr.At(i) }
