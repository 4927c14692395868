package parser

import "github.com/Hoshoyo/moparser/token"

// cursor is the parser's lookahead window over a token stream. It is the
// only mutable scanning state the parser carries; everything else
// (the arena, recursion depth) is bookkeeping around it.
type cursor struct {
	stream token.Stream
	pos    int
}

func newCursor(stream token.Stream) cursor {
	return cursor{stream: stream}
}

// peek returns the current token without consuming it.
func (c *cursor) peek() token.Token { return c.stream.At(c.pos) }

// peekN returns the token n positions ahead, clamped to the final (EOF)
// token if it would run past the end of the stream.
func (c *cursor) peekN(n int) token.Token {
	idx := c.pos + n
	last := c.stream.Len() - 1
	if idx > last {
		idx = last
	}
	return c.stream.At(idx)
}

// next consumes and returns the current token.
func (c *cursor) next() token.Token {
	t := c.stream.At(c.pos)
	if c.pos < c.stream.Len()-1 {
		c.pos++
	}
	return t
}
