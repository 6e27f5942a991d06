// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package lex

// Cursor is a read position in an immutable token buffer.
type Cursor struct {
	toks []string
	pos  int
}

// NewCursor returns a cursor at the start of toks.
func NewCursor(toks []string) *Cursor {
	return &Cursor{toks: toks}
}

// Next returns the token at the cursor and advances.  ok is false at the
// end of the buffer.
func (c *Cursor) Next() (tok string, ok bool) {
	if c.pos >= len(c.toks) {
		return "", false
	}
	tok = c.toks[c.pos]
	c.pos++
	return tok, true
}

// Peek returns the token at the cursor without advancing.
func (c *Cursor) Peek() (string, bool) {
	if c.pos >= len(c.toks) {
		return "", false
	}
	return c.toks[c.pos], true
}

// Done reports whether all tokens have been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.toks)
}

// Line returns the tokens up to the next Newline and advances past it.
// The result shares storage with the buffer.
func (c *Cursor) Line() []string {
	start := c.pos
	for c.pos < len(c.toks) && c.toks[c.pos] != Newline {
		c.pos++
	}
	line := c.toks[start:c.pos]
	if c.pos < len(c.toks) {
		c.pos++
	}
	return line
}

// SkipNewlines advances past any Newline tokens.
func (c *Cursor) SkipNewlines() {
	for c.pos < len(c.toks) && c.toks[c.pos] == Newline {
		c.pos++
	}
}
