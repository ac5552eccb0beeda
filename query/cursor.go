// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package query

import (
	"fmt"

	"github.com/creachadair/jtok"
)

// A Cursor is a pointer that navigates into the structure of a Doc.
type Cursor struct {
	doc *Doc
	org int
	stk []int
	err error
}

// Cursor constructs a new Cursor into d anchored at token origin.
func (d *Doc) Cursor(origin int) *Cursor { return &Cursor{doc: d, org: origin} }

// Origin returns the origin index of c.
func (c *Cursor) Origin() int { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Index reports the token index under the cursor.
func (c *Cursor) Index() int {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of token indices from the origin to the
// current location in c.
func (c *Cursor) Path() []int {
	return append([]int{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current token, where path elements are either strings (denoting object
// keys), integers (denoting offsets into containers), or functions (see
// below). If the path cannot be completely consumed, traversal stops and an
// error is recorded. Use Err to recover the error.
//
// If a path element is a string, the current token must be an object, and
// the string resolves the member with that unescaped key.
//
// If a path element is an integer, the current token must be a container,
// and the integer resolves its nth child. Negative indices count backward
// from the end (-1 is last, -2 second last). An error is reported if the
// index is out of bounds.
//
// If a path element is a function, the function is executed and its result
// becomes the next token index in the sequence. The function must have a
// signature
//
//	func(*Doc, int) (int, error)
//
// If the function reports an error, traversal stops and the error is
// recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Index()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			if c.doc.Kind(cur) != jtok.Object {
				return c.setErrorf("cannot traverse %v with %q", c.doc.Kind(cur), t)
			}
			next := c.doc.Find(cur, t)
			if next < 0 {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(next)

		case int:
			if !c.doc.isContainer(cur) {
				return c.setErrorf("cannot traverse %v with %v", c.doc.Kind(cur), t)
			}
			next := c.doc.Index(cur, t)
			if next < 0 {
				return c.setErrorf("index %d out of bounds (n=%d)", t, c.doc.Len(cur))
			}
			cur = c.push(next)

		case func(*Doc, int) (int, error):
			next, err := t(c.doc, cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(i int) int { c.stk = append(c.stk, i); return i }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}
