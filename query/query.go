// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package query implements structural queries over token trees.
//
// A Doc couples an input buffer with the tokens produced by parsing it, and
// answers navigational queries by token index: the member of an object, the
// element of an array, a path through nested containers. Token indices are
// stable for the life of the Doc, so a query result can be held and revisited
// without re-parsing.
//
// For example, given the input
//
//	[{"a": 1, "b": 2}, {"c": {"d": true}, "e": false}]
//
// the call
//
//	d.Path(1, "c", "d")
//
// yields the index of the token for the value "true".
package query

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/creachadair/jtok"
)

// ErrParse is reported by Parse and ParseSimple when the input cannot be
// tokenized.
var ErrParse = errors.New("invalid input")

// A Doc couples an input buffer with its parsed tokens. The zero Doc is
// empty; use New, Parse, or ParseSimple to construct one.
type Doc struct {
	data []byte
	toks []jtok.Token
	ends []int // exclusive upper bound of each subtree, parallel to toks
}

// Parse tokenizes data with jtok.Parse and returns a Doc over the result.
// It reports ErrParse if data is not valid against the strict grammar.
func Parse(data []byte) (*Doc, error) {
	n := jtok.Parse(data, nil)
	if n == 0 {
		return nil, ErrParse
	}
	toks := make([]jtok.Token, n)
	jtok.Parse(data, toks)
	return New(data, toks), nil
}

// ParseSimple tokenizes data with jtok.ParseSimple and returns a Doc over
// the result. It reports ErrParse if data is not valid against the
// simplified grammar.
func ParseSimple(data []byte) (*Doc, error) {
	n := jtok.ParseSimple(data, nil)
	if n == 0 {
		return nil, ErrParse
	}
	toks := make([]jtok.Token, n)
	jtok.ParseSimple(data, toks)
	return New(data, toks), nil
}

// New constructs a Doc from data and the tokens of a successful parse of
// data. The Doc shares both slices with the caller; neither may be modified
// while the Doc is in use.
func New(data []byte, toks []jtok.Token) *Doc {
	d := &Doc{data: data, toks: toks, ends: make([]int, len(toks))}
	if len(toks) != 0 {
		d.fillEnds(0, len(toks))
	}
	return d
}

// fillEnds records end as the subtree bound for token i and resolves the
// bounds of its descendants. A child or sibling link at or past the bound of
// its parent is a remnant of parsing, not part of the tree.
func (d *Doc) fillEnds(i, end int) {
	d.ends[i] = end
	if k := d.toks[i].Kind; k != jtok.Object && k != jtok.Array {
		return
	}
	for kid := d.toks[i].Child; kid != 0 && kid < end; {
		next := d.toks[kid].Sibling
		kend := end
		if next != 0 && next < end {
			kend = next
		}
		d.fillEnds(kid, kend)
		kid = next
	}
}

// Data returns the input buffer of d. The result is shared, not copied.
func (d *Doc) Data() []byte { return d.data }

// Tokens returns the tokens of d. The result is shared, not copied.
func (d *Doc) Tokens() []jtok.Token { return d.toks }

// Token returns the token at index i. It panics if i is out of range.
func (d *Doc) Token(i int) jtok.Token { return d.toks[i] }

// Kind reports the kind of token i, or jtok.Undefined if i is out of range.
func (d *Doc) Kind(i int) jtok.Kind {
	if i < 0 || i >= len(d.toks) {
		return jtok.Undefined
	}
	return d.toks[i].Kind
}

func (d *Doc) isContainer(i int) bool {
	k := d.Kind(i)
	return k == jtok.Object || k == jtok.Array
}

// Children returns an iterator over the indices of the direct children of
// token i in input order: the members of an object or the elements of an
// array. A token that is not a container has no children.
func (d *Doc) Children(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !d.isContainer(i) {
			return
		}
		end := d.ends[i]
		for kid := d.toks[i].Child; kid != 0 && kid < end; {
			if !yield(kid) {
				return
			}
			kid = d.toks[kid].Sibling
		}
	}
}

// Len reports the number of children of token i. It reports 0 for any token
// that is not a container.
func (d *Doc) Len(i int) int {
	var n int
	for range d.Children(i) {
		n++
	}
	return n
}

// Find reports the index of the member of object obj whose unescaped key is
// key, or -1 if there is no such member. If multiple members share the key,
// the first in input order is reported.
func (d *Doc) Find(obj int, key string) int {
	if d.Kind(obj) != jtok.Object {
		return -1
	}
	for kid := range d.Children(obj) {
		if d.keyEquals(kid, key) {
			return kid
		}
	}
	return -1
}

// keyEquals reports whether the unescaped key of token i equals key.
func (d *Doc) keyEquals(i int, key string) bool {
	raw := d.toks[i].Key.Text(d.data)
	if bytes.IndexByte(raw, '\\') < 0 {
		return string(raw) == key
	}
	dec, err := jtok.Unescape(raw)
	return err == nil && string(dec) == key
}

// Index reports the index of the nth child of container ctr, or -1 if n is
// out of bounds. Negative n counts backward from the end (-1 is last, -2
// second last).
func (d *Doc) Index(ctr, n int) int {
	if !d.isContainer(ctr) {
		return -1
	}
	if n < 0 {
		n += d.Len(ctr)
		if n < 0 {
			return -1
		}
	}
	for kid := range d.Children(ctr) {
		if n == 0 {
			return kid
		}
		n--
	}
	return -1
}

// Path traverses a sequence of object keys and container offsets from the
// root of d and reports the index of the token reached. Each step must be
// either a string, resolving a member of an object by unescaped key, or an
// int, resolving the nth child of a container as for Index. Any other step
// type panics. An empty path selects the root.
func (d *Doc) Path(steps ...any) (int, error) {
	if len(d.toks) == 0 {
		return -1, errors.New("empty document")
	}
	cur := 0
	for n, step := range steps {
		switch t := step.(type) {
		case string:
			next := d.Find(cur, t)
			if next < 0 {
				return -1, fmt.Errorf("step %d: key %q not found", n, t)
			}
			cur = next
		case int:
			next := d.Index(cur, t)
			if next < 0 {
				return -1, fmt.Errorf("step %d: index %d out of bounds", n, t)
			}
			cur = next
		default:
			panic(fmt.Sprintf("invalid path element %T", step))
		}
	}
	return cur, nil
}

// SkipChildren can be returned by a Walk callback to prune the walk below
// the current token.
var SkipChildren = errors.New("skip children")

// Walk calls fn for each token of the subtree rooted at i, in parse order.
// If fn reports SkipChildren the children of the current token are not
// visited and the walk continues with its siblings. Any other error stops
// the walk and is returned to the caller.
func (d *Doc) Walk(i int, fn func(i int) error) error {
	if err := d.walk(i, fn); err != nil && !errors.Is(err, SkipChildren) {
		return err
	}
	return nil
}

func (d *Doc) walk(i int, fn func(i int) error) error {
	if err := fn(i); err != nil {
		return err
	}
	for kid := range d.Children(i) {
		if err := d.walk(kid, fn); err != nil && !errors.Is(err, SkipChildren) {
			return err
		}
	}
	return nil
}

// KeyText returns the raw bytes of the key span of token i, without
// unescaping. The result shares the input buffer of d. It panics if i is
// out of range.
func (d *Doc) KeyText(i int) []byte { return d.toks[i].Key.Text(d.data) }

// ValueText returns the raw bytes of the value span of token i, without
// unescaping. Object and array tokens have an empty value span. The result
// shares the input buffer of d. It panics if i is out of range.
func (d *Doc) ValueText(i int) []byte { return d.toks[i].Value.Text(d.data) }

// Key returns the unescaped key of token i.
func (d *Doc) Key(i int) (string, error) {
	if i < 0 || i >= len(d.toks) {
		return "", fmt.Errorf("token %d out of range", i)
	}
	return jtok.UnescapeString(string(d.toks[i].Key.Text(d.data)))
}

// Text returns the text of the value of token i. String values are
// unescaped; all other kinds yield their raw text.
func (d *Doc) Text(i int) (string, error) {
	if i < 0 || i >= len(d.toks) {
		return "", fmt.Errorf("token %d out of range", i)
	}
	raw := string(d.toks[i].Value.Text(d.data))
	if d.toks[i].Kind == jtok.String {
		return jtok.UnescapeString(raw)
	}
	return raw, nil
}

// Float64 interprets the value of token i as a floating-point number.
func (d *Doc) Float64(i int) (float64, error) {
	if i < 0 || i >= len(d.toks) {
		return 0, fmt.Errorf("token %d out of range", i)
	}
	return strconv.ParseFloat(string(d.toks[i].Value.Text(d.data)), 64)
}

// Int64 interprets the value of token i as a decimal integer.
func (d *Doc) Int64(i int) (int64, error) {
	if i < 0 || i >= len(d.toks) {
		return 0, fmt.Errorf("token %d out of range", i)
	}
	return strconv.ParseInt(string(d.toks[i].Value.Text(d.data)), 10, 64)
}

// Bool interprets the value of token i as a boolean. The value text must be
// exactly "true" or "false". Both Primitive and String tokens are accepted,
// since an unquoted boolean at the end of simplified input scans as a
// String.
func (d *Doc) Bool(i int) (bool, error) {
	if i < 0 || i >= len(d.toks) {
		return false, fmt.Errorf("token %d out of range", i)
	}
	switch string(d.toks[i].Value.Text(d.data)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("token %d is not a boolean", i)
}
