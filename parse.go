// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok

import "go4.org/mem"

// maxDepth bounds container nesting so that hostile input cannot grow
// the call stack without limit.
const maxDepth = 10000

// Parse parses data as JSON and records the resulting tokens in order
// of occurrence in tokens. It returns the number of tokens the input
// describes, or 0 if the input is not valid. The root value is token 0,
// and input after the first complete value is ignored.
//
// Parse writes at most len(tokens) tokens but counts all of them, so it
// never allocates: parse once with a nil slice to size the output, then
// again with a slice of the reported length to fill it.
//
//	n := jtok.Parse(data, nil)
//	if n == 0 {
//		log.Fatal("invalid input")
//	}
//	toks := make([]jtok.Token, n)
//	jtok.Parse(data, toks)
//
// When len(tokens) is less than the count, the surplus tokens are
// dropped and links into the dropped region are left as written; the
// contents of tokens are unspecified unless Parse succeeds and the
// slice covers the full count. Inputs nested more than 10000 containers
// deep fail.
func Parse(data []byte, tokens []Token) int {
	p := &parser{data: data, toks: tokens}
	p.setKey(0, 0, 0)
	p.setPrimitive(0, Undefined, 0, 0)
	if p.parseValue(0, 0) == npos {
		return 0
	}
	return p.next
}

// ParseSimple parses data in the simplified form of JSON and records
// the resulting tokens in tokens, returning the token count as Parse
// does. Simplified input relaxes the strict grammar: quotes around
// strings are optional, '=' may separate a key from its value, and the
// braces around a top-level object may be omitted. When the first
// significant byte is not '{', the whole buffer is read as the members
// of an implicit object whose token is recorded at index 0.
func ParseSimple(data []byte, tokens []Token) int {
	p := &parser{data: data, toks: tokens, simple: true}
	pos := skipSpace(data, 0)
	if pos < len(data) && data[pos] != '{' {
		p.setKey(0, 0, 0)
		p.setComplex(0, Object)
		p.next = 1
		if p.parseObject(pos, 1) == npos {
			return 0
		}
		return p.next
	}
	if p.parseValue(pos, 0) == npos {
		return 0
	}
	return p.next
}

// A parser consumes one input buffer and writes tokens into the slice
// provided by the caller. Writes beyond the end of the slice are
// dropped but still counted, so a short (or nil) slice reports the full
// token count for the input.
type parser struct {
	data   []byte  // input being parsed
	toks   []Token // caller-owned output, may be shorter than the result
	next   int     // allocation cursor: index of the next token
	simple bool    // use the simplified grammar
}

// token returns the token at index i, or nil if i falls outside the
// caller's slice.
func (p *parser) token(i int) *Token {
	if i < len(p.toks) {
		return &p.toks[i]
	}
	return nil
}

// validToken reports whether the token at i has been written with a
// real kind. Indices outside the caller's slice count as valid, so an
// input bigger than the slice is never rejected on that account.
func (p *parser) validToken(i int) bool {
	if t := p.token(i); t != nil {
		return t.Kind != Undefined
	}
	return true
}

func (p *parser) setPrimitive(i int, kind Kind, pos, n int) {
	if t := p.token(i); t != nil {
		t.Kind = kind
		t.Child = 0
		t.Sibling = 0
		t.Value = Span{Pos: pos, End: pos + n}
	}
}

// setComplex marks token i as a container. The first value inside, if
// any, will be allocated at the next index, so Child is set before the
// contents are parsed; an empty container leaves it dangling.
func (p *parser) setComplex(i int, kind Kind) {
	if t := p.token(i); t != nil {
		t.Kind = kind
		t.Child = i + 1
		t.Sibling = 0
		t.Value = Span{}
	}
}

// setKey records the key span of token i, leaving its other fields for
// the value parse to fill in.
func (p *parser) setKey(i, pos, n int) {
	if t := p.token(i); t != nil {
		t.Key = Span{Pos: pos, End: pos + n}
	}
}

// parseValue parses one value of any kind beginning at or after pos and
// returns the position just past it, or npos. The value's token is
// allocated before its contents are parsed, so children always follow
// their container in the output.
func (p *parser) parseValue(pos, depth int) int {
	pos = skipSpace(p.data, pos)
	if pos >= len(p.data) {
		return npos
	}
	c := p.data[pos]
	pos++
	switch c {
	case '{':
		if depth >= maxDepth {
			return npos
		}
		p.setComplex(p.next, Object)
		p.next++
		return p.parseObject(pos, depth+1)

	case '[':
		if depth >= maxDepth {
			return npos
		}
		p.setComplex(p.next, Array)
		p.next++
		return p.parseArray(pos, depth+1)

	case '-', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n := scanNumber(p.data, pos-1)
		if n == npos {
			return npos
		}
		p.setPrimitive(p.next, Primitive, pos-1, n)
		p.next++
		return pos + n - 1

	case 't', 'f':
		// An exact true or false literal must be followed by a
		// delimiter byte; at the end of the buffer it is not a match.
		if c == 't' && len(p.data)-pos >= 4 &&
			mem.B(p.data[pos:pos+3]).Equal(mem.S("rue")) && isDelimiter(p.data[pos+3]) {
			p.setPrimitive(p.next, Primitive, pos-1, 4)
			p.next++
			return pos + 3
		}
		if c == 'f' && len(p.data)-pos >= 5 &&
			mem.B(p.data[pos:pos+4]).Equal(mem.S("alse")) && isDelimiter(p.data[pos+4]) {
			p.setPrimitive(p.next, Primitive, pos-1, 5)
			p.next++
			return pos + 4
		}
		if !p.simple {
			return npos
		}
		fallthrough

	default: // '"', or in simple mode the start of a bare word
		if c != '"' {
			if !p.simple {
				return npos
			}
			pos--
		}
		n := scanString(p.data, pos, p.simple)
		if n == npos {
			return npos
		}
		p.setPrimitive(p.next, String, pos, n)
		p.next++
		// The closing quote is optional in simple mode.
		if !p.simple || (pos+n < len(p.data) && p.data[pos+n] == '"') {
			n++
		}
		return pos + n
	}
}

// parseObject parses the members of an object, beginning after the
// opening brace or at the first member of an implicit simple-mode
// object, and returns the position past the closing brace, or npos. In
// simple mode the end of the buffer also closes the object, and no
// separator is needed between a value and the next key, so members may
// simply be written one per line.
func (p *parser) parseObject(pos, depth int) int {
	last := 0
	pos = skipSpace(p.data, pos)
	for pos < len(p.data) {
		c := p.data[pos]
		pos++
		switch c {
		case '}':
			if last != 0 && !p.validToken(last) {
				return npos
			}
			return pos

		case ',':
			if last == 0 || !p.validToken(last) {
				return npos
			}
			if t := p.token(last); t != nil {
				t.Sibling = p.next
			}
			last = 0
			pos = skipSpace(p.data, pos)

		default: // a member key, quoted or in simple mode bare
			if last != 0 {
				return npos
			}
			if c != '"' {
				if !p.simple {
					return npos
				}
				pos--
			}
			n := scanString(p.data, pos, p.simple)
			if n == npos {
				return npos
			}
			last = p.next
			p.setKey(p.next, pos, n)
			// The closing quote is optional in simple mode.
			if !p.simple || (pos+n < len(p.data) && p.data[pos+n] == '"') {
				n++
			}
			pos += n

			pos = skipSpace(p.data, pos)
			if pos >= len(p.data) || (p.data[pos] != ':' && (!p.simple || p.data[pos] != '=')) {
				return npos
			}
			pos = p.parseValue(pos+1, depth)
			pos = skipSpace(p.data, pos)
			if p.simple && pos < len(p.data) && p.data[pos] != ',' && p.data[pos] != '}' {
				// The next byte starts a new member: close this one
				// without a separator.
				if t := p.token(last); t != nil {
					t.Sibling = p.next
				}
				last = 0
			}
		}
	}
	if p.simple {
		return pos
	}
	return npos
}

// parseArray parses the elements of an array, beginning after the
// opening bracket, and returns the position past the closing bracket,
// or npos. Elements carry no key. Arrays never close implicitly: the
// buffer ending before ']' fails in both grammars. In simple mode the
// separator between elements is optional.
func (p *parser) parseArray(pos, depth int) int {
	last := 0
	pos = skipSpace(p.data, pos)
	if pos < len(p.data) && p.data[pos] == ']' {
		pos++
		return skipSpace(p.data, pos)
	}
	for pos < len(p.data) {
		now := p.next
		p.setKey(now, 0, 0)
		pos = p.parseValue(pos, depth)
		if pos == npos {
			return npos
		}
		if last != 0 {
			if t := p.token(last); t != nil {
				t.Sibling = now
			}
		}
		last = now
		pos = skipSpace(p.data, pos)
		if pos < len(p.data) && p.data[pos] == ',' {
			pos++
		} else if pos < len(p.data) && p.data[pos] == ']' {
			pos++
			return pos
		} else if !p.simple {
			return npos
		}
	}
	return npos
}
