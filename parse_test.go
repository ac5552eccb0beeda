// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jtok"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  []jtok.Token
	}{
		// Empty containers
		{`{}`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
		}},
		{`[]`, []jtok.Token{
			{Kind: jtok.Array, Child: 1},
		}},
		{` [ ] `, []jtok.Token{
			{Kind: jtok.Array, Child: 1},
		}},

		// Top-level primitives. A bare literal needs a delimiter after
		// it, so the constants carry a trailing delimiter here.
		{`17`, []jtok.Token{
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 0, End: 2}},
		}},
		{`-2.5e-3`, []jtok.Token{
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 0, End: 7}},
		}},
		{`   42 `, []jtok.Token{
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 3, End: 5}},
		}},
		{`true `, []jtok.Token{
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 0, End: 4}},
		}},
		{`false,`, []jtok.Token{
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 0, End: 5}},
		}},

		// Strings report their contents between the quotes.
		{`"hello"`, []jtok.Token{
			{Kind: jtok.String, Value: jtok.Span{Pos: 1, End: 6}},
		}},
		{`""`, []jtok.Token{
			{Kind: jtok.String, Value: jtok.Span{Pos: 1, End: 1}},
		}},
		{`"a\nb"`, []jtok.Token{
			{Kind: jtok.String, Value: jtok.Span{Pos: 1, End: 5}},
		}},
		{`"\u00e9"`, []jtok.Token{
			{Kind: jtok.String, Value: jtok.Span{Pos: 1, End: 7}},
		}},

		// Number shape is checked, completeness is not.
		{`1e`, []jtok.Token{
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 0, End: 2}},
		}},
		{`.`, []jtok.Token{
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 0, End: 1}},
		}},
		{`-`, []jtok.Token{
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 0, End: 1}},
		}},

		// Containers and links
		{`[true]`, []jtok.Token{
			{Kind: jtok.Array, Child: 1},
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 1, End: 5}},
		}},
		{`{"a":1,"b":[true,false]}`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.Primitive, Key: jtok.Span{Pos: 2, End: 3}, Value: jtok.Span{Pos: 5, End: 6}, Sibling: 2},
			{Kind: jtok.Array, Key: jtok.Span{Pos: 8, End: 9}, Child: 3},
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 12, End: 16}, Sibling: 4},
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 17, End: 22}},
		}},
		{`{"out":{"in":[0]}}`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.Object, Key: jtok.Span{Pos: 2, End: 5}, Child: 2},
			{Kind: jtok.Array, Key: jtok.Span{Pos: 9, End: 11}, Child: 3},
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 14, End: 15}},
		}},
		{`{"":""}`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.String, Key: jtok.Span{Pos: 2, End: 2}, Value: jtok.Span{Pos: 5, End: 5}},
		}},

		// An empty container keeps the child index it reserved, which
		// may land on the next token written.
		{`[[],{}]`, []jtok.Token{
			{Kind: jtok.Array, Child: 1},
			{Kind: jtok.Array, Child: 2, Sibling: 2},
			{Kind: jtok.Object, Child: 3},
		}},

		// A trailing comma in an object is tolerated; the last member's
		// sibling link dangles at the token count.
		{`{"a":1,}`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.Primitive, Key: jtok.Span{Pos: 2, End: 3}, Value: jtok.Span{Pos: 5, End: 6}, Sibling: 2},
		}},

		// Input after the first complete value is ignored.
		{`{"a":1} {"b":2}`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.Primitive, Key: jtok.Span{Pos: 2, End: 3}, Value: jtok.Span{Pos: 5, End: 6}},
		}},
	}

	for _, test := range tests {
		data := []byte(test.input)
		got := make([]jtok.Token, len(test.want))
		n := jtok.Parse(data, got)
		if n != len(test.want) {
			t.Errorf("Parse %#q: got %d tokens, want %d", test.input, n, len(test.want))
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Parse %#q: tokens (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		``, `   `, "\n\t ",

		// Unclosed containers
		`{`, `[`, `[1,2`, `{"a":1`, `{"a":`,

		// Missing or misplaced values and separators
		`{"x":}`, `[1,2,]`, `[,]`, `{,}`, `[1 2]`, `{"a" "b"}`,
		`{"a":1 "b":2}`, `{"a"}`, `{:1}`, `[1;2]`,

		// Bare words and unquoted strings
		`hello`, `{a:1}`, `null `, `nan `,

		// Literals need a trailing delimiter, and must match exactly.
		`true`, `false`, `truex `, `falsehood `, `{"a":tru}`,

		// Malformed strings and escapes
		`"unterminated`, `"bad\escape"`, `{"k": "va\q"}`,
		`"\u12"`, `"\u12g4"`, `"split\`,

		// Malformed numbers
		`1..2 `, `1ee4 `, `.e3 `, `1-2 `, `--1 `, `1e2e3 `,
	}
	for _, input := range tests {
		if n := jtok.Parse([]byte(input), nil); n != 0 {
			t.Errorf("Parse %#q: got %d tokens, want 0", input, n)
		}
	}
}

func TestParseSimple(t *testing.T) {
	tests := []struct {
		input string
		want  []jtok.Token
	}{
		// A top-level document without braces parses as the members of
		// an implicit object recorded at index 0.
		{`a=1`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.Primitive, Key: jtok.Span{Pos: 0, End: 1}, Value: jtok.Span{Pos: 2, End: 3}},
		}},
		{"a=1\nb=2", []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.Primitive, Key: jtok.Span{Pos: 0, End: 1}, Value: jtok.Span{Pos: 2, End: 3}, Sibling: 2},
			{Kind: jtok.Primitive, Key: jtok.Span{Pos: 4, End: 5}, Value: jtok.Span{Pos: 6, End: 7}},
		}},
		{`a = b, c = d`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.String, Key: jtok.Span{Pos: 0, End: 1}, Value: jtok.Span{Pos: 4, End: 5}, Sibling: 2},
			{Kind: jtok.String, Key: jtok.Span{Pos: 7, End: 8}, Value: jtok.Span{Pos: 11, End: 12}},
		}},
		{`key = "value"`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.String, Key: jtok.Span{Pos: 0, End: 3}, Value: jtok.Span{Pos: 7, End: 12}},
		}},

		// With a leading brace the input is an ordinary value.
		{`{a=1}`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.Primitive, Key: jtok.Span{Pos: 1, End: 2}, Value: jtok.Span{Pos: 3, End: 4}},
		}},
		{`{}`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
		}},

		// The end of the buffer closes an open object.
		{`{`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
		}},
		{`{a=1`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.Primitive, Key: jtok.Span{Pos: 1, End: 2}, Value: jtok.Span{Pos: 3, End: 4}},
		}},

		// A bare true or false is a Primitive only when a delimiter
		// follows; at the end of the buffer it is a String.
		{`a=true `, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.Primitive, Key: jtok.Span{Pos: 0, End: 1}, Value: jtok.Span{Pos: 2, End: 6}},
		}},
		{`a=true`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.String, Key: jtok.Span{Pos: 0, End: 1}, Value: jtok.Span{Pos: 2, End: 6}},
		}},

		// A missing value before a closing brace reads as an empty
		// string.
		{`{a=}`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.String, Key: jtok.Span{Pos: 1, End: 2}, Value: jtok.Span{Pos: 3, End: 3}},
		}},

		// Nested containers
		{`a={b=1}`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.Object, Key: jtok.Span{Pos: 0, End: 1}, Child: 2},
			{Kind: jtok.Primitive, Key: jtok.Span{Pos: 3, End: 4}, Value: jtok.Span{Pos: 5, End: 6}},
		}},

		// Array elements may be separated by whitespace alone.
		{`list=[1 2]`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.Array, Key: jtok.Span{Pos: 0, End: 4}, Child: 2},
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 6, End: 7}, Sibling: 3},
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 8, End: 9}},
		}},

		// A trailing comma in an array yields an empty string element.
		{`a=[1,2,]`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.Array, Key: jtok.Span{Pos: 0, End: 1}, Child: 2},
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 3, End: 4}, Sibling: 3},
			{Kind: jtok.Primitive, Value: jtok.Span{Pos: 5, End: 6}, Sibling: 4},
			{Kind: jtok.String, Value: jtok.Span{Pos: 7, End: 7}},
		}},

		// Escapes are validated in bare words and quoted strings alike.
		{`a="x\ty"`, []jtok.Token{
			{Kind: jtok.Object, Child: 1},
			{Kind: jtok.String, Key: jtok.Span{Pos: 0, End: 1}, Value: jtok.Span{Pos: 3, End: 7}},
		}},
	}

	for _, test := range tests {
		data := []byte(test.input)
		got := make([]jtok.Token, len(test.want))
		n := jtok.ParseSimple(data, got)
		if n != len(test.want) {
			t.Errorf("ParseSimple %#q: got %d tokens, want %d", test.input, n, len(test.want))
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ParseSimple %#q: tokens (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseSimpleInvalid(t *testing.T) {
	tests := []string{
		``, `   `,

		// A member needs a separator even when everything else is
		// optional.
		`hello`, `"a"`, `a`, `a b`,

		// A separator needs a value to follow, unless a brace closes
		// the member first.
		`a=`,

		// Arrays never close implicitly, and a top-level array reads
		// as a malformed implicit object.
		`a=[1,2`, `[1,2]`,

		// Escape validation applies to bare words.
		`a=\q`, `a="\u12"`,
	}
	for _, input := range tests {
		if n := jtok.ParseSimple([]byte(input), nil); n != 0 {
			t.Errorf("ParseSimple %#q: got %d tokens, want 0", input, n)
		}
	}
}

// Inputs used for the sizing and linking properties below.
var (
	validStrict = []string{
		`{}`, `[]`, `0`, `"x"`,
		`{"a":1,"b":[true,false]}`,
		`{"out":{"in":[0]}}`,
		`[[],{}]`,
		`{"a":1,}`,
		`[1, [2, [3, [4]]], {"k": "v"}]`,
		`{"s": "a\nbA", "n": -1.5e+2, "t": true , "f": false }`,
	}
	validSimple = []string{
		`a=1`, "a=1\nb=2", `{a=1}`, `a={b=[1 2 3] c="x"}`,
		`a=[1,2,]`, `key = "value"`, `a=true `, `a=true`,
	}
)

func TestSizing(t *testing.T) {
	tests := []struct {
		name   string
		parse  func([]byte, []jtok.Token) int
		inputs []string
	}{
		{"Parse", jtok.Parse, validStrict},
		{"ParseSimple", jtok.ParseSimple, validSimple},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, input := range tc.inputs {
				data := []byte(input)

				// Counting at zero capacity must agree with a full parse.
				n := tc.parse(data, nil)
				if n == 0 {
					t.Errorf("Count %#q: got 0, want nonzero", input)
					continue
				}
				full := make([]jtok.Token, n)
				if got := tc.parse(data, full); got != n {
					t.Errorf("Parse %#q: got %d tokens, want %d", input, got, n)
				}

				// Reparsing is deterministic.
				again := make([]jtok.Token, n)
				tc.parse(data, again)
				if diff := cmp.Diff(full, again); diff != "" {
					t.Errorf("Reparse %#q: tokens differ (-first, +second)\n%s", input, diff)
				}

				// A short slice reports the full count and fills the
				// prefix exactly as a full parse would.
				if n > 1 {
					part := make([]jtok.Token, n/2)
					if got := tc.parse(data, part); got != n {
						t.Errorf("Short parse %#q: got %d tokens, want %d", input, got, n)
					}
					if diff := cmp.Diff(full[:n/2], part); diff != "" {
						t.Errorf("Short parse %#q: prefix (-full, +short)\n%s", input, diff)
					}
				}

				// Links never point backward or at their owner.
				for i, tok := range full {
					if tok.Child != 0 && tok.Child <= i {
						t.Errorf("Parse %#q: token %d child %d does not point forward", input, i, tok.Child)
					}
					if tok.Sibling != 0 && tok.Sibling <= i {
						t.Errorf("Parse %#q: token %d sibling %d does not point forward", input, i, tok.Sibling)
					}
				}
			}
		})
	}
}

func TestParseAllocs(t *testing.T) {
	data := []byte(`{"a":1,"b":[true,false],"c":{"d":"e\nf"}}`)
	toks := make([]jtok.Token, 16)
	if n := testing.AllocsPerRun(100, func() {
		jtok.Parse(data, toks)
	}); n != 0 {
		t.Errorf("Parse allocated %v times per run, want 0", n)
	}
}

func TestDeepNesting(t *testing.T) {
	const limit = 10000

	ok := strings.Repeat("[", limit) + strings.Repeat("]", limit)
	if n := jtok.Parse([]byte(ok), nil); n != limit {
		t.Errorf("Parse at depth %d: got %d tokens, want %d", limit, n, limit)
	}

	over := strings.Repeat("[", limit+1) + strings.Repeat("]", limit+1)
	if n := jtok.Parse([]byte(over), nil); n != 0 {
		t.Errorf("Parse at depth %d: got %d tokens, want 0", limit+1, n)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind jtok.Kind
		want string
	}{
		{jtok.Undefined, "undefined"},
		{jtok.Object, "object"},
		{jtok.Array, "array"},
		{jtok.String, "string"},
		{jtok.Primitive, "primitive"},
		{jtok.Kind(250), "undefined"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind(%d).String: got %q, want %q", byte(test.kind), got, test.want)
		}
	}
}
