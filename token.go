// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok

// A Kind classifies the value recorded by a Token.
type Kind byte

// Constants defining the valid Kind values.
const (
	Undefined Kind = iota // unset or dropped token
	Object                // object, "{ ... }"
	Array                 // array, "[ ... ]"
	String                // string value or bare word
	Primitive             // number, true, or false
)

var kindStr = [...]string{
	Undefined: "undefined",
	Object:    "object",
	Array:     "array",
	String:    "string",
	Primitive: "primitive",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[0]
	}
	return kindStr[k]
}

// A Token is one node of the flat tree built by Parse and ParseSimple.
// Tokens are recorded in the order their values begin in the input, so
// the root is always index 0 and every link points forward.
//
// An object member and its value share one token: Key spans the member
// key and the remaining fields describe the value. Array elements and
// root values have an empty Key.
//
// Child and Sibling are indices into the token slice. Child is set on
// Object and Array tokens and names the first value inside; Sibling
// names the next value in the same container. Zero means the link is
// unset, since no link can point back at the root. A link may also
// point at or past the end of the parsed tokens, for example the Child
// of an empty container, so consumers must range-check links against
// the token count before following them.
type Token struct {
	Kind    Kind // the kind of value this token records
	Key     Span // the member key, for object members
	Value   Span // the value text, for String and Primitive tokens
	Child   int  // index of the first contained value, for Object and Array
	Sibling int  // index of the next value in the enclosing container
}
