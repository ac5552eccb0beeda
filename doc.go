// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jtok implements an in-place JSON tokenizer.
//
// The tokenizer reads a byte buffer owned by the caller and describes
// its structure as a flat slice of Token values, one per JSON value in
// the input. It does not build an object graph, convert numbers, or
// copy text: each token records byte offsets into the original buffer,
// and the tree shape is carried by forward indices between tokens.
//
// # Parsing
//
// Parse reads strict JSON, ParseSimple reads a simplified form in which
// quotes are optional, '=' may separate keys from values, and the
// braces around the top-level object may be omitted. Both write into a
// token slice provided by the caller and return the number of tokens
// the input describes, or 0 if the input is invalid:
//
//	toks := make([]jtok.Token, 64)
//	n := jtok.Parse(data, toks)
//	if n == 0 {
//		log.Fatal("invalid input")
//	}
//
// Tokens beyond the end of the slice are counted but not stored, so a
// parse with a nil slice sizes the result exactly:
//
//	n := jtok.Parse(data, nil)
//	toks := make([]jtok.Token, n)
//	jtok.Parse(data, toks)
//
// # Tokens
//
// Tokens appear in the slice in the order their values begin in the
// input, with the root value at index 0. The structure of containers is
// recorded as indices: the Child of an Object or Array token names its
// first element, and the Sibling of a value names the next value in the
// same container. Links always point forward, 0 means no link, and a
// link may point past the last token, so consumers range-check links
// before following them.
//
//	JSON kind  | Token fields used
//	---------- | ----------------------------------------
//	object     | Kind, Key, Child
//	array      | Kind, Key, Child
//	string     | Kind, Key, Value
//	number     | Kind, Key, Value (Kind is Primitive)
//	true/false | Kind, Key, Value (Kind is Primitive)
//
// An object member and its value share a single token whose Key spans
// the member name. Array elements and root values have an empty Key.
//
// Value spans are raw input bytes: string contents are reported between
// the quotes with escapes intact. Use Unescape to decode them, and
// Escape to encode text for inclusion in JSON output.
//
// The query subpackage provides path lookups, typed extraction, and
// iteration over parsed buffers.
package jtok
