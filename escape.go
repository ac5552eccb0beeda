// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"github.com/creachadair/jtok/internal/escape"

	"go4.org/mem"
)

// Escape encodes src as the content of a JSON string value: quotation
// marks, backslashes, and control characters are escaped. The result
// does not include surrounding quotation marks, so it occupies the same
// role as the Value span of a String token.
func Escape(src []byte) []byte { return escape.Quote(mem.B(src)) }

// Unescape decodes the content of a JSON string value, such as the
// Value span of a String token, replacing escape sequences with their
// unescaped equivalents. Surrogate pairs are combined; an unpaired
// surrogate or an escape naming no known sequence is replaced by the
// Unicode replacement rune. Unescape reports an error only for an
// escape cut off by the end of the input.
//
// When src contains no escapes the result is a copy of src.
func Unescape(src []byte) ([]byte, error) { return escape.Unquote(mem.B(src)) }

// UnescapeString is Unescape on a string, returning its result as a
// string.
func UnescapeString(src string) (string, error) {
	dec, err := escape.Unquote(mem.S(src))
	return string(dec), err
}
