// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape handles escaping and unescaping of JSON string
// content.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes src as the content of a JSON string, with the
// enclosing quotation marks already removed. Escape sequences are
// replaced with their unescaped equivalents: a \uXXXX escape naming a
// high surrogate combines with an immediately following low surrogate
// escape, and a surrogate that does not pair decodes to the Unicode
// replacement rune, as does an escape naming no known sequence. Unquote
// reports an error only when the input ends in the middle of an escape.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	putRune := func(r rune) {
		var buf [6]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, err := parseHex(src.SliceTo(4))
			src = src.SliceFrom(4)
			if err != nil {
				putRune(utf8.RuneError)
				break
			}
			u := rune(v)
			if utf16.IsSurrogate(u) {
				var used int
				u, used = combineSurrogate(u, src)
				src = src.SliceFrom(used)
			}
			putRune(u)
		default:
			putRune(utf8.RuneError)
		}

		// Find the next escape sequence. If there is none, blit the
		// rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// combineSurrogate resolves surrogate r against an immediately
// following \uXXXX escape in src. It returns the combined rune and the
// number of bytes of src consumed. A surrogate that does not begin a
// valid pair resolves to the replacement rune and consumes nothing, so
// its partner escape, if one follows, still decodes on its own.
func combineSurrogate(r rune, src mem.RO) (rune, int) {
	if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
		if v, err := parseHex(src.SliceTo(6).SliceFrom(2)); err == nil {
			if c := utf16.DecodeRune(r, rune(v)); c != utf8.RuneError {
				return c, 6
			}
		}
	}
	return utf8.RuneError, 0
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
