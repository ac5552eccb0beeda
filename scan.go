// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok

// npos is the position reported by a scan or parse step that failed.
// Its value exceeds any valid buffer offset, so every bounds guard on
// the way out of a parse rejects it without a separate check.
const npos = int(^uint(0) >> 1)

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

// isDelimiter reports whether c ends an unquoted token.
func isDelimiter(c byte) bool { return isSpace(c) || c == ']' || c == '}' || c == ',' }

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

// skipSpace returns the position of the first significant byte at or
// after pos, or len(data) if only whitespace remains. It passes npos
// through unchanged.
func skipSpace(data []byte, pos int) int {
	for pos < len(data) && isSpace(data[pos]) {
		pos++
	}
	return pos
}

// scanString measures the content of a string beginning at pos, which
// for a quoted string is the offset after the opening quote. Content
// ends at an unescaped '"', or in simple mode also at a delimiter, '=',
// or ':'. Escape sequences are validated and consumed whole; an unknown
// escape or a \u with fewer than four hex digits fails the scan. If the
// buffer runs out first, simple mode takes the remainder as content and
// strict mode fails. Returns the content length in bytes, or npos.
func scanString(data []byte, pos int, simple bool) int {
	start := pos
	for pos < len(data) {
		c := data[pos]
		if simple && (isDelimiter(c) || c == '=' || c == ':') {
			return pos - start
		}
		if c == '"' {
			return pos - start
		}
		pos++
		if c == '\\' && pos < len(data) {
			switch data[pos] {
			case '"', '/', '\\', 'b', 'f', 'n', 'r', 't':
				pos++
			case 'u':
				if pos+4 >= len(data) {
					return npos
				}
				for i := 1; i <= 4; i++ {
					if !isHexDigit(data[pos+i]) {
						return npos
					}
				}
				pos += 5
			default:
				return npos
			}
		}
	}
	if simple {
		return pos - start
	}
	return npos
}

// scanNumber measures a numeric primitive beginning at pos: an optional
// leading '-', digits, at most one '.', and at most one exponent marker
// after a digit, with an optional sign directly after the marker. The
// scan ends at a delimiter or the end of the buffer. It checks shape,
// not completeness: "1e" and "." both scan successfully. Returns the
// token length in bytes, or npos.
func scanNumber(data []byte, pos int) int {
	start := pos
	var dot, digit, exp bool
	for pos < len(data) {
		c := data[pos]
		switch {
		case isDelimiter(c):
			return pos - start
		case c == '-':
			if pos != start {
				return npos
			}
		case c == '.':
			if dot || exp {
				return npos
			}
			dot = true
		case c == 'e', c == 'E':
			if !digit || exp {
				return npos
			}
			exp = true
			if pos+1 < len(data) && (data[pos+1] == '+' || data[pos+1] == '-') {
				pos++
			}
		case c < '0' || c > '9':
			return npos
		default:
			digit = true
		}
		pos++
	}
	return pos - start
}
