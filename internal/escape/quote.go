// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as the content of a JSON string: quotation marks,
// backslashes, and control characters are escaped so that a scan of the
// result recovers src. The result carries no surrounding quotation
// marks. Valid multibyte runes pass through unencoded, except for the
// line and paragraph separators, which are escaped for the benefit of
// tools that read JSON as JavaScript.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())

	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		if r < utf8.RuneSelf {
			switch {
			case r == '\\' || r == '"':
				buf = append(buf, '\\', byte(r))
			case r >= ' ':
				buf = append(buf, byte(r))
			case controlEsc[r] != 0:
				buf = append(buf, '\\', controlEsc[r])
			default:
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
			continue
		}

		switch r {
		case '\ufffd': // replacement rune
			buf = append(buf, `\ufffd`...)
		case '\u2028': // line separator
			buf = append(buf, `\u2028`...)
		case '\u2029': // paragraph separator
			buf = append(buf, `\u2029`...)
		default:
			var rbuf [6]byte
			n := utf8.EncodeRune(rbuf[:], r)
			buf = append(buf, rbuf[:n]...)
		}
	}
	return buf
}
