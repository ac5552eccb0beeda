// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok

// A Span describes a contiguous span of an input buffer.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the length of the span in bytes.
func (s Span) Len() int { return s.End - s.Pos }

// Text returns the bytes of data the span covers, without copying or
// unescaping. The span must lie within data, which holds for any span
// reported by a successful parse of data.
func (s Span) Text(data []byte) []byte { return data[s.Pos:s.End] }
