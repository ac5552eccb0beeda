// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package query

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/*
Path expression grammar:

	 expr = ["$"] steps
	steps = step [steps]
	 step = ["."] name
	 step = "[" index "]"
	 name = WORD
	 name = "'" QTEXT "'"
	index = "-"? DIGITS

	 WORD = RE `\w+`
	QTEXT = RE `[^']*`

The leading "." of a name step may be omitted only at the start of the
expression. An empty expression (or "$" alone) selects the root.
*/

// ParsePath parses s as a path expression and returns the corresponding
// step sequence for use with Doc.Path and Cursor.Down.
func ParsePath(s string) ([]any, error) {
	s, _ = strings.CutPrefix(s, "$")
	var steps []any
	for first := true; s != ""; first = false {
		if t, ok := strings.CutPrefix(s, "["); ok {
			m := indexRE.FindStringSubmatch(t)
			if m == nil {
				return nil, fmt.Errorf("invalid index at %q", s)
			}
			rest, ok := strings.CutPrefix(t[len(m[0]):], "]")
			if !ok {
				return nil, fmt.Errorf("missing close bracket at %q", s)
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("invalid index at %q: %w", s, err)
			}
			steps = append(steps, n)
			s = rest
			continue
		}
		t, dotted := strings.CutPrefix(s, ".")
		if !dotted && !first {
			return nil, fmt.Errorf("invalid path step at %q", s)
		}
		name, rest, err := parseName(t)
		if err != nil {
			return nil, fmt.Errorf("invalid name at %q: %w", s, err)
		}
		steps = append(steps, name)
		s = rest
	}
	return steps, nil
}

func parseName(s string) (name, rest string, _ error) {
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return m[1], s[len(m[0]):], nil
	}
	if m := wordRE.FindStringSubmatch(s); m != nil {
		return m[1], s[len(m[0]):], nil
	}
	return "", s, errors.New("invalid name")
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(-?\d+)`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)
