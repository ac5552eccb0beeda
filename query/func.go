// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package query

import "github.com/creachadair/jtok"

// Exists reports whether the given path resolves in d. The arguments have
// the same constraints as Path.
func (d *Doc) Exists(steps ...any) bool {
	_, err := d.Path(steps...)
	return err == nil
}

// Select returns the indices of the children of container i for which f
// reports true, in input order.
func (d *Doc) Select(i int, f func(int) bool) []int {
	var out []int
	for kid := range d.Children(i) {
		if f(kid) {
			out = append(out, kid)
		}
	}
	return out
}

// Collect returns the indices of every token in the subtree rooted at i for
// which f reports true, in parse order.
func (d *Doc) Collect(i int, f func(int) bool) []int {
	var out []int
	d.Walk(i, func(j int) error {
		if f(j) {
			out = append(out, j)
		}
		return nil
	})
	return out
}

// IsKind returns a predicate for Select and Collect that reports whether a
// token has the given kind.
func (d *Doc) IsKind(k jtok.Kind) func(int) bool {
	return func(i int) bool { return d.Kind(i) == k }
}
