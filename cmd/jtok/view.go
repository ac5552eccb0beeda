// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/jtok"
	"github.com/creachadair/jtok/query"
	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	cl := newColors(cfg.colorEnabled(cc.Out))
	for _, arg := range inputs(args) {
		data, err := readArg(arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		d, err := cfg.parseDoc(data)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		printTree(cc.Out, cl, d)
	}
	return nil
}

type colors struct {
	kind, key, str, num, link func(string, ...any) string
}

func newColors(enable bool) *colors {
	if !enable {
		return &colors{
			kind: fmt.Sprintf,
			key:  fmt.Sprintf,
			str:  fmt.Sprintf,
			num:  fmt.Sprintf,
			link: fmt.Sprintf,
		}
	}
	return &colors{
		kind: color.CyanString,
		key:  color.GreenString,
		str:  color.YellowString,
		num:  color.MagentaString,
		link: color.HiBlackString,
	}
}

// printTree writes one line per token of d, indented by nesting depth.
func printTree(w io.Writer, cl *colors, d *query.Doc) {
	var walk func(i, depth int, member bool)
	walk = func(i, depth int, member bool) {
		tok := d.Token(i)
		fmt.Fprintf(w, "%4d:%s ", i, strings.Repeat("  ", depth))
		if member {
			fmt.Fprintf(w, "%s: ", cl.key("%q", d.KeyText(i)))
		}
		switch tok.Kind {
		case jtok.Object, jtok.Array:
			fmt.Fprint(w, cl.kind("%v", tok.Kind))
		case jtok.String:
			fmt.Fprintf(w, "%s %s", cl.str("%q", d.ValueText(i)),
				cl.link("[%d:%d)", tok.Value.Pos, tok.Value.End))
		default:
			fmt.Fprintf(w, "%s %s", cl.num("%s", d.ValueText(i)),
				cl.link("[%d:%d)", tok.Value.Pos, tok.Value.End))
		}
		var links []string
		if tok.Child != 0 {
			links = append(links, fmt.Sprintf("child=%d", tok.Child))
		}
		if tok.Sibling != 0 {
			links = append(links, fmt.Sprintf("sib=%d", tok.Sibling))
		}
		if len(links) != 0 {
			fmt.Fprintf(w, " %s", cl.link("%s", strings.Join(links, " ")))
		}
		fmt.Fprintln(w)

		inObject := tok.Kind == jtok.Object
		for kid := range d.Children(i) {
			walk(kid, depth+1, inObject)
		}
	}
	walk(0, 0, false)
}
