// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"

	"github.com/creachadair/jtok"
	"github.com/creachadair/jtok/query"
	"github.com/scott-cotton/cli"

	"github.com/go-json-experiment/json/jsontext"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Path == "" {
		return fmt.Errorf("%w: get requires a path (-p)", cli.ErrUsage)
	}
	steps, err := query.ParsePath(cfg.Path)
	if err != nil {
		return fmt.Errorf("%w: invalid path %q: %v", cli.ErrUsage, cfg.Path, err)
	}
	for _, arg := range inputs(args) {
		data, err := readArg(arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		d, err := cfg.parseDoc(data)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		i, err := d.Path(steps...)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		if err := printValue(cc.Out, d, i); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}

// printValue writes the value of token i on a line: containers re-encode
// as JSON, strings print unescaped, and primitives print their raw text.
func printValue(w io.Writer, d *query.Doc, i int) error {
	switch d.Kind(i) {
	case jtok.Object, jtok.Array:
		enc := jsontext.NewEncoder(w,
			jsontext.AllowDuplicateNames(true),
			jsontext.AllowInvalidUTF8(true))
		return encodeTokens(enc, d, i)

	case jtok.String:
		text, err := d.Text(i)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, text)
		return err

	default:
		_, err := fmt.Fprintln(w, string(d.ValueText(i)))
		return err
	}
}
