// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/creachadair/jtok"
	"github.com/creachadair/jtok/query"
	"github.com/scott-cotton/cli"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.JSON && cfg.YAML {
		return fmt.Errorf("%w: -json and -yaml are mutually exclusive", cli.ErrUsage)
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
		if cfg.YAML {
			err = writeYAML(cc.Out, d)
		} else {
			err = writeJSON(cc.Out, d)
		}
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}

func writeJSON(w io.Writer, d *query.Doc) error {
	enc := jsontext.NewEncoder(w,
		jsontext.AllowDuplicateNames(true),
		jsontext.AllowInvalidUTF8(true),
		jsontext.WithIndent("  "))
	return encodeTokens(enc, d, 0)
}

// encodeTokens re-encodes the subtree of d rooted at i onto enc, keeping
// member order and duplicate keys intact.
func encodeTokens(enc *jsontext.Encoder, d *query.Doc, i int) error {
	switch d.Kind(i) {
	case jtok.Object:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for kid := range d.Children(i) {
			key, err := d.Key(kid)
			if err != nil {
				return err
			}
			if err := enc.WriteToken(jsontext.String(key)); err != nil {
				return err
			}
			if err := encodeTokens(enc, d, kid); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)

	case jtok.Array:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for kid := range d.Children(i) {
			if err := encodeTokens(enc, d, kid); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)

	case jtok.String:
		text, err := d.Text(i)
		if err != nil {
			return err
		}
		return enc.WriteToken(jsontext.String(text))

	case jtok.Primitive:
		text := string(d.ValueText(i))
		switch text {
		case "true":
			return enc.WriteToken(jsontext.Bool(true))
		case "false":
			return enc.WriteToken(jsontext.Bool(false))
		}
		// Numbers pass through as raw values to preserve their text.
		return enc.WriteValue(jsontext.Value(text))
	}
	return fmt.Errorf("token %d has kind %v", i, d.Kind(i))
}

func writeYAML(w io.Writer, d *query.Doc) error {
	v, err := yamlValue(d, 0)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// yamlValue converts the subtree of d rooted at i into a value whose
// member order survives YAML encoding.
func yamlValue(d *query.Doc, i int) (any, error) {
	switch d.Kind(i) {
	case jtok.Object:
		out := make(yaml.MapSlice, 0, d.Len(i))
		for kid := range d.Children(i) {
			key, err := d.Key(kid)
			if err != nil {
				return nil, err
			}
			val, err := yamlValue(d, kid)
			if err != nil {
				return nil, err
			}
			out = append(out, yaml.MapItem{Key: key, Value: val})
		}
		return out, nil

	case jtok.Array:
		out := make([]any, 0, d.Len(i))
		for kid := range d.Children(i) {
			val, err := yamlValue(d, kid)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
		return out, nil

	case jtok.String:
		text, err := d.Text(i)
		if err != nil {
			return nil, err
		}
		return text, nil

	case jtok.Primitive:
		text := string(d.ValueText(i))
		switch text {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		if z, err := strconv.ParseInt(text, 10, 64); err == nil {
			return z, nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		return f, nil
	}
	return nil, fmt.Errorf("token %d has kind %v", i, d.Kind(i))
}
