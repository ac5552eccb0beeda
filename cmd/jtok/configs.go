// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"io"
	"os"

	"github.com/creachadair/jtok/query"
	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Simple bool `cli:"name=s aliases=simple desc='parse with the simplified grammar'"`
	Color  bool `cli:"name=color desc='colorize output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// parseDoc parses data according to the selected grammar.
func (cfg *MainConfig) parseDoc(data []byte) (*query.Doc, error) {
	if cfg.Simple {
		return query.ParseSimple(data)
	}
	return query.Parse(data)
}

// colorEnabled reports whether output written to w should be colorized.
// An explicit -color setting wins; otherwise color is enabled when w is a
// terminal.
func (cfg *MainConfig) colorEnabled(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false // -color=false given explicitly
		}
		break
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// inputs returns args, or the stdin marker when no files are named.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// readArg reads the contents of a named input, where "-" denotes stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig

	JSON bool `cli:"name=json aliases=j desc='re-encode as JSON (default)'"`
	YAML bool `cli:"name=yaml aliases=y desc='re-encode as YAML'"`

	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig

	Path string `cli:"name=p aliases=path desc='path expression to evaluate'"`

	Get *cli.Command
}
