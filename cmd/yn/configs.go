package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/arkadeleon/yamlnode/dump"
	"github.com/arkadeleon/yamlnode/parse"
)

type MainConfig struct {
	Strict bool `cli:"name=s aliases=strict desc='reject duplicate mapping keys'"`
	Color  bool `cli:"name=color desc='colorize output'"`
	Indent int  `cli:"name=indent desc='indentation width (default 2)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	var res []parse.Option
	if cfg.Strict {
		res = append(res, parse.Strict())
	}
	return res
}

func (cfg *MainConfig) dumpOpts(w io.Writer) []dump.Option {
	var res []dump.Option
	if cfg.Indent > 0 {
		res = append(res, dump.Indent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, dump.WithColors(dump.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		return append(res, dump.WithColors(dump.NewColors()))
	}
	return res
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='suppress per-file ok lines'"`

	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type JSONConfig struct {
	*MainConfig
	Compact bool `cli:"name=c desc='compact output'"`

	JSON *cli.Command
}

type GetConfig struct {
	*MainConfig
	JSONOut bool `cli:"name=j desc='print the result as JSON'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Literal bool `cli:"name=e desc='patch argument is a JSON Patch literal'"`

	Patch *cli.Command
}
