package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/arkadeleon/yamlnode/parse"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := false
	for _, arg := range argsOrStdin(args) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		if _, err := parse.Parse(d, cfg.parseOpts()...); err != nil {
			failed = true
			var pe *parse.Error
			if errors.As(err, &pe) {
				theLog.Error("invalid document",
					"file", arg,
					"line", pe.Line,
					"col", pe.Col,
					"kind", pe.Err.Error(),
					"err", pe.Msg)
			} else {
				theLog.Error("invalid document", "file", arg, "err", err)
			}
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", arg)
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
