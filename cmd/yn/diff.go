package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/arkadeleon/yamlnode/debug"
	"github.com/arkadeleon/yamlnode/diff"
	"github.com/arkadeleon/yamlnode/dump"
)

func diffDocs(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := loadArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := loadArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	d := diff.Diff(from, to)
	if d == nil {
		return nil
	}
	if debug.Diff() {
		debug.Logf("diff %s %s:\n%v\n", args[0], args[1], d)
	}
	if err := dump.Dump(d, cc.Out, cfg.dumpOpts(cc.Out)...); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
