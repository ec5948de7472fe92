package main

import (
	"github.com/scott-cotton/cli"

	"github.com/arkadeleon/yamlnode/dump"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args) {
		n, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := dump.Dump(n, cc.Out, cfg.dumpOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
