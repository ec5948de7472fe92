package main

import (
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/arkadeleon/yamlnode/debug"
	"github.com/arkadeleon/yamlnode/dump"
	"github.com/arkadeleon/yamlnode/parse"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an expression", cli.ErrUsage)
	}
	program, err := expr.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: bad expression %q: %v", cli.ErrUsage, args[0], err)
	}
	for _, arg := range argsOrStdin(args[1:]) {
		n, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		env := map[string]any{"doc": n.Interface()}
		out, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", args[0], arg, err)
		}
		if debug.Get() {
			debug.Logf("get %q on %s -> %v\n", args[0], arg, out)
		}
		if err := writeResult(cfg, cc, out); err != nil {
			return err
		}
	}
	return nil
}

// writeResult renders an expression result as YAML via its JSON form, or
// as JSON directly under -j.
func writeResult(cfg *GetConfig, cc *cli.Context, out any) error {
	d, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if cfg.JSONOut {
		_, err := fmt.Fprintf(cc.Out, "%s\n", d)
		return err
	}
	n, err := parse.Parse(d)
	if err != nil {
		_, err := fmt.Fprintf(cc.Out, "%v\n", out)
		return err
	}
	return dump.Dump(n, cc.Out, cfg.dumpOpts(cc.Out)...)
}
