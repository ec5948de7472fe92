package main

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/arkadeleon/yamlnode/debug"
	"github.com/arkadeleon/yamlnode/dump"
	"github.com/arkadeleon/yamlnode/parse"
)

func patchDocs(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a JSON Patch argument", cli.ErrUsage)
	}
	var pd []byte
	if cfg.Literal {
		pd = []byte(args[0])
	} else {
		pd, err = readArg(args[0])
		if err != nil {
			return err
		}
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	for _, arg := range argsOrStdin(args[1:]) {
		n, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		doc, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		patched, err := ops.Apply(doc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if debug.Patch() {
			debug.Logf("patched %s: %s\n", arg, string(patched))
		}
		res, err := parse.Parse(patched)
		if err != nil {
			return fmt.Errorf("error reading patched %s: %w", arg, err)
		}
		if err := dump.Dump(res, cc.Out, cfg.dumpOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
