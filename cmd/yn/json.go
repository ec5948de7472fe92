package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"
)

func jsonProject(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args) {
		n, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		var d []byte
		if cfg.Compact {
			d, err = json.Marshal(n)
		} else {
			d, err = json.MarshalIndent(n, "", "  ")
		}
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\n", d); err != nil {
			return err
		}
	}
	return nil
}
