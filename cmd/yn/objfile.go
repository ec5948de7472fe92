package main

import (
	"fmt"
	"io"
	"os"

	"github.com/arkadeleon/yamlnode/node"
	"github.com/arkadeleon/yamlnode/parse"
)

// readArg reads a file argument, with "-" meaning stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	return d, nil
}

func loadArg(cfg *MainConfig, arg string) (*node.Node, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	n, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return n, nil
}

func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
