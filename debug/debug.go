package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Diff   bool
	Patch  bool
	Get    bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("YAMLNODE_DEBUG_TOKENS")
	d.Diff = boolEnv("YAMLNODE_DEBUG_DIFF")
	d.Patch = boolEnv("YAMLNODE_DEBUG_PATCH")
	d.Get = boolEnv("YAMLNODE_DEBUG_GET")
	d.LSP = boolEnv("YAMLNODE_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Get() bool {
	return d.Get
}
func LSP() bool {
	return d.LSP
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
