package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arkadeleon/yamlnode/dump"
	"github.com/arkadeleon/yamlnode/node"
)

// Logf writes a formatted message to stderr, rendering *node.Node
// arguments as YAML and generic JSON values indented.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *node.Node:
			args[i] = dump.MustString(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
