package dump

import (
	"bytes"
	"strings"

	"github.com/arkadeleon/yamlnode/node"
)

func MustString(n *node.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Dump(n, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
