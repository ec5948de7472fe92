package parse

import (
	"github.com/arkadeleon/yamlnode/node"
	"github.com/arkadeleon/yamlnode/token"
)

type options struct {
	strict    bool
	positions map[*node.Node]*token.Pos
}

type Option func(*options)

// Strict makes a repeated mapping key an [ErrDuplicateKey] error instead
// of replacing the earlier value.
func Strict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// Positions records the source position of every parsed node into m.
// Nodes synthesized for absent values have no source token and get no
// entry.
func Positions(m map[*node.Node]*token.Pos) Option {
	return func(o *options) {
		o.positions = m
	}
}
