package main

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/arkadeleon/yamlnode/node"
	"github.com/arkadeleon/yamlnode/token"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	syms := collectSymbols(doc.root, doc.positions)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

func collectSymbols(n *node.Node, positions map[*node.Node]*token.Pos) []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	switch n.Kind() {
	case node.MappingKind:
		mv, _ := n.Mapping()
		for k, v := range mv.All() {
			sym := protocol.DocumentSymbol{
				Name:           k,
				Kind:           symbolKind(v),
				Range:          nodeRange(v, positions),
				SelectionRange: nodeRange(v, positions),
				Children:       collectSymbols(v, positions),
			}
			res = append(res, sym)
		}
	case node.SequenceKind:
		sv, _ := n.Sequence()
		for i, v := range sv.All() {
			sym := protocol.DocumentSymbol{
				Name:           fmt.Sprintf("[%d]", i),
				Kind:           symbolKind(v),
				Range:          nodeRange(v, positions),
				SelectionRange: nodeRange(v, positions),
				Children:       collectSymbols(v, positions),
			}
			res = append(res, sym)
		}
	}
	return res
}

func symbolKind(n *node.Node) protocol.SymbolKind {
	switch n.Kind() {
	case node.MappingKind:
		return protocol.SymbolKindObject
	case node.SequenceKind:
		return protocol.SymbolKindArray
	case node.NullKind:
		return protocol.SymbolKindNull
	}
	if _, ok := n.Bool(); ok {
		return protocol.SymbolKindBoolean
	}
	if _, ok := n.Float(); ok {
		return protocol.SymbolKindNumber
	}
	return protocol.SymbolKindString
}

func nodeRange(n *node.Node, positions map[*node.Node]*token.Pos) protocol.Range {
	pos := positions[n]
	if pos == nil {
		return protocol.Range{}
	}
	l, c := pos.LineCol()
	p := protocol.Position{Line: uint32(l), Character: uint32(c)}
	return protocol.Range{Start: p, End: p}
}
