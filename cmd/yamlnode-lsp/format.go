package main

import (
	"bytes"
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/arkadeleon/yamlnode/dump"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	opts := []dump.Option{}
	if params.Options.TabSize > 0 {
		opts = append(opts, dump.Indent(int(params.Options.TabSize)))
	}
	if err := dump.Dump(doc.root, &buf, opts...); err != nil {
		return nil, nil
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
