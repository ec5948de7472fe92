package main

import (
	"context"
	"errors"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/arkadeleon/yamlnode/debug"
	"github.com/arkadeleon/yamlnode/node"
	"github.com/arkadeleon/yamlnode/parse"
	"github.com/arkadeleon/yamlnode/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	root      *node.Node
	positions map[*node.Node]*token.Pos
	parseErr  error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	positions := map[*node.Node]*token.Pos{}
	root, err := parse.Parse([]byte(content), parse.Positions(positions))
	if err != nil {
		root = nil
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = &document{
		uri:       uri,
		content:   content,
		version:   version,
		root:      root,
		positions: positions,
		parseErr:  err,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)
	if debug.LSP() {
		debug.Logf("diagnostics %s: %d\n", uri, len(diagnostics))
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.parseErr == nil {
		return diagnostics
	}

	diagnostic := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.parseErr.Error(),
		Source:   "yamlnode",
	}
	var pe *parse.Error
	if errors.As(doc.parseErr, &pe) {
		diagnostic.Message = pe.Msg
		diagnostic.Code = pe.Err.Error()
		diagnostic.Range = protocol.Range{
			Start: protocol.Position{
				Line:      uint32(pe.Line),
				Character: uint32(pe.Col),
			},
			End: protocol.Position{
				Line:      uint32(pe.Line),
				Character: uint32(pe.Col + 1),
			},
		}
	}
	return append(diagnostics, diagnostic)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		r := change.Range
		if r.Start == r.End && r.Start.Line == 0 && r.Start.Character == 0 {
			// full document replacement
			content = change.Text
			continue
		}
		start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
		end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
		if start <= end && end <= len(content) {
			content = content[:start] + change.Text + content[end:]
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	curLine, curCol := 0, 0
	for i := range len(content) {
		if curLine == line && curCol == col {
			return i
		}
		if content[i] == '\n' {
			curLine++
			curCol = 0
		} else {
			curCol++
		}
	}
	return len(content)
}
