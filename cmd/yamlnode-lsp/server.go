package main

import (
	"context"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// Server handles the LSP methods the tool supports. The rest of the
// protocol.Server interface is stubbed in unsupported.go.
type Server struct {
	conn jsonrpc2.Conn
	docs *documentStore
}

func newServer(conn jsonrpc2.Conn) *Server {
	return &Server{
		conn: conn,
		docs: &documentStore{docs: map[string]*document{}},
	}
}

func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
			},
			DocumentFormattingProvider: true,
			DocumentSymbolProvider:     true,
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    "yamlnode-lsp",
			Version: "0.1.0",
		},
	}, nil
}

func (s *Server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) Exit(ctx context.Context) error {
	return s.conn.Close()
}
