package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/gops/agent"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

func main() {
	ctx := context.Background()

	if err := agent.Listen(agent.Options{}); err != nil {
		fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
	}

	stream := jsonrpc2.NewStream(stdio{})
	conn := jsonrpc2.NewConn(stream)
	srv := newServer(conn)
	conn.Go(ctx, protocol.ServerHandler(srv, nil))
	<-conn.Done()
}

// stdio adapts the process's standard streams to the LSP transport.
type stdio struct{}

func (stdio) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdio) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func (stdio) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
