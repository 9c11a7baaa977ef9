// Command sdp-server runs the semantic delta protocol server standalone on
// stdio, without the sdp CLI's analyze/diff subcommands.
package main

import (
	"context"
	"log"

	"github.com/mvp-joe/semantic-delta/internal/rpc"
)

func main() {
	dispatcher := rpc.NewDispatcher()
	defer dispatcher.Close()

	server := rpc.NewStdioServer(dispatcher)
	if err := server.Serve(context.Background()); err != nil {
		log.Fatalf("sdp-server: %v", err)
	}
}
