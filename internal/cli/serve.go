package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/semantic-delta/internal/rpc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the semantic delta protocol server on stdio",
	Long:  `serve starts a JSON-RPC server on stdin/stdout exposing analyze, diff, and history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dispatcher := rpc.NewDispatcher()
		defer dispatcher.Close()

		server := rpc.NewStdioServer(dispatcher)
		return server.Serve(context.Background())
	},
}
