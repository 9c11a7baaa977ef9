// Command sdp is the command-line front end for the semantic delta
// protocol: analyze a file, diff two files, or run the stdio RPC server.
package main

import "github.com/mvp-joe/semantic-delta/internal/cli"

func main() {
	cli.Execute()
}
