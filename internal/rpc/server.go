package rpc

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// Server runs the JSON-RPC dispatcher over a line-delimited stdio
// transport: one request per input line, one response per output line.
type Server struct {
	dispatcher *Dispatcher
	in         io.Reader
	out        io.Writer
}

// NewServer creates a Server reading requests from in and writing
// responses to out.
func NewServer(dispatcher *Dispatcher, in io.Reader, out io.Writer) *Server {
	return &Server{dispatcher: dispatcher, in: in, out: out}
}

// NewStdioServer creates a Server wired to os.Stdin and os.Stdout.
func NewStdioServer(dispatcher *Dispatcher) *Server {
	return NewServer(dispatcher, os.Stdin, os.Stdout)
}

// Serve reads requests until EOF, a read error, or a shutdown signal,
// whichever comes first. It blocks until one of those happens.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("serving semantic-delta protocol on stdio...")
		if err := s.serveLoop(); err != nil {
			errCh <- fmt.Errorf("rpc server error: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-sigCh:
		log.Printf("received shutdown signal, stopping gracefully...")
		cancel()
		return nil
	case err := <-errCh:
		cancel()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) serveLoop() error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	encoder := json.NewEncoder(s.out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			if encErr := encoder.Encode(Response{
				JSONRPC: Version,
				Error:   &Error{Code: CodeParseError, Message: err.Error()},
			}); encErr != nil {
				return encErr
			}
			continue
		}

		resp := s.dispatcher.Handle(req)
		if err := encoder.Encode(resp); err != nil {
			return err
		}
	}

	return scanner.Err()
}
