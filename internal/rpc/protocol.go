// Package rpc implements the JSON-RPC 2.0 surface over which the semantic
// analysis pipeline is exposed: one request/response pair per line on
// stdin/stdout, dispatched to the analyze, diff, and history methods.
package rpc

import (
	"encoding/json"

	"github.com/mvp-joe/semantic-delta/internal/semantic/model"
)

// Version identifies the wire protocol implemented here.
const Version = "0.1.0"

// Method names accepted by Dispatcher.Handle.
const (
	MethodAnalyze = "analyze"
	MethodDiff    = "diff"
	MethodHistory = "history"
)

// Request is one JSON-RPC request. ID is a pointer so that notifications
// (requests with no ID) round-trip without synthesizing a fake one.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *uint64         `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is one JSON-RPC response. Exactly one of Result and Error is
// set on any response returned by the dispatcher.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *uint64         `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is the JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Standard JSON-RPC error codes, plus the analysis-kind codes this server
// adds for the sdperr.Kind values that can escape a handler.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603

	CodeIOError            = -32000
	CodeAnalysisError      = -32001
	CodeSerializationError = -32002
)

// AnalyzeParams is the payload for the analyze method.
type AnalyzeParams struct {
	Content    string `json:"content"`
	Extension  string `json:"extension"`
	SnapshotID int64  `json:"snapshot_id"`
	FilePath   string `json:"file_path,omitempty"`
}

// AnalyzeResult is the result of the analyze method.
type AnalyzeResult struct {
	Symbols    []model.Symbol    `json:"symbols"`
	References []model.Reference `json:"references"`
}

// DiffParams is the payload for the diff method.
type DiffParams struct {
	BaseSymbols    []model.Symbol `json:"base_symbols"`
	TargetSymbols  []model.Symbol `json:"target_symbols"`
	FromSnapshotID *int64         `json:"from_snapshot_id,omitempty"`
	ToSnapshotID   int64          `json:"to_snapshot_id"`
}

// DiffResult is the result of the diff method.
type DiffResult struct {
	Records []model.Delta `json:"deltas"`
}

// HistoryParams is the payload for the history method. History is not
// backed by any persistence layer here (see Dispatcher.handleHistory), so
// these fields only describe the wire shape a future store-backed
// implementation would consume.
type HistoryParams struct {
	SymbolName string `json:"symbol_name"`
	ProjectID  string `json:"project_id,omitempty"`
}
