package rpc

import (
	"encoding/json"

	"github.com/mvp-joe/semantic-delta/internal/sdperr"
	"github.com/mvp-joe/semantic-delta/internal/semantic/extract"
)

// Dispatcher handles analyze/diff/history requests. It owns one Extractor,
// so repeated analyze calls for the same file path reparse incrementally.
//
// A Dispatcher is not safe for concurrent use; the stdio Server that owns
// one serializes requests onto it.
type Dispatcher struct {
	extractor *extract.Extractor
}

// NewDispatcher creates a Dispatcher with a fresh Extractor.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{extractor: extract.NewExtractor()}
}

// Close releases the Dispatcher's Extractor.
func (d *Dispatcher) Close() {
	d.extractor.Close()
}

// Handle dispatches req to the matching method and builds the Response. It
// never returns an error itself: protocol-level and handler-level failures
// both become a populated Response.Error.
func (d *Dispatcher) Handle(req Request) Response {
	resp := Response{JSONRPC: Version, ID: req.ID}

	var result any
	var err error

	switch req.Method {
	case MethodAnalyze:
		result, err = d.handleAnalyze(req.Params)
	case MethodDiff:
		result, err = d.handleDiff(req.Params)
	case MethodHistory:
		result, err = d.handleHistory(req.Params)
	default:
		resp.Error = &Error{Code: CodeMethodNotFound, Message: "method not found: " + req.Method}
		return resp
	}

	if err != nil {
		resp.Error = toRPCError(err)
		return resp
	}

	raw, marshalErr := json.Marshal(result)
	if marshalErr != nil {
		resp.Error = &Error{Code: CodeSerializationError, Message: marshalErr.Error()}
		return resp
	}
	resp.Result = raw
	return resp
}

func (d *Dispatcher) handleAnalyze(raw json.RawMessage) (*AnalyzeResult, error) {
	var params AnalyzeParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, sdperr.SerializationErrorf(err, "decoding analyze params")
	}

	symbols, references, err := d.extractor.Extract([]byte(params.Content), params.Extension, params.SnapshotID, params.FilePath)
	if err != nil {
		return nil, err
	}

	return &AnalyzeResult{Symbols: symbols, References: references}, nil
}

func (d *Dispatcher) handleDiff(raw json.RawMessage) (*DiffResult, error) {
	var params DiffParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, sdperr.SerializationErrorf(err, "decoding diff params")
	}

	records := extract.Diff(params.BaseSymbols, params.TargetSymbols, params.FromSnapshotID, params.ToSnapshotID)
	return &DiffResult{Records: records}, nil
}

// handleHistory always fails: symbol history requires a persistence layer
// to replay past deltas from, and this server keeps no record of past
// snapshots or deltas.
func (d *Dispatcher) handleHistory(raw json.RawMessage) (*struct{}, error) {
	var params HistoryParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, sdperr.SerializationErrorf(err, "decoding history params")
	}
	return nil, sdperr.AnalysisErrorf("history is not available without a snapshot store (requested %q)", params.SymbolName)
}

func toRPCError(err error) *Error {
	if se, ok := err.(*sdperr.Error); ok {
		switch se.Kind {
		case sdperr.IO:
			return &Error{Code: CodeIOError, Message: se.Error()}
		case sdperr.Parse:
			return &Error{Code: CodeInvalidParams, Message: se.Error()}
		case sdperr.Serialization:
			return &Error{Code: CodeSerializationError, Message: se.Error()}
		case sdperr.Analysis:
			return &Error{Code: CodeAnalysisError, Message: se.Error()}
		default:
			return &Error{Code: CodeInternalError, Message: se.Error()}
		}
	}
	return &Error{Code: CodeInternalError, Message: err.Error()}
}
