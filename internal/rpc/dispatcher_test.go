package rpc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleAnalyze(t *testing.T) {
	d := NewDispatcher()
	defer d.Close()

	params, err := json.Marshal(AnalyzeParams{
		Content:   "package sample\n\nfunc A() {}\n",
		Extension: "go",
	})
	require.NoError(t, err)

	id := uint64(1)
	resp := d.Handle(Request{JSONRPC: Version, ID: &id, Method: MethodAnalyze, Params: params})

	require.Nil(t, resp.Error)
	require.NotNil(t, resp.ID)
	require.Equal(t, id, *resp.ID)

	var result AnalyzeResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Symbols, 1)
	require.Equal(t, "A", result.Symbols[0].Name)
}

func TestHandleDiff(t *testing.T) {
	d := NewDispatcher()
	defer d.Close()

	params, err := json.Marshal(map[string]any{
		"base_symbols":   []map[string]any{{"name": "foo", "structural_hash": "h1"}},
		"target_symbols": []map[string]any{{"name": "foo", "structural_hash": "h2"}},
		"to_snapshot_id": 2,
	})
	require.NoError(t, err)

	resp := d.Handle(Request{JSONRPC: Version, Method: MethodDiff, Params: params})
	require.Nil(t, resp.Error)

	var result DiffResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Records, 1)
	require.Equal(t, "modified", string(result.Records[0].Kind))
}

func TestHandleUnknownMethod(t *testing.T) {
	d := NewDispatcher()
	defer d.Close()

	resp := d.Handle(Request{JSONRPC: Version, Method: "bogus"})
	require.NotNil(t, resp.Error)
	require.Equal(t, CodeMethodNotFound, resp.Error.Code)
}

func TestHandleHistoryIsAnalysisError(t *testing.T) {
	d := NewDispatcher()
	defer d.Close()

	params, err := json.Marshal(HistoryParams{SymbolName: "foo"})
	require.NoError(t, err)

	resp := d.Handle(Request{JSONRPC: Version, Method: MethodHistory, Params: params})
	require.NotNil(t, resp.Error)
	require.Equal(t, CodeAnalysisError, resp.Error.Code)
}
