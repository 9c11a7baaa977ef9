package rpc

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServeLoopRoundTripsAnalyzeRequest(t *testing.T) {
	params, err := json.Marshal(AnalyzeParams{Content: "package sample\n\nfunc A() {}\n", Extension: "go"})
	require.NoError(t, err)

	reqLine, err := json.Marshal(Request{JSONRPC: Version, Method: MethodAnalyze, Params: params})
	require.NoError(t, err)

	in := strings.NewReader(string(reqLine) + "\n")
	var out bytes.Buffer

	d := NewDispatcher()
	defer d.Close()
	s := NewServer(d, in, &out)

	require.NoError(t, s.serveLoop())

	var resp Response
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp))
	require.Nil(t, resp.Error)
}

func TestServeLoopReturnsParseErrorForMalformedLine(t *testing.T) {
	in := strings.NewReader("not json\n")
	var out bytes.Buffer

	d := NewDispatcher()
	defer d.Close()
	s := NewServer(d, in, &out)

	require.NoError(t, s.serveLoop())

	var resp Response
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp))
	require.NotNil(t, resp.Error)
	require.Equal(t, CodeParseError, resp.Error.Code)
}
