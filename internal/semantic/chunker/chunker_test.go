package chunker

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkSmallGoFileIsOneChunk(t *testing.T) {
	content := []byte("package sample\n\nfunc A() {}\n")

	chunks := Chunk(content, "go")

	require.Len(t, chunks, 1)
	require.Equal(t, content, chunks[0].Content)
	require.NotEmpty(t, chunks[0].Hash)
}

func TestChunkReassemblesOriginalContent(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 2000; i++ {
		sb.WriteString("func F")
		sb.WriteString(strings.Repeat("x", 5))
		sb.WriteString("() { return }\n")
	}
	content := []byte(sb.String())

	chunks := Chunk(content, "unknown-extension")

	var reassembled bytes.Buffer
	for _, c := range chunks {
		reassembled.Write(c.Content)
	}
	require.Equal(t, content, reassembled.Bytes())
}

func TestChunkUnknownExtensionFallsBackToCDC(t *testing.T) {
	content := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 4000)

	chunks := Chunk(content, "bin")

	require.NotEmpty(t, chunks)
	var total int
	for _, c := range chunks {
		total += len(c.Content)
	}
	require.Equal(t, len(content), total)
}

func TestChunkEmptyContent(t *testing.T) {
	chunks := Chunk([]byte{}, "go")
	require.Empty(t, chunks)
}
