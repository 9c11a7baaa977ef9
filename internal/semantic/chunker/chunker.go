// Package chunker splits file content into content-addressed chunks using a
// hybrid strategy: tree-sitter finds the language's natural top-level
// boundaries first, and content-defined chunking (FastCDC) fills in where
// no natural boundary exists or a single top-level node is too large on
// its own.
package chunker

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/kalbasit/fastcdc"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mvp-joe/semantic-delta/internal/semantic/grammar"
	"github.com/mvp-joe/semantic-delta/internal/semantic/model"
)

// Chunk size bounds, aligned with the FastCDC defaults used throughout the
// pipeline so that semantic and pure-CDC chunks stay comparably sized.
const (
	MinChunkSize uint32 = 4096
	AvgChunkSize uint32 = 16384
	MaxChunkSize uint32 = 65536
)

// span is an offset/length slice of content, kept distinct from model.Chunk
// until a final content-hash is computed.
type span struct {
	offset int
	length int
}

// Chunk splits content into chunks. If extension names a registered
// language, its top-level tree-sitter nodes anchor the chunk boundaries;
// otherwise, and whenever parsing fails, content is split with pure FastCDC.
func Chunk(content []byte, extension string) []model.Chunk {
	if len(content) == 0 {
		return nil
	}

	if info, ok := grammar.Lookup(extension); ok {
		parser := sitter.NewParser()
		defer parser.Close()
		if err := parser.SetLanguage(info.Language); err == nil {
			tree := parser.Parse(content, nil)
			if tree != nil {
				defer tree.Close()
				return finalize(chunkSemantic(content, tree.RootNode()), content)
			}
		}
	}

	return finalize(chunkFastCDCOffset(content, 0), content)
}

func chunkSemantic(content []byte, root *sitter.Node) []span {
	childCount := int(root.ChildCount())
	if childCount == 0 {
		return chunkRangeSmart(content, 0, len(content))
	}

	var chunks []span
	chunkStart := 0

	for i := 0; i < childCount; i++ {
		node := root.Child(uint(i))
		nodeStart := int(node.StartByte())
		nodeEnd := int(node.EndByte())

		currentLenWithNode := nodeEnd - chunkStart

		if currentLenWithNode > int(MaxChunkSize) {
			preNodeLen := nodeStart - chunkStart
			if preNodeLen >= int(MinChunkSize) {
				chunks = append(chunks, span{offset: chunkStart, length: preNodeLen})
				chunkStart = nodeStart
			}

			nodeLen := nodeEnd - chunkStart
			if nodeLen > int(MaxChunkSize) {
				chunks = append(chunks, chunkFastCDCOffset(content[chunkStart:nodeEnd], chunkStart)...)
				chunkStart = nodeEnd
			}
		}

		currentLen := nodeEnd - chunkStart
		if currentLen >= int(AvgChunkSize) {
			chunks = append(chunks, span{offset: chunkStart, length: currentLen})
			chunkStart = nodeEnd
		}
	}

	if chunkStart < len(content) {
		tailLen := len(content) - chunkStart
		if tailLen > int(MaxChunkSize) {
			chunks = append(chunks, chunkFastCDCOffset(content[chunkStart:], chunkStart)...)
		} else {
			chunks = append(chunks, span{offset: chunkStart, length: tailLen})
		}
	}

	return mergeTinyChunks(chunks)
}

func chunkRangeSmart(content []byte, start, length int) []span {
	if length > int(MaxChunkSize) {
		return chunkFastCDCOffset(content[start:start+length], start)
	}
	return []span{{offset: start, length: length}}
}

func chunkFastCDCOffset(content []byte, globalOffset int) []span {
	if len(content) == 0 {
		return nil
	}

	core, err := fastcdc.NewChunkerCore(
		fastcdc.WithMinSize(MinChunkSize),
		fastcdc.WithTargetSize(AvgChunkSize),
		fastcdc.WithMaxSize(MaxChunkSize),
	)
	if err != nil {
		// Degenerate config is a programming error, not a data error; fall
		// back to returning the whole block as one chunk.
		return []span{{offset: globalOffset, length: len(content)}}
	}

	var chunks []span
	pos := 0
	for pos < len(content) {
		boundary, _, found := core.FindBoundary(content[pos:])
		if !found {
			chunks = append(chunks, span{offset: globalOffset + pos, length: len(content) - pos})
			break
		}
		chunks = append(chunks, span{offset: globalOffset + pos, length: boundary})
		pos += boundary
	}

	return chunks
}

func mergeTinyChunks(input []span) []span {
	if len(input) == 0 {
		return input
	}

	output := make([]span, 0, len(input))
	current := input[0]

	for _, next := range input[1:] {
		if current.length < int(MinChunkSize) {
			current.length += next.length
		} else {
			output = append(output, current)
			current = next
		}
	}
	output = append(output, current)

	if len(output) > 1 {
		last := output[len(output)-1]
		if last.length < int(MinChunkSize) {
			prev := output[len(output)-2]
			if prev.length+last.length <= int(MaxChunkSize)+int(MinChunkSize) {
				output = output[:len(output)-2]
				prev.length += last.length
				output = append(output, prev)
			}
		}
	}

	return output
}

func finalize(spans []span, content []byte) []model.Chunk {
	chunks := make([]model.Chunk, 0, len(spans))
	for _, s := range spans {
		data := content[s.offset : s.offset+s.length]
		sum := sha256.Sum256(data)
		chunks = append(chunks, model.Chunk{
			Hash:    hex.EncodeToString(sum[:]),
			Content: data,
			Kind:    "content",
		})
	}
	return chunks
}
