package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/require"
	sitter "github.com/tree-sitter/go-tree-sitter"
	golang "github.com/tree-sitter/tree-sitter-go/bindings/go"
)

func parseGo(t *testing.T, source string) (*sitter.Node, []byte) {
	t.Helper()
	lang := sitter.NewLanguage(golang.Language())
	parser := sitter.NewParser()
	defer parser.Close()
	require.NoError(t, parser.SetLanguage(lang))

	src := []byte(source)
	tree := parser.Parse(src, nil)
	require.NotNil(t, tree)
	t.Cleanup(tree.Close)

	return tree.RootNode(), src
}

func TestComputeIgnoresIdentifierRenames(t *testing.T) {
	a, srcA := parseGo(t, "package p\nfunc Add(x, y int) int { return x + y }\n")
	b, srcB := parseGo(t, "package p\nfunc Sum(a, b int) int { return a + b }\n")

	require.Equal(t, Compute(a, srcA), Compute(b, srcB))
}

func TestComputeIgnoresLiteralChanges(t *testing.T) {
	a, srcA := parseGo(t, "package p\nfunc Limit() int { return 10 }\n")
	b, srcB := parseGo(t, "package p\nfunc Limit() int { return 20 }\n")

	require.Equal(t, Compute(a, srcA), Compute(b, srcB))
}

func TestComputeDiffersOnStructuralChange(t *testing.T) {
	a, srcA := parseGo(t, "package p\nfunc F() int { return 1 }\n")
	b, srcB := parseGo(t, "package p\nfunc F() int { if true { return 1 }; return 1 }\n")

	require.NotEqual(t, Compute(a, srcA), Compute(b, srcB))
}
