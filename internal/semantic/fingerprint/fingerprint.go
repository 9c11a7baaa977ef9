// Package fingerprint computes a structural hash of a tree-sitter node that
// ignores variable names and literal values, so that two blocks of code
// that differ only cosmetically (renamed identifiers, changed constants)
// hash identically.
package fingerprint

import (
	"encoding/hex"

	sitter "github.com/tree-sitter/go-tree-sitter"
	"lukechampine.com/blake3"
)

// Compute walks node's subtree in document order and returns the hex-encoded
// BLAKE3 digest of its structure. Anonymous nodes (keywords, punctuation,
// operators) contribute their kind directly, since they define the node's
// shape. Named identifier and literal nodes are normalized to a fixed
// placeholder so that renames and constant edits do not change the hash.
// Comments are skipped entirely.
func Compute(node *sitter.Node, source []byte) string {
	h := blake3.New(32, nil)
	traverse(node, h)
	return hex.EncodeToString(h.Sum(nil))
}

func traverse(node *sitter.Node, h *blake3.Hasher) {
	if node == nil {
		return
	}

	kind := node.Kind()

	if !node.IsNamed() {
		h.Write([]byte(kind))
	} else {
		switch kind {
		case "identifier", "field_identifier", "type_identifier":
			h.Write([]byte("|ID|"))
		case "string_literal", "integer_literal", "float_literal", "boolean_literal":
			h.Write([]byte("|LIT|"))
		case "comment":
			// skip: comments never affect structural equivalence
			return
		default:
			h.Write([]byte(kind))
		}
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		traverse(node.Child(uint(i)), h)
	}
}
