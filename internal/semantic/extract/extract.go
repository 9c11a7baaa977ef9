// Package extract runs a language's capture query against a parsed tree and
// turns the matches into symbols and references.
package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mvp-joe/semantic-delta/internal/intern"
	"github.com/mvp-joe/semantic-delta/internal/sdperr"
	"github.com/mvp-joe/semantic-delta/internal/semantic/fingerprint"
	"github.com/mvp-joe/semantic-delta/internal/semantic/grammar"
	"github.com/mvp-joe/semantic-delta/internal/semantic/model"
)

// Extractor parses source files and extracts their symbols and references.
// It caches the compiled query per extension and the last parsed tree per
// file path, so that repeated calls for the same file reparse
// incrementally instead of from scratch.
//
// An Extractor is not safe for concurrent use; callers that analyze
// multiple files concurrently should use one Extractor per goroutine.
type Extractor struct {
	parser     *sitter.Parser
	queryCache map[string]*sitter.Query
	treeCache  map[string]*sitter.Tree
}

// NewExtractor creates a ready-to-use Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		parser:     sitter.NewParser(),
		queryCache: make(map[string]*sitter.Query),
		treeCache:  make(map[string]*sitter.Tree),
	}
}

// Close releases the underlying tree-sitter parser and cached trees.
func (e *Extractor) Close() {
	for _, t := range e.treeCache {
		t.Close()
	}
	for _, q := range e.queryCache {
		q.Close()
	}
	e.parser.Close()
}

// ClearCache drops all cached trees. Useful when switching projects or
// during heavy maintenance, to bound memory use.
func (e *Extractor) ClearCache() {
	for _, t := range e.treeCache {
		t.Close()
	}
	e.treeCache = make(map[string]*sitter.Tree)
}

// Extract parses content as extension and returns the symbols and
// references captured by that language's query. If the extension is not
// registered, it returns two empty (not nil) slices and no error — an
// unrecognized file simply contributes nothing, it is not a failure.
//
// filePath, when non-empty, keys the tree cache: a second call with the
// same filePath reuses the previous tree as a base for incremental
// reparsing.
func (e *Extractor) Extract(content []byte, extension string, snapshotID int64, filePath string) ([]model.Symbol, []model.Reference, error) {
	info, ok := grammar.Lookup(extension)
	if !ok {
		return []model.Symbol{}, []model.Reference{}, nil
	}

	if err := e.parser.SetLanguage(info.Language); err != nil {
		return nil, nil, sdperr.InternalErrorf("setting language for %q: %v", extension, err)
	}

	query, ok := e.queryCache[extension]
	if !ok {
		q, err := sitter.NewQuery(info.Language, info.Query)
		if err != nil {
			return nil, nil, sdperr.InternalErrorf("query error for %q: %v", extension, err)
		}
		e.queryCache[extension] = q
		query = q
	}

	var oldTree *sitter.Tree
	if filePath != "" {
		oldTree = e.treeCache[filePath]
	}

	tree := e.parser.Parse(content, oldTree)
	if tree == nil {
		return []model.Symbol{}, []model.Reference{}, nil
	}

	if filePath != "" {
		if oldTree != nil {
			oldTree.Close()
		}
		e.treeCache[filePath] = tree
	} else {
		defer tree.Close()
	}

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	names := query.CaptureNames()
	matches := cursor.Matches(query, tree.RootNode(), content)

	var symbols []model.Symbol
	var references []model.Reference

	for match := matches.Next(); match != nil; match = matches.Next() {
		var nameOverride string
		haveOverride := false

		for _, cap := range match.Captures {
			node := cap.Node
			captureName := names[cap.Index]

			if strings.HasSuffix(captureName, ".name") {
				nameOverride = node.Utf8Text(content)
				haveOverride = true
				continue
			}

			if strings.HasPrefix(captureName, "call") {
				references = append(references, model.Reference{
					SymbolName: node.Utf8Text(content),
					SnapshotID: snapshotID,
					StartLine:  int(node.StartPosition().Row),
					StartByte:  int(node.StartByte()),
				})
				continue
			}

			kind := intern.Resolve(intern.Intern(captureName))
			name := "anonymous"
			if haveOverride {
				name = nameOverride
				haveOverride = false
			}

			if name == "anonymous" {
				for i := 0; i < int(node.ChildCount()); i++ {
					child := node.Child(uint(i))
					if strings.Contains(child.Kind(), "identifier") {
						name = child.Utf8Text(content)
						break
					}
				}
			}

			structuralHash := fingerprint.Compute(&node, content)
			scope := getScope(&node, content)

			symbols = append(symbols, model.Symbol{
				Name:           name,
				Kind:           kind,
				Scope:          scope,
				SnapshotID:     snapshotID,
				StructuralHash: structuralHash,
				StartLine:      int(node.StartPosition().Row),
				EndLine:        int(node.EndPosition().Row),
				StartByte:      int(node.StartByte()),
				EndByte:        int(node.EndByte()),
			})
		}
	}

	sortSymbols(symbols)

	if symbols == nil {
		symbols = []model.Symbol{}
	}
	if references == nil {
		references = []model.Reference{}
	}

	return symbols, references, nil
}

// getScope walks node's ancestors, collecting the name of each enclosing
// impl/struct/class/module container, innermost last, joined with "::".
// It returns "" when node has no such enclosing container.
func getScope(node *sitter.Node, source []byte) string {
	var parts []string

	current := node.Parent()
	for current != nil {
		switch current.Kind() {
		case "impl_item", "struct_item", "class_definition", "mod_item":
			for i := 0; i < int(current.ChildCount()); i++ {
				child := current.Child(uint(i))
				if strings.Contains(child.Kind(), "identifier") {
					name := child.Utf8Text(source)
					parts = append(parts, intern.Resolve(intern.Intern(name)))
					break
				}
			}
		}
		current = current.Parent()
	}

	if len(parts) == 0 {
		return ""
	}

	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	return strings.Join(parts, "::")
}

// sortSymbols orders symbols by start byte ascending, then end byte
// descending, so that an enclosing symbol is reported before the symbols
// nested inside it.
func sortSymbols(symbols []model.Symbol) {
	for i := 1; i < len(symbols); i++ {
		for j := i; j > 0 && less(symbols[j], symbols[j-1]); j-- {
			symbols[j], symbols[j-1] = symbols[j-1], symbols[j]
		}
	}
}

func less(a, b model.Symbol) bool {
	if a.StartByte != b.StartByte {
		return a.StartByte < b.StartByte
	}
	return a.EndByte > b.EndByte
}
