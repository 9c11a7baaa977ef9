package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/semantic-delta/internal/semantic/model"
)

func mockSymbol(name, hash string) model.Symbol {
	return model.Symbol{Name: name, StructuralHash: hash, Kind: "function"}
}

func TestDiffModified(t *testing.T) {
	prev := []model.Symbol{mockSymbol("foo", "hash1")}
	curr := []model.Symbol{mockSymbol("foo", "hash2")}

	deltas := Diff(prev, curr, nil, 2)

	require.Len(t, deltas, 1)
	require.Equal(t, model.DeltaModified, deltas[0].Kind)
	require.Equal(t, "foo", deltas[0].SymbolName)
	require.Equal(t, "hash2", deltas[0].StructuralHash)
}

func TestDiffUnchangedProducesNoDelta(t *testing.T) {
	prev := []model.Symbol{mockSymbol("foo", "hash1")}
	curr := []model.Symbol{mockSymbol("foo", "hash1")}

	deltas := Diff(prev, curr, nil, 2)

	require.Empty(t, deltas)
}

func TestDiffRenamed(t *testing.T) {
	prev := []model.Symbol{mockSymbol("old_name", "samehash")}
	curr := []model.Symbol{mockSymbol("new_name", "samehash")}

	deltas := Diff(prev, curr, nil, 2)

	require.Len(t, deltas, 1)
	require.Equal(t, model.DeltaRenamed, deltas[0].Kind)
	require.Equal(t, "old_name", deltas[0].SymbolName)
	require.Equal(t, "new_name", deltas[0].NewName)
}

func TestDiffAddedAndDeleted(t *testing.T) {
	prev := []model.Symbol{mockSymbol("gone", "hashA")}
	curr := []model.Symbol{mockSymbol("fresh", "hashB")}

	deltas := Diff(prev, curr, nil, 2)

	require.Len(t, deltas, 2)

	var kinds []model.DeltaKind
	for _, d := range deltas {
		kinds = append(kinds, d.Kind)
	}
	require.Contains(t, kinds, model.DeltaAdded)
	require.Contains(t, kinds, model.DeltaDeleted)
}

func TestDiffRenamePrefersFirstMatchingHash(t *testing.T) {
	prev := []model.Symbol{
		mockSymbol("alpha", "samehash"),
		mockSymbol("beta", "samehash"),
	}
	curr := []model.Symbol{
		mockSymbol("gamma", "samehash"),
	}

	deltas := Diff(prev, curr, nil, 2)

	require.Len(t, deltas, 2)
	renamed := 0
	deleted := 0
	for _, d := range deltas {
		switch d.Kind {
		case model.DeltaRenamed:
			renamed++
			require.Equal(t, "gamma", d.NewName)
		case model.DeltaDeleted:
			deleted++
		}
	}
	require.Equal(t, 1, renamed)
	require.Equal(t, 1, deleted)
}
