package extract

import "github.com/mvp-joe/semantic-delta/internal/semantic/model"

// Diff compares the symbols of two snapshots and returns the deltas
// between them.
//
// Symbols present in both sets, under the same name, with a changed
// structural hash become Modified. Symbols absent from prev become Added.
// Once every current symbol is matched, any prev symbol left unmatched is
// checked against the Added deltas by structural hash: the first Added
// delta with a matching hash is promoted to Renamed (its symbol_name
// becomes the old name, new_name the name it was added under); any
// remaining unmatched prev symbol becomes Deleted.
func Diff(prev, curr []model.Symbol, fromSnapshotID *int64, toSnapshotID int64) []model.Delta {
	deltas := make([]model.Delta, 0, len(curr))

	prevByName := make(map[string]*model.Symbol, len(prev))
	for i := range prev {
		prevByName[prev[i].Name] = &prev[i]
	}

	matchedPrev := make(map[string]bool, len(curr))

	for _, c := range curr {
		p, ok := prevByName[c.Name]
		if ok {
			matchedPrev[c.Name] = true
			if p.StructuralHash != c.StructuralHash {
				deltas = append(deltas, model.Delta{
					FromSnapshotID: fromSnapshotID,
					ToSnapshotID:   toSnapshotID,
					SymbolName:     c.Name,
					Kind:           model.DeltaModified,
					StructuralHash: c.StructuralHash,
				})
			}
			continue
		}

		deltas = append(deltas, model.Delta{
			FromSnapshotID: fromSnapshotID,
			ToSnapshotID:   toSnapshotID,
			SymbolName:     c.Name,
			Kind:           model.DeltaAdded,
			StructuralHash: c.StructuralHash,
		})
	}

	for i := range prev {
		p := prev[i]
		if matchedPrev[p.Name] {
			continue
		}

		foundRename := false
		for j := range deltas {
			if deltas[j].Kind == model.DeltaAdded && deltas[j].StructuralHash == p.StructuralHash {
				deltas[j].Kind = model.DeltaRenamed
				deltas[j].NewName = deltas[j].SymbolName
				deltas[j].SymbolName = p.Name
				foundRename = true
				break
			}
		}

		if !foundRename {
			deltas = append(deltas, model.Delta{
				FromSnapshotID: fromSnapshotID,
				ToSnapshotID:   toSnapshotID,
				SymbolName:     p.Name,
				Kind:           model.DeltaDeleted,
				StructuralHash: p.StructuralHash,
			})
		}
	}

	return deltas
}
