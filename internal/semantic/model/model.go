// Package model defines the data types shared across the semantic analysis
// pipeline: symbols extracted from source, references to them, diff records
// describing change between two snapshots, and content-addressed chunks.
package model

// Symbol is a single named construct extracted from a source file: a
// function, type, struct, class, module, or similar top-level or nested
// declaration recognized by the language's capture query.
type Symbol struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Kind           string `json:"kind"`
	Scope          string `json:"scope,omitempty"`
	SnapshotID     int64  `json:"snapshot_id"`
	ChunkHash      string `json:"chunk_hash"`
	StructuralHash string `json:"structural_hash"`
	StartLine      int    `json:"start_line"`
	EndLine        int    `json:"end_line"`
	StartByte      int    `json:"start_byte"`
	EndByte        int    `json:"end_byte"`
	ParentID       *int64 `json:"parent_id,omitempty"`
}

// Reference records an identifier use (a call expression) found while
// extracting symbols. References are not diffed; they describe the call
// graph edges visible within a single file.
type Reference struct {
	SymbolName string `json:"symbol_name"`
	SnapshotID int64  `json:"snapshot_id"`
	StartLine  int    `json:"start_line"`
	StartByte  int    `json:"start_byte"`
}

// DeltaKind classifies how a symbol changed between two snapshots.
type DeltaKind string

const (
	DeltaAdded    DeltaKind = "added"
	DeltaModified DeltaKind = "modified"
	DeltaDeleted  DeltaKind = "deleted"
	DeltaRenamed  DeltaKind = "renamed"
)

// Delta describes one symbol-level change produced by comparing two symbol
// sets. For Renamed deltas, SymbolName holds the old name and NewName the
// new one; for every other kind NewName is empty.
type Delta struct {
	ID             int64     `json:"id"`
	ProjectID      string    `json:"project_id,omitempty"`
	FromSnapshotID *int64    `json:"from_snapshot_id,omitempty"`
	ToSnapshotID   int64     `json:"to_snapshot_id"`
	SymbolName     string    `json:"symbol_name"`
	NewName        string    `json:"new_name,omitempty"`
	Kind           DeltaKind `json:"kind"`
	StructuralHash string    `json:"structural_hash"`
}

// Chunk is a content-addressed slice of a file produced by the hybrid
// semantic/CDC chunker.
type Chunk struct {
	Hash    string `json:"hash"`
	Content []byte `json:"content"`
	Kind    string `json:"kind"`
}
