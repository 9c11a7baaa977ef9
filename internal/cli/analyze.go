package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/semantic-delta/internal/semantic/extract"
)

var analyzeSnapshotID int64

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Extract symbols and references from a single source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		ext := strings.TrimPrefix(filepath.Ext(path), ".")

		e := extract.NewExtractor()
		defer e.Close()

		symbols, references, err := e.Extract(content, ext, analyzeSnapshotID, path)
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", path, err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"symbols":    symbols,
			"references": references,
		})
	},
}

func init() {
	analyzeCmd.Flags().Int64Var(&analyzeSnapshotID, "snapshot-id", 1, "snapshot ID to stamp onto extracted symbols")
}
