package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/semantic-delta/internal/semantic/extract"
	"github.com/mvp-joe/semantic-delta/internal/semantic/model"
)

var diffCmd = &cobra.Command{
	Use:   "diff [base-file] [target-file]",
	Short: "Extract symbols from two versions of a file and report what changed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		basePath, targetPath := args[0], args[1]

		baseSymbols, err := analyzeFile(basePath, 1)
		if err != nil {
			return err
		}
		targetSymbols, err := analyzeFile(targetPath, 2)
		if err != nil {
			return err
		}

		fromID := int64(1)
		deltas := extract.Diff(baseSymbols, targetSymbols, &fromID, 2)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(deltas)
	},
}

func analyzeFile(path string, snapshotID int64) ([]model.Symbol, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	e := extract.NewExtractor()
	defer e.Close()

	symbols, _, err := e.Extract(content, ext, snapshotID, path)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", path, err)
	}
	return symbols, nil
}
