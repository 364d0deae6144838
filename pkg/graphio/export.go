package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mlenz/cellgraph/pkg/model"
)

// WriteJSON encodes a model as the cell-list encoding and writes it to w.
// The output is indented and can be re-imported with [ReadJSON] for
// round-trip processing.
func WriteJSON(m *model.Model, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(model.CellList{Cells: m.ToRecords()}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a model to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(m *model.Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(m, f)
}
