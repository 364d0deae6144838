package graphio

import (
	"fmt"
	"io"
	"os"

	"github.com/mlenz/cellgraph/pkg/model"
)

// ReadJSON decodes a cell-list graph from r into a model.
//
// The input may use any shape accepted by [model.FromJSON]. A nil reg
// hydrates with the built-in "node" and "edge" types. ReadJSON returns
// the same validation errors as [model.FromJSON]: a record with a
// missing or unregistered type, a duplicate cell ID, or a dangling
// parent reference stops the import. The returned model is independent
// of r and can be modified safely after ReadJSON returns. ReadJSON does
// not close r.
func ReadJSON(r io.Reader, reg *model.Registry) (*model.Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return model.FromJSON(data, reg)
}

// ImportJSON reads a JSON file at path and returns the decoded model.
// It returns the same validation errors as [ReadJSON]; open failures are
// wrapped with the file path for context.
func ImportJSON(path string, reg *model.Registry) (*model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	m, err := ReadJSON(f, reg)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return m, nil
}
