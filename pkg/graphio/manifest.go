package graphio

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mlenz/cellgraph/pkg/model"
)

// manifest mirrors the TOML authoring format: repeated [[node]] and
// [[edge]] tables.
type manifest struct {
	Nodes []manifestNode `toml:"node"`
	Edges []manifestEdge `toml:"edge"`
}

type manifestNode struct {
	ID     string         `toml:"id"`
	Type   string         `toml:"type"`
	X      float64        `toml:"x"`
	Y      float64        `toml:"y"`
	Width  float64        `toml:"width"`
	Height float64        `toml:"height"`
	Z      *int           `toml:"z"`
	Parent string         `toml:"parent"`
	Meta   map[string]any `toml:"meta"`
}

type manifestEdge struct {
	ID         string         `toml:"id"`
	Type       string         `toml:"type"`
	Source     string         `toml:"source"`
	Target     string         `toml:"target"`
	SourcePort string         `toml:"source_port"`
	TargetPort string         `toml:"target_port"`
	Meta       map[string]any `toml:"meta"`
}

// ReadTOML decodes a TOML graph manifest from r into a model.
//
// Every node needs an id; edges reference node IDs in their source and
// target fields. An edge naming an undeclared node, a duplicate node ID,
// or a node with an undeclared parent is an error.
func ReadTOML(r io.Reader) (*model.Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var man manifest
	if err := toml.Unmarshal(data, &man); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return buildModel(man)
}

// ImportTOML reads a TOML manifest file at path and returns the decoded
// model. See [ReadTOML].
func ImportTOML(path string) (*model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	m, err := ReadTOML(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return m, nil
}

func buildModel(man manifest) (*model.Model, error) {
	nodes := make(map[string]*model.Node, len(man.Nodes))
	cells := make([]model.Cell, 0, len(man.Nodes)+len(man.Edges))

	for i, mn := range man.Nodes {
		if mn.ID == "" {
			return nil, fmt.Errorf("node %d: missing id", i)
		}
		if _, dup := nodes[mn.ID]; dup {
			return nil, fmt.Errorf("node %q: duplicate id", mn.ID)
		}
		n := model.NewNode(model.NodeOptions{
			ID:     mn.ID,
			Type:   mn.Type,
			X:      mn.X,
			Y:      mn.Y,
			Width:  mn.Width,
			Height: mn.Height,
			ZIndex: mn.Z,
			Meta:   model.Metadata(mn.Meta),
		})
		nodes[mn.ID] = n
		cells = append(cells, n)
	}

	for _, mn := range man.Nodes {
		if mn.Parent == "" {
			continue
		}
		parent, ok := nodes[mn.Parent]
		if !ok {
			return nil, fmt.Errorf("node %q: unknown parent %q", mn.ID, mn.Parent)
		}
		if err := parent.Embed(nodes[mn.ID]); err != nil {
			return nil, fmt.Errorf("node %q: %w", mn.ID, err)
		}
	}

	for i, me := range man.Edges {
		if _, ok := nodes[me.Source]; !ok {
			return nil, fmt.Errorf("edge %d: unknown source %q", i, me.Source)
		}
		if _, ok := nodes[me.Target]; !ok {
			return nil, fmt.Errorf("edge %d: unknown target %q", i, me.Target)
		}
		cells = append(cells, model.NewEdge(model.EdgeOptions{
			ID:     me.ID,
			Type:   me.Type,
			Source: model.Terminal{CellID: me.Source, Port: me.SourcePort},
			Target: model.Terminal{CellID: me.Target, Port: me.TargetPort},
			Meta:   model.Metadata(me.Meta),
		}))
	}

	return model.New(cells...), nil
}
