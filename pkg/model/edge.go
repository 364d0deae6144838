package model

import "github.com/mlenz/cellgraph/pkg/geometry"

// Terminal is one endpoint of an edge: either a reference to another cell
// (node or edge) with optional connection metadata, or a fixed point.
// The zero value is a fixed point at the origin.
//
// Presence of a cell reference is determined by CellID being non-empty,
// never by truthiness of a resolved value.
type Terminal struct {
	CellID string
	Port   string
	Anchor string
	Point  geometry.Point
}

// PointTerminal builds a fixed-point terminal.
func PointTerminal(x, y float64) Terminal {
	return Terminal{Point: geometry.Point{X: x, Y: y}}
}

// CellTerminal builds a terminal referencing the cell with the given ID.
func CellTerminal(id string) Terminal { return Terminal{CellID: id} }

// IsPoint reports whether the terminal is a fixed point rather than a
// cell reference.
func (t Terminal) IsPoint() bool { return t.CellID == "" }

// Edge is a cell connecting a source terminal to a target terminal.
// Either terminal may reference a node, reference another edge, or be a
// fixed point; self-loops and parallel edges are allowed.
type Edge struct {
	cellBase
	source Terminal
	target Terminal
}

// EdgeOptions configures [NewEdge]. A missing ID is replaced by a
// generated UUID and a missing Type defaults to "edge".
type EdgeOptions struct {
	ID     string
	Type   string
	Source Terminal
	Target Terminal
	ZIndex *int
	Meta   Metadata
}

// NewEdge constructs a detached edge.
func NewEdge(opts EdgeOptions) *Edge {
	return &Edge{
		cellBase: newCellBase(opts.ID, opts.Type, TypeEdge, opts.ZIndex, opts.Meta),
		source:   opts.Source,
		target:   opts.Target,
	}
}

// IsNode reports false.
func (e *Edge) IsNode() bool { return false }

// IsEdge reports true.
func (e *Edge) IsEdge() bool { return true }

// Source returns the source terminal.
func (e *Edge) Source() Terminal { return e.source }

// Target returns the target terminal.
func (e *Edge) Target() Terminal { return e.target }

// SetSource replaces the source terminal.
func (e *Edge) SetSource(t Terminal) { e.source = t }

// SetTarget replaces the target terminal.
func (e *Edge) SetTarget(t Terminal) { e.target = t }

// SourceCell resolves the source terminal against the owning model.
// It returns false when the terminal is a fixed point, the edge is
// detached, or the referenced cell no longer exists.
func (e *Edge) SourceCell() (Cell, bool) { return e.resolve(e.source) }

// TargetCell resolves the target terminal against the owning model.
// It returns false when the terminal is a fixed point, the edge is
// detached, or the referenced cell no longer exists.
func (e *Edge) TargetCell() (Cell, bool) { return e.resolve(e.target) }

func (e *Edge) resolve(t Terminal) (Cell, bool) {
	if t.IsPoint() || e.model == nil {
		return nil, false
	}
	return e.model.GetCell(t.CellID)
}

// Embed makes child a direct child of the edge.
func (e *Edge) Embed(child Cell) error { return embed(e, child) }

// Unembed detaches child from the edge.
func (e *Edge) Unembed(child Cell) { unembed(e, child) }

// ToRecord reduces the edge to its serialization record.
func (e *Edge) ToRecord() Record {
	rec := Record{
		Type:   e.typ,
		ID:     e.id,
		Source: terminalRecord(e.source),
		Target: terminalRecord(e.target),
		Meta:   e.meta,
	}
	if e.hasZ {
		rec.ZIndex = ptr(e.zIndex)
	}
	if e.parent != nil {
		rec.Parent = e.parent.ID()
	}
	for _, c := range e.children {
		rec.Children = append(rec.Children, c.ID())
	}
	return rec
}

func (e *Edge) clone() Cell {
	out := &Edge{
		cellBase: cellBase{
			typ:    e.typ,
			zIndex: e.zIndex,
			hasZ:   e.hasZ,
			meta:   e.meta.clone(),
		},
		source: e.source,
		target: e.target,
	}
	out.id = newID()
	return out
}
