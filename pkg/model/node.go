package model

import "github.com/mlenz/cellgraph/pkg/geometry"

// Node is a cell with position and size. Its geometry exists for
// bounding-box queries; the model imposes no invariant on it beyond what
// the caller provides.
type Node struct {
	cellBase
	position geometry.Point
	size     geometry.Size
}

// NodeOptions configures [NewNode]. The zero value is valid: a missing ID
// is replaced by a generated UUID, a missing Type defaults to "node", and
// a nil ZIndex is assigned by the model on insertion.
type NodeOptions struct {
	ID     string
	Type   string
	X      float64
	Y      float64
	Width  float64
	Height float64
	ZIndex *int
	Meta   Metadata
}

// NewNode constructs a detached node.
func NewNode(opts NodeOptions) *Node {
	return &Node{
		cellBase: newCellBase(opts.ID, opts.Type, TypeNode, opts.ZIndex, opts.Meta),
		position: geometry.Point{X: opts.X, Y: opts.Y},
		size:     geometry.Size{Width: opts.Width, Height: opts.Height},
	}
}

// IsNode reports true.
func (n *Node) IsNode() bool { return true }

// IsEdge reports false.
func (n *Node) IsEdge() bool { return false }

// Position returns the node's top-left corner.
func (n *Node) Position() geometry.Point { return n.position }

// SetPosition moves the node's top-left corner.
func (n *Node) SetPosition(p geometry.Point) { n.position = p }

// Size returns the node's dimensions.
func (n *Node) Size() geometry.Size { return n.size }

// SetSize changes the node's dimensions.
func (n *Node) SetSize(s geometry.Size) { n.size = s }

// Translate moves the node by (dx, dy).
func (n *Node) Translate(dx, dy float64) {
	n.position = n.position.Translate(dx, dy)
}

// BBox returns the node's bounding rectangle.
func (n *Node) BBox() geometry.Rectangle {
	return geometry.NewRectangle(n.position, n.size)
}

// Embed makes child a direct child of the node.
func (n *Node) Embed(child Cell) error { return embed(n, child) }

// Unembed detaches child from the node.
func (n *Node) Unembed(child Cell) { unembed(n, child) }

// ToRecord reduces the node to its serialization record.
func (n *Node) ToRecord() Record {
	rec := Record{
		Type: n.typ,
		ID:   n.id,
		X:    ptr(n.position.X),
		Y:    ptr(n.position.Y),
		W:    ptr(n.size.Width),
		H:    ptr(n.size.Height),
		Meta: n.meta,
	}
	if n.hasZ {
		rec.ZIndex = ptr(n.zIndex)
	}
	if n.parent != nil {
		rec.Parent = n.parent.ID()
	}
	for _, c := range n.children {
		rec.Children = append(rec.Children, c.ID())
	}
	return rec
}

func (n *Node) clone() Cell {
	out := &Node{
		cellBase: cellBase{
			typ:    n.typ,
			zIndex: n.zIndex,
			hasZ:   n.hasZ,
			meta:   n.meta.clone(),
		},
		position: n.position,
		size:     n.size,
	}
	out.id = newID()
	return out
}
