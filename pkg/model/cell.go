package model

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrCellOwned is returned by [Model.AddCell] when the cell already
	// belongs to a different model. A cell must be removed from its
	// current model before it can be added to another.
	ErrCellOwned = errors.New("cell already belongs to another model")

	// ErrCyclicEmbedding is returned by [Cell] Embed when the child is an
	// ancestor of the prospective parent. Containment must stay a forest.
	ErrCyclicEmbedding = errors.New("embedding would create a containment cycle")

	// ErrMissingType is returned by [Registry.Build] when a record has no
	// type tag.
	ErrMissingType = errors.New("cell record has no type")

	// ErrUnknownType is returned by [Registry.Build] when no constructor
	// is registered for a record's type tag.
	ErrUnknownType = errors.New("unknown cell type")
)

// Built-in type tags used when constructing cells without an explicit type.
const (
	TypeNode = "node"
	TypeEdge = "edge"
)

// Metadata stores open-ended user data attached to a cell. Structural
// state (identity, geometry, terminals, containment) lives in typed
// fields; Metadata is reserved for data the model itself never interprets.
type Metadata map[string]any

// clone returns a shallow copy of the metadata map, or nil for nil input.
func (m Metadata) clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Cell is a graph element: a [Node] or an [Edge]. Cells own their
// identity, z-order, containment links, and user metadata; everything
// else is variant-specific.
//
// A cell is constructed detached, becomes live when added to a [Model]
// (directly or as a descendant of an added cell), and is detached again
// when removed. A cell belongs to at most one model at a time.
type Cell interface {
	// ID returns the cell's identifier, unique within a model and
	// immutable after construction.
	ID() string

	// Type returns the registry type tag used for serialization.
	Type() string

	// IsNode reports whether the cell is a Node.
	IsNode() bool

	// IsEdge reports whether the cell is an Edge.
	IsEdge() bool

	// ZIndex returns the cell's z-order. The value is meaningful only
	// when HasZIndex reports true; unset z-indices are assigned by the
	// model on insertion.
	ZIndex() int

	// HasZIndex reports whether a z-index has been assigned.
	HasZIndex() bool

	// SetZIndex assigns the z-order used for paint order and first/last
	// queries.
	SetZIndex(z int)

	// Parent returns the containing cell, or nil for a root cell.
	Parent() Cell

	// Children returns the directly contained cells in embedding order.
	// The returned slice must not be modified.
	Children() []Cell

	// Embed makes child a direct child of this cell, detaching it from
	// any previous parent. Returns ErrCyclicEmbedding if child is this
	// cell or one of its ancestors.
	Embed(child Cell) error

	// Unembed detaches child from this cell. Unknown children are
	// ignored.
	Unembed(child Cell)

	// Model returns the owning model, or nil while the cell is detached.
	Model() *Model

	// Metadata returns the cell's user metadata map, which may be nil.
	Metadata() Metadata

	// SetMeta stores a user metadata value, allocating the map on first
	// use.
	SetMeta(key string, value any)

	// ToRecord reduces the cell to its plain serialization record.
	ToRecord() Record

	setModel(m *Model)
	appendChild(c Cell)
	removeChild(c Cell)
	setParent(p Cell)

	// clone returns a detached copy with a fresh ID and no containment
	// links. Terminal and parent remapping is done by CloneCells.
	clone() Cell
}

// cellBase carries the state shared by both cell variants. It is embedded
// by Node and Edge; the interface methods that need the concrete cell
// (Embed) are implemented on the variants.
type cellBase struct {
	id       string
	typ      string
	zIndex   int
	hasZ     bool
	parent   Cell
	children []Cell
	model    *Model
	meta     Metadata
}

// newID generates a fresh cell identifier.
func newID() string { return uuid.NewString() }

func newCellBase(id, typ, defaultType string, zIndex *int, meta Metadata) cellBase {
	if id == "" {
		id = newID()
	}
	if typ == "" {
		typ = defaultType
	}
	b := cellBase{id: id, typ: typ, meta: meta}
	if zIndex != nil {
		b.zIndex = *zIndex
		b.hasZ = true
	}
	return b
}

func (b *cellBase) ID() string        { return b.id }
func (b *cellBase) Type() string      { return b.typ }
func (b *cellBase) ZIndex() int       { return b.zIndex }
func (b *cellBase) HasZIndex() bool   { return b.hasZ }
func (b *cellBase) Parent() Cell      { return b.parent }
func (b *cellBase) Children() []Cell  { return b.children }
func (b *cellBase) Model() *Model     { return b.model }
func (b *cellBase) Metadata() Metadata { return b.meta }

func (b *cellBase) SetZIndex(z int) {
	b.zIndex = z
	b.hasZ = true
}

func (b *cellBase) SetMeta(key string, value any) {
	if b.meta == nil {
		b.meta = Metadata{}
	}
	b.meta[key] = value
}

func (b *cellBase) setModel(m *Model) { b.model = m }
func (b *cellBase) setParent(p Cell)  { b.parent = p }

func (b *cellBase) appendChild(c Cell) { b.children = append(b.children, c) }

func (b *cellBase) removeChild(c Cell) {
	for i, child := range b.children {
		if child == c {
			b.children = append(b.children[:i], b.children[i+1:]...)
			return
		}
	}
}

// embed implements Embed for a concrete cell self.
func embed(self, child Cell) error {
	if child == nil {
		return nil
	}
	for anc := self; anc != nil; anc = anc.Parent() {
		if anc == child {
			return ErrCyclicEmbedding
		}
	}
	if p := child.Parent(); p != nil {
		p.removeChild(child)
	}
	child.setParent(self)
	self.appendChild(child)
	return nil
}

// unembed implements Unembed for a concrete cell self.
func unembed(self, child Cell) {
	if child == nil || child.Parent() != self {
		return
	}
	self.removeChild(child)
	child.setParent(nil)
}

// Descendants returns every cell contained in c's subtree, not including
// c itself, in depth-first embedding order. The walk is an explicit
// worklist to stay safe on adversarially deep containment chains.
func Descendants(c Cell) []Cell {
	var out []Cell
	stack := make([]Cell, 0, len(c.Children()))
	for i := len(c.Children()) - 1; i >= 0; i-- {
		stack = append(stack, c.Children()[i])
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		for i := len(cur.Children()) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children()[i])
		}
	}
	return out
}

// IsAncestor reports whether ancestor appears on c's parent chain.
func IsAncestor(ancestor, c Cell) bool {
	if ancestor == nil || c == nil {
		return false
	}
	for p := c.Parent(); p != nil; p = p.Parent() {
		if p == ancestor {
			return true
		}
	}
	return false
}
