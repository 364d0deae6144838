package model

import (
	"sort"

	"github.com/mlenz/cellgraph/pkg/geometry"
)

// Model orchestrates a [Collection] into a graph. It tracks which cells
// are nodes versus edges, answers the graph-shape queries, batches
// mutations into named transactions, and republishes the collection's
// structural events with the richer cell/node/edge vocabulary.
//
// Every cell in the collection is classified as exactly one of node or
// edge; the two membership caches partition the collection's ID set at
// all times.
//
// Model is not safe for concurrent use. All mutations and queries are
// synchronous and run to completion on the calling goroutine; event
// emission order equals mutation order.
type Model struct {
	collection *Collection
	nodes      map[string]struct{}
	edges      map[string]struct{}
	batches    map[string]int
	addings    map[Cell]struct{}
	emitter
}

// New creates an empty model, optionally seeded with cells. Seed cells
// are added through the normal [Model.AddCell] path so that ownership,
// z-indices, and events behave exactly as for later additions.
func New(cells ...Cell) *Model {
	m := &Model{
		collection: NewCollection(),
		nodes:      make(map[string]struct{}),
		edges:      make(map[string]struct{}),
		batches:    make(map[string]int),
		addings:    make(map[Cell]struct{}),
	}
	m.collection.OnEvent(m.onCollectionEvent)
	for _, cell := range cells {
		_ = m.AddCell(cell, Options{})
	}
	return m
}

// OnEvent subscribes h to the model's events and returns a cancel
// function. Handlers observe events in the exact order mutations were
// applied.
func (m *Model) OnEvent(h Handler) func() { return m.on(h) }

// Collection exposes the underlying storage for read access. Mutating it
// directly still keeps the model consistent (the model listens to its
// events), but the Model API is the intended mutation surface.
func (m *Model) Collection() *Collection { return m.collection }

// onCollectionEvent keeps the membership caches in sync and republishes
// collection events in the model vocabulary.
func (m *Model) onCollectionEvent(ev Event) {
	switch ev.Name {
	case EventAdded:
		cell := ev.Cell
		if cell.IsNode() {
			m.nodes[cell.ID()] = struct{}{}
		} else {
			m.edges[cell.ID()] = struct{}{}
		}
		m.notify(Event{Name: EventCellAdded, Cell: cell, Options: ev.Options})
		if cell.IsNode() {
			m.notify(Event{Name: EventNodeAdded, Cell: cell, Options: ev.Options})
		} else {
			m.notify(Event{Name: EventEdgeAdded, Cell: cell, Options: ev.Options})
		}

	case EventRemoved:
		cell := ev.Cell
		delete(m.nodes, cell.ID())
		delete(m.edges, cell.ID())
		cell.setModel(nil)
		// The removed cell's own events fire before the connected-edge
		// cleanup so subscribers see removals in mutation order.
		m.notify(Event{Name: EventCellRemoved, Cell: cell, Options: ev.Options})
		if cell.IsNode() {
			m.notify(Event{Name: EventNodeRemoved, Cell: cell, Options: ev.Options})
		} else {
			m.notify(Event{Name: EventEdgeRemoved, Cell: cell, Options: ev.Options})
		}
		if !ev.Options.Clear {
			if ev.Options.DisconnectEdges {
				m.DisconnectConnectedEdges(cell, ev.Options)
			} else {
				m.RemoveConnectedEdges(cell, ev.Options)
			}
		}

	case EventReseted:
		current := make(map[string]struct{}, len(ev.Cells))
		m.nodes = make(map[string]struct{})
		m.edges = make(map[string]struct{})
		for _, cell := range ev.Cells {
			current[cell.ID()] = struct{}{}
			if cell.IsNode() {
				m.nodes[cell.ID()] = struct{}{}
			} else {
				m.edges[cell.ID()] = struct{}{}
			}
		}
		// The whole graph was replaced together, so departing cells are
		// detached without the per-cell edge cleanup.
		for _, cell := range ev.Previous {
			if _, kept := current[cell.ID()]; !kept {
				cell.setModel(nil)
			}
		}
		m.notify(ev)

	case EventSorted, EventUpdated:
		m.notify(ev)
	}
}

// AddNode adds a node to the model. See [Model.AddCell].
func (m *Model) AddNode(n *Node, opts Options) error { return m.AddCell(n, opts) }

// AddEdge adds an edge to the model. See [Model.AddCell].
func (m *Model) AddEdge(e *Edge, opts Options) error { return m.AddCell(e, opts) }

// AddCell makes cell and its entire descendant subtree live in one
// logical operation, firing one cell:added event per cell in subtree
// order (parent before children).
//
// Adding a cell that is already present, or that is still mid-insertion,
// is a no-op, so AddCell is idempotent. A cell owned by a different model
// is rejected with ErrCellOwned; it must be removed there first.
//
// A cell without a z-index is assigned max(existing)+1 before insertion.
// With opts.Dry the cell is prepared (z-index, recursion) but neither
// stored nor given model ownership.
func (m *Model) AddCell(cell Cell, opts Options) error {
	if cell == nil {
		return nil
	}
	if _, mid := m.addings[cell]; mid {
		return nil
	}
	if m.collection.Has(cell.ID()) {
		return nil
	}
	if owner := cell.Model(); owner != nil && owner != m {
		return ErrCellOwned
	}

	m.addings[cell] = struct{}{}
	defer delete(m.addings, cell)

	if !cell.HasZIndex() {
		cell.SetZIndex(m.maxZIndex() + 1)
	}
	if !opts.Dry {
		cell.setModel(m)
		m.collection.Add(cell, opts)
	}

	for _, child := range cell.Children() {
		if err := m.AddCell(child, opts); err != nil {
			return err
		}
	}
	return nil
}

// AddCells adds the cells inside an "add" batch. Each cell receives a
// descending position hint in its options (the last cell has position 0)
// so listeners can reconstruct relative insertion order from a single
// options value per event.
func (m *Model) AddCells(cells []Cell, opts Options) error {
	count := len(cells)
	if count == 0 {
		return nil
	}
	m.StartBatch(BatchAdd, opts)
	defer m.StopBatch(BatchAdd, opts)

	for i, cell := range cells {
		local := opts
		local.Position = ptr(count - 1 - i)
		if err := m.AddCell(cell, local); err != nil {
			return err
		}
	}
	return nil
}

// RemoveCell removes cell from the model and reports whether anything was
// removed. Removal is idempotent: a cell that is not present is skipped.
//
// Unless opts requests otherwise, every edge connected to the removed
// cell is removed too; with opts.DisconnectEdges those edges survive with
// the dangling terminal replaced by a fixed point at the origin. With
// opts.Clear neither cleanup runs.
func (m *Model) RemoveCell(cell Cell, opts Options) bool {
	if cell == nil || !m.collection.Has(cell.ID()) {
		return false
	}
	if p := cell.Parent(); p != nil {
		p.Unembed(cell)
	}
	return m.collection.Remove(cell, opts)
}

// RemoveCellByID resolves id and removes the cell, returning it. Unknown
// IDs are a no-op.
func (m *Model) RemoveCellByID(id string, opts Options) (Cell, bool) {
	cell, ok := m.GetCell(id)
	if !ok {
		return nil, false
	}
	return cell, m.RemoveCell(cell, opts)
}

// RemoveCells removes the cells inside a "remove" batch and returns the
// ones actually removed.
func (m *Model) RemoveCells(cells []Cell, opts Options) []Cell {
	if len(cells) == 0 {
		return nil
	}
	var removed []Cell
	m.ExecuteBatch(BatchRemove, opts, func() {
		for _, cell := range cells {
			if m.RemoveCell(cell, opts) {
				removed = append(removed, cell)
			}
		}
	})
	return removed
}

// RemoveConnectedEdges removes every edge touching cell, in either
// direction, and returns them. This is the default cleanup when a cell is
// deleted and its dangling edges should disappear.
func (m *Model) RemoveConnectedEdges(cell Cell, opts Options) []*Edge {
	edges := m.GetConnectedEdges(cell, ConnectionOptions{})
	for _, e := range edges {
		m.RemoveCell(e, opts)
	}
	return edges
}

// DisconnectConnectedEdges keeps every edge touching cell alive but
// replaces whichever terminal pointed at cell with a fixed point at the
// origin. This is the alternative cleanup policy to
// [Model.RemoveConnectedEdges].
func (m *Model) DisconnectConnectedEdges(cell Cell, opts Options) {
	var changed []Cell
	for _, e := range m.GetConnectedEdges(cell, ConnectionOptions{}) {
		if e.Source().CellID == cell.ID() {
			e.SetSource(PointTerminal(0, 0))
		}
		if e.Target().CellID == cell.ID() {
			e.SetTarget(PointTerminal(0, 0))
		}
		changed = append(changed, e)
	}
	if len(changed) > 0 {
		m.notify(Event{Name: EventUpdated, Cells: changed, Options: opts})
	}
}

// Clear removes every cell as one "clear" batch. Edges are removed before
// nodes so no edge is ever cleaned up against a node vanishing in the
// same pass, and each removal carries the clear flag to suppress the
// per-cell connected-edge side effect.
func (m *Model) Clear(opts Options) {
	cells := m.collection.ToArray()
	if len(cells) == 0 {
		return
	}
	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].IsEdge() && !cells[j].IsEdge()
	})

	local := opts
	local.Clear = true
	m.ExecuteBatch(BatchClear, opts, func() {
		for _, cell := range cells {
			m.RemoveCell(cell, local)
		}
	})
}

// ResetCells atomically replaces the entire contents of the model. One
// reseted event is emitted carrying the previous and current cell lists;
// departing cells are detached without edge cleanup.
func (m *Model) ResetCells(cells []Cell, opts Options) {
	maxZ := 0
	for _, cell := range cells {
		if cell.HasZIndex() && cell.ZIndex() > maxZ {
			maxZ = cell.ZIndex()
		}
	}
	for _, cell := range cells {
		if !cell.HasZIndex() {
			maxZ++
			cell.SetZIndex(maxZ)
		}
		if !opts.Dry {
			cell.setModel(m)
		}
	}
	m.collection.Reset(cells, opts)
}

// Translate moves every node, and every fixed-point edge terminal, by
// (dx, dy), then emits a single updated event with the affected cells.
func (m *Model) Translate(dx, dy float64, opts Options) {
	var moved []Cell
	for _, n := range m.GetNodes() {
		n.Translate(dx, dy)
		moved = append(moved, n)
	}
	for _, e := range m.GetEdges() {
		touched := false
		if src := e.Source(); src.IsPoint() {
			src.Point = src.Point.Translate(dx, dy)
			e.SetSource(src)
			touched = true
		}
		if tgt := e.Target(); tgt.IsPoint() {
			tgt.Point = tgt.Point.Translate(dx, dy)
			e.SetTarget(tgt)
			touched = true
		}
		if touched {
			moved = append(moved, e)
		}
	}
	if len(moved) > 0 {
		m.notify(Event{Name: EventUpdated, Cells: moved, Options: opts})
	}
}

// Resize changes the size of the node with the given ID and emits an
// updated event. Unknown or non-node IDs are a no-op.
func (m *Model) Resize(id string, size geometry.Size, opts Options) bool {
	cell, ok := m.GetCell(id)
	if !ok {
		return false
	}
	node, ok := cell.(*Node)
	if !ok {
		return false
	}
	node.SetSize(size)
	m.notify(Event{Name: EventUpdated, Cells: []Cell{node}, Options: opts})
	return true
}

// GetCell returns the cell with the given ID.
func (m *Model) GetCell(id string) (Cell, bool) { return m.collection.Get(id) }

// HasCell reports whether a cell with the given ID is present.
func (m *Model) HasCell(id string) bool { return m.collection.Has(id) }

// GetCells returns every cell in z-order.
func (m *Model) GetCells() []Cell { return m.collection.ToArray() }

// CellCount returns the number of cells.
func (m *Model) CellCount() int { return m.collection.Length() }

// GetNodes returns every node in z-order.
func (m *Model) GetNodes() []*Node {
	out := make([]*Node, 0, len(m.nodes))
	for _, cell := range m.collection.cells {
		if n, ok := cell.(*Node); ok {
			out = append(out, n)
		}
	}
	return out
}

// GetEdges returns every edge in z-order.
func (m *Model) GetEdges() []*Edge {
	out := make([]*Edge, 0, len(m.edges))
	for _, cell := range m.collection.cells {
		if e, ok := cell.(*Edge); ok {
			out = append(out, e)
		}
	}
	return out
}

// IsNodeID reports whether id identifies a node in the model.
func (m *Model) IsNodeID(id string) bool {
	_, ok := m.nodes[id]
	return ok
}

// IsEdgeID reports whether id identifies an edge in the model.
func (m *Model) IsEdgeID(id string) bool {
	_, ok := m.edges[id]
	return ok
}

// maxZIndex returns the highest z-index currently stored. The collection
// keeps cells in z-order, so this is the last cell's index.
func (m *Model) maxZIndex() int {
	if last := m.collection.Last(); last != nil {
		return last.ZIndex()
	}
	return 0
}

func ptr[T any](v T) *T { return &v }
