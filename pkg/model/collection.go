package model

import "sort"

// Collection is an ordered, id-indexed set of cells. It owns the raw
// add/remove/reset primitives and emits the low-level structural events a
// [Model] listens to; it knows nothing about graph shape.
//
// Cells are kept in ascending z-index order (stable for equal indices),
// so First and Last answer the lowest and highest z-index. Lookup by ID
// is O(1).
type Collection struct {
	cells []Cell
	index map[string]Cell
	emitter
}

// NewCollection builds a collection holding the given cells, sorted by
// z-index. No events are emitted for the initial contents.
func NewCollection(cells ...Cell) *Collection {
	c := &Collection{index: make(map[string]Cell, len(cells))}
	for _, cell := range cells {
		if _, dup := c.index[cell.ID()]; dup {
			continue
		}
		c.cells = append(c.cells, cell)
		c.index[cell.ID()] = cell
	}
	c.sortCells()
	return c
}

// OnEvent subscribes h to the collection's structural events and returns
// a cancel function.
func (c *Collection) OnEvent(h Handler) func() { return c.on(h) }

// Add inserts cell and emits an added event. If a cell with the same ID
// is already present the call is a silent no-op; callers that care must
// check membership first.
//
// When opts.Position is set, it is interpreted as an offset from the end
// of the collection (0 appends). Out-of-range positions are clamped.
func (c *Collection) Add(cell Cell, opts Options) {
	if _, exists := c.index[cell.ID()]; exists {
		return
	}

	at := len(c.cells)
	if opts.Position != nil {
		at -= *opts.Position
		if at < 0 {
			at = 0
		}
		if at > len(c.cells) {
			at = len(c.cells)
		}
	}

	c.cells = append(c.cells, nil)
	copy(c.cells[at+1:], c.cells[at:])
	c.cells[at] = cell
	c.index[cell.ID()] = cell

	// Implicit reindex: the stable sort keeps explicit placement among
	// cells with equal z-indices while restoring global z-order.
	c.sortCells()

	c.notify(Event{Name: EventAdded, Cell: cell, Options: opts})
}

// Remove deletes cell by identity and emits a removed event carrying the
// options. Removing a cell that is not present is a no-op.
func (c *Collection) Remove(cell Cell, opts Options) bool {
	stored, ok := c.index[cell.ID()]
	if !ok || stored != cell {
		return false
	}
	for i, cur := range c.cells {
		if cur == cell {
			c.cells = append(c.cells[:i], c.cells[i+1:]...)
			break
		}
	}
	delete(c.index, cell.ID())

	c.notify(Event{Name: EventRemoved, Cell: cell, Options: opts})
	return true
}

// Reset atomically replaces the entire contents and emits a single
// reseted event carrying the previous and current cell lists. This is the
// bulk-load path used for deserialization.
func (c *Collection) Reset(cells []Cell, opts Options) {
	previous := c.cells

	c.cells = make([]Cell, 0, len(cells))
	c.index = make(map[string]Cell, len(cells))
	for _, cell := range cells {
		if _, dup := c.index[cell.ID()]; dup {
			continue
		}
		c.cells = append(c.cells, cell)
		c.index[cell.ID()] = cell
	}
	c.sortCells()

	c.notify(Event{
		Name:     EventReseted,
		Cells:    append([]Cell(nil), c.cells...),
		Previous: previous,
		Options:  opts,
	})
}

// Sort re-orders the cells by ascending z-index and emits a sorted event.
func (c *Collection) Sort() {
	c.sortCells()
	c.notify(Event{Name: EventSorted})
}

func (c *Collection) sortCells() {
	sort.SliceStable(c.cells, func(i, j int) bool {
		return c.cells[i].ZIndex() < c.cells[j].ZIndex()
	})
}

// Has reports whether a cell with the given ID is present.
func (c *Collection) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Get returns the cell with the given ID.
func (c *Collection) Get(id string) (Cell, bool) {
	cell, ok := c.index[id]
	return cell, ok
}

// IndexOf returns the position of cell in z-order, or -1 if absent.
func (c *Collection) IndexOf(cell Cell) int {
	for i, cur := range c.cells {
		if cur == cell {
			return i
		}
	}
	return -1
}

// First returns the cell with the lowest z-index, or nil when empty.
func (c *Collection) First() Cell {
	if len(c.cells) == 0 {
		return nil
	}
	return c.cells[0]
}

// Last returns the cell with the highest z-index, or nil when empty.
func (c *Collection) Last() Cell {
	if len(c.cells) == 0 {
		return nil
	}
	return c.cells[len(c.cells)-1]
}

// ToArray returns a copy of the cells in z-order.
func (c *Collection) ToArray() []Cell {
	return append([]Cell(nil), c.cells...)
}

// Length returns the number of cells.
func (c *Collection) Length() int { return len(c.cells) }
