package model

// SearchOptions controls [Model.Search]: traversal order plus the
// neighbor expansion flags.
type SearchOptions struct {
	// BreadthFirst selects FIFO (queue) expansion; the default is
	// depth-first (stack).
	BreadthFirst bool

	// Incoming, Outgoing and Deep restrict the neighbor relation the
	// traversal follows, as in [NeighborOptions].
	Incoming bool
	Outgoing bool
	Deep     bool
}

// TraverseOptions controls the successor/predecessor queries.
type TraverseOptions struct {
	BreadthFirst bool
	Deep         bool
}

// searchSignal steers the internal traversal loop.
type searchSignal int

const (
	searchContinue searchSignal = iota
	searchPrune                 // do not expand this cell's neighbors
	searchStop                  // abort the whole traversal
)

// Search drives a breadth-first or depth-first traversal over the
// neighbor relation starting at cell. The iterator is invoked exactly
// once per newly visited cell, in visitation order, with the number of
// hops from the origin along the traversal tree actually built (for
// depth-first order this is not necessarily the shortest distance).
//
// Returning false from the iterator prunes expansion from that cell
// without aborting the overall search.
func (m *Model) Search(cell Cell, iterator func(Cell, int) bool, opts SearchOptions) {
	m.search(cell, func(c Cell, distance int) searchSignal {
		if iterator(c, distance) {
			return searchContinue
		}
		return searchPrune
	}, opts)
}

// BreadthFirstSearch traverses the neighbor relation in FIFO order. See
// [Model.Search].
func (m *Model) BreadthFirstSearch(cell Cell, iterator func(Cell, int) bool) {
	m.Search(cell, iterator, SearchOptions{BreadthFirst: true})
}

// DepthFirstSearch traverses the neighbor relation in LIFO order. See
// [Model.Search].
func (m *Model) DepthFirstSearch(cell Cell, iterator func(Cell, int) bool) {
	m.Search(cell, iterator, SearchOptions{})
}

func (m *Model) search(cell Cell, visit func(Cell, int) searchSignal, opts SearchOptions) {
	if cell == nil || visit == nil {
		return
	}
	neighborOpts := NeighborOptions{
		Incoming: opts.Incoming,
		Outgoing: opts.Outgoing,
		Deep:     opts.Deep,
	}

	type item struct {
		cell     Cell
		distance int
	}
	visited := map[string]struct{}{cell.ID(): {}}
	work := []item{{cell, 0}}

	for len(work) > 0 {
		var cur item
		if opts.BreadthFirst {
			cur = work[0]
			work = work[1:]
		} else {
			cur = work[len(work)-1]
			work = work[:len(work)-1]
		}

		switch visit(cur.cell, cur.distance) {
		case searchStop:
			return
		case searchPrune:
			continue
		}

		for _, nb := range m.GetNeighbors(cur.cell, neighborOpts) {
			if nb == nil {
				continue
			}
			if _, done := visited[nb.ID()]; done {
				continue
			}
			visited[nb.ID()] = struct{}{}
			work = append(work, item{nb, cur.distance + 1})
		}
	}
}

// GetSuccessors returns every cell reachable from cell along outgoing
// edges, in visitation order, excluding cell itself.
func (m *Model) GetSuccessors(cell Cell, opts TraverseOptions) []Cell {
	return m.collectReachable(cell, opts, true)
}

// GetPredecessors returns every cell that reaches cell along incoming
// edges, in visitation order, excluding cell itself.
func (m *Model) GetPredecessors(cell Cell, opts TraverseOptions) []Cell {
	return m.collectReachable(cell, opts, false)
}

func (m *Model) collectReachable(cell Cell, opts TraverseOptions, outgoing bool) []Cell {
	var out []Cell
	m.search(cell, func(c Cell, distance int) searchSignal {
		if distance > 0 {
			out = append(out, c)
		}
		return searchContinue
	}, SearchOptions{
		BreadthFirst: opts.BreadthFirst,
		Deep:         opts.Deep,
		Outgoing:     outgoing,
		Incoming:     !outgoing,
	})
	return out
}

// IsSuccessor reports whether successor is reachable from cell along
// outgoing edges. The traversal stops as soon as the target is found.
func (m *Model) IsSuccessor(cell, successor Cell) bool {
	return m.isReachable(cell, successor, true)
}

// IsPredecessor reports whether predecessor reaches cell along incoming
// edges. The traversal stops as soon as the target is found.
func (m *Model) IsPredecessor(cell, predecessor Cell) bool {
	return m.isReachable(cell, predecessor, false)
}

func (m *Model) isReachable(from, to Cell, outgoing bool) bool {
	if from == nil || to == nil {
		return false
	}
	found := false
	m.search(from, func(c Cell, distance int) searchSignal {
		if distance > 0 && c.ID() == to.ID() {
			found = true
			return searchStop
		}
		return searchContinue
	}, SearchOptions{Outgoing: outgoing, Incoming: !outgoing, BreadthFirst: true})
	return found
}
