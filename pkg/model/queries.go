package model

import "github.com/mlenz/cellgraph/pkg/geometry"

// ConnectionOptions controls [Model.GetConnectedEdges]. The zero value
// selects both directions with no deep or indirect expansion.
type ConnectionOptions struct {
	// Incoming selects edges whose target touches the cell. When neither
	// direction flag is set, both directions are searched.
	Incoming bool

	// Outgoing selects edges whose source touches the cell.
	Outgoing bool

	// Indirect additionally follows edges attached to another edge's
	// terminal, recursing through that edge's own connections.
	Indirect bool

	// Deep additionally considers edges connected to any descendant of
	// the cell.
	Deep bool

	// Enclosed includes edges whose both terminals lie strictly inside
	// the descendant set during a Deep search. Such internal edges are
	// excluded by default.
	Enclosed bool
}

// NeighborOptions controls the neighbor queries.
type NeighborOptions struct {
	// Incoming restricts to neighbors on incoming edges. When neither
	// direction flag is set, both directions count.
	Incoming bool

	// Outgoing restricts to neighbors on outgoing edges.
	Outgoing bool

	// Deep treats descendants of the cell as part of it: their outside
	// connections contribute neighbors, while neighbors that are
	// themselves descendants are excluded unless reached via a loop.
	Deep bool
}

// SubGraphOptions controls [Model.GetSubGraph].
type SubGraphOptions struct {
	// Deep also includes every descendant of each input cell.
	Deep bool
}

// GetConnectedEdges returns every edge touching cell, deduplicated by
// edge ID: the same edge never appears twice regardless of how many paths
// reach it. Results are in z-order.
//
// The search runs as a fixed-point worklist rather than recursion, so
// adversarially chained edge-to-edge attachments cannot exhaust the
// stack.
func (m *Model) GetConnectedEdges(cell Cell, opts ConnectionOptions) []*Edge {
	if cell == nil {
		return nil
	}
	incoming, outgoing := opts.Incoming, opts.Outgoing
	if !incoming && !outgoing {
		incoming, outgoing = true, true
	}

	// The strict interior of a deep search: descendants, not cell itself.
	inside := make(map[string]struct{})
	if opts.Deep {
		for _, d := range Descendants(cell) {
			inside[d.ID()] = struct{}{}
		}
	}

	connectable := map[string]struct{}{cell.ID(): {}}
	for id := range inside {
		connectable[id] = struct{}{}
	}

	var result []*Edge
	seen := make(map[string]struct{})
	edges := m.GetEdges()

	for {
		grown := false
		for _, e := range edges {
			if _, dup := seen[e.ID()]; dup {
				continue
			}
			src := e.Source().CellID
			tgt := e.Target().CellID
			_, srcIn := connectable[src]
			_, tgtIn := connectable[tgt]
			if !(outgoing && srcIn) && !(incoming && tgtIn) {
				continue
			}
			if opts.Deep && !opts.Enclosed {
				_, srcInside := inside[src]
				_, tgtInside := inside[tgt]
				if srcInside && tgtInside {
					continue
				}
			}
			seen[e.ID()] = struct{}{}
			result = append(result, e)
			if opts.Indirect {
				if _, ok := connectable[e.ID()]; !ok {
					connectable[e.ID()] = struct{}{}
					grown = true
				}
			}
		}
		if !opts.Indirect || !grown {
			return result
		}
	}
}

// GetConnectedEdgesByID resolves id and returns its connected edges. An
// unknown ID degrades to "no connected edges" rather than an error.
func (m *Model) GetConnectedEdgesByID(id string, opts ConnectionOptions) []*Edge {
	cell, ok := m.GetCell(id)
	if !ok {
		return nil
	}
	return m.GetConnectedEdges(cell, opts)
}

// GetNeighbors collects, from each connected edge, the opposite node
// endpoint, deduplicated by ID. A self-loop counts the cell as its own
// neighbor. When cell is itself an edge, its own source and target cells
// are neighbors too.
func (m *Model) GetNeighbors(cell Cell, opts NeighborOptions) []Cell {
	if cell == nil {
		return nil
	}

	var out []Cell
	seen := make(map[string]struct{})
	add := func(c Cell) {
		if c == nil {
			return
		}
		if _, dup := seen[c.ID()]; dup {
			return
		}
		seen[c.ID()] = struct{}{}
		out = append(out, c)
	}

	if edge, ok := cell.(*Edge); ok {
		if src, ok := edge.SourceCell(); ok {
			add(src)
		}
		if tgt, ok := edge.TargetCell(); ok {
			add(tgt)
		}
	}

	conn := ConnectionOptions{Incoming: opts.Incoming, Outgoing: opts.Outgoing, Deep: opts.Deep}
	within := func(c Cell) bool {
		return c.ID() == cell.ID() || (opts.Deep && IsAncestor(cell, c))
	}

	for _, e := range m.GetConnectedEdges(cell, conn) {
		src, srcOK := e.SourceCell()
		tgt, tgtOK := e.TargetCell()
		loop := srcOK && tgtOK && src.ID() == tgt.ID()
		if loop && within(src) {
			add(src)
			continue
		}

		var other Cell
		switch {
		case srcOK && within(src):
			if tgtOK {
				other = tgt
			}
		case tgtOK && within(tgt):
			if srcOK {
				other = src
			}
		}
		if other == nil {
			continue
		}
		if opts.Deep && IsAncestor(cell, other) && !loop {
			continue
		}
		add(other)
	}
	return out
}

// GetNeighborsByID resolves id and returns its neighbors. An unknown ID
// yields no neighbors.
func (m *Model) GetNeighborsByID(id string, opts NeighborOptions) []Cell {
	cell, ok := m.GetCell(id)
	if !ok {
		return nil
	}
	return m.GetNeighbors(cell, opts)
}

// IsNeighbor reports whether some connected edge of cell1 has cell2 as
// the opposite-direction terminal, honoring the direction flags.
func (m *Model) IsNeighbor(cell1, cell2 Cell, opts NeighborOptions) bool {
	if cell1 == nil || cell2 == nil {
		return false
	}
	incoming, outgoing := opts.Incoming, opts.Outgoing
	if !incoming && !outgoing {
		incoming, outgoing = true, true
	}
	for _, e := range m.GetConnectedEdges(cell1, ConnectionOptions{Incoming: incoming, Outgoing: outgoing}) {
		src := e.Source().CellID
		tgt := e.Target().CellID
		if outgoing && src == cell1.ID() && tgt == cell2.ID() {
			return true
		}
		if incoming && tgt == cell1.ID() && src == cell2.ID() {
			return true
		}
	}
	return false
}

// GetRoots returns the nodes with no incoming edges.
func (m *Model) GetRoots() []*Node {
	return m.filterNodesByDegree(func(in, out int) bool { return in == 0 })
}

// GetLeafs returns the nodes with no outgoing edges.
func (m *Model) GetLeafs() []*Node {
	return m.filterNodesByDegree(func(in, out int) bool { return out == 0 })
}

func (m *Model) filterNodesByDegree(keep func(in, out int) bool) []*Node {
	in := make(map[string]int)
	out := make(map[string]int)
	for _, e := range m.GetEdges() {
		if src := e.Source().CellID; src != "" {
			out[src]++
		}
		if tgt := e.Target().CellID; tgt != "" {
			in[tgt]++
		}
	}
	var result []*Node
	for _, n := range m.GetNodes() {
		if keep(in[n.ID()], out[n.ID()]) {
			result = append(result, n)
		}
	}
	return result
}

// GetSubGraph expands cells into the minimal self-contained subgraph.
// The closure runs in three passes: the inputs plus their descendants
// when opts.Deep is set, then the connected edges of every selected node
// and the terminal cells of every edge reached, then every remaining
// edge whose both endpoints ended up in the set. No edge in the result
// references a cell outside it, and no node pair connected by an edge
// appears without that edge, except edges excluded as internal during a
// deep descendant expansion.
func (m *Model) GetSubGraph(cells []Cell, opts SubGraphOptions) []Cell {
	var out []Cell
	seen := make(map[string]struct{})
	add := func(c Cell) {
		if c == nil {
			return
		}
		if _, dup := seen[c.ID()]; dup {
			return
		}
		seen[c.ID()] = struct{}{}
		out = append(out, c)
	}

	selected := make(map[string]struct{})
	interior := make(map[string]string) // descendant ID -> owning input ID
	for _, c := range cells {
		if c == nil {
			continue
		}
		add(c)
		selected[c.ID()] = struct{}{}
		if opts.Deep {
			for _, d := range Descendants(c) {
				add(d)
				if _, owned := interior[d.ID()]; !owned {
					interior[d.ID()] = c.ID()
				}
			}
		}
	}

	// Selected nodes pull in their connected edges; every edge pulls in
	// its terminal cells. The slice grows while iterating, so chains of
	// edges attached to edges are followed to a fixed point.
	for i := 0; i < len(out); i++ {
		cur := out[i]
		if e, ok := cur.(*Edge); ok {
			if src, ok := e.SourceCell(); ok {
				add(src)
			}
			if tgt, ok := e.TargetCell(); ok {
				add(tgt)
			}
		}
		if _, isSel := selected[cur.ID()]; isSel && cur.IsNode() {
			for _, e := range m.GetConnectedEdges(cur, ConnectionOptions{Deep: opts.Deep}) {
				add(e)
			}
		}
	}

	// Pull in edges now fully contained in the set, still excluding edges
	// internal to a single deep-expanded subtree.
	for _, e := range m.GetEdges() {
		if _, dup := seen[e.ID()]; dup {
			continue
		}
		src := e.Source().CellID
		tgt := e.Target().CellID
		if src == "" || tgt == "" {
			continue
		}
		_, srcIn := seen[src]
		_, tgtIn := seen[tgt]
		if !srcIn || !tgtIn {
			continue
		}
		if srcOwner, ok := interior[src]; ok {
			if tgtOwner, ok := interior[tgt]; ok && srcOwner == tgtOwner {
				continue
			}
		}
		add(e)
	}
	return out
}

// CloneCells clones the cells with fresh IDs and preserved topology:
// parent/child links and edge terminals that point inside the cloned set
// are remapped to the clones, references leaving the set are kept as-is.
// It returns a mapping from original ID to clone.
func CloneCells(cells []Cell) map[string]Cell {
	clones := make(map[string]Cell, len(cells))
	for _, c := range cells {
		clones[c.ID()] = c.clone()
	}
	for _, c := range cells {
		cl := clones[c.ID()]
		if p := c.Parent(); p != nil {
			if pc, ok := clones[p.ID()]; ok {
				_ = pc.Embed(cl)
			}
		}
		if e, ok := c.(*Edge); ok {
			ecl := cl.(*Edge)
			if src := e.Source(); !src.IsPoint() {
				if sc, ok := clones[src.CellID]; ok {
					src.CellID = sc.ID()
					ecl.SetSource(src)
				}
			}
			if tgt := e.Target(); !tgt.IsPoint() {
				if tc, ok := clones[tgt.CellID]; ok {
					tgt.CellID = tc.ID()
					ecl.SetTarget(tgt)
				}
			}
		}
	}
	return clones
}

// CloneSubGraph clones the subgraph closure of cells. See
// [Model.GetSubGraph] and [CloneCells].
func (m *Model) CloneSubGraph(cells []Cell, opts SubGraphOptions) map[string]Cell {
	return CloneCells(m.GetSubGraph(cells, opts))
}

// GetBBox returns the union of all node bounding boxes. The second return
// is false when the model holds no nodes.
func (m *Model) GetBBox() (geometry.Rectangle, bool) {
	return nodesBBox(m.GetNodes())
}

// GetCellsBBox returns the union of the bounding boxes of the nodes among
// cells. The second return is false when no node contributes.
func (m *Model) GetCellsBBox(cells []Cell) (geometry.Rectangle, bool) {
	var nodes []*Node
	for _, c := range cells {
		if n, ok := c.(*Node); ok {
			nodes = append(nodes, n)
		}
	}
	return nodesBBox(nodes)
}

func nodesBBox(nodes []*Node) (geometry.Rectangle, bool) {
	if len(nodes) == 0 {
		return geometry.Rectangle{}, false
	}
	box := nodes[0].BBox()
	for _, n := range nodes[1:] {
		box = box.Union(n.BBox())
	}
	return box, true
}

// GetNodesFromPoint returns the nodes whose bounding box contains p.
func (m *Model) GetNodesFromPoint(p geometry.Point) []*Node {
	var out []*Node
	for _, n := range m.GetNodes() {
		if n.BBox().ContainsPoint(p) {
			out = append(out, n)
		}
	}
	return out
}

// GetNodesInArea returns the nodes whose bounding box intersects area.
// With strict set, only nodes fully contained in area are returned.
func (m *Model) GetNodesInArea(area geometry.Rectangle, strict bool) []*Node {
	var out []*Node
	for _, n := range m.GetNodes() {
		box := n.BBox()
		if strict && area.ContainsRect(box) || !strict && area.Intersects(box) {
			out = append(out, n)
		}
	}
	return out
}

// GetNodesUnderNode returns the nodes overlapping node's bounding box,
// excluding node itself. With strict set, only fully covered nodes are
// returned.
func (m *Model) GetNodesUnderNode(node *Node, strict bool) []*Node {
	if node == nil {
		return nil
	}
	var out []*Node
	for _, n := range m.GetNodesInArea(node.BBox(), strict) {
		if n != node {
			out = append(out, n)
		}
	}
	return out
}
