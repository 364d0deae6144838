package model

import "testing"

// buildStar returns a model with a center node and four leaves connected
// by outgoing edges center->l1..l4.
func buildStar(t *testing.T) (*Model, *Node) {
	t.Helper()
	center := NewNode(NodeOptions{ID: "center"})
	cells := []Cell{center}
	for _, id := range []string{"l1", "l2", "l3", "l4"} {
		cells = append(cells, NewNode(NodeOptions{ID: id}))
		cells = append(cells, NewEdge(EdgeOptions{
			Source: CellTerminal("center"),
			Target: CellTerminal(id),
		}))
	}
	return New(cells...), center
}

func TestBreadthFirstSearchDistances(t *testing.T) {
	m, center := buildStar(t)

	distances := make(map[string]int)
	m.BreadthFirstSearch(center, func(c Cell, distance int) bool {
		if _, dup := distances[c.ID()]; dup {
			t.Errorf("cell %s visited twice", c.ID())
		}
		distances[c.ID()] = distance
		return true
	})

	if len(distances) != 5 {
		t.Fatalf("visited = %d cells, want 5", len(distances))
	}
	if distances["center"] != 0 {
		t.Errorf("center distance = %d, want 0", distances["center"])
	}
	for _, id := range []string{"l1", "l2", "l3", "l4"} {
		if distances[id] != 1 {
			t.Errorf("distance(%s) = %d, want 1", id, distances[id])
		}
	}
}

func TestSearchPrune(t *testing.T) {
	// Chain a -> b -> c: pruning at b keeps c unvisited but does not
	// abort the rest of the traversal.
	m, _, _, _, _, _ := buildTriangle(t)
	a, _ := m.GetCell("a")

	var visited []string
	m.Search(a, func(c Cell, distance int) bool {
		visited = append(visited, c.ID())
		return c.ID() != "b"
	}, SearchOptions{BreadthFirst: true, Outgoing: true})

	want := []string{"a", "b"}
	if len(visited) != len(want) {
		t.Fatalf("visited = %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %s, want %s", i, visited[i], want[i])
		}
	}
}

func TestDepthFirstSearchVisitsAll(t *testing.T) {
	m, center := buildStar(t)

	count := 0
	m.DepthFirstSearch(center, func(Cell, int) bool {
		count++
		return true
	})
	if count != 5 {
		t.Errorf("visited = %d cells, want 5", count)
	}
}

func TestSearchDirected(t *testing.T) {
	m, _, b, _, _, _ := buildTriangle(t)

	var visited []string
	m.Search(b, func(c Cell, _ int) bool {
		visited = append(visited, c.ID())
		return true
	}, SearchOptions{BreadthFirst: true, Outgoing: true})

	want := []string{"b", "c"}
	if len(visited) != len(want) {
		t.Fatalf("visited = %v, want %v (a is upstream)", visited, want)
	}
}

func TestGetSuccessors(t *testing.T) {
	m, a, _, _, _, _ := buildTriangle(t)

	got := cellIDSet(m.GetSuccessors(a, TraverseOptions{BreadthFirst: true}))
	if len(got) != 2 || !got["b"] || !got["c"] {
		t.Errorf("successors(a) = %v, want {b c}", got)
	}
}

func TestGetPredecessors(t *testing.T) {
	m, _, _, c, _, _ := buildTriangle(t)

	got := cellIDSet(m.GetPredecessors(c, TraverseOptions{BreadthFirst: true}))
	if len(got) != 2 || !got["a"] || !got["b"] {
		t.Errorf("predecessors(c) = %v, want {a b}", got)
	}
}

func TestIsSuccessorIsPredecessor(t *testing.T) {
	m, a, _, c, _, _ := buildTriangle(t)

	if !m.IsSuccessor(a, c) {
		t.Error("c should be a transitive successor of a")
	}
	if m.IsSuccessor(c, a) {
		t.Error("a must not be a successor of c")
	}
	if !m.IsPredecessor(c, a) {
		t.Error("a should be a transitive predecessor of c")
	}
	if m.IsPredecessor(a, c) {
		t.Error("c must not be a predecessor of a")
	}
	if m.IsSuccessor(a, a) {
		t.Error("a cell is not its own successor without a cycle")
	}
}
