package model

import "testing"

// buildPathGraph returns a model shaped like
//
//	a -> b -> c -> d
//	a ------> c        (heavy shortcut when weights are used)
//
// plus a disconnected node "island".
func buildPathGraph(t *testing.T) *Model {
	t.Helper()
	cells := []Cell{
		NewNode(NodeOptions{ID: "a"}),
		NewNode(NodeOptions{ID: "b"}),
		NewNode(NodeOptions{ID: "c"}),
		NewNode(NodeOptions{ID: "d"}),
		NewNode(NodeOptions{ID: "island"}),
		NewEdge(EdgeOptions{ID: "ab", Source: CellTerminal("a"), Target: CellTerminal("b")}),
		NewEdge(EdgeOptions{ID: "bc", Source: CellTerminal("b"), Target: CellTerminal("c")}),
		NewEdge(EdgeOptions{ID: "cd", Source: CellTerminal("c"), Target: CellTerminal("d")}),
		NewEdge(EdgeOptions{ID: "ac", Source: CellTerminal("a"), Target: CellTerminal("c"), Meta: Metadata{"weight": 10.0}}),
	}
	return New(cells...)
}

func checkPath(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("path = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path = %v, want %v", got, want)
		}
	}
}

func TestGetShortestPath(t *testing.T) {
	m := buildPathGraph(t)

	// Hop count only: the shortcut a->c wins.
	checkPath(t, m.GetShortestPath("a", "d", PathOptions{}), []string{"a", "c", "d"})
	checkPath(t, m.GetShortestPath("a", "b", PathOptions{}), []string{"a", "b"})
}

func TestGetShortestPathWeighted(t *testing.T) {
	m := buildPathGraph(t)

	weight := func(e *Edge) float64 {
		if w, ok := e.Metadata()["weight"].(float64); ok {
			return w
		}
		return 1
	}
	// The shortcut costs 10, the chain 2.
	checkPath(t, m.GetShortestPath("a", "c", PathOptions{Weight: weight}), []string{"a", "b", "c"})
}

func TestGetShortestPathDirected(t *testing.T) {
	m := buildPathGraph(t)

	if got := m.GetShortestPath("d", "a", PathOptions{Directed: true}); len(got) != 0 {
		t.Errorf("directed reverse path = %v, want empty", got)
	}
	// Undirected traversal may walk edges backwards.
	checkPath(t, m.GetShortestPath("d", "c", PathOptions{}), []string{"d", "c"})
}

func TestGetShortestPathEdgeCases(t *testing.T) {
	m := buildPathGraph(t)

	checkPath(t, m.GetShortestPath("a", "a", PathOptions{}), []string{"a"})

	if got := m.GetShortestPath("a", "island", PathOptions{}); len(got) != 0 {
		t.Errorf("path to disconnected node = %v, want empty", got)
	}
	if got := m.GetShortestPath("a", "missing", PathOptions{}); len(got) != 0 {
		t.Errorf("path to unknown node = %v, want empty", got)
	}
	if got := m.GetShortestPath("missing", "a", PathOptions{}); len(got) != 0 {
		t.Errorf("path from unknown node = %v, want empty", got)
	}
}
