package model_test

import (
	"fmt"

	"github.com/mlenz/cellgraph/pkg/model"
)

func Example_basic() {
	// Create a small pipeline graph: a → b → c
	a := model.NewNode(model.NodeOptions{ID: "a", Width: 80, Height: 40})
	b := model.NewNode(model.NodeOptions{ID: "b", X: 160, Width: 80, Height: 40})
	c := model.NewNode(model.NodeOptions{ID: "c", X: 320, Width: 80, Height: 40})
	m := model.New(a, b, c,
		model.NewEdge(model.EdgeOptions{Source: model.CellTerminal("a"), Target: model.CellTerminal("b")}),
		model.NewEdge(model.EdgeOptions{Source: model.CellTerminal("b"), Target: model.CellTerminal("c")}),
	)

	fmt.Println("Cells:", m.CellCount())
	fmt.Println("Nodes:", len(m.GetNodes()))
	fmt.Println("Edges:", len(m.GetEdges()))
	// Output:
	// Cells: 5
	// Nodes: 3
	// Edges: 2
}

func ExampleModel_GetNeighbors() {
	a := model.NewNode(model.NodeOptions{ID: "a"})
	b := model.NewNode(model.NodeOptions{ID: "b"})
	c := model.NewNode(model.NodeOptions{ID: "c"})
	m := model.New(a, b, c,
		model.NewEdge(model.EdgeOptions{Source: model.CellTerminal("a"), Target: model.CellTerminal("b")}),
		model.NewEdge(model.EdgeOptions{Source: model.CellTerminal("b"), Target: model.CellTerminal("c")}),
	)

	for _, n := range m.GetNeighbors(b, model.NeighborOptions{Incoming: true}) {
		fmt.Println("Incoming neighbor:", n.ID())
	}
	for _, n := range m.GetNeighbors(b, model.NeighborOptions{Outgoing: true}) {
		fmt.Println("Outgoing neighbor:", n.ID())
	}
	// Output:
	// Incoming neighbor: a
	// Outgoing neighbor: c
}

func ExampleModel_GetShortestPath() {
	m := model.New(
		model.NewNode(model.NodeOptions{ID: "a"}),
		model.NewNode(model.NodeOptions{ID: "b"}),
		model.NewNode(model.NodeOptions{ID: "c"}),
		model.NewEdge(model.EdgeOptions{Source: model.CellTerminal("a"), Target: model.CellTerminal("b")}),
		model.NewEdge(model.EdgeOptions{Source: model.CellTerminal("b"), Target: model.CellTerminal("c")}),
	)

	fmt.Println(m.GetShortestPath("a", "c", model.PathOptions{}))
	// Output:
	// [a b c]
}

func ExampleModel_OnEvent() {
	m := model.New()
	cancel := m.OnEvent(func(ev model.Event) {
		fmt.Println(ev.Name)
	})
	defer cancel()

	_ = m.AddNode(model.NewNode(model.NodeOptions{ID: "a"}), model.Options{})
	// Output:
	// cell:added
	// node:added
}
