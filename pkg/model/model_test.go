package model

import (
	"errors"
	"testing"

	"github.com/mlenz/cellgraph/pkg/geometry"
)

// buildTriangle returns a model with nodes a, b, c and edges a->b, b->c.
func buildTriangle(t *testing.T) (*Model, *Node, *Node, *Node, *Edge, *Edge) {
	t.Helper()
	a := NewNode(NodeOptions{ID: "a", Width: 10, Height: 10})
	b := NewNode(NodeOptions{ID: "b", X: 100, Width: 10, Height: 10})
	c := NewNode(NodeOptions{ID: "c", X: 200, Width: 10, Height: 10})
	ab := NewEdge(EdgeOptions{ID: "ab", Source: CellTerminal("a"), Target: CellTerminal("b")})
	bc := NewEdge(EdgeOptions{ID: "bc", Source: CellTerminal("b"), Target: CellTerminal("c")})
	return New(a, b, c, ab, bc), a, b, c, ab, bc
}

func TestModelMembershipPartition(t *testing.T) {
	m, _, _, _, _, _ := buildTriangle(t)

	if got := m.CellCount(); got != 5 {
		t.Fatalf("cell count = %d, want 5", got)
	}
	for _, cell := range m.GetCells() {
		isNode := m.IsNodeID(cell.ID())
		isEdge := m.IsEdgeID(cell.ID())
		if isNode == isEdge {
			t.Errorf("cell %s: node=%v edge=%v, want exactly one", cell.ID(), isNode, isEdge)
		}
		if isNode != cell.IsNode() {
			t.Errorf("cell %s: cache disagrees with cell kind", cell.ID())
		}
	}
	if got := len(m.GetNodes()); got != 3 {
		t.Errorf("nodes = %d, want 3", got)
	}
	if got := len(m.GetEdges()); got != 2 {
		t.Errorf("edges = %d, want 2", got)
	}
}

func TestModelAddCellIdempotent(t *testing.T) {
	a := NewNode(NodeOptions{ID: "a"})
	m := New()

	if err := m.AddCell(a, Options{}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddCell(a, Options{}); err != nil {
		t.Fatal(err)
	}
	if got := m.CellCount(); got != 1 {
		t.Errorf("cell count = %d, want 1", got)
	}
	if err := m.AddCell(nil, Options{}); err != nil {
		t.Errorf("adding nil should be a no-op, got %v", err)
	}
}

func TestModelAddCellOwnership(t *testing.T) {
	a := NewNode(NodeOptions{ID: "a"})
	m1 := New(a)
	m2 := New()

	if err := m2.AddCell(a, Options{}); !errors.Is(err, ErrCellOwned) {
		t.Fatalf("err = %v, want ErrCellOwned", err)
	}

	m1.RemoveCell(a, Options{})
	if err := m2.AddCell(a, Options{}); err != nil {
		t.Fatalf("add after removal from previous owner: %v", err)
	}
	if a.Model() != m2 {
		t.Error("cell should now be owned by the second model")
	}
}

func TestModelAddCellRecursive(t *testing.T) {
	parent := NewNode(NodeOptions{ID: "parent", Width: 100, Height: 100})
	c1 := NewNode(NodeOptions{ID: "c1", Width: 10, Height: 10})
	c2 := NewNode(NodeOptions{ID: "c2", Width: 10, Height: 10})
	if err := parent.Embed(c1); err != nil {
		t.Fatal(err)
	}
	if err := parent.Embed(c2); err != nil {
		t.Fatal(err)
	}

	m := New()
	var added []string
	m.OnEvent(func(e Event) {
		if e.Name == EventCellAdded {
			added = append(added, e.Cell.ID())
		}
	})

	if err := m.AddCell(parent, Options{}); err != nil {
		t.Fatal(err)
	}

	want := []string{"parent", "c1", "c2"}
	if len(added) != len(want) {
		t.Fatalf("cell:added events = %v, want %v", added, want)
	}
	for i := range want {
		if added[i] != want[i] {
			t.Errorf("event %d = %s, want %s (parent before children)", i, added[i], want[i])
		}
	}
	if c1.Model() != m {
		t.Error("child should be owned by the model after recursive add")
	}
}

func TestModelZIndexAssignment(t *testing.T) {
	a := NewNode(NodeOptions{ID: "a", ZIndex: ptr(7)})
	b := NewNode(NodeOptions{ID: "b"})
	m := New(a, b)

	if !b.HasZIndex() {
		t.Fatal("added cell should have a z-index assigned")
	}
	if got := b.ZIndex(); got != 8 {
		t.Errorf("z-index = %d, want max+1 = 8", got)
	}
	if m.GetCells()[1] != Cell(b) {
		t.Error("b should sort above a")
	}
}

func TestModelAddCellDry(t *testing.T) {
	a := NewNode(NodeOptions{ID: "a"})
	m := New()

	if err := m.AddCell(a, Options{Dry: true}); err != nil {
		t.Fatal(err)
	}
	if m.HasCell("a") {
		t.Error("dry add must not store the cell")
	}
	if a.Model() != nil {
		t.Error("dry add must not take ownership")
	}
	if !a.HasZIndex() {
		t.Error("dry add should still prepare the z-index")
	}
}

func TestModelAddCellsEventOrder(t *testing.T) {
	m := New()
	var names []EventName
	m.OnEvent(func(e Event) { names = append(names, e.Name) })

	a := NewNode(NodeOptions{ID: "a"})
	b := NewNode(NodeOptions{ID: "b"})
	if err := m.AddCells([]Cell{a, b}, Options{}); err != nil {
		t.Fatal(err)
	}

	want := []EventName{
		EventBatchStart,
		EventCellAdded, EventNodeAdded,
		EventCellAdded, EventNodeAdded,
		EventBatchStop,
	}
	if len(names) != len(want) {
		t.Fatalf("events = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, names[i], want[i])
		}
	}
	ids := m.GetCells()
	if ids[0].ID() != "a" || ids[1].ID() != "b" {
		t.Errorf("order = [%s %s], want [a b]", ids[0].ID(), ids[1].ID())
	}
}

func TestModelRemoveCellRemovesConnectedEdges(t *testing.T) {
	m, _, b, _, ab, bc := buildTriangle(t)

	var removed []string
	m.OnEvent(func(e Event) {
		if e.Name == EventCellRemoved {
			removed = append(removed, e.Cell.ID())
		}
	})

	if !m.RemoveCell(b, Options{}) {
		t.Fatal("remove should report true")
	}
	if m.HasCell("ab") || m.HasCell("bc") {
		t.Error("edges touching the removed node must be removed by default")
	}
	if len(removed) != 3 {
		t.Errorf("cell:removed events = %v, want b and both edges", removed)
	}
	if ab.Model() != nil || bc.Model() != nil {
		t.Error("removed edges must be detached")
	}
}

func TestModelRemoveCellEventOrder(t *testing.T) {
	a := NewNode(NodeOptions{ID: "a"})
	b := NewNode(NodeOptions{ID: "b"})
	e := NewEdge(EdgeOptions{ID: "e", Source: CellTerminal("a"), Target: CellTerminal("b")})
	m := New(a, b, e)

	var removed []string
	m.OnEvent(func(ev Event) {
		if ev.Name == EventCellRemoved {
			removed = append(removed, ev.Cell.ID())
		}
	})

	m.RemoveCell(a, Options{})

	// The node goes first, then the cascade over its edges.
	if len(removed) != 2 || removed[0] != "a" || removed[1] != "e" {
		t.Errorf("cell:removed order = %v, want [a e]", removed)
	}
}

func TestModelRemoveCellDisconnectEdges(t *testing.T) {
	m, _, b, c, ab, bc := buildTriangle(t)

	m.RemoveCell(b, Options{DisconnectEdges: true})

	if !m.HasCell("ab") || !m.HasCell("bc") {
		t.Fatal("disconnect policy must keep the edges alive")
	}
	if tgt := ab.Target(); !tgt.IsPoint() || tgt.Point != (geometry.Point{}) {
		t.Errorf("ab target = %+v, want fixed point at origin", tgt)
	}
	if _, ok := ab.TargetCell(); ok {
		t.Error("disconnected terminal must not resolve to a cell")
	}
	if src := bc.Source(); !src.IsPoint() {
		t.Errorf("bc source = %+v, want fixed point", src)
	}
	if got, ok := bc.TargetCell(); !ok || got != Cell(c) {
		t.Error("untouched terminal should still resolve")
	}
}

func TestModelRemoveCellIdempotent(t *testing.T) {
	a := NewNode(NodeOptions{ID: "a"})
	m := New(a)

	if !m.RemoveCell(a, Options{}) {
		t.Fatal("first remove should report true")
	}
	if m.RemoveCell(a, Options{}) {
		t.Error("second remove should report false")
	}
	if _, ok := m.RemoveCellByID("missing", Options{}); ok {
		t.Error("removing an unknown ID should report false")
	}
}

func TestModelRemoveCellUnembeds(t *testing.T) {
	parent := NewNode(NodeOptions{ID: "parent"})
	child := NewNode(NodeOptions{ID: "child"})
	if err := parent.Embed(child); err != nil {
		t.Fatal(err)
	}
	m := New(parent)

	m.RemoveCell(child, Options{})

	if child.Parent() != nil {
		t.Error("removed cell must be detached from its parent")
	}
	if len(parent.Children()) != 0 {
		t.Error("parent must not keep a reference to the removed child")
	}
	if !m.HasCell("parent") {
		t.Error("removing a child must not remove the parent")
	}
}

func TestModelRemoveCellsBatch(t *testing.T) {
	m, a, b, _, _, _ := buildTriangle(t)

	var names []EventName
	m.OnEvent(func(e Event) { names = append(names, e.Name) })

	removed := m.RemoveCells([]Cell{a, b}, Options{})

	if len(removed) != 2 {
		t.Fatalf("removed = %d cells, want 2", len(removed))
	}
	if names[0] != EventBatchStart {
		t.Errorf("first event = %s, want batch:start", names[0])
	}
	if names[len(names)-1] != EventBatchStop {
		t.Errorf("last event = %s, want batch:stop", names[len(names)-1])
	}
}

func TestModelClear(t *testing.T) {
	n := NewNode(NodeOptions{ID: "n", Width: 10, Height: 10})
	loop := NewEdge(EdgeOptions{ID: "loop", Source: CellTerminal("n"), Target: CellTerminal("n")})
	m := New(n, loop)

	var removed []string
	var clearFlags []bool
	m.OnEvent(func(e Event) {
		if e.Name == EventCellRemoved {
			removed = append(removed, e.Cell.ID())
			clearFlags = append(clearFlags, e.Options.Clear)
		}
	})

	m.Clear(Options{})

	if m.CellCount() != 0 {
		t.Fatalf("cell count = %d, want 0", m.CellCount())
	}
	// Edges first, and each cell removed exactly once: the clear flag
	// suppresses the connected-edge side effect.
	want := []string{"loop", "n"}
	if len(removed) != len(want) {
		t.Fatalf("removed = %v, want %v", removed, want)
	}
	for i := range want {
		if removed[i] != want[i] {
			t.Errorf("removed[%d] = %s, want %s", i, removed[i], want[i])
		}
		if !clearFlags[i] {
			t.Errorf("removal %d should carry the clear flag", i)
		}
	}
}

func TestModelResetCells(t *testing.T) {
	m, a, _, _, _, _ := buildTriangle(t)

	var got Event
	m.OnEvent(func(e Event) {
		if e.Name == EventReseted {
			got = e
		}
	})

	x := NewNode(NodeOptions{ID: "x"})
	y := NewNode(NodeOptions{ID: "y"})
	m.ResetCells([]Cell{x, y}, Options{})

	if got.Name != EventReseted {
		t.Fatal("reset must emit exactly one reseted event")
	}
	if len(got.Previous) != 5 || len(got.Cells) != 2 {
		t.Errorf("previous=%d current=%d, want 5 and 2", len(got.Previous), len(got.Cells))
	}
	if a.Model() != nil {
		t.Error("departed cell must be detached")
	}
	if x.Model() != m || !x.HasZIndex() {
		t.Error("incoming cells must be owned and carry z-indices")
	}
}

func TestModelTranslate(t *testing.T) {
	a := NewNode(NodeOptions{ID: "a", X: 1, Y: 2, Width: 10, Height: 10})
	e := NewEdge(EdgeOptions{ID: "e", Source: CellTerminal("a"), Target: PointTerminal(5, 5)})
	m := New(a, e)

	var updated int
	m.OnEvent(func(ev Event) {
		if ev.Name == EventUpdated {
			updated++
		}
	})

	m.Translate(10, 20, Options{})

	if got := a.Position(); got != (geometry.Point{X: 11, Y: 22}) {
		t.Errorf("position = %+v, want (11, 22)", got)
	}
	if got := e.Target().Point; got != (geometry.Point{X: 15, Y: 25}) {
		t.Errorf("point terminal = %+v, want (15, 25)", got)
	}
	if src := e.Source(); src.CellID != "a" {
		t.Errorf("cell terminal must be untouched, got %+v", src)
	}
	if updated != 1 {
		t.Errorf("updated events = %d, want 1", updated)
	}
}

func TestModelResize(t *testing.T) {
	a := NewNode(NodeOptions{ID: "a", Width: 10, Height: 10})
	m := New(a)

	if !m.Resize("a", geometry.Size{Width: 30, Height: 40}, Options{}) {
		t.Fatal("resize should report true")
	}
	if got := a.Size(); got != (geometry.Size{Width: 30, Height: 40}) {
		t.Errorf("size = %+v", got)
	}
	if m.Resize("missing", geometry.Size{}, Options{}) {
		t.Error("resizing an unknown ID should report false")
	}
}

func TestModelBatches(t *testing.T) {
	m := New()
	if m.HasActiveBatch() {
		t.Fatal("fresh model should have no active batch")
	}

	m.StartBatch("layout", Options{})
	m.StartBatch("layout", Options{})
	if !m.HasActiveBatch("layout") {
		t.Error("nested batch should be active")
	}
	m.StopBatch("layout", Options{})
	if !m.HasActiveBatch("layout") {
		t.Error("batch should stay active until the outermost stop")
	}
	m.StopBatch("layout", Options{})
	if m.HasActiveBatch("layout") {
		t.Error("batch should be inactive after balanced stops")
	}

	// Extra stops never push the counter below zero.
	m.StopBatch("layout", Options{})
	m.StartBatch("layout", Options{})
	if !m.HasActiveBatch() {
		t.Error("batch should be active again after a fresh start")
	}
}

func TestModelExecuteBatch(t *testing.T) {
	m := New()
	var inside bool
	m.ExecuteBatch("move", Options{}, func() {
		inside = m.HasActiveBatch("move")
	})
	if !inside {
		t.Error("batch must be active inside the function")
	}
	if m.HasActiveBatch("move") {
		t.Error("batch must be stopped after the function returns")
	}
}

func TestModelEmbedCycleRejected(t *testing.T) {
	a := NewNode(NodeOptions{ID: "a"})
	b := NewNode(NodeOptions{ID: "b"})
	if err := a.Embed(b); err != nil {
		t.Fatal(err)
	}
	if err := b.Embed(a); !errors.Is(err, ErrCyclicEmbedding) {
		t.Fatalf("err = %v, want ErrCyclicEmbedding", err)
	}
	if err := a.Embed(a); !errors.Is(err, ErrCyclicEmbedding) {
		t.Fatalf("self-embed err = %v, want ErrCyclicEmbedding", err)
	}
}

func TestDescendants(t *testing.T) {
	root := NewNode(NodeOptions{ID: "root"})
	c1 := NewNode(NodeOptions{ID: "c1"})
	c2 := NewNode(NodeOptions{ID: "c2"})
	g1 := NewNode(NodeOptions{ID: "g1"})
	for _, pair := range [][2]Cell{{root, c1}, {root, c2}, {c1, g1}} {
		if err := pair[0].Embed(pair[1]); err != nil {
			t.Fatal(err)
		}
	}

	var ids []string
	for _, d := range Descendants(root) {
		ids = append(ids, d.ID())
	}
	want := []string{"c1", "g1", "c2"}
	if len(ids) != len(want) {
		t.Fatalf("descendants = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("descendants[%d] = %s, want %s (depth-first order)", i, ids[i], want[i])
		}
	}

	if !IsAncestor(root, g1) {
		t.Error("root should be an ancestor of g1")
	}
	if IsAncestor(g1, root) {
		t.Error("g1 must not be an ancestor of root")
	}
}
