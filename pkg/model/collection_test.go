package model

import "testing"

func newTestNode(id string, z int) *Node {
	return NewNode(NodeOptions{ID: id, ZIndex: ptr(z), Width: 10, Height: 10})
}

func TestCollectionAdd(t *testing.T) {
	c := NewCollection()
	a := newTestNode("a", 1)
	c.Add(a, Options{})

	if !c.Has("a") {
		t.Fatal("collection should contain a")
	}
	if got := c.Length(); got != 1 {
		t.Fatalf("length = %d, want 1", got)
	}

	// Duplicate IDs are a silent no-op.
	dup := newTestNode("a", 5)
	c.Add(dup, Options{})
	if got := c.Length(); got != 1 {
		t.Errorf("length after duplicate add = %d, want 1", got)
	}
	if got, _ := c.Get("a"); got != a {
		t.Error("duplicate add replaced the original cell")
	}
}

func TestCollectionAddEmitsEvent(t *testing.T) {
	c := NewCollection()
	var events []Event
	c.OnEvent(func(e Event) { events = append(events, e) })

	a := newTestNode("a", 1)
	c.Add(a, Options{})

	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Name != EventAdded || events[0].Cell != a {
		t.Errorf("unexpected event %+v", events[0])
	}
}

func TestCollectionAddPosition(t *testing.T) {
	// Cells without z-indices keep their explicit placement.
	c := NewCollection()
	a := NewNode(NodeOptions{ID: "a"})
	b := NewNode(NodeOptions{ID: "b"})
	c.Add(a, Options{})
	c.Add(b, Options{Position: ptr(1)})

	if first := c.First(); first != b {
		t.Errorf("first = %v, want b inserted before a", first.ID())
	}
}

func TestCollectionZOrder(t *testing.T) {
	c := NewCollection(newTestNode("c", 3), newTestNode("a", 1), newTestNode("b", 2))

	if got := c.First().ID(); got != "a" {
		t.Errorf("first = %s, want a", got)
	}
	if got := c.Last().ID(); got != "c" {
		t.Errorf("last = %s, want c", got)
	}

	cells := c.ToArray()
	for i, want := range []string{"a", "b", "c"} {
		if cells[i].ID() != want {
			t.Errorf("cells[%d] = %s, want %s", i, cells[i].ID(), want)
		}
	}
}

func TestCollectionRemove(t *testing.T) {
	a := newTestNode("a", 1)
	c := NewCollection(a)

	var events []Event
	c.OnEvent(func(e Event) { events = append(events, e) })

	if !c.Remove(a, Options{Clear: true}) {
		t.Fatal("remove should report true")
	}
	if c.Has("a") {
		t.Error("cell still present after remove")
	}
	if len(events) != 1 || events[0].Name != EventRemoved {
		t.Fatalf("unexpected events %+v", events)
	}
	if !events[0].Options.Clear {
		t.Error("removal event must carry the triggering options")
	}

	// Removing an absent cell is a no-op.
	if c.Remove(a, Options{}) {
		t.Error("second remove should report false")
	}
}

func TestCollectionReset(t *testing.T) {
	a := newTestNode("a", 1)
	c := NewCollection(a)

	var got Event
	c.OnEvent(func(e Event) { got = e })

	b := newTestNode("b", 2)
	d := newTestNode("d", 1)
	c.Reset([]Cell{b, d}, Options{})

	if got.Name != EventReseted {
		t.Fatalf("event = %s, want reseted", got.Name)
	}
	if len(got.Previous) != 1 || got.Previous[0] != a {
		t.Errorf("previous = %v, want [a]", got.Previous)
	}
	if len(got.Cells) != 2 {
		t.Errorf("current = %d cells, want 2", len(got.Cells))
	}
	if c.First().ID() != "d" {
		t.Errorf("reset should sort by z-index, first = %s", c.First().ID())
	}
}

func TestCollectionSort(t *testing.T) {
	a := newTestNode("a", 1)
	b := newTestNode("b", 2)
	c := NewCollection(a, b)

	var sorted bool
	c.OnEvent(func(e Event) {
		if e.Name == EventSorted {
			sorted = true
		}
	})

	a.SetZIndex(10)
	c.Sort()

	if !sorted {
		t.Error("sort must emit a sorted event")
	}
	if c.Last() != a {
		t.Errorf("last after sort = %s, want a", c.Last().ID())
	}
}

func TestCollectionIndexOf(t *testing.T) {
	a := newTestNode("a", 1)
	b := newTestNode("b", 2)
	c := NewCollection(a, b)

	if got := c.IndexOf(b); got != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", got)
	}
	if got := c.IndexOf(newTestNode("x", 0)); got != -1 {
		t.Errorf("IndexOf(absent) = %d, want -1", got)
	}
}

func TestCollectionOnEventCancel(t *testing.T) {
	c := NewCollection()
	calls := 0
	cancel := c.OnEvent(func(Event) { calls++ })

	c.Add(newTestNode("a", 1), Options{})
	cancel()
	c.Add(newTestNode("b", 2), Options{})

	if calls != 1 {
		t.Errorf("calls = %d, want 1 after cancel", calls)
	}
}

func TestCollectionOnEventCancelDuringNotify(t *testing.T) {
	c := NewCollection()

	first, last := 0, 0
	var cancelSelf func()
	c.OnEvent(func(Event) { first++ })
	cancelSelf = c.OnEvent(func(Event) { cancelSelf() })
	c.OnEvent(func(Event) { last++ })

	c.Add(newTestNode("a", 1), Options{})

	// A handler unsubscribing itself mid-delivery must not shift the
	// remaining handlers: each one still runs exactly once.
	if first != 1 || last != 1 {
		t.Errorf("handler calls = %d/%d, want 1/1", first, last)
	}

	c.Add(newTestNode("b", 2), Options{})
	if first != 2 || last != 2 {
		t.Errorf("handler calls after second add = %d/%d, want 2/2", first, last)
	}
}
