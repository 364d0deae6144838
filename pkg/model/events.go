package model

// EventName identifies a structural change published by a Collection or a
// Model. Collection-level names describe raw storage changes; the Model
// republishes them with the richer cell/node/edge vocabulary.
type EventName string

// Collection-level events.
const (
	EventAdded   EventName = "added"
	EventRemoved EventName = "removed"
	EventReseted EventName = "reseted"
	EventSorted  EventName = "sorted"
	EventUpdated EventName = "updated"
)

// Model-level events.
const (
	EventCellAdded   EventName = "cell:added"
	EventCellRemoved EventName = "cell:removed"
	EventNodeAdded   EventName = "node:added"
	EventNodeRemoved EventName = "node:removed"
	EventEdgeAdded   EventName = "edge:added"
	EventEdgeRemoved EventName = "edge:removed"
	EventBatchStart  EventName = "batch:start"
	EventBatchStop   EventName = "batch:stop"
)

// Event carries a structural change to subscribers. Only the fields
// relevant to the event name are populated: Cell for single-cell events,
// Cells/Previous for reseted and updated, Batch for batch events.
// Options is always the options value of the triggering mutation.
type Event struct {
	Name     EventName
	Cell     Cell
	Cells    []Cell
	Previous []Cell
	Batch    string
	Options  Options
}

// Handler receives events. Handlers run synchronously on the mutating
// goroutine, in subscription order, in the exact order mutations were
// applied.
type Handler func(Event)

// Options carries the per-mutation flags recognized by the model, plus an
// open-ended Extra map that is passed through to event subscribers
// untouched.
//
// Position is an offset from the end of the collection: 0 appends at the
// very end, 1 inserts before the last cell, and so on. Multi-cell adds use
// descending position hints so the relative insertion order survives in
// the options each listener receives.
type Options struct {
	// Position, when non-nil, is the insertion offset from the end of the
	// collection.
	Position *int

	// Clear marks a removal as part of a whole-model wipe. It suppresses
	// the per-cell connected-edge cleanup.
	Clear bool

	// DisconnectEdges selects the alternative removal policy: edges
	// touching a removed cell are detached to a fixed point instead of
	// being removed.
	DisconnectEdges bool

	// Dry prepares a cell without attaching model ownership.
	Dry bool

	// Extra holds caller-defined fields consumed by listeners, not by the
	// model itself.
	Extra map[string]any
}

// emitter is the shared synchronous fanout used by Collection and Model.
type emitter struct {
	handlers []*Handler
}

// on registers h and returns a cancel function that removes it.
func (e *emitter) on(h Handler) func() {
	ptr := &h
	e.handlers = append(e.handlers, ptr)
	return func() {
		for i, p := range e.handlers {
			if p == ptr {
				e.handlers = append(e.handlers[:i], e.handlers[i+1:]...)
				return
			}
		}
	}
}

// notify invokes every registered handler in subscription order. The
// slice is snapshotted first so a handler cancelling a subscription
// mid-delivery cannot shift the remaining handlers under the loop.
func (e *emitter) notify(ev Event) {
	handlers := make([]*Handler, len(e.handlers))
	copy(handlers, e.handlers)
	for _, p := range handlers {
		(*p)(ev)
	}
}
