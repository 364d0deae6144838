package model

// Batch names used by the model's own multi-cell operations. Callers may
// start batches under any name; these are the ones the model itself
// opens.
const (
	BatchAdd    = "add"
	BatchRemove = "remove"
	BatchClear  = "clear"
)

// StartBatch increments the named batch counter and emits batch:start.
// Batches are reentrant: the same name can be started while already
// active, and stays active until every start is matched by a stop.
//
// Batches are purely advisory bookkeeping for listeners (undo managers,
// redraw suppression); they never block or serialize mutation.
func (m *Model) StartBatch(name string, opts Options) {
	m.batches[name]++
	m.notify(Event{Name: EventBatchStart, Batch: name, Options: opts})
}

// StopBatch decrements the named batch counter and emits batch:stop.
// Stopping a batch that is not active is a no-op apart from the event.
func (m *Model) StopBatch(name string, opts Options) {
	if m.batches[name] > 0 {
		m.batches[name]--
	}
	m.notify(Event{Name: EventBatchStop, Batch: name, Options: opts})
}

// ExecuteBatch runs fn bracketed by StartBatch and StopBatch. The stop is
// issued even if fn panics.
func (m *Model) ExecuteBatch(name string, opts Options, fn func()) {
	m.StartBatch(name, opts)
	defer m.StopBatch(name, opts)
	fn()
}

// HasActiveBatch reports whether any of the named batches currently has a
// positive counter. With no arguments it reports whether any batch at all
// is active.
func (m *Model) HasActiveBatch(names ...string) bool {
	if len(names) == 0 {
		for _, count := range m.batches {
			if count > 0 {
				return true
			}
		}
		return false
	}
	for _, name := range names {
		if m.batches[name] > 0 {
			return true
		}
	}
	return false
}
