package model

import (
	"fmt"
	"slices"
)

// Constructor builds a cell from its serialization record. Constructors
// must produce one of the two cell variants (*Node or *Edge), typically
// with a custom type tag and variant-specific defaults.
type Constructor func(Record) (Cell, error)

// Registry maps serialized type tags to cell constructors. It is an
// explicit object handed to the deserialization entry points, not a
// process-wide table, so independent models with different type sets can
// coexist in one process.
type Registry struct {
	ctors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// DefaultRegistry creates a registry with the built-in "node" and "edge"
// constructors registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(TypeNode, NodeFromRecord)
	r.Register(TypeEdge, EdgeFromRecord)
	return r
}

// Register binds a constructor to a type tag, replacing any previous
// binding.
func (r *Registry) Register(typ string, fn Constructor) {
	r.ctors[typ] = fn
}

// Types returns the registered type tags in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.ctors))
	for typ := range r.ctors {
		types = append(types, typ)
	}
	slices.Sort(types)
	return types
}

// Build constructs a cell from rec. A record without a type tag fails
// with ErrMissingType; an unregistered tag fails with ErrUnknownType.
// Deserialization must stop on these errors rather than drop the cell:
// partial hydration would leave dangling edge references.
func (r *Registry) Build(rec Record) (Cell, error) {
	if rec.Type == "" {
		return nil, ErrMissingType
	}
	fn, ok := r.ctors[rec.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, rec.Type)
	}
	return fn(rec)
}

// NodeFromRecord is the built-in constructor for plain nodes.
func NodeFromRecord(rec Record) (Cell, error) {
	opts := NodeOptions{
		ID:     rec.ID,
		Type:   rec.Type,
		ZIndex: rec.ZIndex,
		Meta:   rec.Meta,
	}
	if rec.X != nil {
		opts.X = *rec.X
	}
	if rec.Y != nil {
		opts.Y = *rec.Y
	}
	if rec.W != nil {
		opts.Width = *rec.W
	}
	if rec.H != nil {
		opts.Height = *rec.H
	}
	return NewNode(opts), nil
}

// EdgeFromRecord is the built-in constructor for plain edges.
func EdgeFromRecord(rec Record) (Cell, error) {
	return NewEdge(EdgeOptions{
		ID:     rec.ID,
		Type:   rec.Type,
		Source: rec.Source.terminal(),
		Target: rec.Target.terminal(),
		ZIndex: rec.ZIndex,
		Meta:   rec.Meta,
	}), nil
}
