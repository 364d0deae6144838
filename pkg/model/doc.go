// Package model provides the in-memory graph data model at the heart of
// cellgraph: a directed, nestable graph of nodes and edges with a
// batched mutation protocol, change notification, and the traversal and
// query algorithms built on top.
//
// # Overview
//
// The model is organized in three layers. [Cell] is the polymorphic
// graph element, either a [Node] (position and size) or an [Edge]
// (source and target [Terminal]); cells own identity, z-order,
// parent/child containment, and user metadata. [Collection] is an
// ordered, id-indexed set of cells emitting low-level structural events.
// [Model] orchestrates a collection into a graph: it classifies cells
// into node and edge membership caches, batches mutations into named
// transactions, republishes events with the richer cell/node/edge
// vocabulary, and answers every graph-shape query.
//
// # Basic Usage
//
// Create a model with [New], build cells with [NewNode] and [NewEdge],
// and add them with [Model.AddCell] or the typed convenience methods:
//
//	m := model.New()
//	a := model.NewNode(model.NodeOptions{ID: "a", Width: 80, Height: 40})
//	b := model.NewNode(model.NodeOptions{ID: "b", X: 200, Width: 80, Height: 40})
//	m.AddNode(a, model.Options{})
//	m.AddNode(b, model.Options{})
//	m.AddEdge(model.NewEdge(model.EdgeOptions{
//		Source: model.CellTerminal("a"),
//		Target: model.CellTerminal("b"),
//	}), model.Options{})
//
// Query the graph with [Model.GetNeighbors], [Model.GetConnectedEdges],
// [Model.GetShortestPath], [Model.GetSubGraph], and the spatial queries;
// traverse it with [Model.Search]. None of the queries mutate state.
//
// # Events and Batches
//
// Every mutation emits events to subscribers registered with
// [Model.OnEvent], in the exact order mutations were applied. Multi-cell
// operations are bracketed by named, reentrant batches (see
// [Model.StartBatch]) so listeners can tell many small events of one
// logical edit from isolated edits. Batches are advisory only; they
// never block mutation.
//
// # Terminals
//
// An edge terminal is either a fixed point or a reference to another
// cell, including another edge. Edges attached to edges are followed by
// the Indirect option of [Model.GetConnectedEdges]. Terminal resolution
// via [Edge.SourceCell] and [Edge.TargetCell] uses explicit presence
// returns; a dangling reference resolves to (nil, false), never a panic.
//
// # Serialization
//
// [Model.ToJSON] produces the plain cell-list encoding and [FromJSON]
// rebuilds a model from it, dispatching each record's type tag through
// an explicit [Registry]. Unknown types are a hard error: partial
// hydration would leave dangling edge references.
//
// # Concurrency
//
// Model instances are not safe for concurrent use. Every mutation and
// query is synchronous and runs to completion on the calling goroutine;
// event handlers run inline. Callers must synchronize access if multiple
// goroutines share a model.
package model
