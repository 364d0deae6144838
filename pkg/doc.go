// Package pkg provides the core libraries for cellgraph.
//
// # Overview
//
// cellgraph is an in-memory data model for directed, nestable cell
// graphs: nodes with geometry, edges with flexible terminals, z-order,
// containment, and a synchronous event protocol. The pkg directory is
// organized into a few focused areas:
//
//  1. [model] - The cell graph itself: cells, collection, model,
//     queries, traversal, shortest paths, and serialization.
//  2. [geometry] - Points, sizes, and rectangles used by node geometry
//     and the spatial queries.
//  3. [graphio] - Reading and writing graph files (JSON cell lists and
//     TOML manifests).
//  4. [cache] - Content-addressed caching of query results.
//  5. [observability] - Hook interfaces that decouple the libraries
//     from any concrete metrics backend.
//  6. [errors] - Structured error codes shared by the CLI and API.
//
// # Quick Start
//
// Build a graph, query it, and write it out:
//
//	import (
//	    "os"
//	    "github.com/mlenz/cellgraph/pkg/graphio"
//	    "github.com/mlenz/cellgraph/pkg/model"
//	)
//
//	a := model.NewNode(model.NodeOptions{ID: "a", Width: 100, Height: 40})
//	b := model.NewNode(model.NodeOptions{ID: "b", X: 200, Width: 100, Height: 40})
//	e := model.NewEdge(model.EdgeOptions{
//	    Source: model.CellTerminal("a"),
//	    Target: model.CellTerminal("b"),
//	})
//
//	m := model.New(a, b, e)
//	neighbors := m.GetNeighbors(a, model.NeighborOptions{})
//	path := m.GetShortestPath("a", "b", model.PathOptions{})
//	_ = graphio.WriteJSON(m, os.Stdout)
//
// # Concurrency
//
// The model is not safe for concurrent use. Callers that share a model
// across goroutines, like the HTTP server in internal/api, must
// serialize access themselves.
//
// [model]: https://pkg.go.dev/github.com/mlenz/cellgraph/pkg/model
// [geometry]: https://pkg.go.dev/github.com/mlenz/cellgraph/pkg/geometry
// [graphio]: https://pkg.go.dev/github.com/mlenz/cellgraph/pkg/graphio
// [cache]: https://pkg.go.dev/github.com/mlenz/cellgraph/pkg/cache
// [observability]: https://pkg.go.dev/github.com/mlenz/cellgraph/pkg/observability
// [errors]: https://pkg.go.dev/github.com/mlenz/cellgraph/pkg/errors
package pkg
