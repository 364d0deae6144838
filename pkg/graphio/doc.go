// Package graphio provides file import and export for cell graphs.
//
// # Overview
//
// This package moves graphs between [model.Model] values and files. Two
// formats are supported:
//
//   - The cell-list JSON encoding produced by [model.Model.ToJSON], in
//     any of the shapes accepted by [model.FromJSON]: a {"cells": [...]}
//     object, separate {"nodes": [...], "edges": [...]} arrays, or a bare
//     list of cell records.
//   - A TOML manifest, a hand-editable format for declaring small graphs
//     without writing JSON by hand.
//
// # JSON
//
// Use [ImportJSON] to read a graph from a file path, or [ReadJSON] to
// read from any io.Reader:
//
//	m, err := graphio.ImportJSON("graph.json", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Passing a nil registry uses the built-in "node" and "edge" cell types;
// pass a custom [model.Registry] to hydrate application-defined types.
// Use [ExportJSON] to write a graph to a file, or [WriteJSON] to write to
// any io.Writer. Export preserves identity, geometry, z-order,
// containment, terminals, and metadata, so a graph survives an
// import/export round trip unchanged.
//
// # TOML Manifest
//
// The manifest declares nodes and edges as TOML tables:
//
//	[[node]]
//	id = "api"
//	x = 0
//	y = 0
//	width = 120
//	height = 40
//
//	[[edge]]
//	source = "api"
//	target = "db"
//
// Edges reference nodes by ID; an edge naming an unknown node is an
// error. Use [ImportTOML] or [ReadTOML] to build a model from a
// manifest. There is no TOML export: the manifest is an authoring
// format, JSON is the interchange format.
//
// # Concurrency
//
// The import functions create independent models that can be used and
// modified freely after import. Exporting a model concurrently with
// mutations of that model is not safe.
package graphio
