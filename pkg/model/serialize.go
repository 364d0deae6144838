package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is the plain serialization form of a cell: type tag, identity,
// geometry, terminals, containment references by ID, and user metadata.
// It is the unit of the cell-list encoding produced by [Model.ToJSON].
type Record struct {
	Type     string          `json:"type"`
	ID       string          `json:"id,omitempty"`
	ZIndex   *int            `json:"zIndex,omitempty"`
	Parent   string          `json:"parent,omitempty"`
	Children []string        `json:"children,omitempty"`
	X        *float64        `json:"x,omitempty"`
	Y        *float64        `json:"y,omitempty"`
	W        *float64        `json:"width,omitempty"`
	H        *float64        `json:"height,omitempty"`
	Source   *TerminalRecord `json:"source,omitempty"`
	Target   *TerminalRecord `json:"target,omitempty"`
	Meta     Metadata        `json:"meta,omitempty"`
}

// TerminalRecord serializes an edge terminal: a cell reference or a fixed
// point.
type TerminalRecord struct {
	Cell   string   `json:"cell,omitempty"`
	Port   string   `json:"port,omitempty"`
	Anchor string   `json:"anchor,omitempty"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
}

func terminalRecord(t Terminal) *TerminalRecord {
	rec := &TerminalRecord{Cell: t.CellID, Port: t.Port, Anchor: t.Anchor}
	if t.IsPoint() {
		rec.X = ptr(t.Point.X)
		rec.Y = ptr(t.Point.Y)
	}
	return rec
}

// terminal converts the record back; a nil record is a fixed point at the
// origin.
func (r *TerminalRecord) terminal() Terminal {
	if r == nil {
		return Terminal{}
	}
	t := Terminal{CellID: r.Cell, Port: r.Port, Anchor: r.Anchor}
	if r.X != nil {
		t.Point.X = *r.X
	}
	if r.Y != nil {
		t.Point.Y = *r.Y
	}
	return t
}

// CellList is the top-level shape of the cell-list encoding.
type CellList struct {
	Cells []Record `json:"cells"`
}

// ToRecords reduces every cell to its serialization record, in z-order.
func (m *Model) ToRecords() []Record {
	cells := m.GetCells()
	records := make([]Record, len(cells))
	for i, cell := range cells {
		records[i] = cell.ToRecord()
	}
	return records
}

// ToJSON encodes the model as {"cells": [...]}.
func (m *Model) ToJSON() ([]byte, error) {
	data, err := json.Marshal(CellList{Cells: m.ToRecords()})
	if err != nil {
		return nil, fmt.Errorf("encode cells: %w", err)
	}
	return data, nil
}

// document mirrors the accepted top-level input shapes: a cells array, or
// separate nodes/edges arrays.
type document struct {
	Cells []Record `json:"cells"`
	Nodes []Record `json:"nodes"`
	Edges []Record `json:"edges"`
}

// FromJSON builds a model from the cell-list encoding. The input may be
// an object with a "cells" array, an object with "nodes" and "edges"
// arrays, or a bare list of cell records. Records in the nodes and edges
// arrays default to the "node" and "edge" types; a record in the cells
// array without a recognized type is a hard error.
func FromJSON(data []byte, reg *Registry) (*Model, error) {
	var records []Record

	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("[")) {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode cells: %w", err)
		}
		return FromRecords(records, reg)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode cells: %w", err)
	}
	records = append(records, doc.Cells...)
	for _, rec := range doc.Nodes {
		if rec.Type == "" {
			rec.Type = TypeNode
		}
		records = append(records, rec)
	}
	for _, rec := range doc.Edges {
		if rec.Type == "" {
			rec.Type = TypeEdge
		}
		records = append(records, rec)
	}
	return FromRecords(records, reg)
}

// FromRecords hydrates a model from cell records using the registry's
// constructors, re-establishing containment from the parent references.
// Construction stops on the first invalid record: an unknown type, a
// duplicate ID, or a dangling parent reference.
func FromRecords(records []Record, reg *Registry) (*Model, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	cells := make([]Cell, 0, len(records))
	byID := make(map[string]Cell, len(records))
	for i, rec := range records {
		cell, err := reg.Build(rec)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		if _, dup := byID[cell.ID()]; dup {
			return nil, fmt.Errorf("cell %d: duplicate cell ID %q", i, cell.ID())
		}
		cells = append(cells, cell)
		byID[cell.ID()] = cell
	}

	for i, rec := range records {
		if rec.Parent == "" {
			continue
		}
		parent, ok := byID[rec.Parent]
		if !ok {
			return nil, fmt.Errorf("cell %q: unknown parent %q", cells[i].ID(), rec.Parent)
		}
		if err := parent.Embed(cells[i]); err != nil {
			return nil, fmt.Errorf("cell %q: %w", cells[i].ID(), err)
		}
	}

	m := New()
	m.ResetCells(cells, Options{})
	return m, nil
}
