package model

import "container/heap"

// PathOptions controls [Model.GetShortestPath].
type PathOptions struct {
	// Directed restricts each edge to its source→target direction. By
	// default every edge also contributes the reverse arc.
	Directed bool

	// Weight returns the cost of traversing an edge. When nil, every
	// edge costs 1.
	Weight func(*Edge) float64
}

// GetShortestPath runs a Dijkstra relaxation from source and returns the
// shortest path to target as an ordered list of cell IDs, source and
// target included. It returns an empty list when target is unreachable or
// either endpoint is unknown.
func (m *Model) GetShortestPath(source, target string, opts PathOptions) []string {
	if !m.HasCell(source) || !m.HasCell(target) {
		return nil
	}
	if source == target {
		return []string{source}
	}

	type arc struct {
		to     string
		weight float64
	}
	adjacency := make(map[string][]arc)
	for _, e := range m.GetEdges() {
		src := e.Source().CellID
		tgt := e.Target().CellID
		if src == "" || tgt == "" {
			continue
		}
		weight := 1.0
		if opts.Weight != nil {
			weight = opts.Weight(e)
		}
		adjacency[src] = append(adjacency[src], arc{tgt, weight})
		if !opts.Directed {
			adjacency[tgt] = append(adjacency[tgt], arc{src, weight})
		}
	}

	dist := map[string]float64{source: 0}
	// Predecessor links keyed by ID. Presence in the map, not the value,
	// decides reachability during reconstruction.
	prev := make(map[string]string)
	settled := make(map[string]struct{})

	queue := &pathQueue{{id: source, dist: 0}}
	for queue.Len() > 0 {
		cur := heap.Pop(queue).(pathItem)
		if _, done := settled[cur.id]; done {
			continue
		}
		settled[cur.id] = struct{}{}
		if cur.id == target {
			break
		}
		for _, a := range adjacency[cur.id] {
			candidate := cur.dist + a.weight
			if old, seen := dist[a.to]; !seen || candidate < old {
				dist[a.to] = candidate
				prev[a.to] = cur.id
				heap.Push(queue, pathItem{id: a.to, dist: candidate})
			}
		}
	}

	if _, reached := prev[target]; !reached {
		return nil
	}
	var path []string
	for id := target; ; {
		path = append(path, id)
		if id == source {
			break
		}
		next, ok := prev[id]
		if !ok {
			return nil
		}
		id = next
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type pathItem struct {
	id   string
	dist float64
}

// pathQueue is a min-heap over tentative distances. Stale duplicates are
// allowed and skipped via the settled set.
type pathQueue []pathItem

func (q pathQueue) Len() int            { return len(q) }
func (q pathQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q pathQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pathQueue) Push(x any)         { *q = append(*q, x.(pathItem)) }
func (q *pathQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
