package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mlenz/cellgraph/internal/metrics"
	apperrors "github.com/mlenz/cellgraph/pkg/errors"
	"github.com/mlenz/cellgraph/pkg/model"
	"github.com/mlenz/cellgraph/pkg/observability"
)

// Handler holds all HTTP handler dependencies.
type Handler struct {
	store    *Store
	registry *model.Registry
	logger   *log.Logger
}

// New creates the HTTP handler and registers all routes. A nil registry
// defaults to the built-in cell types; a nil logger disables request
// logging.
func New(store *Store, registry *model.Registry, logger *log.Logger) http.Handler {
	if registry == nil {
		registry = model.DefaultRegistry()
	}
	h := &Handler{store: store, registry: registry, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.instrument)

	r.Get("/healthz", h.healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/graph", h.getGraph)
		r.Post("/reload", h.reload)
		r.Post("/cells", h.addCells)
		r.Get("/cells/{id}", h.getCell)
		r.Delete("/cells/{id}", h.removeCell)
		r.Get("/cells/{id}/neighbors", h.getNeighbors)
		r.Get("/cells/{id}/edges", h.getEdges)
		r.Get("/path", h.getPath)
		r.Post("/subgraph", h.getSubGraph)
	})

	return r
}

// instrument tracks in-flight requests and logs completions.
func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPInFlight.Inc()
		defer metrics.HTTPInFlight.Dec()
		start := time.Now()
		next.ServeHTTP(w, r)
		if h.logger != nil {
			h.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
		}
	})
}

// GET /healthz: liveness probe.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"loaded_at": h.store.LoadedAt(),
	})
}

// GET /v1/graph: the full cell list with counts.
func (h *Handler) getGraph(w http.ResponseWriter, r *http.Request) {
	var out map[string]any
	h.store.Read(func(m *model.Model) {
		out = map[string]any{
			"cells":      m.ToRecords(),
			"node_count": len(m.GetNodes()),
			"edge_count": len(m.GetEdges()),
		}
	})
	writeJSON(w, http.StatusOK, out)
}

// POST /v1/reload: re-read the graph file from disk.
func (h *Handler) reload(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Reload(); err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "reload failed: %s", err))
		return
	}
	metrics.GraphReloads.Inc()
	if h.logger != nil {
		h.logger.Info("graph reloaded")
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "reloaded"})
}

// POST /v1/cells: add cells from a list of records.
func (h *Handler) addCells(w http.ResponseWriter, r *http.Request) {
	var records []model.Record
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid JSON: %s", err))
		return
	}
	if len(records) == 0 {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "at least one cell record is required"))
		return
	}

	cells := make([]model.Cell, 0, len(records))
	for i, rec := range records {
		if rec.ID != "" {
			if err := apperrors.ValidateCellID(rec.ID); err != nil {
				writeError(w, err)
				return
			}
		}
		cell, err := h.registry.Build(rec)
		if err != nil {
			writeError(w, apperrors.New(apperrors.ErrCodeInvalidCell, "cell %d: %s", i, err))
			return
		}
		cells = append(cells, cell)
	}

	err := h.store.Write(func(m *model.Model) error {
		return m.AddCells(cells, model.Options{})
	})
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeConflict, err, "%s", err))
		return
	}

	ids := make([]string, len(cells))
	for i, c := range cells {
		ids[i] = c.ID()
	}
	writeJSON(w, http.StatusCreated, map[string]any{"ids": ids})
}

// GET /v1/cells/{id}: a single cell record.
func (h *Handler) getCell(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var (
		rec   model.Record
		found bool
	)
	h.store.Read(func(m *model.Model) {
		if cell, ok := m.GetCell(id); ok {
			rec, found = cell.ToRecord(), true
		}
	})
	if !found {
		writeError(w, apperrors.New(apperrors.ErrCodeCellNotFound, "no cell %q", id))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// DELETE /v1/cells/{id}: remove a cell. With ?disconnect=true the
// connected edges survive with the dangling terminal reset to a point.
func (h *Handler) removeCell(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	opts := model.Options{DisconnectEdges: r.URL.Query().Get("disconnect") == "true"}

	removed := false
	_ = h.store.Write(func(m *model.Model) error {
		_, removed = m.RemoveCellByID(id, opts)
		return nil
	})
	if !removed {
		writeError(w, apperrors.New(apperrors.ErrCodeCellNotFound, "no cell %q", id))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"removed": id})
}

// GET /v1/cells/{id}/neighbors: neighbor records, with direction and
// deep flags from query parameters.
func (h *Handler) getNeighbors(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := r.URL.Query()
	opts := model.NeighborOptions{
		Incoming: q.Get("direction") == "incoming",
		Outgoing: q.Get("direction") == "outgoing",
		Deep:     q.Get("deep") == "true",
	}

	start := time.Now()
	var records []model.Record
	h.store.Read(func(m *model.Model) {
		for _, c := range m.GetNeighborsByID(id, opts) {
			records = append(records, c.ToRecord())
		}
	})
	observability.Query().OnQueryComplete(r.Context(), "neighbors", len(records), time.Since(start), nil)

	writeJSON(w, http.StatusOK, map[string]any{"neighbors": records})
}

// GET /v1/cells/{id}/edges: connected edge records.
func (h *Handler) getEdges(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := r.URL.Query()
	opts := model.ConnectionOptions{
		Incoming: q.Get("direction") == "incoming",
		Outgoing: q.Get("direction") == "outgoing",
		Indirect: q.Get("indirect") == "true",
		Deep:     q.Get("deep") == "true",
		Enclosed: q.Get("enclosed") == "true",
	}

	start := time.Now()
	var records []model.Record
	h.store.Read(func(m *model.Model) {
		for _, e := range m.GetConnectedEdgesByID(id, opts) {
			records = append(records, e.ToRecord())
		}
	})
	observability.Query().OnQueryComplete(r.Context(), "edges", len(records), time.Since(start), nil)

	writeJSON(w, http.StatusOK, map[string]any{"edges": records})
}

// GET /v1/path?from=&to=: shortest path as an ordered ID list.
func (h *Handler) getPath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "from and to are required"))
		return
	}
	opts := model.PathOptions{Directed: q.Get("directed") == "true"}

	start := time.Now()
	var path []string
	h.store.Read(func(m *model.Model) {
		path = m.GetShortestPath(from, to, opts)
	})
	observability.Query().OnQueryComplete(r.Context(), "path", len(path), time.Since(start), nil)

	writeJSON(w, http.StatusOK, map[string]any{
		"path":  path,
		"found": len(path) > 0,
	})
}

// subgraphRequest is the body of POST /v1/subgraph.
type subgraphRequest struct {
	IDs  []string `json:"ids"`
	Deep bool     `json:"deep"`
}

// POST /v1/subgraph: the self-contained closure of the given cells.
func (h *Handler) getSubGraph(w http.ResponseWriter, r *http.Request) {
	var req subgraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid JSON: %s", err))
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "at least one cell ID is required"))
		return
	}

	start := time.Now()
	var (
		records []model.Record
		missing string
	)
	h.store.Read(func(m *model.Model) {
		cells := make([]model.Cell, 0, len(req.IDs))
		for _, id := range req.IDs {
			cell, ok := m.GetCell(id)
			if !ok {
				missing = id
				return
			}
			cells = append(cells, cell)
		}
		for _, c := range m.GetSubGraph(cells, model.SubGraphOptions{Deep: req.Deep}) {
			records = append(records, c.ToRecord())
		}
	})
	if missing != "" {
		writeError(w, apperrors.New(apperrors.ErrCodeCellNotFound, "no cell %q", missing))
		return
	}
	observability.Query().OnQueryComplete(r.Context(), "subgraph", len(records), time.Since(start), nil)

	writeJSON(w, http.StatusOK, map[string]any{"cells": records})
}
