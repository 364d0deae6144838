package metrics

import (
	"context"
	"time"

	"github.com/mlenz/cellgraph/pkg/observability"
)

// RegisterHooks installs Prometheus-backed implementations of the
// observability hooks. Called once by the serve command at startup.
func RegisterHooks() {
	observability.SetModelHooks(modelHooks{})
	observability.SetQueryHooks(queryHooks{})
	observability.SetCacheHooks(cacheHooks{})
}

type modelHooks struct{}

func (modelHooks) OnCellAdded(_ context.Context, kind string) {
	CellsAdded.WithLabelValues(kind).Inc()
}

func (modelHooks) OnCellRemoved(_ context.Context, kind string) {
	CellsRemoved.WithLabelValues(kind).Inc()
}

func (modelHooks) OnBatch(_ context.Context, name string) {
	BatchesExecuted.WithLabelValues(name).Inc()
}

type queryHooks struct{}

func (queryHooks) OnQueryStart(context.Context, string) {}

func (queryHooks) OnQueryComplete(_ context.Context, op string, _ int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	Queries.WithLabelValues(op, status).Inc()
	QueryDuration.WithLabelValues(op).Observe(float64(duration.Microseconds()) / 1000)
}

type cacheHooks struct{}

func (cacheHooks) OnCacheHit(_ context.Context, keyType string) {
	CacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (cacheHooks) OnCacheMiss(_ context.Context, keyType string) {
	CacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (cacheHooks) OnCacheSet(_ context.Context, keyType string, _ int) {
	CacheOps.WithLabelValues(keyType, "set").Inc()
}
