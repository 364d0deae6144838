package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mlenz/cellgraph/pkg/cache"
	apperrors "github.com/mlenz/cellgraph/pkg/errors"
	"github.com/mlenz/cellgraph/pkg/graphio"
	"github.com/mlenz/cellgraph/pkg/model"
	"github.com/mlenz/cellgraph/pkg/observability"
)

// loadModel reads a graph file, decided by extension: .toml is parsed as
// a manifest, everything else as the JSON cell-list encoding. It returns
// the content hash of the file alongside the model so query results can
// be cached content-addressed.
func loadModel(path string) (*model.Model, string, error) {
	if err := apperrors.ValidateGraphPath(path); err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	hash := cache.Hash(data)

	var m *model.Model
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		m, err = graphio.ReadTOML(bytes.NewReader(data))
	} else {
		m, err = model.FromJSON(data, nil)
	}
	if err != nil {
		return nil, "", fmt.Errorf("load %s: %w", path, err)
	}
	return m, hash, nil
}

// defaultCacheDir returns the per-user cache directory for query
// results.
func defaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "cellgraph"), nil
}

// openCache builds the cache described by the flags: --no-cache yields a
// null cache, an empty --cache-dir falls back to the user default.
func openCache(dir string, disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	if dir == "" {
		var err error
		dir, err = defaultCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
	}
	return cache.NewFileCache(dir)
}

// cachedQuery memoizes the JSON result of a query keyed by graph hash,
// operation, and parameters. On a hit the compute function never runs.
func cachedQuery(ctx context.Context, c cache.Cache, graphHash, op string, params []string, compute func() (any, error)) ([]byte, error) {
	keyer := cache.NewDefaultKeyer()
	key := keyer.QueryKey(graphHash, op, params...)

	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, "query")
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, "query")

	start := time.Now()
	result, err := compute()
	observability.Query().OnQueryComplete(ctx, op, -1, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	if err := c.Set(ctx, key, data, 24*time.Hour); err == nil {
		observability.Cache().OnCacheSet(ctx, "query", len(data))
	}
	return data, nil
}
