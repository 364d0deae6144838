package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlenz/cellgraph/internal/api"
	"github.com/mlenz/cellgraph/internal/config"
	"github.com/mlenz/cellgraph/internal/metrics"
	"github.com/mlenz/cellgraph/pkg/model"
)

// newServeCmd creates the serve command.
func newServeCmd() *cobra.Command {
	var (
		configPath string
		listen     string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "serve <graph-file>",
		Short: "Serve a graph over HTTP",
		Long: `Serve loads a graph file and exposes it over an HTTP API: cell and
edge lookups, neighbor and path queries, subgraph extraction, and
mutation endpoints. Prometheus metrics are exported on /metrics.

A YAML config file can set the listen address, cache directory and
watch mode; flags override it. With --watch the graph file is watched
and reloaded in place whenever it changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Server
			var err error
			switch {
			case configPath != "":
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
				if len(args) == 1 {
					cfg.Graph = args[0]
				}
			case len(args) == 1:
				cfg = config.Default(args[0])
			default:
				return fmt.Errorf("a graph file or --config is required")
			}
			if listen != "" {
				cfg.Listen = listen
			}
			if watch {
				cfg.Watch = true
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the graph file when it changes on disk")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Server) error {
	logger := loggerFromContext(ctx)

	metrics.RegisterHooks()

	store, err := api.NewStore(func() (*model.Model, error) {
		return importGraph(cfg.Graph)
	})
	if err != nil {
		return err
	}

	if cfg.Watch {
		stop, err := config.WatchFile(cfg.Graph, func() {
			metrics.GraphReloads.Inc()
			if err := store.Reload(); err != nil {
				logger.Error("Graph reload failed", "path", cfg.Graph, "error", err)
				return
			}
			logger.Info("Graph reloaded", "path", cfg.Graph)
		})
		if err != nil {
			return fmt.Errorf("watch %s: %w", cfg.Graph, err)
		}
		defer stop()
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           api.New(store, model.DefaultRegistry(), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("Serving graph", "addr", cfg.Listen, "graph", cfg.Graph, "watch", cfg.Watch)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return ctx.Err()
}
