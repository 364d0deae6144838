// Package config loads the serve command's YAML configuration and
// watches the graph file for changes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Server is the configuration for the cellgraph HTTP server.
type Server struct {
	// Listen is the address the HTTP server binds to.
	Listen string `yaml:"listen"`

	// Graph is the path of the graph file served. JSON and TOML
	// manifests are both accepted, decided by file extension.
	Graph string `yaml:"graph"`

	// CacheDir is the directory for the query result cache. Empty
	// disables caching.
	CacheDir string `yaml:"cache_dir"`

	// CacheTTLSeconds bounds the age of cached query results.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`

	// Watch enables hot-reload of the graph file.
	Watch bool `yaml:"watch"`
}

// Load reads a YAML server config from path and applies defaults.
func Load(path string) (*Server, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Server
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if cfg.Graph == "" {
		return nil, fmt.Errorf("config %s: graph path is required", path)
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default(graphPath string) *Server {
	cfg := &Server{Graph: graphPath}
	cfg.applyDefaults()
	return cfg
}

func (c *Server) applyDefaults() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.CacheTTLSeconds == 0 {
		c.CacheTTLSeconds = 3600
	}
}
