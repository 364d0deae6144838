package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer derives cache keys for graph artifacts. Keys are content
// addressed: the graph hash is the SHA-256 of the graph file, so any
// edit to the graph invalidates every derived entry.
type Keyer interface {
	// GraphKey returns the key for a parsed graph, derived from the
	// content hash of its source file.
	GraphKey(graphHash string) string

	// QueryKey returns the key for a query result: the graph hash, the
	// operation name, and the operation parameters in order.
	QueryKey(graphHash, op string, params ...string) string
}

// DefaultKeyer derives unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// GraphKey generates a key for a parsed graph.
func (k *DefaultKeyer) GraphKey(graphHash string) string {
	return hashKey("graph", graphHash)
}

// QueryKey generates a key for a query result.
func (k *DefaultKeyer) QueryKey(graphHash, op string, params ...string) string {
	return hashKey("query", graphHash, op, params)
}

// ScopedKeyer wraps a Keyer with a prefix so separate contexts (one per
// graph file, for example) get disjoint namespaces in a shared cache
// directory.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every generated
// key. A nil inner keyer defaults to [NewDefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// GraphKey generates a prefixed graph key.
func (k *ScopedKeyer) GraphKey(graphHash string) string {
	return k.prefix + k.inner.GraphKey(graphHash)
}

// QueryKey generates a prefixed query key.
func (k *ScopedKeyer) QueryKey(graphHash, op string, params ...string) string {
	return k.prefix + k.inner.QueryKey(graphHash, op, params...)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
// The CLI hashes graph file contents with it to content-address derived
// cache entries.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
