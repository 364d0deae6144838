package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "absent"); err != nil || ok {
		t.Fatalf("get absent = ok=%v err=%v, want miss", ok, err)
	}

	if err := c.Set(ctx, "k", []byte("value"), 0); err != nil {
		t.Fatal(err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get = ok=%v err=%v, want hit", ok, err)
	}
	if string(data) != "value" {
		t.Errorf("data = %q, want value", data)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("entry should be gone after delete")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("deleting a missing key should be a no-op, got %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("expired entry should report a miss")
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("null cache must never report a hit")
	}
}

func TestKeyerDerivation(t *testing.T) {
	k := NewDefaultKeyer()

	if k.GraphKey("h1") == k.GraphKey("h2") {
		t.Error("different graph hashes must derive different keys")
	}
	if k.QueryKey("h", "neighbors", "a") == k.QueryKey("h", "neighbors", "b") {
		t.Error("different parameters must derive different keys")
	}
	if k.QueryKey("h", "neighbors", "a") != k.QueryKey("h", "neighbors", "a") {
		t.Error("key derivation must be deterministic")
	}

	scoped := NewScopedKeyer(k, "graphA:")
	if scoped.GraphKey("h") == k.GraphKey("h") {
		t.Error("scoped keys must differ from unscoped keys")
	}
	if got := scoped.QueryKey("h", "path", "a", "b"); got[:7] != "graphA:" {
		t.Errorf("scoped key = %q, want graphA: prefix", got)
	}
}

func TestHash(t *testing.T) {
	h := Hash([]byte("content"))
	if len(h) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(h))
	}
	if h != Hash([]byte("content")) {
		t.Error("hash must be deterministic")
	}
	if h == Hash([]byte("other")) {
		t.Error("different content must hash differently")
	}
}
