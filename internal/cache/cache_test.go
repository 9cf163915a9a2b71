package cache

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"
)

func TestMemory_RoundTrip(t *testing.T) {
	c := NewMemory(time.Hour)
	c.Set("key", []byte("value"))

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("expected hit")
	}
	if !bytes.Equal(got, []byte("value")) {
		t.Errorf("expected %q, got %q", "value", got)
	}
}

func TestMemory_Miss(t *testing.T) {
	c := NewMemory(time.Hour)
	if _, ok := c.Get("absent"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestMemory_Expiry(t *testing.T) {
	c := NewMemory(time.Nanosecond)
	c.Set("key", []byte("value"))
	time.Sleep(time.Millisecond)

	if _, ok := c.Get("key"); ok {
		t.Error("expected expired entry to miss")
	}
	if c.Len() != 0 {
		t.Errorf("expected expired entry to be removed, %d entries left", c.Len())
	}
}

func TestMemory_GetReturnsOwnedBytes(t *testing.T) {
	c := NewMemory(time.Hour)
	c.Set("key", []byte("value"))

	first, _ := c.Get("key")
	for i := range first {
		first[i] = 'x'
	}

	second, ok := c.Get("key")
	if !ok || string(second) != "value" {
		t.Errorf("mutating a returned slice corrupted the cache: got %q (hit=%v)", second, ok)
	}
}

func TestMemory_Overwrite(t *testing.T) {
	c := NewMemory(time.Hour)
	c.Set("key", []byte("old"))
	c.Set("key", []byte("new"))

	got, ok := c.Get("key")
	if !ok || string(got) != "new" {
		t.Errorf("expected %q, got %q (hit=%v)", "new", got, ok)
	}
}

func TestBolt_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := NewBolt(path, time.Hour)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer c.Close()

	c.Set("https://example.test/index", []byte(`{"clauses":[]}`))
	got, ok := c.Get("https://example.test/index")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(got) != `{"clauses":[]}` {
		t.Errorf("unexpected value %q", got)
	}
}

func TestBolt_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := NewBolt(path, time.Hour)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	c.Set("key", []byte("persisted"))
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewBolt(path, time.Hour)
	if err != nil {
		t.Fatalf("reopen cache: %v", err)
	}
	defer reopened.Close()

	got, ok := reopened.Get("key")
	if !ok || string(got) != "persisted" {
		t.Errorf("expected persisted value, got %q (hit=%v)", got, ok)
	}
}

func TestBolt_Expiry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := NewBolt(path, time.Nanosecond)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer c.Close()

	c.Set("key", []byte("value"))
	time.Sleep(time.Millisecond)
	if _, ok := c.Get("key"); ok {
		t.Error("expected expired entry to miss")
	}
}
