// Package cache provides the response cache consulted by the planning API
// client before going to the network. Implementations are injected so the
// parser and renderers can be exercised with canned fragments and no I/O.
package cache

// Cache is a byte store keyed by request URL. Lookups that fail for any
// reason report a miss; Set is best effort. Get returns bytes the caller
// owns; mutating them must not affect later hits.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}
