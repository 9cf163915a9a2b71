package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var responsesBucket = []byte("responses")

type boltEntry struct {
	Value     []byte    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Bolt is a persistent TTL cache backed by a bbolt file, so repeated runs
// of the CLI reuse API responses across processes.
type Bolt struct {
	db  *bbolt.DB
	ttl time.Duration
}

// NewBolt opens or creates the cache file at path.
func NewBolt(path string, ttl time.Duration) (*Bolt, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(responsesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache bucket: %w", err)
	}
	return &Bolt{db: db, ttl: ttl}, nil
}

func (b *Bolt) Get(key string) ([]byte, bool) {
	var entry boltEntry
	err := b.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(responsesBucket).Get([]byte(key))
		if raw == nil {
			return fmt.Errorf("not found")
		}
		return json.Unmarshal(raw, &entry)
	})
	if err != nil {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		// Expired: drop it so the file does not grow without bound.
		b.db.Update(func(tx *bbolt.Tx) error {
			return tx.Bucket(responsesBucket).Delete([]byte(key))
		})
		return nil, false
	}
	return entry.Value, true
}

func (b *Bolt) Set(key string, value []byte) {
	raw, err := json.Marshal(boltEntry{
		Value:     value,
		ExpiresAt: time.Now().Add(b.ttl),
	})
	if err != nil {
		return
	}
	b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(responsesBucket).Put([]byte(key), raw)
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
