package storage

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// Bucket and key for the handle cache.
const (
	bucketHandles = "handles"
	keyLastFile   = "last-file"
)

// HandleCache remembers the last opened budget file across runs in a
// small bbolt database.
//
// It is strictly best-effort: when it cannot be opened the application
// degrades to "no remembered file" instead of failing.
type HandleCache struct {
	db *bolt.DB
}

// OpenHandleCache opens or creates the cache database at the passed path.
func OpenHandleCache(path string) (*HandleCache, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open handle cache: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketHandles))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize handle cache: %w", err)
	}

	return &HandleCache{db: db}, nil
}

// Close closes the cache database.
func (c *HandleCache) Close() error {
	return c.db.Close()
}

// Save remembers the passed file path.
func (c *HandleCache) Save(path string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketHandles)).Put([]byte(keyLastFile), []byte(path))
	})
}

// Get returns the remembered file path. The second return value is
// false when no file has been remembered yet.
func (c *HandleCache) Get() (string, bool) {
	var path string
	_ = c.db.View(func(tx *bolt.Tx) error {
		path = string(tx.Bucket([]byte(bucketHandles)).Get([]byte(keyLastFile)))
		return nil
	})

	return path, path != ""
}
