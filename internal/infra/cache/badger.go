package cache

import (
	"context"
	"time"

	"soko/internal/errors"

	"github.com/dgraph-io/badger/v4"
)

// Badger is an in-process service.Cache. With an empty path it keeps
// everything in memory, which suits single instance deployments and tests.
type Badger struct {
	db *badger.DB
}

// NewBadger opens the store at path, or in memory when path is empty.
func NewBadger(path string) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open badger")
	}

	return &Badger{db: db}, nil
}

// Get returns found=false for missing or expired keys.
func (c *Badger) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "badger get %s", key)
	}

	return value, true, nil
}

// Set stores value for ttl; a non-positive ttl never expires.
func (c *Badger) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), value)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}

		return txn.SetEntry(entry)
	})
	if err != nil {
		return errors.Wrapf(err, "badger set %s", key)
	}

	return nil
}

// Close flushes and closes the store.
func (c *Badger) Close() error {
	return c.db.Close()
}
