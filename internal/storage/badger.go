//go:build !js

package storage

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// badgerKV keeps the store in a BadgerDB directory.
type badgerKV struct {
	db *badger.DB
}

// Open opens (creating if needed) the database in dir. An empty dir means
// the default location under the user's data directory.
func Open(dir string) (*Storage, error) {
	if dir == "" {
		var err error
		dir, err = DatabaseDir()
		if err != nil {
			return nil, err
		}
	}
	return openBadger(badger.DefaultOptions(dir))
}

// OpenInMemory opens a store that is discarded on Close.
func OpenInMemory() (*Storage, error) {
	return openBadger(badger.DefaultOptions("").WithInMemory(true))
}

func openBadger(opts badger.Options) (*Storage, error) {
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: &badgerKV{db: db}}, nil
}

func (k *badgerKV) get(key string) ([]byte, bool, error) {
	var val []byte
	err := k.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (k *badgerKV) set(key string, val []byte) error {
	return k.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
}

func (k *badgerKV) close() error {
	return k.db.Close()
}
