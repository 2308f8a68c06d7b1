//go:build js

package storage

import "sync"

// memoryKV backs the browser build, where there is no filesystem for
// BadgerDB. Nothing survives a page reload.
type memoryKV struct {
	mu sync.Mutex
	m  map[string][]byte
}

// Open returns an in-memory store; dir is ignored in the browser.
func Open(dir string) (*Storage, error) {
	return OpenInMemory()
}

// OpenInMemory opens a store that is discarded on Close.
func OpenInMemory() (*Storage, error) {
	return &Storage{db: &memoryKV{m: make(map[string][]byte)}}, nil
}

func (k *memoryKV) get(key string) ([]byte, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.m[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (k *memoryKV) set(key string, val []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.m[key] = append([]byte(nil), val...)
	return nil
}

func (k *memoryKV) close() error {
	return nil
}
