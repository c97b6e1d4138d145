package repository

import (
	"bytes"
	"context"
	"sync"
)

// MemoryStore - in-process DocumentStore, every operation is serialized by one mutex.
type MemoryStore struct {
	mu          sync.Mutex
	documents   map[string][]byte
	subscribers map[string]map[chan []byte]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		documents:   make(map[string][]byte),
		subscribers: make(map[string]map[chan []byte]struct{}),
	}
}

func (that *MemoryStore) Read(_ context.Context, path string) ([]byte, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	value, ok := that.documents[path]
	if !ok {
		return nil, ErrDocumentNotFound
	}

	return bytes.Clone(value), nil
}

func (that *MemoryStore) Write(_ context.Context, path string, value []byte) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.set(path, value)

	return nil
}

func (that *MemoryStore) Update(_ context.Context, path string, fn UpdateFunc) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	var current []byte
	if value, ok := that.documents[path]; ok {
		current = bytes.Clone(value)
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	if next != nil {
		that.set(path, next)
	}

	return nil
}

func (that *MemoryStore) Subscribe(ctx context.Context, path string) (<-chan []byte, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	out := make(chan []byte, 1)
	if value, ok := that.documents[path]; ok {
		out <- bytes.Clone(value)
	}

	if that.subscribers[path] == nil {
		that.subscribers[path] = make(map[chan []byte]struct{})
	}
	that.subscribers[path][out] = struct{}{}

	go func() {
		<-ctx.Done()

		that.mu.Lock()
		defer that.mu.Unlock()

		delete(that.subscribers[path], out)
		close(out)
	}()

	return out, nil
}

// set - caller holds the lock.
func (that *MemoryStore) set(path string, value []byte) {
	that.documents[path] = bytes.Clone(value)

	for out := range that.subscribers[path] {
		offerLatest(out, bytes.Clone(value))
	}
}
