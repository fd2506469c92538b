package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is an in-memory Store for tests.
type Memory struct {
	mu    sync.Mutex
	blobs map[string]json.RawMessage
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]json.RawMessage)}
}

func (m *Memory) Load(_ context.Context, key string, dest any) (bool, error) {
	m.mu.Lock()
	raw, ok := m.blobs[key]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, &ErrDeserialization{Key: key, Err: err}
	}
	return true, nil
}

func (m *Memory) Save(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal blob %q: %w", key, err)
	}
	m.mu.Lock()
	m.blobs[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.blobs, key)
	m.mu.Unlock()
	return nil
}

// PutRaw stores a raw blob verbatim. Used by tests to inject malformed data.
func (m *Memory) PutRaw(key string, raw []byte) {
	m.mu.Lock()
	m.blobs[key] = json.RawMessage(raw)
	m.mu.Unlock()
}

// Has reports whether a blob exists at key.
func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.blobs[key]
	return ok
}
