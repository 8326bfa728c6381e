// Package store persists client-local state (wishlist, notification
// preferences, creator subscriptions, ad rotation) behind a small key-value
// interface. Readers tolerate missing or malformed values by treating them as
// empty; nothing in this package fails because of bad stored data.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store: closed")

// KV is an origin-scoped string-keyed byte store. Get reports ok=false for a
// missing key; a missing key is not an error.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// MemoryKV is a process-local KV. Values do not survive a restart.
type MemoryKV struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, false, ErrClosed
	}
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.data = nil
	return nil
}

// Scoped prefixes every key with a client scope so that one backing store can
// hold the state of many clients. Closing a Scoped view does not close the
// backing store.
type Scoped struct {
	kv     KV
	prefix string
}

// Key roots for client and session views.
const (
	clientRoot  = "client:"
	sessionRoot = "session:"
)

// NewScoped returns a view of kv under a client scope. An empty scope maps to
// "anonymous".
func NewScoped(kv KV, scope string) *Scoped {
	return newScoped(kv, clientRoot, scope)
}

// NewSessionScoped returns a view of kv under a browser session. Session keys
// live under their own root, so no client id can reach them.
func NewSessionScoped(kv KV, sessionID string) *Scoped {
	return newScoped(kv, sessionRoot, sessionID)
}

func newScoped(kv KV, root, scope string) *Scoped {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		scope = "anonymous"
	}
	return &Scoped{kv: kv, prefix: root + scope + ":"}
}

func (s *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.kv.Get(ctx, s.prefix+key)
}

func (s *Scoped) Set(ctx context.Context, key string, value []byte) error {
	return s.kv.Set(ctx, s.prefix+key, value)
}

func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.kv.Delete(ctx, s.prefix+key)
}

func (s *Scoped) Close() error { return nil }
