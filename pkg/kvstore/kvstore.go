// Package kvstore persists the site's JSON documents under fixed string keys.
//
// Reads never fail: a missing key, an unreachable backend or a corrupt
// document all resolve to the caller's default, and every failure other than
// a plain miss is logged. Writes report success so callers can decide whether
// a lost write matters to them.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned by backends when a key has never been written.
	ErrNotFound = errors.New("kvstore: key not found")
	// ErrWriteFailed is returned by Update when the mutated document could not be stored.
	ErrWriteFailed = errors.New("kvstore: write failed")
)

// Backend is a byte-oriented key/value store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}

// Observer receives timing for every store operation.
type Observer interface {
	ObserveStoreOperation(op, outcome string, duration time.Duration)
}

// Outcomes reported to the Observer.
const (
	OutcomeHit      = "hit"
	OutcomeMiss     = "miss"
	OutcomeFallback = "fallback"
	OutcomeOK       = "ok"
	OutcomeError    = "error"
)

// Store wraps a Backend with JSON (de)serialisation and default fallback.
type Store struct {
	backend  Backend
	logger   *zap.Logger
	observer Observer
	locks    sync.Map
}

// Option customises a Store.
type Option func(*Store)

// WithObserver attaches an operation observer such as the metrics service.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.observer = o
	}
}

// New builds a Store over the given backend.
func New(backend Backend, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{backend: backend, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend exposes the underlying backend for health checks and tooling.
func (s *Store) Backend() Backend {
	return s.backend
}

// Load decodes the document under key into a T, or returns fallback() when
// the key is missing, unreadable or corrupt.
func Load[T any](ctx context.Context, s *Store, key string, fallback func() T) T {
	start := time.Now()
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.observe("get", OutcomeMiss, start)
			return fallback()
		}
		s.logger.Warn("store read failed, using default", zap.String("key", key), zap.Error(err))
		s.observe("get", OutcomeFallback, start)
		return fallback()
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.Warn("stored document is corrupt, using default", zap.String("key", key), zap.Error(err))
		s.observe("get", OutcomeFallback, start)
		return fallback()
	}
	s.observe("get", OutcomeHit, start)
	return value
}

// Exists reports whether a document has been written under key.
func (s *Store) Exists(ctx context.Context, key string) bool {
	_, err := s.backend.Get(ctx, key)
	return err == nil
}

// Set encodes value as JSON and stores it, reporting success.
func (s *Store) Set(ctx context.Context, key string, value interface{}) bool {
	start := time.Now()
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("store encode failed", zap.String("key", key), zap.Error(err))
		s.observe("set", OutcomeError, start)
		return false
	}
	if err := s.backend.Set(ctx, key, payload); err != nil {
		s.logger.Error("store write failed", zap.String("key", key), zap.Error(err))
		s.observe("set", OutcomeError, start)
		return false
	}
	s.observe("set", OutcomeOK, start)
	return true
}

// Remove deletes key, reporting success. Removing a missing key succeeds.
func (s *Store) Remove(ctx context.Context, key string) bool {
	start := time.Now()
	if err := s.backend.Remove(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error("store remove failed", zap.String("key", key), zap.Error(err))
		s.observe("remove", OutcomeError, start)
		return false
	}
	s.observe("remove", OutcomeOK, start)
	return true
}

// Keys lists stored keys starting with prefix. Backend failures yield an empty list.
func (s *Store) Keys(ctx context.Context, prefix string) []string {
	start := time.Now()
	keys, err := s.backend.Keys(ctx, prefix)
	if err != nil {
		s.logger.Warn("store key scan failed", zap.String("prefix", prefix), zap.Error(err))
		s.observe("keys", OutcomeFallback, start)
		return []string{}
	}
	s.observe("keys", OutcomeOK, start)
	return keys
}

// Update runs a read-modify-write of the document under key while holding a
// per-key lock. A mutate error aborts without writing.
func Update[T any](ctx context.Context, s *Store, key string, fallback func() T, mutate func(*T) error) (T, error) {
	unlock := s.lock(key)
	defer unlock()

	value := Load(ctx, s, key, fallback)
	if err := mutate(&value); err != nil {
		var zero T
		return zero, err
	}
	if !s.Set(ctx, key, value) {
		var zero T
		return zero, ErrWriteFailed
	}
	return value, nil
}

func (s *Store) lock(key string) func() {
	m, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *Store) observe(op, outcome string, start time.Time) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveStoreOperation(op, outcome, time.Since(start))
}
