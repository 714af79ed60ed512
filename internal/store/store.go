// Package store keeps every submitted request's result in memory. The
// registry only grows; there is no eviction.
package store

import (
	"sync"

	"paintpreview/internal/domain"
)

// Stats summarizes the store by status. Computed by scanning all stored
// results at call time; the store is expected to stay small.
type Stats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
	Processing int `json:"processing"`
}

// ResultStore is a concurrency-safe registry of results keyed by request id.
// Each entry is written only by the one task that owns its request until the
// status turns terminal, so a single map lock is enough.
type ResultStore struct {
	mu      sync.RWMutex
	results map[string]*domain.Result
}

func New() *ResultStore {
	return &ResultStore{results: make(map[string]*domain.Result)}
}

// Put inserts or replaces the result for res.RequestID. The store keeps its
// own copy so the owning task can go on mutating its working result without
// racing concurrent readers.
func (s *ResultStore) Put(res domain.Result) {
	if res.Artifacts != nil {
		res.Artifacts = append([]domain.Artifact(nil), res.Artifacts...)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[res.RequestID] = &res
}

// Get returns a copy of the stored result, or false when the id is unknown.
// Copies keep callers from mutating store state; for a terminal request the
// returned value is identical on every call.
func (s *ResultStore) Get(id string) (domain.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.results[id]
	if !ok {
		return domain.Result{}, false
	}
	out := *res
	if res.Artifacts != nil {
		out.Artifacts = append([]domain.Artifact(nil), res.Artifacts...)
	}
	return out, true
}

// Status reports the lifecycle state for id, or StatusNotFound.
func (s *ResultStore) Status(id string) domain.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if res, ok := s.results[id]; ok {
		return res.Status
	}
	return domain.StatusNotFound
}

// Stats scans all stored results and counts them by status.
func (s *ResultStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := Stats{Total: len(s.results)}
	for _, res := range s.results {
		switch res.Status {
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusFailed:
			stats.Failed++
		case domain.StatusPending, domain.StatusProcessing:
			stats.Processing++
		}
	}
	return stats
}
