package models

import "sync"

// ResultsStore holds the latest results snapshot behind a RWMutex so the HTTP
// surface can read while a refresh run swaps in a fresh snapshot.
type ResultsStore struct {
	mu      sync.RWMutex
	results *Results
}

func NewResultsStore() *ResultsStore {
	return &ResultsStore{}
}

// Put replaces the snapshot wholesale. Results are never mutated in place.
func (rs *ResultsStore) Put(r *Results) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.results = r
}

// Get returns the current snapshot, or nil before the first completed run.
func (rs *ResultsStore) Get() *Results {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.results
}

func (rs *ResultsStore) Ready() bool {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.results != nil
}
