// Package store defines the scenario repository seam. The engine itself is a
// pure function from scenario to result and never touches a repository;
// persistence is entirely the caller's concern and happens only after the
// in-memory result is fully assembled.
package store

import (
	"sort"
	"sync"

	"decisim/internal/scenario"
	"decisim/internal/simulation"
)

// Record pairs a scenario with its owned simulation result (0 or 1, replaced
// on re-run).
type Record struct {
	Scenario *scenario.Scenario
	Result   *simulation.Result
}

// ScenarioRepository is the persistence contract handed to callers of the
// engine. Implementations backed by real storage can be substituted without
// touching the engine.
type ScenarioRepository interface {
	Save(rec Record) error
	Get(id string) (Record, bool)
	List() []Record
	Delete(id string)
}

// MemoryRepository is the in-process implementation.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]Record)}
}

// Save stores or replaces the record keyed by scenario ID.
func (r *MemoryRepository) Save(rec Record) error {
	if rec.Scenario == nil || rec.Scenario.ID == "" {
		return scenario.ErrInvalidScenario
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.Scenario.ID] = rec
	return nil
}

// Get returns the record for a scenario ID.
func (r *MemoryRepository) Get(id string) (Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	return rec, ok
}

// List returns all records ordered by scenario ID.
func (r *MemoryRepository) List() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Scenario.ID < out[j].Scenario.ID })
	return out
}

// Delete removes a record; deleting an absent ID is a no-op.
func (r *MemoryRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
}
