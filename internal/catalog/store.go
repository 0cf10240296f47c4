package catalog

import (
	"sync"
	"sync/atomic"
)

// Store holds the current Catalog snapshot. Readers always observe a fully
// built catalog: Reload builds the replacement off to the side and publishes
// it with a single pointer swap. Reloads are serialized; two loads never run
// concurrently.
type Store struct {
	dir      string
	mu       sync.Mutex
	snapshot atomic.Pointer[Catalog]
}

// NewStore creates a store for the given source directory. The initial
// snapshot is empty; call Reload to populate it.
func NewStore(dir string) *Store {
	s := &Store{dir: dir}
	s.snapshot.Store(&Catalog{
		Index:  map[string]Entry{},
		Errors: []string{},
		Facets: BuildFacets(nil),
	})
	return s
}

// Reload rebuilds the catalog from the source directory and swaps it in.
func (s *Store) Reload() *Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := Load(s.dir)
	s.snapshot.Store(c)
	return c
}

// Snapshot returns the currently published catalog.
func (s *Store) Snapshot() *Catalog {
	return s.snapshot.Load()
}
