package catalog

import (
	"sync"

	"github.com/rs/zerolog"
)

// Store holds the current catalog snapshot and swaps in replacements
// atomically. Readers always see a complete snapshot.
type Store struct {
	mu      sync.RWMutex
	current *Catalog
	builder *Builder
	log     zerolog.Logger
}

// NewStore creates a store and builds the initial snapshot.
func NewStore(builder *Builder, log zerolog.Logger) *Store {
	return &Store{
		current: builder.Build(),
		builder: builder,
		log:     log.With().Str("component", "catalog_store").Logger(),
	}
}

// Current returns the snapshot in effect.
func (s *Store) Current() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Refresh builds a new snapshot, swaps it in, and returns it. The old
// snapshot is discarded, not mutated.
func (s *Store) Refresh() *Catalog {
	fresh := s.builder.Build()

	s.mu.Lock()
	s.current = fresh
	s.mu.Unlock()

	s.log.Debug().Time("refreshed_at", fresh.RefreshedAt()).Msg("Catalog snapshot replaced")
	return fresh
}
