package mission

// Store exposes mission retrieval for HTTP handlers.
type Store interface {
	List() []Mission
	FindByID(id string) (Mission, bool)
	Default() Mission
}

// MemoryStore implements Store with an in-memory slice; the catalog is fixed
// at startup.
type MemoryStore struct {
	items []Mission
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied missions.
func NewMemoryStore(items []Mission) *MemoryStore {
	return &MemoryStore{items: append([]Mission(nil), items...)}
}

// List returns the mission catalog.
func (s *MemoryStore) List() []Mission {
	return append([]Mission(nil), s.items...)
}

// FindByID looks up a mission by identifier.
func (s *MemoryStore) FindByID(id string) (Mission, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Mission{}, false
}

// Default returns the fallback mission used for unknown identifiers.
func (s *MemoryStore) Default() Mission {
	if m, ok := s.FindByID(Soutien); ok {
		return m
	}
	return Mission{ID: Soutien}
}
