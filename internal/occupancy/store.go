package occupancy

import (
	"sync/atomic"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
)

// Store хранит текущий снимок данных
// Rebuild целиком заменяет снимок, читатели всегда видят завершенный индекс
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{}
}

// Rebuild строит новый снимок и делает его текущим
func (s *Store) Rebuild(ds domain.Dataset) *Snapshot {
	snapshot := Build(ds)
	s.current.Store(snapshot)
	return snapshot
}

// Snapshot returns the current snapshot or ErrNotLoaded
func (s *Store) Snapshot() (*Snapshot, error) {
	snapshot := s.current.Load()
	if snapshot == nil {
		return nil, ErrNotLoaded
	}
	return snapshot, nil
}
