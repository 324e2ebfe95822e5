package repositories

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Memory is a concurrent in-process store keyed by a store-assigned id.
// Entities go in and come out by value, so callers always hold snapshots;
// the only way to change stored state is through Save/Update/DeleteByID.
type Memory[T any] struct {
	nextID atomic.Int64

	mu    sync.RWMutex
	items map[int]T

	idOf  func(T) int
	norm  func(entity T, id int) T
	merge func(existing, incoming T) T
}

// NewMemory builds a store from three entity hooks: idOf extracts the id,
// norm returns a copy of the entity carrying the freshly issued id, and
// merge combines the stored entity with an incoming update (the stored id
// and creation date must win over whatever the caller passed).
func NewMemory[T any](idOf func(T) int, norm func(T, int) T, merge func(T, T) T) *Memory[T] {
	return &Memory[T]{
		items: make(map[int]T),
		idOf:  idOf,
		norm:  norm,
		merge: merge,
	}
}

// Save ignores any caller-supplied id, issues the next one and inserts.
// The counter is atomic, so concurrent saves never share an id.
func (m *Memory[T]) Save(entity T) T {
	id := int(m.nextID.Add(1))
	entity = m.norm(entity, id)

	m.mu.Lock()
	m.items[id] = entity
	m.mu.Unlock()

	return entity
}

// Update replaces the stored entity keyed by the incoming entity's id.
// The replace happens under the lock in one step, so an update racing a
// delete either lands before it or becomes a no-op, never a resurrection.
func (m *Memory[T]) Update(entity T) bool {
	id := m.idOf(entity)

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.items[id]
	if !ok {
		return false
	}
	m.items[id] = m.merge(existing, entity)
	return true
}

func (m *Memory[T]) DeleteByID(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return false
	}
	delete(m.items, id)
	return true
}

func (m *Memory[T]) FindByID(id int) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entity, ok := m.items[id]
	return entity, ok
}

// FindAll returns a snapshot in ascending id order, which matches insertion
// order because ids only grow. Callers must not rely on the ordering.
func (m *Memory[T]) FindAll() []T {
	m.mu.RLock()
	ids := make([]int, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	all := make([]T, 0, len(ids))
	for _, id := range ids {
		all = append(all, m.items[id])
	}
	m.mu.RUnlock()

	return all
}
