package models

import (
	"slices"
	"sync"

	serverError "github.com/supakorn-kn/book-catalog/errors"
)

type Item interface {
	GetID() int
}

// BaseModel keeps items in insertion order and hands out ids that are never reused.
// All reads and writes of the item list and the id counter happen under mu.
type BaseModel[T Item] struct {
	mu     sync.RWMutex
	items  []T
	lastID int
}

// Insert calls build with the next id and appends its result. The id is consumed
// only when build succeeds.
func (m *BaseModel[T]) Insert(build func(itemID int) (T, error)) (T, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	item, err := build(m.lastID + 1)
	if err != nil {
		var zero T
		return zero, err
	}

	m.lastID++
	m.items = append(m.items, item)

	return item, nil
}

func (m *BaseModel[T]) GetByID(itemID int) (item T, found bool) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.indexOf(itemID)
	if idx < 0 {
		return
	}

	return m.items[idx], true
}

// All returns a copy of the items, so callers can not reorder or replace stored ones.
func (m *BaseModel[T]) All() []T {

	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]T, len(m.items))
	copy(items, m.items)

	return items
}

func (m *BaseModel[T]) Len() int {

	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.items)
}

// Update replaces the item holding itemID with the result of build, keeping its position.
// Existence is checked before build runs.
func (m *BaseModel[T]) Update(itemID int, build func(current T) (T, error)) (T, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	var zero T

	idx := m.indexOf(itemID)
	if idx < 0 {
		return zero, serverError.ObjectIDNotFoundError.New()
	}

	item, err := build(m.items[idx])
	if err != nil {
		return zero, err
	}

	m.items[idx] = item

	return item, nil
}

func (m *BaseModel[T]) Delete(itemID int) (T, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(itemID)
	if idx < 0 {
		var zero T
		return zero, serverError.ObjectIDNotFoundError.New()
	}

	removed := m.items[idx]
	m.items = slices.Delete(m.items, idx, idx+1)

	return removed, nil
}

func (m *BaseModel[T]) indexOf(itemID int) int {

	return slices.IndexFunc(m.items, func(item T) bool {
		return item.GetID() == itemID
	})
}
