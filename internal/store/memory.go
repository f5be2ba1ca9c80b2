package store

import "sync"

// Memory implements Collection in memory. Services are tested against it so
// the file layer stays out of the way.
type Memory[T any] struct {
	mu    sync.Mutex
	items []T
}

func NewMemory[T any](items ...T) *Memory[T] {
	return &Memory[T]{items: append([]T{}, items...)}
}

func (m *Memory[T]) GetAll() ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]T{}, m.items...), nil
}

func (m *Memory[T]) SaveAll(items []T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]T{}, items...)
	return nil
}

func (m *Memory[T]) Add(item T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, item)
	return item, nil
}

func (m *Memory[T]) Update(match func(T) bool, apply func(T) T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if match(item) {
			m.items[i] = apply(item)
			return m.items[i], nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

func (m *Memory[T]) Delete(match func(T) bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[:0:0]
	for _, item := range m.items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(m.items) {
		return false, nil
	}
	m.items = kept
	return true, nil
}

func (m *Memory[T]) Find(match func(T) bool) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if match(m.items[i]) {
			item := m.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

// MemorySingle implements Single in memory for tests.
type MemorySingle[T any] struct {
	mu    sync.Mutex
	value T
}

func NewMemorySingle[T any](value T) *MemorySingle[T] {
	return &MemorySingle[T]{value: value}
}

func (m *MemorySingle[T]) Get() (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

func (m *MemorySingle[T]) Save(value T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	return nil
}
