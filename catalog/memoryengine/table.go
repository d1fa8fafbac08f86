package memoryengine

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var errDuplicateID = errors.New("duplicate id")

// table keeps rows of one entity kind keyed by id while remembering the insertion order.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	order  []int64
	lastID int64
}

func newTable[T any]() *table[T] {
	return &table[T]{
		rows:  make(map[int64]T),
		order: make([]int64, 0),
	}
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]

	return row, ok
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]T, 0, len(t.order))
	for _, id := range t.order {
		rows = append(rows, t.rows[id])
	}

	return rows
}

// insert stores the row under the next free id, which it hands to assign before storing.
func (t *table[T]) insert(row T, assign func(row *T, id int64)) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastID++
	assign(&row, t.lastID)
	t.rows[t.lastID] = row
	t.order = append(t.order, t.lastID)

	return t.lastID
}

// insertWithID stores a row under a caller supplied id, the id counter continues after the largest id seen.
func (t *table[T]) insertWithID(id int64, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; exists {
		return fmt.Errorf("%w: %d", errDuplicateID, id)
	}

	t.rows[id] = row
	t.order = append(t.order, id)
	t.lastID = max(t.lastID, id)

	return nil
}

func (t *table[T]) replace(id int64, row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; !exists {
		return false
	}

	t.rows[id] = row

	return true
}

func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; !exists {
		return false
	}

	delete(t.rows, id)
	t.order = slices.DeleteFunc(t.order, func(candidate int64) bool { return candidate == id })

	return true
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.rows)
}
