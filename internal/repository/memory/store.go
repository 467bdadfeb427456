// Package memory provides an in-process implementation of the record store,
// used by tests and by the memory storage backend.
package memory

import (
	"context"
	"math"
	"sync"
	"sync/atomic"

	"github.com/google/btree"

	"github.com/mamadbah2/organiks/internal/domain/models"
	"github.com/mamadbah2/organiks/internal/repository"
)

const treeDegree = 32

var (
	_ repository.Store[models.EggOrder] = (*Store[models.EggOrder])(nil)
	_ repository.IDAllocator            = (*Allocator)(nil)
)

type entry[R models.Record] struct {
	id     uint64
	record R
}

// Store keeps records in a B-tree ordered by id.
type Store[R models.Record] struct {
	mu   sync.RWMutex
	tree *btree.BTreeG[entry[R]]
}

// NewStore returns an empty store.
func NewStore[R models.Record]() *Store[R] {
	return &Store[R]{
		tree: btree.NewG[entry[R]](treeDegree, func(a, b entry[R]) bool { return a.id < b.id }),
	}
}

// Put inserts or replaces the record at its id.
func (s *Store[R]) Put(_ context.Context, r R) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.ReplaceOrInsert(entry[R]{id: r.RecordID(), record: r})
	return nil
}

// Get returns the record stored under id.
func (s *Store[R]) Get(_ context.Context, id uint64) (R, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found, ok := s.tree.Get(entry[R]{id: id})
	return found.record, ok, nil
}

// Remove deletes the record stored under id and returns it.
func (s *Store[R]) Remove(_ context.Context, id uint64) (R, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed, ok := s.tree.Delete(entry[R]{id: id})
	return removed.record, ok, nil
}

// Scan returns a snapshot of all records in ascending id order.
func (s *Store[R]) Scan(_ context.Context) ([]R, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]R, 0, s.tree.Len())
	s.tree.Ascend(func(e entry[R]) bool {
		records = append(records, e.record)
		return true
	})
	return records, nil
}

// Len reports the number of stored records.
func (s *Store[R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

// Allocator is a lock-free id counter starting at zero.
type Allocator struct {
	counter atomic.Uint64
}

// NewAllocator returns an allocator whose first id is start+1.
func NewAllocator(start uint64) *Allocator {
	a := &Allocator{}
	a.counter.Store(start)
	return a
}

// NextID increments the counter and returns the new value. Running out of ids
// is unrecoverable and panics.
func (a *Allocator) NextID(_ context.Context) (uint64, error) {
	for {
		current := a.counter.Load()
		if current == math.MaxUint64 {
			panic(repository.ErrIDSpaceExhausted)
		}
		if a.counter.CompareAndSwap(current, current+1) {
			return current + 1, nil
		}
	}
}

// New builds a Repository backed entirely by memory.
func New() *repository.Repository {
	return &repository.Repository{
		Poultry: NewStore[models.PoultryRecord](),
		Eggs:    NewStore[models.EggRecord](),
		Prices:  NewStore[models.EggPrice](),
		Orders:  NewStore[models.EggOrder](),
		IDs:     NewAllocator(0),
	}
}
