// Package repository defines the persistence contracts of the record store:
// one ordered Store per record kind plus a shared id allocator.
package repository

import (
	"context"
	"errors"

	"github.com/mamadbah2/organiks/internal/domain/models"
)

// ErrIDSpaceExhausted is returned when the allocator cannot produce another id.
var ErrIDSpaceExhausted = errors.New("record id space exhausted")

// Store is an ordered mapping from record id to record.
type Store[R models.Record] interface {
	// Put inserts or replaces the record stored under r.RecordID().
	Put(ctx context.Context, r R) error
	// Get returns the record and true when present.
	Get(ctx context.Context, id uint64) (R, bool, error)
	// Remove deletes the record and returns its prior value when present.
	Remove(ctx context.Context, id uint64) (R, bool, error)
	// Scan returns every record in ascending id order.
	Scan(ctx context.Context) ([]R, error)
}

// IDAllocator hands out strictly increasing ids, starting at 1.
type IDAllocator interface {
	NextID(ctx context.Context) (uint64, error)
}

// Repository owns all record collections and the allocator shared between them.
type Repository struct {
	Poultry Store[models.PoultryRecord]
	Eggs    Store[models.EggRecord]
	Prices  Store[models.EggPrice]
	Orders  Store[models.EggOrder]
	IDs     IDAllocator
}
