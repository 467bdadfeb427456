// Package records implements the CRUD and query operations over poultry,
// egg inventory, egg price and egg order records.
package records

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/organiks/internal/domain/models"
	"github.com/mamadbah2/organiks/internal/repository"
)

// Service runs every record operation against a Repository. Mutations hold
// the write lock for their whole duration so that allocating an id and
// storing its record happen as one step.
type Service struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
	mu     sync.RWMutex
}

// NewService constructs a record service over repo.
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// timestamp is truncated to milliseconds, the resolution of a BSON datetime,
// so a stored record reads back equal on every backend.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *Service) allocate(ctx context.Context, kind string) (uint64, error) {
	id, err := s.repo.IDs.NextID(ctx)
	if err != nil {
		return 0, fmt.Errorf("allocate %s id: %w", kind, err)
	}
	return id, nil
}

// lookup returns the record stored under id or a NotFoundError carrying msg.
func lookup[R models.Record](ctx context.Context, store repository.Store[R], id uint64, msg string) (R, error) {
	record, ok, err := store.Get(ctx, id)
	if err != nil {
		return record, err
	}
	if !ok {
		return record, &models.NotFoundError{Msg: msg}
	}
	return record, nil
}

// remove deletes the record stored under id or returns a NotFoundError carrying msg.
func remove[R models.Record](ctx context.Context, store repository.Store[R], id uint64, msg string) (R, error) {
	record, ok, err := store.Remove(ctx, id)
	if err != nil {
		return record, err
	}
	if !ok {
		return record, &models.NotFoundError{Msg: msg}
	}
	return record, nil
}

// scanMatching returns every record accepted by keep, in id order. An empty
// result is reported as a NotFoundError carrying msg.
func scanMatching[R models.Record](ctx context.Context, store repository.Store[R], keep func(R) bool, msg string) ([]R, error) {
	all, err := store.Scan(ctx)
	if err != nil {
		return nil, err
	}

	matched := all
	if keep != nil {
		matched = make([]R, 0, len(all))
		for _, r := range all {
			if keep(r) {
				matched = append(matched, r)
			}
		}
	}

	if len(matched) == 0 {
		return nil, &models.NotFoundError{Msg: msg}
	}
	return matched, nil
}
