package records

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/organiks/internal/domain/models"
)

// AddPoultryRecord stores a new poultry record.
func (s *Service) AddPoultryRecord(ctx context.Context, payload models.PoultryRecordPayload) (models.PoultryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.allocate(ctx, "poultry record")
	if err != nil {
		return models.PoultryRecord{}, err
	}

	record := models.PoultryRecord{
		ID:            id,
		Breed:         payload.Breed,
		Age:           payload.Age,
		EggProduction: payload.EggProduction,
		CreatedAt:     s.timestamp(),
	}
	if err := s.repo.Poultry.Put(ctx, record); err != nil {
		return models.PoultryRecord{}, err
	}

	s.logger.Debug("poultry record added", zap.Uint64("id", id), zap.String("breed", record.Breed))
	return record, nil
}

// GetPoultryRecord returns the poultry record with the given id.
func (s *Service) GetPoultryRecord(ctx context.Context, id uint64) (models.PoultryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(ctx, s.repo.Poultry, id, fmt.Sprintf("a poultry record with id=%d not found", id))
}

// GetAllPoultryRecords lists every poultry record. An empty flock is a NotFound error.
func (s *Service) GetAllPoultryRecords(ctx context.Context) ([]models.PoultryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return scanMatching(ctx, s.repo.Poultry, nil, "No poultry records found.")
}

// UpdatePoultryRecord replaces the mutable fields of a poultry record.
func (s *Service) UpdatePoultryRecord(ctx context.Context, id uint64, payload models.PoultryRecordPayload) (models.PoultryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := lookup(ctx, s.repo.Poultry, id,
		fmt.Sprintf("couldn't update a poultry record with id=%d. record not found", id))
	if err != nil {
		return models.PoultryRecord{}, err
	}

	updatedAt := s.timestamp()
	record.Breed = payload.Breed
	record.Age = payload.Age
	record.EggProduction = payload.EggProduction
	record.UpdatedAt = &updatedAt

	if err := s.repo.Poultry.Put(ctx, record); err != nil {
		return models.PoultryRecord{}, err
	}

	s.logger.Debug("poultry record updated", zap.Uint64("id", id))
	return record, nil
}

// DeletePoultryRecord removes a poultry record and returns it.
func (s *Service) DeletePoultryRecord(ctx context.Context, id uint64) (models.PoultryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := remove(ctx, s.repo.Poultry, id,
		fmt.Sprintf("couldn't delete a poultry record with id=%d. record not found.", id))
	if err != nil {
		return models.PoultryRecord{}, err
	}

	s.logger.Debug("poultry record deleted", zap.Uint64("id", id))
	return record, nil
}
