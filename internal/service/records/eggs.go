package records

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/organiks/internal/domain/models"
)

// AddEggRecord stores a new egg collection record. Cracked and total counts
// are stored as given.
func (s *Service) AddEggRecord(ctx context.Context, payload models.EggRecordPayload) (models.EggRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.allocate(ctx, "egg record")
	if err != nil {
		return models.EggRecord{}, err
	}

	record := models.EggRecord{
		ID:              id,
		EggType:         payload.EggType,
		TotalEggCount:   payload.TotalEggCount,
		CrackedEggCount: payload.CrackedEggCount,
		CreatedAt:       s.timestamp(),
	}
	if err := s.repo.Eggs.Put(ctx, record); err != nil {
		return models.EggRecord{}, err
	}

	s.logger.Debug("egg record added",
		zap.Uint64("id", id),
		zap.String("egg_type", record.EggType.String()),
		zap.Uint32("total", record.TotalEggCount))
	return record, nil
}

func (s *Service) GetEggRecord(ctx context.Context, id uint64) (models.EggRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(ctx, s.repo.Eggs, id, fmt.Sprintf("an egg record with id=%d not found", id))
}

func (s *Service) GetAllEggRecords(ctx context.Context) ([]models.EggRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return scanMatching(ctx, s.repo.Eggs, nil, "No egg records found.")
}

// SearchEggRecordsByEggType lists the egg records of one type in id order.
func (s *Service) SearchEggRecordsByEggType(ctx context.Context, eggType models.EggType) ([]models.EggRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return scanMatching(ctx, s.repo.Eggs,
		func(r models.EggRecord) bool { return r.EggType == eggType },
		fmt.Sprintf("no egg records found for egg type: %s", eggType))
}

func (s *Service) UpdateEggRecord(ctx context.Context, id uint64, payload models.EggRecordPayload) (models.EggRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := lookup(ctx, s.repo.Eggs, id,
		fmt.Sprintf("couldn't update an egg record with id=%d. record not found", id))
	if err != nil {
		return models.EggRecord{}, err
	}

	updatedAt := s.timestamp()
	record.EggType = payload.EggType
	record.TotalEggCount = payload.TotalEggCount
	record.CrackedEggCount = payload.CrackedEggCount
	record.UpdatedAt = &updatedAt

	if err := s.repo.Eggs.Put(ctx, record); err != nil {
		return models.EggRecord{}, err
	}

	s.logger.Debug("egg record updated", zap.Uint64("id", id))
	return record, nil
}

func (s *Service) DeleteEggRecord(ctx context.Context, id uint64) (models.EggRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := remove(ctx, s.repo.Eggs, id,
		fmt.Sprintf("couldn't delete an egg record with id=%d. record not found.", id))
	if err != nil {
		return models.EggRecord{}, err
	}

	s.logger.Debug("egg record deleted", zap.Uint64("id", id))
	return record, nil
}
