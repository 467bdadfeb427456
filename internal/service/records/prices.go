package records

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/organiks/internal/domain/models"
)

// SetEggPrice stores a new price record. Existing prices for the same egg
// type are left in place.
func (s *Service) SetEggPrice(ctx context.Context, payload models.EggPricePayload) (models.EggPrice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.allocate(ctx, "egg price")
	if err != nil {
		return models.EggPrice{}, err
	}

	price := models.EggPrice{
		ID:      id,
		EggType: payload.EggType,
		Price:   payload.Price,
	}
	if err := s.repo.Prices.Put(ctx, price); err != nil {
		return models.EggPrice{}, err
	}

	s.logger.Debug("egg price set",
		zap.Uint64("id", id),
		zap.String("egg_type", price.EggType.String()),
		zap.Float64("price", price.Price))
	return price, nil
}

func (s *Service) GetEggPrice(ctx context.Context, id uint64) (models.EggPrice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(ctx, s.repo.Prices, id, fmt.Sprintf("egg price with id=%d not found", id))
}

func (s *Service) GetAllEggPrices(ctx context.Context) ([]models.EggPrice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return scanMatching(ctx, s.repo.Prices, nil, "No egg prices found.")
}

// GetEggPricesByEggType lists the prices of one egg type in id order.
func (s *Service) GetEggPricesByEggType(ctx context.Context, eggType models.EggType) ([]models.EggPrice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return scanMatching(ctx, s.repo.Prices,
		func(p models.EggPrice) bool { return p.EggType == eggType },
		fmt.Sprintf("No egg prices found for egg type: %s", eggType))
}

// UpdateEggPrice replaces the type and price of an existing record. Orders
// already placed keep their computed totals.
func (s *Service) UpdateEggPrice(ctx context.Context, id uint64, payload models.EggPricePayload) (models.EggPrice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	price, err := lookup(ctx, s.repo.Prices, id,
		fmt.Sprintf("couldn't update egg price with id=%d. price not found", id))
	if err != nil {
		return models.EggPrice{}, err
	}

	price.EggType = payload.EggType
	price.Price = payload.Price

	if err := s.repo.Prices.Put(ctx, price); err != nil {
		return models.EggPrice{}, err
	}

	s.logger.Debug("egg price updated", zap.Uint64("id", id))
	return price, nil
}

func (s *Service) DeleteEggPrice(ctx context.Context, id uint64) (models.EggPrice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	price, err := remove(ctx, s.repo.Prices, id,
		fmt.Sprintf("couldn't delete egg price with id=%d. price not found.", id))
	if err != nil {
		return models.EggPrice{}, err
	}

	s.logger.Debug("egg price deleted", zap.Uint64("id", id))
	return price, nil
}
