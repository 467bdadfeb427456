package records

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/organiks/internal/domain/models"
)

// PlaceEggOrder prices and stores a new order. The unit price is the
// lowest-id price record for the requested egg type. The price is resolved
// before an id is allocated, so a failed placement changes nothing and does
// not consume an id. Allocating first would leave a gap in the id sequence
// for every order of an unpriced egg type.
func (s *Service) PlaceEggOrder(ctx context.Context, payload models.EggOrderPayload) (models.EggOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unitPrice, err := s.currentPrice(ctx, payload.EggType)
	if err != nil {
		return models.EggOrder{}, err
	}

	id, err := s.allocate(ctx, "egg order")
	if err != nil {
		return models.EggOrder{}, err
	}

	order := models.EggOrder{
		ID:           id,
		CustomerName: payload.CustomerName,
		EggType:      payload.EggType,
		Quantity:     payload.Quantity,
		TotalPrice:   unitPrice.Price * float64(payload.Quantity),
		CreatedAt:    s.timestamp(),
	}
	if err := s.repo.Orders.Put(ctx, order); err != nil {
		return models.EggOrder{}, err
	}

	s.logger.Debug("egg order placed",
		zap.Uint64("id", id),
		zap.Uint64("price_id", unitPrice.ID),
		zap.String("customer", order.CustomerName),
		zap.Float64("total_price", order.TotalPrice))
	return order, nil
}

// currentPrice returns the first price of eggType in store order.
func (s *Service) currentPrice(ctx context.Context, eggType models.EggType) (models.EggPrice, error) {
	prices, err := s.repo.Prices.Scan(ctx)
	if err != nil {
		return models.EggPrice{}, err
	}
	for _, p := range prices {
		if p.EggType == eggType {
			return p, nil
		}
	}
	return models.EggPrice{}, models.NotFoundf("Egg price not found for egg type %s", eggType)
}

func (s *Service) GetEggOrder(ctx context.Context, id uint64) (models.EggOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(ctx, s.repo.Orders, id, fmt.Sprintf("Egg order with id=%d not found", id))
}

func (s *Service) GetAllOrders(ctx context.Context) ([]models.EggOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return scanMatching(ctx, s.repo.Orders, nil, "No egg orders found.")
}
