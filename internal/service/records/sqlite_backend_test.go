package records

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/organiks/internal/domain/models"
	"github.com/mamadbah2/organiks/internal/repository/sqlite"
)

func TestOrderPlacementOverSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.NewSQLiteRepository(ctx, filepath.Join(t.TempDir(), "farm.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := NewService(db.Repository(), nil)
	svc.now = testClock()

	_, err = svc.PlaceEggOrder(ctx, models.EggOrderPayload{CustomerName: "Alice", EggType: models.EggGrade, Quantity: 12})
	requireNotFound(t, err, "Egg price not found for egg type Grade")

	first, err := svc.SetEggPrice(ctx, models.EggPricePayload{EggType: models.EggGrade, Price: 0.5})
	require.NoError(t, err)
	_, err = svc.SetEggPrice(ctx, models.EggPricePayload{EggType: models.EggGrade, Price: 0.9})
	require.NoError(t, err)

	order, err := svc.PlaceEggOrder(ctx, models.EggOrderPayload{CustomerName: "Alice", EggType: models.EggGrade, Quantity: 12})
	require.NoError(t, err)
	assert.Equal(t, first.ID+2, order.ID)
	assert.InDelta(t, 6.0, order.TotalPrice, 1e-9)

	stored, err := svc.GetEggOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.CustomerName, stored.CustomerName)
	assert.True(t, order.CreatedAt.Equal(stored.CreatedAt))

	_, err = svc.DeleteEggPrice(ctx, first.ID)
	require.NoError(t, err)
	_, err = svc.GetEggPrice(ctx, first.ID)
	requireNotFound(t, err, "egg price with id=1 not found")
}
