//go:build integration

// Integration tests against a live MongoDB.
// Run with: MONGODB_TEST_URI=mongodb://localhost:27017 go test -tags=integration ./internal/repository/mongodb/...
package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/organiks/internal/domain/models"
)

func setupRepository(t *testing.T) *MongoDBRepository {
	t.Helper()

	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbName := "organiks_test_" + uuid.NewString()[:8]
	repo, err := NewMongoDBRepository(ctx, uri, dbName, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = repo.db.Drop(ctx)
		_ = repo.Close(ctx)
	})
	return repo
}

func TestCollectionStoreLifecycle(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	store := repo.Repository().Poultry

	created := time.Now().UTC().Truncate(time.Millisecond)
	for _, id := range []uint64{7, 3, 5} {
		require.NoError(t, store.Put(ctx, models.PoultryRecord{ID: id, Breed: "Kuroiler", Age: 4, CreatedAt: created}))
	}

	records, err := store.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []uint64{3, 5, 7}, []uint64{records[0].ID, records[1].ID, records[2].ID})

	got, ok, err := store.Get(ctx, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Kuroiler", got.Breed)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.Nil(t, got.UpdatedAt)

	got.Age = 5
	updated := created.Add(time.Hour)
	got.UpdatedAt = &updated
	require.NoError(t, store.Put(ctx, got))

	got, ok, err = store.Get(ctx, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(5), got.Age)
	require.NotNil(t, got.UpdatedAt)

	removed, ok, err := store.Remove(ctx, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(5), removed.ID)

	_, ok, err = store.Remove(ctx, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCounterIsMonotonic(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	ids := repo.Repository().IDs

	first, err := ids.NextID(ctx)
	require.NoError(t, err)
	second, err := ids.NextID(ctx)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first)
	assert.Equal(t, uint64(2), second)
}

func TestSaveDailyReport(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	err := repo.SaveDailyReport(ctx, models.DailyReport{
		Date:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EggsCollected: 120,
		CreatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)

	count, err := repo.db.Collection(reportsCollection).CountDocuments(ctx, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSaveDailyReportReplacesSameDay(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveDailyReport(ctx, models.DailyReport{Date: day, EggsCollected: 100, CreatedAt: day}))
	require.NoError(t, repo.SaveDailyReport(ctx, models.DailyReport{Date: day, EggsCollected: 120, CreatedAt: day.Add(time.Hour)}))
	require.NoError(t, repo.SaveDailyReport(ctx, models.DailyReport{Date: day.AddDate(0, 0, 1), EggsCollected: 90, CreatedAt: day}))

	reports := repo.db.Collection(reportsCollection)
	count, err := reports.CountDocuments(ctx, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	var stored models.DailyReport
	require.NoError(t, reports.FindOne(ctx, map[string]any{"date": day}).Decode(&stored))
	assert.Equal(t, 120, stored.EggsCollected)
}
