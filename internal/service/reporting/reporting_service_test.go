package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/organiks/internal/domain/models"
	client "github.com/mamadbah2/organiks/pkg/clients/whatsapp"
)

type fakeRecords struct {
	poultry []models.PoultryRecord
	eggs    []models.EggRecord
	orders  []models.EggOrder
	err     error
}

func (f *fakeRecords) GetAllPoultryRecords(context.Context) ([]models.PoultryRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.poultry) == 0 {
		return nil, models.NotFoundf("No poultry records found.")
	}
	return f.poultry, nil
}

func (f *fakeRecords) GetAllEggRecords(context.Context) ([]models.EggRecord, error) {
	if len(f.eggs) == 0 {
		return nil, models.NotFoundf("No egg records found.")
	}
	return f.eggs, nil
}

func (f *fakeRecords) GetAllOrders(context.Context) ([]models.EggOrder, error) {
	if len(f.orders) == 0 {
		return nil, models.NotFoundf("No egg orders found.")
	}
	return f.orders, nil
}

type fakeArchive struct {
	saved []models.DailyReport
	err   error
}

func (f *fakeArchive) SaveDailyReport(_ context.Context, report models.DailyReport) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, report)
	return nil
}

type fakeNotifier struct {
	sent []client.SendTextMessageRequest
}

func (f *fakeNotifier) SendTextMessage(_ context.Context, req client.SendTextMessageRequest) (*client.SendTextMessageResponse, error) {
	f.sent = append(f.sent, req)
	return &client.SendTextMessageResponse{}, nil
}

func TestGenerateDailyReport(t *testing.T) {
	nairobi, err := time.LoadLocation("Africa/Nairobi")
	require.NoError(t, err)

	day := time.Date(2026, 5, 4, 12, 0, 0, 0, nairobi)
	inDay := time.Date(2026, 5, 4, 7, 0, 0, 0, nairobi).UTC()
	previousDay := time.Date(2026, 5, 3, 23, 30, 0, 0, nairobi).UTC()

	records := &fakeRecords{
		poultry: []models.PoultryRecord{
			{ID: 1, Breed: "Kienyeji", EggProduction: true},
			{ID: 2, Breed: "Kuroiler", EggProduction: false},
			{ID: 3, Breed: "Leghorn", EggProduction: true},
		},
		eggs: []models.EggRecord{
			{ID: 4, EggType: models.EggKienyeji, TotalEggCount: 40, CrackedEggCount: 2, CreatedAt: inDay},
			{ID: 5, EggType: models.EggGrade, TotalEggCount: 100, CrackedEggCount: 3, CreatedAt: inDay},
			{ID: 6, EggType: models.EggGrade, TotalEggCount: 999, CreatedAt: previousDay},
		},
		orders: []models.EggOrder{
			{ID: 7, EggType: models.EggGrade, Quantity: 12, TotalPrice: 6, CreatedAt: inDay},
			{ID: 8, EggType: models.EggKienyeji, Quantity: 30, TotalPrice: 22.5, CreatedAt: inDay},
			{ID: 9, EggType: models.EggKienyeji, Quantity: 30, TotalPrice: 22.5, CreatedAt: previousDay},
		},
	}

	svc := NewService(records, Sinks{}, nairobi, nil)
	report, err := svc.GenerateDailyReport(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 5, 4, 0, 0, 0, 0, nairobi), report.Date)
	assert.Equal(t, 3, report.FlockSize)
	assert.Equal(t, 2, report.LayingBirds)
	assert.Equal(t, 140, report.EggsCollected)
	assert.Equal(t, 5, report.CrackedEggs)
	assert.Equal(t, 40, report.KienyejiEggs)
	assert.Equal(t, 100, report.GradeEggs)
	assert.Equal(t, 2, report.OrdersPlaced)
	assert.InDelta(t, 28.5, report.SalesAmount, 1e-9)
}

func TestGenerateDailyReportOnEmptyFarm(t *testing.T) {
	svc := NewService(&fakeRecords{}, Sinks{}, time.UTC, nil)

	report, err := svc.GenerateDailyReport(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, report.FlockSize)
	assert.Zero(t, report.EggsCollected)
	assert.Zero(t, report.OrdersPlaced)
}

func TestGenerateDailyReportStorageError(t *testing.T) {
	svc := NewService(&fakeRecords{err: errors.New("connection reset")}, Sinks{}, time.UTC, nil)

	_, err := svc.GenerateDailyReport(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load poultry records")
}

func TestFormatDailyReport(t *testing.T) {
	msg := FormatDailyReport(models.DailyReport{
		Date:          time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		FlockSize:     120,
		LayingBirds:   100,
		EggsCollected: 300,
		KienyejiEggs:  100,
		GradeEggs:     200,
		CrackedEggs:   5,
		OrdersPlaced:  3,
		SalesAmount:   45,
	})

	assert.Equal(t,
		"Daily farm report (2026-05-04)\nFlock: 120 birds, 100 laying.\nEggs: 300 collected (Kienyeji 100, Grade 200), 5 cracked.\nOrders: 3 placed, sales 45.00.",
		msg)
}

func TestDispatchDeliversToEverySink(t *testing.T) {
	archive := &fakeArchive{}
	sheet := &fakeArchive{err: errors.New("quota exceeded")}
	notifier := &fakeNotifier{}

	svc := NewService(&fakeRecords{}, Sinks{
		Archive:   archive,
		Sheet:     sheet,
		Notifier:  notifier,
		Recipient: "254700000000",
	}, time.UTC, nil)

	report := models.DailyReport{Date: time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), EggsCollected: 12}
	err := svc.Dispatch(context.Background(), report)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheets")
	assert.Equal(t, []models.DailyReport{report}, archive.saved)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "254700000000", notifier.sent[0].To)
	assert.Contains(t, notifier.sent[0].Body, "12 collected")
}

func TestRunDailySkipsNotifierWithoutRecipient(t *testing.T) {
	archive := &fakeArchive{}
	notifier := &fakeNotifier{}
	svc := NewService(&fakeRecords{}, Sinks{Archive: archive, Notifier: notifier}, time.UTC, nil)

	_, err := svc.RunDaily(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Len(t, archive.saved, 1)
	assert.Empty(t, notifier.sent)
}
