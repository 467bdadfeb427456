package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/organiks/internal/domain/models"
	client "github.com/mamadbah2/organiks/pkg/clients/whatsapp"
)

const dateLayout = "2006-01-02"

// RecordReader is the subset of the record service the report is built from.
type RecordReader interface {
	GetAllPoultryRecords(ctx context.Context) ([]models.PoultryRecord, error)
	GetAllEggRecords(ctx context.Context) ([]models.EggRecord, error)
	GetAllOrders(ctx context.Context) ([]models.EggOrder, error)
}

// ReportArchive persists generated reports. MongoDB and Google Sheets both
// implement it.
type ReportArchive interface {
	SaveDailyReport(ctx context.Context, report models.DailyReport) error
}

// Sinks lists where a report is delivered. Nil members are skipped.
type Sinks struct {
	Archive   ReportArchive
	Sheet     ReportArchive
	Notifier  client.Client
	Recipient string
}

// Service builds and dispatches the daily farm summary.
type Service struct {
	records  RecordReader
	sinks    Sinks
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a new reporting service instance.
func NewService(records RecordReader, sinks Sinks, location *time.Location, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}
	return &Service{
		records:  records,
		sinks:    sinks,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// GenerateDailyReport summarises the flock and the egg and order activity of
// the calendar day containing day.
func (s *Service) GenerateDailyReport(ctx context.Context, day time.Time) (models.DailyReport, error) {
	start, end := dayBounds(day, s.location)
	report := models.DailyReport{
		Date:      start,
		CreatedAt: s.now().UTC(),
	}

	poultry, err := ignoreNotFound(s.records.GetAllPoultryRecords(ctx))
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load poultry records: %w", err)
	}
	for _, bird := range poultry {
		report.FlockSize++
		if bird.EggProduction {
			report.LayingBirds++
		}
	}

	eggs, err := ignoreNotFound(s.records.GetAllEggRecords(ctx))
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load egg records: %w", err)
	}
	for _, record := range eggs {
		if !within(record.CreatedAt, start, end) {
			continue
		}
		count := int(record.TotalEggCount)
		report.EggsCollected += count
		report.CrackedEggs += int(record.CrackedEggCount)
		switch record.EggType {
		case models.EggKienyeji:
			report.KienyejiEggs += count
		case models.EggGrade:
			report.GradeEggs += count
		}
	}

	orders, err := ignoreNotFound(s.records.GetAllOrders(ctx))
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load egg orders: %w", err)
	}
	sales := decimal.Zero
	for _, order := range orders {
		if !within(order.CreatedAt, start, end) {
			continue
		}
		report.OrdersPlaced++
		sales = sales.Add(decimal.NewFromFloat(order.TotalPrice))
	}
	report.SalesAmount = sales.Round(2).InexactFloat64()

	s.logger.Debug("daily report generated",
		zap.String("date", start.Format(dateLayout)),
		zap.Int("eggs", report.EggsCollected),
		zap.Int("orders", report.OrdersPlaced))
	return report, nil
}

// FormatDailyReport renders the report as a short text message.
func FormatDailyReport(report models.DailyReport) string {
	return fmt.Sprintf(
		"Daily farm report (%s)\nFlock: %d birds, %d laying.\nEggs: %d collected (Kienyeji %d, Grade %d), %d cracked.\nOrders: %d placed, sales %.2f.",
		report.Date.Format(dateLayout),
		report.FlockSize, report.LayingBirds,
		report.EggsCollected, report.KienyejiEggs, report.GradeEggs, report.CrackedEggs,
		report.OrdersPlaced, report.SalesAmount,
	)
}

// Dispatch delivers the report to every configured sink. All sinks are
// attempted; the first failure is returned.
func (s *Service) Dispatch(ctx context.Context, report models.DailyReport) error {
	var firstErr error
	record := func(sink string, err error) {
		if err == nil {
			s.logger.Info("daily report delivered", zap.String("sink", sink))
			return
		}
		s.logger.Error("failed to deliver daily report", zap.String("sink", sink), zap.Error(err))
		if firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", sink, err)
		}
	}

	if s.sinks.Archive != nil {
		record("archive", s.sinks.Archive.SaveDailyReport(ctx, report))
	}

	if s.sinks.Sheet != nil {
		record("sheets", s.sinks.Sheet.SaveDailyReport(ctx, report))
	}

	if s.sinks.Notifier != nil && s.sinks.Recipient != "" {
		_, err := s.sinks.Notifier.SendTextMessage(ctx, client.SendTextMessageRequest{
			To:   s.sinks.Recipient,
			Body: FormatDailyReport(report),
		})
		record("whatsapp", err)
	}

	return firstErr
}

// RunDaily generates the report for day and dispatches it.
func (s *Service) RunDaily(ctx context.Context, day time.Time) (models.DailyReport, error) {
	report, err := s.GenerateDailyReport(ctx, day)
	if err != nil {
		return models.DailyReport{}, err
	}
	if err := s.Dispatch(ctx, report); err != nil {
		return report, err
	}
	return report, nil
}

func dayBounds(day time.Time, location *time.Location) (time.Time, time.Time) {
	local := day.In(location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
	return start, start.AddDate(0, 0, 1)
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// ignoreNotFound turns the record service's empty-collection error into an
// empty slice.
func ignoreNotFound[R any](records []R, err error) ([]R, error) {
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	return records, err
}
