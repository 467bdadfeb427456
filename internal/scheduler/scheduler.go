package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/organiks/internal/domain/models"
)

const reportTimeout = 2 * time.Minute

// DailyReporter generates and dispatches the summary for one day.
type DailyReporter interface {
	RunDaily(ctx context.Context, day time.Time) (models.DailyReport, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	reporter DailyReporter
	schedule string
	logger   *zap.Logger
	now      func() time.Time
}

// NewScheduler creates a scheduler that runs the daily report on schedule
// (standard 5-field cron) in location.
func NewScheduler(schedule string, location *time.Location, reporter DailyReporter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(location)),
		reporter: reporter,
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

// Start registers the report job and starts the scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.sendDailyReport); err != nil {
		return fmt.Errorf("schedule daily report %q: %w", s.schedule, err)
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sendDailyReport() {
	s.logger.Info("generating daily report")
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	report, err := s.reporter.RunDaily(ctx, s.now())
	if err != nil {
		s.logger.Error("daily report failed", zap.Error(err))
		return
	}

	s.logger.Info("daily report sent",
		zap.Time("date", report.Date),
		zap.Int("eggs_collected", report.EggsCollected),
		zap.Int("orders_placed", report.OrdersPlaced))
}
