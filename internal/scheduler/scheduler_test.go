package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/organiks/internal/domain/models"
)

type recordingReporter struct {
	mu   sync.Mutex
	days []time.Time
	err  error
}

func (r *recordingReporter) RunDaily(_ context.Context, day time.Time) (models.DailyReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.days = append(r.days, day)
	return models.DailyReport{Date: day}, r.err
}

func (r *recordingReporter) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.days)
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	s := NewScheduler("not a cron", time.UTC, &recordingReporter{}, nil)
	require.Error(t, s.Start())
}

func TestSendDailyReportUsesClock(t *testing.T) {
	reporter := &recordingReporter{}
	s := NewScheduler("0 20 * * *", time.UTC, reporter, nil)
	fixed := time.Date(2026, 5, 4, 20, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.sendDailyReport()

	require.Equal(t, 1, reporter.calls())
	assert.Equal(t, fixed, reporter.days[0])
}

func TestSendDailyReportSurvivesFailure(t *testing.T) {
	reporter := &recordingReporter{err: errors.New("mongodb unavailable")}
	s := NewScheduler("0 20 * * *", time.UTC, reporter, nil)

	assert.NotPanics(t, s.sendDailyReport)
	assert.Equal(t, 1, reporter.calls())
}

func TestStartAndStop(t *testing.T) {
	reporter := &recordingReporter{}
	s := NewScheduler("@every 1s", time.UTC, reporter, nil)

	require.NoError(t, s.Start())
	assert.Eventually(t, func() bool { return reporter.calls() > 0 }, 3*time.Second, 10*time.Millisecond)
	s.Stop()
}
