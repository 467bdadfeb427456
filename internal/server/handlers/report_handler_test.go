package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/organiks/internal/domain/models"
)

type stubReporter struct {
	days []time.Time
	err  error
}

func (s *stubReporter) RunDaily(_ context.Context, day time.Time) (models.DailyReport, error) {
	s.days = append(s.days, day)
	return models.DailyReport{Date: day, EggsCollected: 12}, s.err
}

func newReportEngine(reporter DailyReporter) *gin.Engine {
	h := NewReportHandler(reporter, nil)
	h.now = func() time.Time { return time.Date(2026, 5, 4, 20, 0, 0, 0, time.UTC) }

	r := gin.New()
	r.POST("/reports/daily", h.RunDaily)
	return r
}

func TestRunDailyDefaultsToToday(t *testing.T) {
	reporter := &stubReporter{}
	rec := httptest.NewRecorder()
	newReportEngine(reporter).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reports/daily", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, reporter.days, 1)
	assert.Equal(t, time.Date(2026, 5, 4, 20, 0, 0, 0, time.UTC), reporter.days[0])
	assert.Equal(t, 12, decode[models.DailyReport](t, rec).EggsCollected)
}

func TestRunDailyWithDate(t *testing.T) {
	reporter := &stubReporter{}
	engine := newReportEngine(reporter)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reports/daily?date=2026-05-01", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, reporter.days, 1)
	assert.Equal(t, time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC), reporter.days[0])

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reports/daily?date=01/05/2026", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, reporter.days, 1)
}

func TestRunDailyDeliveryFailure(t *testing.T) {
	reporter := &stubReporter{err: errors.New("sheets: quota exceeded")}
	rec := httptest.NewRecorder()
	newReportEngine(reporter).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reports/daily", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "unable to deliver daily report")
}
