package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/organiks/internal/domain/models"
)

// DailyReporter generates and dispatches the summary for one day.
type DailyReporter interface {
	RunDaily(ctx context.Context, day time.Time) (models.DailyReport, error)
}

// ReportHandler lets operators trigger the daily summary on demand.
type ReportHandler struct {
	reporter DailyReporter
	logger   *zap.Logger
	now      func() time.Time
}

// NewReportHandler constructs the report HTTP handler.
func NewReportHandler(reporter DailyReporter, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{reporter: reporter, logger: logger, now: time.Now}
}

// RunDaily handles POST /reports/daily. An optional ?date=YYYY-MM-DD selects
// the day; the default is today.
func (h *ReportHandler) RunDaily(c *gin.Context) {
	day := h.now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, day.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must use the YYYY-MM-DD layout"})
			return
		}
		day = parsed.Add(12 * time.Hour)
	}

	report, err := h.reporter.RunDaily(c.Request.Context(), day)
	if err != nil {
		h.logger.Error("on-demand daily report failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to deliver daily report", "report": report})
		return
	}

	c.JSON(http.StatusOK, report)
}
