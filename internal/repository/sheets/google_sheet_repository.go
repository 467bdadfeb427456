// Package sheets mirrors daily farm reports into a Google spreadsheet.
package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/organiks/internal/config"
	"github.com/mamadbah2/organiks/internal/domain/models"
)

const (
	// ReportsRange receives one row per daily report.
	ReportsRange = "Reports!A:I"
	dateLayout   = "2006-01-02"
)

// GoogleSheetRepository appends report rows through the Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	sheetRange    string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
// Without explicit client options the service account file from cfg is used.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger, opts ...option.ClientOption) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(opts) == 0 {
		opts = []option.ClientOption{
			option.WithCredentialsFile(cfg.CredentialsPath),
			option.WithScopes(sheetsapi.SpreadsheetsScope),
		}
	}

	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		sheetRange:    ReportsRange,
		logger:        logger,
	}, nil
}

// SaveDailyReport appends the report as a new row.
func (r *GoogleSheetRepository) SaveDailyReport(ctx context.Context, report models.DailyReport) error {
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{ReportRow(report)}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, r.sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append report row into range %s: %w", r.sheetRange, err)
	}

	r.logger.Debug("report row appended to sheet",
		zap.String("range", r.sheetRange),
		zap.String("date", report.Date.Format(dateLayout)))
	return nil
}

// ReportRow lays out a report in the column order of the Reports sheet.
func ReportRow(report models.DailyReport) []interface{} {
	return []interface{}{
		report.Date.Format(dateLayout),
		report.FlockSize,
		report.LayingBirds,
		report.EggsCollected,
		report.CrackedEggs,
		report.KienyejiEggs,
		report.GradeEggs,
		report.OrdersPlaced,
		report.SalesAmount,
	}
}
